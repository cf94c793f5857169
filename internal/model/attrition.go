package model

import "encoding/json"

// AttritionModel is a static logistic model: risk = sigmoid(intercept + Σ coef*x)
type AttritionModel struct {
	Intercept float64            `json:"intercept"`
	Features  map[string]float64 `json:"features"` // feature name -> coefficient
}

// FeatureRow is one employee's feature snapshot used for scoring
type FeatureRow struct {
	TeamID  string
	EmpHash string
	Values  map[string]float64 // remaining numeric columns
}

// UnmarshalJSON splits the row into identity fields and numeric feature
// columns. Non-numeric extras are ignored rather than failing the load.
func (f *FeatureRow) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.Values = make(map[string]float64)
	for k, v := range raw {
		switch k {
		case "team_id":
			f.TeamID, _ = v.(string)
		case "emp_hash":
			f.EmpHash, _ = v.(string)
		default:
			if n, ok := v.(float64); ok {
				f.Values[k] = n
			}
		}
	}
	return nil
}

// RiskReason is one feature's contribution to an employee's risk score
type RiskReason struct {
	Feature string  `json:"feature"`
	Impact  float64 `json:"impact"`
}

// RiskMember is a scored employee with its top explanatory reasons
type RiskMember struct {
	EmpHash string       `json:"emp_hash"`
	Risk    float64      `json:"risk"`
	Reasons []RiskReason `json:"reasons"`
}

// AttritionReport is the response of GET /api/v1/attrition
type AttritionReport struct {
	AsOf    string       `json:"as_of"` // YYYY-MM-DD
	TeamID  string       `json:"team_id"`
	Members []RiskMember `json:"members"`
}
