package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"pulse-insights/internal/model"
)

// ReportArchive keeps a history of generated reports in sqlite so operators
// can see what was served without replaying record snapshots.
type ReportArchive struct {
	db *sql.DB
}

// ArchivedReport is one stored report row.
type ArchivedReport struct {
	ID        string          `json:"id"`
	TeamID    string          `json:"team_id"`
	Period    string          `json:"period"`
	Report    json.RawMessage `json:"report"`
	CreatedAt time.Time       `json:"created_at"`
}

// OpenReportArchive opens (and if needed creates) the archive database.
func OpenReportArchive(path string) (*ReportArchive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report archive: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		team_id TEXT,
		period TEXT,
		report TEXT,
		created_at DATETIME
	);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create report archive schema: %w", err)
	}
	return &ReportArchive{db: db}, nil
}

// Save stores one generated report under the given ID.
func (a *ReportArchive) Save(id, teamID, period string, report model.AggregateReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = a.db.Exec(
		`INSERT INTO reports (id, team_id, period, report, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, teamID, period, string(body), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// List returns the most recent archived reports, newest first. An empty
// teamID lists across all teams.
func (a *ReportArchive) List(teamID string, limit int) ([]ArchivedReport, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, team_id, period, report, created_at FROM reports`
	args := []interface{}{}
	if teamID != "" {
		query += ` WHERE team_id = ?`
		args = append(args, teamID)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := a.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []ArchivedReport
	for rows.Next() {
		var r ArchivedReport
		var body string
		if err := rows.Scan(&r.ID, &r.TeamID, &r.Period, &body, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		r.Report = json.RawMessage(body)
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (a *ReportArchive) Close() error {
	return a.db.Close()
}
