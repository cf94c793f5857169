package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pulse-insights/internal/attrition"
	"pulse-insights/internal/config"
	"pulse-insights/internal/model"
	"pulse-insights/internal/pulse"
	"pulse-insights/internal/store"
	"pulse-insights/pkg/router"
	"pulse-insights/pkg/utils"
)

// Handler wires the pulse engine, stores and scorer into HTTP endpoints.
// All dependencies are injected; nothing here reaches for globals.
type Handler struct {
	cfg     *config.Config
	engine  *pulse.Engine
	pulses  store.Provider
	archive *store.ReportArchive
	scorer  *attrition.Scorer
	log     *zap.SugaredLogger
}

func New(cfg *config.Config, pulses store.Provider, archive *store.ReportArchive, log *zap.SugaredLogger) *Handler {
	return &Handler{
		cfg:     cfg,
		engine:  pulse.NewEngine(cfg),
		pulses:  pulses,
		archive: archive,
		scorer:  attrition.NewScorer(cfg.Attrition, cfg.Features),
		log:     log,
	}
}

// GetReport computes the rolling pulse report for a team
// @Summary Get pulse report
// @Description Compute the rolling aggregate pulse report for one team and trailing window
// @Tags pulse
// @Produce json
// @Param team_id query string false "Team identifier (default RISK-OPS)"
// @Param period query string false "Trailing window selector, last_<N>d (default last_60d)"
// @Success 200 {object} model.AggregateReport "Aggregate report"
// @Failure 500 {object} map[string]interface{} "Storage unavailable"
// @Router /pulse/report [get]
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	req := model.ReportRequest{
		TeamID: strings.TrimSpace(r.URL.Query().Get("team_id")),
		Period: strings.TrimSpace(r.URL.Query().Get("period")),
	}
	if req.TeamID == "" {
		req.TeamID = h.cfg.DefaultTeam
	}
	if req.Period == "" {
		req.Period = "last_60d"
	}

	records, err := h.pulses.Snapshot()
	if err != nil {
		h.log.Errorw("pulse store read failed", "stage", "snapshot", "error", err)
		router.WriteError(w, http.StatusInternalServerError, "pulse store unavailable")
		return
	}

	report := h.engine.Report(records, req, time.Now())

	if err := h.archive.Save(uuid.New().String(), req.TeamID, req.Period, report); err != nil {
		// Archival is observability, not correctness; the report still ships.
		h.log.Warnw("report archive save failed", "team_id", req.TeamID, "error", err)
	}

	router.WriteJSON(w, http.StatusOK, report)
}

// SubmitPulse appends one survey submission
// @Summary Submit a pulse
// @Description Validate and append one pulse survey submission to the record store
// @Tags pulse
// @Accept json
// @Produce json
// @Param submission body model.SubmitRequest true "Pulse submission"
// @Success 200 {object} map[string]interface{} "Submission stored"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 500 {object} map[string]interface{} "Storage unavailable"
// @Router /pulse [post]
func (h *Handler) SubmitPulse(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		router.WriteError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		router.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now().UTC()
	rec := model.PulseRecord{
		Timestamp:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		TeamID:      strings.TrimSpace(req.TeamID),
		EmpHash:     strings.TrimSpace(req.EmpHash),
		Rating:      req.Rating,
		CommentText: strings.TrimSpace(req.CommentText),
	}

	if err := h.pulses.Append(rec); err != nil {
		if errors.Is(err, store.ErrReadOnly) {
			router.WriteError(w, http.StatusForbidden, "pulse store is read-only")
			return
		}
		h.log.Errorw("pulse append failed", "stage", "append", "team_id", rec.TeamID, "error", err)
		router.WriteError(w, http.StatusInternalServerError, "failed to store submission")
		return
	}

	router.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"id":     uuid.New().String(),
		"stored": h.cfg.StorePath,
	})
}

// GetAttrition scores a team for attrition risk
// @Summary Get attrition risk ranking
// @Description Score every employee on a team with the static logistic model and return the top-ranked risks
// @Tags attrition
// @Produce json
// @Param team_id query string false "Team identifier (default RISK-OPS)"
// @Param top_k query int false "Number of members to return (default 10)"
// @Success 200 {object} model.AttritionReport "Ranked members"
// @Router /attrition [get]
func (h *Handler) GetAttrition(w http.ResponseWriter, r *http.Request) {
	teamID := strings.TrimSpace(r.URL.Query().Get("team_id"))
	if teamID == "" {
		teamID = h.cfg.DefaultTeam
	}
	topK := utils.ParseInt(r.URL.Query().Get("top_k"), 10)

	router.WriteJSON(w, http.StatusOK, h.scorer.Rank(teamID, topK, time.Now()))
}

// ListReports lists recently archived reports
// @Summary List archived reports
// @Description List the most recently generated reports, newest first
// @Tags reports
// @Produce json
// @Param team_id query string false "Filter by team"
// @Param limit query int false "Max rows (default 20)"
// @Success 200 {array} store.ArchivedReport "Archived reports"
// @Failure 500 {object} map[string]interface{} "Archive unavailable"
// @Router /reports [get]
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	teamID := strings.TrimSpace(r.URL.Query().Get("team_id"))
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 20)

	reports, err := h.archive.List(teamID, limit)
	if err != nil {
		h.log.Errorw("report archive list failed", "error", err)
		router.WriteError(w, http.StatusInternalServerError, "report archive unavailable")
		return
	}
	if reports == nil {
		reports = []store.ArchivedReport{}
	}
	router.WriteJSON(w, http.StatusOK, reports)
}

// Health reports liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is up"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	router.WriteJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
}
