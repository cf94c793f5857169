package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation marks request errors the caller can fix. Handlers map it to
// 400; anything else from the store path is a server-side failure.
var ErrValidation = errors.New("validation failed")

// SubmitRequest is the body of POST /api/v1/pulse
type SubmitRequest struct {
	TeamID      string `json:"team_id"`
	Rating      int    `json:"rating_1to5"`
	EmpHash     string `json:"emp_hash,omitempty"`
	CommentText string `json:"comment_text,omitempty"`
}

// Validate checks the request before anything touches the store, so a
// rejected submission never appends a partial record.
func (s *SubmitRequest) Validate() error {
	if strings.TrimSpace(s.TeamID) == "" {
		return fmt.Errorf("%w: team_id is required", ErrValidation)
	}
	if s.Rating < 1 || s.Rating > 5 {
		return fmt.Errorf("%w: rating_1to5 must be in [1,5], got %d", ErrValidation, s.Rating)
	}
	return nil
}
