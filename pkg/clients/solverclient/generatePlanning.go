package solverclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// PlanningRequest asks the optimizer for a roster over the given dates
type PlanningRequest struct {
	Dates             []string        `json:"dates"`
	MinimizeChanges   bool            `json:"minimize_changes"`
	FlexibleOverrides map[string]bool `json:"flexible_overrides"`
}

// SolverAssignment is one assignment row as the optimizer reports it.
// Status is the optimizer's own classification; callers re-derive it from
// the counts rather than trusting this field.
type SolverAssignment struct {
	NeedSlotID    string   `json:"need_slot_id"`
	Date          string   `json:"date"`
	Period        string   `json:"period"`
	SiteID        string   `json:"site_id"`
	PersonIDs     []string `json:"assigned_person_ids"`
	RequiredCount int      `json:"required_count"`
	AssignedCount int      `json:"assigned_count"`
	Status        string   `json:"status"`
	Is1R          bool     `json:"is_1r"`
	Is2F          bool     `json:"is_2f"`
	Is3F          bool     `json:"is_3f"`
	Cancelled     bool     `json:"cancelled"`
}

// Stats is the optimizer's own satisfaction summary
type Stats struct {
	Satisfait        int     `json:"satisfait"`
	Partiel          int     `json:"partiel"`
	NonSatisfait     int     `json:"non_satisfait"`
	SatisfactionRate float64 `json:"satisfaction_rate"`
}

// PlanningResponse is the optimizer's full reply
type PlanningResponse struct {
	Assignments []SolverAssignment `json:"assignments"`
	Stats       Stats              `json:"stats"`
}

// GeneratePlanning submits a planning request and decodes the reply.
// Timeouts and retries are the caller's responsibility beyond the client's
// configured HTTP timeout.
func (c *Client) GeneratePlanning(ctx context.Context, request PlanningRequest) (*PlanningResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode planning request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/planning/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build planning request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call solver: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("solver returned status %d: %s", resp.StatusCode, string(detail))
	}

	var planning PlanningResponse
	if err := json.NewDecoder(resp.Body).Decode(&planning); err != nil {
		return nil, fmt.Errorf("failed to decode planning response: %w", err)
	}

	return &planning, nil
}
