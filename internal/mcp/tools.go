// ABOUTME: MCP tool implementations for rig settings and training data.
// ABOUTME: Provides boat, rig log, checklist, and session operations.
package mcp

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/harperreed/rigbook/internal/models"
	"github.com/harperreed/rigbook/internal/rig"
	"github.com/harperreed/rigbook/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// add_boat
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_boat",
		Description: "Add a new boat, optionally seeded with default rig templates and checklist",
	}, s.handleAddBoat)

	// list_boats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_boats",
		Description: "List all boats",
	}, s.handleListBoats)

	// rig_draft
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "rig_draft",
		Description: "Build a draft rig log for a boat, carrying forward the latest recorded values",
	}, s.handleRigDraft)

	// save_rig_log
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_rig_log",
		Description: "Save a rig log from the carried-forward draft with optional value overrides",
	}, s.handleSaveRigLog)

	// safety_score
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "safety_score",
		Description: "Get a boat's equipment safety score (0-100) from its latest rig log",
	}, s.handleSafetyScore)

	// rig_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "rig_stats",
		Description: "Get average/max/min statistics for one rig parameter across a boat's history",
	}, s.handleRigStats)

	// list_checklist
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_checklist",
		Description: "List a boat's checklist items grouped by category",
	}, s.handleListChecklist)

	// check_item
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_item",
		Description: "Mark a checklist item done or not done",
	}, s.handleCheckItem)

	// log_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_session",
		Description: "Record a training session (ergo or water) for a boat, or shared across boats",
	}, s.handleLogSession)

	// list_sessions
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List a boat's training sessions including shared ergo sessions",
	}, s.handleListSessions)
}

// Tool input/output types

type addBoatInput struct {
	Name string `json:"name" jsonschema:"Boat name"`
	Seed bool   `json:"seed,omitempty" jsonschema:"Create default rig templates and checklist items"`
}

type boatOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type boatRefInput struct {
	BoatID string `json:"boat_id" jsonschema:"Boat ID or prefix"`
}

type saveRigLogInput struct {
	BoatID string             `json:"boat_id" jsonschema:"Boat ID or prefix"`
	Date   string             `json:"date,omitempty" jsonschema:"Log date (ISO 8601), defaults to now"`
	Memo   string             `json:"memo,omitempty" jsonschema:"Free-text notes"`
	Values map[string]string `json:"values,omitempty" jsonschema:"Overrides by parameter name; numbers for numeric parameters, option text for choice parameters"`
	Status map[string]string `json:"status,omitempty" jsonschema:"Status overrides by parameter name (normal, caution, critical)"`
}

type rigLogOutput struct {
	ID      string `json:"id"`
	Items   int    `json:"items"`
	Message string `json:"message"`
}

type safetyScoreOutput struct {
	Score   int    `json:"score"`
	Message string `json:"message"`
}

type rigStatsInput struct {
	BoatID    string `json:"boat_id" jsonschema:"Boat ID or prefix"`
	Parameter string `json:"parameter" jsonschema:"Rig parameter name"`
}

type checkItemInput struct {
	ID   string `json:"id" jsonschema:"Checklist item ID or prefix"`
	Done *bool  `json:"done,omitempty" jsonschema:"Completion state, defaults to true"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type logSessionInput struct {
	BoatID      string `json:"boat_id,omitempty" jsonschema:"Boat ID or prefix; omit for a shared ergo session"`
	SessionType string `json:"session_type" jsonschema:"Session type (ergo or water)"`
	Date        string `json:"date,omitempty" jsonschema:"Session date (ISO 8601), defaults to now"`
	Memo        string `json:"memo,omitempty" jsonschema:"Free-text notes"`
	TemplateID  string `json:"template_id,omitempty" jsonschema:"Workout template ID or prefix to materialize metrics from"`
}

type sessionOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type listSessionsInput struct {
	BoatID      string `json:"boat_id" jsonschema:"Boat ID or prefix"`
	SessionType string `json:"session_type,omitempty" jsonschema:"Filter by session type (ergo or water)"`
}

// Tool handlers

func (s *Server) handleAddBoat(ctx context.Context, req *mcp.CallToolRequest, input addBoatInput) (*mcp.CallToolResult, boatOutput, error) {
	b := models.NewBoat(input.Name)
	if err := s.repo.CreateBoat(b); err != nil {
		return nil, boatOutput{}, fmt.Errorf("failed to create boat: %w", err)
	}
	if input.Seed {
		if err := storage.SeedBoat(s.repo, b.ID); err != nil {
			return nil, boatOutput{}, fmt.Errorf("failed to seed boat: %w", err)
		}
	}
	return nil, boatOutput{
		ID:      b.ID.String()[:8],
		Name:    b.Name,
		Message: fmt.Sprintf("Added boat %s (ID: %s)", b.Name, b.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListBoats(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	boats, err := s.repo.ListBoats()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list boats: %w", err)
	}
	if len(boats) == 0 {
		return nil, map[string]interface{}{"message": "No boats found."}, nil
	}
	return nil, boats, nil
}

func (s *Server) handleRigDraft(ctx context.Context, req *mcp.CallToolRequest, input boatRefInput) (*mcp.CallToolResult, any, error) {
	b, err := s.repo.GetBoat(input.BoatID)
	if err != nil {
		return nil, nil, fmt.Errorf("boat not found: %s", input.BoatID)
	}
	templates, err := s.repo.ListRigTemplates(b.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list rig templates: %w", err)
	}
	history, err := s.repo.ListRigLogs(b.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list rig logs: %w", err)
	}
	return nil, rig.NewDraft(templates, history), nil
}

func (s *Server) handleSaveRigLog(ctx context.Context, req *mcp.CallToolRequest, input saveRigLogInput) (*mcp.CallToolResult, rigLogOutput, error) {
	b, err := s.repo.GetBoat(input.BoatID)
	if err != nil {
		return nil, rigLogOutput{}, fmt.Errorf("boat not found: %s", input.BoatID)
	}
	templates, err := s.repo.ListRigTemplates(b.ID)
	if err != nil {
		return nil, rigLogOutput{}, fmt.Errorf("failed to list rig templates: %w", err)
	}
	history, err := s.repo.ListRigLogs(b.ID)
	if err != nil {
		return nil, rigLogOutput{}, fmt.Errorf("failed to list rig logs: %w", err)
	}

	date := time.Now()
	if input.Date != "" {
		t, err := time.Parse(time.RFC3339, input.Date)
		if err != nil {
			t, err = time.Parse("2006-01-02", input.Date)
		}
		if err == nil {
			date = t
		}
	}

	log := models.NewRigLog(b.ID, date, input.Memo)
	items := rig.NewDraft(templates, history)
	byName := make(map[string]*models.RigItemTemplate, len(templates))
	for _, t := range templates {
		byName[t.Name] = t
	}
	for i := range items {
		items[i].RigLogID = log.ID
		if v, ok := input.Values[items[i].Name]; ok {
			t := byName[items[i].Name]
			if t != nil && t.IsChoice() {
				items[i].StringValue = &v
			} else if f, err := strconv.ParseFloat(v, 64); err == nil {
				items[i].Value = f
			}
		}
		if st, ok := input.Status[items[i].Name]; ok && models.IsValidRigItemStatus(st) {
			items[i].Status = models.RigItemStatus(st)
		}
	}
	log.Items = items

	if err := s.repo.CreateRigLog(log); err != nil {
		return nil, rigLogOutput{}, fmt.Errorf("failed to create rig log: %w", err)
	}
	return nil, rigLogOutput{
		ID:      log.ID.String()[:8],
		Items:   len(log.Items),
		Message: fmt.Sprintf("Saved rig log with %d items (ID: %s)", len(log.Items), log.ID.String()[:8]),
	}, nil
}

func (s *Server) handleSafetyScore(ctx context.Context, req *mcp.CallToolRequest, input boatRefInput) (*mcp.CallToolResult, safetyScoreOutput, error) {
	b, err := s.repo.GetBoat(input.BoatID)
	if err != nil {
		return nil, safetyScoreOutput{}, fmt.Errorf("boat not found: %s", input.BoatID)
	}
	latest, err := s.repo.LatestRigLog(b.ID)
	if err != nil {
		return nil, safetyScoreOutput{}, fmt.Errorf("failed to get latest rig log: %w", err)
	}
	score := rig.SafetyScore(latest)
	return nil, safetyScoreOutput{
		Score:   score,
		Message: fmt.Sprintf("Safety score for %s: %d/100", b.Name, score),
	}, nil
}

func (s *Server) handleRigStats(ctx context.Context, req *mcp.CallToolRequest, input rigStatsInput) (*mcp.CallToolResult, any, error) {
	b, err := s.repo.GetBoat(input.BoatID)
	if err != nil {
		return nil, nil, fmt.Errorf("boat not found: %s", input.BoatID)
	}
	logs, err := s.repo.ListRigLogs(b.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list rig logs: %w", err)
	}
	points := rig.History(logs, rig.Selector{Name: input.Parameter})
	stats, ok := rig.Compute(points)
	if !ok {
		return nil, map[string]interface{}{"message": fmt.Sprintf("No numeric history for %s.", input.Parameter)}, nil
	}
	return nil, map[string]interface{}{
		"parameter": input.Parameter,
		"average":   stats.Average,
		"max":       stats.Max,
		"min":       stats.Min,
		"count":     stats.Count,
		"history":   points,
	}, nil
}

func (s *Server) handleListChecklist(ctx context.Context, req *mcp.CallToolRequest, input boatRefInput) (*mcp.CallToolResult, any, error) {
	b, err := s.repo.GetBoat(input.BoatID)
	if err != nil {
		return nil, nil, fmt.Errorf("boat not found: %s", input.BoatID)
	}
	items, err := s.repo.ListChecklist(b.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list checklist: %w", err)
	}
	if len(items) == 0 {
		return nil, map[string]interface{}{"message": "No checklist items found."}, nil
	}
	return nil, rig.GroupChecklist(items, rig.DefaultChecklistOrder), nil
}

func (s *Server) handleCheckItem(ctx context.Context, req *mcp.CallToolRequest, input checkItemInput) (*mcp.CallToolResult, simpleOutput, error) {
	done := true
	if input.Done != nil {
		done = *input.Done
	}
	if err := s.repo.SetChecklistDone(input.ID, done); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update checklist item: %w", err)
	}
	state := "done"
	if !done {
		state = "not done"
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Marked item %s %s", input.ID, state),
	}, nil
}

func (s *Server) handleLogSession(ctx context.Context, req *mcp.CallToolRequest, input logSessionInput) (*mcp.CallToolResult, sessionOutput, error) {
	if !models.IsValidSessionType(input.SessionType) {
		return nil, sessionOutput{}, fmt.Errorf("unknown session type: %s", input.SessionType)
	}
	st := models.SessionType(input.SessionType)

	date := time.Now()
	if input.Date != "" {
		t, err := time.Parse(time.RFC3339, input.Date)
		if err != nil {
			t, err = time.Parse("2006-01-02", input.Date)
		}
		if err == nil {
			date = t
		}
	}

	var sess *models.TrainingSession
	if input.BoatID == "" {
		sess = models.NewSharedTrainingSession(date, st)
	} else {
		b, err := s.repo.GetBoat(input.BoatID)
		if err != nil {
			return nil, sessionOutput{}, fmt.Errorf("boat not found: %s", input.BoatID)
		}
		sess = models.NewTrainingSession(b.ID, date, st)
	}
	if input.Memo != "" {
		sess.WithMemo(input.Memo)
	}
	if input.TemplateID != "" {
		tmpl, err := s.repo.GetWorkoutTemplate(input.TemplateID)
		if err != nil {
			return nil, sessionOutput{}, fmt.Errorf("workout template not found: %s", input.TemplateID)
		}
		sess.WithWorkoutTemplate(tmpl)
	}

	if err := s.repo.CreateTrainingSession(sess); err != nil {
		return nil, sessionOutput{}, fmt.Errorf("failed to create session: %w", err)
	}
	return nil, sessionOutput{
		ID:      sess.ID.String()[:8],
		Message: fmt.Sprintf("Logged %s session (ID: %s)", input.SessionType, sess.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input listSessionsInput) (*mcp.CallToolResult, any, error) {
	b, err := s.repo.GetBoat(input.BoatID)
	if err != nil {
		return nil, nil, fmt.Errorf("boat not found: %s", input.BoatID)
	}
	var st *models.SessionType
	if input.SessionType != "" {
		if !models.IsValidSessionType(input.SessionType) {
			return nil, nil, fmt.Errorf("unknown session type: %s", input.SessionType)
		}
		t := models.SessionType(input.SessionType)
		st = &t
	}
	sessions, err := s.repo.ListTrainingSessions(b.ID, st)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil, map[string]interface{}{"message": "No sessions found."}, nil
	}
	return nil, sessions, nil
}
