// ABOUTME: MCP resource implementations for rig settings and training data.
// ABOUTME: Provides rigbook://fleet, rigbook://today, and rigbook://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/rigbook/internal/models"
	"github.com/harperreed/rigbook/internal/rig"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// rigbook://fleet - Every boat with its current safety score
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "rigbook://fleet",
		Name:        "Fleet Overview",
		Description: "All boats with their current equipment safety scores",
		MIMEType:    "application/json",
	}, s.handleFleetResource)

	// rigbook://today - Sessions logged today across all boats
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "rigbook://today",
		Name:        "Today's Training",
		Description: "All training sessions logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// rigbook://summary - Dashboard with latest rig state and recent sessions
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "rigbook://summary",
		Name:        "Rigbook Summary Dashboard",
		Description: "Latest rig log per boat plus recent training sessions",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleFleetResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	boats, err := s.repo.ListBoats()
	if err != nil {
		return nil, fmt.Errorf("failed to list boats: %w", err)
	}

	fleet := make([]map[string]interface{}, 0, len(boats))
	for _, b := range boats {
		latest, err := s.repo.LatestRigLog(b.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest rig log for %s: %w", b.Name, err)
		}
		entry := map[string]interface{}{
			"id":           b.ID.String(),
			"name":         b.Name,
			"safety_score": rig.SafetyScore(latest),
		}
		if latest != nil {
			entry["last_logged"] = latest.Date.Format(time.RFC3339)
		}
		fleet = append(fleet, entry)
	}

	data, err := json.MarshalIndent(map[string]interface{}{"boats": fleet}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "rigbook://fleet",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	boats, err := s.repo.ListBoats()
	if err != nil {
		return nil, fmt.Errorf("failed to list boats: %w", err)
	}

	seen := make(map[string]bool)
	var todaySessions []*models.TrainingSession
	for _, b := range boats {
		sessions, err := s.repo.ListTrainingSessions(b.ID, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to list sessions for %s: %w", b.Name, err)
		}
		for _, sess := range sessions {
			if seen[sess.ID.String()] {
				continue
			}
			if sess.Date.After(todayStart) || sess.Date.Equal(todayStart) {
				seen[sess.ID.String()] = true
				todaySessions = append(todaySessions, sess)
			}
		}
	}

	result := map[string]interface{}{
		"date":     todayStart.Format("2006-01-02"),
		"sessions": todaySessions,
		"count":    len(todaySessions),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "rigbook://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	boats, err := s.repo.ListBoats()
	if err != nil {
		return nil, fmt.Errorf("failed to list boats: %w", err)
	}

	boatSummaries := make([]map[string]interface{}, 0, len(boats))
	seen := make(map[string]bool)
	var recentSessions []*models.TrainingSession
	for _, b := range boats {
		latest, err := s.repo.LatestRigLog(b.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest rig log for %s: %w", b.Name, err)
		}
		summary := map[string]interface{}{
			"id":           b.ID.String(),
			"name":         b.Name,
			"safety_score": rig.SafetyScore(latest),
		}
		if latest != nil {
			summary["latest_rig_log"] = latest
		}
		boatSummaries = append(boatSummaries, summary)

		sessions, err := s.repo.ListTrainingSessions(b.ID, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to list sessions for %s: %w", b.Name, err)
		}
		for _, sess := range sessions {
			if seen[sess.ID.String()] {
				continue
			}
			seen[sess.ID.String()] = true
			recentSessions = append(recentSessions, sess)
		}
	}
	if len(recentSessions) > 10 {
		recentSessions = recentSessions[:10]
	}

	result := map[string]interface{}{
		"generated_at":    time.Now().Format(time.RFC3339),
		"boats":           boatSummaries,
		"recent_sessions": recentSessions,
		"summary": map[string]int{
			"boat_count":           len(boats),
			"recent_session_count": len(recentSessions),
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "rigbook://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
