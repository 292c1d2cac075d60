// Package report builds season summary reports from analyzed match data.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mvaillant/match-stats/internal/analyzer"
	"mvaillant/match-stats/internal/logging"
)

// SeasonReport is the JSON-serializable season summary: standings plus a few
// headline aggregates.
type SeasonReport struct {
	ReportID      string                `json:"reportId"`
	GeneratedAt   time.Time             `json:"generatedAt"`
	MatchCount    int                   `json:"matchCount"`
	TeamCount     int                   `json:"teamCount"`
	TotalGoals    int                   `json:"totalGoals"`
	GoalsPerMatch decimal.Decimal       `json:"goalsPerMatch"`
	Table         []analyzer.TableEntry `json:"table"`
}

// Generator renders season reports.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report Generator. If logger is nil, a default
// logger is used.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger}
}

// Build assembles a SeasonReport from the analyzer, with a generated report
// ID and timestamp.
func (g *Generator) Build(a *analyzer.Analyzer) *SeasonReport {
	report := &SeasonReport{
		ReportID:      uuid.New().String(),
		GeneratedAt:   time.Now(),
		MatchCount:    a.NumberOfMatches(),
		TeamCount:     len(a.Teams()),
		TotalGoals:    a.TotalGoals(),
		GoalsPerMatch: a.AverageGoalsPerMatch(),
		Table:         a.Table(),
	}
	g.logger.Info("Built season report",
		logging.Field{Key: logging.FieldReportID, Value: report.ReportID},
		logging.Field{Key: logging.FieldCount, Value: report.MatchCount})
	return report
}

// Render serializes a report as indented JSON.
func (g *Generator) Render(report *SeasonReport) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal season report")
		return nil, fmt.Errorf("failed to marshal season report: %w", err)
	}
	return data, nil
}
