package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/parentfeel/parentfeel-cli/internal/application"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/spf13/cobra"
)

type recordJSON struct {
	ID            string          `json:"id"`
	Emotion       string          `json:"emotion"`
	Category      string          `json:"category"`
	ChildActions  []string        `json:"child_actions"`
	ParentActions []string        `json:"parent_actions"`
	Notes         string          `json:"notes,omitempty"`
	Reflection    *reflectionJSON `json:"reflection,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
}

type reflectionJSON struct {
	Trigger     string `json:"trigger,omitempty"`
	Alternative string `json:"alternative,omitempty"`
}

type actionJSON struct {
	Code     int    `json:"code"`
	Slug     string `json:"slug"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

type trendJSON struct {
	Range       string           `json:"range"`
	Since       *time.Time       `json:"since,omitempty"`
	Until       time.Time        `json:"until"`
	Total       int              `json:"total"`
	Categories  map[string]int   `json:"categories"`
	Emotions    map[string]int   `json:"emotions"`
	Daily       []dailyTrendJSON `json:"daily"`
	TopEmotions []string         `json:"top_emotions"`
}

type dailyTrendJSON struct {
	Date   string         `json:"date"`
	Counts map[string]int `json:"counts"`
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeRendered(cmd *cobra.Command, rendered string, err error) error {
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func toRecordJSON(record domain.Record) recordJSON {
	out := recordJSON{
		ID:            string(record.ID),
		Emotion:       record.Emotion.Slug(),
		Category:      record.Category().Slug(),
		ChildActions:  actionSlugs(record.ChildActions),
		ParentActions: actionSlugs(record.ParentActions),
		Notes:         record.Notes,
		Timestamp:     record.Timestamp,
	}
	if !record.Reflection.IsZero() {
		out.Reflection = &reflectionJSON{Trigger: record.Reflection.Trigger, Alternative: record.Reflection.Alternative}
	}
	if !record.UpdatedAt.IsZero() {
		updatedAt := record.UpdatedAt
		out.UpdatedAt = &updatedAt
	}

	return out
}

func toActionsJSON[T domain.Action](catalog domain.Catalog[T], actions []T) []actionJSON {
	out := make([]actionJSON, 0, len(actions))
	for _, action := range actions {
		out = append(out, actionJSON{
			Code:     action.Code(),
			Slug:     action.Slug(),
			Label:    action.Label(),
			Category: string(catalog.Category(action)),
		})
	}

	return out
}

func toTrendJSON(report application.TrendReport) trendJSON {
	out := trendJSON{
		Range:       string(report.Range),
		Until:       report.Until,
		Total:       report.Total,
		Categories:  make(map[string]int, len(report.Categories)),
		Emotions:    make(map[string]int, len(report.Emotions)),
		Daily:       make([]dailyTrendJSON, 0, len(report.Daily)),
		TopEmotions: make([]string, 0, len(report.TopEmotions)),
	}
	if !report.Since.IsZero() {
		since := report.Since
		out.Since = &since
	}
	for _, count := range report.Categories {
		out.Categories[count.Category.Slug()] = count.Count
	}
	for _, count := range report.Emotions {
		out.Emotions[count.Emotion.Slug()] = count.Count
	}
	for _, day := range report.Daily {
		counts := make(map[string]int, len(day.Counts))
		for category, count := range day.Counts {
			counts[category.Slug()] = count
		}
		out.Daily = append(out.Daily, dailyTrendJSON{Date: day.Date.Format(time.DateOnly), Counts: counts})
	}
	for _, count := range report.TopEmotions {
		out.TopEmotions = append(out.TopEmotions, count.Emotion.Slug())
	}

	return out
}

func actionSlugs[T domain.Action](actions []T) []string {
	slugs := make([]string, 0, len(actions))
	for _, action := range actions {
		slugs = append(slugs, action.Slug())
	}

	return slugs
}
