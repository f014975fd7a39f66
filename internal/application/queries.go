package application

import (
	"time"

	"github.com/parentfeel/parentfeel-cli/internal/domain"
)

const (
	actionsSeparator = ", "
	TimestampLayout  = "2006-01-02 15:04"
)

type RecordDetail struct {
	Record            domain.Record
	EmotionText       string
	CategoryText      string
	ChildActionsText  string
	ParentActionsText string
	NotesText         string
	TriggerText       string
	AlternativeText   string
	TimestampText     string
	UpdatedAtText     string
}

func NewRecordDetail(record domain.Record, loc *time.Location) RecordDetail {
	if loc == nil {
		loc = time.Local
	}

	detail := RecordDetail{
		Record:            record,
		EmotionText:       record.Emotion.Emoji() + " " + record.Emotion.Label(),
		CategoryText:      record.Category().Label(),
		ChildActionsText:  domain.JoinLabels(record.ChildActions, actionsSeparator),
		ParentActionsText: domain.JoinLabels(record.ParentActions, actionsSeparator),
		NotesText:         record.Notes,
		TriggerText:       record.Reflection.Trigger,
		AlternativeText:   record.Reflection.Alternative,
		TimestampText:     record.Timestamp.In(loc).Format(TimestampLayout),
	}
	if !record.UpdatedAt.IsZero() {
		detail.UpdatedAtText = record.UpdatedAt.In(loc).Format(TimestampLayout)
	}

	return detail
}

type CategoryCount struct {
	Category domain.EmotionCategory
	Count    int
}

type EmotionCount struct {
	Emotion domain.EmotionType
	Count   int
}

// TrendReport summarizes the records inside Range. Categories and Emotions
// keep declaration order and include zero counts.
type TrendReport struct {
	Range       domain.TimeRange
	Since       time.Time
	Until       time.Time
	Total       int
	Categories  []CategoryCount
	Emotions    []EmotionCount
	Daily       []domain.DailyCategoryCount
	TopEmotions []EmotionCount
}
