package domain

import (
	"fmt"
	"strings"
	"time"
)

type RecordID string

// Reflection holds the caregiver's optional look back on an episode.
type Reflection struct {
	Trigger     string
	Alternative string
}

func (r Reflection) IsZero() bool {
	return strings.TrimSpace(r.Trigger) == "" && strings.TrimSpace(r.Alternative) == ""
}

type Record struct {
	ID            RecordID
	Emotion       EmotionType
	ChildActions  []ChildAction
	ParentActions []ParentAction
	Notes         string
	Reflection    Reflection
	Timestamp     time.Time
	UpdatedAt     time.Time
}

func (r Record) Category() EmotionCategory {
	return CategoryOf(r.Emotion)
}

func (r Record) Validate() error {
	if strings.TrimSpace(string(r.ID)) == "" {
		return ErrRecordIDRequired
	}
	if !r.Emotion.Valid() {
		return fmt.Errorf("%w: code %d", ErrUnknownEmotion, int(r.Emotion))
	}
	for _, action := range r.ChildActions {
		if !action.Valid() {
			return fmt.Errorf("%w: child code %d", ErrUnknownAction, int(action))
		}
	}
	for _, action := range r.ParentActions {
		if !action.Valid() {
			return fmt.Errorf("%w: parent code %d", ErrUnknownAction, int(action))
		}
	}
	if r.Timestamp.IsZero() {
		return ErrTimestampRequired
	}

	return nil
}

func (r *Record) NormalizeActions() {
	if r == nil {
		return
	}

	r.ChildActions = NormalizeActions(r.ChildActions)
	r.ParentActions = NormalizeActions(r.ParentActions)
}
