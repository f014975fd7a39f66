package application

import (
	"time"

	"github.com/parentfeel/parentfeel-cli/internal/domain"
)

type RecordEmotionCommand struct {
	Emotion       domain.EmotionType
	ChildActions  []domain.ChildAction
	ParentActions []domain.ParentAction
	Notes         string
	Reflection    domain.Reflection
	// Timestamp overrides the clock when set.
	Timestamp time.Time
}

// UpdateEmotionCommand changes only the fields that are non-nil.
type UpdateEmotionCommand struct {
	ID            domain.RecordID
	Emotion       *domain.EmotionType
	ChildActions  *[]domain.ChildAction
	ParentActions *[]domain.ParentAction
	Notes         *string
	Trigger       *string
	Alternative   *string
}

func (c UpdateEmotionCommand) Empty() bool {
	return c.Emotion == nil &&
		c.ChildActions == nil &&
		c.ParentActions == nil &&
		c.Notes == nil &&
		c.Trigger == nil &&
		c.Alternative == nil
}

type ListRecordsQuery struct {
	Range    domain.TimeRange
	Category *domain.EmotionCategory
	// Limit caps the result when positive.
	Limit int
}
