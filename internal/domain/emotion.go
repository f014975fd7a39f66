package domain

import (
	"fmt"
	"strings"
)

type EmotionType int

const (
	EmotionAffection EmotionType = iota
	EmotionJoy
	EmotionPride
	EmotionAnger
	EmotionSadness
	EmotionDisappointment
	EmotionAnxiety
	EmotionWorry
	EmotionFear
	EmotionGuilt
	EmotionRegret
	EmotionImpatience
	EmotionHope
	EmotionExpectation
	EmotionExcitement
	EmotionJealousy
	EmotionConfusion
	EmotionLoneliness
)

var emotionText = [...]struct {
	slug  string
	label string
	emoji string
}{
	EmotionAffection:      {"affection", "Affection", "❤️"},
	EmotionJoy:            {"joy", "Joy", "😊"},
	EmotionPride:          {"pride", "Pride", "😌"},
	EmotionAnger:          {"anger", "Anger", "😠"},
	EmotionSadness:        {"sadness", "Sadness", "😢"},
	EmotionDisappointment: {"disappointment", "Disappointment", "😞"},
	EmotionAnxiety:        {"anxiety", "Anxiety", "😟"},
	EmotionWorry:          {"worry", "Worry", "😰"},
	EmotionFear:           {"fear", "Fear", "😨"},
	EmotionGuilt:          {"guilt", "Guilt", "😔"},
	EmotionRegret:         {"regret", "Regret", "😣"},
	EmotionImpatience:     {"impatience", "Impatience", "😤"},
	EmotionHope:           {"hope", "Hope", "🤞"},
	EmotionExpectation:    {"expectation", "Expectation", "😯"},
	EmotionExcitement:     {"excitement", "Excitement", "😃"},
	EmotionJealousy:       {"jealousy", "Jealousy", "😒"},
	EmotionConfusion:      {"confusion", "Confusion", "😕"},
	EmotionLoneliness:     {"loneliness", "Loneliness", "😞"},
}

func EmotionTypes() []EmotionType {
	types := make([]EmotionType, len(emotionText))
	for i := range emotionText {
		types[i] = EmotionType(i)
	}

	return types
}

func ParseEmotionType(raw string) (EmotionType, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for i, text := range emotionText {
		if text.slug == normalized {
			return EmotionType(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownEmotion, raw)
}

func (e EmotionType) Valid() bool {
	return e >= 0 && int(e) < len(emotionText)
}

func (e EmotionType) Label() string {
	if !e.Valid() {
		return fmt.Sprintf("EmotionType(%d)", int(e))
	}

	return emotionText[e].label
}

func (e EmotionType) Slug() string {
	if !e.Valid() {
		return fmt.Sprintf("emotion-%d", int(e))
	}

	return emotionText[e].slug
}

func (e EmotionType) Emoji() string {
	if !e.Valid() {
		return ""
	}

	return emotionText[e].emoji
}

func (e EmotionType) String() string {
	return e.Slug()
}

type EmotionCategory int

const (
	EmotionCategoryPositive EmotionCategory = iota
	EmotionCategoryNegative
	EmotionCategoryProtective
	EmotionCategorySelfReflective
	EmotionCategoryAnticipatory
	EmotionCategoryComplex
)

var emotionCategoryText = [...]struct {
	slug     string
	label    string
	emotions [3]EmotionType
}{
	EmotionCategoryPositive:       {"positive", "Positive", [3]EmotionType{EmotionAffection, EmotionJoy, EmotionPride}},
	EmotionCategoryNegative:       {"negative", "Negative", [3]EmotionType{EmotionAnger, EmotionSadness, EmotionDisappointment}},
	EmotionCategoryProtective:     {"protective", "Protective", [3]EmotionType{EmotionAnxiety, EmotionWorry, EmotionFear}},
	EmotionCategorySelfReflective: {"self-reflective", "Self-reflective", [3]EmotionType{EmotionGuilt, EmotionRegret, EmotionImpatience}},
	EmotionCategoryAnticipatory:   {"anticipatory", "Anticipatory", [3]EmotionType{EmotionHope, EmotionExpectation, EmotionExcitement}},
	EmotionCategoryComplex:        {"complex", "Complex", [3]EmotionType{EmotionJealousy, EmotionConfusion, EmotionLoneliness}},
}

func EmotionCategories() []EmotionCategory {
	categories := make([]EmotionCategory, len(emotionCategoryText))
	for i := range emotionCategoryText {
		categories[i] = EmotionCategory(i)
	}

	return categories
}

func ParseEmotionCategory(raw string) (EmotionCategory, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	for i, text := range emotionCategoryText {
		if text.slug == normalized {
			return EmotionCategory(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
}

func (c EmotionCategory) Valid() bool {
	return c >= 0 && int(c) < len(emotionCategoryText)
}

func (c EmotionCategory) Label() string {
	if !c.Valid() {
		return fmt.Sprintf("EmotionCategory(%d)", int(c))
	}

	return emotionCategoryText[c].label
}

func (c EmotionCategory) Slug() string {
	if !c.Valid() {
		return fmt.Sprintf("category-%d", int(c))
	}

	return emotionCategoryText[c].slug
}

func (c EmotionCategory) String() string {
	return c.Slug()
}

func (c EmotionCategory) Emotions() []EmotionType {
	if !c.Valid() {
		return nil
	}

	emotions := emotionCategoryText[c].emotions
	return emotions[:]
}

// CategoryOf maps an emotion to its category, falling back to complex.
func CategoryOf(e EmotionType) EmotionCategory {
	for i, text := range emotionCategoryText {
		for _, member := range text.emotions {
			if member == e {
				return EmotionCategory(i)
			}
		}
	}

	return EmotionCategoryComplex
}
