package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Action is a member of one of the closed action catalogs. Codes are stable
// and follow declaration order.
type Action interface {
	comparable
	Code() int
	Label() string
	Slug() string
}

type Domain string

const (
	DomainChild  Domain = "child"
	DomainParent Domain = "parent"
)

func ParseDomain(raw string) (Domain, error) {
	switch Domain(strings.ToLower(strings.TrimSpace(raw))) {
	case DomainChild:
		return DomainChild, nil
	case DomainParent:
		return DomainParent, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDomain, raw)
	}
}

// Name is the capitalized catalog identity, e.g. "Child".
func (d Domain) Name() string {
	switch d {
	case DomainChild:
		return "Child"
	case DomainParent:
		return "Parent"
	default:
		return string(d)
	}
}

type ActionCategory string

const (
	ActionCategoryAll      ActionCategory = "all"
	ActionCategoryPositive ActionCategory = "positive"
	ActionCategoryNegative ActionCategory = "negative"
	ActionCategoryNeutral  ActionCategory = "neutral"
	ActionCategoryRecent   ActionCategory = "recent"
)

func ActionCategories() []ActionCategory {
	return []ActionCategory{
		ActionCategoryAll,
		ActionCategoryPositive,
		ActionCategoryNegative,
		ActionCategoryNeutral,
		ActionCategoryRecent,
	}
}

func ParseActionCategory(raw string) (ActionCategory, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ActionCategoryAll, nil
	}

	for _, category := range ActionCategories() {
		if string(category) == trimmed {
			return category, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
}

func (c ActionCategory) Label() string {
	switch c {
	case ActionCategoryAll:
		return "All"
	case ActionCategoryPositive:
		return "Positive"
	case ActionCategoryNegative:
		return "Negative"
	case ActionCategoryNeutral:
		return "Neutral"
	case ActionCategoryRecent:
		return "Recent"
	default:
		return string(c)
	}
}

// Catalog is the fixed action list of one domain together with its
// positive/negative/neutral partition.
type Catalog[T Action] struct {
	domain     Domain
	actions    []T
	categories map[T]ActionCategory
}

func newCatalog[T Action](d Domain, actions []T, positive []T, negative []T) Catalog[T] {
	categories := make(map[T]ActionCategory, len(actions))
	for _, action := range actions {
		categories[action] = ActionCategoryNeutral
	}
	for _, action := range positive {
		categories[action] = ActionCategoryPositive
	}
	for _, action := range negative {
		categories[action] = ActionCategoryNegative
	}

	return Catalog[T]{domain: d, actions: actions, categories: categories}
}

func (c Catalog[T]) Domain() Domain {
	return c.domain
}

func (c Catalog[T]) Actions() []T {
	return slices.Clone(c.actions)
}

// Category returns the partition an action belongs to. Actions outside the
// curated positive and negative lists are neutral.
func (c Catalog[T]) Category(action T) ActionCategory {
	if category, ok := c.categories[action]; ok {
		return category
	}

	return ActionCategoryNeutral
}

// InCategory returns the catalog members of category in declaration order.
// The whole catalog is returned for All; Recent is not a catalog partition
// and yields nil.
func (c Catalog[T]) InCategory(category ActionCategory) []T {
	switch category {
	case ActionCategoryAll:
		return c.Actions()
	case ActionCategoryPositive, ActionCategoryNegative, ActionCategoryNeutral:
		result := make([]T, 0, len(c.actions))
		for _, action := range c.actions {
			if c.Category(action) == category {
				result = append(result, action)
			}
		}
		return result
	default:
		return nil
	}
}

func (c Catalog[T]) ByCode(code int) (T, bool) {
	for _, action := range c.actions {
		if action.Code() == code {
			return action, true
		}
	}

	var zero T
	return zero, false
}

func (c Catalog[T]) BySlug(slug string) (T, error) {
	normalized := strings.ToLower(strings.TrimSpace(slug))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	for _, action := range c.actions {
		if action.Slug() == normalized {
			return action, nil
		}
	}

	var zero T
	return zero, fmt.Errorf("%w: %s action %q", ErrUnknownAction, c.domain, slug)
}

// ParseSlugs resolves a comma separated list of slugs, keeping the order in
// which they were given and dropping repeats.
func (c Catalog[T]) ParseSlugs(raw []string) ([]T, error) {
	var result []T
	seen := make(map[int]struct{})
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			action, err := c.BySlug(part)
			if err != nil {
				return nil, err
			}
			if _, ok := seen[action.Code()]; ok {
				continue
			}
			seen[action.Code()] = struct{}{}
			result = append(result, action)
		}
	}

	return result, nil
}

// NormalizeActions removes duplicate codes and sorts by declaration order.
func NormalizeActions[T Action](actions []T) []T {
	if len(actions) == 0 {
		return nil
	}

	seen := make(map[int]struct{}, len(actions))
	result := make([]T, 0, len(actions))
	for _, action := range actions {
		if _, ok := seen[action.Code()]; ok {
			continue
		}
		seen[action.Code()] = struct{}{}
		result = append(result, action)
	}

	slices.SortFunc(result, func(a, b T) int {
		return a.Code() - b.Code()
	})

	return result
}

func JoinLabels[T Action](actions []T, sep string) string {
	labels := make([]string, 0, len(actions))
	for _, action := range actions {
		labels = append(labels, action.Label())
	}

	return strings.Join(labels, sep)
}
