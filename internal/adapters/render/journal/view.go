package journal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/parentfeel/parentfeel-cli/internal/application"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
)

const (
	barWidth       = 24
	shortIDLength  = 8
	categoryColumn = 16
)

type RenderOptions struct {
	Location *time.Location
}

func (o RenderOptions) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}

	return o.Location
}

func RenderRecords(records []domain.Record, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		return recordsView(records, opts, s)
	})
}

func RenderDetail(detail application.RecordDetail) (string, error) {
	return render(func(s styles) string {
		return detailView(detail, s)
	})
}

func RenderTrend(report application.TrendReport, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		return trendView(report, opts, s)
	})
}

func RenderEmotions() (string, error) {
	return render(emotionsView)
}

// RenderActions lists actions with their catalog category.
func RenderActions[T domain.Action](title string, catalog domain.Catalog[T], actions []T) (string, error) {
	return render(func(s styles) string {
		return actionsView(title, catalog, actions, s)
	})
}

func recordsView(records []domain.Record, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Emotion Records"),
		s.header.Render(fmt.Sprintf("records: %d", len(records))),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No records yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range records {
		lines = append(lines, s.section.Render(recordSummary(record, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func recordSummary(record domain.Record, opts RenderOptions, s styles) string {
	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.record.Render(fmt.Sprintf("%s %s", record.Emotion.Emoji(), record.Emotion.Label())),
		" ",
		s.id.Render(fmt.Sprintf("(%s)", shortID(record.ID))),
	)

	parts := []string{
		title,
		s.detail.Render(record.Timestamp.In(opts.location()).Format(application.TimestampLayout)),
	}
	if len(record.ChildActions) > 0 {
		parts = append(parts, field(s, "child", domain.JoinLabels(record.ChildActions, ", ")))
	}
	if len(record.ParentActions) > 0 {
		parts = append(parts, field(s, "parent", domain.JoinLabels(record.ParentActions, ", ")))
	}
	if notes := strings.TrimSpace(record.Notes); notes != "" {
		parts = append(parts, field(s, "notes", firstLine(notes)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func detailView(detail application.RecordDetail, s styles) string {
	lines := []string{
		s.title.Render(detail.EmotionText),
		s.header.Render(fmt.Sprintf("%s · %s", detail.CategoryText, detail.Record.ID)),
		"",
		field(s, "recorded", detail.TimestampText),
	}
	if detail.UpdatedAtText != "" {
		lines = append(lines, field(s, "updated", detail.UpdatedAtText))
	}
	lines = append(lines,
		field(s, "child", orNone(detail.ChildActionsText, s)),
		field(s, "parent", orNone(detail.ParentActionsText, s)),
		field(s, "notes", orNone(detail.NotesText, s)),
	)
	if !detail.Record.Reflection.IsZero() {
		lines = append(lines,
			s.section.Render(s.category.Render("Reflection")),
			field(s, "trigger", orNone(detail.TriggerText, s)),
			field(s, "alternative", orNone(detail.AlternativeText, s)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func trendView(report application.TrendReport, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Emotion Trend (%s)", report.Range.Label())),
		s.header.Render(fmt.Sprintf("records: %d", report.Total)),
	}

	if report.Total == 0 {
		lines = append(lines, s.empty.Render("No records in this period."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	categoryLines := []string{s.category.Render("By category")}
	for _, count := range report.Categories {
		categoryLines = append(categoryLines, countLine(count.Category.Label(), count.Count, report.Total, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, categoryLines...)))

	if len(report.TopEmotions) > 0 {
		topLines := []string{s.category.Render("Most frequent")}
		for _, count := range report.TopEmotions {
			topLines = append(topLines, s.detail.Render(fmt.Sprintf("%s %s × %d", count.Emotion.Emoji(), count.Emotion.Label(), count.Count)))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, topLines...)))
	}

	if len(report.Daily) > 0 {
		maxDaily := 0
		for _, day := range report.Daily {
			maxDaily = max(maxDaily, day.Total())
		}

		dailyLines := []string{s.category.Render("By day")}
		for _, day := range report.Daily {
			label := day.Date.In(opts.location()).Format("Mon 01-02")
			dailyLines = append(dailyLines, countLine(label, day.Total(), maxDaily, s))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, dailyLines...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func emotionsView(s styles) string {
	lines := []string{s.title.Render("Emotions")}
	for _, category := range domain.EmotionCategories() {
		parts := []string{s.category.Render(category.Label())}
		for _, emotion := range category.Emotions() {
			parts = append(parts, s.detail.Render(fmt.Sprintf("%s %-16s %s", emotion.Emoji(), emotion.Label(), s.id.Render(emotion.Slug()))))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func actionsView[T domain.Action](title string, catalog domain.Catalog[T], actions []T, s styles) string {
	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("actions: %d", len(actions))),
	}

	if len(actions) == 0 {
		lines = append(lines, s.empty.Render("No matching actions."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, action := range actions {
		category := catalog.Category(action)
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.detail.Render(fmt.Sprintf("%-28s", action.Label())),
			s.forActionCategory(category).Render(fmt.Sprintf("%-10s", category.Label())),
			s.id.Render(action.Slug()),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func countLine(label string, count, total int, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render(fmt.Sprintf("%-*s", categoryColumn, label)),
		renderBar(count, total, barWidth, s),
		" ",
		s.count.Render(fmt.Sprintf("%d", count)),
	)
}

func renderBar(count, total, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if total > 0 {
		filled = int(math.Round(float64(width) * float64(count) / float64(total)))
	}
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func field(s styles, name, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(name+": "), s.detail.Render(value))
}

func orNone(value string, s styles) string {
	if strings.TrimSpace(value) == "" {
		return s.empty.Render("none")
	}

	return value
}

func shortID(id domain.RecordID) string {
	if len(id) <= shortIDLength {
		return string(id)
	}

	return string(id[:shortIDLength])
}

func firstLine(text string) string {
	line, _, found := strings.Cut(text, "\n")
	if found {
		return line + " …"
	}

	return line
}
