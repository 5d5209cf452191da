package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/burrow/internal/domain/entity"
)

const historyTitleWidth = 48

// HistoryRenderer renders visit history.
type HistoryRenderer struct {
	theme *Theme
	now   func() time.Time
}

// NewHistoryRenderer creates a history renderer with the given theme.
func NewHistoryRenderer(theme *Theme) *HistoryRenderer {
	return &HistoryRenderer{theme: theme, now: time.Now}
}

// RenderList renders entries newest first, one per line pair.
func (r *HistoryRenderer) RenderList(entries []*entity.HistoryEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("\n  %s\n", r.theme.Subtle.Render("No history yet."))
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	countStyle := r.theme.Subtle

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s %s\n\n", iconStyle.Render(IconHistory), r.theme.Title.Render("Recent history"))
	for _, e := range entries {
		fmt.Fprintf(&sb, "  %s %s %s\n    %s\n",
			iconStyle.Render(IconCursor),
			r.theme.Normal.Render(truncate(e.Label(), historyTitleWidth)),
			countStyle.Render(fmt.Sprintf("×%d · %s", e.VisitCount, r.relative(e.LastVisited))),
			r.theme.Subtle.Render(e.URL),
		)
	}
	return sb.String()
}

// RenderCleared renders the message shown after history deletion.
func (r *HistoryRenderer) RenderCleared() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s History cleared\n", iconStyle.Render(IconTrash))
}

// RenderError renders an error message.
func (r *HistoryRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s History error: %v\n", iconStyle.Render(IconX), err)
}

func (r *HistoryRenderer) relative(t time.Time) string {
	d := r.now().Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("2006-01-02")
	}
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes-1]) + "…"
}
