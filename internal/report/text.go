package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/gabssanto/logscope/internal/scan"
)

// TextRenderer prints the fixed message vocabulary, one line per message
type TextRenderer struct {
	w io.Writer

	unknownStyle lipgloss.Style
	okStyle      lipgloss.Style
	missingStyle lipgloss.Style
	badStyle     lipgloss.Style
	warnStyle    lipgloss.Style
	summaryStyle lipgloss.Style
}

// NewTextRenderer creates a TextRenderer. Colors are only emitted when w is a terminal.
func NewTextRenderer(w io.Writer) *TextRenderer {
	r := lipgloss.NewRenderer(w)
	return &TextRenderer{
		w:            w,
		unknownStyle: r.NewStyle().Foreground(lipgloss.Color("245")),
		okStyle:      r.NewStyle().Foreground(lipgloss.Color("42")),
		missingStyle: r.NewStyle().Foreground(lipgloss.Color("220")),
		badStyle:     r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		warnStyle:    r.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		summaryStyle: r.NewStyle().Bold(true),
	}
}

// Message returns the plain text line for one message kind
func Message(kind scan.MessageKind, record scan.ClassificationRecord) string {
	switch kind {
	case scan.MessageUnknownLanguage:
		return fmt.Sprintf("🔍 %s: Unknown language or no source files", record.Service)
	case scan.MessageLoggerDetected:
		return fmt.Sprintf("✅ %s: Logger usage detected", record.Service)
	case scan.MessageNoLogger:
		return fmt.Sprintf("⚠️  %s: No logger usage found", record.Service)
	case scan.MessageBadPractice:
		example := record.BadExample
		if example == "" {
			example = "console.log"
		}
		return fmt.Sprintf("🚫 %s: Detected bad logging practice (e.g. %s)", record.Service, example)
	default:
		return ""
	}
}

func (t *TextRenderer) style(kind scan.MessageKind) lipgloss.Style {
	switch kind {
	case scan.MessageLoggerDetected:
		return t.okStyle
	case scan.MessageNoLogger:
		return t.missingStyle
	case scan.MessageBadPractice:
		return t.badStyle
	default:
		return t.unknownStyle
	}
}

func (t *TextRenderer) Record(record scan.ClassificationRecord) error {
	for _, kind := range record.Messages() {
		if _, err := fmt.Fprintln(t.w, t.style(kind).Render(Message(kind, record))); err != nil {
			return err
		}
	}
	for _, w := range record.Warnings {
		line := fmt.Sprintf("   ! %s: %s", record.Service, w)
		if _, err := fmt.Fprintln(t.w, t.warnStyle.Render(line)); err != nil {
			return err
		}
	}
	return nil
}

func (t *TextRenderer) Close(summary Summary) error {
	line := fmt.Sprintf("Audited %d services: %d with logger, %d without logger, %d with bad practice, %d unknown",
		summary.Services, summary.WithLogger, summary.WithoutLogger, summary.BadPractice, summary.Unknown)
	if summary.Warnings > 0 {
		line += fmt.Sprintf(" (%d warnings)", summary.Warnings)
	}
	if _, err := fmt.Fprintln(t.w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(t.w, t.summaryStyle.Render(line))
	return err
}
