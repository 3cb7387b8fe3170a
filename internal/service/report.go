package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/studyforge/studyforge/internal/markdown"
)

const recentRecordLimit = 10

// DefaultAppName titles the review when no app name is configured.
const DefaultAppName = "StudyForge"

// ReportService renders the study review from the progress store.
type ReportService struct {
	progress *ProgressService
	parser   *markdown.Parser
}

func NewReportService(progress *ProgressService) *ReportService {
	return &ReportService{
		progress: progress,
		parser:   markdown.NewParser(),
	}
}

// Markdown builds the review as markdown with YAML frontmatter titled
// after appName.
func (s *ReportService) Markdown(appName string) []byte {
	today := s.progress.today()
	snapshot := s.progress.Snapshot()
	stats := s.progress.Stats()
	totals := s.progress.SubjectTotals()

	var b bytes.Buffer
	fmt.Fprintf(&b, "---\ntitle: %q\ngenerated: %q\nstreak: %d\n---\n\n", reportTitle(appName), today, stats.Streak)
	fmt.Fprintf(&b, "# Study review: %s\n\n", today)

	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Hours logged | %.1f |\n", stats.TotalHours)
	fmt.Fprintf(&b, "| Wins | %d |\n", stats.CompletedCount)
	fmt.Fprintf(&b, "| Goals logged | %d |\n", stats.RecordCount)
	fmt.Fprintf(&b, "| Focus sessions | %d (%d min) |\n", stats.SessionCount, stats.SessionMinutes)
	fmt.Fprintf(&b, "| Streak | %d days |\n\n", stats.Streak)

	b.WriteString("## Goals\n\n")
	if len(snapshot.Goals) == 0 {
		b.WriteString("_No goals yet._\n\n")
	}
	for _, goal := range snapshot.Goals {
		mark := " "
		if goal.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] **%s**", mark, escapeInline(goal.Subject))
		if goal.Target != "" {
			fmt.Fprintf(&b, ": %s", escapeInline(goal.Target))
		}
		if goal.TimeAvailable > 0 {
			fmt.Fprintf(&b, " (%d min)", goal.TimeAvailable)
		}
		b.WriteString("\n")
	}
	if len(snapshot.Goals) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("## Focus time by subject\n\n")
	if len(totals) == 0 {
		b.WriteString("_No focus sessions yet._\n\n")
	} else {
		b.WriteString("| Subject | Sessions | Minutes |\n|---|---|---|\n")
		for _, total := range totals {
			fmt.Fprintf(&b, "| %s | %d | %d |\n", escapeCell(total.Subject), total.Sessions, total.Minutes)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Progress log\n\n")
	records := snapshot.ProgressRecords
	if len(records) == 0 {
		b.WriteString("_Nothing logged yet._\n")
	}
	for i := len(records) - 1; i >= 0 && i >= len(records)-recentRecordLimit; i-- {
		record := records[i]
		status := "in progress"
		if record.Completed {
			status = "done"
		}
		fmt.Fprintf(&b, "### %s: %s (%s)\n\n", record.Date, escapeInline(record.Goal), status)
		fmt.Fprintf(&b, "%d min.", record.TimeSpent)
		if strings.TrimSpace(record.NextSteps) != "" {
			fmt.Fprintf(&b, " Next steps: %s", escapeInline(record.NextSteps))
		}
		b.WriteString("\n\n")
	}

	return b.Bytes()
}

// Report is the rendered review: the frontmatter title and the HTML body.
type Report struct {
	Title string
	Body  []byte
}

// Render converts the markdown review to HTML.
func (s *ReportService) Render(appName string) (*Report, error) {
	doc, err := s.parser.Render(s.Markdown(appName))
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	title := doc.String("title")
	if title == "" {
		title = reportTitle(appName)
	}
	return &Report{Title: title, Body: doc.HTML}, nil
}

func reportTitle(appName string) string {
	if appName == "" {
		appName = DefaultAppName
	}
	return appName + " study review"
}

var inlineEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "<", "&lt;", ">", "&gt;", "#", `\#`,
	"\n", " ",
)

func escapeInline(s string) string {
	return inlineEscaper.Replace(s)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(escapeInline(s), "|", `\|`)
}
