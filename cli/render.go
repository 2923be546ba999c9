package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ka2n/tojiru/chrome"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
)

// Display truncation limits. Only rendered cells are cut; the underlying
// records keep their full values.
const (
	maxTitleWidth = 50
	maxURLWidth   = 80
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// renderTabs formats records for output. FormatTable falls back to plain
// text when stdout is not a terminal, so pipes get parseable output.
func renderTabs(tabs []chrome.TabRecord, format Format) (string, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(tabs, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case FormatPlain:
		return renderPlain(tabs), nil
	default:
		if !stdoutIsTerminal() {
			return renderPlain(tabs), nil
		}
		return renderTable(tabs), nil
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderPlain emits the same pipe-delimited form the enumeration query
// returns, untruncated.
func renderPlain(tabs []chrome.TabRecord) string {
	lines := lo.Map(tabs, func(t chrome.TabRecord, _ int) string {
		return fmt.Sprintf("%d|%d|%s|%s", t.Window, t.Tab, t.URL, t.Title)
	})
	return strings.Join(lines, "\n") + "\n"
}

func renderTable(tabs []chrome.TabRecord) string {
	rows := lo.Map(tabs, func(t chrome.TabRecord, _ int) []string {
		return []string{
			strconv.Itoa(t.Window),
			strconv.Itoa(t.Tab),
			truncate(t.Title, maxTitleWidth),
			truncate(t.URL, maxURLWidth),
		}
	})

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Window", "Tab", "Title", "URL").
		Rows(rows...)

	return tbl.Render() + "\n"
}

// truncate cuts s to max runes for display.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
