package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tugas-go/internal/todo"
)

const ruleWidth = 72

type styles struct {
	heading  lipgloss.Style
	title    lipgloss.Style
	category lipgloss.Style
	done     lipgloss.Style
	pending  lipgloss.Style
	muted    lipgloss.Style
	notice   lipgloss.Style
	errText  lipgloss.Style
	cursor   lipgloss.Style
}

// newStyles binds the palette to r, so writers that are not terminals
// get plain text.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading:  r.NewStyle().Bold(true),
		title:    r.NewStyle().Bold(true),
		category: r.NewStyle().Foreground(lipgloss.Color("12")),
		done:     r.NewStyle().Foreground(lipgloss.Color("10")),
		pending:  r.NewStyle().Foreground(lipgloss.Color("11")),
		muted:    r.NewStyle().Faint(true),
		notice:   r.NewStyle().Foreground(lipgloss.Color("14")),
		errText:  r.NewStyle().Foreground(lipgloss.Color("9")),
		cursor:   r.NewStyle().Reverse(true),
	}
}

// PrintTasks writes the numbered task list to w.
func PrintTasks(w io.Writer, tasks []todo.Task) {
	fmt.Fprint(w, renderTasks(newStyles(lipgloss.NewRenderer(w)), tasks))
}

// PrintCategories writes the numbered category suggestions to w.
func PrintCategories(w io.Writer, categories []string) {
	fmt.Fprint(w, renderCategories(newStyles(lipgloss.NewRenderer(w)), categories))
}

func renderTasks(st styles, tasks []todo.Task) string {
	if len(tasks) == 0 {
		return "No tasks saved yet.\n"
	}

	var b strings.Builder
	b.WriteString("\n" + st.heading.Render("Tasks:") + "\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	for i, t := range tasks {
		title := t.Title
		if title == "" {
			title = "(untitled)"
		}
		category := t.Category
		if category == "" {
			category = todo.DefaultCategory
		}

		status := st.pending.Render("Not done")
		if t.Done {
			status = st.done.Render("Done")
		}

		fmt.Fprintf(&b, "%2d. %s %s\n", i+1, st.title.Render(title), st.category.Render("["+category+"]"))
		fmt.Fprintf(&b, "     Status : %s\n", status)
		fmt.Fprintf(&b, "     Date   : %s\n", todo.Deref(t.Date, "-"))
		if desc := todo.Deref(t.Desc, ""); desc != "" {
			fmt.Fprintf(&b, "     Notes  : %s\n", desc)
		}
		b.WriteString(st.muted.Render(strings.Repeat("-", ruleWidth)) + "\n")
	}
	return b.String()
}

func renderCategories(st styles, categories []string) string {
	var b strings.Builder
	for i, c := range categories {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, st.category.Render(c))
	}
	return b.String()
}
