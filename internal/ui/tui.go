// Package ui provides the terminal presentation for tugas: the task list
// printer and the interactive menu.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/nibzard/tugas-go/internal/todo"
	"github.com/nibzard/tugas-go/internal/utils"
)

// ErrNotTTY is returned by RunMenu when the output is not a terminal.
var ErrNotTTY = errors.New("interactive menu requires a TTY")

// MenuOption configures the interactive menu.
type MenuOption func(*menuConfig)

type menuConfig struct {
	categories []string
	in         io.Reader
	out        io.Writer
}

// WithCategories sets the suggestions offered by the category chooser.
func WithCategories(categories []string) MenuOption {
	return func(c *menuConfig) {
		c.categories = categories
	}
}

// WithIO sets the menu's input and output. The output must be a terminal.
func WithIO(in io.Reader, out io.Writer) MenuOption {
	return func(c *menuConfig) {
		if in != nil {
			c.in = in
		}
		if out != nil {
			c.out = out
		}
	}
}

// RunMenu runs the interactive menu until the user quits. A failed write
// ends the menu and is returned; invalid input is reported and the menu
// continues.
func RunMenu(ctx context.Context, repo *todo.Repository, opts ...MenuOption) error {
	c := &menuConfig{
		in:  os.Stdin,
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !IsTTY(c.out) {
		return ErrNotTTY
	}

	model := newMenuModel(repo, c.categories, lipgloss.NewRenderer(c.out))
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
	)
	finalModel, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if m, ok := finalModel.(*menuModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type step int

const (
	stepMenu step = iota
	stepAddTitle
	stepEditIndex
	stepEditTitle
	stepEditAskCategory
	stepCategory
	stepCustomCategory
	stepDesc
	stepDate
	stepToggleIndex
	stepDeleteIndex
)

type flow int

const (
	flowNone flow = iota
	flowAdd
	flowEdit
)

// draft collects answers for an add or edit. Nil means "not given".
type draft struct {
	index    int
	title    *string
	category *string
	desc     *string
	date     *string
}

type menuModel struct {
	repo       *todo.Repository
	categories []string
	st         styles

	step  step
	flow  flow
	input string
	draft draft

	notice     string
	noticeErr  bool
	transcript []string // blocks printed above the menu, oldest first

	err      error
	quitting bool
}

func newMenuModel(repo *todo.Repository, categories []string, r *lipgloss.Renderer) *menuModel {
	return &menuModel{
		repo:       repo,
		categories: categories,
		st:         newStyles(r),
	}
}

func (m *menuModel) Init() tea.Cmd {
	return nil
}

func (m *menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m, m.quit()
	}
	if m.step == stepMenu {
		return m, m.updateMenu(key)
	}

	switch key.Type {
	case tea.KeyEsc:
		m.reset()
		m.setNotice("Cancelled.", false)
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input)
		m.input = ""
		return m, m.submit(value)
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(key.Runes)
	}
	return m, nil
}

func (m *menuModel) updateMenu(key tea.KeyMsg) tea.Cmd {
	m.notice = ""
	switch key.String() {
	case "1":
		return m.print(renderTasks(m.st, m.repo.List()))
	case "2":
		m.begin(flowAdd, stepAddTitle)
	case "3":
		m.begin(flowEdit, stepEditIndex)
	case "4":
		m.begin(flowNone, stepToggleIndex)
	case "5":
		m.begin(flowNone, stepDeleteIndex)
	case "6", "q":
		return m.quit()
	default:
		m.setNotice("Unrecognized choice.", true)
	}
	return nil
}

func (m *menuModel) submit(value string) tea.Cmd {
	switch m.step {
	case stepAddTitle:
		m.draft.title = todo.String(value)
		m.step = stepCategory

	case stepEditIndex:
		index, ok := m.parseIndex(value)
		if !ok {
			return nil
		}
		m.draft.index = index
		m.step = stepEditTitle

	case stepEditTitle:
		m.draft.title = optional(value)
		m.step = stepEditAskCategory

	case stepEditAskCategory:
		if strings.EqualFold(value, "y") {
			m.step = stepCategory
		} else {
			m.step = stepDesc
		}

	case stepCategory:
		return m.chooseCategory(value)

	case stepCustomCategory:
		m.draft.category = optional(value)
		m.step = stepDesc

	case stepDesc:
		m.draft.desc = optional(value)
		m.step = stepDate

	case stepDate:
		m.draft.date = optional(value)
		return m.finish()

	case stepToggleIndex:
		index, ok := m.parseIndex(value)
		if !ok {
			return nil
		}
		tasks := m.repo.List()
		if index < 1 || index > len(tasks) {
			m.invalidIndex()
			return nil
		}
		tasks, err := m.repo.SetDone(index, !tasks[index-1].Done)
		return m.report(tasks, err, "Status updated.")

	case stepDeleteIndex:
		index, ok := m.parseIndex(value)
		if !ok {
			return nil
		}
		tasks, err := m.repo.Delete(index)
		return m.report(tasks, err, "Task deleted.")
	}
	return nil
}

// chooseCategory handles the numbered chooser. Empty input keeps the
// default, 0 asks for a custom name, and bad input re-prompts.
func (m *menuModel) chooseCategory(value string) tea.Cmd {
	if value == "" {
		m.draft.category = nil
		m.step = stepDesc
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		m.setNotice("Invalid input. Enter a number.", true)
		return nil
	}
	switch {
	case n == 0:
		m.step = stepCustomCategory
	case n >= 1 && n <= len(m.categories):
		m.draft.category = todo.String(m.categories[n-1])
		m.step = stepDesc
	default:
		m.setNotice("Number out of range.", true)
	}
	return nil
}

func (m *menuModel) finish() tea.Cmd {
	d := m.draft
	switch m.flow {
	case flowAdd:
		tasks, err := m.repo.Add(todo.NewTask{
			Title:    todo.Deref(d.title, ""),
			Category: d.category,
			Desc:     d.desc,
			Date:     d.date,
		})
		return m.report(tasks, err, "Task added.")
	case flowEdit:
		tasks, err := m.repo.Edit(d.index, todo.Patch{
			Title:    d.title,
			Category: d.category,
			Desc:     d.desc,
			Date:     d.date,
		})
		return m.report(tasks, err, "Task updated.")
	}
	m.reset()
	return nil
}

// report shows the outcome of a repository call. Index errors are shown
// and the menu continues; any other error quits.
func (m *menuModel) report(tasks []todo.Task, err error, success string) tea.Cmd {
	m.reset()
	if err != nil {
		if errors.Is(err, todo.ErrIndexOutOfRange) {
			m.invalidIndex()
			return nil
		}
		m.err = err
		return m.quit()
	}
	m.setNotice(success, false)
	return m.print(renderTasks(m.st, tasks))
}

func (m *menuModel) parseIndex(value string) (int, bool) {
	index, err := utils.ParseIndex(value)
	if err != nil {
		m.invalidIndex()
		return 0, false
	}
	return index, true
}

func (m *menuModel) invalidIndex() {
	m.reset()
	m.setNotice("Invalid index.", true)
}

func (m *menuModel) begin(f flow, s step) {
	m.reset()
	m.flow = f
	m.step = s
}

func (m *menuModel) reset() {
	m.step = stepMenu
	m.flow = flowNone
	m.input = ""
	m.draft = draft{}
}

func (m *menuModel) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m *menuModel) print(block string) tea.Cmd {
	block = strings.TrimRight(block, "\n")
	m.transcript = append(m.transcript, block)
	return tea.Println(block)
}

func (m *menuModel) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

func (m *menuModel) View() string {
	if m.quitting {
		if m.err != nil {
			return m.st.errText.Render("Error: "+m.err.Error()) + "\n"
		}
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString("\n" + m.st.heading.Render("--- tugas: simple to-do list ---") + "\n")

	if m.notice != "" {
		style := m.st.notice
		if m.noticeErr {
			style = m.st.errText
		}
		b.WriteString(style.Render(m.notice) + "\n")
	}

	if m.step == stepMenu {
		writeMenu(&b)
		b.WriteString("Choose (1-6): ")
		return b.String()
	}

	if m.step == stepCategory {
		b.WriteString("Choose a category:\n")
		b.WriteString(renderCategories(m.st, m.categories))
		b.WriteString(" 0. Other (type your own)\n")
	}
	b.WriteString(m.prompt() + m.input + m.st.cursor.Render(" ") + "\n")
	b.WriteString(m.st.muted.Render("enter: confirm | esc: back to menu | ctrl+c: quit") + "\n")
	return b.String()
}

func (m *menuModel) prompt() string {
	editing := m.flow == flowEdit
	switch m.step {
	case stepAddTitle:
		return "Title: "
	case stepEditIndex, stepToggleIndex, stepDeleteIndex:
		return "Task index: "
	case stepEditTitle:
		return "New title (empty = keep): "
	case stepEditAskCategory:
		return "Change category? (y/n): "
	case stepCategory:
		if editing {
			return "Category number (empty = keep): "
		}
		return "Category number (empty = default): "
	case stepCustomCategory:
		return "Custom category: "
	case stepDesc:
		if editing {
			return "New description (empty = keep): "
		}
		return "Description (optional): "
	case stepDate:
		if editing {
			return "New date (YYYY-MM-DD, empty = keep): "
		}
		return "Date (YYYY-MM-DD, optional): "
	}
	return ""
}

func writeMenu(b *strings.Builder) {
	items := []string{
		"List tasks",
		"Add a task",
		"Edit a task",
		"Mark done / not done",
		"Delete a task",
		"Quit",
	}
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
}

// optional maps an empty answer to nil.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return todo.String(s)
}
