// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/pointavl/avl"
	"github.com/cybrota/pointavl/point"
)

// Focus targets, cycled with tab
const (
	focusPrompt = iota
	focusPoints
	focusShape
	focusCount
)

const keyHelpMarkdown = `
# Prompt commands

| command | effect |
|---------|--------|
| ` + "`insert x y`" + ` | insert the point (x,y) |
| ` + "`erase x y`" + ` | erase the point equal to (x,y) |
| ` + "`find x y`" + ` | select the point equal to (x,y) |
| ` + "`check`" + ` | verify order, heights and balance |
| ` + "`clear`" + ` | remove every point |

Coordinates may also be written as ` + "`x,y`" + `.

# Keys

* **enter** on the prompt runs the command, on the point list copies the point
* **ctrl+y** copies the whole tree in pre-order
* **tab** switches focus, **f1** toggles this help, **esc** quits
`

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	prompt     textinput.Model
	pointsList list.Model
	shape      viewport.Model

	// Data
	tree        *avl.Tree
	source      string
	renderCache *cache.Cache

	// State
	focusIndex int
	showHelp   bool
	status     string
	statusErr  bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the styles for a color scheme
func NewStyles(scheme *ColorScheme) *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// pointItem is one entry of the pre-order point list
type pointItem struct {
	point    point.Point
	position int
	distance float64
}

func (i pointItem) FilterValue() string { return i.point.String() }
func (i pointItem) Title() string       { return i.point.String() }
func (i pointItem) Description() string {
	return fmt.Sprintf("#%d • distance %.6g", i.position, i.distance)
}

// statusMsg reports the outcome of a background command such as a clipboard copy
type statusMsg struct {
	text string
	err  error
}

// InitialModel creates the initial model
func InitialModel(tree *avl.Tree, source string, rc *cache.Cache) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 31.7749 35.2016"
	ti.Prompt = "› "
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 50

	pointsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	pointsList.SetShowTitle(false)
	pointsList.SetShowHelp(false)
	pointsList.SetFilteringEnabled(false)

	shape := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		prompt:          ti,
		pointsList:      pointsList,
		shape:           shape,
		tree:            tree,
		source:          source,
		renderCache:     rc,
		styles:          NewStyles(GetColorScheme()),
		glamourRenderer: glamourRenderer,
	}
	m.refresh()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.setFocus((m.focusIndex + 1) % focusCount)
			return m, nil
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshShape()
			return m, nil
		case "ctrl+y":
			return m, copyToClipboard(m.tree.String(), fmt.Sprintf("%d points", m.tree.Len()))
		}
		return m.updateFocused(msg)

	case statusMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus(msg.text, false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		m.refreshShape()
	}

	return m, nil
}

func (m Model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusIndex {
	case focusPrompt:
		if msg.String() == "enter" {
			m.runPrompt(m.prompt.Value())
			return m, nil
		}
		m.prompt, cmd = m.prompt.Update(msg)
	case focusPoints:
		if msg.String() == "enter" {
			if item, ok := m.pointsList.SelectedItem().(pointItem); ok {
				return m, copyToClipboard(item.point.String(), item.point.String())
			}
			return m, nil
		}
		m.pointsList, cmd = m.pointsList.Update(msg)
	case focusShape:
		switch msg.String() {
		case "pgup":
			m.shape.LineUp(m.shape.Height)
		case "pgdown":
			m.shape.LineDown(m.shape.Height)
		case "home":
			m.shape.GotoTop()
		case "end":
			m.shape.GotoBottom()
		default:
			m.shape, cmd = m.shape.Update(msg)
		}
	}
	return m, cmd
}

// runPrompt parses and applies one prompt line to the tree
func (m *Model) runPrompt(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	cmd, err := parseCommand(line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	text, err := apply(m.tree, cmd)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(text, false)
	m.prompt.SetValue("")
	m.refresh()
	if cmd.Verb == "find" {
		m.selectPoint(cmd.Point)
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) setFocus(i int) {
	m.focusIndex = i
	if i == focusPrompt {
		m.prompt.Focus()
	} else {
		m.prompt.Blur()
	}
}

// refresh rebuilds the point list and the tree shape after a change
func (m *Model) refresh() {
	ref := point.DefaultReference
	if order, ok := m.tree.Order().(point.DistanceOrder); ok {
		ref = order.Ref
	}
	items := make([]list.Item, 0, m.tree.Len())
	for p := range m.tree.All() {
		items = append(items, pointItem{point: p, position: len(items) + 1, distance: p.DistanceTo(ref)})
	}
	m.pointsList.SetItems(items)
	m.refreshShape()
}

func (m *Model) refreshShape() {
	if m.showHelp {
		m.shape.SetContent(m.keyHelp())
		return
	}
	if m.tree.IsEmpty() {
		m.shape.SetContent("The tree is empty. Try: insert 1 2")
		return
	}
	var sb strings.Builder
	m.tree.Dump(&sb)
	m.shape.SetContent(sb.String())
}

// keyHelp renders the key help through glamour, cached per viewport width
func (m *Model) keyHelp() string {
	if m.glamourRenderer == nil {
		return keyHelpMarkdown
	}
	rendered, err := GetOrRender(m.renderCache, renderKey("keys", m.shape.Width), func() (string, error) {
		return m.glamourRenderer.Render(keyHelpMarkdown)
	})
	if err != nil {
		return keyHelpMarkdown
	}
	return rendered
}

// selectPoint moves the list cursor to the point equal to p
func (m *Model) selectPoint(p point.Point) {
	for i, item := range m.pointsList.Items() {
		if pi, ok := item.(pointItem); ok && pi.point.Equal(p) {
			m.pointsList.Select(i)
			return
		}
	}
}

// View renders the prompt and point list on the left and the shape on the right
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	box := func(focus int, width, height int, title, content string) string {
		style := m.styles.BorderBlurred
		if m.focusIndex == focus {
			style = m.styles.BorderFocused
			title += " (Active)"
		}
		return style.
			Width(width).
			Height(height).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Width(width-4).Render(title),
				content,
			))
	}

	promptBox := box(focusPrompt, leftWidth, inputHeight, " ⌨ Command", m.prompt.View())
	listBox := box(focusPoints, leftWidth, listHeight,
		fmt.Sprintf(" 📋 Pre-order (%d points)", m.tree.Len()), m.pointsList.View())

	shapeTitle := fmt.Sprintf(" 🌳 Shape (height %d)", m.tree.Height())
	if m.showHelp {
		shapeTitle = " 📖 Help"
	}
	shapeBox := box(focusShape, rightWidth, listHeight+inputHeight+2, shapeTitle, m.shape.View())

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, promptBox, listBox),
		shapeBox,
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatus(), m.renderKeys())
}

func (m Model) renderStatus() string {
	title := m.source
	if title == "" {
		title = "new tree"
	}
	if m.status == "" {
		return lipgloss.NewStyle().Padding(0, 2).Render(title)
	}
	style := m.styles.SuccessMessage
	if m.statusErr {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(title + " • " + style.Render(m.status))
}

// renderKeys renders the key footer
func (m Model) renderKeys() string {
	keys := []string{"enter", "ctrl+y", "tab", "f1", "esc"}
	descs := []string{"run / copy point", "copy tree", "switch focus", "help", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.prompt.Width = leftWidth - 6
	m.pointsList.SetSize(leftWidth-2, listHeight-2)
	m.shape.Width = rightWidth - 2
	m.shape.Height = inputHeight + listHeight
}

// copyToClipboard copies text to clipboard; label names it in the status line
func copyToClipboard(text, label string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: fmt.Sprintf("📋 copied %s to clipboard", label)}
	}
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(tree *avl.Tree, source string) error {
	model := InitialModel(tree, source, NewRenderCache())

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
