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
	"go.uber.org/zap"
)

// Focus targets, cycled with tab
const (
	focusInput = iota
	focusLog
	focusView
)

// Model represents the Bubble Tea shell state
type Model struct {
	ready bool

	commandInput textinput.Model
	logList      list.Model
	viewport     viewport.Model

	session *Session
	config  ShellConfig
	logger  *zap.SugaredLogger

	focusIndex int
	showHelp   bool
	status     string
	statusErr  bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the shell
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the shell styles from a color scheme
func NewStyles(scheme ColorScheme) *Styles {
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
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
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

// logItem is one executed command with its output
type logItem struct {
	command string
	output  string
	failed  bool
}

func (i logItem) FilterValue() string { return i.command }
func (i logItem) Title() string       { return "> " + i.command }
func (i logItem) Description() string {
	first, _, _ := strings.Cut(i.output, "\n")
	if i.failed {
		return "error: " + first
	}
	return first
}

// InitialModel creates the shell model around a session
func InitialModel(session *Session, config ShellConfig, scheme ColorScheme, logger *zap.SugaredLogger) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30, erase 20, help..."
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	logList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	logList.SetShowTitle(false)
	logList.SetShowHelp(false)
	logList.SetFilteringEnabled(false)

	vp := viewport.New(0, 0)

	glamourRenderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		logger.Debugw("markdown renderer unavailable", "error", err)
	}

	styles := NewStyles(scheme)
	ti.PromptStyle = styles.InputPrompt

	m := Model{
		commandInput:    ti,
		logList:         logList,
		viewport:        vp,
		session:         session,
		config:          config,
		logger:          logger,
		focusIndex:      focusInput,
		styles:          styles,
		glamourRenderer: glamourRenderer,
	}
	m.refreshView()
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
		return m.updateKeys(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	case clipboardMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("clipboard unavailable: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("copied %d elements to clipboard", m.session.Tree().Len()), false)
		}
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.focusIndex = (m.focusIndex + 1) % 3
		if m.focusIndex == focusInput {
			m.commandInput.Focus()
		} else {
			m.commandInput.Blur()
		}
		return m, nil
	case "f1":
		m.showHelp = !m.showHelp
		m.refreshView()
		return m, nil
	case "ctrl+y":
		return m, copyListing(m.session.Listing())
	case "enter":
		if m.focusIndex == focusInput {
			m.execute(m.commandInput.Value())
			m.commandInput.Reset()
			return m, nil
		}
	case "pgup":
		m.viewport.LineUp(m.viewport.Height)
		return m, nil
	case "pgdown":
		m.viewport.LineDown(m.viewport.Height)
		return m, nil
	}

	switch m.focusIndex {
	case focusInput:
		m.commandInput, cmd = m.commandInput.Update(msg)
	case focusLog:
		m.logList, cmd = m.logList.Update(msg)
	case focusView:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// execute runs one command against the session and records it in the log
func (m *Model) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	output, err := m.session.Execute(line)
	item := logItem{command: line, output: output}
	if err != nil {
		item.output = err.Error()
		item.failed = true
		m.logger.Debugw("shell command failed", "command", line, "error", err)
		m.setStatus(err.Error(), true)
	} else {
		m.setStatus(fmt.Sprintf("len=%d height=%d", m.session.Tree().Len(), m.session.Tree().Height()), false)
	}

	// Newest first, bounded by the configured history size
	items := append([]list.Item{item}, m.logList.Items()...)
	if limit := max(m.config.HistorySize, 1); len(items) > limit {
		items = items[:limit]
	}
	m.logList.SetItems(items)
	m.logList.Select(0)

	if strings.HasPrefix(strings.ToLower(line), "help") && err == nil {
		m.showHelp = true
	}
	m.refreshView()
}

func (m *Model) setStatus(text string, failed bool) {
	m.status = text
	m.statusErr = failed
}

// refreshView fills the right pane with the tree diagram or the help page
func (m *Model) refreshView() {
	if m.showHelp {
		m.viewport.SetContent(m.renderMarkdown(shellHelp))
		return
	}

	var content strings.Builder
	content.WriteString(m.session.Listing())
	content.WriteString("\n\n")
	if m.config.ShowDiagram {
		content.WriteString(m.session.Diagram())
	}
	m.viewport.SetContent(content.String())
}

func (m *Model) renderMarkdown(text string) string {
	if m.glamourRenderer == nil {
		return text
	}
	if rendered, err := m.glamourRenderer.Render(text); err == nil {
		return rendered
	}
	return text
}

// View renders the shell
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	logHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.boxStyle(focusInput).
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(m.title(focusInput, " Command")),
			m.commandInput.View(),
		))

	logBox := m.boxStyle(focusLog).
		Width(leftWidth).
		Height(logHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(m.title(focusLog, " Log")),
			m.logList.View(),
		))

	viewTitle := " Tree"
	if m.showHelp {
		viewTitle = " Help"
	}
	viewBox := m.boxStyle(focusView).
		Width(rightWidth).
		Height(logHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(m.title(focusView, viewTitle)),
			m.viewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, logBox),
		viewBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderKeyHelp(),
	)
}

func (m Model) boxStyle(target int) lipgloss.Style {
	if m.focusIndex == target {
		return m.styles.BorderFocused
	}
	return m.styles.BorderBlurred
}

func (m Model) title(target int, name string) string {
	if m.focusIndex == target {
		return name + " (Active) "
	}
	return name + " "
}

func (m Model) renderStatus() string {
	style := m.styles.SuccessMessage
	if m.statusErr {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(style.Render(m.status))
}

// renderKeyHelp renders the key binding footer
func (m Model) renderKeyHelp() string {
	keys := []string{"enter", "tab", "f1", "ctrl+y", "pgup/pgdown", "esc"}
	descs := []string{"run command", "switch focus", "toggle help", "copy elements", "scroll tree", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

func (m *Model) updateLayout() {
	inputHeight := 3
	logHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.commandInput.Width = leftWidth - 4 - len(m.commandInput.Prompt)
	m.logList.SetSize(leftWidth-2, logHeight-2)
	m.viewport.Width = rightWidth - 2
	m.viewport.Height = logHeight + inputHeight
}

type clipboardMsg struct {
	err error
}

// copyListing copies the ascending element listing to the clipboard
func copyListing(listing string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(listing)}
	}
}

// runShell starts the Bubble Tea shell
func runShell(session *Session, config ShellConfig, logger *zap.SugaredLogger) error {
	_, scheme := InitializeColors()
	model := InitialModel(session, config, scheme, logger)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
