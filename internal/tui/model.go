package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/futig/blog-generator/internal/entity"
	"github.com/futig/blog-generator/internal/view"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const promptPlaceholder = "Enter blog topic (e.g., Difference between Data Science and Machine Learning)"

type Generator interface {
	GenerateBlog(ctx context.Context, req *entity.GenerateBlogRequest) (*entity.BlogResult, error)
}

type Exporter interface {
	Export(format entity.ExportFormat, blog *entity.BlogResult) (*entity.ExportedDocument, error)
}

// resolvedMsg carries the outcome of one generation call back to the model.
type resolvedMsg struct {
	sub    view.Submission
	result *entity.BlogResult
	err    error
}

// savedMsg reports where an export was written.
type savedMsg struct {
	path string
	err  error
}

// Model hosts the blog generator screen in a terminal.
type Model struct {
	ctx       context.Context
	state     view.State
	generator Generator
	exporter  Exporter
	credits   []entity.Contributor
	exportDir string

	input    textarea.Model
	spinner  spinner.Model
	output   viewport.Model
	help     help.Model
	keys     keyMap
	status   string
	width    int
	height   int
}

// NewModel creates the screen. ctx carries the logger and is handed to
// every generation call.
func NewModel(ctx context.Context, generator Generator, exporter Exporter, credits []entity.Contributor, exportDir string) Model {
	ta := textarea.New()
	ta.Placeholder = promptPlaceholder
	ta.Focus()
	ta.SetWidth(80)
	ta.SetHeight(4)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	return Model{
		ctx:       ctx,
		state:     view.New(),
		generator: generator,
		exporter:  exporter,
		credits:   credits,
		exportDir: exportDir,
		input:     ta,
		spinner:   sp,
		output:    viewport.New(80, 20),
		help:      help.New(),
		keys:      newKeyMap(),
		width:     80,
	}
}

// State returns the current view state.
func (m Model) State() view.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 4)
		m.output.Width = msg.Width - 4
		// header, input, button, status and help take about 14 lines
		m.output.Height = max(msg.Height-14, 3)
		m.refreshOutput()
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd

	case resolvedMsg:
		m.state = m.state.Resolve(msg.sub, msg.result, msg.err)
		m.status = ""
		m.refreshOutput()
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.status = "Export failed: " + msg.err.Error()
		} else {
			m.status = "Saved to " + msg.path
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.credits):
		m.state = m.state.ToggleCredits()
		return m, nil
	case key.Matches(msg, m.keys.close):
		m.state = m.state.CloseCredits()
		return m, nil
	}

	// the overlay takes every other key while it is open
	if m.state.CreditsVisible() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.submit):
		return m.submit()
	case key.Matches(msg, m.keys.export):
		return m, m.save()
	case key.Matches(msg, m.keys.up, m.keys.down):
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state = m.state.EditPrompt(m.input.Value())
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	state, sub, err := m.state.Submit()
	if err != nil {
		ctxzap.Debug(m.ctx, "submit refused", zap.Error(err))
		return m, nil
	}

	m.state = state
	m.status = ""
	m.refreshOutput()
	ctxzap.Info(m.ctx, "blog generation submitted", zap.Uint64("submission", sub.Seq))

	return m, tea.Batch(m.generate(sub), m.spinner.Tick)
}

// generate runs the call for sub. It has no timeout.
func (m Model) generate(sub view.Submission) tea.Cmd {
	ctx, gen := m.ctx, m.generator
	return func() tea.Msg {
		result, err := gen.GenerateBlog(ctx, sub.Body())
		if err != nil {
			ctxzap.Error(ctx, "blog generation failed", zap.Error(err))
		}
		return resolvedMsg{sub: sub, result: result, err: err}
	}
}

func (m Model) save() tea.Cmd {
	blog := m.state.Result()
	if blog == nil {
		return nil
	}

	exporter, dir := m.exporter, m.exportDir
	return func() tea.Msg {
		doc, err := exporter.Export(entity.FormatMarkdown, blog)
		if err != nil {
			return savedMsg{err: err}
		}

		path := filepath.Join(dir, doc.FileName)
		if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
			return savedMsg{err: fmt.Errorf("write %s: %w", path, err)}
		}
		return savedMsg{path: path}
	}
}

func (m *Model) refreshOutput() {
	m.output.SetContent(m.renderResult())
	m.output.GotoTop()
}
