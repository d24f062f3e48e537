package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/pairwise/internal/batch"
	"github.com/pablasso/pairwise/internal/tui/components"
	"github.com/pablasso/pairwise/internal/tui/styles"
)

const progressWidth = 24

type rowStatus int

const (
	rowPending rowStatus = iota
	rowRunning
	rowDone
	rowFailed
)

type row struct {
	method string
	status rowStatus
	result batch.Result
}

// BatchModel renders the progress of a batch run.
type BatchModel struct {
	baseline string
	rows     []row
	finished int
	spinner  spinner.Model
	summary  *batch.Summary
	err      error
	done     bool
	autoQuit bool
	cancel   context.CancelFunc
	width    int
}

// NewBatchModel creates the model. cancel stops the batch when the user quits.
func NewBatchModel(baseline string, cancel context.CancelFunc, autoQuit bool) BatchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.MethodStyle

	return BatchModel{
		baseline: baseline,
		spinner:  s,
		cancel:   cancel,
		autoQuit: autoQuit,
	}
}

// Init implements tea.Model.
func (m BatchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m BatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case BatchStartedMsg:
		m.baseline = msg.Baseline
		m.rows = make([]row, len(msg.Methods))
		for i, method := range msg.Methods {
			m.rows[i] = row{method: method}
		}
		return m, nil

	case PairStartedMsg:
		if i := m.rowIndex(msg.Method); i >= 0 {
			m.rows[i].status = rowRunning
		}
		return m, nil

	case PairDoneMsg:
		if i := m.rowIndex(msg.Result.Method); i >= 0 {
			m.rows[i].result = msg.Result
			m.rows[i].status = rowDone
			if !msg.Result.OK() {
				m.rows[i].status = rowFailed
			}
		}
		m.finished++
		return m, nil

	case BatchSummaryMsg:
		summary := msg.Summary
		m.summary = &summary
		return m, nil

	case BatchDoneMsg:
		m.done = true
		m.err = msg.Err
		if m.autoQuit {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m BatchModel) rowIndex(method string) int {
	for i, r := range m.rows {
		if r.method == method {
			return i
		}
	}
	return -1
}

// View implements tea.Model.
func (m BatchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Comparing against %s", m.baseline)))
	b.WriteString("\n")

	for _, r := range m.rows {
		b.WriteString(m.renderRow(r))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.NewProgress(m.finished, len(m.rows), progressWidth).View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("Batch stopped: %v", m.err)))
		b.WriteString("\n")
	case m.summary != nil:
		b.WriteString(fmt.Sprintf("%d succeeded, %d failed\n", m.summary.Succeeded, m.summary.Failed))
	}

	if m.done {
		b.WriteString(styles.SubtleStyle.Render("Press q to exit"))
	} else {
		b.WriteString(styles.SubtleStyle.Render("Press q to stop"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m BatchModel) renderRow(r row) string {
	switch r.status {
	case rowRunning:
		return fmt.Sprintf("%s %s", m.spinner.View(), r.method)
	case rowDone:
		return fmt.Sprintf("%s %s %s",
			styles.SuccessStyle.Render(styles.IconSuccess),
			r.method,
			styles.SubtleStyle.Render(fmt.Sprintf("%s (%d pairs)", r.result.Path, r.result.Pages)))
	case rowFailed:
		return fmt.Sprintf("%s %s %s",
			styles.ErrorStyle.Render(styles.IconFailure),
			r.method,
			styles.ErrorStyle.Render(r.result.Err.Error()))
	default:
		return fmt.Sprintf("%s %s", styles.SubtleStyle.Render(styles.IconPending), r.method)
	}
}
