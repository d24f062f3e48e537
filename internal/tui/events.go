package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/pairwise/internal/batch"
)

// BatchStartedMsg lists the methods about to be compared.
type BatchStartedMsg struct {
	Methods  []string
	Baseline string
}

// PairStartedMsg is sent before a comparison is built.
type PairStartedMsg struct {
	Num    int
	Total  int
	Method string
}

// PairDoneMsg carries the outcome of one comparison.
type PairDoneMsg struct {
	Result batch.Result
}

// BatchSummaryMsg is sent once the runner has processed every pair.
type BatchSummaryMsg struct {
	Summary batch.Summary
}

// BatchDoneMsg is sent after the runner returns.
type BatchDoneMsg struct {
	Err error
}

// ProgramEvents implements batch.Events by forwarding each callback to a
// Bubble Tea program as a message.
type ProgramEvents struct {
	program *tea.Program
}

// NewProgramEvents creates events that send to program.
func NewProgramEvents(program *tea.Program) *ProgramEvents {
	return &ProgramEvents{program: program}
}

// OnBatchStart implements batch.Events.
func (e *ProgramEvents) OnBatchStart(methods []string, baseline string) {
	e.program.Send(BatchStartedMsg{Methods: methods, Baseline: baseline})
}

// OnPairStart implements batch.Events.
func (e *ProgramEvents) OnPairStart(num, total int, method string) {
	e.program.Send(PairStartedMsg{Num: num, Total: total, Method: method})
}

// OnPairComplete implements batch.Events.
func (e *ProgramEvents) OnPairComplete(res batch.Result) {
	e.program.Send(PairDoneMsg{Result: res})
}

// OnPairFailed implements batch.Events.
func (e *ProgramEvents) OnPairFailed(res batch.Result) {
	e.program.Send(PairDoneMsg{Result: res})
}

// OnBatchComplete implements batch.Events.
func (e *ProgramEvents) OnBatchComplete(summary batch.Summary) {
	e.program.Send(BatchSummaryMsg{Summary: summary})
}

var _ batch.Events = (*ProgramEvents)(nil)
