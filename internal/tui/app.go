// Package tui shows a batch comparison run as an interactive terminal view.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/pairwise/internal/batch"
)

// Options configures the program.
type Options struct {
	// AutoQuit exits as soon as the batch finishes instead of waiting for q.
	AutoQuit bool
	// Input and Output default to the terminal when nil. Headless turns off
	// the signal handler and, without an Input, disables input entirely.
	Input    io.Reader
	Output   io.Writer
	Headless bool
}

// Run executes the batch while rendering its progress. It returns the
// results collected before the batch finished or the user quit.
// Quitting mid-run is not an error.
func Run(parent context.Context, runner *batch.Runner, opts batch.Options, uiOpts Options) ([]batch.Result, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	model := NewBatchModel(opts.Baseline, cancel, uiOpts.AutoQuit)

	var programOpts []tea.ProgramOption
	switch {
	case uiOpts.Input != nil:
		programOpts = append(programOpts, tea.WithInput(uiOpts.Input))
	case uiOpts.Headless:
		programOpts = append(programOpts, tea.WithInput(nil))
	}
	if uiOpts.Headless {
		programOpts = append(programOpts, tea.WithoutSignalHandler())
	}
	if uiOpts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(uiOpts.Output))
	}
	program := tea.NewProgram(model, programOpts...)

	type outcome struct {
		results []batch.Result
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		results, err := runner.WithEvents(NewProgramEvents(program)).Run(ctx, opts)
		done <- outcome{results: results, err: err}
		program.Send(BatchDoneMsg{Err: err})
	}()

	if _, err := program.Run(); err != nil {
		cancel()
		<-done
		return nil, err
	}

	// The user may quit before the batch ends; stop it between pairs.
	cancel()
	out := <-done
	if errors.Is(out.err, context.Canceled) && parent.Err() == nil {
		return out.results, nil
	}
	return out.results, out.err
}
