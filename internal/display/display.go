// Package display prints comparison results to the console.
package display

import (
	"fmt"
	"io"
	"time"

	"github.com/pablasso/pairwise/internal/batch"
	"github.com/pablasso/pairwise/internal/tui/styles"
)

// Printer writes styled, line-oriented output. It implements batch.Events.
type Printer struct {
	writer io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{writer: w}
}

// Created reports a written comparison file.
func (p *Printer) Created(path string, pages int) {
	fmt.Fprintf(p.writer, "%s Created comparison file: %s\n",
		styles.SuccessStyle.Render(styles.IconSuccess), path)
	fmt.Fprintf(p.writer, "  %s\n", styles.SubtleStyle.Render(fmt.Sprintf("Number of image pairs: %d", pages)))
}

// Error reports a failed comparison.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.writer, "%s %s\n",
		styles.ErrorStyle.Render(styles.IconFailure),
		styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
}

// OnBatchStart implements batch.Events.
func (p *Printer) OnBatchStart(methods []string, baseline string) {
	fmt.Fprintf(p.writer, "Comparing %d method(s) against %s\n",
		len(methods), styles.MethodStyle.Render(baseline))
}

// OnPairStart implements batch.Events.
func (p *Printer) OnPairStart(num, total int, method string) {
	fmt.Fprintf(p.writer, "%s\n", styles.SubtleStyle.Render(fmt.Sprintf("[%d/%d] %s", num, total, method)))
}

// OnPairComplete implements batch.Events.
func (p *Printer) OnPairComplete(res batch.Result) {
	p.Created(res.Path, res.Pages)
	fmt.Fprintf(p.writer, "  Successfully created: %s\n", res.Path)
}

// OnPairFailed implements batch.Events.
func (p *Printer) OnPairFailed(res batch.Result) {
	p.Error(res.Err)
}

// OnBatchComplete implements batch.Events.
func (p *Printer) OnBatchComplete(summary batch.Summary) {
	line := fmt.Sprintf("%d succeeded, %d failed in %s",
		summary.Succeeded, summary.Failed, formatDuration(summary.Duration))
	style := styles.SuccessStyle
	if summary.Failed > 0 {
		style = styles.ErrorStyle
	}
	fmt.Fprintln(p.writer, styles.BoxStyle.Render(style.Render(line)))
}

var _ batch.Events = (*Printer)(nil)

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}

	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
