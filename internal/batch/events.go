package batch

// Events receives callbacks while a batch runs. The console printer and
// the TUI both implement it.
type Events interface {
	// OnBatchStart is called once with the methods that will be compared
	OnBatchStart(methods []string, baseline string)

	// OnPairStart is called before each comparison is built
	OnPairStart(num, total int, method string)

	// OnPairComplete is called when a comparison file was written
	OnPairComplete(res Result)

	// OnPairFailed is called when a comparison could not be built
	OnPairFailed(res Result)

	// OnBatchComplete is called after the last pair, or on cancellation
	OnBatchComplete(summary Summary)
}

type noopEvents struct{}

func (noopEvents) OnBatchStart([]string, string) {}
func (noopEvents) OnPairStart(int, int, string) {}
func (noopEvents) OnPairComplete(Result) {}
func (noopEvents) OnPairFailed(Result) {}
func (noopEvents) OnBatchComplete(Summary) {}
