package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablasso/pairwise/internal/survey"
	"github.com/pablasso/pairwise/internal/testutil"
)

// recordingEvents captures callbacks for assertions.
type recordingEvents struct {
	methods   []string
	started   []string
	completed []Result
	failed    []Result
	summary   *Summary
}

func (e *recordingEvents) OnBatchStart(methods []string, baseline string) { e.methods = methods }
func (e *recordingEvents) OnPairStart(num, total int, method string) {
	e.started = append(e.started, method)
}
func (e *recordingEvents) OnPairComplete(res Result) { e.completed = append(e.completed, res) }
func (e *recordingEvents) OnPairFailed(res Result) { e.failed = append(e.failed, res) }
func (e *recordingEvents) OnBatchComplete(s Summary) { e.summary = &s }

// failingBuilder fails for the listed methods and delegates otherwise.
type failingBuilder struct {
	next  Builder
	fails map[string]error
	calls []string
}

func (b *failingBuilder) BuildDocument(methodA, methodB, generationDir, outputDir string) (string, *survey.Document, error) {
	b.calls = append(b.calls, methodA)
	if err, ok := b.fails[methodA]; ok {
		return "", nil, err
	}
	return b.next.BuildDocument(methodA, methodB, generationDir, outputDir)
}

func TestMethods_FiltersFolders(t *testing.T) {
	genDir := testutil.NewGeneration(t).
		Method("maestro", "1.png").
		Method("dalle3", "1.png").
		Method("sdxl", "1.png").
		Method("old_run", "1.png").
		Method(".cache", "1.png").
		Method("scratch", "1.png").
		Prompts(map[string]string{"1": "p"}).
		Dir()
	require.NoError(t, os.WriteFile(filepath.Join(genDir, "notes.txt"), []byte("x"), 0644))

	methods, err := Methods(Options{GenerationDir: genDir, Baseline: "maestro", Exclude: []string{"scratch"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"dalle3", "sdxl"}, methods)
}

func TestMethods_MissingRoot(t *testing.T) {
	_, err := Methods(Options{GenerationDir: filepath.Join(t.TempDir(), "missing"), Baseline: "maestro"})
	assert.ErrorContains(t, err, "failed to read generation directory")
}

func TestRun_ContinuesPastFailures(t *testing.T) {
	genDir := testutil.NewGeneration(t).
		Method("maestro", "1.png", "2.png").
		Method("alpha", "1.png", "2.png").
		Method("beta", "9.png").
		Method("gamma", "2.png").
		Prompts(map[string]string{"1": "one", "2": "two"}).
		Dir()
	outDir := t.TempDir()

	events := &recordingEvents{}
	runner := New(survey.NewBuilder()).WithEvents(events)
	results, err := runner.Run(context.Background(), Options{
		GenerationDir: genDir,
		OutputDir:     outDir,
		Baseline:      "maestro",
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "alpha", results[0].Method)
	assert.True(t, results[0].OK())
	assert.Equal(t, 2, results[0].Pages)
	assert.Equal(t, filepath.Join(outDir, "alpha-maestro.json"), results[0].Path)

	assert.Equal(t, "beta", results[1].Method)
	assert.ErrorIs(t, results[1].Err, survey.ErrNoCommonFiles)

	assert.Equal(t, "gamma", results[2].Method)
	assert.True(t, results[2].OK())
	assert.Equal(t, 1, results[2].Pages)

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, events.started)
	assert.Len(t, events.completed, 2)
	assert.Len(t, events.failed, 1)
	require.NotNil(t, events.summary)
	assert.Equal(t, 2, events.summary.Succeeded)
	assert.Equal(t, 1, events.summary.Failed)
	assert.Equal(t, Summary{Succeeded: 2, Failed: 1}, Summarize(results))

	_, statErr := os.Stat(filepath.Join(outDir, "beta-maestro.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_BuilderErrorIsRecorded(t *testing.T) {
	genDir := testutil.NewGeneration(t).
		Method("maestro", "1.png").
		Method("alpha", "1.png").
		Method("beta", "1.png").
		Prompts(map[string]string{"1": "one"}).
		Dir()

	boom := errors.New("disk full")
	builder := &failingBuilder{next: survey.NewBuilder(), fails: map[string]error{"alpha": boom}}
	results, err := New(builder).Run(context.Background(), Options{
		GenerationDir: genDir,
		OutputDir:     t.TempDir(),
		Baseline:      "maestro",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, builder.calls)
	assert.ErrorIs(t, results[0].Err, boom)
	assert.True(t, results[1].OK())
	assert.Equal(t, 1, results[1].Pages)
}

// stubBuilder returns a fixed document without touching the filesystem.
type stubBuilder struct {
	doc *survey.Document
}

func (b stubBuilder) BuildDocument(methodA, methodB, generationDir, outputDir string) (string, *survey.Document, error) {
	return filepath.Join(outputDir, survey.OutputName(methodA, methodB)), b.doc, nil
}

func TestRun_PageCountComesFromBuiltDocument(t *testing.T) {
	genDir := testutil.NewGeneration(t).
		Method("maestro").
		Method("alpha").
		Dir()
	outDir := filepath.Join(t.TempDir(), "never-written")

	doc := &survey.Document{Pages: make([]survey.Page, 3)}
	results, err := New(stubBuilder{doc: doc}).Run(context.Background(), Options{
		GenerationDir: genDir,
		OutputDir:     outDir,
		Baseline:      "maestro",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 3, results[0].Pages)
	assert.Equal(t, filepath.Join(outDir, "alpha-maestro.json"), results[0].Path)
}

func TestRun_StopsWhenCancelled(t *testing.T) {
	genDir := testutil.NewGeneration(t).
		Method("maestro", "1.png").
		Method("alpha", "1.png").
		Prompts(map[string]string{"1": "one"}).
		Dir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	events := &recordingEvents{}
	results, err := New(survey.NewBuilder()).WithEvents(events).Run(ctx, Options{
		GenerationDir: genDir,
		OutputDir:     t.TempDir(),
		Baseline:      "maestro",
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
	assert.NotNil(t, events.summary)
}

func TestRun_MissingRootAborts(t *testing.T) {
	_, err := New(survey.NewBuilder()).Run(context.Background(), Options{
		GenerationDir: filepath.Join(t.TempDir(), "nope"),
		Baseline:      "maestro",
	})
	assert.Error(t, err)
}
