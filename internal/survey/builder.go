package survey

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"
)

// Rand is the random source used for the per-page left/right coin flip.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// NewSeededRand returns a deterministic source for the given seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Builder assembles and writes comparison surveys.
type Builder struct {
	rng         Rand
	title       string
	description string
	logger      *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithRand sets the random source for the left/right placement.
func WithRand(r Rand) Option {
	return func(b *Builder) {
		if r != nil {
			b.rng = r
		}
	}
}

// WithTitle overrides the survey title.
func WithTitle(title string) Option {
	return func(b *Builder) {
		if title != "" {
			b.title = title
		}
	}
}

// WithDescription overrides the survey description.
func WithDescription(description string) Option {
	return func(b *Builder) {
		if description != "" {
			b.description = description
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder creates a Builder with the default title, description and a
// process-wide random source.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		rng:         globalRand{},
		title:       DefaultTitle,
		description: DefaultDescription,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Assemble reads both method folders and the prompt table under
// generationDir and returns the survey document without writing anything.
func (b *Builder) Assemble(methodA, methodB, generationDir string) (*Document, error) {
	a := Method{Name: methodA, Dir: filepath.Join(generationDir, methodA)}
	bm := Method{Name: methodB, Dir: filepath.Join(generationDir, methodB)}

	filesA, err := listFiles(a)
	if err != nil {
		return nil, err
	}
	filesB, err := listFiles(bm)
	if err != nil {
		return nil, err
	}

	common := commonFiles(filesA, filesB)
	if len(common) == 0 {
		return nil, &noCommonFilesError{methodA: methodA, methodB: methodB}
	}
	b.logger.Debug("matched files",
		zap.String("method_a", methodA),
		zap.String("method_b", methodB),
		zap.Int("a", len(filesA)),
		zap.Int("b", len(filesB)),
		zap.Int("common", len(common)))

	prompts, err := LoadPromptTable(generationDir)
	if err != nil {
		return nil, err
	}

	base := filepath.ToSlash(generationDir)
	doc := &Document{
		Title:       b.title,
		Description: b.description,
		Pages:       make([]Page, 0, len(common)),
	}
	for i, filename := range common {
		index := indexOf(filename)
		prompt, err := prompts.Lookup(index)
		if err != nil {
			return nil, err
		}

		imageA := Image{URL: path.Join(base, methodA, filename), Alt: prompt, Method: methodA}
		imageB := Image{URL: path.Join(base, methodB, filename), Alt: prompt, Method: methodB}
		if b.rng.Float64() >= 0.5 {
			imageA, imageB = imageB, imageA
		}

		doc.Pages = append(doc.Pages, Page{
			ID:     i + 1,
			Prompt: prompt,
			ReferenceImage: Image{
				URL: path.Join(base, ReferenceDir, index+".png"),
				Alt: referenceAlt,
			},
			ImageA: imageA,
			ImageB: imageB,
		})
	}
	return doc, nil
}

// Build writes the comparison between methodA and methodB to
// <outputDir>/<methodA>-<methodB>.json and returns the written path.
// An existing file at that path is overwritten.
func (b *Builder) Build(methodA, methodB, generationDir, outputDir string) (string, error) {
	path, _, err := b.BuildDocument(methodA, methodB, generationDir, outputDir)
	return path, err
}

// BuildDocument is Build that also returns the document it wrote.
func (b *Builder) BuildDocument(methodA, methodB, generationDir, outputDir string) (string, *Document, error) {
	doc, err := b.Assemble(methodA, methodB, generationDir)
	if err != nil {
		return "", nil, err
	}

	data, err := Encode(doc)
	if err != nil {
		return "", nil, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", nil, fsError("create", outputDir, err)
	}
	outPath := filepath.Join(outputDir, OutputName(methodA, methodB))
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return "", nil, fsError("write", outPath, err)
	}

	b.logger.Info("wrote comparison",
		zap.String("path", outPath),
		zap.Int("pages", len(doc.Pages)))
	return outPath, doc, nil
}

// Encode serializes doc with two-space indentation, leaving non-ASCII and
// HTML characters unescaped.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(buf.Bytes()), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes that
// encoding/json always emits back into the raw runes. Other escape
// sequences are copied as-is, so an escaped backslash followed by "u2028"
// stays literal text.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if rest := data[i:]; bytes.HasPrefix(rest, []byte(`\u2028`)) || bytes.HasPrefix(rest, []byte(`\u2029`)) {
			if rest[5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}

// Decode parses a survey document written by Encode.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
