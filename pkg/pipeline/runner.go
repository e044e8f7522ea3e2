package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cogmap/pkg/dex"
	pkgio "github.com/matzehuels/cogmap/pkg/io"
	"github.com/matzehuels/cogmap/pkg/observability"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → convert → encode pipeline.
// The context is checked between stages; a single stage is not interrupted.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	doc, err := r.Load(ctx, opts.Input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)

	r.Logger.Debug("loaded document",
		"path", opts.Input,
		"root", doc.Root.Name,
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Convert
	convertStart := time.Now()
	tables, err := r.Convert(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	result.Tables = tables
	result.Stats.ConvertTime = time.Since(convertStart)
	result.Stats.NodeCount = len(tables.Nodes)
	result.Stats.EdgeCount = len(tables.Edges)
	result.Stats.StyleCount = len(tables.NodeStyles)

	r.Logger.Info("converted map",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"styles", result.Stats.StyleCount,
		"duration", result.Stats.ConvertTime)

	if dangling := tables.DanglingEdges(); len(dangling) > 0 {
		r.Logger.Warn("edges reference unknown concepts", "count", len(dangling), "first", dangling[0].Name)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Encode
	encodeStart := time.Now()
	artifacts, err := r.Encode(ctx, tables, opts.Format)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.EncodeTime = time.Since(encodeStart)

	r.Logger.Debug("encoded tables",
		"format", opts.Format,
		"artifacts", len(artifacts),
		"duration", result.Stats.EncodeTime)

	return result, nil
}

// Load parses the XML export at path.
func (r *Runner) Load(ctx context.Context, path string) (*dex.Document, error) {
	hooks := observability.Convert()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	doc, err := dex.LoadFile(path)

	hooks.OnLoadComplete(ctx, path, time.Since(start), err)
	return doc, err
}

// Convert extracts and assembles the tables of doc.
func (r *Runner) Convert(ctx context.Context, doc *dex.Document, opts Options) (*dex.Result, error) {
	if err := opts.ValidateForConvert(); err != nil {
		return nil, err
	}

	hooks := observability.Convert()
	hooks.OnConvertStart(ctx, opts.Scale)
	start := time.Now()

	res, err := dex.Convert(doc, opts.ConvertOptions())

	var nodes, edges, styles int
	if res != nil {
		nodes, edges, styles = len(res.Nodes), len(res.Edges), len(res.NodeStyles)
	}
	hooks.OnConvertComplete(ctx, nodes, edges, styles, time.Since(start), err)
	return res, err
}

// Encode serializes res in the given format. JSON produces a single
// ArtifactJSON entry; CSV produces one entry per table.
func (r *Runner) Encode(ctx context.Context, res *dex.Result, format string) (map[string][]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	hooks := observability.Convert()
	hooks.OnEncodeStart(ctx, format)
	start := time.Now()

	artifacts, err := encode(res, format)

	size := 0
	for _, data := range artifacts {
		size += len(data)
	}
	hooks.OnEncodeComplete(ctx, format, size, time.Since(start), err)
	return artifacts, err
}

func encode(res *dex.Result, format string) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(pkgio.Tables))
	switch format {
	case FormatCSV:
		for _, table := range pkgio.Tables {
			var buf bytes.Buffer
			if err := pkgio.WriteCSV(res, table, &buf); err != nil {
				return nil, err
			}
			artifacts[CSVArtifact(table)] = buf.Bytes()
		}
	default:
		var buf bytes.Buffer
		if err := pkgio.WriteJSON(res, &buf); err != nil {
			return nil, err
		}
		artifacts[ArtifactJSON] = buf.Bytes()
	}
	return artifacts, nil
}
