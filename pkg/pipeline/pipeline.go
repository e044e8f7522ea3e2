// Package pipeline provides the conversion pipeline for cogmap.
//
// This package implements the complete load → convert → encode pipeline
// used by the CLI. By centralizing this logic, every entry point gets the
// same validation, logging and instrumentation.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse the Decision Explorer XML export into an element tree
//  2. Convert: Extract the node, edge and style tables and assemble them
//  3. Encode: Serialize the tables as JSON or CSV
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "model.xml",
//	    Scale:  5,
//	    Format: pipeline.FormatJSON,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data := result.Artifacts[pipeline.ArtifactJSON]
package pipeline

import (
	"time"

	"github.com/matzehuels/cogmap/pkg/dex"
	"github.com/matzehuels/cogmap/pkg/errors"
	pkgio "github.com/matzehuels/cogmap/pkg/io"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultScale is the default coordinate divisor.
const DefaultScale = dex.DefaultScale

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// DefaultFormat is the default output format.
const DefaultFormat = FormatJSON

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatJSON, FormatCSV}

// ArtifactJSON is the artifact key of the JSON encoding.
const ArtifactJSON = "result.json"

// CSVArtifact returns the artifact key of a CSV table.
func CSVArtifact(table string) string { return table + ".csv" }

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the conversion pipeline.
type Options struct {
	// Input is the path of the Decision Explorer XML export.
	Input string `json:"input"`

	// Scale divides both layout axes.
	Scale float64 `json:"scale,omitempty"`

	// Format selects the encoding: "json" or "csv".
	Format string `json:"format,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tables is the converted map.
	Tables *dex.Result

	// Artifacts contains encoded outputs keyed by artifact name
	// (ArtifactJSON, or CSVArtifact(table) for each table).
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount   int
	EdgeCount   int
	StyleCount  int
	LoadTime    time.Duration
	ConvertTime time.Duration
	EncodeTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats...)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidatePath(o.Input); err != nil {
		return err
	}
	if err := o.ValidateForConvert(); err != nil {
		return err
	}
	if err := o.ValidateForEncode(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForConvert validates the scale and applies its default.
func (o *Options) ValidateForConvert() error {
	if err := errors.ValidateScale(o.Scale); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	return nil
}

// ValidateForEncode validates the format and applies its default.
func (o *Options) ValidateForEncode() error {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	return ValidateFormat(o.Format)
}

// ConvertOptions returns the dex options for the convert stage.
func (o *Options) ConvertOptions() dex.Options {
	return dex.Options{Scale: o.Scale}
}

// ArtifactNames returns the artifact keys produced for format, in output
// order.
func ArtifactNames(format string) []string {
	if format == FormatCSV {
		names := make([]string, len(pkgio.Tables))
		for i, t := range pkgio.Tables {
			names[i] = CSVArtifact(t)
		}
		return names
	}
	return []string{ArtifactJSON}
}
