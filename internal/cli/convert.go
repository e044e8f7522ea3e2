package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/cogmap/pkg/io"
	"github.com/matzehuels/cogmap/pkg/pipeline"
)

// convertOpts holds the command-line flags shared by convert and inspect.
type convertOpts struct {
	scale  float64 // coordinate divisor
	format string  // json or csv
	output string  // file (json) or directory (csv); stdout if empty
	config string  // optional TOML config file
}

// resolve merges the --config file, if any, into the flag values.
func (o *convertOpts) resolve(cmd *cobra.Command) error {
	if o.config == "" {
		return nil
	}
	cfg, err := loadConfig(o.config)
	if err != nil {
		return err
	}
	o.applyConfig(cmd, cfg)
	return nil
}

// pipelineOptions converts the flags into pipeline options for input.
func (o *convertOpts) pipelineOptions(input string) pipeline.Options {
	return pipeline.Options{
		Input:  input,
		Scale:  o.scale,
		Format: o.format,
	}
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	opts := convertOpts{scale: pipeline.DefaultScale, format: pipeline.DefaultFormat}

	cmd := &cobra.Command{
		Use:   "convert <file.xml>",
		Short: "Convert a Decision Explorer export into node, edge and style tables",
		Long: `Convert a Decision Explorer XML export into three tables:

  nodes        concepts with label, style type and scaled layout position
  edges        links with polarity, numbered in document order
  node_styles  concept styles with font colour and weight

JSON output is a single object with "nodes", "edges" and "node_styles".
CSV output is one file per table; nulls are written as NA.

Examples:
  cogmap convert model.xml                       # JSON to stdout
  cogmap convert model.xml -o model.json         # JSON to a file
  cogmap convert model.xml --format csv -o out/  # nodes.csv, edges.csv, node_styles.csv
  cogmap convert model.xml --scale 10            # divide coordinates by 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.resolve(cmd); err != nil {
				return err
			}
			return c.runConvert(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "divide layout coordinates by this factor")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "output format: json or csv")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (json) or directory (csv); stdout if empty")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML file with scale, format and output defaults")

	return cmd
}

// runConvert executes the pipeline and writes the result.
func (c *CLI) runConvert(ctx context.Context, input string, opts convertOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	res, err := c.newRunner().Execute(ctx, opts.pipelineOptions(input))
	if err != nil {
		return err
	}

	if opts.output == "" {
		return writeArtifacts(c.Out, res, opts.format)
	}

	written, err := exportTables(res, input, opts.format, opts.output)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Converted %s", filepath.Base(input)))

	printSuccess(c.Err, "Wrote %s tables", opts.format)
	for _, path := range written {
		printFile(c.Err, path)
	}
	printStats(c.Err, res.Stats.NodeCount, res.Stats.EdgeCount, res.Stats.StyleCount)
	return nil
}

// writeArtifacts streams the encoded tables to w, separating CSV tables
// with a blank line.
func writeArtifacts(w io.Writer, res *pipeline.Result, format string) error {
	for i, name := range pipeline.ArtifactNames(format) {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := w.Write(res.Artifacts[name]); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// exportTables writes the tables to disk. For JSON, output is a file path,
// or a directory in which <input stem>.json is created. For CSV, output is
// always a directory.
func exportTables(res *pipeline.Result, input, format, output string) ([]string, error) {
	if format == pipeline.FormatCSV {
		return pkgio.ExportCSV(res.Tables, output)
	}

	path := output
	if info, err := os.Stat(output); (err == nil && info.IsDir()) || strings.HasSuffix(output, string(os.PathSeparator)) {
		stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		path = filepath.Join(output, stem+".json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := pkgio.ExportJSON(res.Tables, path); err != nil {
		return nil, err
	}
	return []string{path}, nil
}
