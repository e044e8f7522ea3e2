package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cogmap/pkg/dex"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := convertOpts{scale: dex.DefaultScale}

	cmd := &cobra.Command{
		Use:   "inspect <file.xml>",
		Short: "Summarize a Decision Explorer export",
		Long: `Summarize a Decision Explorer XML export without writing tables.

Reports concept, link and style counts, the layout extent after scaling,
link polarities, concept styles with their colours, and links whose
endpoints do not match any concept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.resolve(cmd); err != nil {
				return err
			}
			return c.runInspect(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "divide layout coordinates by this factor")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML file with a scale default")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string, opts convertOpts) error {
	r := c.newRunner()
	doc, err := r.Load(ctx, input)
	if err != nil {
		return err
	}
	res, err := r.Convert(ctx, doc, opts.pipelineOptions(input))
	if err != nil {
		return err
	}

	printReport(c.Out, filepath.Base(input), res)
	return nil
}

// printReport writes a human-readable summary of res to w.
func printReport(w io.Writer, title string, res *dex.Result) {
	fmt.Fprintln(w, StyleTitle.Render(title))

	placed := 0
	for _, n := range res.Nodes {
		if n.X != nil && n.Y != nil {
			placed++
		}
	}
	printKeyValue(w, "concepts", StyleNumber.Render(fmt.Sprint(len(res.Nodes))))
	printKeyValue(w, "placed", fmt.Sprintf("%d of %d", placed, len(res.Nodes)))
	for _, n := range res.Nodes {
		if n.X == nil || n.Y == nil {
			printDetail(w, "%s has no position", n.Name)
		}
	}
	if ext, ok := extent(res.Nodes); ok {
		printKeyValue(w, "extent", ext)
	}
	printKeyValue(w, "links", StyleNumber.Render(fmt.Sprint(len(res.Edges))))
	if len(res.Edges) > 0 {
		printKeyValue(w, "polarity", polaritySummary(res.Edges))
	}
	printKeyValue(w, "styles", StyleNumber.Render(fmt.Sprint(len(res.NodeStyles))))

	for _, s := range res.NodeStyles {
		line := typeName(s.Type) + " " + StyleDim.Render(orNull(s.FontColour))
		if s.FontColour != nil {
			line = swatch(*s.FontColour) + " " + line
		}
		if s.FontWeight != nil {
			line += " " + StyleDim.Render(*s.FontWeight)
		}
		fmt.Fprintln(w, "  "+line)
	}

	for _, typ := range unstyledTypes(res) {
		printInfo(w, "type %q has no conceptstyle entry", typ)
	}
	for _, e := range res.DanglingEdges() {
		printWarning(w, "%s: %s -> %s references an unknown concept", e.Name, orNull(e.From), orNull(e.To))
	}
}

// extent returns the bounding box of the placed nodes.
func extent(nodes []dex.Node) (string, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false
	for _, n := range nodes {
		if n.X == nil || n.Y == nil {
			continue
		}
		found = true
		minX, maxX = math.Min(minX, *n.X), math.Max(maxX, *n.X)
		minY, maxY = math.Min(minY, *n.Y), math.Max(maxY, *n.Y)
	}
	if !found {
		return "", false
	}
	return fmt.Sprintf("x %g..%g  y %g..%g", minX, maxX, minY, maxY), true
}

// polaritySummary counts links per polarity, e.g. "+ 3 · - 1 · none 2".
func polaritySummary(edges []dex.Edge) string {
	counts := make(map[string]int)
	for _, e := range edges {
		key := "none"
		if e.Polarity != nil {
			key = *e.Polarity
		}
		counts[key]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s %d", k, counts[k])
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

// unstyledTypes returns node types that have no style row, sorted.
func unstyledTypes(res *dex.Result) []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range res.Nodes {
		if n.Type == nil || seen[*n.Type] {
			continue
		}
		seen[*n.Type] = true
		if _, ok := res.Style(n.Type); !ok {
			out = append(out, *n.Type)
		}
	}
	slices.Sort(out)
	return out
}

func typeName(t *string) string {
	if t == nil {
		return dex.StandardStyle
	}
	return *t
}

func orNull(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}
