package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/matzehuels/cogmap/pkg/dex"
	"github.com/matzehuels/cogmap/pkg/errors"
)

// Table names, also used as CSV file stems.
const (
	TableNodes      = "nodes"
	TableEdges      = "edges"
	TableNodeStyles = "node_styles"
)

// Tables lists the table names in output order.
var Tables = []string{TableNodes, TableEdges, TableNodeStyles}

// NA is the CSV representation of a null value.
const NA = "NA"

var (
	nodeHeader  = []string{"name", "id", "refno", "label", "type", "x", "y", "description", "tags"}
	edgeHeader  = []string{"name", "id", "refno", "from", "to", "polarity", "curvature", "weight", "description"}
	styleHeader = []string{"type", "font_colour", "font_weight"}
)

// WriteJSON encodes res as indented JSON and writes it to w.
func WriteJSON(res *dex.Result, w io.Writer) error {
	out := *res
	// Empty tables are [] rather than null.
	if out.Nodes == nil {
		out.Nodes = []dex.Node{}
	}
	if out.Edges == nil {
		out.Edges = []dex.Edge{}
	}
	if out.NodeStyles == nil {
		out.NodeStyles = []dex.NodeStyle{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes res to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(res *dex.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(res, f)
}

// WriteCSV writes one table of res to w as CSV with a header row.
// table must be one of [Tables].
//
// Nulls are written as the bare string NA, so a label or style name that
// is literally "NA" reads back as null in R and similar tools. Use
// [WriteJSON] when that distinction matters.
func WriteCSV(res *dex.Result, table string, w io.Writer) error {
	header, rows, err := tableRows(res, table)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w", table, err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", table, err)
	}
	return nil
}

// ExportCSV writes all three tables into dir as <table>.csv, creating dir
// if needed. It returns the paths written.
func ExportCSV(res *dex.Result, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	paths := make([]string, 0, len(Tables))
	for _, table := range Tables {
		path := filepath.Join(dir, table+".csv")
		if err := exportTable(res, table, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func exportTable(res *dex.Result, table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(res, table, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func tableRows(res *dex.Result, table string) ([]string, [][]string, error) {
	switch table {
	case TableNodes:
		rows := make([][]string, len(res.Nodes))
		for i, n := range res.Nodes {
			rows[i] = []string{
				n.Name, n.ID, strconv.Itoa(n.Refno), n.Label, fmtString(n.Type),
				fmtFloat(n.X), fmtFloat(n.Y), fmtString(n.Description), fmtString(n.Tags),
			}
		}
		return nodeHeader, rows, nil
	case TableEdges:
		rows := make([][]string, len(res.Edges))
		for i, e := range res.Edges {
			rows[i] = []string{
				e.Name, e.ID, strconv.Itoa(e.Refno), fmtString(e.From), fmtString(e.To), fmtString(e.Polarity),
				fmtFloat(e.Curvature), strconv.Itoa(e.Weight), fmtString(e.Description),
			}
		}
		return edgeHeader, rows, nil
	case TableNodeStyles:
		rows := make([][]string, len(res.NodeStyles))
		for i, s := range res.NodeStyles {
			rows[i] = []string{fmtString(s.Type), fmtString(s.FontColour), fmtString(s.FontWeight)}
		}
		return styleHeader, rows, nil
	default:
		return nil, nil, errors.New(errors.ErrCodeInvalidFormat, "unknown table %q", table)
	}
}

func fmtString(s *string) string {
	if s == nil {
		return NA
	}
	return *s
}

func fmtFloat(f *float64) string {
	if f == nil {
		return NA
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
