package dex

import (
	"fmt"
	"io"

	"github.com/matzehuels/cogmap/pkg/errors"
)

// DefaultScale is the coordinate divisor used when Options.Scale is zero.
const DefaultScale = 5.0

// Options configures a conversion.
type Options struct {
	// Scale divides both layout axes. Zero means DefaultScale.
	Scale float64
}

func (o Options) scale() (float64, error) {
	if err := errors.ValidateScale(o.Scale); err != nil {
		return 0, err
	}
	if o.Scale == 0 {
		return DefaultScale, nil
	}
	return o.Scale, nil
}

// Convert extracts the node, edge and style tables from a parsed document.
func Convert(doc *Document, opts Options) (*Result, error) {
	scale, err := opts.scale()
	if err != nil {
		return nil, err
	}

	nodes, err := extractNodes(doc)
	if err != nil {
		return nil, fmt.Errorf("nodes: %w", err)
	}
	links := extractLinks(doc)
	styles, err := extractStyles(doc)
	if err != nil {
		return nil, fmt.Errorf("styles: %w", err)
	}

	return assemble(nodes, links, styles, scale), nil
}

// ConvertReader parses XML from r and converts it. It does not close r.
func ConvertReader(r io.Reader, opts Options) (*Result, error) {
	doc, err := Load(r)
	if err != nil {
		return nil, err
	}
	return Convert(doc, opts)
}

// ConvertFile parses the XML file at path and converts it.
func ConvertFile(path string, opts Options) (*Result, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Convert(doc, opts)
}
