package dex

import "strconv"

// Identifier prefixes for derived names and ids.
const (
	NodeNamePrefix = "elem-"
	NodeIDPrefix   = "node-"
	EdgeNamePrefix = "conn-"
	EdgeIDPrefix   = "edge-"
)

// StandardStyle is the style name Decision Explorer gives unstyled
// concepts. It is reported as a nil type.
const StandardStyle = "standard"

// DefaultWeight is the weight of every converted edge.
const DefaultWeight = 1

// Node is a concept row of the node table.
type Node struct {
	Name        string   `json:"name"`
	ID          string   `json:"id"`
	Refno       int      `json:"refno"`
	Label       string   `json:"label"`
	Type        *string  `json:"type"`
	X           *float64 `json:"x"`
	Y           *float64 `json:"y"`
	Description *string  `json:"description"`
	Tags        *string  `json:"tags"`
}

// Edge is a link row of the edge table.
type Edge struct {
	Name        string   `json:"name"`
	ID          string   `json:"id"`
	Refno       int      `json:"refno"`
	From        *string  `json:"from"`
	To          *string  `json:"to"`
	Polarity    *string  `json:"polarity"`
	Curvature   *float64 `json:"curvature"`
	Weight      int      `json:"weight"`
	Description *string  `json:"description"`
}

// NodeStyle is a row of the style table.
type NodeStyle struct {
	Type       *string `json:"type"`
	FontColour *string `json:"font_colour"`
	FontWeight *string `json:"font_weight"`
}

// Result holds the three converted tables.
type Result struct {
	Nodes      []Node      `json:"nodes"`
	Edges      []Edge      `json:"edges"`
	NodeStyles []NodeStyle `json:"node_styles"`
}

// Node returns the node with the given name.
func (r *Result) Node(name string) (*Node, bool) {
	for i := range r.Nodes {
		if r.Nodes[i].Name == name {
			return &r.Nodes[i], true
		}
	}
	return nil, false
}

// Style returns the style row for a node type. A nil type matches the
// standard style row, if the export lists one.
func (r *Result) Style(typ *string) (*NodeStyle, bool) {
	for i := range r.NodeStyles {
		if equalNullable(r.NodeStyles[i].Type, typ) {
			return &r.NodeStyles[i], true
		}
	}
	return nil, false
}

// DanglingEdges returns the edges whose from or to is nil or does not
// name a node. Conversion never rejects such edges; this is a reporting aid.
func (r *Result) DanglingEdges() []Edge {
	names := make(map[string]struct{}, len(r.Nodes))
	for _, n := range r.Nodes {
		names[n.Name] = struct{}{}
	}
	var out []Edge
	for _, e := range r.Edges {
		if !known(names, e.From) || !known(names, e.To) {
			out = append(out, e)
		}
	}
	return out
}

// NodeName returns the node name for a concept refno.
func NodeName(refno int) string { return NodeNamePrefix + strconv.Itoa(refno) }

// NodeID returns the node id for a concept refno.
func NodeID(refno int) string { return NodeIDPrefix + strconv.Itoa(refno) }

// EdgeName returns the edge name for an edge refno.
func EdgeName(refno int) string { return EdgeNamePrefix + strconv.Itoa(refno) }

// EdgeID returns the edge id for an edge refno.
func EdgeID(refno int) string { return EdgeIDPrefix + strconv.Itoa(refno) }

func known(names map[string]struct{}, name *string) bool {
	if name == nil {
		return false
	}
	_, ok := names[*name]
	return ok
}

func equalNullable(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
