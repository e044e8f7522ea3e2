package dex

// assemble derives identifiers, rescales coordinates and packages the
// extractor outputs into a Result.
func assemble(nodes []rawNode, links []rawLink, styles []NodeStyle, scale float64) *Result {
	res := &Result{
		Nodes:      make([]Node, len(nodes)),
		Edges:      make([]Edge, len(links)),
		NodeStyles: styles,
	}

	for i, n := range nodes {
		res.Nodes[i] = Node{
			Name:  NodeName(n.refno),
			ID:    NodeID(n.refno),
			Refno: n.refno,
			Label: n.label,
			Type:  n.typ,
			X:     scaled(n.x, scale, false),
			Y:     scaled(n.y, scale, true),
		}
	}

	for i, l := range links {
		refno := i + 1
		res.Edges[i] = Edge{
			Name:     EdgeName(refno),
			ID:       EdgeID(refno),
			Refno:    refno,
			From:     endpoint(l.from),
			To:       endpoint(l.to),
			Polarity: l.polarity,
			Weight:   DefaultWeight,
		}
	}

	return res
}

// scaled returns v/div, negated when invert is set. Nil stays nil.
func scaled(v *float64, div float64, invert bool) *float64 {
	if v == nil {
		return nil
	}
	s := *v / div
	if invert {
		s = -s
	}
	if s == 0 {
		s = 0 // no negative zero in output
	}
	return &s
}

// endpoint rewrites a raw link endpoint to a node name. Nil stays nil.
func endpoint(raw *string) *string {
	if raw == nil {
		return nil
	}
	name := NodeNamePrefix + *raw
	return &name
}
