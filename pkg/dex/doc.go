// Package dex converts Decision Explorer XML exports into node, edge and
// style tables.
//
// # Overview
//
// A Decision Explorer cognitive map export contains four element kinds that
// matter for graph analysis:
//
//	<concept id="1" style="standard">Rising costs</concept>
//	<position concept="1" x="100" y="200"/>
//	<link from="1" to="2" sign="+"/>
//	<conceptstyle name="Goal" red="0" green="100" blue="0" bold="1"/>
//
// The elements may appear anywhere in the document; [Load] builds a light
// element tree and [Document.FindAll] returns every element with a given
// local name in document order.
//
// # Conversion
//
// [Convert] runs three extractors over the tree and assembles the result:
//
//   - Nodes: one row per concept, left-joined onto the first position that
//     references it. Coordinates are divided by the scale and the y axis is
//     inverted (bottom-left origin to top-left origin).
//   - Edges: one row per link in document order. Edges have no identifier in
//     the source, so refno is the 1-based row position.
//   - Node styles: one row per concept style with a "#rrggbb" colour built
//     from the percentage channels and an optional "bold" font weight.
//
// Derived identifiers follow fixed prefixes:
//
//	node name  "elem-<refno>"    node id  "node-<refno>"
//	edge name  "conn-<refno>"    edge id  "edge-<refno>"
//
// Edge endpoints are rewritten to node names ("elem-<raw endpoint>") but
// are not checked against the node table; use [Result.DanglingEdges] to
// find links whose endpoints have no concept.
//
// # Null Values
//
// Nullable columns are pointers. A style named "standard" becomes a nil
// type, a concept without a position gets nil coordinates, and the
// description, tags and curvature placeholders are always nil.
//
// Missing attributes become nil rather than errors: a link without from
// or to gets a nil endpoint, a conceptstyle missing a colour channel gets
// a nil colour, and a position without a concept reference is skipped.
// The one exception is a concept without an id, which fails with
// INVALID_INPUT because it has no node name.
//
// # Errors
//
// Conversion either succeeds completely or fails. Malformed XML fails in
// [Load] with code INVALID_XML; non-numeric or non-finite identifiers and
// coordinates fail with INVALID_NUMBER; a bold flag other than 0 or 1 fails with
// INVALID_BOLD_FLAG. See package errors for the full set of codes.
//
// # Example
//
//	res, err := dex.ConvertFile("model.xml", dex.Options{Scale: 5})
//	if err != nil {
//	    return err
//	}
//	for _, n := range res.Nodes {
//	    fmt.Println(n.Name, n.Label)
//	}
package dex
