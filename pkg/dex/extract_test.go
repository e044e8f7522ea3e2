package dex

import (
	"strings"
	"testing"

	"github.com/matzehuels/cogmap/pkg/errors"
)

func mustLoad(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return doc
}

func TestExtractNodes_LeftJoin(t *testing.T) {
	doc := mustLoad(t, `<model>
  <concept id="1" style="standard">A</concept>
  <concept id="2" style="Goal">B</concept>
  <position concept="1" x="100" y="200"/>
</model>`)

	nodes, err := extractNodes(doc)
	if err != nil {
		t.Fatalf("extractNodes() error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("extractNodes() returned %d nodes, want 2", len(nodes))
	}

	a, b := nodes[0], nodes[1]
	if a.refno != 1 || a.label != "A" || a.typ != nil {
		t.Errorf("node A = %+v", a)
	}
	if a.x == nil || *a.x != 100 || a.y == nil || *a.y != 200 {
		t.Errorf("node A position = %v, %v; want 100, 200", a.x, a.y)
	}
	if b.typ == nil || *b.typ != "Goal" {
		t.Errorf("node B type = %v, want Goal", b.typ)
	}
	if b.x != nil || b.y != nil {
		t.Errorf("node B without position should have nil coordinates, got %v, %v", b.x, b.y)
	}
}

func TestExtractPositions_FirstWins(t *testing.T) {
	doc := mustLoad(t, `<model>
  <position concept="4" x="1" y="2"/>
  <position concept="4" x="9" y="9"/>
</model>`)

	got, err := extractPositions(doc)
	if err != nil {
		t.Fatalf("extractPositions() error: %v", err)
	}
	p := got[4]
	if *p.x != 1 || *p.y != 2 {
		t.Errorf("position = (%v, %v), want first occurrence (1, 2)", *p.x, *p.y)
	}
}

func TestExtractPositions_MissingCoordinate(t *testing.T) {
	doc := mustLoad(t, `<position concept="4" x="10"/>`)

	got, err := extractPositions(doc)
	if err != nil {
		t.Fatalf("extractPositions() error: %v", err)
	}
	if got[4].x == nil || got[4].y != nil {
		t.Errorf("position = %+v, want x set and y nil", got[4])
	}
}

func TestExtractPositions_WithoutConceptSkipped(t *testing.T) {
	doc := mustLoad(t, `<m>
  <concept id="1">A</concept>
  <position x="1" y="2"/>
  <position concept="1" x="5" y="10"/>
</m>`)

	nodes, err := extractNodes(doc)
	if err != nil {
		t.Fatalf("extractNodes() error: %v", err)
	}
	if len(nodes) != 1 || nodes[0].x == nil || *nodes[0].x != 5 {
		t.Errorf("nodes = %+v, want elem-1 joined to the position that names it", nodes)
	}
}

func TestExtractNodes_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code errors.Code
	}{
		{"non-numeric id", `<concept id="abc">A</concept>`, errors.ErrCodeInvalidNumber},
		{"missing id", `<concept>A</concept>`, errors.ErrCodeInvalidInput},
		{"duplicate id", `<m><concept id="1">A</concept><concept id="1">B</concept></m>`, errors.ErrCodeDuplicateConcept},
		{"non-numeric x", `<m><concept id="1">A</concept><position concept="1" x="far" y="0"/></m>`, errors.ErrCodeInvalidNumber},
		{"non-numeric position ref", `<m><position concept="one" x="0" y="0"/></m>`, errors.ErrCodeInvalidNumber},
		{"NaN x", `<m><concept id="1">A</concept><position concept="1" x="NaN" y="0"/></m>`, errors.ErrCodeInvalidNumber},
		{"infinite y", `<m><concept id="1">A</concept><position concept="1" x="0" y="-Inf"/></m>`, errors.ErrCodeInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractNodes(mustLoad(t, tt.src))
			if err == nil {
				t.Fatal("extractNodes() should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("extractNodes() code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestExtractLinks_Order(t *testing.T) {
	doc := mustLoad(t, `<model>
  <link from="3" to="1" sign="-"/>
  <link from="1" to="2" sign="+"/>
  <link from="1" to="2"/>
</model>`)

	links := extractLinks(doc)
	if len(links) != 3 {
		t.Fatalf("extractLinks() returned %d links, want 3 (no dedup)", len(links))
	}
	if deref(links[0].from) != "3" || deref(links[0].to) != "1" || deref(links[0].polarity) != "-" {
		t.Errorf("links[0] = %+v", links[0])
	}
	if links[2].polarity != nil {
		t.Errorf("link without sign should have nil polarity, got %q", *links[2].polarity)
	}
}

func TestExtractLinks_MissingEndpoints(t *testing.T) {
	links := extractLinks(mustLoad(t, `<m><link from="1"/><link to="2" sign="+"/></m>`))
	if len(links) != 2 {
		t.Fatalf("extractLinks() returned %d links, want 2", len(links))
	}
	if deref(links[0].from) != "1" || links[0].to != nil {
		t.Errorf("links[0] from/to = %s/%s, want 1/<nil>", deref(links[0].from), deref(links[0].to))
	}
	if links[1].from != nil || deref(links[1].to) != "2" {
		t.Errorf("links[1] from/to = %s/%s, want <nil>/2", deref(links[1].from), deref(links[1].to))
	}
}

func TestExtractStyles(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantType   *string
		wantColour *string
		wantWeight *string
	}{
		{
			name:       "magenta-ish not bold",
			src:        `<conceptstyle name="Risk" red="100" green="0" blue="50" bold="0"/>`,
			wantType:   strPtr("Risk"),
			wantColour: strPtr("#ff0080"),
		},
		{
			name:       "green bold",
			src:        `<conceptstyle name="Goal" red="0" green="100" blue="0" bold="1"/>`,
			wantType:   strPtr("Goal"),
			wantColour: strPtr("#00ff00"),
			wantWeight: strPtr("bold"),
		},
		{
			name:       "standard is nil",
			src:        `<conceptstyle name="standard" red="0" green="0" blue="0" bold="0"/>`,
			wantColour: strPtr("#000000"),
		},
		{
			name:       "no bold attribute",
			src:        `<conceptstyle name="Note" red="100" green="100" blue="100"/>`,
			wantType:   strPtr("Note"),
			wantColour: strPtr("#ffffff"),
		},
		{
			name:       "fractional percentages",
			src:        `<conceptstyle name="Grey" red="20" green="40.5" blue="60" bold="0"/>`,
			wantType:   strPtr("Grey"),
			wantColour: strPtr("#336799"),
		},
		{
			name:     "missing channel gives nil colour",
			src:      `<conceptstyle name="Muted" red="0" green="0" bold="0"/>`,
			wantType: strPtr("Muted"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			styles, err := extractStyles(mustLoad(t, tt.src))
			if err != nil {
				t.Fatalf("extractStyles() error: %v", err)
			}
			if len(styles) != 1 {
				t.Fatalf("extractStyles() returned %d styles, want 1", len(styles))
			}
			s := styles[0]
			if !equalNullable(s.Type, tt.wantType) {
				t.Errorf("Type = %v, want %v", deref(s.Type), deref(tt.wantType))
			}
			if !equalNullable(s.FontColour, tt.wantColour) {
				t.Errorf("FontColour = %v, want %v", deref(s.FontColour), deref(tt.wantColour))
			}
			if !equalNullable(s.FontWeight, tt.wantWeight) {
				t.Errorf("FontWeight = %v, want %v", deref(s.FontWeight), deref(tt.wantWeight))
			}
		})
	}
}

func TestExtractStyles_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code errors.Code
	}{
		{"bold flag 2", `<conceptstyle name="X" red="0" green="0" blue="0" bold="2"/>`, errors.ErrCodeInvalidBoldFlag},
		{"bold flag text", `<conceptstyle name="X" red="0" green="0" blue="0" bold="yes"/>`, errors.ErrCodeInvalidBoldFlag},
		{"channel over 100", `<conceptstyle name="X" red="101" green="0" blue="0" bold="0"/>`, errors.ErrCodeInvalidColour},
		{"negative channel", `<conceptstyle name="X" red="0" green="-1" blue="0" bold="0"/>`, errors.ErrCodeInvalidColour},
		{"non-numeric channel", `<conceptstyle name="X" red="0" green="0" blue="lots" bold="0"/>`, errors.ErrCodeInvalidNumber},
		{"NaN channel", `<conceptstyle name="X" red="NaN" green="0" blue="0" bold="0"/>`, errors.ErrCodeInvalidNumber},
		{"bad channel beside missing one", `<conceptstyle name="X" red="120" green="0" bold="0"/>`, errors.ErrCodeInvalidColour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractStyles(mustLoad(t, tt.src))
			if err == nil {
				t.Fatal("extractStyles() should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("extractStyles() code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestPercentToByte(t *testing.T) {
	tests := []struct {
		pct  float64
		want uint8
	}{
		{0, 0},
		{50, 128}, // 127.5 rounds half away from zero
		{100, 255},
		{20, 51},
	}
	for _, tt := range tests {
		got, err := percentToByte(tt.pct)
		if err != nil {
			t.Errorf("percentToByte(%v) error: %v", tt.pct, err)
			continue
		}
		if got != tt.want {
			t.Errorf("percentToByte(%v) = %d, want %d", tt.pct, got, tt.want)
		}
	}
}

func strPtr(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
