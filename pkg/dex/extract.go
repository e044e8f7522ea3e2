package dex

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/cogmap/pkg/errors"
)

// Element and attribute names of the Decision Explorer export.
const (
	elemConcept      = "concept"
	elemPosition     = "position"
	elemLink         = "link"
	elemConceptStyle = "conceptstyle"

	attrID      = "id"
	attrStyle   = "style"
	attrConcept = "concept"
	attrX       = "x"
	attrY       = "y"
	attrFrom    = "from"
	attrTo      = "to"
	attrSign    = "sign"
	attrName    = "name"
	attrRed     = "red"
	attrGreen   = "green"
	attrBlue    = "blue"
	attrBold    = "bold"
)

// rawNode is a concept joined with its (optional) position, before scaling.
type rawNode struct {
	refno int
	label string
	typ   *string
	x, y  *float64
}

// rawLink is a link with its endpoints still in source form. A missing
// endpoint attribute is nil.
type rawLink struct {
	from, to *string
	polarity *string
}

type position struct {
	x, y *float64
}

// extractNodes reads concepts and left-joins them onto positions by refno.
func extractNodes(doc *Document) ([]rawNode, error) {
	positions, err := extractPositions(doc)
	if err != nil {
		return nil, err
	}

	concepts := doc.FindAll(elemConcept)
	nodes := make([]rawNode, 0, len(concepts))
	seen := make(map[int]struct{}, len(concepts))
	for i, el := range concepts {
		raw, ok := el.Attr(attrID)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "concept %d: missing %q attribute", i+1, attrID)
		}
		refno, err := parseInt(raw)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidNumber, err, "concept %d: %s", i+1, attrID)
		}
		if _, dup := seen[refno]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateConcept, "concept refno %d appears more than once", refno)
		}
		seen[refno] = struct{}{}

		n := rawNode{
			refno: refno,
			label: el.Text(),
			typ:   styleType(el, attrStyle),
		}
		if p, ok := positions[refno]; ok {
			n.x, n.y = p.x, p.y
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// extractPositions returns the first position per concept refno.
func extractPositions(doc *Document) (map[int]position, error) {
	elems := doc.FindAll(elemPosition)
	out := make(map[int]position, len(elems))
	for i, el := range elems {
		raw, ok := el.Attr(attrConcept)
		if !ok {
			continue // joins no concept
		}
		refno, err := parseInt(raw)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidNumber, err, "position %d: %s", i+1, attrConcept)
		}
		if _, dup := out[refno]; dup {
			continue
		}

		var p position
		if p.x, err = optionalFloat(el, attrX); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidNumber, err, "position %d: %s", i+1, attrX)
		}
		if p.y, err = optionalFloat(el, attrY); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidNumber, err, "position %d: %s", i+1, attrY)
		}
		out[refno] = p
	}
	return out, nil
}

// extractLinks reads links in document order.
func extractLinks(doc *Document) []rawLink {
	elems := doc.FindAll(elemLink)
	links := make([]rawLink, 0, len(elems))
	for _, el := range elems {
		links = append(links, rawLink{
			from:     optionalString(el, attrFrom),
			to:       optionalString(el, attrTo),
			polarity: optionalString(el, attrSign),
		})
	}
	return links
}

// extractStyles reads concept styles and derives colour and font weight.
func extractStyles(doc *Document) ([]NodeStyle, error) {
	elems := doc.FindAll(elemConceptStyle)
	styles := make([]NodeStyle, 0, len(elems))
	for i, el := range elems {
		colour, err := styleColour(el)
		if err != nil {
			return nil, fmt.Errorf("conceptstyle %d: %w", i+1, err)
		}
		weight, err := fontWeight(el)
		if err != nil {
			return nil, fmt.Errorf("conceptstyle %d: %w", i+1, err)
		}
		styles = append(styles, NodeStyle{
			Type:       styleType(el, attrName),
			FontColour: colour,
			FontWeight: weight,
		})
	}
	return styles, nil
}

// styleType reads a style name attribute, mapping "standard" to nil.
func styleType(el *Element, attr string) *string {
	v, ok := el.Attr(attr)
	if !ok || v == StandardStyle {
		return nil
	}
	return &v
}

// styleColour builds "#rrggbb" from the percentage channels. The colour
// is nil when any channel attribute is missing; channels that are present
// are still validated.
func styleColour(el *Element) (*string, error) {
	var channels [3]uint8
	complete := true
	for i, attr := range []string{attrRed, attrGreen, attrBlue} {
		raw, ok := el.Attr(attr)
		if !ok {
			complete = false
			continue
		}
		pct, err := parseFloat(raw)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidNumber, err, "%s", attr)
		}
		if channels[i], err = percentToByte(pct); err != nil {
			return nil, fmt.Errorf("%s: %w", attr, err)
		}
	}
	if !complete {
		return nil, nil
	}
	colour := fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2])
	return &colour, nil
}

// percentToByte scales a 0-100 percentage to 0-255, rounding half away
// from zero.
func percentToByte(pct float64) (uint8, error) {
	if math.IsNaN(pct) || pct < 0 || pct > 100 {
		return 0, errors.New(errors.ErrCodeInvalidColour, "channel %v outside 0-100", pct)
	}
	return uint8(math.Round(pct * 255 / 100)), nil
}

func fontWeight(el *Element) (*string, error) {
	raw, ok := el.Attr(attrBold)
	if !ok {
		return nil, nil
	}
	flag, err := parseInt(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBoldFlag, err, "bold flag %q", raw)
	}
	switch flag {
	case 1:
		bold := "bold"
		return &bold, nil
	case 0:
		return nil, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidBoldFlag, "bold flag must be 0 or 1, got %d", flag)
	}
}

func optionalString(el *Element, attr string) *string {
	v, ok := el.Attr(attr)
	if !ok {
		return nil
	}
	return &v
}

func optionalFloat(el *Element, attr string) (*float64, error) {
	raw, ok := el.Attr(attr)
	if !ok {
		return nil, nil
	}
	v, err := parseFloat(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// parseFloat parses a finite number. NaN and infinities are rejected
// because they cannot be encoded as table values.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parsing %q: not a finite number", s)
	}
	return v, nil
}
