package command

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/slidecraft/model"
)

var (
	// ErrUnknownShape is returned for a Draw directive naming an unsupported shape.
	ErrUnknownShape = errors.New("unknown shape")
	// ErrParamCount is returned when a shape has the wrong number of parameters.
	ErrParamCount = errors.New("wrong parameter count")
	// ErrBadParam is returned when a shape parameter is not a finite number.
	ErrBadParam = errors.New("invalid numeric parameter")
)

// ShapeSpec is a parsed Draw directive.
type ShapeSpec struct {
	Kind   model.ShapeKind
	Params []float64
}

var shapeCallPattern = regexp.MustCompile(`^(?:Draw:\s*)?([A-Za-z]+)\s*\(([^)]*)\)$`)

// ParamCount returns the number of parameters the shape kind takes, or 0
// for unknown kinds.
func ParamCount(kind model.ShapeKind) int {
	switch kind {
	case model.ShapeLine, model.ShapeRectangle, model.ShapeArrow:
		return 4
	case model.ShapeCircle:
		return 3
	}
	return 0
}

// ParseShape interprets a single "Kind(p1,p2,...)" fragment. A leading
// "Draw:" is accepted.
func ParseShape(fragment string) (ShapeSpec, error) {
	m := shapeCallPattern.FindStringSubmatch(strings.TrimSpace(fragment))
	if m == nil {
		return ShapeSpec{}, fmt.Errorf("%w: cannot parse %q", ErrUnknownShape, fragment)
	}
	return interpretShape(m[1], m[2])
}

// interpretShape validates a shape name and its raw comma-separated
// parameter list.
func interpretShape(name, rawParams string) (ShapeSpec, error) {
	kind, ok := model.ParseShapeKind(name)
	if !ok {
		return ShapeSpec{}, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}

	fields := strings.Split(rawParams, ",")
	if want := ParamCount(kind); len(fields) != want {
		return ShapeSpec{}, fmt.Errorf("%w: %s takes %d parameters, got %d", ErrParamCount, kind, want, len(fields))
	}

	params := make([]float64, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return ShapeSpec{}, fmt.Errorf("%w: parameter %d of %s is %q", ErrBadParam, i+1, kind, f)
		}
		params[i] = v
	}

	return ShapeSpec{Kind: kind, Params: params}, nil
}

// Element converts the spec to a shape element at its literal coordinates.
// A circle becomes its horizontal diameter so that it shares the two-point
// form of the other shapes. It returns nil if the parameter count does not
// match the kind.
func (s ShapeSpec) Element() *model.ShapeElement {
	p := s.Params
	if want := ParamCount(s.Kind); want == 0 || len(p) != want {
		return nil
	}
	if s.Kind == model.ShapeCircle {
		cx, cy, r := p[0], p[1], p[2]
		return model.NewShapeElement(s.Kind, model.Point{X: cx - r, Y: cy}, model.Point{X: cx + r, Y: cy})
	}
	return model.NewShapeElement(s.Kind, model.Point{X: p[0], Y: p[1]}, model.Point{X: p[2], Y: p[3]})
}

func (s ShapeSpec) String() string {
	parts := make([]string, len(s.Params))
	for i, v := range s.Params {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("%s(%s)", s.Kind, strings.Join(parts, ","))
}
