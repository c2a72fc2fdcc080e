package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/tsawler/slidecraft/model"
)

// Strategy selects a placement policy.
type Strategy int

const (
	Centered Strategy = iota
	LeftAligned
	Grid
	Flow
	Compact
)

func (s Strategy) String() string {
	switch s {
	case Centered:
		return "centered"
	case LeftAligned:
		return "left"
	case Grid:
		return "grid"
	case Flow:
		return "flow"
	case Compact:
		return "compact"
	default:
		return "unknown"
	}
}

// Strategies returns all strategies in declaration order.
func Strategies() []Strategy {
	return []Strategy{Centered, LeftAligned, Grid, Flow, Compact}
}

// ParseStrategy maps a strategy name, case-insensitively, to its value.
// "left-aligned" and "leftaligned" are accepted for LeftAligned.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "centered", "center":
		return Centered, nil
	case "left", "left-aligned", "leftaligned":
		return LeftAligned, nil
	case "grid":
		return Grid, nil
	case "flow":
		return Flow, nil
	case "compact":
		return Compact, nil
	}
	return Centered, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// placeFunc is a pure strategy: it returns placements for elems in paint
// order without modifying them.
type placeFunc func(elems []model.Element, width, height float64, cfg Config) []Placement

var strategies = map[Strategy]placeFunc{
	Centered:    placeCentered,
	LeftAligned: placeLeftAligned,
	Grid:        placeGrid,
	Flow:        placeFlow,
	Compact:     placeCompact,
}

// kindOrder is the group order used by the centered strategies.
var kindOrder = []model.ElementKind{model.ElementKindText, model.ElementKindShape, model.ElementKindImage}

// groupByKind returns elems reordered text first, then shapes, then images,
// keeping relative order within each group.
func groupByKind(elems []model.Element) []model.Element {
	out := make([]model.Element, 0, len(elems))
	for _, k := range kindOrder {
		for _, e := range elems {
			if e.Kind() == k {
				out = append(out, e)
			}
		}
	}
	for _, e := range elems {
		known := false
		for _, k := range kindOrder {
			if e.Kind() == k {
				known = true
				break
			}
		}
		if !known {
			out = append(out, e)
		}
	}
	return out
}

func placeCentered(elems []model.Element, width, _ float64, cfg Config) []Placement {
	return stackCentered(groupByKind(elems), width, cfg, cfg.Spacing)
}

func placeCompact(elems []model.Element, width, _ float64, cfg Config) []Placement {
	return stackCentered(groupByKind(elems), width, cfg, cfg.Spacing/2)
}

// stackCentered stacks elements downward from the top margin, each centered
// in the space between the side margins.
func stackCentered(elems []model.Element, width float64, cfg Config, spacing float64) []Placement {
	avail := width - 2*cfg.SideMargin
	y := cfg.TopMargin

	out := make([]Placement, 0, len(elems))
	for _, e := range elems {
		b := e.BoundingBox()
		x := cfg.SideMargin + (avail-b.Width)/2
		out = append(out, Placement{Element: e, BBox: b.MoveTo(x, y)})
		y += b.Height + spacing
	}
	return out
}

func placeLeftAligned(elems []model.Element, _, _ float64, cfg Config) []Placement {
	y := cfg.TopMargin

	out := make([]Placement, 0, len(elems))
	for _, e := range elems {
		b := e.BoundingBox()
		out = append(out, Placement{Element: e, BBox: b.MoveTo(cfg.SideMargin, y)})
		y += b.Height + cfg.Spacing
	}
	return out
}

// GridColumns returns the grid column count for n elements.
func GridColumns(n int) int {
	switch {
	case n <= 1:
		return 1
	case n <= 4:
		return 2
	case n <= 9:
		return 3
	default:
		return 4
	}
}

func placeGrid(elems []model.Element, width, height float64, cfg Config) []Placement {
	n := len(elems)
	if n == 0 {
		return nil
	}

	cols := GridColumns(n)
	rows := int(math.Ceil(float64(n) / float64(cols)))
	cellW := (width - 2*cfg.SideMargin) / float64(cols)
	cellH := (height - cfg.TopMargin - cfg.BottomMargin) / float64(rows)

	out := make([]Placement, 0, n)
	for i, e := range elems {
		row, col := i/cols, i%cols
		b := e.BoundingBox()
		x := cfg.SideMargin + float64(col)*cellW + (cellW-b.Width)/2
		y := cfg.TopMargin + float64(row)*cellH + (cellH-b.Height)/2
		out = append(out, Placement{Element: e, BBox: b.MoveTo(x, y)})
	}
	return out
}

// placeFlow packs elements left to right and wraps to a new row when the
// next element would pass the right margin. An element wider than the
// whole row is placed at the start of its own row rather than wrapped
// forever.
func placeFlow(elems []model.Element, width, _ float64, cfg Config) []Placement {
	left := cfg.SideMargin
	right := width - cfg.SideMargin
	x, y := left, cfg.TopMargin
	rowHeight := 0.0

	out := make([]Placement, 0, len(elems))
	for _, e := range elems {
		b := e.BoundingBox()
		if x+b.Width > right && x > left {
			x = left
			y += rowHeight + cfg.Spacing
			rowHeight = 0
		}
		out = append(out, Placement{Element: e, BBox: b.MoveTo(x, y)})
		x += b.Width + cfg.Spacing
		rowHeight = math.Max(rowHeight, b.Height)
	}
	return out
}
