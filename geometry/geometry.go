// fen2eps - tools for chess diagram font description files
// Copyright (C) 2003-2026  Dirk Baechle <dl9obn@darc.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package geometry decodes the board dimensions stored in the FontInfo
// section of a FED file.
//
// All lengths are given in font units, except for the "Eps" dimensions
// (board size, line width and margins) which are in PostScript points.
// The methods [Geometry.BBox] and [Geometry.Translation] compute the
// bounding box of a rendered diagram and the position of the upper left
// corner of the board.
package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/n1tehawk/fen2eps/fed"
	"seehuhn.de/go/geom/rect"
)

// Geometry describes the dimensions of a chess board font.
type Geometry struct {
	SquareSize   float64
	SquareHeight float64
	SquareDepth  float64

	TopFrameHeight float64
	TopFrameDepth  float64

	LeftFrameWidth  float64
	LeftFrameHeight float64
	LeftFrameDepth  float64

	LeftNotationFrameWidth  float64
	LeftNotationFrameHeight float64
	LeftNotationFrameDepth  float64

	RightFrameWidth  float64
	RightFrameHeight float64
	RightFrameDepth  float64

	BottomFrameHeight float64
	BottomFrameDepth  float64

	BottomNotationFrameHeight float64
	BottomNotationFrameDepth  float64

	// ScaleFactor is the scaling from font units to PostScript points.
	// It is ignored if BoardSize is set.
	ScaleFactor float64

	// The following fields are in PostScript points.
	BoardSize    float64
	LineWidth    float64
	LeftMargin   float64
	RightMargin  float64
	TopMargin    float64
	BottomMargin float64
}

type fieldKind int

const (
	number fieldKind = iota
	dimension
)

type field struct {
	key  string
	kind fieldKind
	ptr  func(g *Geometry) *float64
}

var fields = []field{
	{"SquareSize", number, func(g *Geometry) *float64 { return &g.SquareSize }},
	{"SquareHeight", number, func(g *Geometry) *float64 { return &g.SquareHeight }},
	{"SquareDepth", number, func(g *Geometry) *float64 { return &g.SquareDepth }},
	{"TopFrameHeight", number, func(g *Geometry) *float64 { return &g.TopFrameHeight }},
	{"TopFrameDepth", number, func(g *Geometry) *float64 { return &g.TopFrameDepth }},
	{"LeftFrameWidth", number, func(g *Geometry) *float64 { return &g.LeftFrameWidth }},
	{"LeftFrameHeight", number, func(g *Geometry) *float64 { return &g.LeftFrameHeight }},
	{"LeftFrameDepth", number, func(g *Geometry) *float64 { return &g.LeftFrameDepth }},
	{"LeftNotationFrameWidth", number, func(g *Geometry) *float64 { return &g.LeftNotationFrameWidth }},
	{"LeftNotationFrameHeight", number, func(g *Geometry) *float64 { return &g.LeftNotationFrameHeight }},
	{"LeftNotationFrameDepth", number, func(g *Geometry) *float64 { return &g.LeftNotationFrameDepth }},
	{"RightFrameWidth", number, func(g *Geometry) *float64 { return &g.RightFrameWidth }},
	{"RightFrameHeight", number, func(g *Geometry) *float64 { return &g.RightFrameHeight }},
	{"RightFrameDepth", number, func(g *Geometry) *float64 { return &g.RightFrameDepth }},
	{"BottomFrameHeight", number, func(g *Geometry) *float64 { return &g.BottomFrameHeight }},
	{"BottomFrameDepth", number, func(g *Geometry) *float64 { return &g.BottomFrameDepth }},
	{"BottomNotationFrameHeight", number, func(g *Geometry) *float64 { return &g.BottomNotationFrameHeight }},
	{"BottomNotationFrameDepth", number, func(g *Geometry) *float64 { return &g.BottomNotationFrameDepth }},
	{"EpsScalingFactor", number, func(g *Geometry) *float64 { return &g.ScaleFactor }},
	{"EpsBoardSize", dimension, func(g *Geometry) *float64 { return &g.BoardSize }},
	{"EpsDefaultLineWidth", dimension, func(g *Geometry) *float64 { return &g.LineWidth }},
	{"EpsLeftMargin", dimension, func(g *Geometry) *float64 { return &g.LeftMargin }},
	{"EpsRightMargin", dimension, func(g *Geometry) *float64 { return &g.RightMargin }},
	{"EpsTopMargin", dimension, func(g *Geometry) *float64 { return &g.TopMargin }},
	{"EpsBottomMargin", dimension, func(g *Geometry) *float64 { return &g.BottomMargin }},
}

// Keys returns the set of FontInfo tags read by [FromRecord].
// Use this, possibly combined with [fed.DefaultKeys], to configure a
// [fed.Parser].
func Keys() fed.KeySet {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return fed.NewKeySet(keys...)
}

// FromRecord decodes the board dimensions from a FED record.
// Tags which are absent or empty are taken to be zero.
// Negative values are replaced by their absolute value.
func FromRecord(rec fed.Record) (*Geometry, error) {
	g := &Geometry{}
	for _, f := range fields {
		s, ok := rec[f.key]
		if !ok {
			continue
		}
		var x float64
		var err error
		switch f.kind {
		case number:
			x, _, err = parseNumber(s)
		case dimension:
			x, err = parseDimension(s)
		}
		if err != nil {
			return nil, &ValueError{Key: f.key, Value: s, Err: err}
		}
		*f.ptr(g) = x
	}
	return g, nil
}

// Scale returns the factor which converts font units into PostScript
// points.  If a board size is given, the scale is chosen so that eight
// squares fill the board.
func (g *Geometry) Scale() float64 {
	if g.BoardSize > 0 && g.SquareSize > 0 {
		return g.BoardSize / (8 * g.SquareSize)
	}
	return g.ScaleFactor
}

// BBox returns the bounding box of a diagram in PostScript points.
// The lower left corner is always at the origin.  If notation is true,
// the frames with board coordinates are used for the left and bottom
// edge.
func (g *Geometry) BBox(notation bool) rect.Rect {
	s := g.Scale()

	var dx, dy float64
	if notation {
		dx = g.LeftNotationFrameWidth * s
		dy = (g.BottomNotationFrameHeight + g.BottomNotationFrameDepth) * s
	} else {
		dx = g.LeftFrameWidth * s
		dy = (g.BottomFrameHeight + g.BottomFrameDepth) * s
	}
	dx += g.LeftMargin + (8*g.SquareSize+g.RightFrameWidth)*s + g.RightMargin
	dy += g.BottomMargin + (8*g.SquareSize+g.TopFrameHeight+g.TopFrameDepth)*s + g.TopMargin

	return rect.Rect{URx: dx, URy: dy}
}

// Translation returns the position, in PostScript points, where the
// renderer places the upper left corner of the left frame.
func (g *Geometry) Translation(notation bool) (x, y float64) {
	s := g.Scale()

	if notation {
		x = (g.LeftNotationFrameWidth - g.LeftFrameWidth) * s
		y = (g.BottomNotationFrameHeight + g.BottomNotationFrameDepth) * s
	} else {
		y = (g.BottomFrameHeight + g.BottomFrameDepth) * s
	}
	x += g.LeftMargin
	y += g.BottomMargin + 8*g.SquareSize*s + g.TopFrameDepth*s
	return x, y
}

// Points per unit of length.
var unitScale = map[string]float64{
	"":   1,
	"pt": 1,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
	"in": 72,
}

// parseDimension converts a length with an optional unit into PostScript
// points.
func parseDimension(s string) (float64, error) {
	x, unit, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	scale, ok := unitScale[unit]
	if !ok {
		// unknown units are ignored, in the same way as fen2eps does
		scale = 1
	}
	return x * scale, nil
}

// parseNumber reads a number from the first line of s, followed by an
// optional unit.  The unit may either be attached to the number or be
// the next word.
func parseNumber(s string) (float64, string, error) {
	line, _, _ := strings.Cut(s, "\n")
	ff := strings.Fields(line)
	if len(ff) == 0 {
		return 0, "", nil
	}

	word := ff[0]
	end := len(word)
	for i, c := range word {
		if !strings.ContainsRune("0123456789+-.eE", c) {
			end = i
			break
		}
	}
	numStr, unit := word[:end], word[end:]
	// "1e" or "2em": the exponent marker belongs to the unit
	for numStr != "" {
		last := numStr[len(numStr)-1]
		if last != 'e' && last != 'E' && last != '+' && last != '-' {
			break
		}
		unit = numStr[len(numStr)-1:] + unit
		numStr = numStr[:len(numStr)-1]
	}
	x, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, "", err
	}
	if unit == "" && len(ff) > 1 {
		unit = ff[1]
	}
	return math.Abs(x), unit, nil
}

// ValueError is returned by [FromRecord] if a tag does not contain a
// valid number.
type ValueError struct {
	Key   string
	Value string
	Err   error
}

func (err *ValueError) Error() string {
	return fmt.Sprintf("FontInfo tag %s: invalid number %q", err.Key, err.Value)
}

func (err *ValueError) Unwrap() error {
	return err.Err
}
