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

// Package epsinfo reads the header comments of EPS diagrams written by
// fen2eps.
//
// The renderer copies the descriptive FontInfo tags of the font used into
// a block of "%%F2E" comments:
//
//	%%BeginFen2epsFontInfo
//	%%F2E Name: Alpha
//	%%F2E Author: Someone
//	%%F2E Version: 1.0
//	%%F2E Date: 2010-06-20
//	%%EndFen2epsFontInfo
//
// [Read] recovers these values as a [fed.Record], together with the
// bounding box of the diagram.
package epsinfo

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/n1tehawk/fen2eps/fed"
	"seehuhn.de/go/geom/rect"
)

// Info holds the information found in the header of an EPS file.
type Info struct {
	Title   string
	Creator string

	// BBox is the bounding box of the diagram, in PostScript points.
	// This is zero if the file has no valid "%%BoundingBox" comment.
	BBox rect.Rect

	// Font holds the FontInfo tags of the font used to render the diagram.
	Font fed.Record
}

var f2eKeys = map[string]string{
	"Name":    fed.FontName,
	"Author":  fed.FontAuthor,
	"Version": fed.FontVersion,
	"Date":    fed.FontDate,
}

// ErrNotEPS is returned by [Read] if the input does not start with a
// PostScript header line.
var ErrNotEPS = errors.New("not an EPS file")

// ReadFile reads the header comments of the named EPS file.
func ReadFile(fname string) (*Info, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return Read(fd)
}

// Read reads the header comments of an EPS file.  Reading stops at the
// "%%EndComments" line, or at the first line which is not a comment.
func Read(r io.Reader) (*Info, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotEPS
	}
	if !strings.HasPrefix(scanner.Text(), "%!PS-Adobe") {
		return nil, ErrNotEPS
	}

	info := &Info{Font: fed.Record{}}
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "%%EndComments") || !strings.HasPrefix(line, "%") {
			break
		}

		key, value, _ := strings.Cut(line, ":")
		value = strings.TrimSpace(value)
		switch {
		case key == "%%Title":
			info.Title = value
		case key == "%%Creator":
			info.Creator = value
		case key == "%%BoundingBox":
			if bbox, ok := parseBBox(value); ok {
				info.BBox = bbox
			}
		case strings.HasPrefix(key, "%%F2E "):
			name := strings.TrimSpace(strings.TrimPrefix(key, "%%F2E "))
			if fedKey, ok := f2eKeys[name]; ok {
				info.Font[fedKey] = value
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return info, nil
}

func parseBBox(s string) (rect.Rect, bool) {
	ff := strings.Fields(s)
	if len(ff) != 4 {
		return rect.Rect{}, false
	}
	var x [4]float64
	for i, f := range ff {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return rect.Rect{}, false
		}
		x[i] = v
	}
	return rect.Rect{LLx: x[0], LLy: x[1], URx: x[2], URy: x[3]}, true
}
