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

package fed

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	beginMark = "%BEGIN"
	endMark   = "%END"
	beginInfo = "%BEGIN FontInfo"
	endInfo   = "%END FontInfo"
)

// Record maps FontInfo tag names to their values.  Multi-line values
// are joined using "\n".
type Record map[string]string

// Lookup returns the value stored for key, and whether the key was
// present in the file.
func (r Record) Lookup(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// Get returns the value stored for key, or the empty string if the key
// is absent.
func (r Record) Get(key string) string {
	return r[key]
}

// Parser extracts FontInfo tags from FED files.
//
// A Parser has no state between calls and can be used concurrently.
type Parser struct {
	// Keys is the set of tag names copied into the record.
	// All other tags are read and discarded.
	Keys KeySet

	// Charset, if non-nil, is used to decode the input.  If Charset is
	// nil, the input bytes are used unchanged.
	Charset encoding.Encoding
}

// NewParser returns a parser which records the tags in keys.
// If keys is empty, [DefaultKeys] is used.
func NewParser(keys KeySet) *Parser {
	if len(keys) == 0 {
		keys = DefaultKeys()
	}
	return &Parser{Keys: keys}
}

var defaultParser = NewParser(nil)

// Parse reads the FontInfo section from r using the default key set.
func Parse(r io.Reader) (Record, error) {
	return defaultParser.Parse(r)
}

// ParseFile reads the FontInfo section of the named file using the
// default key set.
func ParseFile(fname string) (Record, error) {
	return defaultParser.ParseFile(fname)
}

// ParseFile reads the FontInfo section of the named file.
func (p *Parser) ParseFile(fname string) (Record, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return p.Parse(fd)
}

type parseMode int

const (
	modeOutside parseMode = iota
	modeInfo
	modeTag
)

// Parse reads the FontInfo section from r.
//
// The format is not validated.  Unknown tags, tags which are never
// closed and text outside the FontInfo section are silently ignored, so
// that malformed input results in an incomplete record.  An error is
// returned only if reading from r fails.
func (p *Parser) Parse(r io.Reader) (Record, error) {
	if p.Charset != nil {
		r = transform.NewReader(r, p.Charset.NewDecoder())
	}

	info := Record{}
	mode := modeOutside
	var key string
	var value []string

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line == "" && err != nil {
			break
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		switch mode {
		case modeOutside:
			if strings.HasPrefix(line, beginInfo) {
				mode = modeInfo
			}
		case modeInfo:
			if strings.HasPrefix(line, beginMark) {
				mode = modeTag
				key = tagName(line)
				value = value[:0]
			} else if strings.HasPrefix(line, endInfo) {
				mode = modeOutside
			}
		case modeTag:
			if strings.HasPrefix(line, endMark) {
				if p.Keys.Contains(key) {
					info[key] = strings.Join(value, "\n")
				}
				mode = modeInfo
			} else {
				value = append(value, line)
			}
		}

		if err != nil {
			break
		}
	}

	return info, nil
}

// tagName returns the tag name of a "%BEGIN" line.  This consists of all
// words after the marker, separated by single spaces.
func tagName(line string) string {
	ff := strings.Fields(line)
	if len(ff) < 2 {
		return ""
	}
	return strings.Join(ff[1:], " ")
}
