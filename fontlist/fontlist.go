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

// Package fontlist builds the catalogue of all chess fonts available for
// fen2eps.
//
// [Scan] reads the FontInfo section of a set of FED files, and
// [WriteWiki] formats the result as a wiki page which shows one example
// board for each font.
package fontlist

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/n1tehawk/fen2eps/fed"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Entry describes one font.
type Entry struct {
	// Path is the file name of the FED file.
	Path string

	// Info holds the FontInfo tags of the file.
	Info fed.Record
}

// Name returns the font name.
func (e *Entry) Name() string {
	return e.Info[fed.FontName]
}

// Stem returns the base name of the FED file, without the extension.
func (e *Entry) Stem() string {
	base := filepath.Base(e.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Options control how FED files are read by [Scan].
type Options struct {
	// Parser is used to read the FED files.  If this is nil, a parser
	// for the default keys is used.
	Parser *fed.Parser

	// Workers limits the number of files read concurrently.
	// Zero means one file at a time.
	Workers int

	// Language determines the sort order of the font names.
	Language language.Tag

	Logger *zap.Logger
}

// Result is the outcome of a [Scan].
type Result struct {
	// Entries lists the fonts, sorted by font name.
	Entries []*Entry

	// Skipped lists the FED files which have no FontName tag.
	Skipped []string
}

// Scan reads all FED files matching the glob pattern.
//
// Files without a FontName tag are skipped.  If several files use the
// same font name, the file whose path sorts last is used.
func Scan(ctx context.Context, pattern string, opt *Options) (*Result, error) {
	if opt == nil {
		opt = &Options{}
	}
	logger := opt.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	parser := opt.Parser
	if parser == nil {
		parser = fed.NewParser(nil)
	}

	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	logger.Debug("scanning FED files",
		zap.String("pattern", pattern), zap.Int("files", len(files)))

	records := make([]fed.Record, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opt.Workers, 1))
	for i, fname := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := parser.ParseFile(fname)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}
	byName := make(map[string]*Entry)
	for i, fname := range files {
		rec := records[i]
		name, ok := rec[fed.FontName]
		if !ok {
			logger.Warn("no FontName in FED file, skipping", zap.String("file", fname))
			res.Skipped = append(res.Skipped, fname)
			continue
		}
		if prev, dup := byName[name]; dup {
			logger.Warn("duplicate font name",
				zap.String("font", name),
				zap.String("ignored", prev.Path),
				zap.String("used", fname))
		}
		byName[name] = &Entry{Path: fname, Info: rec}
	}

	for _, e := range byName {
		res.Entries = append(res.Entries, e)
	}
	Sort(res.Entries, opt.Language)

	logger.Info("font list scanned",
		zap.Int("fonts", len(res.Entries)), zap.Int("skipped", len(res.Skipped)))
	return res, nil
}

// Sort orders the entries by font name, using the collation rules for the
// given language.
func Sort(entries []*Entry, lang language.Tag) {
	c := collate.New(lang)
	slices.SortFunc(entries, func(a, b *Entry) int {
		if cmp := c.CompareString(a.Name(), b.Name()); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.Name(), b.Name())
	})
}
