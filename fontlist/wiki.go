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

package fontlist

import (
	"bufio"
	"io"
	"path"

	"github.com/n1tehawk/fen2eps/fed"
)

// Header holds the document information of the generated font list.
type Header struct {
	Title    string
	Author   string
	Date     string
	Abstract string

	// BoardsDir is the directory, relative to the list, which holds the
	// example board for each font, as "<stem>.png".
	BoardsDir string
}

// ImagePath returns the location of the example board for e, relative
// to the font list.
func (e *Entry) ImagePath(boardsDir string) string {
	return path.Join(boardsDir, e.Stem()+".png")
}

// WriteWiki writes the font list in the wiki markup used for the fen2eps
// manual.
func WriteWiki(w io.Writer, h *Header, entries []*Entry) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("@title: " + h.Title + "\n")
	bw.WriteString("@author: " + h.Author + "\n")
	bw.WriteString("@date: " + h.Date + "\n")
	bw.WriteString("\nAbstract:\n")
	if h.Abstract != "" {
		bw.WriteString(h.Abstract + "\n")
	}
	bw.WriteString("\n")

	for _, e := range entries {
		stem := e.Stem()
		img := e.ImagePath(h.BoardsDir)

		bw.WriteString("== " + e.Name() + " ==\n")
		bw.WriteString("$$" + stem + ".fed$$, by " + e.Info[fed.FontAuthor] +
			" (" + e.Info[fed.FontDate] + ")\n\n")
		bw.WriteString("Image: " + img +
			"||**docbook scale=\"45\"** **forrest width=\"600\" alt=\"" + stem + ".png\"**\n\n")
		bw.WriteString("Raw:\n **docbook <?hard-pagebreak?>**\n\n")
	}

	return bw.Flush()
}
