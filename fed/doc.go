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

// Package fed reads the metadata of fen2eps font description (FED) files.
//
// A FED file describes a chess font for the fen2eps diagram renderer.
// Besides the PostScript procedures for the board symbols, the file
// contains a FontInfo section with named tags:
//
//	%BEGIN FontInfo
//	%BEGIN FontName
//	Alpha
//	%END FontName
//	%BEGIN SquareSize
//	100
//	%END SquareSize
//	%END FontInfo
//
// Markers are recognised by line prefix.  The tag name is formed from all
// words following "%BEGIN".  The value of a tag consists of all lines up
// to the next line starting with "%END".
//
// The parser is permissive: malformed input leads to missing entries in
// the returned [Record], never to an error.  Use [Check] to find out
// which required tags are absent.
package fed
