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
	"maps"
	"slices"
)

// Names of the FontInfo tags which are recognised by default.
const (
	FontName    = "FontName"
	FontVersion = "FontVersion"
	FontDate    = "FontDate"
	FontAuthor  = "FontAuthor"
	Description = "Description"
)

// KeySet is a closed set of tag names.  Only tags in the set are
// copied into a [Record].
type KeySet map[string]struct{}

// NewKeySet returns a key set containing the given names.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// DefaultKeys returns a new key set containing the five descriptive
// FontInfo tags: FontName, FontVersion, FontDate, FontAuthor and
// Description.
func DefaultKeys() KeySet {
	return NewKeySet(FontName, FontVersion, FontDate, FontAuthor, Description)
}

// Contains reports whether key is a member of s.
func (s KeySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the members of s in sorted order.
func (s KeySet) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Union returns a new key set containing the members of s and of all
// sets in other.
func (s KeySet) Union(other ...KeySet) KeySet {
	res := maps.Clone(s)
	if res == nil {
		res = KeySet{}
	}
	for _, o := range other {
		maps.Copy(res, o)
	}
	return res
}
