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

import "strings"

// Missing returns the keys from required which are not present in rec,
// in the order given.
func Missing(rec Record, required ...string) []string {
	var missing []string
	for _, key := range required {
		if _, ok := rec[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// Report lists the required keys which are absent from a FED file.
type Report struct {
	File    string
	Missing []string
}

// Check compares rec against the list of required keys.
// The result is never nil.
func Check(fname string, rec Record, required ...string) *Report {
	return &Report{
		File:    fname,
		Missing: Missing(rec, required...),
	}
}

// OK reports whether all required keys were found.
func (r *Report) OK() bool {
	return len(r.Missing) == 0
}

// Err returns a [*MissingKeysError] if keys are missing, and nil
// otherwise.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return &MissingKeysError{File: r.File, Keys: r.Missing}
}

// MissingKeysError indicates that a FED file lacks required FontInfo tags.
type MissingKeysError struct {
	File string
	Keys []string
}

func (err *MissingKeysError) Error() string {
	head := ""
	if err.File != "" {
		head = err.File + ": "
	}
	return head + "missing FontInfo tags: " + strings.Join(err.Keys, ", ")
}
