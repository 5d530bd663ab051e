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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/charmap"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Record
	}{
		{
			name: "basic",
			in: `%BEGIN FontInfo
%BEGIN FontName
Alpha
%END FontName
%BEGIN FontVersion
1.0
%END FontVersion
%END FontInfo
`,
			want: Record{FontName: "Alpha", FontVersion: "1.0"},
		},
		{
			name: "multi-line",
			in: `%BEGIN FontInfo
%BEGIN Description
line1
line2
%END Description
%END FontInfo`,
			want: Record{Description: "line1\nline2"},
		},
		{
			name: "unterminated",
			in: `%BEGIN FontInfo
%BEGIN FontName
Alpha
%END FontName
%BEGIN FontAuthor
Someone`,
			want: Record{FontName: "Alpha"},
		},
		{
			name: "unknown tag",
			in: `%BEGIN FontInfo
%BEGIN SquareSize
100
%END SquareSize
%END FontInfo
`,
			want: Record{},
		},
		{
			name: "no info section",
			in: `%BEGIN FontName
Alpha
%END FontName
`,
			want: Record{},
		},
		{
			name: "empty",
			in:   "",
			want: Record{},
		},
		{
			name: "empty value",
			in: `%BEGIN FontInfo
%BEGIN FontDate
%END FontDate
%END FontInfo
`,
			want: Record{FontDate: ""},
		},
		{
			name: "nested begin is content",
			in: `%BEGIN FontInfo
%BEGIN Description
%BEGIN FontName
text
%END
%END FontInfo
`,
			want: Record{Description: "%BEGIN FontName\ntext"},
		},
		{
			name: "end marker with other name closes tag",
			in: `%BEGIN FontInfo
%BEGIN FontName
Alpha
%END SomethingElse
%END FontInfo
`,
			want: Record{FontName: "Alpha"},
		},
		{
			name: "tag name from several words",
			in: `%BEGIN FontInfo
%BEGIN Font   Name
Alpha
%END
%END FontInfo
`,
			want: Record{},
		},
		{
			name: "prefix match",
			in: `%BEGIN FontInfoXYZ
%BEGIN FontName
Alpha
%END FontName
%END FontInfo trailing text
%BEGIN FontVersion
2.0
%END FontVersion
`,
			want: Record{FontName: "Alpha"},
		},
		{
			name: "section reopened",
			in: `%BEGIN FontInfo
%BEGIN FontName
Alpha
%END FontName
%END FontInfo
%BEGIN FontInfo
%BEGIN FontName
Beta
%END FontName
%END FontInfo
`,
			want: Record{FontName: "Beta"},
		},
		{
			name: "content outside tags ignored",
			in: `% a chess font
%BEGIN FontInfo
some comment
%BEGIN FontAuthor
Someone
%END FontAuthor
%END FontInfo
%BEGIN WKWS
0 0 moveto
%END WKWS
`,
			want: Record{FontAuthor: "Someone"},
		},
		{
			name: "crlf",
			in:   "%BEGIN FontInfo\r\n%BEGIN FontName\r\nAlpha\r\n%END FontName\r\n%END FontInfo\r\n",
			want: Record{FontName: "Alpha"},
		},
		{
			name: "verbatim lines",
			in:   "%BEGIN FontInfo\n%BEGIN Description\n  indented  text  \n%END Description\n%END FontInfo\n",
			want: Record{Description: "  indented  text  "},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(c.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("unexpected record (-got +want):\n%s", diff)
			}
		})
	}
}

func TestParseCustomKeys(t *testing.T) {
	in := `%BEGIN FontInfo
%BEGIN FontName
Alpha
%END FontName
%BEGIN SquareSize
100
%END SquareSize
%BEGIN Font Name
Spaced
%END Font Name
%END FontInfo
`
	p := NewParser(NewKeySet("SquareSize", "Font Name"))
	got, err := p.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := Record{"SquareSize": "100", "Font Name": "Spaced"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("unexpected record (-got +want):\n%s", diff)
	}

	// the default parser is not affected
	got, err = Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want = Record{FontName: "Alpha"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("unexpected record (-got +want):\n%s", diff)
	}
}

func TestParseIdempotent(t *testing.T) {
	in := "%BEGIN FontInfo\n%BEGIN FontName\nAlpha\n%END FontName\n%BEGIN FontDate\n2010\n"
	p := NewParser(nil)
	first, err := p.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results differ (-first +second):\n%s", diff)
	}
}

func TestParseCharset(t *testing.T) {
	in := []byte("%BEGIN FontInfo\n%BEGIN FontAuthor\nDirk B\xe4chle\n%END FontAuthor\n%END FontInfo\n")
	p := NewParser(nil)
	p.Charset = charmap.ISO8859_1
	got, err := p.Parse(strings.NewReader(string(in)))
	if err != nil {
		t.Fatal(err)
	}
	if got[FontAuthor] != "Dirk Bächle" {
		t.Errorf("got %q", got[FontAuthor])
	}
}

func TestParseReadError(t *testing.T) {
	errTest := errors.New("test error")
	r := iotest.ErrReader(errTest)
	_, err := Parse(r)
	if !errors.Is(err, errTest) {
		t.Errorf("expected test error, got %v", err)
	}
}

func TestParseFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "alpha.fed")
	data := "%BEGIN FontInfo\n%BEGIN FontName\nAlpha\n%END FontName\n%END FontInfo\n"
	err := os.WriteFile(fname, []byte(data), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	got, err := ParseFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(got, Record{FontName: "Alpha"}); diff != "" {
		t.Errorf("unexpected record (-got +want):\n%s", diff)
	}

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.fed"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestRecordLookup(t *testing.T) {
	rec := Record{FontName: "Alpha", FontDate: ""}
	if v, ok := rec.Lookup(FontDate); !ok || v != "" {
		t.Errorf("FontDate: got %q, %t", v, ok)
	}
	if _, ok := rec.Lookup(FontAuthor); ok {
		t.Error("FontAuthor should be absent")
	}
	if rec.Get(FontName) != "Alpha" {
		t.Errorf("FontName: got %q", rec.Get(FontName))
	}
}

func TestKeySet(t *testing.T) {
	s := DefaultKeys()
	want := []string{Description, FontAuthor, FontDate, FontName, FontVersion}
	if diff := cmp.Diff(s.Keys(), want); diff != "" {
		t.Errorf("unexpected keys (-got +want):\n%s", diff)
	}

	u := s.Union(NewKeySet("SquareSize"))
	if !u.Contains("SquareSize") || !u.Contains(FontName) {
		t.Error("union is missing keys")
	}
	if s.Contains("SquareSize") {
		t.Error("union modified the receiver")
	}

	var empty KeySet
	if empty.Contains(FontName) {
		t.Error("nil set contains a key")
	}
	if len(empty.Union(NewKeySet("a"))) != 1 {
		t.Error("union with nil receiver failed")
	}
}

func FuzzParse(f *testing.F) {
	f.Add("%BEGIN FontInfo\n%BEGIN FontName\nAlpha\n%END FontName\n%END FontInfo\n")
	f.Add("%BEGIN FontInfo\n%BEGIN Description\na\nb\n%END\n%BEGIN X\ny\n%END X\n")
	f.Add("%END FontInfo\n%BEGIN\n%END\n")
	f.Fuzz(func(t *testing.T, in string) {
		p := NewParser(NewKeySet(FontName, Description))
		r1, err := p.Parse(strings.NewReader(in))
		if err != nil {
			t.Fatal(err)
		}
		for key := range r1 {
			if key != FontName && key != Description {
				t.Errorf("unexpected key %q", key)
			}
		}
		if !strings.Contains(in, beginInfo) && len(r1) > 0 {
			t.Errorf("record %v without FontInfo section", r1)
		}

		r2, err := p.Parse(strings.NewReader(in))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(r1, r2); diff != "" {
			t.Errorf("results differ (-first +second):\n%s", diff)
		}
	})
}
