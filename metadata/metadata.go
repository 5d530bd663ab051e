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

// Package metadata converts the FontInfo tags of a FED file into an XMP
// metadata packet, and back.
//
// The descriptive tags are mapped onto Dublin Core properties: FontName
// becomes the title, FontAuthor the creator and Description the
// description.  FED files do not declare a language, so the localized
// Dublin Core entries are written as "x-default".  All five tags are also
// stored verbatim in a private "fed" namespace, so that [ToRecord] can
// restore the record exactly.
package metadata

import (
	"io"

	"github.com/n1tehawk/fen2eps/fed"
	"seehuhn.de/go/xmp"
)

// FED is the XMP namespace for the FontInfo section of a FED file.
type FED struct {
	_           xmp.Namespace `xmp:"http://fen2eps.sourceforge.net/ns/fed/1.0/"`
	_           xmp.Prefix    `xmp:"fed"`
	FontName    xmp.Text
	FontVersion xmp.Text
	FontDate    xmp.Text
	FontAuthor  xmp.Text
	Description xmp.Text
}

// FromRecord returns an XMP packet describing the font.
// Tags which are absent from rec are omitted from the packet.
func FromRecord(rec fed.Record) (*xmp.Packet, error) {
	dc := &xmp.DublinCore{}
	if name, ok := rec[fed.FontName]; ok {
		dc.Title.Default = xmp.NewText(name)
	}
	if author, ok := rec[fed.FontAuthor]; ok {
		dc.Creator.Append(xmp.NewProperName(author))
	}
	if desc, ok := rec[fed.Description]; ok {
		dc.Description.Default = xmp.NewText(desc)
	}

	ns := &FED{}
	for key, ptr := range ns.fields() {
		if val, ok := rec[key]; ok {
			*ptr = xmp.NewText(val)
		}
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, ns)
	if err != nil {
		return nil, err
	}
	return packet, nil
}

// ToRecord extracts the FontInfo tags from the "fed" namespace of an XMP
// packet.
func ToRecord(packet *xmp.Packet) fed.Record {
	ns := &FED{}
	packet.Get(ns)

	rec := fed.Record{}
	for key, ptr := range ns.fields() {
		if !ptr.IsZero() {
			rec[key] = ptr.V
		}
	}
	return rec
}

// Write writes the XMP packet for rec to w.
func Write(w io.Writer, rec fed.Record, pretty bool) error {
	packet, err := FromRecord(rec)
	if err != nil {
		return err
	}
	return packet.Write(w, &xmp.PacketOptions{Pretty: pretty})
}

// Read reads an XMP packet and returns the FontInfo tags stored in it.
func Read(r io.Reader) (fed.Record, error) {
	packet, err := xmp.Read(r)
	if err != nil {
		return nil, err
	}
	return ToRecord(packet), nil
}

func (ns *FED) fields() map[string]*xmp.Text {
	return map[string]*xmp.Text{
		fed.FontName:    &ns.FontName,
		fed.FontVersion: &ns.FontVersion,
		fed.FontDate:    &ns.FontDate,
		fed.FontAuthor:  &ns.FontAuthor,
		fed.Description: &ns.Description,
	}
}
