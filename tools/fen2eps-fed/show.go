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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/n1tehawk/fen2eps/fed"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE.fed...",
		Short: "Show the FontInfo tags of FED files",
		Long: `Show prints the FontInfo tags of each file.  On a terminal the
output is aligned for reading; otherwise one "file<TAB>key<TAB>value"
line is written per tag, with newlines in values written as "\n".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.cfg.Parser()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			pretty := isTerminal(out)
			for _, fname := range args {
				rec, err := p.ParseFile(fname)
				if err != nil {
					return err
				}
				if pretty {
					writeRecord(out, fname, rec, p.Keys.Keys())
				} else {
					writeRecordTSV(out, fname, rec, p.Keys.Keys())
				}
			}
			return nil
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeRecord(w io.Writer, fname string, rec fed.Record, keys []string) {
	width := 0
	for _, key := range keys {
		if _, ok := rec[key]; ok {
			width = max(width, len(key))
		}
	}

	fmt.Fprintln(w, fname)
	fmt.Fprintln(w, strings.Repeat("-", len(fname)))
	for _, key := range keys {
		val, ok := rec[key]
		if !ok {
			continue
		}
		indent := "\n" + strings.Repeat(" ", width+2)
		fmt.Fprintf(w, "%-*s  %s\n", width, key, strings.ReplaceAll(val, "\n", indent))
	}
	fmt.Fprintln(w)
}

func writeRecordTSV(w io.Writer, fname string, rec fed.Record, keys []string) {
	for _, key := range keys {
		val, ok := rec[key]
		if !ok {
			continue
		}
		val = strings.ReplaceAll(val, `\`, `\\`)
		val = strings.ReplaceAll(val, "\n", `\n`)
		val = strings.ReplaceAll(val, "\t", `\t`)
		fmt.Fprintf(w, "%s\t%s\t%s\n", fname, key, val)
	}
}

func (a *app) checkCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check FILE.fed...",
		Short: "Report required FontInfo tags missing from FED files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.cfg.Parser()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, fname := range args {
				rec, err := p.ParseFile(fname)
				if err != nil {
					return err
				}
				report := fed.Check(fname, rec, a.cfg.Required...)
				if report.OK() {
					fmt.Fprintf(out, "%s: ok\n", fname)
					continue
				}
				failed++
				fmt.Fprintln(out, report.Err())
			}
			if strict && failed > 0 {
				return fmt.Errorf("%d of %d files are incomplete", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if tags are missing")
	return cmd
}
