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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/n1tehawk/fen2eps/epsinfo"
	"github.com/n1tehawk/fen2eps/fed"
	"github.com/n1tehawk/fen2eps/fontlist"
	"github.com/n1tehawk/fen2eps/geometry"
	"github.com/n1tehawk/fen2eps/metadata"
	"github.com/n1tehawk/fen2eps/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) geometryCmd() *cobra.Command {
	var notation bool
	cmd := &cobra.Command{
		Use:   "geometry FILE.fed",
		Short: "Show the size of diagrams rendered with a font",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.cfg.Parser()
			if err != nil {
				return err
			}
			p.Keys = p.Keys.Union(geometry.Keys())
			rec, err := p.ParseFile(args[0])
			if err != nil {
				return err
			}
			g, err := geometry.FromRecord(rec)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			bbox := g.BBox(notation)
			x, y := g.Translation(notation)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "font:         %s\n", rec[fed.FontName])
			fmt.Fprintf(out, "scale:        %g\n", g.Scale())
			fmt.Fprintf(out, "bounding box: %g %g %g %g\n", bbox.LLx, bbox.LLy, bbox.URx, bbox.URy)
			fmt.Fprintf(out, "board origin: %g %g\n", x, y)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&notation, "notation", "n", false, "use the frames with board coordinates")
	return cmd
}

func (a *app) fontlistCmd() *cobra.Command {
	var output, glob string
	cmd := &cobra.Command{
		Use:   "fontlist",
		Short: "Write the font list for the fen2eps manual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if glob == "" {
				glob = a.cfg.FontList.Glob
			}
			if output == "" {
				output = a.cfg.FontList.Output
			}
			return a.writeFontList(cmd.Context(), glob, output, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output `file` (\"-\" for standard output)")
	cmd.Flags().StringVarP(&glob, "glob", "g", "", "`pattern` selecting the FED files")
	return cmd
}

// writeFontList scans the FED files matching glob and writes the font
// list to the named file, or to stdout if output is "-".
func (a *app) writeFontList(ctx context.Context, glob, output string, stdout io.Writer) error {
	p, err := a.cfg.Parser()
	if err != nil {
		return err
	}
	lang, err := a.cfg.Language()
	if err != nil {
		return err
	}

	res, err := fontlist.Scan(ctx, glob, &fontlist.Options{
		Parser:   p,
		Workers:  a.cfg.FontList.Workers,
		Language: lang,
		Logger:   a.logger,
	})
	if err != nil {
		return err
	}

	fl := &a.cfg.FontList
	h := &fontlist.Header{
		Title:     fl.Title,
		Author:    fl.Author,
		Date:      fl.Date,
		Abstract:  fl.Abstract,
		BoardsDir: fl.BoardsDir,
	}

	if output == "-" {
		return fontlist.WriteWiki(stdout, h, res.Entries)
	}

	fd, err := os.Create(output)
	if err != nil {
		return err
	}
	err = fontlist.WriteWiki(fd, h, res.Entries)
	if err != nil {
		fd.Close()
		return err
	}
	if err := fd.Close(); err != nil {
		return err
	}
	a.logger.Info("font list written",
		zap.String("file", output), zap.Int("fonts", len(res.Entries)))
	return nil
}

func (a *app) xmpCmd() *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:   "xmp FILE.fed",
		Short: "Write the FontInfo tags as an XMP packet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.cfg.Parser()
			if err != nil {
				return err
			}
			rec, err := p.ParseFile(args[0])
			if err != nil {
				return err
			}
			return metadata.Write(cmd.OutOrStdout(), rec, !compact)
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "omit indentation")
	return cmd
}

func (a *app) epsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eps FILE.eps...",
		Short: "Show the font information of diagrams rendered by fen2eps",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, fname := range args {
				info, err := epsinfo.ReadFile(fname)
				if err != nil {
					return fmt.Errorf("%s: %w", fname, err)
				}
				b := info.BBox
				fmt.Fprintf(out, "%s\tBoundingBox\t%g %g %g %g\n", fname, b.LLx, b.LLy, b.URx, b.URy)
				writeRecordTSV(out, fname, info.Font, fed.DefaultKeys().Keys())
			}
			return nil
		},
	}
}

func (a *app) watchCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "Rebuild the font list whenever FED files in DIR change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if output == "" {
				output = a.cfg.FontList.Output
			}
			glob := filepath.Join(dir, "*.fed")
			task := func(ctx context.Context) error {
				return a.writeFontList(ctx, glob, output, cmd.OutOrStdout())
			}

			// build once at startup, then on every change
			if err := task(cmd.Context()); err != nil {
				return err
			}
			w := watch.New(dir, task, &watch.Options{Logger: a.logger})
			return w.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output `file` (\"-\" for standard output)")
	return cmd
}
