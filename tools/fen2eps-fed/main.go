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

// Command fen2eps-fed inspects fen2eps font description (FED) files and
// builds the font list for the fen2eps manual.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/n1tehawk/fen2eps/config"
	"github.com/n1tehawk/fen2eps/tools/internal/buildinfo"
	"github.com/n1tehawk/fen2eps/tools/internal/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by all sub-commands.
type app struct {
	cfgPath    string
	verbose    bool
	cpuprofile string
	memprofile string

	cfg     *config.Config
	logger  *zap.Logger
	profile *profile.Session
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	err := a.rootCmd().ExecuteContext(ctx)
	if cerr := a.close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fen2eps-fed",
		Short:   "Inspect fen2eps font description files",
		Version: buildinfo.Version(),
		Long: `fen2eps-fed reads the FontInfo section of fen2eps font description
(FED) files.  It can show and check the font metadata, compute the
size of rendered diagrams, export the metadata as XMP and build the
font list for the fen2eps manual.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.cfgPath, "config", "c", "fen2eps.yaml", "configuration `file`")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&a.memprofile, "memprofile", "", "write memory profile to `file`")

	cmd.AddCommand(
		a.showCmd(),
		a.checkCmd(),
		a.geometryCmd(),
		a.fontlistCmd(),
		a.xmpCmd(),
		a.epsCmd(),
		a.watchCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.logger == nil {
		zc := zap.NewProductionConfig()
		if a.verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("configuration loaded", zap.String("file", a.cfgPath))

	a.profile, err = profile.Start(a.cpuprofile, a.memprofile)
	return err
}

// close flushes the log and ends the profiling session.  It runs after
// the command, whether or not the command succeeded.
func (a *app) close() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return a.profile.Stop()
}
