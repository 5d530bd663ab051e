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

// Package profile writes CPU and heap profiles for the command line tools.
package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Session is an active profiling session.
type Session struct {
	cpuFile *os.File
	memPath string
}

// Start begins CPU profiling if cpuPath is non-empty.  If memPath is
// non-empty, an allocation profile is written there by [Session.Stop].
func Start(cpuPath, memPath string) (*Session, error) {
	s := &Session{memPath: memPath}
	if cpuPath == "" {
		return s, nil
	}

	fd, err := os.Create(cpuPath)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(fd); err != nil {
		fd.Close()
		return nil, fmt.Errorf("could not start CPU profile: %w", err)
	}
	s.cpuFile = fd
	return s, nil
}

// Stop ends CPU profiling and writes the allocation profile.
// It is safe to call Stop on a nil session.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.cpuFile != nil {
		pprof.StopCPUProfile()
		errs = append(errs, s.cpuFile.Close())
		s.cpuFile = nil
	}
	if s.memPath != "" {
		errs = append(errs, writeAllocs(s.memPath))
		s.memPath = ""
	}
	return errors.Join(errs...)
}

func writeAllocs(fname string) error {
	fd, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}

	runtime.GC()
	allocs := pprof.Lookup("allocs")
	if allocs == nil {
		fd.Close()
		return errors.New("could not look up memory profile")
	}
	if err := allocs.WriteTo(fd, 0); err != nil {
		fd.Close()
		return fmt.Errorf("could not write memory profile: %w", err)
	}
	return fd.Close()
}
