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

package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun(t *testing.T) {
	const delay = 200 * time.Millisecond

	dir := t.TempDir()
	var count atomic.Int32
	calls := make(chan struct{}, 10)
	task := func(ctx context.Context) error {
		count.Add(1)
		calls <- struct{}{}
		return nil
	}

	w := New(dir, task, &Options{Delay: delay})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	// other extensions are ignored
	err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	for _, stem := range []string{"a", "b", "c", "d", "e"} {
		err := os.WriteFile(filepath.Join(dir, stem+".fed"), []byte("%BEGIN FontInfo\n"), 0o644)
		if err != nil {
			t.Fatal(err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	waitCall(t, calls)
	time.Sleep(3 * delay)
	if n := count.Load(); n != 1 {
		t.Fatalf("burst of changes caused %d runs, want 1", n)
	}

	// a later change triggers another run
	err = os.Remove(filepath.Join(dir, "a.fed"))
	if err != nil {
		t.Fatal(err)
	}
	waitCall(t, calls)
	time.Sleep(3 * delay)
	if n := count.Load(); n != 2 {
		t.Errorf("got %d runs after removal, want 2", n)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run: %v", err)
	}
}

// TestNewWithoutRun checks that an unused watcher holds no resources.
// goleak reports the fsnotify reader goroutine if one was started.
func TestNewWithoutRun(t *testing.T) {
	for range 3 {
		New(t.TempDir(), func(context.Context) error { return nil }, nil)
	}
}

func waitCall(t *testing.T, calls <-chan struct{}) {
	t.Helper()
	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("task was not called")
	}
}

func TestTaskError(t *testing.T) {
	dir := t.TempDir()
	called := make(chan struct{}, 10)
	task := func(ctx context.Context) error {
		called <- struct{}{}
		return errors.New("broken")
	}

	core, logs := observer.New(zap.ErrorLevel)
	w := New(dir, task, &Options{Delay: 10 * time.Millisecond, Logger: zap.New(core)})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	err := os.WriteFile(filepath.Join(dir, "x.FED"), nil, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	waitCall(t, called)

	cancel()
	<-done

	if logs.FilterMessage("task failed").Len() == 0 {
		t.Error("task error was not logged")
	}
}

func TestMissingDir(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing"), nil, nil)
	if err := w.Run(context.Background()); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
