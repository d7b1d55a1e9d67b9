package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vialkov/coil/internal/config"
	"github.com/vialkov/coil/internal/core"
	"github.com/vialkov/coil/internal/render"
	"github.com/vialkov/coil/internal/term"
)

// recordingNode captures everything the loop feeds it.
type recordingNode struct {
	seen    []rune
	exitOn  rune
	updates int
	dts     []float64
	renders int
}

func (n *recordingNode) Update(dt float64) {
	n.updates++
	n.dts = append(n.dts, dt)
}

func (n *recordingNode) OnEvent(ev term.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok || key.Key() != tcell.KeyRune {
		return false
	}
	n.seen = append(n.seen, key.Rune())
	return key.Rune() == n.exitOn
}

func (n *recordingNode) Render(r render.Renderer) {
	n.renders++
	_ = r.DrawCell(0, 0, core.NewCell('R', core.ColorWhite, core.ColorDefault))
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.ScreenW = 80
	cfg.ScreenH = 24
	return cfg
}

func newTestLoop(t *testing.T, cfg config.Config) (*Loop, *term.Backend) {
	t.Helper()
	backend, err := term.NewSimulation(cfg.ScreenW, cfg.ScreenH)
	if err != nil {
		t.Fatalf("NewSimulation() failed: %v", err)
	}
	t.Cleanup(backend.Close)

	loop, err := New(cfg, WithBackend(backend))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return loop, backend
}

func TestNewRejectsInvalidConfigBeforeTerminalSetup(t *testing.T) {
	cfg := testConfig()
	cfg.TargetFPS = 0

	// No backend is injected: if validation did not run first, New would
	// try to claim a real terminal and fail differently (or hang a CI
	// session in raw mode).
	_, err := New(cfg)
	if err == nil {
		t.Fatal("New() with zero fps should fail")
	}
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("error %v should wrap config.ErrInvalid", err)
	}
}

func TestRunDispatchesEventsInOrderAndStopsAtExit(t *testing.T) {
	loop, backend := newTestLoop(t, testConfig())
	node := &recordingNode{exitOn: 'b'}

	backend.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	backend.InjectKey(tcell.KeyRune, 'b', tcell.ModNone)
	backend.InjectKey(tcell.KeyRune, 'c', tcell.ModNone)

	if err := loop.Run(node); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// a is dispatched before b; c is never dispatched because b requested
	// exit.
	if string(node.seen) != "ab" {
		t.Errorf("node saw %q, expected \"ab\"", string(node.seen))
	}
}

func TestRunUpdatesWithFixedTimestep(t *testing.T) {
	cfg := testConfig()
	loop, backend := newTestLoop(t, cfg)
	node := &recordingNode{exitOn: 'q'}

	done := make(chan error, 1)
	go func() { done <- loop.Run(node) }()

	// Let a few frames elapse, then ask the node to exit.
	time.Sleep(80 * time.Millisecond)
	backend.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not stop after the exit event")
	}

	if node.updates == 0 {
		t.Fatal("no updates fired in 80ms of wall time")
	}

	want := cfg.FrameDuration().Seconds()
	for i, dt := range node.dts {
		if dt != want {
			t.Errorf("update %d got dt = %v, expected exactly %v", i, dt, want)
		}
	}
}

func TestRunRendersEachIteration(t *testing.T) {
	loop, backend := newTestLoop(t, testConfig())
	node := &recordingNode{exitOn: 'q'}

	done := make(chan error, 1)
	go func() { done <- loop.Run(node) }()

	time.Sleep(30 * time.Millisecond)
	backend.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not stop after the exit event")
	}

	if node.renders == 0 {
		t.Fatal("node was never rendered")
	}
	if got := backend.GlyphAt(0, 0); got != 'R' {
		t.Errorf("terminal shows %q at (0, 0), expected 'R'", got)
	}
}
