package gui

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/sky-climber/internal/core"
	"github.com/vovakirdan/sky-climber/internal/games/climber"
)

func newTestHost(t *testing.T) (*Game, *fakeKeys, *time.Time) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	now := time.Unix(1000, 0)
	keys := newFakeKeys()
	host := NewGame(climber.New(), Options{
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 7},
	})
	host.keys = keys
	host.now = func() time.Time { return now }
	host.Reset()
	return host, keys, &now
}

func TestUpdateMovesPlayer(t *testing.T) {
	host, keys, _ := newTestHost(t)
	startX := host.game.Simulation().Player().Box.X

	keys.press(ebiten.KeyArrowRight)
	for range 5 {
		if err := host.Update(); err != nil {
			t.Fatalf("Update() = %v", err)
		}
		keys.next()
	}

	if x := host.game.Simulation().Player().Box.X; x != startX+10 {
		t.Errorf("X = %v, expected %v", x, startX+10)
	}

	keys.release(ebiten.KeyArrowRight)
	_ = host.Update()
	keys.next()
	_ = host.Update()

	if x := host.game.Simulation().Player().Box.X; x != startX+10 {
		t.Errorf("X after release = %v, expected %v", x, startX+10)
	}
}

func TestUpdateSpawnsOnWallClock(t *testing.T) {
	host, _, now := newTestHost(t)
	interval := host.game.SpawnInterval()

	*now = now.Add(interval / 2)
	_ = host.Update()
	if rows := host.game.Simulation().Snapshot().Rows; rows != 0 {
		t.Errorf("Rows = %d before the interval, expected 0", rows)
	}

	*now = now.Add(interval)
	_ = host.Update()
	if rows := host.game.Simulation().Snapshot().Rows; rows != 1 {
		t.Errorf("Rows = %d after the interval, expected 1", rows)
	}
}

func TestUpdateQuit(t *testing.T) {
	host, keys, _ := newTestHost(t)

	keys.press(ebiten.KeyQ)

	if err := host.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, expected ebiten.Termination", err)
	}
}

func TestUpdateRestart(t *testing.T) {
	host, keys, _ := newTestHost(t)

	for range 30 {
		_ = host.Update()
	}
	keys.press(ebiten.KeyR)
	_ = host.Update()

	if ticks := host.game.Simulation().Snapshot().Ticks; ticks != 0 {
		t.Errorf("Ticks = %d after restart, expected 0", ticks)
	}
}

func TestLayout(t *testing.T) {
	host, _, _ := newTestHost(t)

	w, h := host.Layout(1920, 1080)

	if w != 300 || h != 580 {
		t.Errorf("Layout() = (%d, %d), expected (300, 580)", w, h)
	}
}
