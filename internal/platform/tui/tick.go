// Package tui provides the Bubble Tea host for the climber.
// It handles the terminal UI loop, input mapping, spawn timing and config reload.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-climber/internal/config"
)

// TickMsg is sent to trigger a host frame.
type TickMsg time.Time

// SpawnMsg is sent when the spawn timer fires.
type SpawnMsg time.Time

// ConfigChangedMsg reports a modified config file.
type ConfigChangedMsg struct {
	Path string
}

// ConfigErrorMsg reports a watcher failure.
type ConfigErrorMsg struct {
	Err error
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// spawnCmd fires once after interval. The spawn cadence is independent of the tick rate.
func spawnCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SpawnMsg(t)
	})
}

// watchCmd waits for the next watcher event.
func watchCmd(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ConfigErrorMsg{Err: err}
		}
	}
}
