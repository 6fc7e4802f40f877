package app

import (
	"context"
	"errors"
	"path/filepath"

	"qlauncher/internal/clean"
	"qlauncher/internal/entries"
	"qlauncher/internal/notes"
	"qlauncher/internal/paths"
	"qlauncher/internal/startup"
	"qlauncher/internal/updatecheck"
)

// startupTasks builds the registry of startup work. Disabled features get
// a Task with a nil Run, which the orchestrator never schedules, so they
// contribute no completion event.
func (l *Launcher) startupTasks() []startup.Task {
	return []startup.Task{
		{Name: "update-check", Run: l.updateCheckTask()},
		{Name: "presence", Run: l.presenceTask()},
		{Name: "entries", Run: l.entriesTask()},
		{Name: "clean-logs", Run: l.cleanTask(paths.LogsDir(l.dataDir))},
		{Name: "clean-download-cache", Run: l.cleanTask(paths.DownloadCacheDir(l.dataDir))},
		{Name: "custom-jars", Run: l.customJarsTask()},
		{Name: "startup-notes", Run: l.notesTask()},
	}
}

func (l *Launcher) updateCheckTask() func(context.Context) startup.Event {
	if !updatecheck.Enabled || !l.cfg.AutoUpdateEnabled() {
		return nil
	}
	return func(ctx context.Context) startup.Event {
		result, err := l.updateChecker.Check(ctx, Version)
		return startup.UpdateCheckDone{Result: result, Err: err}
	}
}

func (l *Launcher) presenceTask() func(context.Context) startup.Event {
	// A config that failed to load defaults to allowing presence.
	if l.cfgErr == nil && !l.cfg.RichPresenceEnabled() {
		return nil
	}
	return func(context.Context) startup.Event {
		return startup.PresenceReady{Client: l.presenceConnector.Connect()}
	}
}

func (l *Launcher) entriesTask() func(context.Context) startup.Event {
	return func(context.Context) startup.Event {
		if l.dataDir == "" {
			return startup.EntriesLoaded{Err: paths.ErrUnresolvable}
		}
		list, err := entries.List(paths.InstancesDir(l.dataDir), false)
		return startup.EntriesLoaded{Entries: list, Err: err}
	}
}

func (l *Launcher) cleanTask(dir string) func(context.Context) startup.Event {
	if l.dataDir == "" {
		dir = ""
	}
	return func(context.Context) startup.Event {
		report, err := clean.Dir(dir, clean.DefaultMaxAge)
		return startup.CleanDone{Report: report, Err: err}
	}
}

func (l *Launcher) customJarsTask() func(context.Context) startup.Event {
	return func(ctx context.Context) startup.Event {
		if l.store == nil {
			return startup.CustomJarsLoaded{Err: errors.New("state store unavailable")}
		}
		jars, err := l.store.CustomJars(ctx)
		return startup.CustomJarsLoaded{Jars: jars, Err: err}
	}
}

func (l *Launcher) notesTask() func(context.Context) startup.Event {
	// Notes reload only when an entry is already selected in the loaded
	// configuration.
	if l.cfgErr != nil || l.cfg.SelectedEntry == "" || l.dataDir == "" {
		return nil
	}
	selected := l.cfg.SelectedEntry
	entryDir := filepath.Join(paths.InstancesDir(l.dataDir), selected)
	return func(context.Context) startup.Event {
		text, err := notes.Load(entryDir)
		return startup.NotesLoaded{Entry: selected, Text: text, Err: err}
	}
}
