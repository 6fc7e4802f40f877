package startup

import (
	"qlauncher/internal/clean"
	"qlauncher/internal/entries"
	"qlauncher/internal/presence"
	"qlauncher/internal/state"
	"qlauncher/internal/updatecheck"
)

// Event is a typed completion notification from one startup task. Exactly
// one event is produced per scheduled task; failures travel inside the
// event payload, never past the task boundary.
type Event interface {
	event()
}

// UpdateCheckDone reports the update check outcome.
type UpdateCheckDone struct {
	Result *updatecheck.Result
	Err    error
}

// EntriesLoaded reports the instance list load.
type EntriesLoaded struct {
	Entries []entries.Entry
	Err     error
}

// PresenceReady hands over a connected peer-presence client. There is no
// error form: the connector retries until it succeeds.
type PresenceReady struct {
	Client *presence.Client
}

// CleanDone reports one directory cleanup. Two instances run at startup
// (logs and download cache); each delivers its own event and neither
// affects the other.
type CleanDone struct {
	Report clean.Report
	Err    error
}

// CustomJarsLoaded reports the persisted custom jar state load.
type CustomJarsLoaded struct {
	Jars []state.CustomJar
	Err  error
}

// NotesLoaded reports the selected entry's startup notes reload.
type NotesLoaded struct {
	Entry string
	Text  string
	Err   error
}

func (UpdateCheckDone) event()  {}
func (EntriesLoaded) event()    {}
func (PresenceReady) event()    {}
func (CleanDone) event()        {}
func (CustomJarsLoaded) event() {}
func (NotesLoaded) event()      {}
