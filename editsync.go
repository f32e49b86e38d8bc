package tonemix

import "sync"

// SyncedDisplay holds the display text of an editable field that mirrors
// a canonical value. While an edit session is open, canonical updates are
// deferred so the user's keystrokes are not clobbered; closing the
// session performs the one reconciling update. This replaces the
// per-field "isEditing" boolean that otherwise gets duplicated across
// every text input.
type SyncedDisplay struct {
	mu      sync.Mutex
	text    string
	pending string
	dirty   bool
	session *EditSession
}

// NewSyncedDisplay creates a display holding the initial canonical text.
func NewSyncedDisplay(initial string) *SyncedDisplay {
	return &SyncedDisplay{text: initial}
}

// Text returns the currently displayed text.
func (d *SyncedDisplay) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// SetCanonical updates the canonical text. It is applied to the display
// immediately unless an edit session is open, in which case the latest
// value is held back until the session ends.
func (d *SyncedDisplay) SetCanonical(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session != nil {
		d.pending = text
		d.dirty = true
		return
	}
	d.text = text
}

// Editing reports whether an edit session is open.
func (d *SyncedDisplay) Editing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session != nil
}

// Begin opens an edit session, suspending canonical updates. If a
// session is already open it is returned unchanged; one field has at
// most one open session.
func (d *SyncedDisplay) Begin() *EditSession {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		d.session = &EditSession{display: d}
	}
	return d.session
}

// EditSession is the capability to edit a SyncedDisplay. Only holding an
// open session keeps canonicalization suspended.
type EditSession struct {
	display *SyncedDisplay
	done    bool
}

// SetText updates the displayed text with the user's input. No-op after
// End.
func (s *EditSession) SetText(text string) {
	d := s.display
	d.mu.Lock()
	defer d.mu.Unlock()
	if s.done {
		return
	}
	d.text = text
}

// End closes the session and applies the latest deferred canonical
// value, if any, as the single reconciling update. It returns the final
// displayed text. End is idempotent.
func (s *EditSession) End() string {
	d := s.display
	d.mu.Lock()
	defer d.mu.Unlock()
	if !s.done {
		s.done = true
		d.session = nil
		if d.dirty {
			d.text = d.pending
			d.pending = ""
			d.dirty = false
		}
	}
	return d.text
}
