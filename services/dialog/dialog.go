package dialog

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies what a dialog presents.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
	KindConfirm Kind = "confirm"
	KindNotes   Kind = "admin-notes"
)

var (
	// ErrBusy is returned when a dialog is already open. Overlapping
	// opens fail instead of silently replacing the pending resolution.
	ErrBusy = errors.New("a dialog is already open")
	// ErrNoDialog is returned when resolving an id that is not the
	// open dialog.
	ErrNoDialog = errors.New("no open dialog with that id")
)

// Request describes an open dialog.
type Request struct {
	ID       string    `json:"id"`
	Kind     Kind      `json:"kind"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	OpenedAt time.Time `json:"openedAt"`
}

// Result is the outcome of a dialog. Confirmed is true only on an
// explicit confirmation; dismissal and expiry both report false.
type Result struct {
	Confirmed bool   `json:"confirmed"`
	Notes     string `json:"notes,omitempty"`
}

type pending struct {
	req   Request
	ch    chan Result
	timer *time.Timer
}

// Manager owns at most one open dialog at a time and tracks its state
// explicitly: open, then resolved exactly once.
type Manager struct {
	mu      sync.Mutex
	current *pending
	timeout time.Duration
}

// NewManager creates a Manager whose dialogs expire, resolving false,
// after the given timeout. A zero timeout means dialogs never expire.
func NewManager(timeout time.Duration) *Manager {
	return &Manager{timeout: timeout}
}

// Open opens a dialog and returns its request plus the channel its
// result arrives on. A second Open while one is pending fails with
// ErrBusy.
func (m *Manager) Open(kind Kind, title, message string) (Request, <-chan Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		return Request{}, nil, ErrBusy
	}

	req := Request{
		ID:       uuid.NewString(),
		Kind:     kind,
		Title:    title,
		Message:  message,
		OpenedAt: time.Now(),
	}
	p := &pending{req: req, ch: make(chan Result, 1)}
	if m.timeout > 0 {
		id := req.ID
		p.timer = time.AfterFunc(m.timeout, func() {
			// Expiry is a dismissal.
			_ = m.Resolve(id, Result{Confirmed: false})
		})
	}
	m.current = p
	return req, p.ch, nil
}

// Resolve closes the open dialog with the given result. The id must
// match the open dialog.
func (m *Manager) Resolve(id string, res Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || m.current.req.ID != id {
		return ErrNoDialog
	}
	if m.current.timer != nil {
		m.current.timer.Stop()
	}
	m.current.ch <- res
	m.current = nil
	return nil
}

// Dismiss closes the open dialog without confirmation.
func (m *Manager) Dismiss(id string) error {
	return m.Resolve(id, Result{Confirmed: false})
}

// Current returns the open dialog, if any.
func (m *Manager) Current() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Request{}, false
	}
	return m.current.req, true
}

// Convenience wrappers for the standard presentation kinds. They add no
// control flow of their own.

func (m *Manager) OpenSuccess(title, message string) (Request, <-chan Result, error) {
	return m.Open(KindSuccess, title, message)
}

func (m *Manager) OpenError(title, message string) (Request, <-chan Result, error) {
	return m.Open(KindError, title, message)
}

func (m *Manager) OpenWarning(title, message string) (Request, <-chan Result, error) {
	return m.Open(KindWarning, title, message)
}

func (m *Manager) OpenInfo(title, message string) (Request, <-chan Result, error) {
	return m.Open(KindInfo, title, message)
}

func (m *Manager) OpenConfirm(title, message string) (Request, <-chan Result, error) {
	return m.Open(KindConfirm, title, message)
}

// OpenNotesPrompt asks the admin for free-text notes alongside a
// confirmation.
func (m *Manager) OpenNotesPrompt(title, message string) (Request, <-chan Result, error) {
	return m.Open(KindNotes, title, message)
}
