package screen

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

// ModalState lifecycle of the create/edit form.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalCreate
	ModalEdit
	ModalSubmitting
)

var (
	// ErrSubmitting a second submit arrived while the first is in flight.
	ErrSubmitting = errors.New("screen: submission already in progress")
	// ErrModalClosed submit on a form that is not open.
	ErrModalClosed = errors.New("screen: form is not open")
)

// Modal closed -> open (create|edit) -> submitting -> closed, or back to open
// with an inline error when the submission fails.
type Modal struct {
	state  ModalState
	mode   ModalState // ModalCreate or ModalEdit while not closed
	id     int64
	values map[string]string
	err    error
}

// OpenCreate opens an empty form seeded with defaults.
func (m *Modal) OpenCreate(defaults map[string]string) {
	m.open(ModalCreate, 0, defaults)
}

// OpenEdit opens the form for record id.
func (m *Modal) OpenEdit(id int64, values map[string]string) {
	m.open(ModalEdit, id, values)
}

func (m *Modal) open(mode ModalState, id int64, values map[string]string) {
	m.state = mode
	m.mode = mode
	m.id = id
	m.values = maps.Clone(values)
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.err = nil
}

// Set replaces the form values, e.g. with what the operator typed.
func (m *Modal) Set(values map[string]string) {
	m.values = maps.Clone(values)
}

// Begin enters submitting.
func (m *Modal) Begin() error {
	switch m.state {
	case ModalSubmitting:
		return ErrSubmitting
	case ModalClosed:
		return ErrModalClosed
	}
	m.state = ModalSubmitting
	m.err = nil
	return nil
}

// Succeed closes the form after a successful submission.
func (m *Modal) Succeed() { m.Close() }

// Fail returns to the open form with err shown inline; the values are kept.
func (m *Modal) Fail(err error) {
	if m.state == ModalClosed {
		return
	}
	m.state = m.mode
	m.err = err
}

// Close discards the form.
func (m *Modal) Close() {
	*m = Modal{}
}

func (m *Modal) State() ModalState { return m.state }
func (m *Modal) IsOpen() bool      { return m.state != ModalClosed }
func (m *Modal) Editing() bool     { return m.mode == ModalEdit }
func (m *Modal) ID() int64         { return m.id }
func (m *Modal) Err() error        { return m.err }

// Value one form value.
func (m *Modal) Value(name string) string { return m.values[name] }

// Values a copy of the form values.
func (m *Modal) Values() map[string]string { return maps.Clone(m.values) }

// Submitter the two API calls a form can end in.
type Submitter interface {
	Create(ctx context.Context, payload map[string]any) error
	Update(ctx context.Context, id int64, payload map[string]any) error
}

// Submit builds the payload from values, then updates when the form edits a
// record and creates otherwise. On success the form closes and refresh runs;
// on failure the form stays open with the error.
func Submit(ctx context.Context, m *Modal, fields []Field, values map[string]string, s Submitter, refresh func(context.Context) error) error {
	if err := m.Begin(); err != nil {
		return err
	}
	m.Set(values)

	payload, err := BuildPayload(fields, values)
	if err != nil {
		m.Fail(err)
		return err
	}

	if m.Editing() {
		err = s.Update(ctx, m.id, payload)
	} else {
		err = s.Create(ctx, payload)
	}
	if err != nil {
		m.Fail(err)
		return err
	}

	m.Succeed()
	if refresh != nil {
		if err := refresh(ctx); err != nil {
			return fmt.Errorf("refresh after submit: %w", err)
		}
	}
	return nil
}
