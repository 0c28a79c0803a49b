// Package ledger owns the expense collection and the add/edit cursor. It is
// the only writer of the persistence slot.
package ledger

import (
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/pipeline"
	"github.com/theirongolddev/tally/internal/store"
)

// Slot is a single durable location holding the serialized collection.
// Load reports false when nothing has been saved yet.
type Slot interface {
	Load() ([]byte, bool, error)
	Save(data []byte) error
}

// Outcome tells the caller which branch a successful Commit took.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeAdded
	OutcomeUpdated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeUpdated:
		return "updated"
	default:
		return "none"
	}
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes store diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Store holds the ordered collection and the edit cursor. It is not safe for
// concurrent use; callers serialize access.
type Store struct {
	slot       Slot
	log        *log.Logger
	categories []string

	entries []model.Entry
	nextID  uint64
	editing uint64 // entry ID under edit, 0 when adding
	summary model.Summary
	dirty   bool
}

// New restores the collection from slot. An absent slot or a payload that
// does not decode yields an empty collection; records that fail validation
// are dropped. Only a failing slot read is returned as an error.
func New(slot Slot, opts ...Option) (*Store, error) {
	s := &Store{
		slot:       slot,
		log:        log.New(io.Discard),
		categories: model.Categories,
		nextID:     1,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, ok, err := slot.Load()
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	if ok {
		s.restore(data)
	}
	s.recompute()
	return s, nil
}

func (s *Store) restore(data []byte) {
	expenses, skipped, err := store.DecodeExpenses(data)
	if err != nil {
		s.log.Warn("discarding unreadable expense data", "err", err)
		return
	}

	for i, e := range expenses {
		clean, verr := Validate(e.Description, e.Amount, e.Category)
		if verr != nil {
			skipped++
			s.log.Warn("dropping invalid expense", "index", i, "err", verr)
			continue
		}
		s.append(clean)
	}
	if skipped > 0 {
		s.log.Warn("restored expenses with errors", "kept", len(s.entries), "dropped", skipped)
	} else {
		s.log.Debug("restored expenses", "count", len(s.entries))
	}
}

// BeginEdit points the cursor at index and returns the expense there for
// pre-filling a form. Calling it while already editing retargets the cursor.
func (s *Store) BeginEdit(index int) (model.Expense, error) {
	if index < 0 || index >= len(s.entries) {
		return model.Expense{}, indexError(index, len(s.entries))
	}
	s.editing = s.entries[index].ID
	s.log.Debug("begin edit", "index", index, "id", s.editing)
	return s.entries[index].Expense, nil
}

// CancelEdit returns the store to adding mode without mutating anything.
func (s *Store) CancelEdit() {
	s.editing = 0
}

// Editing returns the current position of the entry under edit.
func (s *Store) Editing() (int, bool) {
	if s.editing == 0 {
		return 0, false
	}
	pos := s.position(s.editing)
	return pos, pos >= 0
}

// Commit validates the input and then either replaces the entry under edit
// (clearing the cursor) or appends a new entry. The full collection is
// saved afterwards. A save failure is returned as a *PersistenceError, but
// the mutation stays applied and the store remains dirty.
func (s *Store) Commit(description string, amount float64, category string) (Outcome, error) {
	e, err := Validate(description, amount, category)
	if err != nil {
		return OutcomeNone, err
	}

	outcome := OutcomeAdded
	if pos, ok := s.Editing(); ok {
		s.entries[pos].Expense = e
		s.editing = 0
		outcome = OutcomeUpdated
		s.log.Debug("updated expense", "index", pos, "description", e.Description)
	} else {
		s.editing = 0
		s.append(e)
		s.log.Debug("added expense", "index", len(s.entries)-1, "description", e.Description)
	}

	s.dirty = true
	err = s.persist()
	s.recompute()
	return outcome, err
}

// Remove deletes the entry at index; later entries shift left by one. If
// the removed entry was under edit the cursor is cleared, otherwise the
// cursor keeps following the same entry.
func (s *Store) Remove(index int) error {
	if index < 0 || index >= len(s.entries) {
		return indexError(index, len(s.entries))
	}

	removed := s.entries[index]
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	if removed.ID == s.editing {
		s.editing = 0
	}
	s.log.Debug("removed expense", "index", index, "description", removed.Description)

	s.dirty = true
	err := s.persist()
	s.recompute()
	return err
}

// Flush retries the save of a dirty store. It is a no-op when the last save
// succeeded.
func (s *Store) Flush() error {
	if !s.dirty {
		return nil
	}
	return s.persist()
}

// Dirty reports whether in-memory state has not reached the slot.
func (s *Store) Dirty() bool { return s.dirty }

// List returns a copy of the collection in insertion order.
func (s *Store) List() []model.Expense {
	out := make([]model.Expense, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Expense
	}
	return out
}

// Entries returns a copy of the collection with entry IDs.
func (s *Store) Entries() []model.Entry {
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// Categories returns the category set in use.
func (s *Store) Categories() []string { return s.categories }

// Summary returns the aggregation computed after the last mutation.
func (s *Store) Summary() model.Summary { return s.summary }

// Validate applies the rules Commit enforces without touching any store.
// The description is trimmed; the amount must be finite and positive; the
// category must be a member of model.Categories.
func Validate(description string, amount float64, category string) (model.Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return model.Expense{}, &ValidationError{Field: "description", Err: ErrEmptyDescription}
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return model.Expense{}, &ValidationError{Field: "amount", Err: ErrInvalidAmount}
	}
	if !model.IsCategory(category) {
		return model.Expense{}, &ValidationError{Field: "category", Err: ErrUnknownCategory}
	}
	return model.Expense{Description: description, Amount: amount, Category: category}, nil
}

func (s *Store) append(e model.Expense) {
	s.entries = append(s.entries, model.Entry{ID: s.nextID, Expense: e})
	s.nextID++
}

func (s *Store) position(id uint64) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist() error {
	data, err := store.EncodeExpenses(s.List())
	if err != nil {
		s.log.Error("encoding expenses", "err", err)
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := s.slot.Save(data); err != nil {
		s.log.Error("saving expenses", "err", err, "count", len(s.entries))
		return &PersistenceError{Op: "save", Err: err}
	}
	s.dirty = false
	return nil
}

func (s *Store) recompute() {
	s.summary = pipeline.AggregateByCategory(s.List(), s.categories)
}
