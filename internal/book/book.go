// Package book holds the ordered in-memory contact list and flushes it to
// storage after every successful mutation.
package book

import (
	"fmt"

	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/logging"
)

// Saver persists the full contact list, replacing previous contents.
type Saver interface {
	Save(contacts []contact.Contact) error
}

// SaveError reports a mutation that was applied in memory but could not be
// flushed. The in-memory list is not rolled back.
type SaveError struct {
	Op  string
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving contacts: %v", e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Book is the contact list for the current session. Rows are addressed by
// zero-based index.
type Book struct {
	contacts []contact.Contact
	saver    Saver
	log      *logging.Logger
}

// Option configures a Book.
type Option func(*Book)

// WithLogger sets the logger used for mutation events.
func WithLogger(l *logging.Logger) Option {
	return func(b *Book) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates a Book seeded with initial (typically the result of a load)
// that flushes through saver.
func New(saver Saver, initial []contact.Contact, opts ...Option) *Book {
	b := &Book{
		contacts: append([]contact.Contact(nil), initial...),
		saver:    saver,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add appends a new contact built from the given field text.
func (b *Book) Add(name, phone, email string) error {
	c, err := contact.New(name, phone, email)
	if err != nil {
		return err
	}
	b.contacts = append(b.contacts, c)
	b.log.Info("contact added", "row", len(b.contacts)-1)
	return b.flush("add")
}

// Update overwrites all three fields of the contact at index.
func (b *Book) Update(index int, name, phone, email string) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	c, err := contact.New(name, phone, email)
	if err != nil {
		return err
	}
	b.contacts[index] = c
	b.log.Info("contact updated", "row", index)
	return b.flush("update")
}

// Remove deletes the contact at index, shifting later rows up.
func (b *Book) Remove(index int) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	b.contacts = append(b.contacts[:index], b.contacts[index+1:]...)
	b.log.Info("contact removed", "row", index)
	return b.flush("remove")
}

// Get returns the contact at index.
func (b *Book) Get(index int) (contact.Contact, error) {
	if err := b.checkIndex(index); err != nil {
		return contact.Contact{}, err
	}
	return b.contacts[index], nil
}

// List returns a copy of the contacts in order.
func (b *Book) List() []contact.Contact {
	return append([]contact.Contact{}, b.contacts...)
}

// Len returns the number of contacts.
func (b *Book) Len() int {
	return len(b.contacts)
}

func (b *Book) checkIndex(index int) error {
	if index < 0 || index >= len(b.contacts) {
		return fmt.Errorf("%w: index %d, have %d", contact.ErrNoSelection, index, len(b.contacts))
	}
	return nil
}

func (b *Book) flush(op string) error {
	if err := b.saver.Save(b.List()); err != nil {
		b.log.Error("flush failed", "op", op, "error", err)
		return &SaveError{Op: op, Err: err}
	}
	return nil
}
