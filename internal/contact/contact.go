// Package contact defines the contact record and its field validation.
package contact

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors. Both are recoverable: the triggering action is aborted
// and the store is left unchanged.
var (
	// ErrEmptyField indicates a required field is empty after trimming.
	ErrEmptyField = errors.New("contact: empty field")
	// ErrNoSelection indicates a row index outside the current list.
	ErrNoSelection = errors.New("contact: no row selected")
)

// Contact is a single record. It has no identifier; identity is its
// position in the ordered list.
type Contact struct {
	Name  string
	Phone string
	Email string
}

// New builds a Contact from raw field text, trimming surrounding whitespace.
// Returns ErrEmptyField naming the first empty field.
func New(name, phone, email string) (Contact, error) {
	c := Contact{
		Name:  strings.TrimSpace(name),
		Phone: strings.TrimSpace(phone),
		Email: strings.TrimSpace(email),
	}
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}
	return c, nil
}

// Validate reports ErrEmptyField if any field is blank.
func (c Contact) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: name", ErrEmptyField)
	case strings.TrimSpace(c.Phone) == "":
		return fmt.Errorf("%w: phone", ErrEmptyField)
	case strings.TrimSpace(c.Email) == "":
		return fmt.Errorf("%w: email", ErrEmptyField)
	}
	return nil
}

// String renders the contact as a single listing line.
func (c Contact) String() string {
	return fmt.Sprintf("Name: %s, Phone: %s, Email: %s", c.Name, c.Phone, c.Email)
}

// FormatList renders contacts one per line, numbered from 1 so the numbers
// can be passed back as row arguments.
func FormatList(contacts []Contact) string {
	var b strings.Builder
	for i, c := range contacts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}
	return b.String()
}

// IsValidation reports whether err is a validation error (empty field or
// missing selection) as opposed to an I/O failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyField) || errors.Is(err, ErrNoSelection)
}
