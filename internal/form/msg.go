// Package form implements the interactive contact form: a table of contacts
// beside name, phone and email inputs, with a status line standing in for
// message dialogs.
package form

import "github.com/smileynet/contacts/internal/contact"

// Mode represents the current form view mode.
type Mode int

const (
	ModeForm Mode = iota // Table and input fields.
	ModeList             // Read-only listing of every contact.
)

// Focus represents which widget has keyboard focus.
type Focus int

const (
	FocusTable Focus = iota // Contact table has focus.
	FocusName               // Name input has focus.
	FocusPhone              // Phone input has focus.
	FocusEmail              // Email input has focus.
)

// focusCount is the number of focusable widgets, for tab cycling.
const focusCount = 4

// State is the selection state of the form.
type State int

const (
	StateIdle    State = iota // No row selected; fields hold a pending new contact.
	StateEditing              // A row is selected; fields started from its values.
)

func (s State) String() string {
	if s == StateEditing {
		return "editing"
	}
	return "idle"
}

// ContactBook is the contact store the form edits. Rows are zero-based.
type ContactBook interface {
	Add(name, phone, email string) error
	Update(index int, name, phone, email string) error
	Remove(index int) error
	Get(index int) (contact.Contact, error)
	List() []contact.Contact
}

// Status line texts.
const (
	msgFillAllFields   = "Please fill in all fields."
	msgSelectToEdit    = "Please select a contact to edit."
	msgFieldsRequired  = "All fields are required to edit."
	msgSelectToDelete  = "Please select a contact to delete."
	msgNoContacts      = "No contacts to display."
	msgAdded           = "Contact added."
	msgUpdated         = "Contact updated."
	msgDeleted         = "Contact deleted."
	msgSaveErrorPrefix = "Error saving contacts: "
	msgLoadErrorPrefix = "Error loading contacts: "
)
