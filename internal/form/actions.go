package form

import (
	"errors"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contacts/internal/book"
	"github.com/smileynet/contacts/internal/contact"
)

// add appends the field values as a new contact.
func (m *Model) add() {
	name, phone, email := m.Fields()
	err := m.book.Add(name, phone, email)
	if contact.IsValidation(err) {
		m.setError(msgFillAllFields)
		return
	}
	m.finish(err, msgAdded)
}

// update overwrites the selected row with the field values.
func (m *Model) update() {
	if m.selected < 0 {
		m.setError(msgSelectToEdit)
		return
	}
	name, phone, email := m.Fields()
	err := m.book.Update(m.selected, name, phone, email)
	switch {
	case errors.Is(err, contact.ErrNoSelection):
		m.selected = -1
		m.setError(msgSelectToEdit)
		return
	case errors.Is(err, contact.ErrEmptyField):
		m.setError(msgFieldsRequired)
		return
	}
	m.finish(err, msgUpdated)
}

// remove deletes the selected row.
func (m *Model) remove() {
	if m.selected < 0 {
		m.setError(msgSelectToDelete)
		return
	}
	err := m.book.Remove(m.selected)
	if errors.Is(err, contact.ErrNoSelection) {
		m.selected = -1
		m.setError(msgSelectToDelete)
		return
	}
	m.finish(err, msgDeleted)
}

// submit adds when idle and updates when editing.
func (m *Model) submit() {
	if m.selected >= 0 {
		m.update()
		return
	}
	m.add()
}

// finish completes a mutation that passed validation. A save failure is
// reported but the mutation stands, so the form still resets to idle.
func (m *Model) finish(err error, okMsg string) {
	if err != nil {
		m.log.Warn("mutation not persisted", "error", err)
		m.setError(msgSaveErrorPrefix + saveCause(err).Error())
	} else {
		m.setInfo(okMsg)
	}
	m.refreshRows()
	m.resetFields()
}

// selectRow loads the row under the table cursor into the fields and
// moves focus to the name input.
func (m *Model) selectRow() tea.Cmd {
	idx := m.table.Cursor()
	c, err := m.book.Get(idx)
	if err != nil {
		return nil
	}
	m.selected = idx
	m.inputs[0].SetValue(c.Name)
	m.inputs[1].SetValue(c.Phone)
	m.inputs[2].SetValue(c.Email)
	m.setInfo("")
	return m.setFocus(FocusName)
}

// clear empties the fields and drops the selection.
func (m *Model) clear() {
	m.resetFields()
	m.setInfo("")
}

// viewAll switches to the read-only listing, or reports an empty book.
func (m *Model) viewAll() {
	if len(m.book.List()) == 0 {
		m.setInfo(msgNoContacts)
		return
	}
	m.mode = ModeList
}

// viewListing renders the read-only listing body.
func (m Model) viewListing() string {
	return titleText.Render("Contact List") + "\n\n" + contact.FormatList(m.book.List())
}

// resetFields clears all inputs and returns to idle.
func (m *Model) resetFields() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.selected = -1
}

// refreshRows copies the book into the table, keeping the cursor in range.
func (m *Model) refreshRows() {
	contacts := m.book.List()
	rows := make([]table.Row, len(contacts))
	for i, c := range contacts {
		rows[i] = table.Row{c.Name, c.Phone, c.Email}
	}
	m.table.SetRows(rows)
	if n := len(rows); n > 0 && m.table.Cursor() >= n {
		m.table.SetCursor(n - 1)
	}
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) setInfo(msg string) {
	m.status = msg
	m.statusErr = false
}

// saveCause unwraps a book.SaveError to the underlying I/O error.
func saveCause(err error) error {
	var se *book.SaveError
	if errors.As(err, &se) {
		return se.Err
	}
	return err
}

// columns returns the table columns for the given inner width.
func columns(inner int) []table.Column {
	w := columnWidths(inner)
	return []table.Column{
		{Title: "Name", Width: w[0]},
		{Title: "Phone", Width: w[1]},
		{Title: "Email", Width: w[2]},
	}
}
