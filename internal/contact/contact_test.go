package contact

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew_TrimsFields(t *testing.T) {
	// Given field text with surrounding whitespace
	// When New is called
	c, err := New("  Alice ", "\t555-1000", "a@x.com  ")

	// Then the fields are trimmed
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	want := Contact{Name: "Alice", Phone: "555-1000", Email: "a@x.com"}
	if c != want {
		t.Errorf("New() = %+v, want %+v", c, want)
	}
}

func TestNew_EmptyField(t *testing.T) {
	tests := []struct {
		name      string
		fields    [3]string
		wantField string
	}{
		{name: "empty name", fields: [3]string{"", "555", "a@x.com"}, wantField: "name"},
		{name: "blank phone", fields: [3]string{"Alice", "   ", "a@x.com"}, wantField: "phone"},
		{name: "empty email", fields: [3]string{"Alice", "555", ""}, wantField: "email"},
		{name: "all empty", fields: [3]string{"", "", ""}, wantField: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.fields[0], tt.fields[1], tt.fields[2])
			if !errors.Is(err, ErrEmptyField) {
				t.Fatalf("New() error = %v, want ErrEmptyField", err)
			}
			if !strings.HasSuffix(err.Error(), tt.wantField) {
				t.Errorf("error %q should name field %q", err, tt.wantField)
			}
			if c != (Contact{}) {
				t.Errorf("New() = %+v, want zero value on error", c)
			}
		})
	}
}

func TestContact_String(t *testing.T) {
	c := Contact{Name: "Alice", Phone: "555-1000", Email: "a@x.com"}

	got := c.String()

	want := "Name: Alice, Phone: 555-1000, Email: a@x.com"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFormatList(t *testing.T) {
	tests := []struct {
		name     string
		contacts []Contact
		want     string
	}{
		{name: "empty", contacts: nil, want: ""},
		{
			name: "numbered from one",
			contacts: []Contact{
				{Name: "Alice", Phone: "555-1000", Email: "a@x.com"},
				{Name: "Bob", Phone: "555-2000", Email: "b@x.com"},
			},
			want: "1. Name: Alice, Phone: 555-1000, Email: a@x.com\n" +
				"2. Name: Bob, Phone: 555-2000, Email: b@x.com\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatList(tt.contacts); got != tt.want {
				t.Errorf("FormatList() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "empty field", err: fmt.Errorf("%w: name", ErrEmptyField), want: true},
		{name: "no selection", err: ErrNoSelection, want: true},
		{name: "wrapped no selection", err: fmt.Errorf("book: %w", ErrNoSelection), want: true},
		{name: "io error", err: errors.New("permission denied"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.want {
				t.Errorf("IsValidation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
