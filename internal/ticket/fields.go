package ticket

import (
	"encoding/json"
	"fmt"
)

const (
	MaxTitleBytes       = 50
	MaxDescriptionBytes = 500
)

// Title is a validated, non-empty ticket title of at most MaxTitleBytes bytes.
// The zero value is not a valid title; use NewTitle or decode from JSON.
type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	if s == "" {
		return Title{}, fmt.Errorf("%w: the title cannot be empty", ErrInvalidTitle)
	}
	if len(s) > MaxTitleBytes {
		return Title{}, fmt.Errorf("%w: the title cannot be longer than %d bytes", ErrInvalidTitle, MaxTitleBytes)
	}
	return Title{value: s}, nil
}

// MustTitle is NewTitle for literals known to be valid.
func MustTitle(s string) Title {
	t, err := NewTitle(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Title) String() string { return t.value }
func (t Title) IsZero() bool   { return t.value == "" }

func (t Title) MarshalJSON() ([]byte, error) { return json.Marshal(t.value) }

func (t *Title) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTitle, err)
	}
	v, err := NewTitle(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Description is a validated, non-empty ticket description of at most
// MaxDescriptionBytes bytes.
type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	if s == "" {
		return Description{}, fmt.Errorf("%w: the description cannot be empty", ErrInvalidDescription)
	}
	if len(s) > MaxDescriptionBytes {
		return Description{}, fmt.Errorf("%w: the description cannot be longer than %d bytes", ErrInvalidDescription, MaxDescriptionBytes)
	}
	return Description{value: s}, nil
}

func MustDescription(s string) Description {
	d, err := NewDescription(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Description) String() string { return d.value }
func (d Description) IsZero() bool   { return d.value == "" }

func (d Description) MarshalJSON() ([]byte, error) { return json.Marshal(d.value) }

func (d *Description) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	v, err := NewDescription(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
