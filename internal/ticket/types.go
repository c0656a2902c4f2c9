package ticket

import (
	"fmt"
	"strconv"
)

// ID identifies a ticket within a single store. IDs are assigned from 0 in
// creation order and never reused.
type ID uint64

func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

type Status int

const (
	ToDo Status = iota
	InProgress
	Done
)

var statusNames = [...]string{
	ToDo:       "ToDo",
	InProgress: "InProgress",
	Done:       "Done",
}

func ParseStatus(s string) (Status, error) {
	for i, name := range statusNames {
		if name == s {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s Status) Valid() bool { return s >= ToDo && s <= Done }

func (s Status) String() string {
	if !s.Valid() {
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
	return statusNames[s]
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Draft is the input to ticket creation. It carries neither id nor status.
type Draft struct {
	Title       Title       `json:"title"`
	Description Description `json:"description"`
}

// Validate reports whether both fields were set. Fields decoded from JSON
// are validated on decode, so this only catches missing values.
func (d Draft) Validate() error {
	if d.Title.IsZero() {
		return fmt.Errorf("%w: the title cannot be empty", ErrInvalidTitle)
	}
	if d.Description.IsZero() {
		return fmt.Errorf("%w: the description cannot be empty", ErrInvalidDescription)
	}
	return nil
}

type Ticket struct {
	ID          ID          `json:"id"`
	Title       Title       `json:"title"`
	Description Description `json:"description"`
	Status      Status      `json:"status"`
}

// Patch is a partial update addressed by ID. Nil fields leave the
// corresponding ticket field untouched.
type Patch struct {
	ID          ID           `json:"id"`
	Title       *Title       `json:"title"`
	Description *Description `json:"description"`
	Status      *Status      `json:"status"`
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// Apply copies the present fields of p onto t. The id of t is never changed.
func (p Patch) Apply(t *Ticket) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}
