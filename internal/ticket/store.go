package ticket

// Store is the sequential ticket collection. It has no locking of its own:
// exactly one goroutine may use a given Store.
type Store struct {
	tickets map[ID]Ticket
	counter uint64
}

func NewStore() *Store {
	return &Store{tickets: make(map[ID]Ticket)}
}

// Add assigns the next id and stores a new ToDo ticket built from draft.
func (s *Store) Add(draft Draft) ID {
	id := ID(s.counter)
	s.counter++
	s.tickets[id] = Ticket{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Status:      ToDo,
	}
	return id
}

// Get returns a copy of the ticket with the given id.
func (s *Store) Get(id ID) (Ticket, bool) {
	t, ok := s.tickets[id]
	return t, ok
}

// Patch applies p to the addressed ticket and reports whether it existed.
func (s *Store) Patch(p Patch) bool {
	t, ok := s.tickets[p.ID]
	if !ok {
		return false
	}
	p.Apply(&t)
	s.tickets[p.ID] = t
	return true
}

func (s *Store) Len() int { return len(s.tickets) }
