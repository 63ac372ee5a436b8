package rolls

import "fmt"

// Store holds every roll ingested during one run, keyed by identifier.
// It is filled during ingestion and read-only afterwards.
type Store struct {
	byID  map[string]*Roll
	order []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{byID: make(map[string]*Roll)}
}

// Add validates and ingests a roll. A second roll with the same identifier
// always fails with ErrDuplicateRoll, even when the records are identical.
func (s *Store) Add(roll Roll) error {
	if err := roll.Validate(); err != nil {
		return err
	}
	if _, exists := s.byID[roll.ID]; exists {
		return fmt.Errorf("%w: roll %s appears in more than one source record", ErrDuplicateRoll, roll.ID)
	}
	s.byID[roll.ID] = &roll
	s.order = append(s.order, roll.ID)
	return nil
}

// List returns all rolls in first-encountered order.
func (s *Store) List() []*Roll {
	out := make([]*Roll, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Find returns the roll with the given identifier.
func (s *Store) Find(id string) (*Roll, error) {
	roll, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRollNotFound, id)
	}
	return roll, nil
}

// Len returns the number of ingested rolls.
func (s *Store) Len() int {
	return len(s.order)
}
