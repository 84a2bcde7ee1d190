package shoppinglist

import (
	"errors"

	"github.com/google/uuid"
)

// MaxSelection caps how many recipes a shopper can combine into one list.
const MaxSelection = 4

// ErrSelectionLimit is returned by TryAdd when the selection is full.
var ErrSelectionLimit = errors.New("selection limit reached")

// Selection is the bounded set of recipes a shopper has picked for the
// current session. It belongs to a single session and is not safe for
// concurrent use; callers own any synchronization across goroutines.
type Selection struct {
	ids         []uuid.UUID
	subscribers []func([]uuid.UUID)
}

// NewSelection returns an empty selection
func NewSelection() *Selection {
	return &Selection{}
}

// IDs returns a copy of the selected recipe IDs in insertion order.
func (s *Selection) IDs() []uuid.UUID {
	out := make([]uuid.UUID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Count returns the number of selected recipes
func (s *Selection) Count() int {
	return len(s.ids)
}

// Contains reports whether the recipe is already selected
func (s *Selection) Contains(id uuid.UUID) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// TryAdd appends the recipe to the selection. Adding an already selected
// recipe is a no-op; adding beyond MaxSelection returns ErrSelectionLimit
// and leaves the selection unchanged.
func (s *Selection) TryAdd(id uuid.UUID) error {
	if s.Contains(id) {
		return nil
	}
	if len(s.ids) >= MaxSelection {
		return ErrSelectionLimit
	}
	s.ids = append(s.ids, id)
	s.notify()
	return nil
}

// Remove drops the recipe from the selection if present
func (s *Selection) Remove(id uuid.UUID) {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			s.notify()
			return
		}
	}
}

// Clear empties the selection
func (s *Selection) Clear() {
	if len(s.ids) == 0 {
		return
	}
	s.ids = nil
	s.notify()
}

// Subscribe registers a callback invoked with a snapshot of the selection
// after every change.
func (s *Selection) Subscribe(fn func([]uuid.UUID)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Selection) notify() {
	for _, fn := range s.subscribers {
		fn(s.IDs())
	}
}
