// Package dashboard holds the application state behind the amendment
// tracking UI: the in-memory amendment collection, its derived summary
// statistics, and the modal/scroll-lock bookkeeping.
package dashboard

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/seamlessgov/govdash/internal/model"
)

// ErrEmptyName is returned when creating an amendment without a name.
var ErrEmptyName = errors.New("amendment name required")

// Input carries the amendment form fields. Sentiment and feedback counts
// are never entered by the user; Create synthesizes them.
type Input struct {
	Name         string
	Description  string
	Status       string
	TimelineDays int
}

// Store is the ordered, in-memory amendment collection. All mutations go
// through the store; rendering derives everything from List and Stats.
//
// The random source synthesizes placeholder feedback counts on create and
// is injected so tests can seed it deterministically.
type Store struct {
	mu         sync.Mutex
	amendments []model.Amendment
	rng        *rand.Rand
	now        func() time.Time
}

// NewStore creates an empty store.
func NewStore(rng *rand.Rand, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{rng: rng, now: now}
}

// NewSeededStore creates a store preloaded with the sample amendments.
func NewSeededStore(rng *rand.Rand, now func() time.Time) *Store {
	s := NewStore(rng, now)
	s.amendments = seedAmendments()
	return s
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []model.Amendment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Amendment, len(s.amendments))
	copy(out, s.amendments)
	return out
}

// Get returns the amendment with the given id.
func (s *Store) Get(id int) (model.Amendment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.amendments {
		if a.ID == id {
			return a, true
		}
	}
	return model.Amendment{}, false
}

// Create appends a new amendment with a fresh id, today's date, and
// synthesized feedback counts, and returns it.
func (s *Store) Create(in Input) (model.Amendment, error) {
	if in.Name == "" {
		return model.Amendment{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if in.TimelineDays <= 0 {
		in.TimelineDays = model.DefaultTimelineDays
	}

	a := model.Amendment{
		ID:            s.nextID(),
		Name:          in.Name,
		Date:          s.now().Format("2006-01-02"),
		Description:   in.Description,
		Status:        in.Status,
		TimelineDays:  in.TimelineDays,
		TotalFeedback: 100 + s.rng.IntN(500),
		Sentiment: model.Sentiment{
			Positive: 200 + s.rng.IntN(300),
			Negative: 50 + s.rng.IntN(100),
			Neutral:  75 + s.rng.IntN(150),
		},
	}
	s.amendments = append(s.amendments, a)
	return a, nil
}

// Update overwrites the form fields of an existing amendment, preserving
// its date, feedback counts, and sentiment. The form posts every field, so
// an empty description or status means the user cleared it. Returns false
// if the id is unknown.
func (s *Store) Update(id int, in Input) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.amendments {
		if s.amendments[i].ID != id {
			continue
		}
		if in.TimelineDays <= 0 {
			in.TimelineDays = model.DefaultTimelineDays
		}
		s.amendments[i].Name = in.Name
		s.amendments[i].Description = in.Description
		s.amendments[i].Status = in.Status
		s.amendments[i].TimelineDays = in.TimelineDays
		return true
	}
	return false
}

// Delete removes the amendment with the given id. Returns false if the id
// is unknown; the collection is left unchanged in that case.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.amendments {
		if a.ID == id {
			s.amendments = append(s.amendments[:i], s.amendments[i+1:]...)
			return true
		}
	}
	return false
}

// TotalSentiment returns the element-wise sum of all sentiment counts.
func (s *Store) TotalSentiment() model.Sentiment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total model.Sentiment
	for _, a := range s.amendments {
		total = total.Add(a.Sentiment)
	}
	return total
}

// nextID is max(existing ids, 0) + 1. Deleted ids are not reused unless one
// happened to equal the new maximum + 1. Caller holds s.mu.
func (s *Store) nextID() int {
	max := 0
	for _, a := range s.amendments {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}
