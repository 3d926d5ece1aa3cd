package domain

import (
	"errors"
	"slices"
	"sync"
)

// ErrIndexOutOfRange is returned when a row index does not exist
var ErrIndexOutOfRange = errors.New("index out of range")

// Stats partitions the store by record status.
// Found + NotFound + Error always equals the number of records.
type Stats struct {
	Found    int `json:"found"`
	NotFound int `json:"not_found"`
	Error    int `json:"error"`
}

// Total returns the number of records counted
func (s Stats) Total() int {
	return s.Found + s.NotFound + s.Error
}

// ComputeStats scans records and counts each status
func ComputeStats(records []Record) Stats {
	var s Stats
	for _, r := range records {
		switch r.Status() {
		case StatusNotFound:
			s.NotFound++
		case StatusError:
			s.Error++
		default:
			s.Found++
		}
	}
	return s
}

// Store is the ordered table of records backing every view.
// Rows are only removed by a full Replace.
type Store struct {
	mu       sync.RWMutex
	records  []Record
	onChange func()
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// OnChange registers a hook run after every mutation, outside the lock
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Store) changed() {
	s.mu.RLock()
	fn := s.onChange
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// Replace discards the current rows and installs records
func (s *Store) Replace(records []Record) {
	next := make([]Record, len(records))
	copy(next, records)
	for i := range next {
		next[i].Normalize()
	}

	s.mu.Lock()
	s.records = next
	s.mu.Unlock()
	s.changed()
}

// Append adds a record at the end of the table
func (s *Store) Append(r Record) {
	r.Normalize()
	s.mu.Lock()
	s.records = append(s.records, r)
	s.mu.Unlock()
	s.changed()
}

// Prepend adds a record at the top of the table
func (s *Store) Prepend(r Record) {
	r.Normalize()
	s.mu.Lock()
	s.records = slices.Insert(s.records, 0, r)
	s.mu.Unlock()
	s.changed()
}

// UpdateAt mutates the record at index in place. The mutator cannot
// change the record's identity.
func (s *Store) UpdateAt(index int, fn func(*Record)) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.records) {
		s.mu.Unlock()
		return ErrIndexOutOfRange
	}
	r := &s.records[index]
	input := r.Input
	fn(r)
	r.Input = input
	r.Sector = NormalizeSector(r.Sector)
	s.mu.Unlock()
	s.changed()
	return nil
}

// At returns a copy of the record at index
func (s *Store) At(index int) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.records) {
		return Record{}, ErrIndexOutOfRange
	}
	return s.records[index], nil
}

// Len returns the number of rows
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Records returns a snapshot of the table
func (s *Store) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// Stats recomputes the status counters over the whole table
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeStats(s.records)
}
