// Package store holds the current resume snapshot and the operations that
// replace it. Every mutation builds a new snapshot under a single lock and
// swaps it in whole, so readers never observe a partial update and earlier
// snapshots never change.
package store

import (
	"sync"

	"resume-builder/internal/logger"
	"resume-builder/internal/model"

	"github.com/rs/zerolog"
)

// Listener is called with the new snapshot after mutations. Deliveries are
// serialized and never go backwards: when mutations race, intermediate
// snapshots may be skipped but the last one delivered is always the current one.
type Listener func(model.Snapshot)

type Store struct {
	mu        sync.Mutex
	current   model.Snapshot
	version   uint64
	listeners map[int]Listener
	nextID    int

	// guards the delivery loop below
	notifyMu   sync.Mutex
	delivering bool
	dirty      bool
	delivered  uint64

	log zerolog.Logger
}

func New() *Store {
	return &Store{
		current:   model.Snapshot{}.Clone(),
		listeners: map[int]Listener{},
		log:       logger.Component("store"),
	}
}

// Snapshot returns the current snapshot. The returned value is detached from
// the store's state and safe to keep or modify.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// SetPersonalInfo replaces the identity and summary fields. No validation is
// performed here.
func (s *Store) SetPersonalInfo(fullName, email, phone, summary string) {
	s.update("personal", func(next *model.Snapshot) {
		next.FullName = fullName
		next.Email = email
		next.Phone = phone
		next.Summary = summary
	})
}

func (s *Store) AddEducation(e model.EducationEntry) {
	s.update("education", func(next *model.Snapshot) {
		next.Education = append(next.Education, e)
	})
}

func (s *Store) AddExperience(e model.ExperienceEntry) {
	s.update("experience", func(next *model.Snapshot) {
		next.Experience = append(next.Experience, e)
	})
}

// AddSkill appends skill; duplicates are kept.
func (s *Store) AddSkill(skill string) {
	s.update("skills", func(next *model.Snapshot) {
		next.Skills = append(next.Skills, skill)
	})
}

// Replace swaps in snap as the current snapshot, used when importing a
// previously exported resume.
func (s *Store) Replace(snap model.Snapshot) {
	s.update("import", func(next *model.Snapshot) {
		*next = snap.Clone()
	})
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) update(op string, mutate func(*model.Snapshot)) {
	s.mu.Lock()
	next := s.current.Clone()
	mutate(&next)
	s.current = next
	s.version++
	s.mu.Unlock()

	s.log.Debug().
		Str("op", op).
		Int("education", len(next.Education)).
		Int("experience", len(next.Experience)).
		Int("skills", len(next.Skills)).
		Msg("snapshot replaced")

	s.notify()
}

// notify delivers the latest snapshot to listeners. Only one goroutine runs
// the loop at a time; a mutation that lands while it is running marks the
// store dirty and the running loop picks the newer snapshot up before exiting.
// Listeners run without mu held so they may read or mutate the store.
func (s *Store) notify() {
	s.notifyMu.Lock()
	if s.delivering {
		s.dirty = true
		s.notifyMu.Unlock()
		return
	}
	s.delivering = true
	s.notifyMu.Unlock()

	for {
		s.mu.Lock()
		snap, version := s.current, s.version
		listeners := make([]Listener, 0, len(s.listeners))
		for _, fn := range s.listeners {
			listeners = append(listeners, fn)
		}
		s.mu.Unlock()

		if version > s.delivered {
			for _, fn := range listeners {
				fn(snap.Clone())
			}
			s.delivered = version
		}

		s.notifyMu.Lock()
		if !s.dirty {
			s.delivering = false
			s.notifyMu.Unlock()
			return
		}
		s.dirty = false
		s.notifyMu.Unlock()
	}
}
