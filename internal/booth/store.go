package booth

import (
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned for operations on an id with no live entity.
var ErrNotFound = errors.New("photo not found")

// EventType classifies a store notification.
type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventRaised  EventType = "raised"
	EventDeleted EventType = "deleted"
)

// Event is delivered to subscribers after every store mutation. Photo is a
// snapshot taken under the store lock. Seq is assigned under the same lock
// and strictly increases, so consumers can re-order broadcasts that arrive
// late.
type Event struct {
	Seq   int64     `json:"seq"`
	Type  EventType `json:"event"`
	Photo Photo     `json:"photo"`
}

// Listener receives store events. Listeners are called synchronously after
// the mutation completes, outside the store lock.
type Listener func(Event)

// Store is the in-memory entity store for one photobooth session. It owns
// the stacking-order counter and notifies subscribers on every mutation.
type Store struct {
	mu        sync.RWMutex
	photos    map[string]*Photo
	topZ      int
	seq       int64
	listeners []Listener
}

func NewStore() *Store {
	return &Store{photos: make(map[string]*Photo)}
}

// Subscribe registers a listener for all future events.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// event stamps the next sequence number. Caller must hold s.mu.
func (s *Store) event(t EventType, p *Photo) Event {
	s.seq++
	return Event{Seq: s.seq, Type: t, Photo: *p}
}

func (s *Store) notify(ev Event) {
	s.mu.RLock()
	fns := make([]Listener, len(s.listeners))
	copy(fns, s.listeners)
	s.mu.RUnlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// Add inserts a new entity and assigns it the next stacking index, placing
// it on top of everything already on the canvas.
func (s *Store) Add(p *Photo) Photo {
	s.mu.Lock()
	s.topZ++
	p.ZIndex = s.topZ
	s.photos[p.ID] = p
	ev := s.event(EventCreated, p)
	s.mu.Unlock()
	s.notify(ev)
	return ev.Photo
}

// Get returns a snapshot of one entity.
func (s *Store) Get(id string) (Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.photos[id]
	if !ok {
		return Photo{}, ErrNotFound
	}
	return *p, nil
}

// List returns snapshots of all entities sorted back-to-front.
func (s *Store) List() []Photo {
	s.mu.RLock()
	out := make([]Photo, 0, len(s.photos))
	for _, p := range s.photos {
		out = append(out, *p)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}

// Len reports the number of live entities.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.photos)
}

// SetPlacement writes position, rotation and scale in one step. Scale is
// clamped; identity and image payload are untouched.
func (s *Store) SetPlacement(id string, x, y, rotation, scale float64) (Photo, error) {
	s.mu.Lock()
	p, ok := s.photos[id]
	if !ok {
		s.mu.Unlock()
		return Photo{}, ErrNotFound
	}
	p.PosX = x
	p.PosY = y
	p.Rotation = rotation
	p.Scale = ClampScale(scale)
	ev := s.event(EventUpdated, p)
	s.mu.Unlock()
	s.notify(ev)
	return ev.Photo, nil
}

// SetDetails updates the mutable non-placement fields. Nil means keep.
func (s *Store) SetDetails(id string, name, style *string) (Photo, error) {
	s.mu.Lock()
	p, ok := s.photos[id]
	if !ok {
		s.mu.Unlock()
		return Photo{}, ErrNotFound
	}
	if name != nil {
		p.Name = *name
	}
	if style != nil {
		p.Style = *style
	}
	ev := s.event(EventUpdated, p)
	s.mu.Unlock()
	s.notify(ev)
	return ev.Photo, nil
}

// Raise moves the entity to the top of the stacking order. The assigned
// index is strictly greater than every index handed out before.
func (s *Store) Raise(id string) (Photo, error) {
	s.mu.Lock()
	p, ok := s.photos[id]
	if !ok {
		s.mu.Unlock()
		return Photo{}, ErrNotFound
	}
	s.topZ++
	p.ZIndex = s.topZ
	ev := s.event(EventRaised, p)
	s.mu.Unlock()
	s.notify(ev)
	return ev.Photo, nil
}

// Delete removes the entity.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	p, ok := s.photos[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	delete(s.photos, id)
	ev := s.event(EventDeleted, p)
	s.mu.Unlock()
	s.notify(ev)
	return nil
}
