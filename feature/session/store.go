package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"garment-geek/core/catalog"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session IDs.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNotInResults is returned when choosing a product the session's last search did not return.
	ErrNotInResults = errors.New("product is not in the last search results")
	// ErrNoChoice is returned when a session has no chosen garment.
	ErrNoChoice = errors.New("no garment chosen")
)

// Header carries the session ID on HTTP requests.
const Header = "X-Session-ID"

// Session is a snapshot of one shopper's state.
type Session struct {
	ID        string         `json:"session_id"`
	Results   []catalog.Item `json:"results"`
	Choice    *catalog.Item  `json:"choice,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Store holds sessions in memory. Sessions idle for longer than the TTL are
// treated as gone and removed by Sweep. A zero TTL never expires them.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty store.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Store) expired(sess *Session) bool {
	return s.ttl > 0 && s.now().Sub(sess.UpdatedAt) > s.ttl
}

// lookup must be called with mu held.
func (s *Store) lookup(id string) (*Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	if s.expired(sess) {
		delete(s.sessions, id)
		return nil, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	return sess, nil
}

func clone(sess *Session) Session {
	out := *sess
	out.Results = make([]catalog.Item, len(sess.Results))
	copy(out.Results, sess.Results)
	if sess.Choice != nil {
		choice := *sess.Choice
		out.Choice = &choice
	}
	return out
}

// Create starts a new empty session.
func (s *Store) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &Session{ID: uuid.NewString(), UpdatedAt: s.now()}
	s.sessions[sess.ID] = sess
	return clone(sess)
}

// Get returns a copy of the session.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(id)
	if err != nil {
		return Session{}, err
	}
	return clone(sess), nil
}

// SetResults replaces the session's results and clears its choice. An empty
// or unknown id starts a new session.
func (s *Store) SetResults(id string, results []catalog.Item) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(id)
	if err != nil {
		sess = &Session{ID: uuid.NewString()}
		s.sessions[sess.ID] = sess
	}
	sess.Results = make([]catalog.Item, len(results))
	copy(sess.Results, results)
	sess.Choice = nil
	sess.UpdatedAt = s.now()
	return clone(sess)
}

// Choose marks the result with the given product code as the session's choice.
func (s *Store) Choose(id string, code catalog.ProductCode) (catalog.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(id)
	if err != nil {
		return catalog.Item{}, err
	}
	for _, item := range sess.Results {
		if item.Code == code {
			choice := item
			sess.Choice = &choice
			sess.UpdatedAt = s.now()
			return item, nil
		}
	}
	return catalog.Item{}, fmt.Errorf("product code %s: %w", code, ErrNotInResults)
}

// Choice returns the session's chosen garment.
func (s *Store) Choice(id string) (catalog.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(id)
	if err != nil {
		return catalog.Item{}, err
	}
	if sess.Choice == nil {
		return catalog.Item{}, ErrNoChoice
	}
	return *sess.Choice, nil
}

// Reset clears the session's results and choice, ready for a new search.
func (s *Store) Reset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	sess.Results = nil
	sess.Choice = nil
	sess.UpdatedAt = s.now()
	return nil
}

// Delete removes the session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Sweep removes expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of sessions held, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
