package numerics

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/numerics/math"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("guess session not found")

// GuessSession is an interactive binary search driven by a remote caller
// acting as the oracle.
type GuessSession struct {
	sync.Mutex
	Id     string
	N      int64
	search *math.BinarySearch
}

// SessionStore keeps guess sessions until they sit idle for longer than ttl.
type SessionStore struct {
	sessions *cache.Cache
	ttl      time.Duration
}

// NewSessionStore creates a store whose expired sessions are swept every cleanup interval.
func NewSessionStore(ttl, cleanup time.Duration) *SessionStore {
	c := cache.New(ttl, cleanup)
	c.OnEvicted(func(string, interface{}) {
		activeGuessSessions.Dec()
	})
	return &SessionStore{sessions: c, ttl: ttl}
}

// Create starts a new session searching [1, n].
func (s *SessionStore) Create(n int64) (*GuessSession, error) {
	search, err := math.NewBinarySearch(n)
	if err != nil {
		return nil, err
	}
	sess := &GuessSession{
		Id:     uuid.NewString(),
		N:      n,
		search: search,
	}
	s.sessions.Set(sess.Id, sess, cache.DefaultExpiration)
	activeGuessSessions.Inc()
	return sess, nil
}

// Get returns the session with the given id and refreshes its expiry.
func (s *SessionStore) Get(id string) (*GuessSession, error) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, errors.Wrapf(ErrSessionNotFound, "id=%s", id)
	}
	sess, ok := v.(*GuessSession)
	if !ok {
		return nil, errors.Errorf("unexpected session type %T", v)
	}
	s.sessions.Set(id, sess, cache.DefaultExpiration)
	return sess, nil
}

// Delete drops a session.
func (s *SessionStore) Delete(id string) {
	s.sessions.Delete(id)
}

// Len returns the number of live sessions, expired but unswept ones included.
func (s *SessionStore) Len() int {
	return s.sessions.ItemCount()
}

// Answer feeds the caller's response into the session's search.
func (sess *GuessSession) Answer(response int) (bool, error) {
	sess.Lock()
	defer sess.Unlock()
	return sess.search.Feed(response)
}

func (sess *GuessSession) response() *GuessSessionResponse {
	sess.Lock()
	defer sess.Unlock()
	low, high := sess.search.Bounds()
	return &GuessSessionResponse{
		Id:        sess.Id,
		N:         formatInt(sess.N),
		Candidate: formatInt(sess.search.Candidate()),
		Low:       formatInt(low),
		High:      formatInt(high),
		Calls:     formatInt(int64(sess.search.Calls())),
		Found:     sess.search.Done(),
	}
}
