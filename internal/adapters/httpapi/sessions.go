package httpapi

import (
	"sync"

	"github.com/google/uuid"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// session is one browser form. It lives until deleted, until its last status
// stream disconnects, or until the server stops.
type session struct {
	id   string
	form *usecase.FormController

	mu          sync.Mutex
	subscribers map[chan string]struct{}
}

func newSession(form *usecase.FormController) *session {
	s := &session{
		id:          uuid.New().String(),
		form:        form,
		subscribers: make(map[chan string]struct{}),
	}
	form.OnStatus(s.publish)
	return s
}

// subscribe registers a buffered channel receiving status updates
func (s *session) subscribe() chan string {
	ch := make(chan string, 16)
	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

// unsubscribe removes ch and returns the number of subscribers left
func (s *session) unsubscribe(ch chan string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subscribers[ch]; ok {
		delete(s.subscribers, ch)
		close(ch)
	}
	return len(s.subscribers)
}

// publish fans a status out to subscribers, dropping it for subscribers that are behind
func (s *session) publish(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- text:
		default:
		}
	}
}

func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
}

// sessionStore holds live sessions by id
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

func (st *sessionStore) add(s *session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.id] = s
}

func (st *sessionStore) get(id string) (*session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *sessionStore) remove(id string) bool {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if ok {
		s.close()
	}
	return ok
}

func (st *sessionStore) closeAll() {
	st.mu.Lock()
	sessions := st.sessions
	st.sessions = make(map[string]*session)
	st.mu.Unlock()
	for _, s := range sessions {
		s.close()
	}
}
