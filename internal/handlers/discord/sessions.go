package discord

import (
	"sync"
	"time"

	"github.com/KirkDiggler/alphie/internal/common/clock"
	"github.com/KirkDiggler/alphie/internal/common/uuid"
)

// leaderboardSession holds the view state of one posted leaderboard
// message: which page is shown and whether the global or server scope
// is active
type leaderboardSession struct {
	GuildID   string
	IsGlobal  bool
	Page      int
	CreatedAt time.Time
}

// sessionStore tracks live leaderboard views in memory. Sessions expire
// after a fixed TTL, matching the original message view timeout.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*leaderboardSession
	clock    clock.Clock
	uuid     uuid.UUID
	ttl      time.Duration
}

func newSessionStore(c clock.Clock, u uuid.UUID, ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*leaderboardSession),
		clock:    c,
		uuid:     u,
		ttl:      ttl,
	}
}

// Create registers a new session for a guild and returns its ID and a
// snapshot of the initial state
func (st *sessionStore) Create(guildID string) (string, leaderboardSession) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.purgeLocked()

	id := st.uuid.NewUUID()
	session := &leaderboardSession{
		GuildID:   guildID,
		CreatedAt: st.clock.Now(),
	}
	st.sessions[id] = session

	return id, *session
}

// Get returns a snapshot of the session for an ID, or false when it is
// unknown or has expired
func (st *sessionStore) Get(id string) (leaderboardSession, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.getLocked(id)
	if !ok {
		return leaderboardSession{}, false
	}

	return *session, true
}

// Update applies fn to the session under the store lock and returns a
// snapshot of the result, or false when the session is unknown or has
// expired. Handlers run on separate goroutines, so all view-state
// mutation goes through here.
func (st *sessionStore) Update(id string, fn func(*leaderboardSession)) (leaderboardSession, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.getLocked(id)
	if !ok {
		return leaderboardSession{}, false
	}

	fn(session)

	return *session, true
}

// getLocked looks up a live session; callers must hold the lock
func (st *sessionStore) getLocked(id string) (*leaderboardSession, bool) {
	session, ok := st.sessions[id]
	if !ok {
		return nil, false
	}

	if st.clock.Now().Sub(session.CreatedAt) > st.ttl {
		delete(st.sessions, id)
		return nil, false
	}

	return session, true
}

// purgeLocked drops expired sessions; callers must hold the lock
func (st *sessionStore) purgeLocked() {
	now := st.clock.Now()
	for id, session := range st.sessions {
		if now.Sub(session.CreatedAt) > st.ttl {
			delete(st.sessions, id)
		}
	}
}
