package wizard

import (
	"context"
	"sync"
)

// Registry hands out at most one wizard session per user. The draft is
// re-fetched from the profile store the first time a user's session is
// requested, so an interrupted wizard resumes where the stored draft left
// off.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	profiles ProfileStore
	media    MediaStore
}

func NewRegistry(profiles ProfileStore, media MediaStore) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		profiles: profiles,
		media:    media,
	}
}

// Get returns the user's active session, creating one seeded from the
// stored profile when none exists yet. A missing profile is not an error;
// it just means first-time onboarding.
func (r *Registry) Get(ctx context.Context, userID string) (*Session, error) {
	r.mu.Lock()
	if sess, ok := r.sessions[userID]; ok {
		r.mu.Unlock()
		return sess, nil
	}
	r.mu.Unlock()

	draft, err := r.profiles.FetchProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if sess, ok := r.sessions[userID]; ok {
		return sess, nil
	}
	sess := NewSession(userID, draft, r.profiles, r.media)
	r.sessions[userID] = sess
	return sess, nil
}

// Drop discards a user's session, forcing the next Get to re-fetch.
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}
