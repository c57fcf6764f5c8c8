package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"

	"github.com/pharmxd-server/internal/domain"
)

// Session holds one uploaded sample's derived data for the lifetime of an
// interactive consultation. Raw file text is never retained; only the
// extracted panel subset and the calls derived from it live here, and they
// evaporate on TTL expiry or eviction.
type Session struct {
	ID         string                   `json:"id"`
	CreatedAt  time.Time                `json:"created_at"`
	Format     domain.FormatTag         `json:"detected_format"`
	Extraction *domain.ExtractionResult `json:"extraction"`
	Profile    domain.GeneProfile       `json:"profile"`
}

// SessionManager stores sessions in a bounded, TTL-expiring in-memory cache.
// Eviction of the oldest session under memory pressure is acceptable: a
// client can always re-upload.
type SessionManager struct {
	logger *logrus.Logger
	cache  *expirable.LRU[string, *Session]
}

// NewSessionManager creates a session store with the given capacity and TTL.
func NewSessionManager(logger *logrus.Logger, maxSessions int, ttl time.Duration) *SessionManager {
	return &SessionManager{
		logger: logger,
		cache:  expirable.NewLRU[string, *Session](maxSessions, nil, ttl),
	}
}

// Create registers a new session for an extraction result and its profile,
// returning the generated session id.
func (sm *SessionManager) Create(extraction *domain.ExtractionResult, profile domain.GeneProfile) *Session {
	session := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Format:     extraction.DetectedFormat,
		Extraction: extraction,
		Profile:    profile,
	}
	sm.cache.Add(session.ID, session)

	sm.logger.WithFields(logrus.Fields{
		"session_id":   session.ID,
		"format":       session.Format.String(),
		"pgx_count":    extraction.PGxCount,
		"genes_called": len(profile),
	}).Info("Created session")

	return session
}

// Get returns the session for an id, or ErrSessionNotFound if it never
// existed, expired, or was evicted. The three cases are indistinguishable on
// purpose; clients handle all of them by re-uploading.
func (sm *SessionManager) Get(id string) (*Session, error) {
	session, ok := sm.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, domain.ErrSessionNotFound)
	}
	return session, nil
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (sm *SessionManager) Delete(id string) {
	if sm.cache.Remove(id) {
		sm.logger.WithField("session_id", id).Info("Deleted session")
	}
}

// Count returns the number of live sessions.
func (sm *SessionManager) Count() int {
	return sm.cache.Len()
}
