package session

import (
	"context"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"rideapp/internal/modules/estimate"
)

// MemoryStore keeps sessions in process. Expired sessions and claims are
// swept on every write.
type MemoryStore struct {
	ttl time.Duration

	sessions *ttlcache.Cache[string, estimate.Data]

	claimMu sync.Mutex
	claims  *ttlcache.Cache[string, struct{}]
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl: ttl,
		sessions: ttlcache.New[string, estimate.Data](
			ttlcache.WithTTL[string, estimate.Data](ttl),
			ttlcache.WithDisableTouchOnHit[string, estimate.Data](),
		),
		claims: ttlcache.New[string, struct{}](
			ttlcache.WithDisableTouchOnHit[string, struct{}](),
		),
	}
}

func (s *MemoryStore) Load(_ context.Context, id string) (estimate.Data, error) {
	item := s.sessions.Get(id)
	if item == nil {
		return estimate.Data{}, ErrNotFound
	}
	return item.Value(), nil
}

func (s *MemoryStore) Save(_ context.Context, id string, data estimate.Data) error {
	s.sessions.DeleteExpired()
	s.sessions.Set(id, data, ttlcache.DefaultTTL)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.sessions.Delete(id)
	return nil
}

func (s *MemoryStore) Claim(_ context.Context, id, op string, ttl time.Duration) (bool, error) {
	s.claimMu.Lock()
	defer s.claimMu.Unlock()
	s.claims.DeleteExpired()
	key := claimKey(id, op)
	if s.claims.Get(key) != nil {
		return false, nil
	}
	s.claims.Set(key, struct{}{}, ttl)
	return true, nil
}
