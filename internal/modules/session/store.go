// README: Session store keeps estimate data between gateway requests and debounces repeated actions.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"rideapp/internal/modules/estimate"
)

var ErrNotFound = errors.New("session not found")

type Store interface {
	Load(ctx context.Context, id string) (estimate.Data, error)
	Save(ctx context.Context, id string, data estimate.Data) error
	Delete(ctx context.Context, id string) error
	// Claim reports true for the first call per id and op within ttl.
	Claim(ctx context.Context, id, op string, ttl time.Duration) (bool, error)
}

func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like one NewID produced.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
