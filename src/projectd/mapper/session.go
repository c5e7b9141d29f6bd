package mapper

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/uber/projectd/src/projectd/entity"
	"github.com/uber/projectd/src/projectd/internal/errors"
)

// ContextToSessionUUID returns the UUID of the session that issued the current request.
func ContextToSessionUUID(c context.Context) (uuid.UUID, error) {
	s, ok := c.Value(entity.SessionContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, &errors.NoSessionFoundError{}
	}
	return s, nil
}

// SessionUUIDToContext returns a copy of ctx carrying the session UUID.
func SessionUUIDToContext(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, entity.SessionContextKey, id)
}
