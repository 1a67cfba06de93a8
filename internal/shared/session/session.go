// Package session carries the caller identity from the auth middleware into
// services, so no workflow reads the current user from ambient state.
package session

import (
	"busline/internal/shared/apperrors"
	"busline/internal/users"

	"github.com/google/uuid"
)

// Context identifies who is making a request and which login session it
// belongs to. The session id scopes the passenger staging area.
type Context struct {
	UserID    uuid.UUID
	SessionID string
	Role      users.Role
	Email     string
}

// Validate rejects a context that cannot own a staging area or a booking.
func (c Context) Validate() error {
	if c.UserID == uuid.Nil || c.SessionID == "" {
		return apperrors.AuthorizationError{Unauthenticated: true}
	}
	return nil
}

func (c Context) IsPrivileged() bool {
	return c.Role.IsPrivileged()
}
