package contracts

import (
	"context"

	"clinidash-core/internal/app/models"
	"clinidash-core/internal/pkg/dto/requests"
)

type SessionStore interface {
	Login(ctx context.Context, request *requests.Login) (*models.Session, error)
	Logout(ctx context.Context) error
	// LoadProfile enriches the current profile; userID 0 means "the logged-in
	// user". Fails with NotAuthenticated when both are absent.
	LoadProfile(ctx context.Context, userID int) (*models.Profile, error)
	Current() *models.Session
	// ForceLogout clears the session without an upstream round-trip. It is
	// the 401 hook target; the redirect fires at most once per session.
	ForceLogout(reason string)
	// StartWatch subscribes to the cross-instance change channel.
	StartWatch(ctx context.Context) (func(), error)
}

type SessionEventPublisher interface {
	PublishSessionEvent(ctx context.Context, event string, user *models.User) error
}
