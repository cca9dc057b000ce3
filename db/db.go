package db

import (
	"context"

	"github.com/nitish7045/Team11-adminWebsite/model"
)

// DB is a local mirror of the platform's user directory, kept in sync from
// the backend service. It is optional: when no database is configured the
// directory is fetched from the backend on every request instead.
type DB interface {
	GetUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	SaveUser(ctx context.Context, u *model.User) error
}
