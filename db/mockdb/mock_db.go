package mockdb

import (
	"context"

	"github.com/nitish7045/Team11-adminWebsite/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetUsers(ctx context.Context) ([]model.User, error) {
	args := db.Called(ctx)

	var u []model.User
	if args.Get(0) != nil {
		u = args.Get(0).([]model.User)
	}
	return u, args.Error(1)
}

func (db *DB) GetUser(ctx context.Context, userID string) (*model.User, error) {
	args := db.Called(ctx, userID)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (db *DB) SaveUser(ctx context.Context, u *model.User) error {
	args := db.Called(ctx, u)
	return args.Error(0)
}
