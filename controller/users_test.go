package controller

import (
	"context"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/nitish7045/Team11-adminWebsite/db"
	"github.com/nitish7045/Team11-adminWebsite/db/mockdb"
	"github.com/nitish7045/Team11-adminWebsite/fantacy/mockfantacy"
	"github.com/nitish7045/Team11-adminWebsite/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateUsers_success(t *testing.T) {
	mc := &mockfantacy.Client{}
	mdb := &mockdb.DB{}

	users := []model.User{
		{UserID: "101", FullName: "Aarav Sharma"},
		{UserID: "102", FullName: "Diya Patel"},
	}
	mc.On("FetchUsers", mock.Anything).Return(users, nil)
	mdb.On("SaveUser", mock.Anything, &users[0]).Return(nil)
	mdb.On("SaveUser", mock.Anything, &users[1]).Return(nil)

	ctrl, err := New(clock.NewMock(), mc, mdb)
	require.NoError(t, err)

	require.NoError(t, ctrl.UpdateUsers(context.Background()))
	mdb.AssertExpectations(t)
}

func TestUpdateUsers_noDatabase(t *testing.T) {
	mc := &mockfantacy.Client{}

	ctrl, err := New(clock.NewMock(), mc, nil)
	require.NoError(t, err)

	assert.Error(t, ctrl.UpdateUsers(context.Background()))
}

func TestLookupUserName_mirrorMiss(t *testing.T) {
	mc := &mockfantacy.Client{}
	mdb := &mockdb.DB{}

	mdb.On("GetUser", mock.Anything, "404").Return(nil, db.ErrUserNotFound)

	c := &controller{clock: clock.NewMock(), client: mc, userDB: mdb}

	name, err := c.lookupUserName(context.Background(), "404")
	require.NoError(t, err)
	assert.Equal(t, model.UnknownUserName, name)
}

func TestLookupUserName_directFetch(t *testing.T) {
	mc := &mockfantacy.Client{}
	mc.On("FetchUsers", mock.Anything).Return([]model.User{
		{UserID: "7", FullName: "Direct User"},
	}, nil)

	c := &controller{clock: clock.NewMock(), client: mc}

	name, err := c.lookupUserName(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "Direct User", name)

	name, err = c.lookupUserName(context.Background(), "8")
	require.NoError(t, err)
	assert.Equal(t, model.UnknownUserName, name)
}
