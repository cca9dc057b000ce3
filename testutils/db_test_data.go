package testutils

import (
	"context"
	"log"

	"github.com/itbasis/go-clock"
	"github.com/nitish7045/Team11-adminWebsite/containers"
	"github.com/nitish7045/Team11-adminWebsite/db"
	"github.com/nitish7045/Team11-adminWebsite/model"
)

// Directory entries matching the fake server's users.json fixture.
var (
	AaravSharma = &model.User{UserID: "101", FullName: "Aarav Sharma"}
	DiyaPatel   = &model.User{UserID: "102", FullName: "Diya Patel"}
	RohanGupta  = &model.User{UserID: "103", FullName: "Rohan Gupta"}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     *clock.Mock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.NewMock()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestUsers(db db.DB) error {
	users := []*model.User{
		AaravSharma,
		DiyaPatel,
		RohanGupta,
	}

	for _, u := range users {
		if err := db.SaveUser(context.Background(), u); err != nil {
			return err
		}
	}
	return nil
}
