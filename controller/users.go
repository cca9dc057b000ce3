package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/nitish7045/Team11-adminWebsite/db"
	"github.com/nitish7045/Team11-adminWebsite/model"
)

func (c *controller) lookupUserName(ctx context.Context, userID string) (string, error) {
	if c.userDB != nil {
		u, err := c.userDB.GetUser(ctx, userID)
		if err != nil {
			if errors.Is(err, db.ErrUserNotFound) {
				return model.UnknownUserName, nil
			}
			return "", &SourceError{Source: "users", Err: err}
		}
		return u.FullName, nil
	}

	users, err := c.client.FetchUsers(ctx)
	if err != nil {
		return "", &SourceError{Source: "users", Err: err}
	}
	return resolveUserName(userNamesByID(users), userID), nil
}

func (c *controller) UpdateUsers(ctx context.Context) error {
	if c.userDB == nil {
		return errors.New("no user directory database configured")
	}

	start := time.Now()
	log.Printf("user directory sync starting at %v", start.Format(time.DateTime))

	users, err := c.client.FetchUsers(ctx)
	if err != nil {
		return &SourceError{Source: "users", Err: err}
	}

	for _, u := range users {
		if err := c.userDB.SaveUser(ctx, &u); err != nil {
			return fmt.Errorf("error saving user %s: %w", u.UserID, err)
		}
	}

	log.Printf("user directory sync finished, took %v", time.Since(start))
	return nil
}

func (c *controller) RunPeriodicUserSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := c.UpdateUsers(ctx); err != nil {
				log.Printf("%v", err)
			}
		}
	}
}
