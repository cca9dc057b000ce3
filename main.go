package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/nitish7045/Team11-adminWebsite/controller"
	"github.com/nitish7045/Team11-adminWebsite/db"
	"github.com/nitish7045/Team11-adminWebsite/fantacy"
	"github.com/nitish7045/Team11-adminWebsite/web"
	"golang.org/x/oauth2/clientcredentials"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	clock := clock.New()

	// The user directory mirror is optional. Without a database the
	// controller resolves user names by fetching the directory on demand.
	var userDB db.DB
	if connString != "" {
		userDB, err = db.New(context.Background(), connString, clock)
		if err != nil {
			log.Fatalf("cannot connect to DB: %v", err)
		}
	}

	client, err := fantacy.New(newHTTPClient())
	if err != nil {
		log.Fatalf("error creating fantacy client: %v", err)
	}

	ctrl, err := controller.New(clock, client, userDB)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that refreshes the user directory mirror every 6-hours.
	if userDB != nil {
		wg.Add(1)
		go ctrl.RunPeriodicUserSync(6*time.Hour, shutdown, wg)
	}

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

// newHTTPClient returns the client used to talk to the fantacy platform.
// When OAuth client credentials are configured the client attaches a
// bearer token to each request, otherwise plain HTTP is used.
func newHTTPClient() *http.Client {
	clientID := os.Getenv("FANTACY_CLIENT_ID")
	clientSecret := os.Getenv("FANTACY_CLIENT_SECRET")
	tokenURL := os.Getenv("FANTACY_TOKEN_URL")

	if clientID == "" || clientSecret == "" || tokenURL == "" {
		return &http.Client{Timeout: 30 * time.Second}
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	return config.Client(context.Background())
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
