package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed fantacydata
var fantacydata embed.FS

// FakeFantacyServer stands in for both the app and the backend service in
// tests. The handlers serve canned responses for match 1001 and user 101,
// and empty collections otherwise.
type FakeFantacyServer struct {
	s *httptest.Server
}

func NewFakeFantacyServer() *FakeFantacyServer {
	r := chi.NewRouter()
	r.Route("/auth", func(r chi.Router) {
		r.Get("/admin/fetch-users", usersHandler)
		r.Get("/all-match-results", allMatchResultsHandler)
		r.Get("/match-results/{matchID}", matchResultHandler)

		r.Route("/teams", func(r chi.Router) {
			r.Get("/all", allTeamsHandler)
			r.Get("/team/matchid/{matchID}", matchTeamsHandler)
			r.Get("/user/{userID}", userTeamsHandler)
		})
	})

	return &FakeFantacyServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeFantacyServer) Close() {
	f.s.Close()
}

func (f *FakeFantacyServer) URL() string {
	return f.s.URL
}

func usersHandler(w http.ResponseWriter, r *http.Request) {
	serveFantacyFile(w, "users.json")
}

func allMatchResultsHandler(w http.ResponseWriter, r *http.Request) {
	serveFantacyFile(w, "all_match_results.json")
}

func matchResultHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "matchID") {
	case "1001":
		serveFantacyFile(w, "match_result_1001.json")
	case "1002":
		// Declared match entry without any player points yet.
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"matchResult": {"matchId": 1002, "matchTitle": "IND vs AUS - 2nd T20", "playersPoints": []}}`))
	case "1003":
		// Outcome declared but no fantasy teams were submitted.
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"matchResult": {"matchId": 1003, "matchTitle": "IND vs AUS - 3rd T20", "playersPoints": [{"playerName": "V Kohli", "points": 12}]}}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "match result not found"}`))
	}
}

func allTeamsHandler(w http.ResponseWriter, r *http.Request) {
	serveFantacyFile(w, "teams_all.json")
}

func matchTeamsHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "matchID") == "1001" {
		serveFantacyFile(w, "teams_match_1001.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"matchw": []}`))
	}
}

func userTeamsHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "userID") == "101" {
		serveFantacyFile(w, "teams_user_101.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"teams": []}`))
	}
}

func serveFantacyFile(w http.ResponseWriter, name string) {
	b, err := fantacydata.ReadFile(fmt.Sprintf("fantacydata/%s", name))
	if err != nil {
		log.Printf("error reading fantacydata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
