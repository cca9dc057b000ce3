package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nitish7045/Team11-adminWebsite/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/matches", func(r chi.Router) {
		r.Get("/", matchesHandler(ctrl, render))
		r.Get("/{matchID}/leaderboard", leaderboardHandler(ctrl, render))
	})

	r.Get("/users/{userID}/teams", userTeamsHandler(ctrl, render))

	r.Route("/api", func(r chi.Router) {
		r.Get("/matches/{matchID}/leaderboard", apiLeaderboardHandler(ctrl, render))
		r.Get("/users/{userID}/teams", apiUserTeamsHandler(ctrl, render))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("team11", map[string]string{"admin": "pa55word"})) // TODO: read from config instead
		r.Use(middleware.Timeout(30 * time.Second))                                   // Set a longer timeout for /admin actions

		r.Post("/users", forceUpdateUsers(ctrl, render))
	})

	return r
}
