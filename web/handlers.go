package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nitish7045/Team11-adminWebsite/controller"
	"github.com/unrolled/render"
)

func rootHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := ctrl.Overview(r.Context())
		if err != nil {
			renderHTMLError(render, w, err)
			return
		}

		render.HTML(w, http.StatusOK, "home", overview)
	}
}

func matchesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := ctrl.ListMatchResults(r.Context())
		if err != nil {
			renderHTMLError(render, w, err)
			return
		}

		render.HTML(w, http.StatusOK, "matches", results)
	}
}

func leaderboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "matchID")

		lb, err := ctrl.BuildLeaderboard(r.Context(), matchID)
		if err != nil {
			renderHTMLError(render, w, err)
			return
		}

		render.HTML(w, http.StatusOK, "leaderboard", lb)
	}
}

func userTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		matchID := r.URL.Query().Get("match")

		data := map[string]any{
			"userID":  userID,
			"matchID": matchID,
		}

		// With a match selected the teams are shown scored against that
		// match's result; without one, the raw submissions are listed.
		if matchID != "" {
			scored, err := ctrl.ScoreUserTeams(r.Context(), userID, matchID)
			if err != nil {
				renderHTMLError(render, w, err)
				return
			}
			data["scored"] = scored
		} else {
			teams, err := ctrl.TeamsOf(r.Context(), userID, "")
			if err != nil {
				renderHTMLError(render, w, err)
				return
			}
			data["teams"] = teams
		}

		render.HTML(w, http.StatusOK, "userTeams", data)
	}
}

func apiLeaderboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "matchID")

		lb, err := ctrl.BuildLeaderboard(r.Context(), matchID)
		if err != nil {
			renderJSONError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, lb)
	}
}

func apiUserTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		matchID := r.URL.Query().Get("match")

		if matchID != "" {
			scored, err := ctrl.ScoreUserTeams(r.Context(), userID, matchID)
			if err != nil {
				renderJSONError(render, w, err)
				return
			}
			render.JSON(w, http.StatusOK, scored)
			return
		}

		teams, err := ctrl.TeamsOf(r.Context(), userID, "")
		if err != nil {
			renderJSONError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func forceUpdateUsers(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.UpdateUsers(r.Context()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error updating users: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "user directory sync completed successfully")
	}
}

// A missing outcome must read as "no declared outcome", never as an empty
// leaderboard that could pass for "no winners".
func renderHTMLError(render *render.Render, w http.ResponseWriter, err error) {
	var se *controller.SourceError

	switch {
	case errors.Is(err, controller.ErrMissingID):
		render.HTML(w, http.StatusBadRequest, "400", err.Error())
	case errors.Is(err, controller.ErrNoDeclaredOutcome):
		render.HTML(w, http.StatusNotFound, "404", "No results have been declared for this match yet.")
	case errors.Is(err, controller.ErrSuperseded):
		render.HTML(w, http.StatusConflict, "400", "This request was superseded by a newer one.")
	case errors.As(err, &se):
		render.HTML(w, http.StatusBadGateway, "500", se.Error())
	default:
		render.HTML(w, http.StatusInternalServerError, "500", err.Error())
	}
}

func renderJSONError(render *render.Render, w http.ResponseWriter, err error) {
	var se *controller.SourceError

	switch {
	case errors.Is(err, controller.ErrMissingID):
		render.JSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
	case errors.Is(err, controller.ErrNoDeclaredOutcome):
		render.JSON(w, http.StatusNotFound, map[string]string{"message": "no declared outcome for this match"})
	case errors.Is(err, controller.ErrSuperseded):
		render.JSON(w, http.StatusConflict, map[string]string{"message": "request superseded by a newer one"})
	case errors.As(err, &se):
		render.JSON(w, http.StatusBadGateway, map[string]string{"message": se.Error()})
	default:
		render.JSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
}
