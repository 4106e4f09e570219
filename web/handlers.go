package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mww/cartolafc/cartola"
	"github.com/unrolled/render"
)

func marketHandler(api cartola.API, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := api.Market(r.Context())
		if err != nil {
			renderError(w, render, err)
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"round":   m.CurrentRound,
			"status":  m.Status.String(),
			"lineups": m.TeamsLineups,
			"closing": m.Closing,
			"notice":  m.Notice,
		})
	}
}

func partialTeamHandler(api cartola.API, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := cartola.TeamQuery{Slug: chi.URLParam(r, "slug")}
		team, err := api.PartialTeam(r.Context(), q, nil)
		if err != nil {
			renderError(w, render, err)
			return
		}

		athletes := make([]map[string]any, 0, len(team.Athletes))
		for _, a := range team.Athletes {
			athletes = append(athletes, map[string]any{
				"id":       a.ID,
				"nickname": a.Nickname,
				"position": a.Position.Abbreviation,
				"points":   a.Points,
				"captain":  a.IsCaptain,
			})
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"name":     team.Info.Name,
			"owner":    team.Info.OwnerName,
			"points":   team.Points,
			"played":   team.Played,
			"athletes": athletes,
		})
	}
}

// renderError maps the client errors to a status code.
func renderError(w http.ResponseWriter, render *render.Render, err error) {
	status := http.StatusInternalServerError
	switch {
	case cartola.IsOverload(err):
		status = http.StatusBadGateway
	case cartola.IsGameOver(err):
		status = http.StatusServiceUnavailable
	case cartola.IsAPIError(err):
		status = http.StatusBadRequest
	}
	render.JSON(w, status, map[string]string{"error": err.Error()})
}
