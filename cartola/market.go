package cartola

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"github.com/mww/cartolafc/cartola/internal"
	"github.com/mww/cartolafc/model"
)

// fetchInto fetches path and decodes the body into v.
func (c *Client) fetchInto(ctx context.Context, path string, params url.Values, v any) error {
	body, err := c.Fetch(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("error parsing response from cartola %s: %w", path, err)
	}
	return nil
}

// Market returns the state of the market for the current round.
func (c *Client) Market(ctx context.Context) (*model.Market, error) {
	var parsed internal.Market
	if err := c.fetchInto(ctx, "/mercado/status", nil, &parsed); err != nil {
		return nil, err
	}
	return toMarket(&parsed), nil
}

// MarketAthletes returns every athlete available in the market.
func (c *Client) MarketAthletes(ctx context.Context) ([]model.Athlete, error) {
	var parsed internal.MarketAthletes
	if err := c.fetchInto(ctx, "/atletas/mercado", nil, &parsed); err != nil {
		return nil, err
	}

	clubs := toClubs(parsed.Clubs)
	result := make([]model.Athlete, 0, len(parsed.Athletes))
	for _, a := range parsed.Athletes {
		result = append(result, toAthlete(a, clubs))
	}
	return result, nil
}

// Partials returns the partial scores of the athletes that already played in
// the running round, keyed by athlete id. The market must be closed.
func (c *Client) Partials(ctx context.Context) (map[int]*model.Athlete, error) {
	if err := c.requireMarket(ctx, model.MarketClosed, msgPartialsClosed); err != nil {
		return nil, err
	}

	var parsed internal.Partials
	if err := c.fetchInto(ctx, "/atletas/pontuados", nil, &parsed); err != nil {
		return nil, err
	}

	clubs := toClubs(parsed.Clubs)
	result := make(map[int]*model.Athlete, len(parsed.Athletes))
	for key, a := range parsed.Athletes {
		if a.ClubID <= 0 {
			continue
		}
		id, err := strconv.Atoi(key)
		if err != nil || id <= 0 {
			c.logger.Warn("cartola: skipping partial with invalid athlete id", "id", key)
			continue
		}

		athlete := toAthlete(a, clubs)
		athlete.ID = id
		athlete.Points = a.Partial
		result[id] = &athlete
	}
	return result, nil
}

// PostRoundHighlights returns the highlights of the last round. The market
// must be open.
func (c *Client) PostRoundHighlights(ctx context.Context) (*model.RoundHighlights, error) {
	if err := c.requireMarket(ctx, model.MarketOpen, msgHighlightsOpen); err != nil {
		return nil, err
	}

	var parsed internal.Highlights
	if err := c.fetchInto(ctx, "/pos-rodada/destaques", nil, &parsed); err != nil {
		return nil, err
	}
	return toHighlights(&parsed), nil
}

// Matches returns the matches of a round ordered by date.
func (c *Client) Matches(ctx context.Context, round int) ([]model.Match, error) {
	var parsed internal.Matches
	if err := c.fetchInto(ctx, fmt.Sprintf("/partidas/%d", round), nil, &parsed); err != nil {
		return nil, err
	}

	clubs := toClubs(parsed.Clubs)
	result := make([]model.Match, 0, len(parsed.Matches))
	for _, m := range parsed.Matches {
		result = append(result, toMatch(m, clubs, c.logger))
	}
	slices.SortStableFunc(result, func(a, b model.Match) int {
		return a.Date.Compare(b.Date)
	})
	return result, nil
}

func (c *Client) Clubs(ctx context.Context) (map[int]model.Club, error) {
	var parsed map[string]internal.Club
	if err := c.fetchInto(ctx, "/clubes", nil, &parsed); err != nil {
		return nil, err
	}
	return toClubs(parsed), nil
}

// Sponsors returns the sponsored leagues keyed by sponsor id.
func (c *Client) Sponsors(ctx context.Context) (map[int]model.Sponsor, error) {
	var parsed map[string]internal.Sponsor
	if err := c.fetchInto(ctx, "/patrocinadores", nil, &parsed); err != nil {
		return nil, err
	}

	result := make(map[int]model.Sponsor, len(parsed))
	for key, s := range parsed {
		id, err := strconv.Atoi(key)
		if err != nil {
			c.logger.Warn("cartola: skipping sponsor with invalid id", "id", key)
			continue
		}
		result[id] = model.Sponsor{LeagueID: s.LeagueID, Name: s.Name, URL: s.URL}
	}
	return result, nil
}

// AthleteScores returns the score history of an athlete ordered by round.
// Requires authentication.
func (c *Client) AthleteScores(ctx context.Context, athleteID int) ([]model.ScoreInfo, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	var parsed []internal.ScoreInfo
	path := fmt.Sprintf("/auth/mercado/atleta/%d/pontuacao", athleteID)
	if err := c.fetchInto(ctx, path, nil, &parsed); err != nil {
		return nil, err
	}

	result := make([]model.ScoreInfo, 0, len(parsed))
	for _, s := range parsed {
		result = append(result, toScoreInfo(s))
	}
	slices.SortStableFunc(result, func(a, b model.ScoreInfo) int {
		return cmp.Compare(a.Round, b.Round)
	})
	return result, nil
}

// requireMarket fails with msg unless the market is in the wanted state.
func (c *Client) requireMarket(ctx context.Context, want model.MarketStatus, msg string) error {
	market, err := c.Market(ctx)
	if err != nil {
		return err
	}
	if market.Status != want {
		return newAPIError(msg)
	}
	return nil
}
