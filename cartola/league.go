package cartola

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mww/cartolafc/cartola/internal"
	"github.com/mww/cartolafc/model"
)

// LeagueQuery identifies a league and the page of its teams to load. The
// service returns 20 teams per page.
type LeagueQuery struct {
	Name    string
	Slug    string // wins over Name
	Page    int    // defaults to 1
	OrderBy string // one of the model.Order* values, defaults to model.OrderChampionship
}

func (q LeagueQuery) normalize() (LeagueQuery, error) {
	if q.Slug == "" && q.Name == "" {
		return q, newAPIError(msgLeagueQueryMissing)
	}
	if q.Slug == "" {
		q.Slug = ToSlug(q.Name)
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.OrderBy == "" {
		q.OrderBy = model.OrderChampionship
	}
	if !model.IsLeagueOrderingSupported(q.OrderBy) {
		return q, newAPIError("unsupported league ordering %q", q.OrderBy)
	}
	return q, nil
}

// League returns a league and one page of its teams. Requires authentication.
func (c *Client) League(ctx context.Context, q LeagueQuery) (*model.League, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	q, err := q.normalize()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("orderBy", q.OrderBy)

	var parsed internal.League
	if err := c.fetchInto(ctx, "/auth/liga/"+url.PathEscape(q.Slug), params, &parsed); err != nil {
		return nil, err
	}

	return &model.League{
		LeagueInfo: toLeagueInfo(parsed.League),
		OrderBy:    q.OrderBy,
		Teams:      toTeamInfos(parsed.Teams),
	}, nil
}

// Leagues searches leagues by name.
func (c *Client) Leagues(ctx context.Context, query string) ([]model.LeagueInfo, error) {
	var parsed []internal.LeagueInfo
	if err := c.fetchInto(ctx, "/ligas", url.Values{"q": {query}}, &parsed); err != nil {
		return nil, err
	}

	result := make([]model.LeagueInfo, 0, len(parsed))
	for _, l := range parsed {
		result = append(result, toLeagueInfo(l))
	}
	return result, nil
}
