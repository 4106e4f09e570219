package cartola

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mww/cartolafc/cartola/internal"
	"github.com/mww/cartolafc/model"
)

// TeamQuery identifies a team. ID wins over Slug, and Slug wins over Name,
// which is converted with ToSlug.
type TeamQuery struct {
	ID   int
	Name string
	Slug string
}

func (q TeamQuery) path() (string, error) {
	switch {
	case q.ID > 0:
		return fmt.Sprintf("/time/id/%d", q.ID), nil
	case q.Slug != "":
		return "/time/slug/" + url.PathEscape(q.Slug), nil
	case q.Name != "":
		return "/time/slug/" + url.PathEscape(ToSlug(q.Name)), nil
	default:
		return "", newAPIError(msgTeamQueryMissing)
	}
}

func (c *Client) Team(ctx context.Context, q TeamQuery) (*model.Team, error) {
	path, err := q.path()
	if err != nil {
		return nil, err
	}

	var parsed internal.Team
	if err := c.fetchInto(ctx, path, nil, &parsed); err != nil {
		return nil, err
	}
	return toTeam(&parsed), nil
}

// TeamJSON returns the team payload as sent by the service.
func (c *Client) TeamJSON(ctx context.Context, q TeamQuery) (json.RawMessage, error) {
	path, err := q.path()
	if err != nil {
		return nil, err
	}
	return c.Fetch(ctx, path, nil)
}

// Teams searches teams by name.
func (c *Client) Teams(ctx context.Context, query string) ([]model.TeamInfo, error) {
	var parsed []internal.TeamInfo
	if err := c.fetchInto(ctx, "/times", url.Values{"q": {query}}, &parsed); err != nil {
		return nil, err
	}
	return toTeamInfos(parsed), nil
}

// MyTeam returns the team of the authenticated user.
func (c *Client) MyTeam(ctx context.Context) (*model.Team, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	var parsed internal.Team
	if err := c.fetchInto(ctx, "/auth/time", nil, &parsed); err != nil {
		return nil, err
	}
	return toTeam(&parsed), nil
}

// Friends returns the teams followed by the authenticated user.
func (c *Client) Friends(ctx context.Context) ([]model.TeamInfo, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	var parsed internal.Friends
	if err := c.fetchInto(ctx, "/auth/amigos", nil, &parsed); err != nil {
		return nil, err
	}
	return toTeamInfos(parsed.Teams), nil
}
