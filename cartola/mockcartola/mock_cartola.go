package mockcartola

import (
	"context"
	"encoding/json"

	"github.com/mww/cartolafc/cartola"
	"github.com/mww/cartolafc/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

var _ cartola.API = (*Client)(nil)

func (c *Client) Friends(ctx context.Context) ([]model.TeamInfo, error) {
	args := c.Called(ctx)

	var res []model.TeamInfo
	if args.Get(0) != nil {
		res = args.Get(0).([]model.TeamInfo)
	}

	return res, args.Error(1)
}

func (c *Client) League(ctx context.Context, q cartola.LeagueQuery) (*model.League, error) {
	args := c.Called(ctx, q)

	var res *model.League
	if args.Get(0) != nil {
		res = args.Get(0).(*model.League)
	}

	return res, args.Error(1)
}

func (c *Client) AthleteScores(ctx context.Context, athleteID int) ([]model.ScoreInfo, error) {
	args := c.Called(ctx, athleteID)

	var res []model.ScoreInfo
	if args.Get(0) != nil {
		res = args.Get(0).([]model.ScoreInfo)
	}

	return res, args.Error(1)
}

func (c *Client) MyTeam(ctx context.Context) (*model.Team, error) {
	args := c.Called(ctx)

	var res *model.Team
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Team)
	}

	return res, args.Error(1)
}

func (c *Client) Clubs(ctx context.Context) (map[int]model.Club, error) {
	args := c.Called(ctx)

	var res map[int]model.Club
	if args.Get(0) != nil {
		res = args.Get(0).(map[int]model.Club)
	}

	return res, args.Error(1)
}

func (c *Client) Leagues(ctx context.Context, query string) ([]model.LeagueInfo, error) {
	args := c.Called(ctx, query)

	var res []model.LeagueInfo
	if args.Get(0) != nil {
		res = args.Get(0).([]model.LeagueInfo)
	}

	return res, args.Error(1)
}

func (c *Client) Sponsors(ctx context.Context) (map[int]model.Sponsor, error) {
	args := c.Called(ctx)

	var res map[int]model.Sponsor
	if args.Get(0) != nil {
		res = args.Get(0).(map[int]model.Sponsor)
	}

	return res, args.Error(1)
}

func (c *Client) Market(ctx context.Context) (*model.Market, error) {
	args := c.Called(ctx)

	var res *model.Market
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Market)
	}

	return res, args.Error(1)
}

func (c *Client) MarketAthletes(ctx context.Context) ([]model.Athlete, error) {
	args := c.Called(ctx)

	var res []model.Athlete
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Athlete)
	}

	return res, args.Error(1)
}

func (c *Client) Partials(ctx context.Context) (map[int]*model.Athlete, error) {
	args := c.Called(ctx)

	var res map[int]*model.Athlete
	if args.Get(0) != nil {
		res = args.Get(0).(map[int]*model.Athlete)
	}

	return res, args.Error(1)
}

func (c *Client) Matches(ctx context.Context, round int) ([]model.Match, error) {
	args := c.Called(ctx, round)

	var res []model.Match
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Match)
	}

	return res, args.Error(1)
}

func (c *Client) PostRoundHighlights(ctx context.Context) (*model.RoundHighlights, error) {
	args := c.Called(ctx)

	var res *model.RoundHighlights
	if args.Get(0) != nil {
		res = args.Get(0).(*model.RoundHighlights)
	}

	return res, args.Error(1)
}

func (c *Client) Team(ctx context.Context, q cartola.TeamQuery) (*model.Team, error) {
	args := c.Called(ctx, q)

	var res *model.Team
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Team)
	}

	return res, args.Error(1)
}

func (c *Client) TeamJSON(ctx context.Context, q cartola.TeamQuery) (json.RawMessage, error) {
	args := c.Called(ctx, q)

	var res json.RawMessage
	if args.Get(0) != nil {
		res = args.Get(0).(json.RawMessage)
	}

	return res, args.Error(1)
}

func (c *Client) PartialTeam(ctx context.Context, q cartola.TeamQuery, partials map[int]*model.Athlete) (*model.Team, error) {
	args := c.Called(ctx, q, partials)

	var res *model.Team
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Team)
	}

	return res, args.Error(1)
}

func (c *Client) Teams(ctx context.Context, query string) ([]model.TeamInfo, error) {
	args := c.Called(ctx, query)

	var res []model.TeamInfo
	if args.Get(0) != nil {
		res = args.Get(0).([]model.TeamInfo)
	}

	return res, args.Error(1)
}
