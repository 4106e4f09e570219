package cartola

import (
	"context"

	"github.com/mww/cartolafc/model"
)

// MergePartials scores team with the partial points of the running round.
//
// Athletes with an entry in partials take its points and scout, the others
// score zero with an empty scout. The captain's points are doubled. Team.Points
// ends up as the sum of the athletes' points and Team.Played as the number of
// athletes that had a partial. The same team is returned.
//
// The arguments are checked before anything is changed: team must not be nil,
// and every partial must be non-nil, keyed by a positive id that matches its
// own ID when that is set.
func MergePartials(team *model.Team, partials map[int]*model.Athlete) (*model.Team, error) {
	if !validMerge(team, partials) {
		return nil, newAPIError(msgInvalidMerge)
	}

	var points float64
	played := 0
	for i := range team.Athletes {
		a := &team.Athletes[i]

		if p, ok := partials[a.ID]; ok {
			a.Points = p.Points
			a.Scout = copyScout(p.Scout)
			played++
		} else {
			a.Points = 0
			a.Scout = map[string]int{}
		}

		if a.IsCaptain {
			a.Points *= 2
		}
		points += a.Points
	}

	team.Points = points
	team.Played = played
	return team, nil
}

func validMerge(team *model.Team, partials map[int]*model.Athlete) bool {
	if team == nil || partials == nil {
		return false
	}
	for id, p := range partials {
		if id <= 0 || p == nil {
			return false
		}
		if p.ID != 0 && p.ID != id {
			return false
		}
	}
	return true
}

func copyScout(scout map[string]int) map[string]int {
	out := make(map[string]int, len(scout))
	for k, v := range scout {
		out[k] = v
	}
	return out
}

// PartialTeam fetches a team and merges the partial scores into it. When
// partials is nil they are fetched too, which requires the market to be
// closed. An explicit map skips the market check.
func (c *Client) PartialTeam(ctx context.Context, q TeamQuery, partials map[int]*model.Athlete) (*model.Team, error) {
	if partials == nil {
		var err error
		partials, err = c.Partials(ctx)
		if err != nil {
			return nil, err
		}
	}

	team, err := c.Team(ctx, q)
	if err != nil {
		return nil, err
	}

	return MergePartials(team, partials)
}
