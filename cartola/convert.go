package cartola

import (
	"cmp"
	"log/slog"
	"slices"
	"time"

	"github.com/mww/cartolafc/cartola/internal"
	"github.com/mww/cartolafc/model"
)

// Match dates are local to Brasília, which has had no daylight saving time
// since 2019.
var brasilia = time.FixedZone("BRT", -3*60*60)

const matchDateLayout = "2006-01-02 15:04:05"

func toClubs(clubs map[string]internal.Club) map[int]model.Club {
	result := make(map[int]model.Club, len(clubs))
	for _, c := range clubs {
		result[c.ID] = toClub(c)
	}
	return result
}

func toClub(c internal.Club) model.Club {
	return model.Club{ID: c.ID, Name: c.Name, Abbreviation: c.Abbreviation}
}

func toAthlete(a internal.Athlete, clubs map[int]model.Club) model.Athlete {
	return model.Athlete{
		ID:       a.ID,
		Name:     a.Name,
		Nickname: a.Nickname,
		Points:   a.Points,
		Scout:    a.Scout,
		Position: model.ParsePosition(a.PositionID),
		Status:   model.ParseAthleteStatus(a.StatusID),
		Club:     model.LookupClub(clubs, a.ClubID),
	}
}

func toTeamInfo(t internal.TeamInfo) model.TeamInfo {
	return model.TeamInfo{
		ID:         t.ID,
		Name:       t.Name,
		OwnerName:  t.OwnerName,
		Slug:       t.Slug,
		Subscriber: t.Subscriber,
	}
}

func toTeamInfos(teams []internal.TeamInfo) []model.TeamInfo {
	result := make([]model.TeamInfo, 0, len(teams))
	for _, t := range teams {
		result = append(result, toTeamInfo(t))
	}
	return result
}

// toTeam orders the athletes by position and flags the captain.
func toTeam(t *internal.Team) *model.Team {
	clubs := toClubs(t.Clubs)

	athletes := slices.Clone(t.Athletes)
	slices.SortStableFunc(athletes, func(a, b internal.Athlete) int {
		return cmp.Compare(a.PositionID, b.PositionID)
	})

	team := &model.Team{
		Info:       toTeamInfo(t.Info),
		Athletes:   make([]model.Athlete, 0, len(athletes)),
		Assets:     t.Assets,
		Value:      t.Value,
		LastPoints: t.Points,
		CaptainID:  t.CaptainID,
	}
	for _, a := range athletes {
		athlete := toAthlete(a, clubs)
		athlete.IsCaptain = t.CaptainID != 0 && a.ID == t.CaptainID
		team.Athletes = append(team.Athletes, athlete)
	}
	return team
}

func toLeagueInfo(l internal.LeagueInfo) model.LeagueInfo {
	return model.LeagueInfo{
		ID:          l.ID,
		Name:        l.Name,
		Slug:        l.Slug,
		Description: l.Description,
		Type:        l.Type,
	}
}

func toMarket(m *internal.Market) *model.Market {
	market := &model.Market{
		CurrentRound: m.CurrentRound,
		Status:       model.MarketStatus(m.Status),
		TeamsLineups: m.TeamsLineups,
		Notice:       m.Notice,
		GameOver:     m.GameOver,
	}
	if m.Closing.Timestamp > 0 {
		market.Closing = time.Unix(m.Closing.Timestamp, 0).In(brasilia)
	}
	return market
}

func toScoreInfo(s internal.ScoreInfo) model.ScoreInfo {
	return model.ScoreInfo{
		AthleteID: s.AthleteID,
		Round:     s.Round,
		Points:    s.Points,
		Price:     s.Price,
		Variation: s.Variation,
		Average:   s.Average,
	}
}

func toMatch(m internal.Match, clubs map[int]model.Club, logger *slog.Logger) model.Match {
	return model.Match{
		HomeClub:  model.LookupClub(clubs, m.HomeClubID),
		AwayClub:  model.LookupClub(clubs, m.AwayClubID),
		Date:      parseMatchDate(m.Date, logger),
		Venue:     m.Venue,
		HomeScore: m.HomeScore,
		AwayScore: m.AwayScore,
		Valid:     m.Valid,
	}
}

func parseMatchDate(date string, logger *slog.Logger) time.Time {
	if date == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(matchDateLayout, date, brasilia)
	if err != nil {
		logger.Warn("cartola: unable to parse match date", "date", date, "err", err)
		return time.Time{}
	}
	return t
}

func toHighlights(h *internal.Highlights) *model.RoundHighlights {
	return &model.RoundHighlights{
		AverageAssets: h.AverageAssets,
		AveragePoints: h.AveragePoints,
		BestTeam:      toTeamInfo(h.BestTeam),
	}
}
