package model

// Orderings accepted by the league endpoint.
const (
	OrderChampionship = "campeonato"
	OrderTurn         = "turno"
	OrderMonth        = "mes"
	OrderRound        = "rodada"
	OrderAssets       = "patrimonio"
)

var leagueOrderings = map[string]bool{
	OrderChampionship: true,
	OrderTurn:         true,
	OrderMonth:        true,
	OrderRound:        true,
	OrderAssets:       true,
}

func IsLeagueOrderingSupported(order string) bool {
	return leagueOrderings[order]
}

type LeagueInfo struct {
	ID          int
	Name        string
	Slug        string
	Description string
	Type        string
}

type League struct {
	LeagueInfo
	OrderBy string
	Teams   []TeamInfo
}

type Sponsor struct {
	LeagueID int
	Name     string
	URL      string
}
