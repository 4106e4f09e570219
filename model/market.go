package model

import "time"

// MarketStatus is the state of the trading window. The values are opaque ids
// taken from the service.
type MarketStatus int

const (
	MarketOpen           MarketStatus = 1
	MarketClosed         MarketStatus = 2
	MarketUpdating       MarketStatus = 3
	MarketMaintenance    MarketStatus = 4
	MarketSeasonFinished MarketStatus = 6
)

func (s MarketStatus) String() string {
	switch s {
	case MarketOpen:
		return "Mercado aberto"
	case MarketClosed:
		return "Mercado fechado"
	case MarketUpdating:
		return "Mercado em atualização"
	case MarketMaintenance:
		return "Mercado em manutenção"
	case MarketSeasonFinished:
		return "Final de temporada"
	default:
		return "Desconhecido"
	}
}

type Market struct {
	CurrentRound int
	Status       MarketStatus
	TeamsLineups int // number of teams with a lineup for the current round
	Notice       string
	Closing      time.Time
	GameOver     bool
}

// RoundHighlights summarizes the last finished round.
type RoundHighlights struct {
	AverageAssets float64
	AveragePoints float64
	BestTeam      TeamInfo
}
