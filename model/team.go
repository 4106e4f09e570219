package model

import "fmt"

// TeamInfo is the summary of a team as returned by searches, leagues and
// friend lists.
type TeamInfo struct {
	ID         int
	Name       string
	OwnerName  string
	Slug       string
	Subscriber bool
}

func (t TeamInfo) String() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.OwnerName)
}

// Team is a full team lineup. Athletes are ordered by position id.
type Team struct {
	Info       TeamInfo
	Athletes   []Athlete
	Assets     float64 // patrimonio
	Value      float64 // valor_time
	LastPoints float64 // points of the last closed round
	CaptainID  int

	// Points and Played are only set after merging partial scores.
	Points float64
	Played int
}
