package model

import "time"

type Match struct {
	HomeClub  Club
	AwayClub  Club
	Date      time.Time
	Venue     string
	HomeScore *int // nil until the match is played
	AwayScore *int
	Valid     bool
}
