package model

import "fmt"

type Club struct {
	ID           int
	Name         string
	Abbreviation string
}

// NoClub is used for athletes whose club is not present in the response,
// e.g. athletes that were transferred out of the league.
var NoClub = Club{ID: 0, Name: "Sem clube", Abbreviation: "SC"}

func (c Club) String() string {
	if c.Abbreviation == "" {
		return c.Name
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.Abbreviation)
}

// LookupClub finds the club with the given id, falling back to NoClub.
func LookupClub(clubs map[int]Club, id int) Club {
	c, found := clubs[id]
	if !found {
		return NoClub
	}
	return c
}
