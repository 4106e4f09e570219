package model

// Athlete is a player in the Cartola market. Points and Scout hold the value
// for the current context: the last round for market listings, the partial
// score while a round is running.
type Athlete struct {
	ID        int
	Name      string
	Nickname  string
	Points    float64
	Scout     map[string]int
	Position  Position
	Status    AthleteStatus
	Club      Club
	IsCaptain bool
}

// ScoreInfo is the score history of a single athlete for a single round.
type ScoreInfo struct {
	AthleteID int
	Round     int
	Points    float64
	Price     float64
	Variation float64
	Average   float64
}
