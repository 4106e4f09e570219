package model

// AthleteStatus is the availability of an athlete for the next round.
type AthleteStatus struct {
	ID   int
	Name string
}

var (
	STATUS_UNKNOWN   = AthleteStatus{ID: 0, Name: "Desconhecido"}
	STATUS_DOUBT     = AthleteStatus{ID: 2, Name: "Dúvida"}
	STATUS_SUSPENDED = AthleteStatus{ID: 3, Name: "Suspenso"}
	STATUS_INJURED   = AthleteStatus{ID: 5, Name: "Contundido"}
	STATUS_NULL      = AthleteStatus{ID: 6, Name: "Nulo"}
	STATUS_PROBABLE  = AthleteStatus{ID: 7, Name: "Provável"}

	athleteStatuses = map[int]AthleteStatus{
		STATUS_DOUBT.ID:     STATUS_DOUBT,
		STATUS_SUSPENDED.ID: STATUS_SUSPENDED,
		STATUS_INJURED.ID:   STATUS_INJURED,
		STATUS_NULL.ID:      STATUS_NULL,
		STATUS_PROBABLE.ID:  STATUS_PROBABLE,
	}
)

func ParseAthleteStatus(id int) AthleteStatus {
	s, found := athleteStatuses[id]
	if !found {
		return STATUS_UNKNOWN
	}
	return s
}

func (s AthleteStatus) String() string {
	return s.Name
}
