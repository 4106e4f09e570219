package model

// Position is the field position an athlete plays. The ids are the ones used
// by the Cartola API.
type Position struct {
	ID           int
	Name         string
	Abbreviation string
}

var (
	POS_UNKNOWN = Position{ID: 0, Name: "Desconhecida", Abbreviation: "unk"}
	POS_GOL     = Position{ID: 1, Name: "Goleiro", Abbreviation: "gol"}
	POS_LAT     = Position{ID: 2, Name: "Lateral", Abbreviation: "lat"}
	POS_ZAG     = Position{ID: 3, Name: "Zagueiro", Abbreviation: "zag"}
	POS_MEI     = Position{ID: 4, Name: "Meia", Abbreviation: "mei"}
	POS_ATA     = Position{ID: 5, Name: "Atacante", Abbreviation: "ata"}
	POS_TEC     = Position{ID: 6, Name: "Técnico", Abbreviation: "tec"}

	positions = map[int]Position{
		POS_GOL.ID: POS_GOL,
		POS_LAT.ID: POS_LAT,
		POS_ZAG.ID: POS_ZAG,
		POS_MEI.ID: POS_MEI,
		POS_ATA.ID: POS_ATA,
		POS_TEC.ID: POS_TEC,
	}
)

// ParsePosition returns the position with the given id, or POS_UNKNOWN.
func ParsePosition(id int) Position {
	p, found := positions[id]
	if !found {
		return POS_UNKNOWN
	}
	return p
}

func (p Position) String() string {
	return p.Name
}
