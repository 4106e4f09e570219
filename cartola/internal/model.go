// Package internal holds the JSON payloads of the Cartola API.
package internal

type Club struct {
	ID           int    `json:"id"`
	Name         string `json:"nome"`
	Abbreviation string `json:"abreviacao"`
}

type Athlete struct {
	ID         int            `json:"atleta_id"`
	Name       string         `json:"nome"`
	Nickname   string         `json:"apelido"`
	Points     float64        `json:"pontos_num"`
	Partial    float64        `json:"pontuacao"`
	Scout      map[string]int `json:"scout"`
	PositionID int            `json:"posicao_id"`
	StatusID   int            `json:"status_id"`
	ClubID     int            `json:"clube_id"`
}

type TeamInfo struct {
	ID         int    `json:"time_id"`
	Name       string `json:"nome"`
	OwnerName  string `json:"nome_cartola"`
	Slug       string `json:"slug"`
	Subscriber bool   `json:"assinante"`
}

type Team struct {
	Info      TeamInfo        `json:"time"`
	Athletes  []Athlete       `json:"atletas"`
	Clubs     map[string]Club `json:"clubes"`
	Assets    float64         `json:"patrimonio"`
	Value     float64         `json:"valor_time"`
	Points    float64         `json:"pontos"`
	CaptainID int             `json:"capitao_id"`
}

type LeagueInfo struct {
	ID          int    `json:"liga_id"`
	Name        string `json:"nome"`
	Slug        string `json:"slug"`
	Description string `json:"descricao"`
	Type        string `json:"tipo"`
}

type League struct {
	League LeagueInfo `json:"liga"`
	Teams  []TeamInfo `json:"times"`
}

type Friends struct {
	Teams []TeamInfo `json:"times"`
}

type Closing struct {
	Timestamp int64 `json:"timestamp"`
}

type Market struct {
	CurrentRound int     `json:"rodada_atual"`
	Status       int     `json:"status_mercado"`
	TeamsLineups int     `json:"times_escalados"`
	Notice       string  `json:"aviso"`
	Closing      Closing `json:"fechamento"`
	GameOver     bool    `json:"game_over"`
}

type MarketAthletes struct {
	Athletes []Athlete       `json:"atletas"`
	Clubs    map[string]Club `json:"clubes"`
}

type Partials struct {
	Athletes map[string]Athlete `json:"atletas"`
	Clubs    map[string]Club    `json:"clubes"`
	Round    int                `json:"rodada"`
}

type Sponsor struct {
	LeagueID int    `json:"liga_id"`
	Name     string `json:"nome"`
	URL      string `json:"url_link"`
}

type ScoreInfo struct {
	AthleteID int     `json:"atleta_id"`
	Round     int     `json:"rodada_id"`
	Points    float64 `json:"pontos"`
	Price     float64 `json:"preco"`
	Variation float64 `json:"variacao"`
	Average   float64 `json:"media"`
}

type Match struct {
	HomeClubID int    `json:"clube_casa_id"`
	AwayClubID int    `json:"clube_visitante_id"`
	Date       string `json:"partida_data"`
	Venue      string `json:"local"`
	HomeScore  *int   `json:"placar_oficial_mandante"`
	AwayScore  *int   `json:"placar_oficial_visitante"`
	Valid      bool   `json:"valida"`
}

type Matches struct {
	Matches []Match         `json:"partidas"`
	Clubs   map[string]Club `json:"clubes"`
	Round   int             `json:"rodada"`
}

type Highlights struct {
	AverageAssets float64  `json:"media_cartoletas"`
	AveragePoints float64  `json:"media_pontos"`
	BestTeam      TeamInfo `json:"mito_rodada"`
}
