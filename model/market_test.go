package model

import "testing"

func TestMarketStatusString(t *testing.T) {
	tests := []struct {
		s    MarketStatus
		want string
	}{
		{s: MarketOpen, want: "Mercado aberto"},
		{s: MarketClosed, want: "Mercado fechado"},
		{s: MarketUpdating, want: "Mercado em atualização"},
		{s: MarketMaintenance, want: "Mercado em manutenção"},
		{s: MarketSeasonFinished, want: "Final de temporada"},
		{s: MarketStatus(5), want: "Desconhecido"},
	}

	for _, tc := range tests {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("status %d: expected '%s', got '%s'", tc.s, tc.want, got)
		}
	}
}

func TestIsLeagueOrderingSupported(t *testing.T) {
	for _, o := range []string{"campeonato", "turno", "mes", "rodada", "patrimonio"} {
		if !IsLeagueOrderingSupported(o) {
			t.Errorf("expected %s to be supported", o)
		}
	}
	for _, o := range []string{"", "CAMPEONATO", "semana"} {
		if IsLeagueOrderingSupported(o) {
			t.Errorf("expected %s to not be supported", o)
		}
	}
}
