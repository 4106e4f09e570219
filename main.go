package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/mww/cartolafc/cartola"
	"github.com/mww/cartolafc/config"
	"github.com/mww/cartolafc/metrics"
	"github.com/mww/cartolafc/model"
	"github.com/mww/cartolafc/web"
)

// Prints the market status and, when a team name is given as argument, the
// team's score: the partial score while the round is running, otherwise the
// score of the last round. With CARTOLA_METRICS_PORT set it keeps serving the
// metrics until interrupted.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts, closeCache, err := cfg.Options(ctx)
	if err != nil {
		log.Fatalf("error opening cache: %v", err)
	}
	defer closeCache()

	m := metrics.NewManager()
	client, err := cartola.New(ctx, append(opts, cartola.WithMetrics(m))...)
	if err != nil {
		log.Printf("error creating cartola client: %v", err)
		return
	}

	var q cartola.TeamQuery
	if len(os.Args) > 1 {
		q.Name = strings.Join(os.Args[1:], " ")
	}

	if err := report(ctx, client, q, os.Stdout); err != nil {
		log.Printf("error: %v", err)
	}

	if cfg.MetricsPort == 0 {
		return
	}

	var wg sync.WaitGroup
	wg.Add(1)
	shutdown := make(chan bool, 1)
	server := web.NewServer(cfg.MetricsPort, client, m.Registry())
	go func() {
		<-ctx.Done()
		shutdown <- true
	}()
	server.ListenAndServe(shutdown, &wg)
	wg.Wait()
}

func report(ctx context.Context, api cartola.API, q cartola.TeamQuery, w io.Writer) error {
	market, err := api.Market(ctx)
	if err != nil {
		return fmt.Errorf("error loading market status: %w", err)
	}
	fmt.Fprintf(w, "Rodada %d: %s\n", market.CurrentRound, market.Status)

	if q == (cartola.TeamQuery{}) {
		return nil
	}

	switch market.Status {
	case model.MarketClosed:
		team, err := api.PartialTeam(ctx, q, nil)
		if err != nil {
			return fmt.Errorf("error loading partial score: %w", err)
		}
		fmt.Fprintf(w, "%s\n", team.Info)
		fmt.Fprintf(w, "Parcial: %.2f pontos (%d de %d atletas jogaram)\n", team.Points, team.Played, len(team.Athletes))
		writeAthletes(w, team.Athletes)

	case model.MarketOpen:
		team, err := api.Team(ctx, q)
		if err != nil {
			return fmt.Errorf("error loading team: %w", err)
		}
		fmt.Fprintf(w, "%s\n", team.Info)
		fmt.Fprintf(w, "Última rodada: %.2f pontos, patrimônio C$ %.2f\n", team.LastPoints, team.Assets)

		highlights, err := api.PostRoundHighlights(ctx)
		if err != nil {
			return fmt.Errorf("error loading highlights: %w", err)
		}
		fmt.Fprintf(w, "Mito da rodada: %s com média geral de %.2f pontos\n", highlights.BestTeam, highlights.AveragePoints)

	default:
		team, err := api.Team(ctx, q)
		if err != nil {
			return fmt.Errorf("error loading team: %w", err)
		}
		fmt.Fprintf(w, "%s\n", team.Info)
		fmt.Fprintf(w, "Última rodada: %.2f pontos\n", team.LastPoints)
	}

	return nil
}

func writeAthletes(w io.Writer, athletes []model.Athlete) {
	for _, a := range athletes {
		captain := ""
		if a.IsCaptain {
			captain = " (C)"
		}
		fmt.Fprintf(w, "  %-3s %-20s %6.2f%s\n", a.Position.Abbreviation, a.Nickname, a.Points, captain)
	}
}
