// Package web serves the client's prometheus metrics and a small JSON view of
// the market and the partial scores, so that a long running process can be
// scraped and inspected.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/mww/cartolafc/cartola"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/unrolled/render"
)

type Server struct {
	server *http.Server
}

func NewServer(port int, api cartola.API, registry *prometheus.Registry) *Server {
	return &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: getRouter(api, registry, newRender()),
		},
	}
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Printf("error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Printf("error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		IndentJSON: true,
	})
}
