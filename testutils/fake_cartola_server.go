package testutils

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

const (
	FakeEmail    = "cartoleiro@example.com"
	FakePassword = "s3nha"

	FakeTeamID     = 3646412
	FakeTeamSlug   = "falydos-fc"
	FakeLeagueSlug = "premiere-fc"
	FakeAthleteID  = 1000
	FakeRound      = 3

	overloadedPage = "<html><body><h1>Servidores sobrecarregados</h1></body></html>"
)

//go:embed cartoladata
var cartoladata embed.FS

// FakeCartolaServer serves the Cartola API and the identity service from
// embedded fixtures. Its behaviour can be changed while a test runs to
// simulate an overloaded service, an expired token or the end of the season.
type FakeCartolaServer struct {
	s      *httptest.Server
	render *render.Render

	mu           sync.Mutex
	marketStatus string
	overloads    int
	gameOver     bool
	tokenSerial  int
	logins       int
	requests     map[string]int
	tokens       []string
}

func NewFakeCartolaServer() *FakeCartolaServer {
	f := &FakeCartolaServer{
		render:       render.New(),
		marketStatus: "fechado",
		requests:     make(map[string]int),
		tokenSerial:  1,
	}

	r := chi.NewRouter()
	r.Post("/api/authentication", f.authenticationHandler)

	r.Group(func(r chi.Router) {
		r.Use(f.faultsMiddleware)

		r.Get("/mercado/status", f.marketStatusHandler)
		r.Get("/atletas/mercado", f.fileHandler("mercado.json"))
		r.Get("/atletas/pontuados", f.fileHandler("pontuados.json"))
		r.Get("/partidas/{round}", f.matchesHandler)
		r.Get("/pos-rodada/destaques", f.fileHandler("destaques.json"))
		r.Get("/clubes", f.fileHandler("clubes.json"))
		r.Get("/patrocinadores", f.fileHandler("patrocinadores.json"))
		r.Get("/ligas", f.searchHandler("ligas.json"))
		r.Get("/times", f.searchHandler("times.json"))
		r.Get("/time/id/{id}", f.teamByIDHandler)
		r.Get("/time/slug/{slug}", f.teamBySlugHandler)

		r.Route("/auth", func(r chi.Router) {
			r.Use(f.tokenMiddleware)
			r.Get("/time", f.fileHandler("time.json"))
			r.Get("/amigos", f.fileHandler("amigos.json"))
			r.Get("/liga/{slug}", f.leagueHandler)
			r.Get("/mercado/atleta/{id}/pontuacao", f.athleteScoresHandler)
		})
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeCartolaServer) Close() {
	f.s.Close()
}

// URL is the base URL of the fake API.
func (f *FakeCartolaServer) URL() string {
	return f.s.URL
}

// AuthURL is the URL of the fake identity service.
func (f *FakeCartolaServer) AuthURL() string {
	return f.s.URL + "/api/authentication"
}

// SetMarketOpen switches the market status served by /mercado/status.
func (f *FakeCartolaServer) SetMarketOpen(open bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if open {
		f.marketStatus = "aberto"
	} else {
		f.marketStatus = "fechado"
	}
}

// SetMarketMaintenance serves a market under maintenance.
func (f *FakeCartolaServer) SetMarketMaintenance() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marketStatus = "manutencao"
}

// Overload makes the next n API requests answer with an HTML page.
func (f *FakeCartolaServer) Overload(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overloads = n
}

// SetGameOver makes every API request report the end of the season.
func (f *FakeCartolaServer) SetGameOver(gameOver bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gameOver = gameOver
}

// ExpireToken invalidates the token issued by the last login.
func (f *FakeCartolaServer) ExpireToken() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokenSerial++
}

// Logins returns the number of successful authentications.
func (f *FakeCartolaServer) Logins() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logins
}

// Requests returns how many times path was requested, faults included.
func (f *FakeCartolaServer) Requests(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[path]
}

// Tokens returns the X-GLB-Token header of every API request, in order.
func (f *FakeCartolaServer) Tokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tokens...)
}

func (f *FakeCartolaServer) currentToken() string {
	return fmt.Sprintf("glb-token-%d", f.tokenSerial)
}

func (f *FakeCartolaServer) authenticationHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Payload struct {
			Email     string `json:"email"`
			Password  string `json:"password"`
			ServiceID int    `json:"serviceId"`
		} `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		f.render.JSON(w, http.StatusBadRequest, map[string]string{"id": "BadRequest", "userMessage": "Requisição inválida."})
		return
	}

	p := req.Payload
	if p.Email != FakeEmail || p.Password != FakePassword || p.ServiceID != 4728 {
		f.render.JSON(w, http.StatusUnauthorized, map[string]string{
			"id":          "BadCredentials",
			"userMessage": "Seu e-mail ou senha estão incorretos.",
		})
		return
	}

	f.mu.Lock()
	f.logins++
	token := f.currentToken()
	f.mu.Unlock()

	f.render.JSON(w, http.StatusOK, map[string]string{
		"id":          "Authenticated",
		"userMessage": "Usuário autenticado com sucesso",
		"glbId":       token,
	})
}

func (f *FakeCartolaServer) faultsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests[r.URL.Path]++
		f.tokens = append(f.tokens, r.Header.Get("X-GLB-Token"))
		overloaded := f.overloads > 0
		if overloaded {
			f.overloads--
		}
		gameOver := f.gameOver
		f.mu.Unlock()

		if overloaded {
			f.render.Text(w, http.StatusServiceUnavailable, overloadedPage)
			return
		}
		if gameOver {
			f.render.JSON(w, http.StatusOK, map[string]bool{"game_over": true})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeCartolaServer) tokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		valid := r.Header.Get("X-GLB-Token") == f.currentToken()
		f.mu.Unlock()

		if !valid {
			f.render.JSON(w, http.StatusUnauthorized, map[string]string{"mensagem": "Usuário não autorizado"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeCartolaServer) marketStatusHandler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	status := f.marketStatus
	f.mu.Unlock()
	f.serveFile(w, fmt.Sprintf("status_mercado_%s.json", status))
}

func (f *FakeCartolaServer) matchesHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "round") != strconv.Itoa(FakeRound) {
		f.render.JSON(w, http.StatusNotFound, map[string]string{"mensagem": "Rodada inválida"})
		return
	}
	f.serveFile(w, "partidas.json")
}

func (f *FakeCartolaServer) searchHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "" {
			f.render.JSON(w, http.StatusOK, []any{})
			return
		}
		f.serveFile(w, name)
	}
}

func (f *FakeCartolaServer) teamByIDHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "id") != strconv.Itoa(FakeTeamID) {
		teamNotFound(f.render, w)
		return
	}
	f.serveFile(w, "time.json")
}

func (f *FakeCartolaServer) teamBySlugHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "slug") != FakeTeamSlug {
		teamNotFound(f.render, w)
		return
	}
	f.serveFile(w, "time.json")
}

func teamNotFound(rnd *render.Render, w http.ResponseWriter) {
	rnd.JSON(w, http.StatusNotFound, map[string]string{"mensagem": "Time não encontrado"})
}

func (f *FakeCartolaServer) leagueHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "slug") != FakeLeagueSlug {
		f.render.JSON(w, http.StatusNotFound, map[string]string{"mensagem": "Liga não encontrada"})
		return
	}
	f.serveFile(w, "liga.json")
}

func (f *FakeCartolaServer) athleteScoresHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "id") != strconv.Itoa(FakeAthleteID) {
		f.render.JSON(w, http.StatusOK, []any{})
		return
	}
	f.serveFile(w, "pontuacao.json")
}

func (f *FakeCartolaServer) fileHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.serveFile(w, name)
	}
}

func (f *FakeCartolaServer) serveFile(w http.ResponseWriter, name string) {
	b, err := cartoladata.ReadFile(fmt.Sprintf("cartoladata/%s", name))
	if err != nil {
		log.Printf("error reading cartoladata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
