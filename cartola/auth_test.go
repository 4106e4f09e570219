package cartola

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mww/cartolafc/testutils"
)

func TestNew_credentials(t *testing.T) {
	tests := map[string]struct {
		email         string
		password      string
		wantErr       string
		wantLogins    int
		authenticated bool
	}{
		"no credentials":     {wantLogins: 0},
		"email only":         {email: testutils.FakeEmail, wantErr: msgCredentialsMissing},
		"password only":      {password: testutils.FakePassword, wantErr: msgCredentialsMissing},
		"valid credentials":  {email: testutils.FakeEmail, password: testutils.FakePassword, wantLogins: 1, authenticated: true},
		"wrong password":     {email: testutils.FakeEmail, password: "errada", wantErr: "Seu e-mail ou senha estão incorretos."},
		"unknown user email": {email: "outro@example.com", password: testutils.FakePassword, wantErr: "Seu e-mail ou senha estão incorretos."},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := testutils.NewFakeCartolaServer()
			defer f.Close()

			c, err := NewForTest(context.Background(), f.URL(), f.AuthURL(),
				WithCredentials(tc.email, tc.password), WithLogger(quietLogger))

			if tc.wantErr != "" {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected an *APIError, got: %v", err)
				}
				if apiErr.Message != tc.wantErr {
					t.Errorf("expected message %q, got %q", tc.wantErr, apiErr.Message)
				}
				if c != nil {
					t.Errorf("expected no client on error")
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if c.IsAuthenticated() != tc.authenticated {
					t.Errorf("expected authenticated to be %v", tc.authenticated)
				}
			}

			if n := f.Logins(); n != tc.wantLogins {
				t.Errorf("expected %d logins, got %d", tc.wantLogins, n)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	f := testutils.NewFakeCartolaServer()
	defer f.Close()

	ctx := context.Background()
	c := newTestClient(t, f)

	if err := c.Authenticate(ctx, "", ""); err != nil {
		t.Fatalf("empty credentials should be a no-op, got: %v", err)
	}
	if c.IsAuthenticated() {
		t.Fatal("client should not be authenticated")
	}

	if err := c.Authenticate(ctx, testutils.FakeEmail, ""); err == nil || err.Error() != msgCredentialsMissing {
		t.Fatalf("expected %q, got: %v", msgCredentialsMissing, err)
	}
	if n := f.Logins(); n != 0 {
		t.Fatalf("expected no login request, got %d", n)
	}

	if err := c.Authenticate(ctx, testutils.FakeEmail, testutils.FakePassword); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsAuthenticated() {
		t.Error("client should be authenticated")
	}

	friends, err := c.Friends(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(friends) != 1 || friends[0].Name != "Mito FC" {
		t.Errorf("unexpected friends: %v", friends)
	}
	if tokens := f.Tokens(); len(tokens) != 1 || tokens[0] != "glb-token-1" {
		t.Errorf("expected the token to be sent, got %v", tokens)
	}
}

func TestAuthenticate_invalidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>manutenção</html>"))
	}))
	defer srv.Close()

	c, err := NewForTest(context.Background(), srv.URL, srv.URL+"/login", WithLogger(quietLogger))
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	err = c.Authenticate(context.Background(), "a@b.com", "pw")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an *APIError, got %T: %v", err, err)
	}
	if c.IsAuthenticated() {
		t.Error("client should not be authenticated")
	}
}

func TestRequireAuth(t *testing.T) {
	ctx := context.Background()

	tests := map[string]struct {
		call func(c *Client) error
		path string
	}{
		"friends": {
			call: func(c *Client) error { _, err := c.Friends(ctx); return err },
			path: "/auth/amigos",
		},
		"my team": {
			call: func(c *Client) error { _, err := c.MyTeam(ctx); return err },
			path: "/auth/time",
		},
		"league": {
			call: func(c *Client) error { _, err := c.League(ctx, LeagueQuery{Slug: testutils.FakeLeagueSlug}); return err },
			path: "/auth/liga/" + testutils.FakeLeagueSlug,
		},
		"athlete scores": {
			call: func(c *Client) error { _, err := c.AthleteScores(ctx, testutils.FakeAthleteID); return err },
			path: "/auth/mercado/atleta/1000/pontuacao",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := testutils.NewFakeCartolaServer()
			defer f.Close()

			c := newTestClient(t, f)
			err := tc.call(c)
			if err == nil || err.Error() != msgRequiresAuth {
				t.Fatalf("expected %q, got: %v", msgRequiresAuth, err)
			}
			if n := f.Requests(tc.path); n != 0 {
				t.Errorf("expected no request, got %d", n)
			}
		})
	}
}
