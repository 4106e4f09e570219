package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/cartolafc/containers"
)

var (
	// A test global db instance to use for all of the tests instead of setting up a new one each time.
	testDB      DB
	testClock   *clock.Mock
	testConnStr string
)

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	container := containers.NewDBContainer()

	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if container != nil {
				container.Shutdown()
			}
			fmt.Println("panic")
		}
	}()

	testClock = clock.NewMock()
	testClock.Add(24 * time.Hour)

	var err error
	testConnStr = container.ConnectionString()
	testDB, err = New(context.Background(), testConnStr, testClock)
	if err != nil {
		fmt.Printf("error connecting to db: %v", err)
		container.Shutdown()
		os.Exit(-1)
	}

	code := m.Run()
	testDB.Close()
	container.Shutdown()
	os.Exit(code)
}

func TestDB_getAndSet(t *testing.T) {
	ctx := context.Background()
	key := "https://api/time/slug/alcafla-fc"

	got, err := testDB.Get(ctx, key)
	if err != nil {
		t.Fatalf("unexpected error on miss: %v", err)
	}
	if got != nil {
		t.Fatalf("expected a miss, got: %s", got)
	}

	if err := testDB.Set(ctx, key, []byte(`{"pontos":10}`), time.Minute); err != nil {
		t.Fatalf("error saving: %v", err)
	}

	got, err = testDB.Get(ctx, key)
	if err != nil {
		t.Fatalf("unexpected error on hit: %v", err)
	}
	if string(got) != `{"pontos":10}` {
		t.Errorf("unexpected cached value: %s", got)
	}

	// Overwrite the same key
	if err := testDB.Set(ctx, key, []byte(`{"pontos":20}`), time.Minute); err != nil {
		t.Fatalf("error overwriting: %v", err)
	}
	got, _ = testDB.Get(ctx, key)
	if string(got) != `{"pontos":20}` {
		t.Errorf("value was not overwritten: %s", got)
	}
}

func TestDB_expiryAndPurge(t *testing.T) {
	ctx := context.Background()
	key := "https://api/mercado/status?purge=1"

	if err := testDB.Set(ctx, key, []byte(`{}`), 5*time.Second); err != nil {
		t.Fatalf("error saving: %v", err)
	}

	testClock.Add(6 * time.Second)

	got, err := testDB.Get(ctx, key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected expired entry to be a miss, got: %s", got)
	}

	n, err := testDB.Purge(ctx)
	if err != nil {
		t.Fatalf("error purging: %v", err)
	}
	if n < 1 {
		t.Errorf("expected at least one purged entry, got %d", n)
	}
}

func TestNew_purgesExpired(t *testing.T) {
	ctx := context.Background()

	if err := testDB.Set(ctx, "https://api/partidas/3", []byte(`[]`), 5*time.Second); err != nil {
		t.Fatalf("error saving: %v", err)
	}
	testClock.Add(6 * time.Second)

	reopened, err := New(ctx, testConnStr, testClock)
	if err != nil {
		t.Fatalf("error reopening: %v", err)
	}
	defer reopened.Close()

	n, err := testDB.Purge(ctx)
	if err != nil {
		t.Fatalf("error purging: %v", err)
	}
	if n != 0 {
		t.Errorf("expected the expired entry to be purged on open, %d left", n)
	}
}
