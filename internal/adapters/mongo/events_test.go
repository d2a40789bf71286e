package mongo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongoadapter "github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/adapters/mongo"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
)

func setupEventsRepo(t *testing.T) (*mongoadapter.EventsRepository, func()) {
	t.Helper()
	ctx := context.Background()

	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	host, err := mongoContainer.Host(ctx)
	if err != nil {
		t.Fatal(err)
	}
	port, err := mongoContainer.MappedPort(ctx, "27017")
	if err != nil {
		t.Fatal(err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://"+host+":"+port.Port()))
	if err != nil {
		t.Fatal(err)
	}

	repo := mongoadapter.NewEventsRepository(client.Database("OnewheroBayParkTest"), observability.NewLogger())
	cleanup := func() {
		client.Disconnect(ctx)
		mongoContainer.Terminate(ctx)
	}
	return repo, cleanup
}

func testEvent(capacity int) domain.Event {
	return domain.NewEvent("Kite Day", "Festival on the lawn", time.Now().AddDate(0, 0, 14), "10:00", "Main Lawn", "Outdoor", "", capacity, decimal.RequireFromString("25.00"))
}

func TestEventsRepository_ReserveAndRelease(t *testing.T) {
	repo, cleanup := setupEventsRepo(t)
	defer cleanup()
	ctx := context.Background()

	event := testEvent(10)
	if err := repo.Insert(ctx, event); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ReserveSeats(ctx, event.ID, 6)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.AvailableSeats != 4 {
		t.Errorf("expected 4 seats, got %d", got.AvailableSeats)
	}

	_, err = repo.ReserveSeats(ctx, event.ID, 6)
	if !errors.Is(err, domain.ErrInsufficientSeats) {
		t.Errorf("expected insufficient seats, got %v", err)
	}

	fresh, err := repo.Get(ctx, event.ID)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.AvailableSeats != 4 {
		t.Errorf("failed reservation must not change the counter, got %d", fresh.AvailableSeats)
	}

	_, err = repo.ReserveSeats(ctx, uuid.New(), 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}

	released, err := repo.ReleaseSeats(ctx, event.ID, 20)
	if err != nil {
		t.Fatal(err)
	}
	if released.AvailableSeats != 10 {
		t.Errorf("release must clamp at capacity, got %d", released.AvailableSeats)
	}
}

func TestEventsRepository_ConcurrentReservations(t *testing.T) {
	repo, cleanup := setupEventsRepo(t)
	defer cleanup()
	ctx := context.Background()

	event := testEvent(10)
	if err := repo.Insert(ctx, event); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	results := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ReserveSeats(ctx, event.ID, 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientSeats):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 10 || insufficient != 10 {
		t.Errorf("expected exactly 10 successes and 10 rejections, got %d/%d", ok, insufficient)
	}

	fresh, err := repo.Get(ctx, event.ID)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.AvailableSeats != 0 {
		t.Errorf("expected 0 seats, got %d", fresh.AvailableSeats)
	}
}

func TestEventsRepository_UpdateDetailsKeepsCounter(t *testing.T) {
	repo, cleanup := setupEventsRepo(t)
	defer cleanup()
	ctx := context.Background()

	event := testEvent(50)
	if err := repo.Insert(ctx, event); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.ReserveSeats(ctx, event.ID, 10); err != nil {
		t.Fatal(err)
	}

	event.Name = "Kite Day (rescheduled)"
	event.AvailableSeats = 50 // stale in-memory copy must not leak into the store
	if err := repo.UpdateDetails(ctx, event); err != nil {
		t.Fatal(err)
	}

	fresh, err := repo.Get(ctx, event.ID)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Name != "Kite Day (rescheduled)" {
		t.Errorf("expected updated name, got %q", fresh.Name)
	}
	if fresh.AvailableSeats != 40 {
		t.Errorf("expected 40 seats, got %d", fresh.AvailableSeats)
	}
	if !fresh.TicketPrice.Equal(decimal.RequireFromString("25.00")) {
		t.Errorf("expected price 25.00, got %s", fresh.TicketPrice)
	}
}
