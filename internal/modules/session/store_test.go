package session

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"rideapp/internal/modules/estimate"
)

const opConfirmTest = "confirm"

func sampleData() estimate.Data {
	d := estimate.NewData()
	d.CustomerID = "CT01"
	d.OriginAddress = "Av. Paulista, 1538"
	d.DestinationAddress = "Rua Augusta, 1000"
	return d
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()
	id := NewID()

	if _, err := s.Load(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Save(ctx, id, sampleData()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(ctx, id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.CustomerID != "CT01" || got.DriverID != estimate.NoDriver {
		t.Fatalf("unexpected data %+v", got)
	}
	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Load(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStoreExpires(t *testing.T) {
	s := NewMemoryStore(20 * time.Millisecond)
	ctx := context.Background()
	_ = s.Save(ctx, "a", sampleData())

	time.Sleep(60 * time.Millisecond)
	if _, err := s.Load(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}

func TestMemoryStoreSweepsExpiredEntries(t *testing.T) {
	s := NewMemoryStore(20 * time.Millisecond)
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		id := NewID()
		_ = s.Save(ctx, id, sampleData())
		_, _ = s.Claim(ctx, id, opConfirmTest, 20*time.Millisecond)
	}
	time.Sleep(60 * time.Millisecond)

	id := NewID()
	_ = s.Save(ctx, id, sampleData())
	_, _ = s.Claim(ctx, id, opConfirmTest, 20*time.Millisecond)

	if n := s.sessions.Len(); n != 1 {
		t.Fatalf("sessions = %d, want 1 after sweep", n)
	}
	if n := s.claims.Len(); n != 1 {
		t.Fatalf("claims = %d, want 1 after sweep", n)
	}
}

func TestMemoryStoreClaimDebounces(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	ok, _ := s.Claim(ctx, "a", opConfirmTest, 50*time.Millisecond)
	if !ok {
		t.Fatal("first claim should succeed")
	}
	if ok, _ := s.Claim(ctx, "a", opConfirmTest, 50*time.Millisecond); ok {
		t.Fatal("second claim within ttl should fail")
	}
	if ok, _ := s.Claim(ctx, "b", opConfirmTest, 50*time.Millisecond); !ok {
		t.Fatal("claims are per session")
	}

	time.Sleep(100 * time.Millisecond)
	if ok, _ := s.Claim(ctx, "a", opConfirmTest, 50*time.Millisecond); !ok {
		t.Fatal("claim after ttl should succeed")
	}
}

func TestValidID(t *testing.T) {
	if !ValidID(NewID()) {
		t.Fatal("NewID should be valid")
	}
	if ValidID("not-a-session") {
		t.Fatal("expected invalid id")
	}
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("RIDEAPP_TEST_REDIS")
	if addr == "" {
		t.Skip("RIDEAPP_TEST_REDIS not set; skipping redis-backed tests")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })

	s := NewRedisStore(rdb, time.Minute)
	ctx := context.Background()
	id := NewID()
	t.Cleanup(func() {
		_ = s.Delete(ctx, id)
		_ = rdb.Del(ctx, claimKey(id, opConfirmTest)).Err()
	})

	if _, err := s.Load(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Save(ctx, id, sampleData()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(ctx, id)
	if err != nil || got.OriginAddress != "Av. Paulista, 1538" {
		t.Fatalf("load: %+v, %v", got, err)
	}
	if ok, err := s.Claim(ctx, id, opConfirmTest, time.Second); err != nil || !ok {
		t.Fatalf("first claim: %v, %v", ok, err)
	}
	if ok, _ := s.Claim(ctx, id, opConfirmTest, time.Second); ok {
		t.Fatal("second claim within ttl should fail")
	}
}
