package homeassistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-health-dashboard/internal/domain/resources"
)

func newFakeHA(t *testing.T, states map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/api/states/")
		st, ok := states[id]
		if !ok {
			http.Error(w, "Entity not found.", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(State{EntityID: id, State: st})
	}))
}

func TestResourcesRepo_Get(t *testing.T) {
	srv := newFakeHA(t, map[string]string{
		"sensor.bowl_whiskers":  "65",
		"sensor.bowl_luna":      "120", // se acota a 100
		"sensor.fountain_level": "72.5",
		"sensor.litter_waste":   "78",
		"sensor.litter_hopper":  "-3", // se acota a 0
	})
	defer srv.Close()

	client, err := NewClient(srv.URL, "secret", time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	bowls, err := ParseBowls("cat-1:sensor.bowl_whiskers:200, cat-2:sensor.bowl_luna:250")
	if err != nil {
		t.Fatalf("ParseBowls error: %v", err)
	}

	repo := NewResourcesRepo(client, Entities{
		Bowls:              bowls,
		FountainEntity:     "sensor.fountain_level",
		FountainCapacityMl: 2000,
		LitterWasteEntity:  "sensor.litter_waste",
		LitterHopperEntity: "sensor.litter_hopper",
	})

	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if len(got.FoodBowls) != 2 {
		t.Fatalf("expected 2 bowls, got %d", len(got.FoodBowls))
	}
	if got.FoodBowls[0].AnimalID != "cat-1" || got.FoodBowls[0].Level != 65 || got.FoodBowls[0].CapacityGrams != 200 {
		t.Fatalf("unexpected bowl %#v", got.FoodBowls[0])
	}
	if got.FoodBowls[1].Level != 100 {
		t.Fatalf("expected level clamped to 100, got %v", got.FoodBowls[1].Level)
	}
	if got.WaterFountain.Level != 72.5 || got.WaterFountain.CapacityMl != 2000 {
		t.Fatalf("unexpected fountain %#v", got.WaterFountain)
	}
	if got.LitterTray.WasteLevel != 78 || got.LitterTray.HopperLevel != 0 {
		t.Fatalf("unexpected litter tray %#v", got.LitterTray)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("snapshot from sensors should be valid: %v", err)
	}
}

func TestResourcesRepo_Errors(t *testing.T) {
	srv := newFakeHA(t, map[string]string{"sensor.fountain_level": "unavailable"})
	defer srv.Close()

	client, _ := NewClient(srv.URL, "secret", time.Second, nil)
	repo := NewResourcesRepo(client, Entities{FountainEntity: "sensor.fountain_level"})
	if _, err := repo.Get(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	if err := repo.Replace(context.Background(), resources.SharedResources{}); !errors.Is(err, resources.ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}

	bad, _ := NewClient(srv.URL, "wrong", time.Second, nil)
	if _, err := bad.State(context.Background(), "sensor.fountain_level"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	var none *Client
	if _, err := none.State(context.Background(), "sensor.x"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestParseBowls(t *testing.T) {
	got, err := ParseBowls("")
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty mapping, got %#v err=%v", got, err)
	}

	for _, bad := range []string{"cat-1:sensor.x", "cat-1:sensor.x:abc", ":sensor.x:200", "cat-1:sensor.x:-1"} {
		if _, err := ParseBowls(bad); err == nil {
			t.Fatalf("ParseBowls(%q): expected error", bad)
		}
	}
}
