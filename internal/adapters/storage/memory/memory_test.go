package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-health-dashboard/internal/domain/animals"
	"pet-health-dashboard/internal/domain/metrics"
	"pet-health-dashboard/internal/domain/resources"
)

var today = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

func TestAnimalRepo_CopyIsolation(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()

	target := 4.5
	a := animals.Animal{ID: "cat-1", Name: "Whiskers", TargetWeightKg: &target}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// mutar el input no afecta al store
	target = 9
	got, err := repo.GetByID(ctx, "cat-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if *got.TargetWeightKg != 4.5 {
		t.Fatalf("store aliased input pointer")
	}

	// mutar lo devuelto tampoco
	*got.TargetWeightKg = 1
	got.Name = "Changed"
	list, _ := repo.List(ctx)
	if list[0].Name != "Whiskers" || *list[0].TargetWeightKg != 4.5 {
		t.Fatalf("store aliased returned value")
	}
}

func TestAnimalRepo_Errors(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, animals.Animal{ID: "cat-1", Name: "Whiskers"})
	if err := repo.Create(ctx, animals.Animal{ID: "cat-1", Name: "Dup"}); !errors.Is(err, animals.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if err := repo.Update(ctx, animals.Animal{ID: "cat-9"}); !errors.Is(err, animals.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if _, err := repo.GetByID(ctx, "cat-9"); !errors.Is(err, animals.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on get, got %v", err)
	}
}

func TestAnimalRepo_ListKeepsInsertionOrder(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()
	for _, id := range []string{"cat-2", "cat-10", "cat-1"} {
		_ = repo.Create(ctx, animals.Animal{ID: id, Name: id})
	}

	list, _ := repo.List(ctx)
	if list[0].ID != "cat-2" || list[1].ID != "cat-10" || list[2].ID != "cat-1" {
		t.Fatalf("unexpected order %v", list)
	}
}

func TestMetricRepo_SortedAndUnique(t *testing.T) {
	repo := NewMetricRepo()
	ctx := context.Background()

	for _, n := range []int{1, 3, 0, 2} {
		m := metrics.DailyMetric{AnimalID: "cat-1", Date: today.AddDate(0, 0, -n).Add(5 * time.Hour), FoodGrams: float64(n)}
		if err := repo.Create(ctx, m); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}
	err := repo.Create(ctx, metrics.DailyMetric{AnimalID: "cat-1", Date: today})
	if !errors.Is(err, metrics.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	all, _ := repo.ListByAnimal(ctx, "cat-1", metrics.ListFilter{})
	if len(all) != 4 {
		t.Fatalf("expected 4 records, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if !all[i-1].Date.Before(all[i].Date) {
			t.Fatalf("expected ascending dates, got %v then %v", all[i-1].Date, all[i].Date)
		}
	}

	from := today.AddDate(0, 0, -1)
	recent, _ := repo.ListByAnimal(ctx, "cat-1", metrics.ListFilter{From: &from})
	if len(recent) != 2 {
		t.Fatalf("expected 2 records from yesterday, got %d", len(recent))
	}

	none, _ := repo.ListByAnimal(ctx, "cat-9", metrics.ListFilter{})
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil result")
	}
}

func TestMetricRepo_CopyIsolation(t *testing.T) {
	repo := NewMetricRepo()
	ctx := context.Background()

	w := 4.2
	_ = repo.Create(ctx, metrics.DailyMetric{AnimalID: "cat-1", Date: today, WeightKg: &w})
	w = 1

	got, _ := repo.ListByAnimal(ctx, "cat-1", metrics.ListFilter{})
	if *got[0].WeightKg != 4.2 {
		t.Fatalf("store aliased input weight")
	}
	*got[0].WeightKg = 7
	again, _ := repo.ListByAnimal(ctx, "cat-1", metrics.ListFilter{})
	if *again[0].WeightKg != 4.2 {
		t.Fatalf("store aliased returned weight")
	}
}

func TestResourcesRepo(t *testing.T) {
	repo := NewResourcesRepo()
	ctx := context.Background()

	if _, err := repo.Get(ctx); !errors.Is(err, resources.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first replace, got %v", err)
	}

	snap := resources.SharedResources{
		FoodBowls: []resources.FoodBowl{{AnimalID: "cat-1", Level: 65, CapacityGrams: 200}},
	}
	if err := repo.Replace(ctx, snap); err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	snap.FoodBowls[0].Level = 0

	got, _ := repo.Get(ctx)
	if got.FoodBowls[0].Level != 65 {
		t.Fatalf("store aliased input bowls")
	}
	got.FoodBowls[0].Level = 1
	again, _ := repo.Get(ctx)
	if again.FoodBowls[0].Level != 65 {
		t.Fatalf("store aliased returned bowls")
	}
}

func TestSeed(t *testing.T) {
	data := Seed(today.Add(13*time.Hour), 42)

	if len(data.Animals) != 3 || data.NextID != 4 {
		t.Fatalf("expected 3 animals and NextID 4, got %d / %d", len(data.Animals), data.NextID)
	}
	if len(data.Metrics) != 3*SeedDays {
		t.Fatalf("expected %d metrics, got %d", 3*SeedDays, len(data.Metrics))
	}
	if err := data.Resources.Validate(); err != nil {
		t.Fatalf("seeded resources invalid: %v", err)
	}

	stub := NewSeededStub(data)
	ms, _ := stub.Metrics.ListByAnimal(context.Background(), "cat-1", metrics.ListFilter{})
	if len(ms) != SeedDays {
		t.Fatalf("expected %d days for cat-1, got %d", SeedDays, len(ms))
	}
	if !ms[len(ms)-1].Date.Equal(today) {
		t.Fatalf("expected history to end today, got %v", ms[len(ms)-1].Date)
	}
	for _, m := range ms {
		if m.FoodGrams < 0 || m.WaterMl < 0 || m.WeightKg == nil {
			t.Fatalf("invalid seeded metric %#v", m)
		}
	}

	// misma seed => mismos datos
	again := Seed(today, 42)
	if *again.Metrics[10].WeightKg != *data.Metrics[10].WeightKg {
		t.Fatalf("expected reproducible seed data")
	}

	if id := stub.IDs.NewID(); id != "cat-4" {
		t.Fatalf("expected next id cat-4, got %s", id)
	}
}
