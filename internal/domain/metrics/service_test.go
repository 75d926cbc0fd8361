package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items   []DailyMetric
	filters []ListFilter
}

func (r *testRepo) Create(ctx context.Context, m DailyMetric) error {
	for _, it := range r.items {
		if it.AnimalID == m.AnimalID && it.Date.Equal(m.Date) {
			return ErrDuplicate
		}
	}
	r.items = append(r.items, m)
	return nil
}

func (r *testRepo) ListByAnimal(ctx context.Context, animalID string, filter ListFilter) ([]DailyMetric, error) {
	r.filters = append(r.filters, filter)
	out := make([]DailyMetric, 0)
	for _, it := range r.items {
		if it.AnimalID == animalID && filter.Match(it.Date) {
			out = append(out, it)
		}
	}
	return out, nil
}

func newTestService(now time.Time) (*Service, *testRepo) {
	repo := &testRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestService_ForRange(t *testing.T) {
	svc, repo := newTestService(today)
	repo.items = history(60)

	got, err := svc.ForRange(context.Background(), "cat-1", Range30d)
	if err != nil {
		t.Fatalf("ForRange error: %v", err)
	}
	if len(got) != 31 {
		t.Fatalf("expected 31 entries, got %d", len(got))
	}
	if len(repo.filters) != 1 || repo.filters[0].From == nil || !repo.filters[0].From.Equal(Cutoff(Range30d, today)) {
		t.Fatalf("expected repo to be queried from the cutoff, got %#v", repo.filters)
	}

	none, err := svc.ForRange(context.Background(), "cat-9", Range7d)
	if err != nil {
		t.Fatalf("ForRange error: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty result for animal without data")
	}
}

func TestService_ForRange_InvalidRange(t *testing.T) {
	svc, _ := newTestService(today)
	if _, err := svc.ForRange(context.Background(), "cat-1", TimeRange("2w")); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestService_Record(t *testing.T) {
	svc, repo := newTestService(today)

	w := 4.3
	m, err := svc.Record(context.Background(), RecordInput{
		AnimalID:  " cat-1 ",
		Date:      today, // con hora: se normaliza al día
		WeightKg:  &w,
		FoodGrams: 52,
		WaterMl:   160,
	})
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if m.AnimalID != "cat-1" || !m.Date.Equal(Day(today)) {
		t.Fatalf("unexpected record %#v", m)
	}

	// no comparte el puntero del input
	w = 9
	if *repo.items[0].WeightKg != 4.3 {
		t.Fatalf("stored metric must not alias input weight")
	}

	_, err = svc.Record(context.Background(), RecordInput{AnimalID: "cat-1", Date: Day(today), FoodGrams: 1, WaterMl: 1})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestService_Record_Validation(t *testing.T) {
	svc, _ := newTestService(today)
	neg := -1.0

	cases := map[string]RecordInput{
		"missing animal": {Date: today},
		"zero date":      {AnimalID: "cat-1"},
		"negative food":  {AnimalID: "cat-1", Date: today, FoodGrams: -1},
		"negative water": {AnimalID: "cat-1", Date: today, WaterMl: -5},
		"bad weight":     {AnimalID: "cat-1", Date: today, WeightKg: &neg},
		"future day":     {AnimalID: "cat-1", Date: today.AddDate(0, 0, 1)},
	}
	for name, in := range cases {
		if _, err := svc.Record(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}
