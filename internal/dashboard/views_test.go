package dashboard

import (
	"context"
	"testing"

	"pet-health-dashboard/internal/domain/animals"
	"pet-health-dashboard/internal/domain/health"
	"pet-health-dashboard/internal/domain/metrics"
)

func newTestViews(b Backend) (*Service, *Views) {
	svc := newTestService(b)
	return svc, NewViews(svc, fixedNow)
}

func TestViews_Overview(t *testing.T) {
	_, views := newTestViews(seededBackend())

	cards, err := views.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview error: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}

	for _, c := range cards {
		if c.Metric == nil || !c.Metric.Date.Equal(metrics.Day(testNow)) {
			t.Fatalf("card %s: expected today's record, got %#v", c.Animal.ID, c.Metric)
		}
	}

	oliver := cards[2]
	if oliver.Animal.ID != "cat-3" || oliver.Assessment.Weight != health.StatusWarning || !oliver.Assessment.HasWarning {
		t.Fatalf("expected weight warning for cat-3, got %#v", oliver.Assessment)
	}
	for _, c := range cards[:2] {
		if c.Assessment.Weight != health.StatusNormal {
			t.Fatalf("card %s: unexpected weight status %s", c.Animal.ID, c.Assessment.Weight)
		}
	}
}

func TestViews_Overview_NoRecentData(t *testing.T) {
	svc, views := newTestViews(emptyBackend())
	if _, err := svc.AddAnimal(context.Background(), animals.CreateInput{Name: "Milo"}); err != nil {
		t.Fatalf("AddAnimal error: %v", err)
	}

	cards, err := views.Overview(context.Background())
	if err != nil || len(cards) != 1 {
		t.Fatalf("unexpected overview %#v err=%v", cards, err)
	}
	c := cards[0]
	if c.Metric != nil {
		t.Fatalf("expected no metric, got %#v", c.Metric)
	}
	// sin registro comida y agua cuentan como 0
	if c.Assessment.Food != health.StatusCritical || c.Assessment.Water != health.StatusCritical {
		t.Fatalf("unexpected assessment %#v", c.Assessment)
	}
}

func TestViews_Profile(t *testing.T) {
	_, views := newTestViews(seededBackend())
	ctx := context.Background()

	p, found, err := views.Profile(ctx, "cat-3")
	if err != nil || !found {
		t.Fatalf("Profile: found=%v err=%v", found, err)
	}
	// nacido 2021-01-10, hoy 2025-06-30
	if p.AgeYears == nil || *p.AgeYears != 4 {
		t.Fatalf("unexpected age %v", p.AgeYears)
	}
	if p.Latest == nil || p.Latest.WeightKg == nil || *p.Latest.WeightKg != 5.83 {
		t.Fatalf("unexpected latest metric %#v", p.Latest)
	}
	if len(p.Alerts) != 1 || p.Alerts[0].AnimalID != "cat-3" {
		t.Fatalf("expected the cat-3 alert, got %#v", p.Alerts)
	}

	p, found, err = views.Profile(ctx, "cat-2")
	if err != nil || !found || len(p.Alerts) != 0 || p.Alerts == nil {
		t.Fatalf("expected empty non-nil alerts for cat-2, got %#v err=%v", p.Alerts, err)
	}

	if _, found, err := views.Profile(ctx, "cat-99"); err != nil || found {
		t.Fatalf("expected found=false, got found=%v err=%v", found, err)
	}
}

func TestViews_Charts(t *testing.T) {
	_, views := newTestViews(seededBackend())
	ctx := context.Background()

	c, found, err := views.Charts(ctx, "cat-1", metrics.Range30d)
	if err != nil || !found {
		t.Fatalf("Charts: found=%v err=%v", found, err)
	}
	if len(c.Weight) != 31 || len(c.Food) != 31 || len(c.Water) != 31 {
		t.Fatalf("unexpected series lengths %d/%d/%d", len(c.Weight), len(c.Food), len(c.Water))
	}
	if c.TargetWeightKg == nil || *c.TargetWeightKg != 4.5 {
		t.Fatalf("unexpected target %v", c.TargetWeightKg)
	}
	if c.WeightDomain == nil || c.WeightDomain.Min > 4.5 || c.WeightDomain.Max < 4.5 {
		t.Fatalf("domain should include the target, got %#v", c.WeightDomain)
	}

	if _, found, _ := views.Charts(ctx, "cat-99", metrics.Range7d); found {
		t.Fatalf("expected found=false")
	}
}

func TestViews_Profile_DoesNotEmitAlerts(t *testing.T) {
	emitted := 0
	svc := NewService(seededBackend(), Options{
		Now:     fixedNow,
		OnAlert: func(health.Alert) { emitted++ },
	})
	views := NewViews(svc, fixedNow)

	p, found, err := views.Profile(context.Background(), "cat-3")
	if err != nil || !found {
		t.Fatalf("Profile: found=%v err=%v", found, err)
	}
	if len(p.Alerts) != 1 || p.Alerts[0].AnimalID != "cat-3" {
		t.Fatalf("expected the cat-3 alert, got %#v", p.Alerts)
	}
	if emitted != 0 {
		t.Fatalf("profile view should not count emitted alerts, got %d", emitted)
	}

	if alerts, err := svc.AnimalAlerts(context.Background(), "cat-1"); err != nil || len(alerts) != 0 {
		t.Fatalf("expected no alerts for cat-1, got %#v err=%v", alerts, err)
	}
}
