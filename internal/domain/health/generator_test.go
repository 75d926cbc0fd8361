package health

import (
	"fmt"
	"testing"
	"time"

	"pet-health-dashboard/internal/domain/animals"
	"pet-health-dashboard/internal/domain/metrics"
)

var (
	genToday = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	genNow   = genToday.Add(9 * time.Hour)
)

func newTestGenerator(cfg GeneratorConfig) *Generator {
	g := NewGenerator(cfg)
	g.now = func() time.Time { return genNow }
	n := 0
	g.newID = func() string {
		n++
		return fmt.Sprintf("alert-%d", n)
	}
	return g
}

// day arma el registro de hace n días.
func day(id string, n int, weight *float64, food, water float64) metrics.DailyMetric {
	return metrics.DailyMetric{AnimalID: id, Date: genToday.AddDate(0, 0, -n), WeightKg: weight, FoodGrams: food, WaterMl: water}
}

func TestGenerator_HealthyHistory_NoAlerts(t *testing.T) {
	g := newTestGenerator(DefaultGeneratorConfig())
	a := animals.Animal{ID: "cat-1", Name: "Whiskers"}

	var ms []metrics.DailyMetric
	for i := 20; i >= 0; i-- {
		ms = append(ms, day("cat-1", i, f(4.5), 55, 160))
	}

	got := g.Generate([]animals.Animal{a}, map[string][]metrics.DailyMetric{"cat-1": ms}, genToday)
	if len(got) != 0 {
		t.Fatalf("expected no alerts, got %#v", got)
	}
}

func TestGenerator_LowFood(t *testing.T) {
	g := newTestGenerator(DefaultGeneratorConfig())
	a := animals.Animal{ID: "cat-2", Name: "Luna"}

	ms := []metrics.DailyMetric{
		day("cat-2", 5, nil, 10, 160), // fuera de la ventana de 3 días
		day("cat-2", 2, nil, 38, 160),
		day("cat-2", 1, nil, 36, 160),
		day("cat-2", 0, nil, 35, 160),
	}

	got := g.Generate([]animals.Animal{a}, map[string][]metrics.DailyMetric{"cat-2": ms}, genToday)
	if len(got) != 1 {
		t.Fatalf("expected 1 alert, got %#v", got)
	}
	al := got[0]
	if al.Type != AlertLowFood || al.Severity != SeverityWarning {
		t.Fatalf("expected low_food warning, got %s %s", al.Type, al.Severity)
	}
	if al.AnimalID != "cat-2" || al.ID != "alert-1" || !al.CreatedAt.Equal(genNow) {
		t.Fatalf("unexpected identity fields %#v", al)
	}
	if al.Value != 36.3 || al.Threshold != FoodWarningBelowGrams {
		t.Fatalf("expected value 36.3 threshold 40, got %v / %v", al.Value, al.Threshold)
	}
	if al.Message != "Luna has been eating less than usual over the past 3 days (36 g/day)" {
		t.Fatalf("unexpected message %q", al.Message)
	}
}

func TestGenerator_LowWater_Critical(t *testing.T) {
	g := newTestGenerator(DefaultGeneratorConfig())
	a := animals.Animal{ID: "cat-3", Name: "Oliver"}

	ms := []metrics.DailyMetric{
		day("cat-3", 1, nil, 60, 95),
		day("cat-3", 0, nil, 60, 90),
	}

	got := g.Generate([]animals.Animal{a}, map[string][]metrics.DailyMetric{"cat-3": ms}, genToday)
	if len(got) != 1 || got[0].Type != AlertLowWater || got[0].Severity != SeverityCritical {
		t.Fatalf("expected one critical low_water alert, got %#v", got)
	}
	if got[0].Threshold != WaterCriticalBelowMl {
		t.Fatalf("expected threshold 100, got %v", got[0].Threshold)
	}
}

func TestGenerator_WeightTrend(t *testing.T) {
	cases := []struct {
		name      string
		first     float64
		last      float64
		wantAlert bool
		severity  Severity
		threshold float64
		message   string
	}{
		{"stable", 4.5, 4.7, false, "", 0, ""},
		{"at threshold", 4.5, 4.8, false, "", 0, ""},
		{"gain warning", 4.0, 4.4, true, SeverityWarning, 0.3, "Luna has gained 0.40 kg over the past 3 weeks"},
		{"loss critical", 6.5, 5.8, true, SeverityCritical, -0.3, "Luna has lost 0.70 kg over the past 3 weeks"},
	}

	for _, tc := range cases {
		g := newTestGenerator(DefaultGeneratorConfig())
		a := animals.Animal{ID: "cat-2", Name: "Luna"}
		ms := []metrics.DailyMetric{
			day("cat-2", 30, f(1), 60, 160), // fuera de la ventana de 21 días
			day("cat-2", 20, f(tc.first), 60, 160),
			day("cat-2", 10, nil, 60, 160),
			day("cat-2", 0, f(tc.last), 60, 160),
		}

		got := g.Generate([]animals.Animal{a}, map[string][]metrics.DailyMetric{"cat-2": ms}, genToday)
		if !tc.wantAlert {
			if len(got) != 0 {
				t.Fatalf("%s: expected no alert, got %#v", tc.name, got)
			}
			continue
		}
		if len(got) != 1 || got[0].Type != AlertWeightChange {
			t.Fatalf("%s: expected one weight_change alert, got %#v", tc.name, got)
		}
		if got[0].Severity != tc.severity || got[0].Threshold != tc.threshold {
			t.Fatalf("%s: expected %s/%v, got %s/%v", tc.name, tc.severity, tc.threshold, got[0].Severity, got[0].Threshold)
		}
		if got[0].Message != tc.message {
			t.Fatalf("%s: unexpected message %q", tc.name, got[0].Message)
		}
	}
}

func TestGenerator_IntakeJustBelowCutoff(t *testing.T) {
	g := newTestGenerator(DefaultGeneratorConfig())
	a := animals.Animal{ID: "cat-2", Name: "Luna"}

	// promedios 39.96 g y 129.96 ml: por debajo de 40 y 130
	ms := []metrics.DailyMetric{
		day("cat-2", 2, nil, 39.9, 129.9),
		day("cat-2", 1, nil, 40, 130),
		day("cat-2", 0, nil, 39.98, 129.98),
	}

	got := g.Generate([]animals.Animal{a}, map[string][]metrics.DailyMetric{"cat-2": ms}, genToday)
	if len(got) != 2 {
		t.Fatalf("expected low_food and low_water alerts, got %#v", got)
	}
	if got[0].Type != AlertLowFood || got[0].Severity != SeverityWarning || got[0].Value != 40 {
		t.Fatalf("unexpected food alert %#v", got[0])
	}
	if got[1].Type != AlertLowWater || got[1].Severity != SeverityWarning || got[1].Value != 130 {
		t.Fatalf("unexpected water alert %#v", got[1])
	}
}

func TestGenerator_IntakeAtCutoff_NoAlert(t *testing.T) {
	g := newTestGenerator(DefaultGeneratorConfig())
	a := animals.Animal{ID: "cat-2", Name: "Luna"}

	ms := []metrics.DailyMetric{
		day("cat-2", 2, nil, 39.9, 129.9),
		day("cat-2", 1, nil, 40.1, 130.1),
		day("cat-2", 0, nil, 40, 130),
	}

	if got := g.Generate([]animals.Animal{a}, map[string][]metrics.DailyMetric{"cat-2": ms}, genToday); len(got) != 0 {
		t.Fatalf("expected no alert for averages of exactly 40 / 130, got %#v", got)
	}
}

func TestGenerator_WeightTrendJustOverThreshold(t *testing.T) {
	g := newTestGenerator(DefaultGeneratorConfig())
	a := animals.Animal{ID: "cat-1", Name: "Whiskers"}
	ms := []metrics.DailyMetric{
		day("cat-1", 20, f(4.5), 60, 160),
		day("cat-1", 0, f(4.804), 60, 160),
	}

	got := g.Generate([]animals.Animal{a}, map[string][]metrics.DailyMetric{"cat-1": ms}, genToday)
	if len(got) != 1 || got[0].Type != AlertWeightChange || got[0].Severity != SeverityWarning {
		t.Fatalf("expected a weight_change warning for +0.304 kg, got %#v", got)
	}
	if got[0].Value != 0.3 {
		t.Fatalf("expected display value 0.3, got %v", got[0].Value)
	}
}

func TestGenerator_SingleWeightPoint_NoTrend(t *testing.T) {
	g := newTestGenerator(DefaultGeneratorConfig())
	a := animals.Animal{ID: "cat-1", Name: "Whiskers"}
	ms := []metrics.DailyMetric{day("cat-1", 0, f(9), 60, 160)}

	if got := g.Generate([]animals.Animal{a}, map[string][]metrics.DailyMetric{"cat-1": ms}, genToday); len(got) != 0 {
		t.Fatalf("expected no alert with a single weight point, got %#v", got)
	}
}

func TestGenerator_NoHistory_NoAlerts(t *testing.T) {
	g := newTestGenerator(DefaultGeneratorConfig())
	a := animals.Animal{ID: "cat-1", Name: "Whiskers"}

	if got := g.Generate([]animals.Animal{a}, nil, genToday); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestGenerator_OrderFollowsAnimals_FreshIDs(t *testing.T) {
	g := newTestGenerator(DefaultGeneratorConfig())
	list := []animals.Animal{{ID: "b", Name: "B"}, {ID: "a", Name: "A"}}
	history := map[string][]metrics.DailyMetric{
		"a": {day("a", 0, nil, 10, 160)},
		"b": {day("b", 0, nil, 10, 160)},
	}

	got := g.Generate(list, history, genToday)
	if len(got) != 2 || got[0].AnimalID != "b" || got[1].AnimalID != "a" {
		t.Fatalf("expected alerts in animal order, got %#v", got)
	}

	again := g.Generate(list, history, genToday)
	if again[0].ID == got[0].ID {
		t.Fatalf("expected fresh ids on each run")
	}
}

func TestGeneratorConfig_Defaults(t *testing.T) {
	g := NewGenerator(GeneratorConfig{TrendThresholdKg: 0.5})
	cfg := g.Config()
	if cfg.IntakeWindowDays != 3 || cfg.TrendWindowDays != 21 {
		t.Fatalf("expected default windows, got %#v", cfg)
	}
	if cfg.TrendThresholdKg != 0.5 || cfg.TrendCriticalKg != 0.6 {
		t.Fatalf("unexpected thresholds %#v", cfg)
	}
}
