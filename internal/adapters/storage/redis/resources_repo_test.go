package redis

import (
	"testing"

	"pet-health-dashboard/internal/domain/resources"
)

func TestEncodeDecode(t *testing.T) {
	in := resources.SharedResources{
		FoodBowls: []resources.FoodBowl{
			{AnimalID: "cat-1", Level: 65, CapacityGrams: 200},
			{AnimalID: "cat-2", Level: 45, CapacityGrams: 200},
		},
		WaterFountain: resources.WaterFountain{Level: 72, CapacityMl: 2000},
		LitterTray:    resources.LitterTray{WasteLevel: 78, HopperLevel: 35},
	}

	data, err := encode(in)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	out, err := decode(data)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(out.FoodBowls) != 2 || out.FoodBowls[1].AnimalID != "cat-2" || out.WaterFountain.CapacityMl != 2000 || out.LitterTray.HopperLevel != 35 {
		t.Fatalf("unexpected decoded snapshot %#v", out)
	}
}

func TestDecode_NullBowls(t *testing.T) {
	out, err := decode([]byte(`{"food_bowls":null,"water_fountain":{"current_level":10,"capacity_ml":1000}}`))
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if out.FoodBowls == nil {
		t.Fatalf("expected non-nil bowls")
	}
}

func TestDecode_Invalid(t *testing.T) {
	if _, err := decode([]byte(`{not json`)); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewResourcesRepo_DefaultKey(t *testing.T) {
	r := NewResourcesRepo(nil, "")
	if r.key != DefaultKey {
		t.Fatalf("expected default key, got %q", r.key)
	}
}
