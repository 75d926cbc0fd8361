package homeassistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"pet-health-dashboard/internal/domain/resources"
)

// BowlEntity asocia el sensor de nivel de un plato a una mascota.
type BowlEntity struct {
	AnimalID      string
	EntityID      string
	CapacityGrams float64
}

// Entities indica qué sensores leer para cada recurso compartido.
type Entities struct {
	Bowls              []BowlEntity
	FountainEntity     string
	FountainCapacityMl float64
	LitterWasteEntity  string
	LitterHopperEntity string
}

// ResourcesRepo arma el snapshot leyendo sensores en cada Get. Es de solo lectura.
type ResourcesRepo struct {
	client   *Client
	entities Entities
}

func NewResourcesRepo(client *Client, entities Entities) *ResourcesRepo {
	return &ResourcesRepo{client: client, entities: entities}
}

func (r *ResourcesRepo) Get(ctx context.Context) (resources.SharedResources, error) {
	out := resources.SharedResources{
		FoodBowls: make([]resources.FoodBowl, 0, len(r.entities.Bowls)),
		WaterFountain: resources.WaterFountain{
			CapacityMl: r.entities.FountainCapacityMl,
		},
	}

	for _, b := range r.entities.Bowls {
		lvl, err := r.client.Percent(ctx, b.EntityID)
		if err != nil {
			return resources.SharedResources{}, err
		}
		out.FoodBowls = append(out.FoodBowls, resources.FoodBowl{
			AnimalID:      b.AnimalID,
			Level:         lvl,
			CapacityGrams: b.CapacityGrams,
		})
	}

	var err error
	if out.WaterFountain.Level, err = r.optionalPercent(ctx, r.entities.FountainEntity); err != nil {
		return resources.SharedResources{}, err
	}
	if out.LitterTray.WasteLevel, err = r.optionalPercent(ctx, r.entities.LitterWasteEntity); err != nil {
		return resources.SharedResources{}, err
	}
	if out.LitterTray.HopperLevel, err = r.optionalPercent(ctx, r.entities.LitterHopperEntity); err != nil {
		return resources.SharedResources{}, err
	}
	return out, nil
}

func (r *ResourcesRepo) Replace(ctx context.Context, s resources.SharedResources) error {
	return resources.ErrReadOnly
}

// una entidad sin configurar se reporta como 0
func (r *ResourcesRepo) optionalPercent(ctx context.Context, entityID string) (float64, error) {
	if strings.TrimSpace(entityID) == "" {
		return 0, nil
	}
	return r.client.Percent(ctx, entityID)
}

// ParseBowls lee "animalID:entity_id:capacity_g" separados por coma.
func ParseBowls(s string) ([]BowlEntity, error) {
	out := make([]BowlEntity, 0)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.Split(item, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid bowl mapping %q (want animalID:entity:capacity)", item)
		}
		capacity, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil || capacity < 0 {
			return nil, fmt.Errorf("invalid bowl capacity in %q", item)
		}
		b := BowlEntity{
			AnimalID:      strings.TrimSpace(parts[0]),
			EntityID:      strings.TrimSpace(parts[1]),
			CapacityGrams: capacity,
		}
		if b.AnimalID == "" || b.EntityID == "" {
			return nil, fmt.Errorf("invalid bowl mapping %q", item)
		}
		out = append(out, b)
	}
	return out, nil
}
