package rates

import (
	"context"
	"log"
	"os"
	"strconv"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/pricing"
	"repairflow/internal/usecase/interfaces"
)

const defaultMarkupMultiplier = 1.4

// StaticProvider answers rate and markup lookups from shop configuration
// plus an env-tuned markup multiplier. Shops with an external rate matrix
// would get a different provider behind the same interface.

type StaticProvider struct {
	markup float64
}

var _ interfaces.IRateProvider = (*StaticProvider)(nil)

func NewStaticProvider() *StaticProvider {
	markup := defaultMarkupMultiplier
	if v := os.Getenv("PART_MARKUP_MULTIPLIER"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			log.Printf("[rates] invalid PART_MARKUP_MULTIPLIER=%q, using %.2f", v, markup)
		} else {
			markup = parsed
		}
	}
	return &StaticProvider{markup: markup}
}

func (p *StaticProvider) LaborRate(_ context.Context, shop entities.Shop, _ float64) (float64, error) {
	return shop.LaborRate, nil
}

func (p *StaticProvider) PartMarkup(_ context.Context, _ entities.Shop, cost float64) (float64, error) {
	if cost <= 0 {
		return 0, nil
	}
	return pricing.Round2(cost * p.markup), nil
}
