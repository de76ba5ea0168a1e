// Package pricing turns proposed estimate-line specs into priced estimate
// items. It is pure computation: rate and markup lookups come in as
// functions, and pricing always completes: a line that cannot be priced
// comes back at zero, flagged for manual review, never as an error.
package pricing

import (
	"math"

	"repairflow/internal/domain/entities"
)

// Spec is one proposed estimate line before pricing.
type Spec struct {
	ItemType      entities.ItemType
	Description   string
	Quantity      float64
	LaborTime     float64
	Cost          *float64
	PricePerUnit  *float64
	PartNumber    string
	SavedThrough  string
	Additional    bool
	PackageAdd    float64
	FeeAmount     float64
	FeePercentage float64
	BaseRef       *LineRef
}

// LineRef identifies the base line a fee applies to. The reference is
// resolved by matching description, type and quantity against the lines of
// the same job item.
type LineRef struct {
	Description string
	ItemType    entities.ItemType
	Quantity    float64
}

// Context carries the per-job-item inputs pricing needs.
type Context struct {
	JobItemID    string
	PackagePrice *float64
	LaborPrice   *float64

	// TechnicianRate is the assigned technician's hourly rate; labor cost
	// falls back to DefaultHourlyRate without one.
	TechnicianRate    *float64
	DefaultHourlyRate float64

	// LaborRate is the external labor-rate lookup (hours in, per-hour price
	// out). FallbackLaborRate applies when the lookup has no answer.
	LaborRate         func(hours float64) (float64, bool)
	FallbackLaborRate float64

	// Markup is the external shop markup table (part cost in, sell price
	// out).
	Markup func(cost float64) (float64, bool)

	// NewID mints line identifiers. Optional; lines are left without IDs
	// when nil.
	NewID func() string
}

// Result is the pricing outcome for a batch of specs.
type Result struct {
	Items       []entities.EstimateItem
	NeedsReview bool
}

// PriceSource is one strategy for producing a unit price. Sources are tried
// in order; the first one with an answer wins, which makes price precedence
// an explicit, testable list.
type PriceSource func(spec Spec) (float64, bool)

// PartPriceSources is the precedence list for independently priced part
// lines: an explicit per-unit override beats the shop markup on cost.
func PartPriceSources(ctx Context) []PriceSource {
	return []PriceSource{
		func(s Spec) (float64, bool) {
			if s.PricePerUnit != nil {
				return *s.PricePerUnit, true
			}
			return 0, false
		},
		func(s Spec) (float64, bool) {
			if s.Cost != nil && *s.Cost != 0 && ctx.Markup != nil {
				return ctx.Markup(*s.Cost)
			}
			return 0, false
		},
	}
}

// LaborPriceSources is the precedence list for labor lines: an aggregate
// labor price split by the quantity divisor, then a per-line override, then
// the external rate lookup, then the flat fallback rate.
func LaborPriceSources(ctx Context, divisor float64) []PriceSource {
	return []PriceSource{
		func(Spec) (float64, bool) {
			if ctx.LaborPrice != nil && divisor != 0 {
				return *ctx.LaborPrice / divisor, true
			}
			return 0, false
		},
		func(s Spec) (float64, bool) {
			if s.PricePerUnit != nil {
				return *s.PricePerUnit, true
			}
			return 0, false
		},
		func(s Spec) (float64, bool) {
			if ctx.LaborRate != nil {
				return ctx.LaborRate(laborQuantity(s))
			}
			return 0, false
		},
		func(Spec) (float64, bool) {
			if ctx.FallbackLaborRate > 0 {
				return ctx.FallbackLaborRate, true
			}
			return 0, false
		},
	}
}

// PackageDetails is the allocation basis for a bundled package price.
type PackageDetails struct {
	// PartLineSum is Σ cost·quantity over the bundled (non-additional) part
	// lines.
	PartLineSum float64
	// PartsTotal is the package price minus the labor share; it is the
	// amount the part lines must add up to.
	PartsTotal float64
	// TotalQty is the summed quantity of the bundled part lines.
	TotalQty float64
}

// BuildPackageDetails computes the allocation basis, or nil when the job
// item has no package price. Existing lines are counted alongside the new
// specs so repricing an already-populated item allocates over everything.
func BuildPackageDetails(ctx Context, specs []Spec, existing []entities.EstimateItem) *PackageDetails {
	if ctx.PackagePrice == nil {
		return nil
	}

	var pd PackageDetails
	var laborTotal float64
	for _, s := range specs {
		switch s.ItemType {
		case entities.ItemTypePart:
			if s.Additional {
				continue
			}
			pd.TotalQty += s.Quantity
			if s.Cost != nil {
				pd.PartLineSum += *s.Cost * s.Quantity
			}
		case entities.ItemTypeLabor:
			if ctx.LaborPrice == nil {
				qty := laborQuantity(s)
				var rate float64
				var ok bool
				if ctx.LaborRate != nil {
					rate, ok = ctx.LaborRate(qty)
				}
				if !ok {
					rate = ctx.FallbackLaborRate
				}
				laborTotal += qty * rate
			}
		}
	}
	for _, ei := range existing {
		switch ei.ItemType {
		case entities.ItemTypePart:
			if ei.Additional {
				continue
			}
			pd.TotalQty += ei.Quantity
			pd.PartLineSum += ei.Cost * ei.Quantity
		case entities.ItemTypeLabor:
			if ctx.LaborPrice == nil {
				laborTotal += ei.Quantity * ei.PricePerUnit
			}
		}
	}
	if ctx.LaborPrice != nil {
		laborTotal = *ctx.LaborPrice
	}
	pd.PartsTotal = *ctx.PackagePrice - laborTotal
	return &pd
}

// DerivedLineItemPrice allocates a bundled part line's share of the package
// remainder as a per-unit price. Lines share proportionally to their
// cost·quantity contribution; with no cost information the remainder is
// split evenly by quantity, or assigned whole when there is no quantity
// either. Never negative.
func DerivedLineItemPrice(cost float64, pd PackageDetails) float64 {
	var price float64
	if pd.PartLineSum == 0 {
		if pd.TotalQty != 0 {
			price = pd.PartsTotal / pd.TotalQty
		} else {
			price = pd.PartsTotal
		}
	} else {
		price = cost / pd.PartLineSum * pd.PartsTotal
	}
	if price < 0 {
		return 0
	}
	return price
}

// PriceItems prices a batch of specs for one job item. Fees are handled in a
// second pass so base-line references can resolve against lines created in
// the same batch.
func PriceItems(ctx Context, specs []Spec, existing []entities.EstimateItem) Result {
	pd := BuildPackageDetails(ctx, specs, existing)
	partSources := PartPriceSources(ctx)
	laborSources := LaborPriceSources(ctx, laborDivisor(ctx, specs))

	var res Result
	for _, s := range specs {
		switch s.ItemType {
		case entities.ItemTypePart:
			res.add(pricePart(ctx, s, pd, partSources), &res.NeedsReview)
		case entities.ItemTypeLabor:
			res.add(priceLabor(ctx, s, laborSources), &res.NeedsReview)
		}
	}
	for _, s := range specs {
		if s.ItemType != entities.ItemTypeFees {
			continue
		}
		res.add(priceFee(ctx, s, res.Items, existing), &res.NeedsReview)
	}
	return res
}

func (r *Result) add(item entities.EstimateItem, review *bool) {
	if item.NeedsReview {
		*review = true
	}
	r.Items = append(r.Items, item)
}

func pricePart(ctx Context, s Spec, pd *PackageDetails, sources []PriceSource) entities.EstimateItem {
	item := newItem(ctx, s)

	var price float64
	priced := false
	if pd != nil && !s.Additional {
		if s.Cost != nil {
			price = DerivedLineItemPrice(*s.Cost, *pd)
			price += s.PackageAdd
			priced = true
		}
	} else {
		for _, src := range sources {
			if v, ok := src(s); ok {
				price = v
				priced = true
				break
			}
		}
	}
	if !priced {
		item.NeedsReview = true
	}
	item.PricePerUnit = Round2(price)
	return item
}

func priceLabor(ctx Context, s Spec, sources []PriceSource) entities.EstimateItem {
	item := newItem(ctx, s)
	item.Quantity = laborQuantity(s)
	if ctx.TechnicianRate != nil {
		item.Cost = *ctx.TechnicianRate
	} else {
		item.Cost = ctx.DefaultHourlyRate
	}

	var price float64
	priced := false
	for _, src := range sources {
		if v, ok := src(s); ok {
			price = v
			priced = true
			break
		}
	}
	if !priced {
		item.NeedsReview = true
	}
	item.PricePerUnit = Round2(price)
	return item
}

func priceFee(ctx Context, s Spec, created, existing []entities.EstimateItem) entities.EstimateItem {
	item := newItem(ctx, s)
	item.FeeAmount = Round2(s.FeeAmount)
	item.FeePercentage = s.FeePercentage
	if s.BaseRef != nil {
		if base := matchLine(*s.BaseRef, created, existing); base != nil {
			item.BaseItemID = base.ID
		}
	}
	return item
}

func matchLine(ref LineRef, created, existing []entities.EstimateItem) *entities.EstimateItem {
	for _, pool := range [][]entities.EstimateItem{created, existing} {
		for i := range pool {
			ei := &pool[i]
			if ei.Description == ref.Description && ei.ItemType == ref.ItemType && ei.Quantity == ref.Quantity {
				return ei
			}
		}
	}
	return nil
}

func newItem(ctx Context, s Spec) entities.EstimateItem {
	item := entities.EstimateItem{
		JobItemID:    ctx.JobItemID,
		ItemType:     s.ItemType,
		Description:  s.Description,
		Quantity:     s.Quantity,
		PartNumber:   s.PartNumber,
		SavedThrough: s.SavedThrough,
		Additional:   s.Additional,
		PackageAdd:   s.PackageAdd,
	}
	if s.Cost != nil {
		item.Cost = *s.Cost
	}
	if ctx.NewID != nil {
		item.ID = ctx.NewID()
	}
	return item
}

// laborDivisor is the quantity-weighted share divisor used to split an
// aggregate labor price across labor lines.
func laborDivisor(ctx Context, specs []Spec) float64 {
	if ctx.LaborPrice == nil {
		return 0
	}
	var d float64
	for _, s := range specs {
		if s.ItemType == entities.ItemTypeLabor {
			d += laborQuantity(s)
		}
	}
	return d
}

func laborQuantity(s Spec) float64 {
	if s.Quantity != 0 {
		return s.Quantity
	}
	return s.LaborTime
}

// Round2 rounds a monetary amount to cents. Applied at the point values are
// persisted.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
