package pricing

import (
	"fmt"
	"testing"

	"repairflow/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func testCtx() Context {
	n := 0
	return Context{
		JobItemID: "ji-1",
		NewID: func() string {
			n++
			return fmt.Sprintf("line-%d", n)
		},
	}
}

func lineTotal(items []entities.EstimateItem, itemType entities.ItemType) float64 {
	var sum float64
	for _, ei := range items {
		if ei.ItemType == itemType {
			sum += ei.Quantity * ei.PricePerUnit
		}
	}
	return sum
}

func TestPriceItems_PartSources(t *testing.T) {
	t.Run("per unit override wins over markup", func(t *testing.T) {
		ctx := testCtx()
		ctx.Markup = func(cost float64) (float64, bool) { return cost * 2, true }

		res := PriceItems(ctx, []Spec{
			{ItemType: entities.ItemTypePart, Quantity: 1, Cost: ptr(10), PricePerUnit: ptr(42)},
		}, nil)

		require.Len(t, res.Items, 1)
		assert.Equal(t, 42.0, res.Items[0].PricePerUnit)
		assert.False(t, res.NeedsReview)
	})

	t.Run("markup on cost", func(t *testing.T) {
		ctx := testCtx()
		ctx.Markup = func(cost float64) (float64, bool) { return cost * 2, true }

		res := PriceItems(ctx, []Spec{
			{ItemType: entities.ItemTypePart, Quantity: 3, Cost: ptr(10.125)},
		}, nil)

		require.Len(t, res.Items, 1)
		assert.Equal(t, 20.25, res.Items[0].PricePerUnit)
		assert.Equal(t, 10.125, res.Items[0].Cost)
	})

	t.Run("unpriceable part is flagged at zero", func(t *testing.T) {
		ctx := testCtx()

		res := PriceItems(ctx, []Spec{
			{ItemType: entities.ItemTypePart, Quantity: 1},
		}, nil)

		require.Len(t, res.Items, 1)
		assert.True(t, res.NeedsReview)
		assert.True(t, res.Items[0].NeedsReview)
		assert.Equal(t, 0.0, res.Items[0].PricePerUnit)
	})
}

func TestPriceItems_PackageAllocation(t *testing.T) {
	ctx := testCtx()
	ctx.PackagePrice = ptr(300)
	ctx.LaborRate = func(float64) (float64, bool) { return 50, true }

	specs := []Spec{
		{ItemType: entities.ItemTypeLabor, Description: "install", Quantity: 2},
		{ItemType: entities.ItemTypePart, Description: "pads", Quantity: 2, Cost: ptr(30)},
		{ItemType: entities.ItemTypePart, Description: "rotors", Quantity: 7, Cost: ptr(20)},
	}
	res := PriceItems(ctx, specs, nil)
	require.Len(t, res.Items, 3)
	require.False(t, res.NeedsReview)

	// Labor share is 2h * 50, leaving 200 for the part lines. Each part
	// line's extended price is its cost-weighted share, so the parts must add
	// up to the remainder exactly.
	assert.InDelta(t, 200.0, lineTotal(res.Items, entities.ItemTypePart), 0.01)
	assert.InDelta(t, 100.0, lineTotal(res.Items, entities.ItemTypeLabor), 0.01)

	// Weighted per-unit prices: pads 30/200*200, rotors 20/200*200.
	assert.InDelta(t, 30.0, res.Items[1].PricePerUnit, 0.01)
	assert.InDelta(t, 20.0, res.Items[2].PricePerUnit, 0.01)
}

func TestPriceItems_PackageZeroCostSplitsByQuantity(t *testing.T) {
	ctx := testCtx()
	ctx.PackagePrice = ptr(100)

	res := PriceItems(ctx, []Spec{
		{ItemType: entities.ItemTypePart, Description: "a", Quantity: 1, Cost: ptr(0)},
		{ItemType: entities.ItemTypePart, Description: "b", Quantity: 3, Cost: ptr(0)},
	}, nil)

	require.Len(t, res.Items, 2)
	assert.InDelta(t, 25.0, res.Items[0].PricePerUnit, 0.01)
	assert.InDelta(t, 25.0, res.Items[1].PricePerUnit, 0.01)
	assert.InDelta(t, 100.0, lineTotal(res.Items, entities.ItemTypePart), 0.01)
}

func TestPriceItems_PackageAddOnTop(t *testing.T) {
	ctx := testCtx()
	ctx.PackagePrice = ptr(50)

	res := PriceItems(ctx, []Spec{
		{ItemType: entities.ItemTypePart, Quantity: 1, Cost: ptr(10), PackageAdd: 5},
	}, nil)

	require.Len(t, res.Items, 1)
	// Single line takes the whole remainder plus its add-on.
	assert.InDelta(t, 55.0, res.Items[0].PricePerUnit, 0.01)
}

func TestPriceItems_AdditionalPartSkipsPackage(t *testing.T) {
	ctx := testCtx()
	ctx.PackagePrice = ptr(100)
	ctx.Markup = func(cost float64) (float64, bool) { return cost * 2, true }

	res := PriceItems(ctx, []Spec{
		{ItemType: entities.ItemTypePart, Description: "bundled", Quantity: 2, Cost: ptr(25)},
		{ItemType: entities.ItemTypePart, Description: "extra", Quantity: 1, Cost: ptr(10), Additional: true},
	}, nil)

	require.Len(t, res.Items, 2)
	// The additional line is priced through the normal sources and does not
	// dilute the bundle.
	assert.InDelta(t, 50.0, res.Items[0].PricePerUnit, 0.01)
	assert.InDelta(t, 20.0, res.Items[1].PricePerUnit, 0.01)
}

func TestPriceItems_LaborDivisorSplit(t *testing.T) {
	ctx := testCtx()
	ctx.LaborPrice = ptr(150)

	res := PriceItems(ctx, []Spec{
		{ItemType: entities.ItemTypeLabor, Description: "front", Quantity: 2},
		{ItemType: entities.ItemTypeLabor, Description: "rear", LaborTime: 1},
	}, nil)

	require.Len(t, res.Items, 2)
	assert.InDelta(t, 50.0, res.Items[0].PricePerUnit, 0.01)
	assert.InDelta(t, 50.0, res.Items[1].PricePerUnit, 0.01)
	assert.InDelta(t, 150.0, lineTotal(res.Items, entities.ItemTypeLabor), 0.01)
}

func TestPriceItems_LaborFallbacks(t *testing.T) {
	t.Run("rate lookup", func(t *testing.T) {
		ctx := testCtx()
		ctx.LaborRate = func(hours float64) (float64, bool) { return 90, true }

		res := PriceItems(ctx, []Spec{{ItemType: entities.ItemTypeLabor, LaborTime: 1.5}}, nil)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 90.0, res.Items[0].PricePerUnit)
		assert.Equal(t, 1.5, res.Items[0].Quantity)
	})

	t.Run("flat fallback when lookup has no answer", func(t *testing.T) {
		ctx := testCtx()
		ctx.LaborRate = func(float64) (float64, bool) { return 0, false }
		ctx.FallbackLaborRate = 80

		res := PriceItems(ctx, []Spec{{ItemType: entities.ItemTypeLabor, Quantity: 1}}, nil)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 80.0, res.Items[0].PricePerUnit)
	})

	t.Run("no source at all flags review", func(t *testing.T) {
		ctx := testCtx()

		res := PriceItems(ctx, []Spec{{ItemType: entities.ItemTypeLabor, Quantity: 1}}, nil)
		require.Len(t, res.Items, 1)
		assert.True(t, res.NeedsReview)
		assert.Equal(t, 0.0, res.Items[0].PricePerUnit)
	})

	t.Run("labor cost tracks technician rate", func(t *testing.T) {
		ctx := testCtx()
		ctx.TechnicianRate = ptr(65)
		ctx.FallbackLaborRate = 80

		res := PriceItems(ctx, []Spec{{ItemType: entities.ItemTypeLabor, Quantity: 1}}, nil)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 65.0, res.Items[0].Cost)

		ctx.TechnicianRate = nil
		ctx.DefaultHourlyRate = 55
		res = PriceItems(ctx, []Spec{{ItemType: entities.ItemTypeLabor, Quantity: 1}}, nil)
		assert.Equal(t, 55.0, res.Items[0].Cost)
	})
}

func TestPriceItems_FeeResolvesBaseLine(t *testing.T) {
	ctx := testCtx()
	ctx.Markup = func(cost float64) (float64, bool) { return cost * 2, true }

	res := PriceItems(ctx, []Spec{
		{ItemType: entities.ItemTypePart, Description: "filter", Quantity: 2, Cost: ptr(5)},
		{
			ItemType:      entities.ItemTypeFees,
			Description:   "disposal",
			FeeAmount:     4.125,
			FeePercentage: 10,
			BaseRef:       &LineRef{Description: "filter", ItemType: entities.ItemTypePart, Quantity: 2},
		},
	}, nil)

	require.Len(t, res.Items, 2)
	fee := res.Items[1]
	assert.Equal(t, entities.ItemTypeFees, fee.ItemType)
	assert.Equal(t, 4.13, fee.FeeAmount)
	assert.Equal(t, 10.0, fee.FeePercentage)
	assert.Equal(t, res.Items[0].ID, fee.BaseItemID)
}

func TestPriceItems_FeeBaseAgainstExistingLines(t *testing.T) {
	ctx := testCtx()
	existing := []entities.EstimateItem{
		{ID: "old-1", ItemType: entities.ItemTypeLabor, Description: "diag", Quantity: 1},
	}

	res := PriceItems(ctx, []Spec{
		{
			ItemType:  entities.ItemTypeFees,
			FeeAmount: 12,
			BaseRef:   &LineRef{Description: "diag", ItemType: entities.ItemTypeLabor, Quantity: 1},
		},
	}, existing)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "old-1", res.Items[0].BaseItemID)
}

func TestBuildPackageDetails(t *testing.T) {
	t.Run("nil without package price", func(t *testing.T) {
		assert.Nil(t, BuildPackageDetails(testCtx(), nil, nil))
	})

	t.Run("existing lines count toward the basis", func(t *testing.T) {
		ctx := testCtx()
		ctx.PackagePrice = ptr(200)
		existing := []entities.EstimateItem{
			{ItemType: entities.ItemTypePart, Quantity: 2, Cost: 10},
			{ItemType: entities.ItemTypeLabor, Quantity: 1, PricePerUnit: 40},
		}
		pd := BuildPackageDetails(ctx, nil, existing)
		require.NotNil(t, pd)
		assert.Equal(t, 20.0, pd.PartLineSum)
		assert.Equal(t, 2.0, pd.TotalQty)
		assert.Equal(t, 160.0, pd.PartsTotal)
	})

	t.Run("aggregate labor price overrides per line labor", func(t *testing.T) {
		ctx := testCtx()
		ctx.PackagePrice = ptr(200)
		ctx.LaborPrice = ptr(50)
		specs := []Spec{{ItemType: entities.ItemTypeLabor, Quantity: 10}}
		pd := BuildPackageDetails(ctx, specs, nil)
		require.NotNil(t, pd)
		assert.Equal(t, 150.0, pd.PartsTotal)
	})
}

func TestDerivedLineItemPrice_NeverNegative(t *testing.T) {
	pd := PackageDetails{PartLineSum: 100, PartsTotal: -50}
	assert.Equal(t, 0.0, DerivedLineItemPrice(30, pd))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.13, Round2(10.125))
	assert.Equal(t, -2.5, Round2(-2.5))
	assert.Equal(t, 0.0, Round2(0))
}
