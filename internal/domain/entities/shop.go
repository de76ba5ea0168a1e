package entities

// OptionSimplifiedStatus switches a shop to the simplified flow: the
// lifecycle state is inferred from job-item states on every save instead of
// being driven by explicit transition events.
const OptionSimplifiedStatus = "simplified_status"

// Shop is the repair shop configuration the core reads: tax defaults, labor
// rates and feature options. Everything else about shops lives outside this
// service.
type Shop struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	SalesTax          float64         `json:"sales_tax"`
	PartTax           *float64        `json:"part_tax,omitempty"`
	LaborTax          *float64        `json:"labor_tax,omitempty"`
	SuppliesTax       *float64        `json:"supplies_tax,omitempty"`
	FeeTax            *float64        `json:"fee_tax,omitempty"`
	DefaultHourlyRate float64         `json:"default_hourly_rate"`
	LaborRate         float64         `json:"labor_rate"`
	Options           map[string]bool `json:"options,omitempty"`
}

// OptionEnabled reports whether a feature option is switched on for the shop.
func (s Shop) OptionEnabled(name string) bool {
	return s.Options[name]
}

// SnapshotTaxRates resolves the per-category tax rates for a new job. Every
// category falls back to the shop sales tax except labor, which defaults to
// untaxed.
func (s Shop) SnapshotTaxRates() TaxRates {
	pick := func(v *float64, def float64) float64 {
		if v != nil {
			return *v
		}
		return def
	}
	return TaxRates{
		Part:     pick(s.PartTax, s.SalesTax),
		Labor:    pick(s.LaborTax, 0),
		Supplies: pick(s.SuppliesTax, s.SalesTax),
		Fee:      pick(s.FeeTax, s.SalesTax),
	}
}
