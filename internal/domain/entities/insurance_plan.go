package entities

// InsurancePlan is a priced option generated from the aggregate's risk inputs.
// Plans are never persisted; they are regenerated on every entry into the quote step.
//
// BasePremium is pre-VAT and pre-discount.
type InsurancePlan struct {
	ID          string   `json:"id"`
	Provider    string   `json:"provider"`
	Name        string   `json:"name"`
	BasePremium float64  `json:"base_premium"`
	Features    []string `json:"features"`
	AddOns      []AddOn  `json:"add_ons,omitempty"`
}

type AddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// FindPlan returns the plan with the given id from an ordered list.
func FindPlan(plans []InsurancePlan, id string) (InsurancePlan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return InsurancePlan{}, false
}
