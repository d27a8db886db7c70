package collaborators

import (
	"context"
	"strings"
	"time"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	motorMinimumContribution = 150.0
	motorComprehensiveRate   = 0.025
	travelDailyRate          = 1.5
	travelAnnualRate         = 45.0
)

// MockPlanGenerator prices plans from the risk inputs alone, so the same
// inputs always yield the same ordered list. It also serves as the fallback
// when the plan service is down.
type MockPlanGenerator struct{}

var _ interfaces.IPlanGenerator = MockPlanGenerator{}

func (MockPlanGenerator) Generate(_ context.Context, in interfaces.RiskInputs) ([]entities.InsurancePlan, error) {
	switch in.InsuranceType {
	case entities.InsuranceTypeTravel:
		return travelPlans(in.Travel), nil
	default:
		return motorPlans(in.Vehicle), nil
	}
}

func motorPlans(v *entities.Vehicle) []entities.InsurancePlan {
	var (
		value        float64
		agency       bool
		priorClaims  bool
		vehicleYears int
	)
	if v != nil {
		value = v.Value
		agency = v.AgencyRepair
		priorClaims = v.HasPriorClaims
		if v.Year > 0 {
			vehicleYears = time.Now().UTC().Year() - v.Year
		}
	}

	comprehensive := value * motorComprehensiveRate
	if comprehensive < motorMinimumContribution {
		comprehensive = motorMinimumContribution
	}
	comprehensive *= factorAgencyRepair(agency) * factorClaims(priorClaims) * factorVehicleAge(vehicleYears)
	thirdParty := 45.0 * factorClaims(priorClaims)

	return []entities.InsurancePlan{
		{
			ID:          "motor-tpl",
			Provider:    "Solidarity Takaful",
			Name:        "Third Party Liability",
			BasePremium: round3(thirdParty),
			Features:    []string{"Third party bodily injury", "Third party property damage"},
		},
		{
			ID:          "motor-comprehensive",
			Provider:    "Takaful International",
			Name:        "Comprehensive",
			BasePremium: round3(comprehensive),
			Features:    []string{"Own damage", "Third party liability", "Roadside assistance"},
			AddOns:      []entities.AddOn{{Name: "Replacement car", Price: 25}},
		},
		{
			ID:          "motor-comprehensive-plus",
			Provider:    "Takaful International",
			Name:        "Comprehensive Plus",
			BasePremium: round3(comprehensive * 1.3),
			Features:    []string{"Own damage", "Third party liability", "Roadside assistance", "GCC cover", "Personal accident"},
			AddOns:      []entities.AddOn{{Name: "Replacement car", Price: 25}, {Name: "Windscreen", Price: 15}},
		},
	}
}

func travelPlans(tc *entities.TravelCriteria) []entities.InsurancePlan {
	criteria := entities.TravelCriteria{Adults: 1}
	if tc != nil {
		criteria = *tc
	}

	weight := float64(criteria.Adults) + 0.5*float64(criteria.Children) + 1.5*float64(criteria.Seniors)
	if weight <= 0 {
		weight = 1
	}
	var base float64
	if criteria.TravelType == entities.TravelTypeAnnual {
		base = travelAnnualRate * weight
	} else {
		base = travelDailyRate * float64(tripDays(criteria.DepartureDate, criteria.ReturnDate)) * weight
	}
	base *= factorDestination(criteria.Destination)

	return []entities.InsurancePlan{
		{
			ID:          "travel-essential",
			Provider:    "Solidarity Takaful",
			Name:        "Travel Essential",
			BasePremium: round3(base),
			Features:    []string{"Emergency medical", "Trip cancellation"},
		},
		{
			ID:          "travel-premier",
			Provider:    "Takaful International",
			Name:        "Travel Premier",
			BasePremium: round3(base * 1.8),
			Features:    []string{"Emergency medical", "Trip cancellation", "Baggage loss", "Flight delay"},
		},
	}
}

func factorAgencyRepair(agency bool) float64 {
	if agency {
		return 1.15
	}
	return 1.00
}

func factorClaims(prior bool) float64 {
	if prior {
		return 1.25
	}
	return 1.00
}

func factorVehicleAge(years int) float64 {
	switch {
	case years <= 3:
		return 1.00
	case years <= 7:
		return 1.10
	default:
		return 1.25
	}
}

func factorDestination(destination string) float64 {
	switch d := strings.ToUpper(strings.TrimSpace(destination)); {
	case d == "WORLDWIDE" || d == "USA" || d == "CANADA":
		return 1.40
	case d == "GCC" || d == "SAUDI ARABIA" || d == "UAE":
		return 0.80
	default:
		return 1.00
	}
}

// tripDays counts both ends; unparseable dates count as a single day.
func tripDays(departure, ret string) int {
	from, err1 := time.Parse(entities.DateLayout, departure)
	to, err2 := time.Parse(entities.DateLayout, ret)
	if err1 != nil || err2 != nil || to.Before(from) {
		return 1
	}
	return int(to.Sub(from).Hours()/24) + 1
}

func round3(x float64) float64 {
	return decimal.NewFromFloat(x).Round(3).InexactFloat64()
}
