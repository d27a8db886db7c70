package usecase

import (
	"encoding/json"
	"testing"

	"takaful_quote/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMotorInput() MotorInput {
	return MotorInput{
		PlateNumber:     "12345",
		Make:            "Toyota",
		Model:           "Camry",
		Year:            2022,
		Value:           9000,
		PolicyStartDate: "2026-05-11",
		PolicyEndDate:   "2027-05-10",
	}
}

func validTravelInput() TravelInput {
	return TravelInput{
		Destination:   "France",
		TravelType:    entities.TravelTypeSingleTrip,
		DepartureDate: "2026-06-01",
		ReturnDate:    "2026-06-10",
		Adults:        2,
	}
}

func TestPolicyEndDate(t *testing.T) {
	end, ok := PolicyEndDate("2026-05-11")
	require.True(t, ok)
	assert.Equal(t, "2027-05-10", end)

	end, ok = PolicyEndDate("2028-02-29")
	require.True(t, ok)
	assert.Equal(t, "2029-02-28", end)

	_, ok = PolicyEndDate("11/05/2026")
	assert.False(t, ok)
}

func TestTripDays(t *testing.T) {
	assert.Equal(t, 10, TripDays("2026-06-01", "2026-06-10"))
	assert.Equal(t, 1, TripDays("2026-06-01", "2026-06-01"))
	assert.Equal(t, 0, TripDays("2026-06-10", "2026-06-01"))
	assert.Equal(t, 0, TripDays("", "2026-06-01"))
}

func TestInputBuffer_MergeKeepsAbsentKeys(t *testing.T) {
	b := InputBuffer{Contact: ContactInput{FullName: "Ali", Mobile: "36000000"}}

	next, err := b.Merge(json.RawMessage(`{"contact":{"email":"ali@example.com"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Ali", next.Contact.FullName)
	assert.Equal(t, "36000000", next.Contact.Mobile)
	assert.Equal(t, "ali@example.com", next.Contact.Email)
	assert.Empty(t, b.Contact.Email, "merge works on a copy")

	_, err = b.Merge(json.RawMessage(`[1,2]`))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInputBuffer_MergeDerivesMotorFields(t *testing.T) {
	b := InputBuffer{Motor: validMotorInput()}

	next, err := b.Merge(json.RawMessage(`{"motor":{"plate_number":" ab 12 ","policy_start_date":"2026-07-01"}}`))
	require.NoError(t, err)
	assert.Equal(t, "AB12", next.Motor.PlateNumber)
	assert.Equal(t, "2027-06-30", next.Motor.PolicyEndDate)
	assert.Equal(t, "Camry", next.Motor.Model)

	next, err = next.Merge(json.RawMessage(`{"motor":{"make":"Nissan"}}`))
	require.NoError(t, err)
	assert.Empty(t, next.Motor.Model, "changing make resets model")

	next, err = next.Merge(json.RawMessage(`{"motor":{"make":"Honda","model":"Civic"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Civic", next.Motor.Model)
}

func TestInputBuffer_MergeDerivesAnnualReturnDate(t *testing.T) {
	b := InputBuffer{Travel: validTravelInput()}

	next, err := b.Merge(json.RawMessage(`{"travel":{"travel_type":"ANNUAL_MULTI_TRIP"}}`))
	require.NoError(t, err)
	assert.Equal(t, "2027-05-31", next.Travel.ReturnDate)

	d := next.Derived(entities.InsuranceTypeTravel)
	assert.Equal(t, 2, d.Travelers)
	assert.Equal(t, 365, d.TripDays)
}

func TestContactInput_Validate(t *testing.T) {
	c := ContactInput{FullName: "  Ali   Hasan ", Mobile: " 36000000 ", Email: " ALI@Example.com "}.Normalize()
	assert.Equal(t, "Ali Hasan", c.FullName)
	assert.Equal(t, "ali@example.com", c.Email)
	assert.Nil(t, c.Validate())

	verr := ContactInput{FullName: "A", Mobile: "36-000", Email: "nope"}.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "full_name")
	assert.Contains(t, verr.Fields, "mobile")
	assert.Equal(t, "must be a valid email", verr.Fields["email"])
}

func TestMotorInput_Validate(t *testing.T) {
	assert.Nil(t, validMotorInput().Validate(fixedNow))

	m := validMotorInput()
	m.PlateNumber = ""
	m.Value = 0
	m.Year = fixedNow.Year() + 2
	m.PolicyStartDate = "2026-05-01"
	verr := m.Validate(fixedNow)
	require.NotNil(t, verr)
	assert.Equal(t, "is required", verr.Fields["plate_number"])
	assert.Contains(t, verr.Fields, "value")
	assert.Equal(t, "must be at most 2027", verr.Fields["year"])
	assert.Equal(t, "must not be in the past", verr.Fields["policy_start_date"])

	m = validMotorInput()
	m.PolicyEndDate = "2026-05-11"
	verr = m.Validate(fixedNow)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "policy_end_date")
}

func TestTravelInput_Validate(t *testing.T) {
	assert.Nil(t, validTravelInput().Validate(fixedNow))

	tr := validTravelInput()
	tr.Adults = 0
	tr.ReturnDate = "2026-05-20"
	verr := tr.Validate(fixedNow)
	require.NotNil(t, verr)
	assert.Equal(t, "at least one traveler is required", verr.Fields["adults"])
	assert.Contains(t, verr.Fields, "return_date")

	tr = validTravelInput()
	tr.TravelType = "WEEKEND"
	verr = tr.Validate(fixedNow)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields["travel_type"], "must be one of")
}

func TestValidateCPR(t *testing.T) {
	assert.Nil(t, ValidateCPR("880101234"))
	assert.NotNil(t, ValidateCPR("12345"))
	assert.NotNil(t, ValidateCPR("88010123A"))
	assert.Equal(t, "is required", ValidateCPR("  ").Fields["cpr"])
}

func TestBufferFromQuote(t *testing.T) {
	q := entities.QuoteRequest{
		Customer: entities.Customer{FullName: "Ali", Mobile: "36000000"},
		Vehicle:  &entities.Vehicle{PlateNumber: "12345", Make: "Toyota", Value: 9000},
	}
	b := BufferFromQuote(q)
	assert.Equal(t, "Ali", b.Contact.FullName)
	assert.Equal(t, "Toyota", b.Motor.Make)
	assert.Equal(t, q.Vehicle.PlateNumber, b.Motor.Vehicle().PlateNumber)
	assert.Empty(t, b.Travel.Destination)
}
