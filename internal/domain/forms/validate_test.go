package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidate_ValidFormsPass(t *testing.T) {
	assert.Nil(t, Validate(Announcement{
		Title:    "Office closed Friday",
		Category: "general",
		Body:     "The office is closed for maintenance.",
	}))

	assert.Nil(t, Validate(PayGroup{Name: "HQ monthly", Frequency: "monthly", PayDay: 25}))

	assert.Nil(t, Validate(Asset{
		Name:            "MacBook Pro",
		SerialNumber:    "C02XL0",
		Category:        "laptop",
		PurchasePrice:   "1200",
		PurchaseDate:    "2023-06-15",
		UsefulLifeYears: 4,
	}))
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	errs := Validate(Department{})
	require.NotEmpty(t, errs)
	assert.Contains(t, fieldNames(errs), "name")
}

func TestValidate_PayFrequencyEnum(t *testing.T) {
	for _, ok := range []string{"weekly", "biweekly", "semi-monthly", "monthly"} {
		assert.Nil(t, Validate(PayFrequency{Name: ok}), "frequency %q should pass", ok)
	}

	errs := Validate(PayFrequency{Name: "yearly"})
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Contains(t, errs[0].Message, "must be one of")
}

func TestValidate_SalaryBreakdownPercentBounds(t *testing.T) {
	assert.Nil(t, Validate(SalaryBreakdown{
		Name:             "Standard",
		BasicPercent:     60,
		HousingPercent:   20,
		TransportPercent: 10,
		OtherPercent:     10,
	}))

	errs := Validate(SalaryBreakdown{Name: "Broken", BasicPercent: 150})
	require.Len(t, errs, 1)
	assert.Equal(t, "basicPercent", errs[0].Field)
	assert.Contains(t, errs[0].Message, "at most 100")

	errs = Validate(SalaryBreakdown{Name: "Broken", HousingPercent: -5})
	require.Len(t, errs, 1)
	assert.Equal(t, "housingPercent", errs[0].Field)
}

func TestValidate_CurrencyCoercion(t *testing.T) {
	base := Bonus{EmployeeID: "e-1", Reason: "Performance", PayrollMonth: "2025-03"}

	for _, ok := range []string{"1200", "450.50", "0.5", "9"} {
		b := base
		b.Amount = ok
		assert.Nil(t, Validate(b), "amount %q should pass", ok)
	}

	for _, bad := range []string{"12.345", "-50", "1,200", "abc", ""} {
		b := base
		b.Amount = bad
		errs := Validate(b)
		require.NotEmpty(t, errs, "amount %q should fail", bad)
		assert.Equal(t, "amount", errs[0].Field)
	}
}

func TestValidate_OnboardingProfile(t *testing.T) {
	errs := Validate(OnboardingProfile{
		FirstName:    "Ada",
		LastName:     "Obi",
		Email:        "not-an-email",
		StartDate:    "2025/01/01",
		DepartmentID: "d-1",
		JobRoleID:    "r-1",
		PayGroupID:   "pg-1",
	})

	names := fieldNames(errs)
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "startDate")
	assert.NotContains(t, names, "firstName")
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("450.50")
	require.NoError(t, err)
	assert.Equal(t, 450.50, v)
}
