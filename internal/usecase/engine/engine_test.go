package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/unitix/internal/domain"
	"github.com/aalvaropc/unitix/internal/infra/builtin"
)

func newBuiltinEngine(t *testing.T) (*Engine, *domain.Registry) {
	t.Helper()
	reg, err := builtin.Registry()
	require.NoError(t, err)
	return New(reg), reg
}

func TestConvert_RoundTripForEveryNonInversePair(t *testing.T) {
	e, reg := newBuiltinEngine(t)
	values := []float64{1, 2.5, -40, 1234.5678, 0.001}

	for _, cat := range reg.ListCategories() {
		units, err := reg.ListUnits(cat)
		require.NoError(t, err)

		for _, u1 := range units {
			for _, u2 := range units {
				d1, _ := reg.Definition(cat, u1)
				d2, _ := reg.Definition(cat, u2)
				if d1.IsInverse() || d2.IsInverse() {
					continue
				}
				for _, x := range values {
					there, err := e.Convert(x, u1, u2, cat)
					require.NoError(t, err)
					back, err := e.Convert(there, u2, u1, cat)
					require.NoError(t, err)
					assert.InEpsilon(t, x, back, 1e-6, "%s: %v %s -> %s -> %s", cat, x, u1, u2, u1)
				}
			}
		}
	}
}

func TestConvert_IdentityIsExact(t *testing.T) {
	e, reg := newBuiltinEngine(t)

	for _, cat := range reg.ListCategories() {
		units, _ := reg.ListUnits(cat)
		for _, u := range units {
			for _, x := range []float64{0, 1, -17.3, 0.1, 9.461e15} {
				got, err := e.Convert(x, u, u, cat)
				require.NoError(t, err)
				assert.Equal(t, x, got, "%s/%s", cat, u)
			}
		}
	}
}

func TestConvert_TemperatureExactness(t *testing.T) {
	e, _ := newBuiltinEngine(t)

	cases := []struct {
		value    float64
		from, to string
		want     float64
	}{
		{0, "Celsius", "Fahrenheit", 32},
		{100, "Celsius", "Kelvin", 373.15},
		{32, "Fahrenheit", "Celsius", 0},
	}
	for _, c := range cases {
		got, err := e.Convert(c.value, c.from, c.to, "Temperature")
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%v %s -> %s", c.value, c.from, c.to)
	}

	got, err := e.Convert(-40, "Celsius", "Fahrenheit", "Temperature")
	require.NoError(t, err)
	assert.InDelta(t, -40, got, 1e-9)

	got, err = e.Convert(212, "Fahrenheit", "Kelvin", "Temperature")
	require.NoError(t, err)
	assert.InDelta(t, 373.15, got, 1e-9)
}

func TestConvert_LinearScaling(t *testing.T) {
	e, reg := newBuiltinEngine(t)

	for _, cat := range reg.ListCategories() {
		if cat == builtin.Temperature || cat == builtin.FuelEconomy {
			continue
		}
		units, _ := reg.ListUnits(cat)
		for _, u1 := range units {
			for _, u2 := range units {
				x := 3.75
				single, err := e.Convert(x, u1, u2, cat)
				require.NoError(t, err)
				double, err := e.Convert(2*x, u1, u2, cat)
				require.NoError(t, err)
				assert.Equal(t, 2*single, double, "%s: %s -> %s", cat, u1, u2)
			}
		}
	}
}

func TestConvert_FuelEconomyInverse(t *testing.T) {
	e, _ := newBuiltinEngine(t)
	const cat = "Fuel Economy"

	got, err := e.Convert(100, "Miles per gallon (US)", "Liter per 100 kilometers", cat)
	require.NoError(t, err)
	assert.InDelta(t, 2.35215, got, 1e-9)

	got, err = e.Convert(2.35215, "Liter per 100 kilometers", "Miles per gallon (US)", cat)
	require.NoError(t, err)
	assert.InDelta(t, 100, got, 1e-9)

	got, err = e.Convert(10, "Liter per 100 kilometers", "Liter per 100 kilometers", cat)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)

	got, err = e.Convert(10, "Kilometer per liter", "Miles per gallon (US)", cat)
	require.NoError(t, err)
	assert.InDelta(t, 4.25144, got, 1e-9)
}

func TestConvert_BothInverseUnits(t *testing.T) {
	reg, err := domain.NewRegistry(domain.Category{
		Name: "Consumption",
		Units: []domain.Unit{
			{Name: "L/100km", Def: domain.InverseLinear(100)},
			{Name: "L/km", Def: domain.InverseLinear(1)},
		},
	})
	require.NoError(t, err)

	got, err := New(reg).Convert(5, "L/100km", "L/km", "Consumption")
	require.NoError(t, err)
	assert.InDelta(t, 0.05, got, 1e-12)
}

func TestConvert_ZeroBaseIsDivisionByZero(t *testing.T) {
	reg, err := domain.NewRegistry(domain.Category{
		Name: "Broken",
		Units: []domain.Unit{
			{Name: "One", Def: domain.Linear(1)},
			{Name: "Zero", Def: domain.Linear(0)},
		},
	})
	require.NoError(t, err)

	_, err = New(reg).Convert(1, "One", "Zero", "Broken")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindDivisionByZero), "got %v", err)
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
}

func TestConvert_ZeroValueIntoInverseUnit(t *testing.T) {
	e, _ := newBuiltinEngine(t)

	_, err := e.Convert(0, "Miles per gallon (US)", "Liter per 100 kilometers", "Fuel Economy")
	assert.True(t, domain.IsKind(err, domain.KindDivisionByZero), "got %v", err)
}

func TestConvert_UnknownNames(t *testing.T) {
	e, _ := newBuiltinEngine(t)

	_, err := e.Convert(1, "Meter", "Foot", "NotACategory")
	assert.True(t, domain.IsKind(err, domain.KindUnknownCategory), "got %v", err)

	_, err = e.Convert(1, "Meter", "NotAUnit", "Length")
	assert.True(t, domain.IsKind(err, domain.KindUnknownUnit), "got %v", err)
}

func TestConvertInput(t *testing.T) {
	e, _ := newBuiltinEngine(t)

	cases := []struct {
		name   string
		raw    string
		status domain.OutcomeStatus
		value  float64
	}{
		{"number", "1", domain.OutcomeOK, 1 / 0.3048},
		{"padded", "  2 ", domain.OutcomeOK, 2 / 0.3048},
		{"exponent", "1e3", domain.OutcomeOK, 1000 / 0.3048},
		{"letters", "abc", domain.OutcomeInvalid, 0},
		{"nan", "NaN", domain.OutcomeInvalid, 0},
		{"inf", "inf", domain.OutcomeInvalid, 0},
		{"out of range", "1e400", domain.OutcomeInvalid, 0},
		{"empty", "", domain.OutcomeEmpty, 0},
		{"blank", "   ", domain.OutcomeEmpty, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := e.ConvertInput(c.raw, "Meter", "Foot", "Length")
			require.NoError(t, err)
			assert.Equal(t, c.status, out.Status)
			if c.status == domain.OutcomeOK {
				assert.InEpsilon(t, c.value, out.Value, 1e-12)
			}
		})
	}
}

func TestConvertInput_LookupErrorsStillFail(t *testing.T) {
	e, _ := newBuiltinEngine(t)

	_, err := e.ConvertInput("abc", "Meter", "Foot", "Nope")
	assert.True(t, domain.IsKind(err, domain.KindUnknownCategory), "got %v", err)
}

func TestParseValue(t *testing.T) {
	v, ok := ParseValue("-12.5")
	assert.True(t, ok)
	assert.Equal(t, -12.5, v)

	for _, s := range []string{"+Inf", "-inf", "nan", "12abc"} {
		_, ok = ParseValue(s)
		assert.False(t, ok, s)
	}
}
