// Package builtin holds the compiled-in unit tables.
package builtin

import (
	"github.com/aalvaropc/unitix/internal/domain"
)

// Category names that need special handling in UI notes.
const (
	Temperature = "Temperature"
	FuelEconomy = "Fuel Economy"
	Currency    = "Currency"
)

// Categories returns a fresh copy of the built-in tables in display order.
func Categories() []domain.Category {
	lin := domain.Linear

	return []domain.Category{
		{
			Name: "Length",
			Units: []domain.Unit{
				{Name: "Nanometer", Def: lin(1e-9)},
				{Name: "Micrometer", Def: lin(1e-6)},
				{Name: "Millimeter", Def: lin(1e-3)},
				{Name: "Centimeter", Def: lin(1e-2)},
				{Name: "Inch", Def: lin(0.0254)},
				{Name: "Decimeter", Def: lin(0.1)},
				{Name: "Foot", Def: lin(0.3048)},
				{Name: "Yard", Def: lin(0.9144)},
				{Name: "Meter", Def: lin(1.0)},
				{Name: "Kilometer", Def: lin(1000.0)},
				{Name: "Mile", Def: lin(1609.344)},
				{Name: "Nautical mile", Def: lin(1852.0)},
				{Name: "Light year", Def: lin(9.461e+15)},
			},
		},
		{
			Name: "Area",
			Units: []domain.Unit{
				{Name: "Square millimeter", Def: lin(1e-6)},
				{Name: "Square centimeter", Def: lin(1e-4)},
				{Name: "Square inch", Def: lin(0.00064516)},
				{Name: "Square foot", Def: lin(0.09290304)},
				{Name: "Square yard", Def: lin(0.83612736)},
				{Name: "Square meter", Def: lin(1.0)},
				{Name: "Acre", Def: lin(4046.8564224)},
				{Name: "Hectare", Def: lin(10000.0)},
				{Name: "Square kilometer", Def: lin(1e+6)},
				{Name: "Square mile", Def: lin(2.59e+6)},
			},
		},
		{
			Name: "Volume",
			Units: []domain.Unit{
				{Name: "Milliliter", Def: lin(1e-6)},
				{Name: "Cubic centimeter", Def: lin(1e-6)},
				{Name: "Teaspoon (US)", Def: lin(4.92892e-6)},
				{Name: "Tablespoon (US)", Def: lin(1.47868e-5)},
				{Name: "Fluid ounce (US)", Def: lin(2.95735e-5)},
				{Name: "Cup (US)", Def: lin(2.36588e-4)},
				{Name: "Pint (US)", Def: lin(4.73176e-4)},
				{Name: "Quart (US)", Def: lin(9.46353e-4)},
				{Name: "Gallon (US)", Def: lin(0.00378541)},
				{Name: "Liter", Def: lin(0.001)},
				{Name: "Cubic meter", Def: lin(1.0)},
				{Name: "Cubic foot", Def: lin(0.0283168)},
				{Name: "Cubic yard", Def: lin(0.764555)},
			},
		},
		{
			Name: "Weight",
			Units: []domain.Unit{
				{Name: "Microgram", Def: lin(1e-9)},
				{Name: "Milligram", Def: lin(1e-6)},
				{Name: "Gram", Def: lin(0.001)},
				{Name: "Ounce", Def: lin(0.0283495)},
				{Name: "Pound", Def: lin(0.453592)},
				{Name: "Kilogram", Def: lin(1.0)},
				{Name: "Stone", Def: lin(6.35029)},
				{Name: "US ton", Def: lin(907.185)},
				{Name: "Metric ton", Def: lin(1000.0)},
				{Name: "Imperial ton", Def: lin(1016.05)},
			},
		},
		{
			Name: "Speed",
			Units: []domain.Unit{
				{Name: "Centimeter per second", Def: lin(0.01)},
				{Name: "Meter per second", Def: lin(1.0)},
				{Name: "Kilometer per hour", Def: lin(0.277778)},
				{Name: "Foot per second", Def: lin(0.3048)},
				{Name: "Mile per hour", Def: lin(0.44704)},
				{Name: "Knot", Def: lin(0.514444)},
				{Name: "Speed of light", Def: lin(299792458.0)},
			},
		},
		{
			Name: "Time",
			Units: []domain.Unit{
				{Name: "Nanosecond", Def: lin(1e-9)},
				{Name: "Microsecond", Def: lin(1e-6)},
				{Name: "Millisecond", Def: lin(0.001)},
				{Name: "Second", Def: lin(1.0)},
				{Name: "Minute", Def: lin(60.0)},
				{Name: "Hour", Def: lin(3600.0)},
				{Name: "Day", Def: lin(86400.0)},
				{Name: "Week", Def: lin(604800.0)},
				{Name: "Month", Def: lin(2.628e+6)},
				{Name: "Year", Def: lin(3.154e+7)},
				{Name: "Decade", Def: lin(3.154e+8)},
				{Name: "Century", Def: lin(3.154e+9)},
			},
		},
		{
			Name: Temperature,
			Units: []domain.Unit{
				{Name: "Celsius", Def: domain.Affine(1, 0)},
				{Name: "Fahrenheit", Def: domain.Affine(9.0/5.0, 32)},
				{Name: "Kelvin", Def: domain.Affine(1, 273.15)},
			},
		},
		{
			Name: "Energy",
			Units: []domain.Unit{
				{Name: "Joule", Def: lin(1.0)},
				{Name: "Kilojoule", Def: lin(1000.0)},
				{Name: "Calorie", Def: lin(4.184)},
				{Name: "Kilocalorie", Def: lin(4184.0)},
				{Name: "Watt hour", Def: lin(3600.0)},
				{Name: "Kilowatt hour", Def: lin(3.6e+6)},
				{Name: "Electronvolt", Def: lin(1.602e-19)},
				{Name: "British thermal unit", Def: lin(1055.06)},
				{Name: "US therm", Def: lin(1.055e+8)},
				{Name: "Foot-pound", Def: lin(1.35582)},
			},
		},
		{
			Name: "Pressure",
			Units: []domain.Unit{
				{Name: "Pascal", Def: lin(1.0)},
				{Name: "Kilopascal", Def: lin(1000.0)},
				{Name: "Bar", Def: lin(100000.0)},
				{Name: "Psi", Def: lin(6894.76)},
				{Name: "Atmosphere", Def: lin(101325.0)},
				{Name: "Torr", Def: lin(133.322)},
				{Name: "Millimeter of mercury", Def: lin(133.322)},
				{Name: "Inch of mercury", Def: lin(3386.39)},
			},
		},
		{
			Name: "Data",
			Units: []domain.Unit{
				{Name: "Bit", Def: lin(1.0 / 8)},
				{Name: "Byte", Def: lin(1.0)},
				{Name: "Kilobit", Def: lin(125.0)},
				{Name: "Kilobyte", Def: lin(1000.0)},
				{Name: "Megabit", Def: lin(125000.0)},
				{Name: "Megabyte", Def: lin(1e+6)},
				{Name: "Gigabit", Def: lin(1.25e+8)},
				{Name: "Gigabyte", Def: lin(1e+9)},
				{Name: "Terabit", Def: lin(1.25e+11)},
				{Name: "Terabyte", Def: lin(1e+12)},
				{Name: "Petabit", Def: lin(1.25e+14)},
				{Name: "Petabyte", Def: lin(1e+15)},
			},
		},
		{
			Name: "Angle",
			Units: []domain.Unit{
				{Name: "Degree", Def: lin(1.0)},
				{Name: "Radian", Def: lin(57.2958)},
				{Name: "Gradian", Def: lin(0.9)},
				{Name: "Milliradian", Def: lin(0.0572958)},
				{Name: "Minute of arc", Def: lin(1.0 / 60)},
				{Name: "Second of arc", Def: lin(1.0 / 3600)},
			},
		},
		{
			Name: FuelEconomy,
			Units: []domain.Unit{
				{Name: "Miles per gallon (US)", Def: lin(1.0)},
				{Name: "Miles per gallon (UK)", Def: lin(1.20095)},
				{Name: "Kilometer per liter", Def: lin(0.425144)},
				{Name: "Liter per 100 kilometers", Def: domain.InverseLinear(235.215)},
			},
		},
		{
			Name: "Frequency",
			Units: []domain.Unit{
				{Name: "Hertz", Def: lin(1.0)},
				{Name: "Kilohertz", Def: lin(1000.0)},
				{Name: "Megahertz", Def: lin(1e+6)},
				{Name: "Gigahertz", Def: lin(1e+9)},
			},
		},
		{
			// Fixed demo rates, units per USD. Override them with a tables/*.yaml file.
			Name:     Currency,
			Phrasing: domain.PhrasingRate,
			Units: []domain.Unit{
				{Name: "USD", Def: lin(1.0)},
				{Name: "EUR", Def: lin(0.92)},
				{Name: "GBP", Def: lin(0.77)},
				{Name: "JPY", Def: lin(150.55)},
				{Name: "CAD", Def: lin(1.37)},
				{Name: "AUD", Def: lin(1.52)},
				{Name: "CHF", Def: lin(0.90)},
				{Name: "CNY", Def: lin(7.23)},
				{Name: "INR", Def: lin(83.46)},
			},
		},
	}
}

// Registry builds the built-in registry.
func Registry() (*domain.Registry, error) {
	return domain.NewRegistry(Categories()...)
}
