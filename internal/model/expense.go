// Package model defines the budget data types shared across cbudget.
package model

// Expense is one category/amount pair. Its identity is its position in the list.
type Expense struct {
	Category string
	Amount   float64
}

// RegionDatum is one entry of the regional infographic.
type RegionDatum struct {
	Region string
	Value  float64
}

// Summary holds the result of a calculation.
type Summary struct {
	Income        float64
	TotalExpenses float64
	Balance       float64
}

// UsedShare returns the fraction of income consumed by expenses, clamped to 0..1.
// It returns 0 when income is not positive.
func (s Summary) UsedShare() float64 {
	if s.Income <= 0 {
		return 0
	}
	pct := s.TotalExpenses / s.Income
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// Regions is the constant infographic data.
var Regions = []RegionDatum{
	{Region: "Norte", Value: 2300},
	{Region: "Nordeste", Value: 1700},
	{Region: "Sudeste", Value: 4200},
	{Region: "Sul", Value: 3800},
	{Region: "Centro-Oeste", Value: 3000},
}

// ExampleExpenses returns a fresh copy of the list shown on first load.
func ExampleExpenses() []Expense {
	return []Expense{
		{Category: "Alimentação", Amount: 700},
		{Category: "Aluguel/Financiamento", Amount: 900},
		{Category: "Transporte", Amount: 250},
		{Category: "Contas (água, luz, internet)", Amount: 220},
	}
}
