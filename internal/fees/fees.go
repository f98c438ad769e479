// Package fees holds the pure pricing arithmetic for the rental lifecycle:
// the taxed rental quote, the damage surcharge catalog, the late fee and the
// final bill total. Nothing in this package touches storage or the clock.
package fees

import (
	"fmt"
	"math"
	"time"

	"carrental-backend/internal/domain"
)

// TaxRate is the sales tax applied to every rental quote.
const TaxRate = 0.10

const dateLayout = "2006-01-02"

// DamageFlag is an inspection finding from the fixed catalog.
type DamageFlag string

const (
	DamageScratch    DamageFlag = "scratch"
	DamageInterior   DamageFlag = "interior"
	DamageMechanical DamageFlag = "mechanical"
	DamageMissing    DamageFlag = "missing"
)

type damageEntry struct {
	flag   DamageFlag
	label  string
	amount float64
}

// damageCatalog order is fixed; label lines on returns and bills preserve it.
var damageCatalog = []damageEntry{
	{DamageScratch, "Scratches/Dents", 100},
	{DamageInterior, "Interior Damage", 150},
	{DamageMechanical, "Mechanical Issues", 200},
	{DamageMissing, "Missing Items", 50},
}

// Round2 rounds a dollar amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// QuoteTotal returns the taxed total for renting at pricePerDay over days.
func QuoteTotal(pricePerDay float64, days int) (float64, error) {
	if days <= 0 {
		return 0, &domain.InvalidInputError{Field: "rental_days", Reason: "must be a positive number of days"}
	}
	if pricePerDay < 0 {
		return 0, &domain.InvalidInputError{Field: "price_per_day", Reason: "must not be negative"}
	}
	return Round2(pricePerDay * float64(days) * (1 + TaxRate)), nil
}

// DamageCost sums the surcharges for the flags present and renders the
// matching "label: $amount" lines in catalog order. Duplicate flags count
// once; a flag outside the catalog is rejected.
func DamageCost(flags []DamageFlag) (float64, []string, error) {
	present := make(map[DamageFlag]bool, len(flags))
	for _, f := range flags {
		if !validFlag(f) {
			return 0, nil, &domain.InvalidInputError{Field: "damage_flag", Reason: fmt.Sprintf("unknown flag %q", f)}
		}
		present[f] = true
	}

	var cost float64
	var lines []string
	for _, e := range damageCatalog {
		if present[e.flag] {
			cost += e.amount
			lines = append(lines, fmt.Sprintf("%s: $%.0f", e.label, e.amount))
		}
	}
	return cost, lines, nil
}

func validFlag(f DamageFlag) bool {
	for _, e := range damageCatalog {
		if e.flag == f {
			return true
		}
	}
	return false
}

// LateFee computes whole days late past the expected return date. The renter
// has until the end of the return day; any positive fraction of a day beyond
// that counts as a full late day, charged at the rental's daily rate.
// Returns the fee and the number of late days.
func LateFee(returnDate string, actualReturn time.Time, pricePerDay float64) (float64, int, error) {
	expected, err := time.ParseInLocation(dateLayout, returnDate, time.UTC)
	if err != nil {
		return 0, 0, &domain.InvalidInputError{Field: "return_date", Reason: "must be a yyyy-mm-dd date"}
	}

	// End of the return day is midnight of the following day.
	grace := expected.AddDate(0, 0, 1)
	late := actualReturn.UTC().Sub(grace)
	daysLate := int(math.Ceil(late.Hours() / 24))
	if daysLate < 0 {
		daysLate = 0
	}
	return float64(daysLate) * pricePerDay, daysLate, nil
}

// FinalBill totals a bill from its components. Inputs are non-negative by
// construction, so the result never is either.
func FinalBill(baseCost, damagesCost, lateFee float64) float64 {
	return Round2(baseCost + damagesCost + lateFee)
}
