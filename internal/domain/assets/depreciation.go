package assets

import (
	"math"
	"time"
)

// DepreciatedValue applies straight-line depreciation: the purchase price
// loses price/usefulLifeYears per full year elapsed, floored at zero once
// the asset is past its useful life. Rounded to cents for display.
func DepreciatedValue(purchasePrice float64, usefulLifeYears int, yearsElapsed int) float64 {
	if purchasePrice <= 0 || usefulLifeYears <= 0 {
		return 0
	}
	if yearsElapsed < 0 {
		yearsElapsed = 0
	}

	yearly := purchasePrice / float64(usefulLifeYears)
	value := purchasePrice - yearly*float64(yearsElapsed)
	if value < 0 {
		value = 0
	}
	return math.Round(value*100) / 100
}

// YearsElapsed counts full years between the purchase date and now.
func YearsElapsed(purchasedAt, now time.Time) int {
	if now.Before(purchasedAt) {
		return 0
	}
	years := now.Year() - purchasedAt.Year()
	anniversary := purchasedAt.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
