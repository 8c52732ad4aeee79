package booking

import (
	"fmt"
	"math"

	"washly/models"
)

// Base prices per wash type, in whole currency units.
var washBasePrices = map[models.WashType]int{
	models.WashExterior: 2500,
	models.WashInterior: 3000,
	models.WashComplete: 5000,
}

// EveningSurcharge is the flat amount added for an evening time slot.
const EveningSurcharge = 500

// Recharge commission rates per payment method.
var rechargeCommissionRates = map[string]float64{
	"cib":      0.005,
	"edahabia": 0.01,
	"flexy":    0.02,
}

// WashPrice returns the base price for a wash type.
func WashPrice(w models.WashType) (int, error) {
	price, ok := washBasePrices[w]
	if !ok {
		return 0, fmt.Errorf("unknown wash type: %s", w)
	}
	return price, nil
}

// QuotePrice returns the price for a wash type and time slot. Only the
// evening slot carries a surcharge.
func QuotePrice(w models.WashType, timeSlot string) (int, error) {
	price, err := WashPrice(w)
	if err != nil {
		return 0, err
	}
	if timeSlot == "evening" {
		price += EveningSurcharge
	}
	return price, nil
}

// CommissionRate returns the recharge commission rate for a payment method.
func CommissionRate(method string) (float64, error) {
	rate, ok := rechargeCommissionRates[method]
	if !ok {
		return 0, fmt.Errorf("unknown payment method: %s", method)
	}
	return rate, nil
}

// RechargeCommission returns the commission charged on a top-up amount.
func RechargeCommission(amount int, rate float64) int {
	return int(math.Round(float64(amount) * rate))
}

// CreditedAmount returns what actually lands in the wallet after commission.
func CreditedAmount(amount int, rate float64) int {
	return amount - RechargeCommission(amount, rate)
}
