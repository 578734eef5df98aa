package helper

import (
	"greenscreen_kiosk/constants"
	"greenscreen_kiosk/model"
)

// CalculateOrderPrice computes the authoritative total from the active
// pricing tiers: the print tier for the requested count (8+ priced at the
// tier-8 rate) plus the email base price for the first address and the
// additional price for each extra. Channels not selected by the delivery
// method contribute nothing.
func CalculateOrderPrice(settings *model.Settings, deliveryMethod string, printQuantity, emailCount int) float64 {
	total := 0.0

	if deliveryMethod == constants.DELIVERY_PRINT || deliveryMethod == constants.DELIVERY_BOTH {
		total += settings.PrintPriceFor(printQuantity)
	}
	if deliveryMethod == constants.DELIVERY_EMAIL || deliveryMethod == constants.DELIVERY_BOTH {
		if emailCount > 0 {
			total += settings.EmailBasePrice
			total += settings.EmailExtraPrice * float64(emailCount-1)
		}
	}
	return total
}
