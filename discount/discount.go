package discount

import (
	"github.com/cockroachdb/errors"
	"github.com/stripe/stripe-go/v79"

	"goflare.io/receipt/models"
	"goflare.io/receipt/money"
)

const applied = "Discount applied"

var ErrMalformedDiscount = errors.New("malformed discount data")

// Resolve extracts the discount display data of an invoice.
func Resolve(stripeInvoice *stripe.Invoice) (*models.DiscountInfo, error) {
	invoiceDiscount := Applied(stripeInvoice)
	if invoiceDiscount == nil {
		return &models.DiscountInfo{
			Description: "",
			Amount:      money.Format(0),
		}, nil
	}

	if len(stripeInvoice.TotalDiscountAmounts) == 0 || stripeInvoice.TotalDiscountAmounts[0] == nil {
		return nil, errors.WithHintf(ErrMalformedDiscount,
			"invoice %s carries discount %s but no total discount amounts", stripeInvoice.ID, invoiceDiscount.ID)
	}

	return &models.DiscountInfo{
		Description: Describe(invoiceDiscount.Coupon),
		Amount:      money.Format(stripeInvoice.TotalDiscountAmounts[0].Amount),
		Code:        promotionCode(invoiceDiscount),
	}, nil
}

// Applied returns the discount shown on the receipt: the invoice's legacy discount
// field, else the first expanded entry of its discounts list.
func Applied(stripeInvoice *stripe.Invoice) *stripe.Discount {
	if stripeInvoice == nil {
		return nil
	}
	if stripeInvoice.Discount != nil {
		return stripeInvoice.Discount
	}
	for _, d := range stripeInvoice.Discounts {
		if d != nil && d.Coupon != nil {
			return d
		}
	}
	return nil
}

// Describe names a coupon: its own name when set, otherwise a synthesized label.
func Describe(coupon *stripe.Coupon) string {
	if coupon == nil {
		return applied
	}
	if coupon.Name != "" {
		return coupon.Name
	}

	switch {
	case coupon.PercentOff != 0:
		return money.FormatPercent(coupon.PercentOff) + "% off"
	case coupon.AmountOff != 0:
		return "$" + money.Format(coupon.AmountOff) + " off"
	default:
		return applied
	}
}

func promotionCode(d *stripe.Discount) *string {
	if d.PromotionCode == nil {
		return nil
	}
	code := d.PromotionCode.Code
	if code == "" {
		code = d.PromotionCode.ID
	}
	if code == "" {
		return nil
	}
	return &code
}
