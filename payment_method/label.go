package payment_method

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/stripe/stripe-go/v79"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrNotCard            = errors.New("payment method is not a card")
	ErrMissingCardDetails = errors.New("card payment method has no card details")
)

// CardDetails returns brand and last4 of a card payment method.
func CardDetails(pm *stripe.PaymentMethod) (string, string, error) {
	if pm == nil || pm.Type != stripe.PaymentMethodTypeCard {
		return "", "", ErrNotCard
	}
	if pm.Card == nil {
		return "", "", errors.WithHintf(ErrMissingCardDetails, "payment method %s", pm.ID)
	}
	return string(pm.Card.Brand), pm.Card.Last4, nil
}

// Label renders a payment method for display, e.g. "VISA - 4242" or "Sepa Debit".
func Label(pm *stripe.PaymentMethod) (string, error) {
	if pm == nil {
		return "", errors.New("payment method is nil")
	}

	if pm.Type == stripe.PaymentMethodTypeCard {
		brand, last4, err := CardDetails(pm)
		if err != nil {
			return "", err
		}
		return strings.ToUpper(brand) + " - " + last4, nil
	}

	return cases.Title(language.Und).String(strings.ReplaceAll(string(pm.Type), "_", " ")), nil
}
