package charge

import (
	"fmt"
	"math/rand/v2"

	"github.com/stripe/stripe-go/v79"
)

const (
	receiptGroupMin = 1000
	receiptGroupMax = 9999
)

// IntN returns a uniform integer in [0, n).
type IntN func(n int) int

var DefaultIntN IntN = rand.IntN

// AssignReceiptNumber sets a "NNNN-NNNN" receipt number on a charge that has none.
// The value lives on the in-memory charge only and is never sent back to Stripe.
func AssignReceiptNumber(stripeCharge *stripe.Charge, intn IntN) {
	if stripeCharge == nil || stripeCharge.ReceiptNumber != "" {
		return
	}
	if intn == nil {
		intn = DefaultIntN
	}

	stripeCharge.ReceiptNumber = fmt.Sprintf("%d-%d", receiptGroup(intn), receiptGroup(intn))
}

func receiptGroup(intn IntN) int {
	return receiptGroupMin + intn(receiptGroupMax-receiptGroupMin+1)
}
