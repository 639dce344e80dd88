package pdf

import "strings"

// ReceiptPDFLink derives the PDF variant of a Stripe receipt URL:
// https://pay.stripe.com/receipts/x/y?s=ap -> https://pay.stripe.com/receipts/x/y/pdf?s=ap
func ReceiptPDFLink(receiptURL string) string {
	base, query, _ := strings.Cut(receiptURL, "?")
	link := strings.TrimRight(base, "/") + "/pdf"
	if query != "" {
		link += "?" + query
	}
	return link
}
