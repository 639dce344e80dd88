package enum

// RecipientField selects which customer field is used as the email recipient.
type RecipientField string

const (
	// RecipientFieldName addresses the email to the customer's display name.
	RecipientFieldName  RecipientField = "name"
	RecipientFieldEmail RecipientField = "email"
)

func (f RecipientField) Valid() bool {
	return f == RecipientFieldName || f == RecipientFieldEmail
}
