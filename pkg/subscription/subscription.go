package subscription

// Subscription is a recurring household expense billed monthly.
// AmountCents avoids floating point money.
type Subscription struct {
	UID         string
	Name        string
	AmountCents int
	Currency    string
	BillingDay  int
	Active      bool
}
