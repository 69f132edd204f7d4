package domain

import "time"

// Session is the result of exchanging an authorization code with the auth
// provider. AccessToken is the bearer token the client presents afterwards.
type Session struct {
	UserID      string
	Email       string
	Name        string
	AccessToken string
}

// UserProfile is our own row for an authenticated user, provisioned on
// first sign-in. The ID is the auth provider's user id.
type UserProfile struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

type SubscriptionStatus string

const SubscriptionActive SubscriptionStatus = "active"

type Subscription struct {
	ID                 string
	UserID             string
	Status             SubscriptionStatus
	PriceID            string
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
}

// Plan is a purchasable price as advertised by the payment provider,
// validated at the boundary. Amount is in the currency's minor unit.
type Plan struct {
	ID       string
	Name     string
	Amount   int64
	Interval string
	Popular  bool
}

// CheckoutRequest carries everything the payment provider needs to open a
// hosted checkout session.
type CheckoutRequest struct {
	UserID    string
	Email     string
	PriceID   string
	ReturnURL string
}
