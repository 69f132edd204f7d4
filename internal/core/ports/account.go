package ports

import (
	"context"

	"taskflow/internal/core/domain"
)

// AuthProvider is the hosted auth service.
type AuthProvider interface {
	ExchangeCode(ctx context.Context, code string) (domain.Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// PaymentProvider is the hosted payment service.
type PaymentProvider interface {
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	CreateCheckoutSession(ctx context.Context, req domain.CheckoutRequest) (string, error)
}

type UserRepository interface {
	// CreateProfile inserts the profile row, returning
	// domain.ErrProfileExists when the row is already there.
	CreateProfile(ctx context.Context, profile domain.UserProfile) error
}

type SubscriptionRepository interface {
	// ActiveForUser returns domain.ErrSubscriptionNotFound when the user
	// has no active subscription.
	ActiveForUser(ctx context.Context, userID string) (domain.Subscription, error)
}

type AccountService interface {
	// CompleteSignIn runs the auth-callback glue and returns the path the
	// browser should be redirected to.
	CompleteSignIn(ctx context.Context, code, redirectTo string) string
	SignOut(ctx context.Context, accessToken string) error
}

type BillingService interface {
	Plans(ctx context.Context) ([]domain.Plan, error)
	Checkout(ctx context.Context, req domain.CheckoutRequest) (string, error)
	SubscriptionForUser(ctx context.Context, userID string) (domain.Subscription, error)
	AwaitActivation(ctx context.Context, userID string) (domain.Subscription, error)
}
