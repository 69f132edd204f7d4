//go:build integration
// +build integration

package tests

import (
	"context"

	"taskflow/internal/core/domain"
)

// The task and category suites exercise the database-backed services; the
// account and billing handlers only need something satisfying their ports.

type noopAccountService struct{}

func (noopAccountService) CompleteSignIn(context.Context, string, string) string { return "/dashboard" }
func (noopAccountService) SignOut(context.Context, string) error                 { return nil }

type noopBillingService struct{}

func (noopBillingService) Plans(context.Context) ([]domain.Plan, error) { return nil, nil }

func (noopBillingService) Checkout(context.Context, domain.CheckoutRequest) (string, error) {
	return "", domain.ErrNoCheckoutURL
}

func (noopBillingService) SubscriptionForUser(context.Context, string) (domain.Subscription, error) {
	return domain.Subscription{}, domain.ErrSubscriptionNotFound
}

func (noopBillingService) AwaitActivation(context.Context, string) (domain.Subscription, error) {
	return domain.Subscription{}, domain.ErrActivationTimedOut
}
