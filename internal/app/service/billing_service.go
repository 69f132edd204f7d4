package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

type BillingService struct {
	paymentProvider        ports.PaymentProvider
	subscriptionRepository ports.SubscriptionRepository

	pollAttempts int
	pollInterval time.Duration
}

func NewBillingService(
	paymentProvider ports.PaymentProvider,
	subscriptionRepository ports.SubscriptionRepository,
	pollAttempts int,
	pollInterval time.Duration,
) *BillingService {
	return &BillingService{
		paymentProvider:        paymentProvider,
		subscriptionRepository: subscriptionRepository,
		pollAttempts:           pollAttempts,
		pollInterval:           pollInterval,
	}
}

// Plans returns the provider's price list with malformed entries dropped at
// the boundary.
func (s *BillingService) Plans(ctx context.Context) ([]domain.Plan, error) {
	plans, err := s.paymentProvider.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	valid := make([]domain.Plan, 0, len(plans))
	for _, plan := range plans {
		if plan.ID == "" || plan.Name == "" || plan.Amount <= 0 || plan.Interval == "" {
			zap.L().Warn("dropping malformed plan from payment provider",
				zap.String("plan_id", plan.ID), zap.String("name", plan.Name))
			continue
		}
		valid = append(valid, plan)
	}
	return valid, nil
}

func (s *BillingService) Checkout(ctx context.Context, req domain.CheckoutRequest) (string, error) {
	url, err := s.paymentProvider.CreateCheckoutSession(ctx, req)
	if err != nil {
		return "", err
	}
	if url == "" {
		return "", domain.ErrNoCheckoutURL
	}
	return url, nil
}

func (s *BillingService) SubscriptionForUser(ctx context.Context, userID string) (domain.Subscription, error) {
	return s.subscriptionRepository.ActiveForUser(ctx, userID)
}

// AwaitActivation polls for the user's subscription to turn active after a
// checkout: fixed interval, fixed attempt budget, early return on success,
// cancelled by ctx. Exhausting the budget yields ErrActivationTimedOut.
func (s *BillingService) AwaitActivation(ctx context.Context, userID string) (domain.Subscription, error) {
	for attempt := 0; attempt < s.pollAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return domain.Subscription{}, ctx.Err()
			case <-time.After(s.pollInterval):
			}
		}

		subscription, err := s.subscriptionRepository.ActiveForUser(ctx, userID)
		if err == nil {
			return subscription, nil
		}
		if !errors.Is(err, domain.ErrSubscriptionNotFound) {
			return domain.Subscription{}, err
		}
	}

	return domain.Subscription{}, domain.ErrActivationTimedOut
}

var _ ports.BillingService = (*BillingService)(nil)
