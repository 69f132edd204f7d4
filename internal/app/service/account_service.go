package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

const (
	defaultDestination = "/dashboard"
	pricingDestination = "/pricing"
)

type AccountService struct {
	authProvider           ports.AuthProvider
	userRepository         ports.UserRepository
	subscriptionRepository ports.SubscriptionRepository
}

func NewAccountService(
	authProvider ports.AuthProvider,
	userRepository ports.UserRepository,
	subscriptionRepository ports.SubscriptionRepository,
) *AccountService {
	return &AccountService{
		authProvider:           authProvider,
		userRepository:         userRepository,
		subscriptionRepository: subscriptionRepository,
	}
}

// CompleteSignIn exchanges the authorization code, provisions the user's
// profile row if it is missing, and picks the redirect destination: the
// pricing page when no active subscription exists, otherwise the requested
// destination or the dashboard. A failed exchange still redirects to the
// requested destination; sign-in errors never strand the browser.
func (s *AccountService) CompleteSignIn(ctx context.Context, code, redirectTo string) string {
	destination := redirectTo
	if destination == "" {
		destination = defaultDestination
	}

	if code == "" {
		return destination
	}

	session, err := s.authProvider.ExchangeCode(ctx, code)
	if err != nil {
		zap.L().Warn("auth code exchange failed", zap.Error(err))
		return destination
	}

	s.ensureProfile(ctx, session)

	if _, err := s.subscriptionRepository.ActiveForUser(ctx, session.UserID); err != nil {
		if !errors.Is(err, domain.ErrSubscriptionNotFound) {
			zap.L().Error("subscription lookup failed", zap.String("user_id", session.UserID), zap.Error(err))
		}
		return pricingDestination
	}

	return destination
}

// ensureProfile is idempotent: an existing row counts as success, and any
// other insert failure is logged but does not block sign-in.
func (s *AccountService) ensureProfile(ctx context.Context, session domain.Session) {
	err := s.userRepository.CreateProfile(ctx, domain.UserProfile{
		ID:    session.UserID,
		Name:  session.Name,
		Email: session.Email,
	})
	if err != nil && !errors.Is(err, domain.ErrProfileExists) {
		zap.L().Warn("user profile provisioning failed", zap.String("user_id", session.UserID), zap.Error(err))
	}
}

func (s *AccountService) SignOut(ctx context.Context, accessToken string) error {
	return s.authProvider.SignOut(ctx, accessToken)
}

var _ ports.AccountService = (*AccountService)(nil)
