package domain

import "errors"

var (
	ErrTaskNotFound             = errors.New("task not found")
	ErrCategoryNotFound         = errors.New("category not found")
	ErrCategoryExists           = errors.New("category already exists")
	ErrRepeatInstanceImmutable  = errors.New("repeat instance cannot be mutated")
	ErrProfileExists            = errors.New("user profile already exists")
	ErrSubscriptionNotFound     = errors.New("no active subscription")
	ErrNoCheckoutURL            = errors.New("payment provider returned no checkout url")
	ErrActivationTimedOut       = errors.New("subscription activation timed out")
	ErrAuthCodeExchangeRejected = errors.New("auth code exchange rejected")
)
