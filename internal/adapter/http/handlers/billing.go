package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/mapper"
	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

type BillingHandler struct {
	billingService ports.BillingService
}

func NewBillingHandler(billingService ports.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

func (h *BillingHandler) ListPlans(c *gin.Context) {
	lang := middleware.GetLang(c)

	plans, err := h.billingService.Plans(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list plans", zap.Error(err))
		c.JSON(
			http.StatusBadGateway,
			apierrors.CreateError(http.StatusBadGateway, apierrors.MsgFailListPlans, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPlanItems(plans))
}

func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCheckout, lang),
		)
		return
	}

	url, err := h.billingService.Checkout(c.Request.Context(), domain.CheckoutRequest{
		UserID:    middleware.GetUserID(c),
		Email:     middleware.GetUserEmail(c),
		PriceID:   req.PriceID,
		ReturnURL: req.ReturnURL,
	})
	if err != nil {
		zap.L().Error("failed to create checkout session", zap.String("price_id", req.PriceID), zap.Error(err))
		c.JSON(
			http.StatusBadGateway,
			apierrors.CreateError(http.StatusBadGateway, apierrors.MsgFailCreateCheckout, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{URL: url})
}

func (h *BillingHandler) GetSubscription(c *gin.Context) {
	lang := middleware.GetLang(c)

	subscription, err := h.billingService.SubscriptionForUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgNoSubscription, lang),
			)
			return
		}

		zap.L().Error("subscription lookup failed", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSubscription, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubscriptionItem(subscription))
}

// AwaitActivation backs the purchase-success page: it blocks through the
// bounded activation poll and reports either the now-active subscription or
// a graceful timeout the page can render.
func (h *BillingHandler) AwaitActivation(c *gin.Context) {
	lang := middleware.GetLang(c)

	subscription, err := h.billingService.AwaitActivation(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrActivationTimedOut) {
			c.JSON(
				http.StatusRequestTimeout,
				apierrors.CreateError(http.StatusRequestTimeout, apierrors.MsgActivationTimedOut, lang),
			)
			return
		}

		zap.L().Error("activation poll failed", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSubscription, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubscriptionItem(subscription))
}
