package mapper

import (
	"time"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/core/domain"
)

func ToPlanItems(plans []domain.Plan) []dto.PlanItem {
	items := make([]dto.PlanItem, 0, len(plans))
	for _, plan := range plans {
		items = append(items, dto.PlanItem{
			ID:       plan.ID,
			Name:     plan.Name,
			Amount:   plan.Amount,
			Interval: plan.Interval,
			Popular:  plan.Popular,
		})
	}
	return items
}

func ToSubscriptionItem(subscription domain.Subscription) dto.SubscriptionItem {
	return dto.SubscriptionItem{
		ID:                 subscription.ID,
		Status:             string(subscription.Status),
		PriceID:            subscription.PriceID,
		CurrentPeriodStart: subscription.CurrentPeriodStart.Format(time.RFC3339),
		CurrentPeriodEnd:   subscription.CurrentPeriodEnd.Format(time.RFC3339),
	}
}
