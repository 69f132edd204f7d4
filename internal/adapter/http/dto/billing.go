package dto

type PlanItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Interval string `json:"interval"`
	Popular  bool   `json:"popular"`
}

type CheckoutRequest struct {
	PriceID   string `json:"price_id" binding:"required"`
	ReturnURL string `json:"return_url" binding:"required,url"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type SubscriptionItem struct {
	ID                 string `json:"id"`
	Status             string `json:"status"`
	PriceID            string `json:"price_id"`
	CurrentPeriodStart string `json:"current_period_start"`
	CurrentPeriodEnd   string `json:"current_period_end"`
}
