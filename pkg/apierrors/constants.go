package apierrors

const (
	MsgUnauthorized          = "unauthorized"
	MsgInvalidDate           = "invalidDate"
	MsgInvalidTaskID         = "invalidTaskID"
	MsgInvalidTaskPayload    = "invalidTaskPayload"
	MsgTaskNotFound          = "taskNotFound"
	MsgRepeatInstanceFrozen  = "repeatInstanceFrozen"
	MsgFailListTasks         = "errorListTasks"
	MsgFailCreateTask        = "failCreateTask"
	MsgFailUpdateTask        = "failUpdateTask"
	MsgFailDeleteTask        = "failDeleteTask"
	MsgInvalidCategory       = "invalidCategoryPayload"
	MsgCategoryExists        = "categoryExists"
	MsgFailListCategories    = "errorListCategories"
	MsgFailCreateCategory    = "failCreateCategory"
	MsgFailListPlans         = "errorListPlans"
	MsgInvalidCheckout       = "invalidCheckoutPayload"
	MsgFailCreateCheckout    = "failCreateCheckout"
	MsgNoSubscription        = "noActiveSubscription"
	MsgFailSubscription      = "errorSubscriptionLookup"
	MsgActivationTimedOut    = "activationTimedOut"
	MsgFailSignOut           = "failSignOut"
)
