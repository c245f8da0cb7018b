package subscription

type CardDetails struct {
	Number   string `json:"number" binding:"required"`
	ExpMonth string `json:"exp_month" binding:"required"`
	ExpYear  string `json:"exp_year" binding:"required"`
	CVV      string `json:"cvv" binding:"required"`
	Holder   string `json:"holder"`
}

type SubscribeRequest struct {
	Plan string      `json:"plan" binding:"required"`
	Card CardDetails `json:"card" binding:"required"`
}
