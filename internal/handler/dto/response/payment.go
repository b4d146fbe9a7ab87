package response

import "parkreserve/internal/usecase/commands"

type PaymentIntentResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	Status          string `json:"status"`
}

func FromIntentResult(r *commands.IntentResult) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		PaymentIntentID: r.PaymentIntentID,
		ClientSecret:    r.ClientSecret,
		Amount:          r.AmountMinor,
		Currency:        r.Currency,
		Status:          r.Status,
	}
}
