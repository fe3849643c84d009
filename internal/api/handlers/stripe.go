package handlers

import (
	"context"
	"net/http"

	"calldesk/internal/payments"

	"github.com/shopspring/decimal"
)

type PaymentLinker interface {
	CreateLink(ctx context.Context, req payments.LinkRequest) (*payments.Link, error)
}

type PaymentLinkRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	CallID       string          `json:"callId"`
	CustomerName string          `json:"customerName"`
	Environment  string          `json:"environment"`
}

func HandleCreatePaymentLink(linker PaymentLinker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var params PaymentLinkRequest
		if err := decodeJSON(r, &params); err != nil {
			writeErrorResponse(w, r, err)
			return
		}

		link, err := linker.CreateLink(r.Context(), payments.LinkRequest{
			Amount:       params.Amount,
			Currency:     params.Currency,
			CallID:       params.CallID,
			CustomerName: params.CustomerName,
			Live:         params.Environment == "production",
		})
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, link)
	})
}
