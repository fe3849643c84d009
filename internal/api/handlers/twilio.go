package handlers

import (
	"context"
	"net/http"
)

type SMSSender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

type SMSRequest struct {
	To      string `json:"to" validate:"required,e164"`
	Message string `json:"message" validate:"required"`
}

type SMSResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SID     string `json:"sid,omitempty"`
}

func HandleSendSMS(sender SMSSender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SMSRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorResponse(w, r, err)
			return
		}

		sid, err := sender.Send(r.Context(), req.To, req.Message)
		if err != nil {
			writeErrorResponse(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SMSResponse{
			Success: true,
			Message: "SMS sent successfully",
			SID:     sid,
		})
	})
}
