package handlers

import (
	"net/http"

	"calldesk/internal/apperr"
	"calldesk/internal/webhook"
)

// HandleWebhook acknowledges every readable platform message. Only a body
// that is not JSON is refused.
func HandleWebhook(rcv *webhook.Receiver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ev webhook.Event
		if err := decodeJSON(r, &ev); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Webhook processing failed", Category: apperr.CategoryCaller})
			return
		}
		writeJSON(w, http.StatusOK, rcv.Handle(r.Context(), ev))
	})
}
