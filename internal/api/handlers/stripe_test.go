package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"calldesk/internal/apperr"
	"calldesk/internal/payments"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLinker struct {
	req payments.LinkRequest
	err error
}

func (f *fakeLinker) CreateLink(_ context.Context, req payments.LinkRequest) (*payments.Link, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &payments.Link{
		ID:     "plink_1234567890",
		URL:    "https://stripe.com/pay/cs_test_1234567890",
		CallID: req.CallID,
	}, nil
}

func TestHandleCreatePaymentLink(t *testing.T) {
	linker := &fakeLinker{}

	body := `{"amount": 100.50, "currency": "usd", "callId": "call-456", "customerName": "Omar", "environment": "test"}`
	rr := serve(t, HandleCreatePaymentLink(linker), http.MethodPost, "/api/payment-links", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp payments.Link
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "https://stripe.com/pay/cs_test_1234567890", resp.URL)
	assert.Equal(t, "plink_1234567890", resp.ID)
	assert.Equal(t, "call-456", resp.CallID)

	assert.True(t, decimal.RequireFromString("100.50").Equal(linker.req.Amount))
	assert.Equal(t, "usd", linker.req.Currency)
	assert.False(t, linker.req.Live)
}

func TestHandleCreatePaymentLinkProduction(t *testing.T) {
	linker := &fakeLinker{}

	rr := serve(t, HandleCreatePaymentLink(linker), http.MethodPost, "/api/payment-links",
		`{"amount": "75", "callId": "call-1", "environment": "production"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, linker.req.Live)
}

func TestHandleCreatePaymentLinkErrors(t *testing.T) {
	rr := serve(t, HandleCreatePaymentLink(&fakeLinker{}), http.MethodPost, "/api/payment-links", `{"amount": "lots"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	linker := &fakeLinker{err: &apperr.UpstreamError{Provider: "stripe", StatusCode: http.StatusServiceUnavailable, Message: "stripe is down"}}
	rr = serve(t, HandleCreatePaymentLink(linker), http.MethodPost, "/api/payment-links", `{"amount": 10}`)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "stripe is down", decodeError(t, rr).Error)
}
