// Package payments creates Stripe payment links that can be sent to a
// customer after a payment reminder call.
package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"calldesk/internal/apperr"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentlink"
	"github.com/stripe/stripe-go/v72/price"
	"github.com/stripe/stripe-go/v72/product"
	"go.uber.org/zap"
)

const DefaultCurrency = "sar"

type Config struct {
	LiveKey     string
	TestKey     string
	RedirectURL string
}

type LinkRequest struct {
	Amount       decimal.Decimal
	Currency     string
	CallID       string
	CustomerName string
	// Live selects the live key. Everything else uses the test key.
	Live bool
}

type Link struct {
	ID     string `json:"paymentLinkId"`
	URL    string `json:"paymentUrl"`
	CallID string `json:"callId,omitempty"`
}

type Service struct {
	cfg     Config
	backend stripe.Backend
}

func NewService(cfg Config) *Service {
	return &Service{cfg: cfg, backend: newBackend("")}
}

// newBackend returns an API backend that sends each request once and logs
// through zap. An empty url means the Stripe API.
func newBackend(url string) stripe.Backend {
	cfg := &stripe.BackendConfig{
		LeveledLogger:     zap.L().Sugar(),
		MaxNetworkRetries: stripe.Int64(0),
	}
	if url != "" {
		cfg.URL = stripe.String(url)
	}
	return stripe.GetBackendWithConfig(stripe.APIBackend, cfg)
}

// CreateLink creates a one-off product, a price for the amount and a
// payment link for that price.
func (s *Service) CreateLink(ctx context.Context, req LinkRequest) (*Link, error) {
	key := s.cfg.TestKey
	if req.Live {
		key = s.cfg.LiveKey
	}
	if key == "" {
		return nil, apperr.Configuration("Stripe API key is not configured")
	}
	if !req.Amount.IsPositive() {
		return nil, apperr.InvalidInput("amount must be greater than zero")
	}
	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	backend := s.backend
	log := zap.L().With(zap.String("call_id", req.CallID))

	name := "Outstanding balance"
	if req.CustomerName != "" {
		name = fmt.Sprintf("Outstanding balance - %s", req.CustomerName)
	}
	prod, err := product.Client{B: backend, Key: key}.New(&stripe.ProductParams{
		Name: stripe.String(name),
	})
	if err != nil {
		log.Error("failed to create stripe product", zap.Error(err))
		return nil, stripeError("create product", err)
	}

	// minor units
	unitAmount := req.Amount.Shift(2).Round(0).IntPart()
	p, err := price.Client{B: backend, Key: key}.New(&stripe.PriceParams{
		Currency:   stripe.String(currency),
		Product:    stripe.String(prod.ID),
		UnitAmount: stripe.Int64(unitAmount),
	})
	if err != nil {
		log.Error("failed to create stripe price", zap.Error(err))
		return nil, stripeError("create price", err)
	}

	linkParams := &stripe.PaymentLinkParams{
		LineItems: []*stripe.PaymentLinkLineItemParams{
			{
				Price:    stripe.String(p.ID),
				Quantity: stripe.Int64(1),
			},
		},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	if s.cfg.RedirectURL != "" {
		linkParams.AfterCompletion = &stripe.PaymentLinkAfterCompletionParams{
			Type: stripe.String("redirect"),
			Redirect: &stripe.PaymentLinkAfterCompletionRedirectParams{
				URL: stripe.String(s.cfg.RedirectURL),
			},
		}
	}
	if req.CallID != "" {
		linkParams.AddMetadata("call_id", req.CallID)
	}
	linkParams.AddMetadata("amount", req.Amount.StringFixed(2))

	link, err := paymentlink.Client{B: backend, Key: key}.New(linkParams)
	if err != nil {
		log.Error("failed to create payment link", zap.Error(err))
		return nil, stripeError("create payment link", err)
	}

	log.Info("payment link created", zap.String("payment_link_id", link.ID), zap.String("amount", req.Amount.StringFixed(2)), zap.String("currency", currency))
	return &Link{ID: link.ID, URL: link.URL, CallID: req.CallID}, nil
}

func stripeError(op string, err error) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		if se.Type == stripe.ErrorTypeInvalidRequest || se.Type == stripe.ErrorTypeCard {
			return apperr.InvalidInput("%s: %s", op, se.Msg)
		}
		return &apperr.UpstreamError{Provider: "stripe", StatusCode: se.HTTPStatusCode, Message: se.Msg, Err: err}
	}
	return &apperr.UpstreamError{Provider: "stripe", Message: op + " failed", Err: err}
}
