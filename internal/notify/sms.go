// Package notify sends SMS messages through Twilio.
package notify

import (
	"context"
	"errors"
	"strings"

	"calldesk/internal/apperr"
	"calldesk/internal/prompt"

	twilio "github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

type messageAPI interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type SMSSender struct {
	api  messageAPI
	from string
}

// NewSMSSender returns a sender for the given Twilio account. Missing
// credentials are reported when Send is called.
func NewSMSSender(accountSID, authToken, from string) *SMSSender {
	s := &SMSSender{from: from}
	if accountSID != "" && authToken != "" {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
		s.api = client.Api
	}
	return s
}

// Send delivers body to the E.164 number to and returns the message SID.
func (s *SMSSender) Send(ctx context.Context, to, body string) (string, error) {
	if s.api == nil || s.from == "" {
		return "", apperr.Configuration("Twilio is not configured. Set TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_PHONE_NUMBER.")
	}
	if strings.TrimSpace(to) == "" || strings.TrimSpace(body) == "" {
		return "", apperr.InvalidInput("Missing required fields")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		zap.L().Error("sms send failed", zap.String("to", to), zap.Error(err))
		return "", twilioError(err)
	}
	var sid string
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	zap.L().Info("sms sent", zap.String("to", to), zap.String("sid", sid))
	return sid, nil
}

func twilioError(err error) error {
	var restErr *twclient.TwilioRestError
	if errors.As(err, &restErr) {
		return &apperr.UpstreamError{Provider: "twilio", StatusCode: restErr.Status, Message: restErr.Message, Err: err}
	}
	return &apperr.UpstreamError{Provider: "twilio", Err: err}
}

// FollowUpMessage is the thank-you text sent after a finished call.
func FollowUpMessage(lang prompt.Language, customerName string) string {
	if lang == prompt.Arabic {
		if customerName == "" {
			return "شكراً لوقتك اليوم. إذا كان لديك أي استفسار، لا تتردد في التواصل معنا."
		}
		return "شكراً لوقتك اليوم يا " + customerName + ". إذا كان لديك أي استفسار، لا تتردد في التواصل معنا."
	}
	if customerName == "" {
		return "Thank you for your time today. If you have any questions, feel free to reach out to us."
	}
	return "Thank you for your time today, " + customerName + ". If you have any questions, feel free to reach out to us."
}
