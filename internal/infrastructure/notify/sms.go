package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/jhoicas/progarden-crm/internal/application/followup"
	"github.com/jhoicas/progarden-crm/pkg/config"
	"github.com/jhoicas/progarden-crm/pkg/logger"
)

// messageCreator the part of the Twilio REST API the sender uses.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioSMS sends follow-up texts through Twilio.
type TwilioSMS struct {
	from string
	api  messageCreator
	log  *logger.Logger
}

var _ followup.SMSSender = (*TwilioSMS)(nil)

// NewTwilioSMS builds the sender from the account credentials.
func NewTwilioSMS(cfg config.TwilioConfig, log *logger.Logger) *TwilioSMS {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	if log == nil {
		log = logger.Nop()
	}
	return &TwilioSMS{from: cfg.PhoneNumber, api: client.Api, log: log}
}

// SendSMS texts body to the given number.
func (s *TwilioSMS) SendSMS(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("notify: twilio message to %s: %w", to, err)
	}
	if resp != nil && resp.Sid != nil {
		s.log.Debug().Str("to", to).Str("sid", *resp.Sid).Msg("sms sent")
	}
	return nil
}
