// Package followup texts customers whose follow-up date has come.
package followup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
	"github.com/jhoicas/progarden-crm/pkg/logger"
)

// SMSSender delivers a text message.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// Result outcome of one run.
type Result struct {
	Due    int
	Sent   int
	Failed int
}

// ReminderJob finds the customers due for a follow-up today and texts them.
type ReminderJob struct {
	customers repository.CustomerRepository
	sms       SMSSender
	log       *logger.Logger
	now       func() time.Time
}

// NewReminderJob builds the job.
func NewReminderJob(customers repository.CustomerRepository, sms SMSSender, log *logger.Logger) *ReminderJob {
	if log == nil {
		log = logger.Nop()
	}
	return &ReminderJob{customers: customers, sms: sms, log: log.Named("followup"), now: time.Now}
}

// Run sends today's reminders. A failed message is logged and counted; it does
// not stop the others.
func (j *ReminderJob) Run(ctx context.Context) (Result, error) {
	now := j.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	due, err := j.customers.ListFollowUpsDue(ctx, today)
	if err != nil {
		return Result{}, fmt.Errorf("followup: list due: %w", err)
	}
	res := Result{Due: len(due)}
	for _, c := range due {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := j.sms.SendSMS(ctx, c.PhoneNumber, Message(c)); err != nil {
			res.Failed++
			j.log.Warn().Err(err).Int64("customer_id", c.ID).Msg("follow-up SMS failed")
			continue
		}
		res.Sent++
	}
	j.log.Info().Int("due", res.Due).Int("sent", res.Sent).Int("failed", res.Failed).Msg("follow-up run finished")
	return res, nil
}

// Schedule registers the job on a new cron scheduler; the caller starts and stops it.
func (j *ReminderJob) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if _, err := j.Run(ctx); err != nil {
			j.log.Error().Err(err).Msg("follow-up run failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("followup: schedule %q: %w", spec, err)
	}
	return c, nil
}

// Message text sent to a customer.
func Message(c *entity.Customer) string {
	name := strings.TrimSpace(c.CustomerName)
	if i := strings.IndexByte(name, ' '); i > 0 {
		name = name[:i]
	}
	product := "your garden"
	if c.PreferredProduct != nil && *c.PreferredProduct != "" {
		product = *c.PreferredProduct
	} else if c.ProductPurchased != nil && *c.ProductPurchased != "" {
		product = *c.ProductPurchased
	}
	return fmt.Sprintf("Hello %s, ProGarden here. How is %s doing? Reply to this message if you need anything.", name, product)
}
