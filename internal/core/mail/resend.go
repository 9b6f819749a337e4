// Package mail sends product email through Resend. Without an API key the
// sender runs in demo mode: requests succeed but nothing is sent.
package mail

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/resend/resend-go/v2"
	"golang.org/x/sync/errgroup"
)

type Sender struct {
	client   *resend.Client
	from     string
	notifyTo string
}

// EarlyAccessRequest carries the signup form fields. Only Email is required.
type EarlyAccessRequest struct {
	Email   string
	Name    string
	Firm    string
	Message string
}

// NewSender builds the Resend sender; an empty API key yields demo mode.
func NewSender(apiKey, from, notifyTo string) *Sender {
	s := &Sender{from: from, notifyTo: notifyTo}
	if apiKey != "" {
		s.client = resend.NewClient(apiKey)
	} else {
		log.Println("RESEND_API_KEY not set; email runs in demo mode")
	}
	return s
}

// Demo reports whether the sender is unconfigured.
func (s *Sender) Demo() bool { return s.client == nil }

// SendEarlyAccess sends the founder notification and the user confirmation
// concurrently. Demo mode returns immediately with demo=true.
func (s *Sender) SendEarlyAccess(ctx context.Context, req EarlyAccessRequest) (demo bool, err error) {
	if s.Demo() {
		return true, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.client.Emails.SendWithContext(gctx, &resend.SendEmailRequest{
			From:    s.from,
			To:      []string{s.notifyTo},
			Subject: "New Early Access Request - SmartProBono Lite",
			Html:    notificationHTML(req, time.Now()),
		})
		return err
	})
	g.Go(func() error {
		_, err := s.client.Emails.SendWithContext(gctx, &resend.SendEmailRequest{
			From:    s.from,
			To:      []string{req.Email},
			Subject: "Thank you for your interest in SmartProBono Lite!",
			Html:    confirmationHTML(),
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return false, fmt.Errorf("send early access email: %w", err)
	}
	return false, nil
}

func notificationHTML(req EarlyAccessRequest, at time.Time) string {
	body := `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">` +
		`<h2 style="color: #2E5BFF;">New Early Access Request</h2>` +
		`<div style="background: #f8f9fa; padding: 20px; border-radius: 8px;">` +
		`<h3 style="margin-top: 0;">Contact Information</h3>` +
		fmt.Sprintf(`<p><strong>Email:</strong> %s</p>`, req.Email)
	if req.Name != "" {
		body += fmt.Sprintf(`<p><strong>Name:</strong> %s</p>`, req.Name)
	}
	if req.Firm != "" {
		body += fmt.Sprintf(`<p><strong>Firm:</strong> %s</p>`, req.Firm)
	}
	if req.Message != "" {
		body += fmt.Sprintf(`<p><strong>Message:</strong> %s</p>`, req.Message)
	}
	body += `</div>` +
		`<p style="color: #0066cc;"><strong>Next Steps:</strong> Follow up with this potential user within 24 hours to provide early access.</p>` +
		fmt.Sprintf(`<p style="color: #666; font-size: 14px;">Request submitted at: %s</p>`, at.Format(time.RFC1123)) +
		`</div>`
	return body
}

func confirmationHTML() string {
	return `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">` +
		`<h1 style="color: #2E5BFF; text-align: center;">SmartProBono Lite</h1>` +
		`<p style="color: #666; font-size: 18px; text-align: center;">Justice. Automated.</p>` +
		`<div style="background: #f8f9fa; padding: 25px; border-radius: 8px;">` +
		`<h2 style="margin-top: 0;">Thank you for your interest!</h2>` +
		`<p>We've received your early access request and are excited about your interest in SmartProBono Lite.</p>` +
		`<h3 style="color: #2E5BFF;">What happens next?</h3>` +
		`<ul style="color: #555;">` +
		`<li>Our team will review your request within 24 hours</li>` +
		`<li>You'll receive an email with early access instructions</li>` +
		`<li>You can start using Ermi, our AI legal assistant</li>` +
		`<li>We'll follow up to gather feedback and improve the product</li>` +
		`</ul></div>` +
		`<p style="color: #666; text-align: center;">Questions? Reply to this email anytime!</p>` +
		`</div>`
}
