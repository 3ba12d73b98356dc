package mail

import (
	"errors"

	"github.com/resend/resend-go/v2"
)

// ResendMailer sends receipts through the Resend API. The client is built
// lazily so a deployment without RESEND_API_KEY starts fine and only fails
// at dispatch time, which the webhook surfaces as a 500.
type ResendMailer struct {
	apiKey string
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{apiKey: apiKey, from: from}
}

var _ Mailer = (*ResendMailer)(nil)

func (m *ResendMailer) SendReceipt(r Receipt) (string, error) {
	if m.apiKey == "" {
		return "", errors.New("RESEND_API_KEY is missing")
	}

	html, err := RenderReceipt(r)
	if err != nil {
		return "", err
	}

	client := resend.NewClient(m.apiKey)
	sent, err := client.Emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      []string{r.Email},
		Subject: receiptSubject,
		Html:    html,
	})
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}
