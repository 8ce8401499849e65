package email

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workaxis/hrms-backend-go/internal/config"
)

func newTestService(t *testing.T, cfg config.SMTPConfig, send sendFunc) *emailServiceImpl {
	t.Helper()
	svc, err := NewEmailService(cfg)
	require.NoError(t, err)
	impl := svc.(*emailServiceImpl)
	impl.send = send
	impl.backoff = time.Millisecond
	return impl
}

func TestSendOfferLetter_EmbedsContentVerbatim(t *testing.T) {
	var got []byte
	var gotTo []string
	svc := newTestService(t, config.SMTPConfig{Host: "smtp.example.com", Port: 587, From: "hr@example.com", FromName: "HR"},
		func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			assert.Equal(t, "smtp.example.com:587", addr)
			got, gotTo = msg, to
			return nil
		})

	err := svc.SendOfferLetter(context.Background(), OfferLetterMessage{
		To:            "meera@example.com",
		CandidateName: "Meera Iyer",
		CompanyName:   "WorkAxis HRMS",
		Designation:   "Engineer",
		Content:       "<p>Your CTC is <b>912,000.00</b></p>",
	})
	require.NoError(t, err)

	body := string(got)
	assert.Equal(t, []string{"meera@example.com"}, gotTo)
	assert.Contains(t, body, "Subject: Offer of Employment - WorkAxis HRMS")
	assert.Contains(t, body, "Dear Meera Iyer,")
	assert.Contains(t, body, "<p>Your CTC is <b>912,000.00</b></p>")
}

func TestSendOfferLetter_RetriesThenFails(t *testing.T) {
	calls := 0
	svc := newTestService(t, config.SMTPConfig{Host: "smtp.example.com", Port: 25},
		func(string, smtp.Auth, string, []string, []byte) error {
			calls++
			return errors.New("connection refused")
		})

	err := svc.SendOfferLetter(context.Background(), OfferLetterMessage{To: "x@example.com"})
	require.Error(t, err)
	assert.Equal(t, maxRetries, calls)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestSendOfferLetter_SkipsWithoutHost(t *testing.T) {
	svc := newTestService(t, config.SMTPConfig{}, func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called")
		return nil
	})

	assert.NoError(t, svc.SendOfferLetter(context.Background(), OfferLetterMessage{To: "x@example.com"}))
}
