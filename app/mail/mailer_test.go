package mail

import (
	"strings"
	"testing"

	"github.com/vibast-solutions/ms-go-tasks/config"
)

func newMailer(t *testing.T) *SMTPMailer {
	t.Helper()

	mailer, err := NewSMTPMailer(config.MailConfig{
		Host:     "localhost",
		Port:     "587",
		Username: "noreply@example.com",
		Sender:   "Task Starter",
	})
	if err != nil {
		t.Fatalf("NewSMTPMailer returned error: %v", err)
	}
	return mailer
}

func TestRender_AllTemplatesAllLocales(t *testing.T) {
	mailer := newMailer(t)

	context := map[string]string{
		"name":  "Jane",
		"email": "jane@example.com",
		"url":   "http://localhost:3000/confirm-account?token=abc",
	}

	for _, lang := range []string{"en", "fr"} {
		for _, name := range []string{TemplateConfirmAccount, TemplateForgotPassword} {
			body, err := mailer.render(lang, name, context)
			if err != nil {
				t.Fatalf("render(%s, %s) returned error: %v", lang, name, err)
			}
			if !strings.Contains(string(body), "Jane") {
				t.Errorf("render(%s, %s): expected name substitution", lang, name)
			}
		}
	}
}

func TestRender_SubstitutesURL(t *testing.T) {
	mailer := newMailer(t)

	body, err := mailer.render("en", TemplateConfirmAccount, map[string]string{
		"name":  "Jane",
		"email": "jane@example.com",
		"url":   "http://localhost:3000/confirm-account?token=tok-123",
	})
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	if !strings.Contains(string(body), "token=tok-123") {
		t.Error("expected confirmation URL in rendered body")
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	mailer := newMailer(t)

	if _, err := mailer.render("en", "does-not-exist", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}
