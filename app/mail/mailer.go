// Package mail renders the transactional HTML emails and delivers them
// over SMTP. Sending is always fire-and-forget from the caller's point of
// view; a failed delivery is logged, never surfaced to the request.
package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/smtp"
	"strings"

	"github.com/vibast-solutions/ms-go-tasks/app/locale"
	"github.com/vibast-solutions/ms-go-tasks/config"
)

//go:embed templates/*/*.html
var templateFS embed.FS

const (
	TemplateConfirmAccount = "confirm-account-email"
	TemplateForgotPassword = "forgot-password-email"
)

type Mail struct {
	To       string
	Locale   string
	Subject  string // locale key, translated at send time
	Template string
	Context  map[string]string
}

type Mailer interface {
	Send(mail Mail) error
}

type SMTPMailer struct {
	cfg       config.MailConfig
	templates *template.Template
}

func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	// ParseFS keys templates by base name, which would collide across
	// locales; parse each file under a "<locale>/<name>.html" key instead.
	paths, err := fs.Glob(templateFS, "templates/*/*.html")
	if err != nil {
		return nil, err
	}

	templates := template.New("mail")
	for _, path := range paths {
		content, err := templateFS.ReadFile(path)
		if err != nil {
			return nil, err
		}
		name := strings.TrimPrefix(path, "templates/")
		if _, err := templates.New(name).Parse(string(content)); err != nil {
			return nil, err
		}
	}
	return &SMTPMailer{cfg: cfg, templates: templates}, nil
}

func (m *SMTPMailer) Send(mail Mail) error {
	lang := mail.Locale
	if !locale.Supported(lang) {
		lang = locale.DefaultLocale
	}

	body, err := m.render(lang, mail.Template, mail.Context)
	if err != nil {
		return err
	}

	subject := locale.Trans(lang, mail.Subject)
	from := fmt.Sprintf("%s <%s>", m.cfg.Sender, m.cfg.Username)

	var message bytes.Buffer
	fmt.Fprintf(&message, "From: %s\r\n", from)
	fmt.Fprintf(&message, "To: %s\r\n", mail.To)
	fmt.Fprintf(&message, "Subject: %s\r\n", subject)
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	message.WriteString("\r\n")
	message.Write(body)

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(addr, auth, m.cfg.Username, []string{mail.To}, message.Bytes())
}

func (m *SMTPMailer) render(lang, name string, context map[string]string) ([]byte, error) {
	tmpl := m.templates.Lookup(fmt.Sprintf("%s/%s.html", lang, name))
	if tmpl == nil {
		return nil, fmt.Errorf("mail template %s not found for locale %s", name, lang)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, context); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
