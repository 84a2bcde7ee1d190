// Package email sends the shopping list confirmation email over SMTP.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/mirepoix/v1/internal/domain/list"
	"github.com/mirepoix/v1/internal/infrastructure/config"
	"github.com/mirepoix/v1/internal/ports/outbound"
)

const shoppingListTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Your shopping list is ready</h2>
  <p>Hi {{.CustomerName}},</p>
  <p>Here is the shopping list for your pickup{{if .AppointmentDate}} on <strong>{{.AppointmentDate}} {{.AppointmentTime}}</strong>{{end}}.</p>
  {{range .Sections}}
  <h3 style="border-bottom: 1px solid #ddd;">{{.Name}}</h3>
  <ul>
    {{range .Items}}
    <li>{{if .Quantity}}{{.Quantity}} {{.Unit}} {{end}}{{.Name}}</li>
    {{end}}
  </ul>
  {{end}}
  <p>The full list is attached as a PDF.</p>
</body>
</html>`

type sectionView struct {
	Name  string
	Items []list.Item
}

type emailView struct {
	CustomerName    string
	AppointmentDate string
	AppointmentTime string
	Sections        []sectionView
}

// Mailer implements the email service interface using SMTP
type Mailer struct {
	dialer   *gomail.Dialer
	from     string
	enabled  bool
	template *template.Template
	logger   *zap.Logger
}

// NewMailer creates an SMTP mailer from configuration
func NewMailer(cfg *config.Config, logger *zap.Logger) outbound.EmailService {
	return &Mailer{
		dialer:   gomail.NewDialer(cfg.Email.Host, cfg.Email.Port, cfg.Email.Username, cfg.Email.Password),
		from:     cfg.Email.From,
		enabled:  cfg.Email.Enabled,
		template: template.Must(template.New("shopping-list").Parse(shoppingListTemplate)),
		logger:   logger.Named("mailer"),
	}
}

// SendShoppingList emails the sectioned list with the PDF attached
func (m *Mailer) SendShoppingList(ctx context.Context, to string, order *list.List, pdf []byte) error {
	if !m.enabled {
		m.logger.Info("Email disabled, skipping delivery", zap.String("to", to))
		return nil
	}

	view := emailView{
		CustomerName:    order.CustomerName,
		AppointmentDate: order.AppointmentDate,
		AppointmentTime: order.AppointmentTime,
	}
	for _, section := range order.Sections() {
		view.Sections = append(view.Sections, sectionView{
			Name:  section,
			Items: order.ItemsIn(section),
		})
	}

	var body bytes.Buffer
	if err := m.template.Execute(&body, view); err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your Mirepoix shopping list")
	msg.SetBody("text/html", body.String())
	if len(pdf) > 0 {
		msg.Attach("shopping-list.pdf", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("Shopping list email sent", zap.String("to", to))
	return nil
}
