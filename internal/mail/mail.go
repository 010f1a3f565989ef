// mail отвечает за доставку писем со ссылками входа.
// Отправка всегда ограничена контекстом вызывающего: медленный SMTP
// деградирует в ошибку запроса, а не в зависший хендлер.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/aduvalf/harmonie-site/internal/config"
	"github.com/aduvalf/harmonie-site/internal/models"
)

// Mailer — контракт доставки писем входа.
type Mailer interface {
	// SendMagicLink отправляет письмо со ссылкой верификации.
	SendMagicLink(ctx context.Context, to string, portal models.Portal, link string) error
}

// SMTPMailer — реализация Mailer поверх SMTP (go-mail).
type SMTPMailer struct {
	cfg    config.SMTPConfig
	client *gomail.Client
}

// NewSMTP создаёт SMTP-клиент. Аутентификация включается только когда
// заданы учётные данные (локальные релеи ходят без неё).
func NewSMTP(cfg config.SMTPConfig) (*SMTPMailer, error) {
	const op = "mail.NewSMTP"

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}

	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &SMTPMailer{cfg: cfg, client: client}, nil
}

// Темы и тела писем — на французском, как и весь публичный текст сайта.
var portalSubjects = map[models.Portal]string{
	models.PortalAdmin:    "Connexion à l'espace administrateur",
	models.PortalMusician: "Connexion à l'espace musicien",
}

// SendMagicLink отправляет письмо со ссылкой верификации.
func (m *SMTPMailer) SendMagicLink(ctx context.Context, to string, portal models.Portal, link string) error {
	const op = "mail.SendMagicLink"

	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	msg.Subject(portalSubjects[portal])
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"Bonjour,\n\n"+
			"Cliquez sur le lien ci-dessous pour vous connecter :\n\n%s\n\n"+
			"Ce lien est à usage unique et expire rapidement. "+
			"Si vous n'êtes pas à l'origine de cette demande, ignorez ce message.\n",
		link,
	))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

var _ Mailer = (*SMTPMailer)(nil)
