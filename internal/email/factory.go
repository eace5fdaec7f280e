package email

import (
	"fmt"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/domain"
)

// Supported values of EMAIL_PROVIDER.
const (
	ProviderLog    = "log"
	ProviderResend = "resend"
)

// NewEmailService picks the sender named by EMAIL_PROVIDER. An empty provider
// logs messages instead of sending them.
func NewEmailService(cfg config.Provider) (domain.EmailSender, error) {
	switch cfg.GetEmailProvider() {
	case ProviderLog, "":
		return &LogSender{senderAddress: cfg.GetEmailSender()}, nil
	case ProviderResend:
		if cfg.GetEmailAPIKey() == "" {
			return nil, fmt.Errorf("email provider %q requires EMAIL_API_KEY", ProviderResend)
		}
		if cfg.GetEmailSender() == "" {
			return nil, fmt.Errorf("email provider %q requires EMAIL_SENDER", ProviderResend)
		}
		return NewResendSender(cfg.GetEmailAPIKey(), cfg.GetEmailSender()), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q (valid: %s, %s)", cfg.GetEmailProvider(), ProviderLog, ProviderResend)
	}
}
