package emailsvc

import (
	"net/mail"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/stockwise/core"
)

// deliverFunc hands a rendered message to a transport.
type deliverFunc func(msg core.EmailMessage) error

// deliver renders msg then passes it to send. Messages without recipients or content are dropped.
func deliver(msg *core.EmailMessage, frontendBaseURL string, logger core.Logger, send deliverFunc) bool {
	if err := msg.Render(frontendBaseURL); err != nil {
		logger.Error("rendering email", errors.Wrap(err, "rendering email"))
		return false
	}
	if !msg.HasRecipients() || !msg.HasContent() {
		return false
	}
	if err := send(*msg); err != nil {
		logger.Error("sending email", errors.Wrapf(err, "sending %q", msg.Subject))
		return false
	}
	return true
}

func subjectPrefix(conf *core.Config) string {
	return "[" + conf.AppName + "] "
}

func joinAddresses(addrs []mail.Address) string {
	parts := make([]string, len(addrs))
	for i, a := range addrs {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}
