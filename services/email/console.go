package emailsvc

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/mail"
	"net/textproto"
	"strings"
	"sync"
	"time"

	"github.com/trezcool/stockwise/core"
)

var (
	SentMessages = make([]core.EmailMessage, 0)
	mu           sync.Mutex
)

type consoleService struct {
	from            mail.Address
	subjPrefix      string
	frontendBaseURL string
	out             io.Writer
	logger          core.Logger
}

var _ core.EmailService = (*consoleService)(nil)

// NewConsoleService writes emails to the standard logger instead of sending them. Used in DEV.
func NewConsoleService(conf *core.Config, logger core.Logger) core.EmailService {
	return newConsoleService(conf, logger, log.Writer())
}

func newConsoleService(conf *core.Config, logger core.Logger, out io.Writer) *consoleService {
	return &consoleService{
		from:            mail.Address{Name: conf.AppName, Address: conf.DefaultFromEmail},
		subjPrefix:      subjectPrefix(conf),
		frontendBaseURL: conf.FrontendBaseURL,
		out:             out,
		logger:          logger,
	}
}

func (svc consoleService) SendMessages(messages ...*core.EmailMessage) {
	for _, msg := range messages {
		go svc.sendOne(msg)
	}
}

func (svc consoleService) sendOne(msg *core.EmailMessage) {
	if deliver(msg, svc.frontendBaseURL, svc.logger, svc.write) {
		mu.Lock()
		SentMessages = append(SentMessages, *msg)
		mu.Unlock()
	}
}

func (svc consoleService) write(msg core.EmailMessage) error {
	_, err := io.WriteString(svc.out, svc.format(msg))
	return err
}

// format renders msg as a multipart/alternative MIME message.
func (svc consoleService) format(msg core.EmailMessage) string {
	var b strings.Builder
	headers := [][2]string{
		{"From", svc.from.String()},
		{"MIME-Version", "1.0"},
		{"Date", time.Now().Format(time.RFC1123Z)},
		{"Subject", svc.subjPrefix + msg.Subject},
		{"To", joinAddresses(msg.To)},
		{"CC", joinAddresses(msg.Cc)},
		{"BCC", joinAddresses(msg.Bcc)},
	}
	for _, h := range headers {
		_, _ = fmt.Fprintf(&b, "%s: %s\r\n", h[0], h[1])
	}

	parts := multipart.NewWriter(&b)
	_, _ = fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", parts.Boundary())
	writePart(parts, "text/plain", msg.TextContent)
	if msg.HTMLContent != "" {
		writePart(parts, "text/html", msg.HTMLContent)
	}
	_ = parts.Close()
	b.WriteString("\n")
	return b.String()
}

func writePart(w *multipart.Writer, contentType, body string) {
	pw, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {contentType + "; charset=utf-8"}})
	if err == nil {
		_, _ = fmt.Fprintf(pw, "%s\r\n", body)
	}
}

type consoleServiceMock struct {
	*consoleService
}

// NewConsoleServiceMock sends synchronously and silently, recording SentMessages.
func NewConsoleServiceMock(conf *core.Config, logger core.Logger) core.EmailService {
	return &consoleServiceMock{consoleService: newConsoleService(conf, logger, io.Discard)}
}

func (svc *consoleServiceMock) SendMessages(messages ...*core.EmailMessage) {
	for _, msg := range messages {
		svc.sendOne(msg)
	}
}

// ResetSentMessages clears the recorded messages.
func ResetSentMessages() {
	mu.Lock()
	SentMessages = SentMessages[:0]
	mu.Unlock()
}
