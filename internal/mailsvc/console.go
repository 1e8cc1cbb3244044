package mailsvc

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"
)

// Console prints messages instead of sending them and keeps a copy for
// inspection.
type Console struct {
	from       mail.Address
	subjPrefix string
	log        Logger

	mu   sync.Mutex
	sent []Message
}

var _ Mailer = (*Console)(nil)

func NewConsole(from, appName string, log Logger) *Console {
	return &Console{
		from:       mail.Address{Name: appName, Address: from},
		subjPrefix: "[" + appName + "] ",
		log:        log,
	}
}

func (c *Console) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return nil
	}
	body := new(strings.Builder)
	_, _ = fmt.Fprintf(body, "From: %s\r\n", c.from.String())
	_, _ = fmt.Fprintf(body, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	_, _ = fmt.Fprintf(body, "Subject: %s\r\n", c.subjPrefix+msg.Subject)
	_, _ = fmt.Fprintf(body, "To: %s\r\n\r\n", joinAddresses(msg.To))
	_, _ = fmt.Fprintf(body, "%s\r\n", msg.Text)
	if c.log != nil {
		c.log.Info(body.String())
	}

	c.mu.Lock()
	c.sent = append(c.sent, msg)
	c.mu.Unlock()
	return nil
}

func (c *Console) Sent() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.sent...)
}
