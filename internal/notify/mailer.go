package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/ribbitly/backend/internal/models"
)

// SMTPNotifier sends the new-follower email directly over SMTP.
type SMTPNotifier struct {
	addr    string // host:port
	from    string
	baseURL string // public base URL used to build profile links
}

// NewSMTPNotifier creates an SMTPNotifier. from defaults to
// do_not_reply@example.com when empty.
func NewSMTPNotifier(addr, from, baseURL string) *SMTPNotifier {
	if from == "" {
		from = "do_not_reply@example.com"
	}
	return &SMTPNotifier{addr: addr, from: from, baseURL: strings.TrimRight(baseURL, "/")}
}

func (n *SMTPNotifier) NotifyNewFollower(_ context.Context, followed, follower *models.User) error {
	subject := fmt.Sprintf("@%s is now following you!", follower.Username)
	profileURL := fmt.Sprintf("%s/users/%d", n.baseURL, follower.ID)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.from)
	fmt.Fprintf(&msg, "To: %s\r\n", followed.Email)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("\r\n")
	fmt.Fprintf(&msg, "Hi %s,\r\n\r\n", followed.Name)
	fmt.Fprintf(&msg, "@%s is now following you on Ribbitly.\r\n\r\n", follower.Username)
	fmt.Fprintf(&msg, "View their profile: %s\r\n", profileURL)

	return smtp.SendMail(n.addr, nil, n.from, []string{followed.Email}, []byte(msg.String()))
}
