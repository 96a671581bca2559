package service

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"trip-album/internal/config"
)

type InviteService interface {
	SendInvite(ctx context.Context, toEmail, toName, albumTitle, inviterName string) error
}

type inviteService struct {
	client *resend.Client
	cfg    *config.Config
}

func NewInviteService(cfg *config.Config) InviteService {
	return &inviteService{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

func (s *inviteService) SendInvite(ctx context.Context, toEmail, toName, albumTitle, inviterName string) error {
	subject := fmt.Sprintf("%s invited you to the album \"%s\"", inviterName, albumTitle)

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Album invitation</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2 style="color: #111827;">Hi %s,</h2>
	<p>
		<strong>%s</strong> invited you to join the shared album
		<strong>%s</strong> on %s. Ask them for your login details, then open
		the album to browse the trip and add your own photos and comments.
	</p>
	<p style="color: #6b7280; font-size: 13px;">
		If you were not expecting this invitation you can ignore this email.
	</p>
</body>
</html>`, toName, inviterName, albumTitle, s.cfg.AppName)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.cfg.AppName, s.cfg.FromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
