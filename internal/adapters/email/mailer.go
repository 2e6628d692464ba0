package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"lessonreserve/internal/domain"
)

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// SendGridConfig holds configuration for SendGrid.
type SendGridConfig struct {
	APIKey string
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
	SendGrid    SendGridConfig
}

// NewMailer creates a mailer from config. Provider "ses" uses AWS SES,
// "sendgrid" uses SendGrid; "noop" or unknown uses a no-op mailer.
func NewMailer(config MailerConfig) (domain.Mailer, error) {
	switch config.Provider {
	case "ses":
		sesConfig := config.SES
		if sesConfig.InsecureSkipVerify {
			log.Printf("[MAILER] WARNING: TLS certificate verification is disabled for SES. Use only in development.")
		}
		httpClient := &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: sesConfig.InsecureSkipVerify,
					MinVersion:         tls.VersionTLS12,
				},
			},
		}
		awsCfg := aws.Config{
			Region: sesConfig.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					sesConfig.AccessKeyID,
					sesConfig.SecretAccessKey,
					"",
				),
			),
			HTTPClient: httpClient,
		}
		client := ses.NewFromConfig(awsCfg)
		return &sesMailer{
			client:      client,
			fromAddress: config.FromAddress,
			fromName:    config.FromName,
		}, nil
	case "sendgrid":
		if config.SendGrid.APIKey == "" {
			return nil, fmt.Errorf("sendgrid provider requires an API key")
		}
		return &sendgridMailer{
			apiKey:      config.SendGrid.APIKey,
			fromAddress: config.FromAddress,
			fromName:    config.FromName,
		}, nil
	case "noop":
		return &noopMailer{}, nil
	default:
		log.Printf("[MAILER] Unknown email provider %q, using noop", config.Provider)
		return &noopMailer{}, nil
	}
}

type sesMailer struct {
	client      *ses.Client
	fromAddress string
	fromName    string
}

func (s *sesMailer) buildInput(msg domain.EmailMessage) *ses.SendEmailInput {
	source := s.fromAddress
	if s.fromName != "" {
		source = fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	}
	return &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses: msg.To,
			CcAddresses: msg.Cc,
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(msg.Body),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}
}

func (s *sesMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	result, err := s.client.SendEmail(ctx, s.buildInput(msg))
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	log.Printf("[MAILER] Email sent via SES. MessageID: %s", aws.ToString(result.MessageId))
	return nil
}

type sendgridMailer struct {
	apiKey      string
	fromAddress string
	fromName    string
}

func (g *sendgridMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(g.fromName, g.fromAddress))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	for _, to := range msg.To {
		p.AddTos(mail.NewEmail("", to))
	}
	for _, cc := range msg.Cc {
		p.AddCCs(mail.NewEmail("", cc))
	}
	m.AddPersonalizations(p)
	m.AddContent(mail.NewContent("text/plain", msg.Body))

	client := sendgrid.NewSendClient(g.apiKey)
	resp, err := client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

type noopMailer struct{}

func (n *noopMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	log.Println("[MAILER] Email would be sent (noop)", "to", msg.To, "cc", msg.Cc, "subject", msg.Subject)
	return nil
}
