package notification

import (
	"context"
	"errors"
	"fmt"

	"arborlove_quote/internal/domain/entities"
	"arborlove_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

const (
	ClientSubject = "Your Tree Service Quote"
	AdminSubject  = "New Quote Requested"
)

// SESAPI is the part of *ses.Client the notifier uses.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

var _ SESAPI = (*ses.Client)(nil)

// SESQuoteNotifier emails the client a confirmation and the business a
// summary of every new quote.
type SESQuoteNotifier struct {
	client     SESAPI
	source     string
	adminEmail string
	log        *zap.Logger
}

var _ interfaces.IQuoteNotifier = (*SESQuoteNotifier)(nil)

func NewSESQuoteNotifier(client SESAPI, source, adminEmail string, log *zap.Logger) *SESQuoteNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &SESQuoteNotifier{client: client, source: source, adminEmail: adminEmail, log: log}
}

// SendQuoteConfirmation sends both messages. The admin message is attempted
// even when the client message fails; every failure is returned.
func (n *SESQuoteNotifier) SendQuoteConfirmation(ctx context.Context, q entities.Quote) error {
	clientBody, err := render(clientTemplate, q)
	if err != nil {
		return err
	}
	adminBody, err := render(adminTemplate, q)
	if err != nil {
		return err
	}

	var errs []error
	if err := n.send(ctx, q.ClientDetails.Email, ClientSubject, clientBody); err != nil {
		errs = append(errs, fmt.Errorf("client email: %w", err))
	}
	if err := n.send(ctx, n.adminEmail, AdminSubject, adminBody); err != nil {
		errs = append(errs, fmt.Errorf("admin email: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("send quote %s confirmation: %w", q.ID, errors.Join(errs...))
	}

	n.log.Info("quote confirmation sent", zap.String("quote_id", q.ID))
	return nil
}

func (n *SESQuoteNotifier) send(ctx context.Context, to, subject, html string) error {
	_, err := n.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(html), Charset: aws.String("UTF-8")},
			},
		},
		Source: aws.String(n.source),
	})
	return err
}
