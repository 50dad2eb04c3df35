package notification

import (
	"context"

	"arborlove_quote/internal/domain/entities"
	"arborlove_quote/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogQuoteNotifier stands in for email delivery when sending is disabled.
type LogQuoteNotifier struct {
	log *zap.Logger
}

var _ interfaces.IQuoteNotifier = (*LogQuoteNotifier)(nil)

func NewLogQuoteNotifier(log *zap.Logger) *LogQuoteNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogQuoteNotifier{log: log}
}

func (n *LogQuoteNotifier) SendQuoteConfirmation(_ context.Context, q entities.Quote) error {
	n.log.Info("skipping quote confirmation email",
		zap.String("quote_id", q.ID),
		zap.String("client_email", q.ClientDetails.Email),
	)
	return nil
}
