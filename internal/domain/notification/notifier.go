package notification

import (
	"context"

	"go.uber.org/zap"

	"jobhub/internal/common"
)

type Event struct {
	Name      string            `json:"name"`
	AccountID *common.UUID      `json:"account_id,omitempty"`
	Payload   map[string]string `json:"payload,omitempty"`
}

// Notifier is the outbound notification collaborator. Delivery is
// best-effort and fire-and-forget; callers never wait on or retry it, and a
// failure must not roll back the primary entity mutation.
type Notifier interface {
	Send(ctx context.Context, event Event) error
}

type Noop struct{}

func (Noop) Send(ctx context.Context, event Event) error {
	return nil
}

// LogNotifier records events to the service log in place of a real delivery
// channel.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(ctx context.Context, event Event) error {
	fields := []zap.Field{zap.String("event", event.Name)}
	if event.AccountID != nil {
		fields = append(fields, zap.String("account_id", event.AccountID.String()))
	}
	for key, value := range event.Payload {
		fields = append(fields, zap.String(key, value))
	}
	n.logger.Info("notification", fields...)
	return nil
}
