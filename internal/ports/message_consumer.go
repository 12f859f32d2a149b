package ports

import "context"

// MessageConsumer — фоновый приём заявок партнёров; Run блокирует до отмены ctx.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
