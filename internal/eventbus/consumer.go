package eventbus

import "context"

// Consumer handles reconciliation domain events pulled off the bus. Consume
// is retried on error; GetWorkerCount sets how many workers drain the
// consumer's channel.
type Consumer interface {
	Consume(ctx context.Context, event Event) error
	GetWorkerCount() int
}
