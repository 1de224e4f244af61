package usecases

import "context"

// PendingNotifier is told about payers that just entered the approval queue.
type PendingNotifier interface {
	NotifyPending(ctx context.Context, payerNames []string)
}
