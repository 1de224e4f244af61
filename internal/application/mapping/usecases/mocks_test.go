package usecases

import "context"

type mockPendingNotifier struct {
	NotifyPendingFunc func(ctx context.Context, payerNames []string)
}

func (m *mockPendingNotifier) NotifyPending(ctx context.Context, payerNames []string) {
	if m.NotifyPendingFunc != nil {
		m.NotifyPendingFunc(ctx, payerNames)
	}
}
