package email

import (
	"context"

	"github.com/tosinajy/carrier-code-verify/internal/shared/goroutine"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

type pendingSender interface {
	SendPendingApprovalEmail(to string, payerNames []string) error
}

// PendingApprovalNotifier mails the admin receiver in the background whenever
// payers enter the approval queue. Delivery failures are logged only.
type PendingApprovalNotifier struct {
	sender   pendingSender
	receiver string
	logger   logger.Interface
}

func NewPendingApprovalNotifier(sender pendingSender, receiver string, log logger.Interface) *PendingApprovalNotifier {
	return &PendingApprovalNotifier{sender: sender, receiver: receiver, logger: log}
}

func (n *PendingApprovalNotifier) NotifyPending(_ context.Context, payerNames []string) {
	if n.receiver == "" || len(payerNames) == 0 {
		return
	}
	names := append([]string(nil), payerNames...)

	goroutine.SafeGo(n.logger, "pending-approval-email", func() {
		if err := n.sender.SendPendingApprovalEmail(n.receiver, names); err != nil {
			n.logger.Warnw("failed to send pending approval email", "receiver", n.receiver, "error", err)
			return
		}
		n.logger.Infow("pending approval email sent", "receiver", n.receiver, "count", len(names))
	})
}
