package payer

// MappingStatus is the approval state of a payer's NAIC assignment.
type MappingStatus string

const (
	StatusUnassigned MappingStatus = "unassigned"
	StatusPending    MappingStatus = "pending"
	StatusApproved   MappingStatus = "approved"
	StatusRejected   MappingStatus = "rejected"
)

func (s MappingStatus) String() string {
	return string(s)
}

func (s MappingStatus) IsValid() bool {
	switch s {
	case StatusUnassigned, StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// StatusFilter selects payers on the admin list screen.
type StatusFilter string

const (
	// FilterUnassigned matches payers without a NAIC link, whatever their status.
	FilterUnassigned StatusFilter = "unassigned"
	// FilterAssigned matches payers with a NAIC link.
	FilterAssigned StatusFilter = "assigned"
	FilterPending  StatusFilter = "pending"
	FilterApproved StatusFilter = "approved"
	FilterRejected StatusFilter = "rejected"
	FilterAll      StatusFilter = "all"
)

// ParseStatusFilter defaults to FilterUnassigned when s is empty. Unknown
// values apply no status filter.
func ParseStatusFilter(s string) StatusFilter {
	switch f := StatusFilter(s); f {
	case "":
		return FilterUnassigned
	case FilterUnassigned, FilterAssigned, FilterPending, FilterApproved, FilterRejected, FilterAll:
		return f
	default:
		return FilterAll
	}
}

// ApprovalAction is the decision applied to a batch of pending payers.
type ApprovalAction string

const (
	ActionApprove ApprovalAction = "approve"
	ActionReject  ApprovalAction = "reject"
)

// ParseApprovalAction treats anything other than "approve" as a rejection.
func ParseApprovalAction(s string) ApprovalAction {
	if ApprovalAction(s) == ActionApprove {
		return ActionApprove
	}
	return ActionReject
}

// TargetStatus is the status a payer moves to under this action.
func (a ApprovalAction) TargetStatus() MappingStatus {
	if a == ActionApprove {
		return StatusApproved
	}
	return StatusRejected
}
