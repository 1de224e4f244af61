package dto

// ProcessApprovalsResult reports what a batch decision changed.
type ProcessApprovalsResult struct {
	Action  string `json:"action"`
	Updated int64  `json:"updated"`
	// Blocked lists selected payers that stayed put because they have no NAIC link.
	Blocked         []uint `json:"blocked"`
	CarriersCreated int    `json:"carriers_created"`
	CarriersMoved   int    `json:"carriers_moved"`
}

// FlashMessage is the confirmation shown after the batch.
func (r *ProcessApprovalsResult) FlashMessage() string {
	if r.Action == "approve" {
		return "Items approved."
	}
	return "Items rejected."
}
