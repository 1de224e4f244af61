package admin

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/application/mapping/usecases"
	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

const pathApprovals = "/admin/approvals"

// ApprovalHandler serves the approval queue of pending NAIC mappings.
type ApprovalHandler struct {
	listUC    listPendingUseCase
	processUC processApprovalsUseCase
	logger    logger.Interface
}

func NewApprovalHandler(listUC listPendingUseCase, processUC processApprovalsUseCase, logger logger.Interface) *ApprovalHandler {
	return &ApprovalHandler{
		listUC:    listUC,
		processUC: processUC,
		logger:    logger,
	}
}

// List handles GET /admin/approvals
func (h *ApprovalHandler) List(c *gin.Context) {
	pending, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list pending approvals", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RenderPage(c, gin.H{"items": pending})
}

// Process handles POST /admin/approvals/process with action and repeated payer_ids.
func (h *ApprovalHandler) Process(c *gin.Context) {
	result, err := h.processUC.Execute(c.Request.Context(), usecases.ProcessApprovalsCommand{
		PayerIDs:  formUints(c, "payer_ids"),
		Action:    c.PostForm("action"),
		ChangedBy: c.GetString(constants.ContextKeyUsername),
	})
	if err != nil {
		utils.RedirectWithError(c, pathApprovals, err)
		return
	}

	if len(result.Blocked) > 0 {
		h.logger.Warnw("payers without a NAIC were not approved", "payer_ids", result.Blocked)
		utils.RedirectWithFlash(c, pathApprovals, utils.FlashWarning,
			fmt.Sprintf("%s %d item(s) without a NAIC were not approved.", result.FlashMessage(), len(result.Blocked)))
		return
	}

	utils.RedirectWithFlash(c, pathApprovals, utils.FlashSuccess, result.FlashMessage())
}
