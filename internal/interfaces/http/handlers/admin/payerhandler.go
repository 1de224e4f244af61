package admin

import (
	"github.com/gin-gonic/gin"

	adminUsecases "github.com/tosinajy/carrier-code-verify/internal/application/admin/usecases"
	mappingUsecases "github.com/tosinajy/carrier-code-verify/internal/application/mapping/usecases"
	reconciliationUsecases "github.com/tosinajy/carrier-code-verify/internal/application/reconciliation/usecases"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

const pathPayers = "/admin/payers"

// PayerHandler serves the payer screen: listing, spreadsheet import, single
// add and NAIC assignment.
type PayerHandler struct {
	listUC         listPayersUseCase
	importUC       importPayersUseCase
	addUC          addPayerUseCase
	assignUC       assignNaicUseCase
	maxUploadBytes int64
	logger         logger.Interface
}

func NewPayerHandler(
	listUC listPayersUseCase,
	importUC importPayersUseCase,
	addUC addPayerUseCase,
	assignUC assignNaicUseCase,
	maxUploadBytes int64,
	logger logger.Interface,
) *PayerHandler {
	return &PayerHandler{
		listUC:         listUC,
		importUC:       importUC,
		addUC:          addUC,
		assignUC:       assignUC,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// List handles GET /admin/payers?status=&search=&page=
func (h *PayerHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), adminUsecases.ListPayersQuery{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   pagination.Page,
	})
	if err != nil {
		h.logger.Errorw("failed to list payers", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RenderPage(c, result)
}

// Import handles POST /admin/payers/import (multipart clearing_house + file).
func (h *PayerHandler) Import(c *gin.Context) {
	clearingHouse := c.PostForm("clearing_house")

	table, err := readUpload(c, h.maxUploadBytes)
	if err != nil {
		utils.RedirectWithFlash(c, pathPayers, utils.FlashDanger, importFailureMessage(err))
		return
	}
	if table == nil {
		utils.RedirectWithFlash(c, pathPayers, utils.FlashDanger, "Clearing House and File are required.")
		return
	}

	result, err := h.importUC.Execute(c.Request.Context(), reconciliationUsecases.ImportPayersCommand{
		ClearingHouse: clearingHouse,
		Header:        table.Header,
		Rows:          table.Rows,
	})
	if err != nil {
		h.logger.Errorw("payer import failed", "clearing_house", clearingHouse, "error", err)
		utils.RedirectWithFlash(c, pathPayers, utils.FlashDanger, importFailureMessage(err))
		return
	}

	utils.RedirectWithFlash(c, pathPayers, utils.FlashInfo, uploadSummary("Upload Results", result))
}

// AddSingle handles POST /admin/payers/single
func (h *PayerHandler) AddSingle(c *gin.Context) {
	_, err := h.addUC.Execute(c.Request.Context(), reconciliationUsecases.AddPayerCommand{
		Code:          c.PostForm("payer_code"),
		Name:          c.PostForm("payer_name"),
		ClearingHouse: c.PostForm("clearing_house"),
	})
	if err != nil {
		utils.RedirectWithError(c, pathPayers, err)
		return
	}

	utils.RedirectWithFlash(c, pathPayers, utils.FlashSuccess, "Payer added successfully.")
}

// AssignNaic handles POST /admin/assign_naic with payer_id and either naic_id or no_naic.
func (h *PayerHandler) AssignNaic(c *gin.Context) {
	cmd := mappingUsecases.AssignNaicCommand{
		PayerID: formUint(c, "payer_id"),
		NoNaic:  c.PostForm("no_naic") != "",
	}
	if naicID := formUint(c, "naic_id"); naicID != 0 {
		cmd.NaicID = &naicID
	}

	if err := h.assignUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.RedirectWithError(c, pathPayers, err)
		return
	}

	utils.RedirectWithFlash(c, pathPayers, utils.FlashSuccess, "Submitted for approval.")
}
