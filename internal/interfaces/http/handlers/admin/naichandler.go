package admin

import (
	"github.com/gin-gonic/gin"

	adminUsecases "github.com/tosinajy/carrier-code-verify/internal/application/admin/usecases"
	reconciliationUsecases "github.com/tosinajy/carrier-code-verify/internal/application/reconciliation/usecases"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

const pathNaic = "/admin/naic"

type NaicHandler struct {
	listUC         listNaicUseCase
	importUC       importNaicUseCase
	addUC          addNaicUseCase
	maxUploadBytes int64
	logger         logger.Interface
}

func NewNaicHandler(
	listUC listNaicUseCase,
	importUC importNaicUseCase,
	addUC addNaicUseCase,
	maxUploadBytes int64,
	logger logger.Interface,
) *NaicHandler {
	return &NaicHandler{
		listUC:         listUC,
		importUC:       importUC,
		addUC:          addUC,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// List handles GET /admin/naic?search=&page=
func (h *NaicHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), adminUsecases.ListNaicQuery{
		Search: c.Query("search"),
		Page:   pagination.Page,
	})
	if err != nil {
		h.logger.Errorw("failed to list naic", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RenderPage(c, result)
}

// Import handles POST /admin/naic (multipart file).
func (h *NaicHandler) Import(c *gin.Context) {
	table, err := readUpload(c, h.maxUploadBytes)
	if err != nil {
		utils.RedirectWithFlash(c, pathNaic, utils.FlashDanger, importFailureMessage(err))
		return
	}
	if table == nil {
		utils.RedirectWithFlash(c, pathNaic, utils.FlashDanger, "File required.")
		return
	}

	result, err := h.importUC.Execute(c.Request.Context(), reconciliationUsecases.ImportNaicCommand{
		Header: table.Header,
		Rows:   table.Rows,
	})
	if err != nil {
		h.logger.Errorw("naic import failed", "error", err)
		utils.RedirectWithFlash(c, pathNaic, utils.FlashDanger, importFailureMessage(err))
		return
	}

	utils.RedirectWithFlash(c, pathNaic, utils.FlashInfo, uploadSummary("NAIC Import", result))
}

// AddSingle handles POST /admin/naic/single
func (h *NaicHandler) AddSingle(c *gin.Context) {
	_, err := h.addUC.Execute(c.Request.Context(), reconciliationUsecases.AddNaicCommand{
		Cocode:      c.PostForm("cocode"),
		CompanyName: c.PostForm("company_name"),
	})
	if err != nil {
		utils.RedirectWithError(c, pathNaic, err)
		return
	}

	utils.RedirectWithFlash(c, pathNaic, utils.FlashSuccess, "Added.")
}
