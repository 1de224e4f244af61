package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/application/directory/usecases"
	"github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

const msgCarrierNotFound = "Carrier not found"

// DirectoryHandler serves the public pages: landing, directory grid and carrier detail.
type DirectoryHandler struct {
	landingUC landingPageUseCase
	listUC    listDirectoryUseCase
	detailUC  carrierDetailUseCase
	logger    logger.Interface
}

func NewDirectoryHandler(
	landingUC landingPageUseCase,
	listUC listDirectoryUseCase,
	detailUC carrierDetailUseCase,
	logger logger.Interface,
) *DirectoryHandler {
	return &DirectoryHandler{
		landingUC: landingUC,
		listUC:    listUC,
		detailUC:  detailUC,
		logger:    logger,
	}
}

// Landing handles GET /
func (h *DirectoryHandler) Landing(c *gin.Context) {
	page, err := h.landingUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to build landing page", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RenderPage(c, page)
}

// Directory handles GET /directory?page=&search=
func (h *DirectoryHandler) Directory(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	page, err := h.listUC.Execute(c.Request.Context(), usecases.ListDirectoryQuery{
		Page:   pagination.Page,
		Search: c.Query("search"),
	})
	if err != nil {
		h.logger.Errorw("failed to list directory", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RenderPage(c, page)
}

// CarrierDetail handles GET /carrier/:id. Unknown carriers flash and go back home.
func (h *DirectoryHandler) CarrierDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.RedirectWithFlash(c, "/", utils.FlashDanger, msgCarrierNotFound)
		return
	}

	detail, err := h.detailUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		if errors.IsNotFoundError(err) {
			utils.RedirectWithFlash(c, "/", utils.FlashDanger, msgCarrierNotFound)
			return
		}
		h.logger.Errorw("failed to get carrier detail", "carrier_id", id, "error", err)
		utils.RedirectWithError(c, "/", err)
		return
	}

	utils.RenderPage(c, detail)
}
