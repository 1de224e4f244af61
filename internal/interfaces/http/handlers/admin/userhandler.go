package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

type UserHandler struct {
	listUC listUsersUseCase
	logger logger.Interface
}

func NewUserHandler(listUC listUsersUseCase, logger logger.Interface) *UserHandler {
	return &UserHandler{listUC: listUC, logger: logger}
}

// List handles GET /admin/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list users", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RenderPage(c, gin.H{"items": users})
}
