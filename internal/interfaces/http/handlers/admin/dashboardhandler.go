package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deskline-inc/deskline/internal/application/ticket/usecases"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
	"github.com/deskline-inc/deskline/internal/shared/utils"
)

type DashboardHandler struct {
	getDashboardUC usecases.GetDashboardExecutor
	logger         logger.Interface
}

func NewDashboardHandler(getDashboardUC usecases.GetDashboardExecutor, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUC: getDashboardUC,
		logger:         logger,
	}
}

// GetDashboard handles GET /admin/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	result, err := h.getDashboardUC.Execute(c.Request.Context(), usecases.GetDashboardQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
