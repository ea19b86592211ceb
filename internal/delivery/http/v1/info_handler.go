package v1

import (
	"net/http"

	"ahkii-burger-backend/internal/delivery/http/response"
	"ahkii-burger-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type InfoHandler struct {
	infoUC domain.InfoUsecase
}

// NewInfoHandler registers the restaurant info route (public)
func NewInfoHandler(public *gin.RouterGroup, infoUC domain.InfoUsecase) {
	handler := &InfoHandler{infoUC: infoUC}
	public.GET("/info", handler.Get)
}

// Get godoc
// @Summary      Restaurant information
// @Description  Address, opening hours, social links and other static business details for the About and Contact pages.
// @Tags         info
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.RestaurantInfo}
// @Router       /info [get]
func (h *InfoHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, "Restaurant info retrieved", h.infoUC.Get())
}
