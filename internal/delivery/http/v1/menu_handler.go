package v1

import (
	"net/http"

	"ahkii-burger-backend/internal/delivery/http/response"
	"ahkii-burger-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuUC domain.MenuUsecase
}

// NewMenuHandler registers the menu browsing routes (all public)
func NewMenuHandler(public *gin.RouterGroup, menuUC domain.MenuUsecase) {
	handler := &MenuHandler{menuUC: menuUC}

	menu := public.Group("/menu")
	{
		menu.GET("", handler.List)
		menu.GET("/featured", handler.ListFeatured)
		menu.GET("/categories/:category", handler.ListByCategory)
	}

	// Product detail pages use /products/:id, mirroring the site URLs
	public.GET("/products/:id", handler.GetDetails)
}

// MenuListResponse carries the visible items plus the total for the
// "Showing N items" counter on the menu page. Filtered tells the UI whether
// a search/filter was active, so "no items found" only shows when a filter
// genuinely yielded nothing.
type MenuListResponse struct {
	Items    []domain.MenuItem `json:"items"`
	Total    int               `json:"total"`
	Filtered bool              `json:"filtered"`
}

// List godoc
// @Summary      List menu items
// @Description  List the menu, optionally narrowed by category and/or a free-text search over name and description. An empty result is a normal outcome.
// @Tags         menu
// @Produce      json
// @Param        category  query     string  false  "Category filter (burger, sides, drinks)"
// @Param        q         query     string  false  "Free-text search"
// @Success      200       {object}  response.Response{data=MenuListResponse}
// @Router       /menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	filter := domain.MenuFilter{
		Category: c.Query("category"),
		Query:    c.Query("q"),
	}

	items, err := h.menuUC.ListMenu(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Menu retrieved", MenuListResponse{
		Items:    items,
		Total:    len(items),
		Filtered: !filter.IsZero(),
	})
}

// ListFeatured godoc
// @Summary      List featured burgers
// @Description  Items with a transparent showcase image, used by the homepage showcase.
// @Tags         menu
// @Produce      json
// @Success      200  {object}  response.Response{data=MenuListResponse}
// @Router       /menu/featured [get]
func (h *MenuHandler) ListFeatured(c *gin.Context) {
	items, err := h.menuUC.ListFeatured(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Featured items retrieved", MenuListResponse{
		Items: items,
		Total: len(items),
	})
}

// ListByCategory godoc
// @Summary      List one menu category
// @Description  Items of a single category in display order. Unknown categories yield an empty list.
// @Tags         menu
// @Produce      json
// @Param        category  path      string  true  "Category (burger, sides, drinks)"
// @Success      200       {object}  response.Response{data=MenuListResponse}
// @Router       /menu/categories/{category} [get]
func (h *MenuHandler) ListByCategory(c *gin.Context) {
	category := domain.Category(c.Param("category"))

	items, err := h.menuUC.ListByCategory(c.Request.Context(), category)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Menu retrieved", MenuListResponse{
		Items: items,
		Total: len(items),
	})
}

// GetDetails godoc
// @Summary      Get one menu item
// @Description  Look up a single item by its id/slug.
// @Tags         menu
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  response.Response{data=domain.MenuItem}
// @Failure      404  {object}  response.Response
// @Router       /products/{id} [get]
func (h *MenuHandler) GetDetails(c *gin.Context) {
	item, err := h.menuUC.GetItemDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Menu item retrieved", item)
}
