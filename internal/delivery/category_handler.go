package delivery

import (
	"net/http"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase domain.CategoryUseCase
	paging  PageDefaults
	log     *logrus.Logger
}

func NewCategoryHandler(uc domain.CategoryUseCase, paging PageDefaults, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		paging:  paging,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.FindAll)
		categories.GET("/:id", h.FindByID)
		categories.POST("", h.Insert)
		categories.PUT("/:id", h.Update)
		categories.DELETE("/:id", h.Delete)
	}
}

func (h *CategoryHandler) FindAll(c *gin.Context) {
	req, err := parsePageRequest(c, h.paging, domain.CategorySortProperties)
	if err != nil {
		h.log.Warnf("Invalid pagination for categories: %v", err)
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.useCase.FindAllPaged(c.Request.Context(), req)
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		serviceErrorResponse(c, err, "Categories not found")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CategoryHandler) FindByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.log.Warnf("Invalid category ID parameter: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	category, err := h.useCase.FindByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get category by ID %d: %v", id, err)
		serviceErrorResponse(c, err, "Entity not found")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Insert(c *gin.Context) {
	var dto domain.CategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		h.log.Warnf("Failed to bind JSON for create category: %v", err)
		ValidationErrorResponse(c, err)
		return
	}

	created, err := h.useCase.Insert(c.Request.Context(), dto)
	if err != nil {
		h.log.Errorf("Failed to create category '%s': %v", dto.Name, err)
		serviceErrorResponse(c, err, "Entity not found")
		return
	}

	c.Header("Location", location(c, created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.log.Warnf("Invalid category ID parameter for update: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var dto domain.CategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		h.log.Warnf("Failed to bind JSON for update category ID %d: %v", id, err)
		ValidationErrorResponse(c, err)
		return
	}

	updated, err := h.useCase.Update(c.Request.Context(), id, dto)
	if err != nil {
		h.log.Warnf("Failed to update category ID %d: %v", id, err)
		serviceErrorResponse(c, err, "Id not found "+c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.log.Warnf("Invalid category ID parameter for delete: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		h.log.Warnf("Failed to delete category ID %d: %v", id, err)
		serviceErrorResponse(c, err, "Id not found "+c.Param("id"))
		return
	}
	c.Status(http.StatusNoContent)
}
