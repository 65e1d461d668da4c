package delivery

import (
	"net/http"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase domain.ProductUseCase
	paging  PageDefaults
	log     *logrus.Logger
}

func NewProductHandler(uc domain.ProductUseCase, paging PageDefaults, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		paging:  paging,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", h.FindAll)
		products.GET("/:id", h.FindByID)
		products.POST("", h.Insert)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

func (h *ProductHandler) FindAll(c *gin.Context) {
	req, err := parsePageRequest(c, h.paging, domain.ProductSortProperties)
	if err != nil {
		h.log.Warnf("Invalid pagination for products: %v", err)
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.useCase.FindAllPaged(c.Request.Context(), req)
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		serviceErrorResponse(c, err, "Products not found")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) FindByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.log.Warnf("Invalid product ID parameter: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.useCase.FindByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %d: %v", id, err)
		serviceErrorResponse(c, err, "Entity not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Insert(c *gin.Context) {
	dto, ok := h.bindProduct(c)
	if !ok {
		return
	}

	created, err := h.useCase.Insert(c.Request.Context(), dto)
	if err != nil {
		h.log.Warnf("Failed to create product '%s': %v", dto.Name, err)
		serviceErrorResponse(c, err, "Category not found")
		return
	}

	c.Header("Location", location(c, created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.log.Warnf("Invalid product ID parameter for update: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	dto, ok := h.bindProduct(c)
	if !ok {
		return
	}

	updated, err := h.useCase.Update(c.Request.Context(), id, dto)
	if err != nil {
		h.log.Warnf("Failed to update product ID %d: %v", id, err)
		serviceErrorResponse(c, err, "Id not found "+c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.log.Warnf("Invalid product ID parameter for delete: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		h.log.Warnf("Failed to delete product ID %d: %v", id, err)
		serviceErrorResponse(c, err, "Id not found "+c.Param("id"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) bindProduct(c *gin.Context) (domain.ProductDTO, bool) {
	var dto domain.ProductDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		h.log.Warnf("Failed to bind JSON for product: %v", err)
		ValidationErrorResponse(c, err)
		return dto, false
	}
	if dto.Price.IsNegative() {
		h.log.Warnf("Rejected product '%s' with negative price %s", dto.Name, dto.Price)
		body := newStandardError(c, http.StatusBadRequest, "Validation failed")
		body.Errors = []FieldMessage{{FieldName: "price", Message: "must not be negative"}}
		c.JSON(http.StatusBadRequest, body)
		return dto, false
	}
	return dto, true
}
