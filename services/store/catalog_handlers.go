package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CatalogUseCaseInterface define a interface para o use case do catálogo
type CatalogUseCaseInterface interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, categoryID int) (*Category, error)
	ListProductsByCategory(ctx context.Context, categoryID int) ([]Product, error)
	CreateCategory(ctx context.Context, category *Category) error
	UpdateCategory(ctx context.Context, categoryID int, category *Category) error
	DeleteCategory(ctx context.Context, categoryID int) error
	SearchProducts(ctx context.Context, filters ProductSearchFilters) ([]Product, error)
	GetProduct(ctx context.Context, productID int) (*Product, error)
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, productID int, product *Product) error
	DeleteProduct(ctx context.Context, productID int) error
}

// CatalogHandler contém os handlers HTTP do catálogo
type CatalogHandler struct {
	useCase CatalogUseCaseInterface
}

// NewCatalogHandler cria uma nova instância de CatalogHandler
func NewCatalogHandler(useCase CatalogUseCaseInterface) *CatalogHandler {
	return &CatalogHandler{useCase: useCase}
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return id, true
}

// ListCategories retorna todas as categorias
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory retorna uma categoria pelo id
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	category, err := h.useCase.GetCategory(c.Request.Context(), categoryID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// ListCategoryProducts retorna os produtos de uma categoria
func (h *CatalogHandler) ListCategoryProducts(c *gin.Context) {
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	products, err := h.useCase.ListProductsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateCategory cria uma categoria (somente ADMIN)
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var category Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.useCase.CreateCategory(c.Request.Context(), &category); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory atualiza uma categoria (somente ADMIN)
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var category Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.useCase.UpdateCategory(c.Request.Context(), categoryID, &category); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory remove uma categoria (somente ADMIN)
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchProducts busca produtos com filtros opcionais de query string
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	var filters ProductSearchFilters

	if raw, ok := c.GetQuery("cat"); ok {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cat must be an integer"})
			return
		}
		filters.CategoryID = &categoryID
	}
	if raw, ok := c.GetQuery("minPrice"); ok {
		minPrice, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minPrice must be a decimal number"})
			return
		}
		filters.MinPrice = &minPrice
	}
	if raw, ok := c.GetQuery("maxPrice"); ok {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxPrice must be a decimal number"})
			return
		}
		filters.MaxPrice = &maxPrice
	}
	filters.SubCategory = c.Query("subCategory")

	products, err := h.useCase.SearchProducts(c.Request.Context(), filters)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct retorna um produto pelo id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.useCase.GetProduct(c.Request.Context(), productID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct cria um produto (somente ADMIN)
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var product Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.useCase.CreateProduct(c.Request.Context(), &product); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct atualiza um produto (somente ADMIN)
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var product Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.useCase.UpdateProduct(c.Request.Context(), productID, &product); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct remove um produto (somente ADMIN)
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.DeleteProduct(c.Request.Context(), productID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
