package main

import (
	"context"
	"fmt"
)

// CatalogUseCase contém a lógica de negócio do catálogo (categorias e produtos)
type CatalogUseCase struct {
	categories CategoryRepository
	products   ProductRepository
}

// NewCatalogUseCase cria uma nova instância de CatalogUseCase
func NewCatalogUseCase(categories CategoryRepository, products ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{
		categories: categories,
		products:   products,
	}
}

func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]Category, error) {
	return uc.categories.GetAll(ctx)
}

func (uc *CatalogUseCase) GetCategory(ctx context.Context, categoryID int) (*Category, error) {
	return uc.categories.GetByID(ctx, categoryID)
}

func (uc *CatalogUseCase) ListProductsByCategory(ctx context.Context, categoryID int) ([]Product, error) {
	return uc.products.ListByCategoryID(ctx, categoryID)
}

func (uc *CatalogUseCase) CreateCategory(ctx context.Context, category *Category) error {
	return uc.categories.Create(ctx, category)
}

// UpdateCategory rejeita divergência entre o id da URL e o id do corpo
func (uc *CatalogUseCase) UpdateCategory(ctx context.Context, categoryID int, category *Category) error {
	if category.CategoryID != 0 && category.CategoryID != categoryID {
		return fmt.Errorf("category id in URL does not match category id in body: %w", ErrInvalidArgument)
	}
	category.CategoryID = categoryID
	return uc.categories.Update(ctx, category)
}

func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, categoryID int) error {
	return uc.categories.Delete(ctx, categoryID)
}

func (uc *CatalogUseCase) SearchProducts(ctx context.Context, filters ProductSearchFilters) ([]Product, error) {
	return uc.products.Search(ctx, filters)
}

func (uc *CatalogUseCase) GetProduct(ctx context.Context, productID int) (*Product, error) {
	return uc.products.GetByID(ctx, productID)
}

func (uc *CatalogUseCase) CreateProduct(ctx context.Context, product *Product) error {
	return uc.products.Create(ctx, product)
}

// UpdateProduct rejeita divergência entre o id da URL e o id do corpo
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, productID int, product *Product) error {
	if product.ProductID != 0 && product.ProductID != productID {
		return fmt.Errorf("product id in URL does not match product id in body: %w", ErrInvalidArgument)
	}
	product.ProductID = productID
	return uc.products.Update(ctx, product)
}

func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, productID int) error {
	return uc.products.Delete(ctx, productID)
}
