package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pro/internal/domain"
	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pro/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo: alta, edición y consulta de
// productos. Los productos no se eliminan físicamente.
type ProductUseCase struct {
	catalog repository.CatalogRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(catalog repository.CatalogRepository) *ProductUseCase {
	return &ProductUseCase{catalog: catalog}
}

// AddProductInput datos para crear un producto.
type AddProductInput struct {
	Code          string
	Name          string
	Category      string
	Description   string
	Supplier      string
	Stock         int
	SalePrice     decimal.Decimal
	SupplierPrice decimal.Decimal
}

// Add agrega un producto al catálogo y persiste. Código duplicado →
// ErrDuplicate; stock o precios negativos → ErrInvalidInput.
func (uc *ProductUseCase) Add(in AddProductInput) (entity.Product, error) {
	if in.Code == "" || in.Stock < 0 || in.SalePrice.IsNegative() || in.SupplierPrice.IsNegative() {
		return entity.Product{}, domain.ErrInvalidInput
	}

	res, err := uc.catalog.Load()
	if err != nil {
		return entity.Product{}, err
	}
	for _, p := range res.Products {
		if p.Code == in.Code {
			return entity.Product{}, domain.ErrDuplicate
		}
	}

	producto := entity.Product{
		Code:          in.Code,
		Name:          in.Name,
		Category:      in.Category,
		Description:   in.Description,
		Supplier:      in.Supplier,
		Stock:         in.Stock,
		SalePrice:     in.SalePrice,
		SupplierPrice: in.SupplierPrice,
	}
	productos := append(res.Products, producto)
	if err := uc.catalog.Save(productos); err != nil {
		return entity.Product{}, err
	}
	return producto, nil
}

// EditProductInput campos editables; nil = sin cambio.
type EditProductInput struct {
	Name          *string
	Category      *string
	Description   *string
	Supplier      *string
	Stock         *int
	SalePrice     *decimal.Decimal
	SupplierPrice *decimal.Decimal
}

// Edit modifica un producto existente y persiste. Código inexistente →
// ErrProductoNoExiste.
func (uc *ProductUseCase) Edit(code string, in EditProductInput) (entity.Product, error) {
	res, err := uc.catalog.Load()
	if err != nil {
		return entity.Product{}, err
	}

	idx := -1
	for i, p := range res.Products {
		if p.Code == code {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entity.Product{}, domain.ErrProductoNoExiste
	}

	p := res.Products[idx]
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Supplier != nil {
		p.Supplier = *in.Supplier
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return entity.Product{}, domain.ErrInvalidInput
		}
		p.Stock = *in.Stock
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return entity.Product{}, domain.ErrInvalidInput
		}
		p.SalePrice = *in.SalePrice
	}
	if in.SupplierPrice != nil {
		if in.SupplierPrice.IsNegative() {
			return entity.Product{}, domain.ErrInvalidInput
		}
		p.SupplierPrice = *in.SupplierPrice
	}

	res.Products[idx] = p
	if err := uc.catalog.Save(res.Products); err != nil {
		return entity.Product{}, err
	}
	return p, nil
}

// List devuelve el catálogo completo junto con el estado de carga.
func (uc *ProductUseCase) List() (repository.CatalogResult, error) {
	return uc.catalog.Load()
}

// Find busca un producto por código.
func (uc *ProductUseCase) Find(code string) (entity.Product, error) {
	res, err := uc.catalog.Load()
	if err != nil {
		return entity.Product{}, err
	}
	for _, p := range res.Products {
		if p.Code == code {
			return p, nil
		}
	}
	return entity.Product{}, domain.ErrProductoNoExiste
}
