package jsonstore

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pro/pkg/schema"
)

// Conversión entre las formas persistidas (pkg/schema, float64) y las
// entidades de dominio (decimal). El mismo rol que el mapeo fila→entidad de
// un repositorio SQL.

func productToEntity(r schema.ProductRecord) entity.Product {
	return entity.Product{
		Code:          r.CodigoProducto,
		Name:          r.Nombre,
		Category:      r.Categoria,
		Description:   r.Descripcion,
		Supplier:      r.Proveedor,
		Stock:         r.CantidadEnStock,
		SalePrice:     decimal.NewFromFloat(r.PrecioVenta),
		SupplierPrice: decimal.NewFromFloat(r.PrecioProveedor),
	}
}

func productFromEntity(p entity.Product) schema.ProductRecord {
	return schema.ProductRecord{
		CodigoProducto:  p.Code,
		Nombre:          p.Name,
		Categoria:       p.Category,
		Descripcion:     p.Description,
		Proveedor:       p.Supplier,
		CantidadEnStock: p.Stock,
		PrecioVenta:     p.SalePrice.InexactFloat64(),
		PrecioProveedor: p.SupplierPrice.InexactFloat64(),
	}
}

// ProductsToEntities convierte los registros del catálogo a entidades.
func ProductsToEntities(records []schema.ProductRecord) []entity.Product {
	out := make([]entity.Product, 0, len(records))
	for _, r := range records {
		out = append(out, productToEntity(r))
	}
	return out
}

// ProductsFromEntities convierte entidades a registros persistibles.
func ProductsFromEntities(products []entity.Product) []schema.ProductRecord {
	out := make([]schema.ProductRecord, 0, len(products))
	for _, p := range products {
		out = append(out, productFromEntity(p))
	}
	return out
}

func orderToEntity(r schema.OrderRecord) entity.Order {
	return entity.Order{
		ID:          r.OrderID,
		FechaPedido: r.FechaPedido,
		Total:       decimal.NewFromFloat(r.Total),
	}
}

func orderFromEntity(o entity.Order) schema.OrderRecord {
	return schema.OrderRecord{
		OrderID:     o.ID,
		FechaPedido: o.FechaPedido,
		Total:       o.Total.InexactFloat64(),
	}
}

// OrdersToEntities convierte registros de pedidos a entidades.
func OrdersToEntities(records []schema.OrderRecord) []entity.Order {
	out := make([]entity.Order, 0, len(records))
	for _, r := range records {
		out = append(out, orderToEntity(r))
	}
	return out
}

// OrdersFromEntities convierte pedidos a registros persistibles.
func OrdersFromEntities(orders []entity.Order) []schema.OrderRecord {
	out := make([]schema.OrderRecord, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderFromEntity(o))
	}
	return out
}

func detailToEntity(r schema.OrderDetailRecord) entity.OrderDetail {
	lines := make([]entity.OrderLine, 0, len(r.Detalles))
	for _, d := range r.Detalles {
		lines = append(lines, entity.OrderLine{
			ProductCode: d.CodigoProducto,
			Quantity:    d.Cantidad,
			Subtotal:    decimal.NewFromFloat(d.Subtotal),
		})
	}
	return entity.OrderDetail{OrderID: r.OrderID, Lines: lines}
}

func detailFromEntity(d entity.OrderDetail) schema.OrderDetailRecord {
	detalles := make([]schema.DetailLine, 0, len(d.Lines))
	for _, l := range d.Lines {
		detalles = append(detalles, schema.DetailLine{
			CodigoProducto: l.ProductCode,
			Cantidad:       l.Quantity,
			Subtotal:       l.Subtotal.InexactFloat64(),
		})
	}
	return schema.OrderDetailRecord{OrderID: d.OrderID, Detalles: detalles}
}

// DetailsToEntities convierte registros de detalles a entidades.
func DetailsToEntities(records []schema.OrderDetailRecord) []entity.OrderDetail {
	out := make([]entity.OrderDetail, 0, len(records))
	for _, r := range records {
		out = append(out, detailToEntity(r))
	}
	return out
}

// DetailsFromEntities convierte detalles a registros persistibles.
func DetailsFromEntities(details []entity.OrderDetail) []schema.OrderDetailRecord {
	out := make([]schema.OrderDetailRecord, 0, len(details))
	for _, d := range details {
		out = append(out, detailFromEntity(d))
	}
	return out
}
