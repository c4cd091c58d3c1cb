package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
)

// LoadStatus distingue cómo se obtuvo una colección cargada, en lugar de
// enmascarar la recuperación de corrupción como un éxito silencioso.
type LoadStatus int

const (
	// LoadOK el documento existía y era conforme al esquema.
	LoadOK LoadStatus = iota
	// LoadSeeded el documento no existía o no se pudo decodificar; se creó
	// y persistió la colección por defecto.
	LoadSeeded
	// LoadRepaired el documento era decodificable pero violaba el esquema;
	// se usa la versión reparada (no persistida hasta el próximo guardado).
	LoadRepaired
)

// CatalogResult es el resultado etiquetado de cargar el catálogo.
type CatalogResult struct {
	Products   []entity.Product
	Status     LoadStatus
	Violations []string // vacío salvo cuando Status == LoadRepaired
}

// OrdersResult es el resultado etiquetado de cargar los pedidos.
type OrdersResult struct {
	Orders []entity.Order
	Status LoadStatus
}

// DetailsResult es el resultado etiquetado de cargar los detalles de pedidos.
type DetailsResult struct {
	Details []entity.OrderDetail
	Status  LoadStatus
}

// CatalogRepository es el puerto de persistencia del catálogo de productos.
type CatalogRepository interface {
	// Load nunca falla por documento ausente o corrupto: siembra o repara.
	// El error cubre únicamente fallos de escritura al persistir la siembra.
	Load() (CatalogResult, error)
	// Save respalda antes de sobrescribir y poda respaldos viejos después.
	// Un fallo de escritura se devuelve al llamador; el documento previo
	// queda intacto.
	Save(products []entity.Product) error
}

// OrderRepository es el puerto de persistencia de pedidos.
type OrderRepository interface {
	Load() (OrdersResult, error)
	Save(orders []entity.Order) error
}

// DetailRepository es el puerto de persistencia de detalles de pedidos.
type DetailRepository interface {
	Load() (DetailsResult, error)
	Save(details []entity.OrderDetail) error
}

// ExportSnapshot es la foto de datos que el motor de reportes entrega al
// exportador; el exportador no calcula nada, solo serializa.
type ExportSnapshot struct {
	Products []entity.Product
	Orders   []entity.Order
	Details  []entity.OrderDetail

	TotalVentas     decimal.Decimal
	ValorInventario decimal.Decimal
}

// ExportFiles son las rutas de los tres documentos escritos por exportación.
type ExportFiles struct {
	Productos   string
	Ventas      string
	Consolidado string
}

// ReportExporter escribe los tres documentos de reporte con un timestamp
// común por invocación.
type ReportExporter interface {
	Export(snap ExportSnapshot) (ExportFiles, error)
}
