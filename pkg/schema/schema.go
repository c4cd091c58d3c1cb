// Package schema define las formas crudas de los documentos persistidos y la
// validación/reparación del catálogo. Las claves JSON son las históricas del
// sistema y deben round-trippear sin pérdida por guardar/cargar.
package schema

import "encoding/json"

// ProductRecord es la forma persistida de un producto.
type ProductRecord struct {
	CodigoProducto  string  `json:"codigo_producto"`
	Nombre          string  `json:"nombre"`
	Categoria       string  `json:"categoria"`
	Descripcion     string  `json:"descripcion"`
	Proveedor       string  `json:"proveedor"`
	CantidadEnStock int     `json:"cantidad_en_stock"`
	PrecioVenta     float64 `json:"precio_venta"`
	PrecioProveedor float64 `json:"precio_proveedor"`
}

// CatalogDocument es el documento principal. La clave "pedidos" es un
// remanente histórico: los pedidos vivos están en los documentos hermanos,
// pero la clave se conserva (siempre vacía) por compatibilidad.
type CatalogDocument struct {
	Productos []ProductRecord   `json:"productos"`
	Pedidos   []json.RawMessage `json:"pedidos"`
}

// OrderRecord es la forma persistida de un pedido.
type OrderRecord struct {
	OrderID     string  `json:"order_id"`
	FechaPedido string  `json:"fecha_pedido"` // "YYYY-MM-DD HH:MM:SS"
	Total       float64 `json:"total"`
}

// OrdersDocument es el documento de pedidos.
type OrdersDocument struct {
	Pedidos []OrderRecord `json:"pedidos"`
}

// DetailLine es una línea de pedido persistida.
type DetailLine struct {
	CodigoProducto string  `json:"codigo_producto"`
	Cantidad       int     `json:"cantidad"`
	Subtotal       float64 `json:"subtotal"`
}

// OrderDetailRecord agrupa las líneas de un pedido, referenciado por order_id.
type OrderDetailRecord struct {
	OrderID  string       `json:"order_id"`
	Detalles []DetailLine `json:"detalles"`
}

// DetailsDocument es el documento de detalles de pedidos.
type DetailsDocument struct {
	DetallesPedidos []OrderDetailRecord `json:"detalles_pedidos"`
}

// EmptyCatalog devuelve un catálogo vacío bien formado.
func EmptyCatalog() CatalogDocument {
	return CatalogDocument{Productos: []ProductRecord{}, Pedidos: []json.RawMessage{}}
}

// EmptyOrders devuelve un documento de pedidos vacío.
func EmptyOrders() OrdersDocument {
	return OrdersDocument{Pedidos: []OrderRecord{}}
}

// EmptyDetails devuelve un documento de detalles vacío.
func EmptyDetails() DetailsDocument {
	return DetailsDocument{DetallesPedidos: []OrderDetailRecord{}}
}

// Seed devuelve el catálogo inicial con el que se arranca un sistema sin
// datos: dos productos de muestra y cero pedidos.
func Seed() CatalogDocument {
	return CatalogDocument{
		Productos: []ProductRecord{
			{
				CodigoProducto:  "PAN-001",
				Nombre:          "Pan Francés",
				Categoria:       "pan",
				Descripcion:     "Pan tradicional francés crujiente",
				Proveedor:       "Panadería Central",
				CantidadEnStock: 50,
				PrecioVenta:     1.50,
				PrecioProveedor: 0.75,
			},
			{
				CodigoProducto:  "PASTEL-001",
				Nombre:          "Torta de Chocolate",
				Categoria:       "pastel",
				Descripcion:     "Deliciosa torta de chocolate con cobertura",
				Proveedor:       "Dulces Delicias",
				CantidadEnStock: 10,
				PrecioVenta:     25.00,
				PrecioProveedor: 15.00,
			},
		},
		Pedidos: []json.RawMessage{},
	}
}
