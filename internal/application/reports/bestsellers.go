package reports

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
)

// topSellersLimit cuántos productos entran al ranking.
const topSellersLimit = 10

// nombreProductoDesconocido se usa cuando una línea referencia un código que
// ya no existe en el catálogo; el reporte nunca falla por ese hueco.
const nombreProductoDesconocido = "Producto Desconocido"

// TopSeller es una posición del ranking de más vendidos.
type TopSeller struct {
	Posicion int // 1-based
	Codigo   string
	Nombre   string
	Cantidad int
	Ingresos decimal.Decimal
}

// TopSellers une las líneas de todos los pedidos por código de producto,
// suma cantidad e ingresos, y rankea descendente por cantidad. Los empates
// conservan el orden de primer encuentro (orden estable). Devuelve hasta 10
// posiciones con rango 1-based.
func TopSellers(detalles []entity.OrderDetail, productos []entity.Product) []TopSeller {
	type acumulado struct {
		cantidad int
		ingresos decimal.Decimal
	}
	porCodigo := make(map[string]*acumulado)
	var orden []string // primer encuentro de cada código

	for _, d := range detalles {
		for _, l := range d.Lines {
			acc, ok := porCodigo[l.ProductCode]
			if !ok {
				acc = &acumulado{}
				porCodigo[l.ProductCode] = acc
				orden = append(orden, l.ProductCode)
			}
			acc.cantidad += l.Quantity
			acc.ingresos = acc.ingresos.Add(l.Subtotal)
		}
	}

	nombres := make(map[string]string, len(productos))
	for _, p := range productos {
		nombres[p.Code] = p.Name
	}

	sort.SliceStable(orden, func(i, j int) bool {
		return porCodigo[orden[i]].cantidad > porCodigo[orden[j]].cantidad
	})

	limite := len(orden)
	if limite > topSellersLimit {
		limite = topSellersLimit
	}

	ranking := make([]TopSeller, 0, limite)
	for i := 0; i < limite; i++ {
		codigo := orden[i]
		nombre, ok := nombres[codigo]
		if !ok {
			nombre = nombreProductoDesconocido
		}
		ranking = append(ranking, TopSeller{
			Posicion: i + 1,
			Codigo:   codigo,
			Nombre:   nombre,
			Cantidad: porCodigo[codigo].cantidad,
			Ingresos: porCodigo[codigo].ingresos,
		})
	}
	return ranking
}
