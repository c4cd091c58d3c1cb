package schema

import (
	"fmt"
	"math"
)

// camposRequeridos de cada producto, en el orden en que se reportan.
var camposRequeridos = []string{
	"codigo_producto", "nombre", "categoria", "descripcion",
	"proveedor", "cantidad_en_stock", "precio_venta", "precio_proveedor",
}

// Validate revisa la forma del catálogo decodificado (JSON genérico) contra
// el esquema: mapa top-level con secuencia "productos", ocho campos por
// producto, stock entero y precios numéricos. Devuelve la lista de
// violaciones; vacía si y solo si el documento es conforme.
func Validate(datos any) []string {
	var errores []string

	doc, ok := datos.(map[string]any)
	if !ok {
		return []string{"los datos deben ser un diccionario"}
	}

	raw, ok := doc["productos"]
	if !ok {
		return []string{"falta la clave 'productos' en los datos"}
	}
	productos, ok := raw.([]any)
	if !ok {
		return []string{"la clave 'productos' debe ser una lista"}
	}

	for i, entrada := range productos {
		producto, ok := entrada.(map[string]any)
		if !ok {
			errores = append(errores, fmt.Sprintf("producto %d: no es un registro", i+1))
			continue
		}
		for _, campo := range camposRequeridos {
			if _, ok := producto[campo]; !ok {
				errores = append(errores, fmt.Sprintf("producto %d: falta el campo '%s'", i+1, campo))
			}
		}
		if v, ok := producto["cantidad_en_stock"]; ok && !esEntero(v) {
			errores = append(errores, fmt.Sprintf("producto %d: cantidad_en_stock debe ser un número entero", i+1))
		}
		if v, ok := producto["precio_venta"]; ok && !esNumero(v) {
			errores = append(errores, fmt.Sprintf("producto %d: precio_venta debe ser un número", i+1))
		}
		if v, ok := producto["precio_proveedor"]; ok && !esNumero(v) {
			errores = append(errores, fmt.Sprintf("producto %d: precio_proveedor debe ser un número", i+1))
		}
	}

	return errores
}

// Repair normaliza un catálogo malformado sustituyendo valores por defecto
// en los campos ausentes o de tipo incorrecto. Es total e idempotente:
// nunca falla, las entradas que no son registros se descartan y un top-level
// que no es mapa se coerciona a catálogo vacío. El valor reparado se usa en
// memoria; no se reescribe a disco hasta el siguiente guardado explícito.
func Repair(datos any) CatalogDocument {
	doc, ok := datos.(map[string]any)
	if !ok {
		return EmptyCatalog()
	}

	reparado := EmptyCatalog()
	productos, _ := doc["productos"].([]any)
	for _, entrada := range productos {
		producto, ok := entrada.(map[string]any)
		if !ok {
			continue
		}
		reparado.Productos = append(reparado.Productos, ProductRecord{
			CodigoProducto:  getString(producto, "codigo_producto", "DESCONOCIDO"),
			Nombre:          getString(producto, "nombre", "Producto sin nombre"),
			Categoria:       getString(producto, "categoria", "otro"),
			Descripcion:     getString(producto, "descripcion", "Sin descripción"),
			Proveedor:       getString(producto, "proveedor", "Sin proveedor"),
			CantidadEnStock: getInt(producto, "cantidad_en_stock"),
			PrecioVenta:     getFloat(producto, "precio_venta"),
			PrecioProveedor: getFloat(producto, "precio_proveedor"),
		})
	}
	return reparado
}

// esEntero acepta valores numéricos JSON sin parte fraccionaria.
// encoding/json decodifica todo número como float64.
func esEntero(v any) bool {
	switch n := v.(type) {
	case float64:
		return n == math.Trunc(n)
	case int:
		return true
	default:
		return false
	}
}

func esNumero(v any) bool {
	switch v.(type) {
	case float64, int:
		return true
	default:
		return false
	}
}

func getString(m map[string]any, campo, def string) string {
	if s, ok := m[campo].(string); ok {
		return s
	}
	return def
}

func getInt(m map[string]any, campo string) int {
	switch n := m[campo].(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

func getFloat(m map[string]any, campo string) float64 {
	switch n := m[campo].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
