package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/panaderia-pro/pkg/schema"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

// roundTrip convierte un CatalogDocument de vuelta a JSON genérico para
// poder pasarlo otra vez por Validate/Repair.
func roundTrip(t *testing.T, doc schema.CatalogDocument) any {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return decode(t, string(data))
}

func TestValidate_CatalogoConforme(t *testing.T) {
	datos := roundTrip(t, schema.Seed())
	assert.Empty(t, schema.Validate(datos),
		"el catálogo semilla debe pasar la validación sin violaciones")
}

func TestValidate_TopLevelNoEsMapa(t *testing.T) {
	violaciones := schema.Validate([]any{"no", "es", "mapa"})
	require.Len(t, violaciones, 1)
	assert.Contains(t, violaciones[0], "diccionario")
}

func TestValidate_FaltaClaveProductos(t *testing.T) {
	violaciones := schema.Validate(map[string]any{"pedidos": []any{}})
	require.Len(t, violaciones, 1)
	assert.Contains(t, violaciones[0], "productos")
}

func TestValidate_CamposFaltantesYTiposMalos(t *testing.T) {
	datos := decode(t, `{"productos": [
		{"codigo_producto": "PAN-001"},
		{"codigo_producto": "X", "nombre": "X", "categoria": "pan",
		 "descripcion": "d", "proveedor": "p",
		 "cantidad_en_stock": 2.5, "precio_venta": "gratis", "precio_proveedor": 1.0}
	]}`)

	violaciones := schema.Validate(datos)
	assert.NotEmpty(t, violaciones)
	assert.Contains(t, violaciones, "producto 1: falta el campo 'nombre'")
	assert.Contains(t, violaciones, "producto 2: cantidad_en_stock debe ser un número entero")
	assert.Contains(t, violaciones, "producto 2: precio_venta debe ser un número")
}

func TestRepair_SustituyeDefaults(t *testing.T) {
	datos := decode(t, `{"productos": [
		{"nombre": "Croissant", "precio_venta": 2.5}
	]}`)

	doc := schema.Repair(datos)
	require.Len(t, doc.Productos, 1)
	p := doc.Productos[0]
	assert.Equal(t, "DESCONOCIDO", p.CodigoProducto)
	assert.Equal(t, "Croissant", p.Nombre)
	assert.Equal(t, "otro", p.Categoria)
	assert.Equal(t, "Sin descripción", p.Descripcion)
	assert.Equal(t, "Sin proveedor", p.Proveedor)
	assert.Equal(t, 0, p.CantidadEnStock)
	assert.Equal(t, 2.5, p.PrecioVenta)
	assert.Equal(t, 0.0, p.PrecioProveedor)
}

func TestRepair_DescartaEntradasQueNoSonRegistros(t *testing.T) {
	datos := decode(t, `{"productos": [
		"texto suelto",
		42,
		{"codigo_producto": "PAN-001", "nombre": "Pan"},
		null
	]}`)

	doc := schema.Repair(datos)
	require.Len(t, doc.Productos, 1,
		"solo la entrada con forma de registro debe sobrevivir")
	assert.Equal(t, "PAN-001", doc.Productos[0].CodigoProducto)
}

func TestRepair_TopLevelNoMapaSeCoercionaAVacio(t *testing.T) {
	for _, datos := range []any{nil, "cadena", []any{1, 2}, 3.14} {
		doc := schema.Repair(datos)
		assert.Empty(t, doc.Productos)
		assert.Empty(t, doc.Pedidos)
	}
}

func TestRepair_Idempotente(t *testing.T) {
	casos := []string{
		`{"productos": [{"nombre": "a"}, "basura", {"cantidad_en_stock": 7.0}]}`,
		`{"otra_clave": true}`,
		`{"productos": []}`,
	}
	for _, raw := range casos {
		una := schema.Repair(decode(t, raw))
		dos := schema.Repair(roundTrip(t, una))
		assert.Equal(t, una, dos, "repair(repair(x)) debe ser igual a repair(x) para %s", raw)
	}
}

func TestValidate_DespuesDeRepairSiempreLimpio(t *testing.T) {
	casos := []string{
		`{"productos": [{"nombre": "a"}, 99, {"precio_venta": "x"}]}`,
		`"no soy un catálogo"`,
		`{"productos": "tampoco lista"}`,
	}
	for _, raw := range casos {
		reparado := schema.Repair(decode(t, raw))
		assert.Empty(t, schema.Validate(roundTrip(t, reparado)),
			"validate(repair(x)) debe quedar sin violaciones para %s", raw)
	}
}

func TestSeed_DosProductosDeMuestra(t *testing.T) {
	doc := schema.Seed()
	require.Len(t, doc.Productos, 2)
	assert.Equal(t, "PAN-001", doc.Productos[0].CodigoProducto)
	assert.Equal(t, "PASTEL-001", doc.Productos[1].CodigoProducto)
	assert.Empty(t, doc.Pedidos, "la clave pedidos del documento principal es histórica y va vacía")
}
