package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/panaderia-pro/pkg/config"
)

func TestLoad_CreaArchivoConDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "Maison du Pain", cfg.Sistema.NombreEmpresa)
	assert.Equal(t, 5, cfg.Inventario.StockMinimo)
	assert.Equal(t, 30, cfg.Inventario.DiasRetenerRespaldos)
	assert.Equal(t, "COP", cfg.Ventas.Moneda)
	assert.Equal(t, 0.19, cfg.Ventas.Impuestos)
	assert.True(t, cfg.Reportes.IncluirDetalles)

	_, err = os.Stat(filepath.Join(dir, "config", "config.json"))
	require.NoError(t, err, "la primera carga materializa config.json editable")
}

func TestLoad_LeeValoresDelArchivo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	contenido := `{
		"sistema": {"nombre_empresa": "Panadería La Espiga"},
		"inventario": {"stock_minimo": 8, "dias_retener_respaldos": 7},
		"ventas": {"moneda": "USD"}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.json"), []byte(contenido), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "Panadería La Espiga", cfg.Sistema.NombreEmpresa)
	assert.Equal(t, 8, cfg.Inventario.StockMinimo)
	assert.Equal(t, 7, cfg.Inventario.DiasRetenerRespaldos)
	assert.Equal(t, "USD", cfg.Ventas.Moneda)
	assert.Equal(t, 2, int(cfg.Ventas.Decimales), "las claves ausentes conservan su default")
}
