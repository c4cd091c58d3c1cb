package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// config/config.json y variables de entorno). Se inyecta explícitamente en el
// store y en el motor de reportes; no hay singleton global.
type Config struct {
	Sistema    SistemaConfig
	Inventario InventarioConfig
	Ventas     VentasConfig
	Reportes   ReportesConfig
}

// SistemaConfig configuración general del sistema.
type SistemaConfig struct {
	NombreEmpresa string
	Version       string
	ZonaHoraria   string
}

// InventarioConfig umbrales de stock y política de respaldos.
type InventarioConfig struct {
	StockMinimo          int
	StockCritico         int
	RespaldoAutomatico   bool
	DiasRetenerRespaldos int
}

// VentasConfig parámetros monetarios.
// Impuestos y DescuentoMaximo son fracciones (0.19 = 19%).
type VentasConfig struct {
	Moneda          string
	Decimales       int32
	Impuestos       float64
	DescuentoMaximo float64
}

// ReportesConfig preferencias de exportación.
type ReportesConfig struct {
	ExportarAutomatico bool
	IncluirDetalles    bool
}

// Load lee la configuración desde config/config.json (relativo a baseDir) y
// variables de entorno; las env vars tienen prioridad. Si el archivo no
// existe se crea con los valores por defecto, igual que hace el resto del
// sistema con sus documentos de datos.
func Load(baseDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("json")

	setDefaults(v)

	cfgPath := filepath.Join(baseDir, "config", "config.json")
	v.SetConfigFile(cfgPath)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || isNotFound(err) {
			if err := writeDefaults(v, cfgPath); err != nil {
				return nil, fmt.Errorf("crear configuración por defecto: %w", err)
			}
		} else {
			return nil, fmt.Errorf("leer configuración: %w", err)
		}
	}

	v.AutomaticEnv()

	cfg := &Config{
		Sistema: SistemaConfig{
			NombreEmpresa: getString(v, "sistema.nombre_empresa", "Maison du Pain"),
			Version:       getString(v, "sistema.version", "2.0.0"),
			ZonaHoraria:   getString(v, "sistema.zona_horaria", "America/Bogota"),
		},
		Inventario: InventarioConfig{
			StockMinimo:          getInt(v, "inventario.stock_minimo", 5),
			StockCritico:         getInt(v, "inventario.stock_critico", 2),
			RespaldoAutomatico:   v.GetBool("inventario.respaldo_automatico"),
			DiasRetenerRespaldos: getInt(v, "inventario.dias_retener_respaldos", 30),
		},
		Ventas: VentasConfig{
			Moneda:          getString(v, "ventas.moneda", "COP"),
			Decimales:       int32(getInt(v, "ventas.decimales", 2)),
			Impuestos:       v.GetFloat64("ventas.impuestos"),
			DescuentoMaximo: v.GetFloat64("ventas.descuento_maximo"),
		},
		Reportes: ReportesConfig{
			ExportarAutomatico: v.GetBool("reportes.exportar_automatico"),
			IncluirDetalles:    v.GetBool("reportes.incluir_detalles"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sistema.nombre_empresa", "Maison du Pain")
	v.SetDefault("sistema.version", "2.0.0")
	v.SetDefault("sistema.zona_horaria", "America/Bogota")
	v.SetDefault("inventario.stock_minimo", 5)
	v.SetDefault("inventario.stock_critico", 2)
	v.SetDefault("inventario.respaldo_automatico", true)
	v.SetDefault("inventario.dias_retener_respaldos", 30)
	v.SetDefault("ventas.moneda", "COP")
	v.SetDefault("ventas.decimales", 2)
	v.SetDefault("ventas.impuestos", 0.19)
	v.SetDefault("ventas.descuento_maximo", 0.15)
	v.SetDefault("reportes.exportar_automatico", false)
	v.SetDefault("reportes.incluir_detalles", true)
}

// writeDefaults materializa los valores por defecto en disco para que el
// usuario tenga un archivo editable desde la primera ejecución.
func writeDefaults(v *viper.Viper, cfgPath string) error {
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return err
	}
	return v.WriteConfigAs(cfgPath)
}

func isNotFound(err error) bool {
	_, ok := err.(viper.ConfigFileNotFoundError)
	return ok
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
