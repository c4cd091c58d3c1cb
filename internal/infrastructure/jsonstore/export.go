package jsonstore

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/tu-usuario/panaderia-pro/internal/domain/repository"
	"github.com/tu-usuario/panaderia-pro/pkg/logger"
	"github.com/tu-usuario/panaderia-pro/pkg/schema"
)

// Exporter escribe los tres documentos de reporte (productos, ventas y
// consolidado) con un timestamp común por invocación.
type Exporter struct {
	paths Paths
	log   *logger.Logger
}

// NewExporter construye el exportador de reportes.
func NewExporter(paths Paths, log *logger.Logger) *Exporter {
	return &Exporter{paths: paths, log: log}
}

var _ repository.ReportExporter = (*Exporter)(nil)

type productosReport struct {
	FechaGeneracion string                 `json:"fecha_generacion"`
	TotalProductos  int                    `json:"total_productos"`
	Productos       []schema.ProductRecord `json:"productos"`
}

type ventasReport struct {
	FechaGeneracion string                     `json:"fecha_generacion"`
	TotalPedidos    int                        `json:"total_pedidos"`
	TotalVentas     float64                    `json:"total_ventas"`
	Pedidos         []schema.OrderRecord       `json:"pedidos"`
	Detalles        []schema.OrderDetailRecord `json:"detalles"`
}

type consolidadoReport struct {
	FechaGeneracion string             `json:"fecha_generacion"`
	Resumen         resumenConsolidado `json:"resumen"`
}

type resumenConsolidado struct {
	TotalProductos  int     `json:"total_productos"`
	TotalPedidos    int     `json:"total_pedidos"`
	TotalVentas     float64 `json:"total_ventas"`
	ValorInventario float64 `json:"valor_inventario"`
}

// Export serializa la foto recibida a los tres documentos. La exportación es
// todo-o-nada desde la perspectiva del llamador: el primer fallo de
// escritura aborta y se devuelve.
func (e *Exporter) Export(snap repository.ExportSnapshot) (repository.ExportFiles, error) {
	now := time.Now()
	ts := now.Format("20060102_150405")
	generado := now.Format(time.RFC3339)

	files := repository.ExportFiles{
		Productos:   filepath.Join(e.paths.ReportsDir(), fmt.Sprintf("productos_%s.json", ts)),
		Ventas:      filepath.Join(e.paths.ReportsDir(), fmt.Sprintf("ventas_%s.json", ts)),
		Consolidado: filepath.Join(e.paths.ReportsDir(), fmt.Sprintf("consolidado_%s.json", ts)),
	}

	productos := productosReport{
		FechaGeneracion: generado,
		TotalProductos:  len(snap.Products),
		Productos:       ProductsFromEntities(snap.Products),
	}
	if err := writeJSONAtomic(files.Productos, productos); err != nil {
		e.log.Error().Err(err).Msg("exportar reporte de productos")
		return repository.ExportFiles{}, fmt.Errorf("exportar productos: %w", err)
	}

	ventas := ventasReport{
		FechaGeneracion: generado,
		TotalPedidos:    len(snap.Orders),
		TotalVentas:     snap.TotalVentas.InexactFloat64(),
		Pedidos:         OrdersFromEntities(snap.Orders),
		Detalles:        DetailsFromEntities(snap.Details),
	}
	if err := writeJSONAtomic(files.Ventas, ventas); err != nil {
		e.log.Error().Err(err).Msg("exportar reporte de ventas")
		return repository.ExportFiles{}, fmt.Errorf("exportar ventas: %w", err)
	}

	consolidado := consolidadoReport{
		FechaGeneracion: generado,
		Resumen: resumenConsolidado{
			TotalProductos:  len(snap.Products),
			TotalPedidos:    len(snap.Orders),
			TotalVentas:     snap.TotalVentas.InexactFloat64(),
			ValorInventario: snap.ValorInventario.InexactFloat64(),
		},
	}
	if err := writeJSONAtomic(files.Consolidado, consolidado); err != nil {
		e.log.Error().Err(err).Msg("exportar reporte consolidado")
		return repository.ExportFiles{}, fmt.Errorf("exportar consolidado: %w", err)
	}

	e.log.Info().Str("timestamp", ts).Msg("reportes exportados")
	return files, nil
}
