package reports

import (
	"fmt"
	"time"

	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pro/internal/domain/inventory"
	"github.com/tu-usuario/panaderia-pro/internal/domain/repository"
)

// Service orquesta los reportes: carga las colecciones desde los puertos de
// persistencia y delega en las proyecciones puras de este paquete. No muta
// estado del dominio.
//
// La referencia pedido → detalles es débil (join por order_id): un documento
// hermano ausente produce joins vacíos, nunca un fallo.
type Service struct {
	catalog  repository.CatalogRepository
	orders   repository.OrderRepository
	details  repository.DetailRepository
	exporter repository.ReportExporter
}

// NewService construye el motor de reportes.
func NewService(
	catalog repository.CatalogRepository,
	orders repository.OrderRepository,
	details repository.DetailRepository,
	exporter repository.ReportExporter,
) *Service {
	return &Service{catalog: catalog, orders: orders, details: details, exporter: exporter}
}

// SalesReport es el reporte de ventas completo.
type SalesReport struct {
	Resumen  SalesSummary
	PorFecha []DailySales
}

// Ventas genera el reporte de ventas.
func (s *Service) Ventas() (SalesReport, error) {
	pedidos, err := s.loadOrders()
	if err != nil {
		return SalesReport{}, err
	}
	return SalesReport{
		Resumen:  SummarizeSales(pedidos),
		PorFecha: SalesByDate(pedidos),
	}, nil
}

// Inventario genera el análisis de inventario (umbral de stock bajo fijo
// del reporte).
func (s *Service) Inventario() (InventoryAnalysis, error) {
	productos, err := s.loadProducts()
	if err != nil {
		return InventoryAnalysis{}, err
	}
	return AnalyzeInventory(productos), nil
}

// MasVendidos genera el ranking de productos más vendidos.
func (s *Service) MasVendidos() ([]TopSeller, error) {
	productos, err := s.loadProducts()
	if err != nil {
		return nil, err
	}
	detalles, err := s.loadDetails()
	if err != nil {
		return nil, err
	}
	return TopSellers(detalles, productos), nil
}

// Financiero genera el análisis financiero.
func (s *Service) Financiero() (FinancialAnalysis, error) {
	productos, err := s.loadProducts()
	if err != nil {
		return FinancialAnalysis{}, err
	}
	pedidos, err := s.loadOrders()
	if err != nil {
		return FinancialAnalysis{}, err
	}
	detalles, err := s.loadDetails()
	if err != nil {
		return FinancialAnalysis{}, err
	}
	return AnalyzeFinances(pedidos, detalles, productos), nil
}

// PeriodReport es el resumen de un período filtrado.
type PeriodReport struct {
	Inicio  time.Time
	Fin     time.Time
	Pedidos []entity.Order
	Resumen SalesSummary
}

// Periodo genera el reporte para una ventana predefinida.
func (s *Service) Periodo(w Window) (PeriodReport, error) {
	pedidos, err := s.loadOrders()
	if err != nil {
		return PeriodReport{}, err
	}
	now := time.Now()
	dentro, err := FilterByWindow(pedidos, w, now)
	if err != nil {
		return PeriodReport{}, err
	}
	inicio, _ := WindowStart(w, now)
	return PeriodReport{Inicio: inicio, Fin: now, Pedidos: dentro, Resumen: SummarizeSales(dentro)}, nil
}

// PeriodoPersonalizado genera el reporte desde la fecha dada (YYYY-MM-DD)
// hasta ahora. Una fecha malformada devuelve ErrFechaInvalida sin tumbar el
// flujo de reportes.
func (s *Service) PeriodoPersonalizado(fechaInicio string) (PeriodReport, error) {
	inicio, err := ParseFechaInicio(fechaInicio)
	if err != nil {
		return PeriodReport{}, err
	}
	pedidos, err := s.loadOrders()
	if err != nil {
		return PeriodReport{}, err
	}
	now := time.Now()
	dentro, err := FilterByRange(pedidos, inicio, now)
	if err != nil {
		return PeriodReport{}, err
	}
	return PeriodReport{Inicio: inicio, Fin: now, Pedidos: dentro, Resumen: SummarizeSales(dentro)}, nil
}

// Dashboard calcula las estadísticas rápidas con el umbral configurable.
func (s *Service) Dashboard(stockMinimo int) (QuickStats, SalesSummary, error) {
	productos, err := s.loadProducts()
	if err != nil {
		return QuickStats{}, SalesSummary{}, err
	}
	pedidos, err := s.loadOrders()
	if err != nil {
		return QuickStats{}, SalesSummary{}, err
	}
	return ComputeQuickStats(productos, stockMinimo), SummarizeSales(pedidos), nil
}

// Exportar escribe los tres documentos de reporte y devuelve sus rutas.
func (s *Service) Exportar() (repository.ExportFiles, error) {
	productos, err := s.loadProducts()
	if err != nil {
		return repository.ExportFiles{}, err
	}
	pedidos, err := s.loadOrders()
	if err != nil {
		return repository.ExportFiles{}, err
	}
	detalles, err := s.loadDetails()
	if err != nil {
		return repository.ExportFiles{}, err
	}
	resumen := SummarizeSales(pedidos)
	return s.exporter.Export(repository.ExportSnapshot{
		Products:        productos,
		Orders:          pedidos,
		Details:         detalles,
		TotalVentas:     resumen.TotalVentas,
		ValorInventario: inventory.Value(productos),
	})
}

func (s *Service) loadProducts() ([]entity.Product, error) {
	res, err := s.catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar catálogo: %w", err)
	}
	return res.Products, nil
}

func (s *Service) loadOrders() ([]entity.Order, error) {
	res, err := s.orders.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar pedidos: %w", err)
	}
	return res.Orders, nil
}

func (s *Service) loadDetails() ([]entity.OrderDetail, error) {
	res, err := s.details.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar detalles: %w", err)
	}
	return res.Details, nil
}
