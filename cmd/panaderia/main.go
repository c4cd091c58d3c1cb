// Sistema de gestión de panadería: inventario, pedidos y reportes sobre
// documentos JSON planos.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/tu-usuario/panaderia-pro/internal/application/reports"
	"github.com/tu-usuario/panaderia-pro/internal/application/usecase"
	"github.com/tu-usuario/panaderia-pro/internal/domain/pricing"
	"github.com/tu-usuario/panaderia-pro/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/panaderia-pro/pkg/config"
	"github.com/tu-usuario/panaderia-pro/pkg/logger"
	"github.com/tu-usuario/panaderia-pro/pkg/money"
)

func main() {
	var (
		baseDir  = pflag.String("dir", ".", "directorio base de datos, config y respaldos")
		env      = pflag.String("env", "development", "development o production")
		logLevel = pflag.String("log-level", "info", "trace, debug, info, warn, error")
	)
	pflag.Parse()

	cfg, err := config.Load(*baseDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   *env,
		Level: *logLevel,
		Dir:   *baseDir + "/logs",
	})
	log.Info().
		Str("empresa", cfg.Sistema.NombreEmpresa).
		Str("version", cfg.Sistema.Version).
		Msg("iniciando sistema")

	paths := jsonstore.NewPaths(*baseDir)
	backup := jsonstore.NewBackup(paths, log)
	catalogStore := jsonstore.NewCatalogStore(paths, backup, cfg.Inventario.DiasRetenerRespaldos, log)
	orderStore := jsonstore.NewOrderStore(paths, log)
	detailStore := jsonstore.NewDetailStore(paths, log)
	exporter := jsonstore.NewExporter(paths, log)

	productUC := usecase.NewProductUseCase(catalogStore)
	orderUC := usecase.NewOrderUseCase(catalogStore, orderStore, detailStore)
	reportSvc := reports.NewService(catalogStore, orderStore, detailStore, exporter)

	app := &cli{
		cfg:       cfg,
		log:       log,
		in:        bufio.NewScanner(os.Stdin),
		productUC: productUC,
		orderUC:   orderUC,
		reports:   reportSvc,
		backup:    backup,
	}
	app.run()
}

type cli struct {
	cfg       *config.Config
	log       *logger.Logger
	in        *bufio.Scanner
	productUC *usecase.ProductUseCase
	orderUC   *usecase.OrderUseCase
	reports   *reports.Service
	backup    *jsonstore.Backup
}

func (c *cli) run() {
	fmt.Printf("\n%s - v%s\n", c.cfg.Sistema.NombreEmpresa, c.cfg.Sistema.Version)
	for {
		fmt.Println("\n=== MENÚ PRINCIPAL ===")
		fmt.Println("1. Listar productos")
		fmt.Println("2. Agregar producto")
		fmt.Println("3. Editar producto")
		fmt.Println("4. Buscar producto")
		fmt.Println("5. Crear pedido")
		fmt.Println("6. Reportes y estadísticas")
		fmt.Println("7. Exportar reportes")
		fmt.Println("8. Respaldo manual")
		fmt.Println("9. Dashboard rápido")
		fmt.Println("0. Salir")

		switch c.prompt("Seleccione una opción: ") {
		case "1":
			c.listarProductos()
		case "2":
			c.agregarProducto()
		case "3":
			c.editarProducto()
		case "4":
			c.buscarProducto()
		case "5":
			c.crearPedido()
		case "6":
			c.menuReportes()
		case "7":
			c.exportar()
		case "8":
			if err := c.backup.Create(); err != nil {
				fmt.Println("Error al crear respaldo:", err)
			} else {
				fmt.Println("Respaldo creado exitosamente")
			}
		case "9":
			c.dashboard()
		case "0":
			fmt.Println("¡Gracias por usar el sistema!")
			return
		default:
			fmt.Println("Opción no válida")
		}
	}
}

func (c *cli) menuReportes() {
	fmt.Println("\n=== REPORTES Y ESTADÍSTICAS ===")
	fmt.Println("1. Reporte de ventas")
	fmt.Println("2. Análisis de inventario")
	fmt.Println("3. Productos más vendidos")
	fmt.Println("4. Análisis financiero")
	fmt.Println("5. Reporte por período")

	switch c.prompt("Seleccione una opción: ") {
	case "1":
		c.reporteVentas()
	case "2":
		c.analisisInventario()
	case "3":
		c.masVendidos()
	case "4":
		c.financiero()
	case "5":
		c.porPeriodo()
	default:
		fmt.Println("Opción no válida")
	}
}

func (c *cli) agregarProducto() {
	in := usecase.AddProductInput{
		Code:        c.prompt("Código (ej: PAN-001): "),
		Name:        c.prompt("Nombre: "),
		Category:    c.prompt("Categoría: "),
		Description: c.prompt("Descripción: "),
		Supplier:    c.prompt("Proveedor: "),
	}
	var ok bool
	if in.Stock, ok = c.leerEntero("Cantidad en stock: "); !ok {
		return
	}
	if in.SalePrice, ok = c.leerDecimal("Precio de venta: "); !ok {
		return
	}
	if in.SupplierPrice, ok = c.leerDecimal("Precio de proveedor: "); !ok {
		return
	}
	p, err := c.productUC.Add(in)
	if err != nil {
		fmt.Println("Error al agregar producto:", err)
		return
	}
	fmt.Printf("Producto %s agregado\n", p.Code)
}

func (c *cli) editarProducto() {
	codigo := c.prompt("Código del producto a editar: ")
	var in usecase.EditProductInput
	if s := c.prompt("Nuevo nombre (vacío para no cambiar): "); s != "" {
		in.Name = &s
	}
	if s := c.prompt("Nuevo stock (vacío para no cambiar): "); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Println("Por favor, ingrese un número entero válido")
			return
		}
		in.Stock = &n
	}
	if s := c.prompt("Nuevo precio de venta (vacío para no cambiar): "); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			fmt.Println("Por favor, ingrese un número válido")
			return
		}
		in.SalePrice = &d
	}
	p, err := c.productUC.Edit(codigo, in)
	if err != nil {
		fmt.Println("Error al editar producto:", err)
		return
	}
	fmt.Printf("Producto %s actualizado\n", p.Code)
}

func (c *cli) buscarProducto() {
	codigo := c.prompt("Código del producto: ")
	p, err := c.productUC.Find(codigo)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("\n%s - %s (%s)\n", p.Code, p.Name, p.Category)
	fmt.Println("Descripción:", p.Description)
	fmt.Println("Proveedor:", p.Supplier)
	fmt.Println("Stock:", p.Stock)
	fmt.Println("Precio de venta:", money.Format(p.SalePrice, c.moneda()))
	fmt.Println("Precio de proveedor:", money.Format(p.SupplierPrice, c.moneda()))
	fmt.Printf("Margen de ganancia: %s%%\n",
		pricing.MarginPercent(p.SalePrice, p.SupplierPrice).StringFixed(1))
	conImpuesto := money.Round(
		pricing.PriceWithTax(p.SalePrice, decimal.NewFromFloat(c.cfg.Ventas.Impuestos)),
		c.cfg.Ventas.Decimales)
	fmt.Println("Precio con impuestos:", money.Format(conImpuesto, c.moneda()))
}

func (c *cli) leerEntero(msg string) (int, bool) {
	n, err := strconv.Atoi(c.prompt(msg))
	if err != nil {
		fmt.Println("Por favor, ingrese un número entero válido")
		return 0, false
	}
	return n, true
}

func (c *cli) leerDecimal(msg string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(c.prompt(msg))
	if err != nil {
		fmt.Println("Por favor, ingrese un número válido")
		return decimal.Zero, false
	}
	return d, true
}

func (c *cli) crearPedido() {
	var lineas []usecase.NewOrderLine
	for {
		codigo := c.prompt("Código de producto (vacío para terminar): ")
		if codigo == "" {
			break
		}
		cantidadStr := c.prompt("Cantidad: ")
		cantidad, err := strconv.Atoi(cantidadStr)
		if err != nil || cantidad <= 0 {
			fmt.Println("Por favor, ingrese un número entero válido")
			continue
		}
		lineas = append(lineas, usecase.NewOrderLine{ProductCode: codigo, Quantity: cantidad})
	}
	if len(lineas) == 0 {
		fmt.Println("Pedido vacío, nada que registrar")
		return
	}
	pedido, err := c.orderUC.Create(lineas)
	if err != nil {
		fmt.Println("Error al crear pedido:", err)
		return
	}
	fmt.Printf("Pedido %s registrado por %s\n",
		pedido.ID, money.Format(pedido.Total, c.moneda()))
}

func (c *cli) prompt(msg string) string {
	fmt.Print(msg)
	if !c.in.Scan() {
		return "0"
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *cli) moneda() string { return c.cfg.Ventas.Moneda }

func (c *cli) listarProductos() {
	res, err := c.productUC.List()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CÓDIGO\tNOMBRE\tCATEGORÍA\tSTOCK\tPRECIO")
	for _, p := range res.Products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			p.Code, p.Name, p.Category, p.Stock, money.Format(p.SalePrice, c.moneda()))
	}
	w.Flush()
}

func (c *cli) reporteVentas() {
	rep, err := c.reports.Ventas()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("\n--- Resumen de Ventas ---")
	fmt.Println("Total de ventas:", money.Format(rep.Resumen.TotalVentas, c.moneda()))
	fmt.Println("Total de pedidos:", rep.Resumen.TotalPedidos)
	fmt.Println("Promedio por pedido:", money.Format(rep.Resumen.PromedioPorPedido, c.moneda()))
	fmt.Println("Días con ventas:", rep.Resumen.DiasConVentas)
	for _, d := range rep.PorFecha {
		fmt.Printf("  %s  %s\n", d.Fecha, money.Format(d.Total, c.moneda()))
	}
}

func (c *cli) analisisInventario() {
	a, err := c.reports.Inventario()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("\n--- Análisis de Inventario ---")
	fmt.Println("Total de productos:", a.TotalProductos)
	fmt.Println("Total en stock:", a.TotalStock)
	fmt.Println("Valor del inventario:", money.Format(a.ValorInventario, c.moneda()))
	for _, cat := range a.PorCategoria {
		fmt.Printf("  %s: %d unidades, %s\n",
			cat.Categoria, cat.Stock, money.Format(cat.Valor, c.moneda()))
	}
	if len(a.StockBajo) > 0 {
		fmt.Println("Productos con stock bajo:")
		for _, p := range a.StockBajo {
			fmt.Printf("  %s %s (stock: %d)\n", p.Code, p.Name, p.Stock)
		}
	}
}

func (c *cli) masVendidos() {
	ranking, err := c.reports.MasVendidos()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("\n--- Productos Más Vendidos ---")
	for _, t := range ranking {
		fmt.Printf("%2d. %s %s: %d unidades, %s\n",
			t.Posicion, t.Codigo, t.Nombre, t.Cantidad, money.Format(t.Ingresos, c.moneda()))
	}
}

func (c *cli) financiero() {
	f, err := c.reports.Financiero()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("\n--- Análisis Financiero ---")
	fmt.Println("Total de ventas:", money.Format(f.TotalVentas, c.moneda()))
	fmt.Println("Costo de ventas:", money.Format(f.CostoVentas, c.moneda()))
	fmt.Println("Ganancia bruta:", money.Format(f.GananciaBruta, c.moneda()))
	fmt.Printf("Margen bruto: %s%%\n", f.MargenBruto.StringFixed(1))
	fmt.Println("Valor del inventario:", money.Format(f.ValorInventario, c.moneda()))
	fmt.Println("Costo del inventario:", money.Format(f.CostoInventario, c.moneda()))
}

func (c *cli) porPeriodo() {
	fmt.Println("\n1. Últimos 7 días")
	fmt.Println("2. Últimos 30 días")
	fmt.Println("3. Este mes")
	fmt.Println("4. Período personalizado")

	var (
		rep reports.PeriodReport
		err error
	)
	switch c.prompt("Seleccione una opción: ") {
	case "1":
		rep, err = c.reports.Periodo(reports.Ultimos7Dias)
	case "2":
		rep, err = c.reports.Periodo(reports.Ultimos30Dias)
	case "3":
		rep, err = c.reports.Periodo(reports.EsteMes)
	case "4":
		inicio := c.prompt("Fecha de inicio (YYYY-MM-DD): ")
		rep, err = c.reports.PeriodoPersonalizado(inicio)
	default:
		fmt.Println("Opción no válida")
		return
	}
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("\n--- Período %s a %s ---\n",
		rep.Inicio.Format("2006-01-02"), rep.Fin.Format("2006-01-02"))
	fmt.Println("Total de ventas:", money.Format(rep.Resumen.TotalVentas, c.moneda()))
	fmt.Println("Total de pedidos:", rep.Resumen.TotalPedidos)
	fmt.Println("Promedio por pedido:", money.Format(rep.Resumen.PromedioPorPedido, c.moneda()))
}

func (c *cli) exportar() {
	files, err := c.reports.Exportar()
	if err != nil {
		fmt.Println("Error al exportar:", err)
		return
	}
	fmt.Println("Reportes exportados:")
	fmt.Println(" ", files.Productos)
	fmt.Println(" ", files.Ventas)
	fmt.Println(" ", files.Consolidado)
}

func (c *cli) dashboard() {
	stats, ventas, err := c.reports.Dashboard(c.cfg.Inventario.StockMinimo)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("\n--- Dashboard Rápido ---")
	fmt.Println("Total productos:", stats.TotalProductos)
	fmt.Println("Productos con stock bajo:", stats.ProductosStockBajo)
	fmt.Println("Valor inventario:", money.Format(stats.ValorInventario, c.moneda()))
	fmt.Println("Total pedidos:", ventas.TotalPedidos)
	fmt.Println("Total ventas:", money.Format(ventas.TotalVentas, c.moneda()))
}
