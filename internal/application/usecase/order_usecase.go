package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pro/internal/domain"
	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pro/internal/domain/repository"
)

// OrderUseCase caso de uso de creación y consulta de pedidos. Mantiene el
// invariante cruzado: el total del pedido es exactamente la suma de los
// subtotales de sus líneas, calculados al precio de venta vigente.
type OrderUseCase struct {
	catalog repository.CatalogRepository
	orders  repository.OrderRepository
	details repository.DetailRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	catalog repository.CatalogRepository,
	orders repository.OrderRepository,
	details repository.DetailRepository,
) *OrderUseCase {
	return &OrderUseCase{catalog: catalog, orders: orders, details: details}
}

// NewOrderLine una línea solicitada: producto y cantidad.
type NewOrderLine struct {
	ProductCode string
	Quantity    int
}

// Create valida las líneas contra el catálogo, calcula subtotales y total,
// decrementa stock y persiste pedidos, detalles y catálogo. Producto
// inexistente → ErrProductoNoExiste; cantidad no positiva → ErrInvalidInput;
// stock insuficiente → ErrInsufficientStock. Ante cualquier error de
// validación no se persiste nada.
func (uc *OrderUseCase) Create(lineas []NewOrderLine) (entity.Order, error) {
	if len(lineas) == 0 {
		return entity.Order{}, domain.ErrInvalidInput
	}

	cat, err := uc.catalog.Load()
	if err != nil {
		return entity.Order{}, err
	}
	productos := cat.Products

	indice := make(map[string]int, len(productos))
	for i, p := range productos {
		if _, ok := indice[p.Code]; !ok {
			indice[p.Code] = i // primera coincidencia gana ante duplicados
		}
	}

	total := decimal.Zero
	orderLines := make([]entity.OrderLine, 0, len(lineas))
	for _, l := range lineas {
		if l.Quantity <= 0 {
			return entity.Order{}, domain.ErrInvalidInput
		}
		i, ok := indice[l.ProductCode]
		if !ok {
			return entity.Order{}, domain.ErrProductoNoExiste
		}
		if productos[i].Stock < l.Quantity {
			return entity.Order{}, domain.ErrInsufficientStock
		}
		subtotal := productos[i].SalePrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		orderLines = append(orderLines, entity.OrderLine{
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
			Subtotal:    subtotal,
		})
		productos[i].Stock -= l.Quantity
		total = total.Add(subtotal)
	}

	pedido := entity.Order{
		ID:          uuid.New().String(),
		FechaPedido: time.Now().Format(entity.FechaPedidoLayout),
		Total:       total,
	}
	detalle := entity.OrderDetail{OrderID: pedido.ID, Lines: orderLines}

	ordRes, err := uc.orders.Load()
	if err != nil {
		return entity.Order{}, err
	}
	detRes, err := uc.details.Load()
	if err != nil {
		return entity.Order{}, err
	}

	if err := uc.orders.Save(append(ordRes.Orders, pedido)); err != nil {
		return entity.Order{}, err
	}
	if err := uc.details.Save(append(detRes.Details, detalle)); err != nil {
		return entity.Order{}, err
	}
	if err := uc.catalog.Save(productos); err != nil {
		return entity.Order{}, err
	}

	return pedido, nil
}

// List devuelve los pedidos junto con el estado de carga.
func (uc *OrderUseCase) List() (repository.OrdersResult, error) {
	return uc.orders.Load()
}
