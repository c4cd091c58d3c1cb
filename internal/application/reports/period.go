package reports

import (
	"fmt"
	"time"

	"github.com/tu-usuario/panaderia-pro/internal/domain"
	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
)

// fechaInicioLayout es el formato aceptado para el inicio de un período
// personalizado.
const fechaInicioLayout = "2006-01-02"

// Window es una ventana de tiempo predefinida para el reporte por período.
type Window int

const (
	// Ultimos7Dias ventana deslizante de 7 días hasta ahora.
	Ultimos7Dias Window = iota
	// Ultimos30Dias ventana deslizante de 30 días hasta ahora.
	Ultimos30Dias
	// EsteMes desde el día 1 del mes calendario en curso.
	EsteMes
)

// ParseFechaInicio parsea la fecha de inicio de un período personalizado.
// Cualquier desviación del formato YYYY-MM-DD devuelve ErrFechaInvalida,
// recuperable por el flujo que pide la fecha.
func ParseFechaInicio(s string) (time.Time, error) {
	t, err := time.Parse(fechaInicioLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrFechaInvalida, s)
	}
	return t, nil
}

// WindowStart devuelve el inicio de una ventana predefinida relativa a now.
func WindowStart(w Window, now time.Time) (time.Time, error) {
	switch w {
	case Ultimos7Dias:
		return now.AddDate(0, 0, -7), nil
	case Ultimos30Dias:
		return now.AddDate(0, 0, -30), nil
	case EsteMes:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	return time.Time{}, fmt.Errorf("%w: ventana desconocida %d", domain.ErrInvalidInput, w)
}

// FilterByWindow devuelve los pedidos dentro de la ventana predefinida,
// cerrada en ambos extremos, terminando en now.
func FilterByWindow(pedidos []entity.Order, w Window, now time.Time) ([]entity.Order, error) {
	inicio, err := WindowStart(w, now)
	if err != nil {
		return nil, err
	}
	return FilterByRange(pedidos, inicio, now)
}

// FilterByRange devuelve la subsecuencia de pedidos cuyo timestamp cae en
// [inicio, fin]. Un timestamp almacenado que no cumpla el layout fijo hace
// fallar el filtro con ErrFechaInvalida: el dato se corrige, no se coerciona.
func FilterByRange(pedidos []entity.Order, inicio, fin time.Time) ([]entity.Order, error) {
	var dentro []entity.Order
	for _, p := range pedidos {
		fecha, err := p.Fecha()
		if err != nil {
			return nil, fmt.Errorf("%w: pedido %s con fecha %q",
				domain.ErrFechaInvalida, p.ID, p.FechaPedido)
		}
		if !fecha.Before(inicio) && !fecha.After(fin) {
			dentro = append(dentro, p)
		}
	}
	return dentro, nil
}
