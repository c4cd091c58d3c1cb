package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pro/internal/domain/repository"
	"github.com/tu-usuario/panaderia-pro/pkg/logger"
	"github.com/tu-usuario/panaderia-pro/pkg/schema"
)

// OrderStore persiste los pedidos en datos/pedidos/pedidos.json.
type OrderStore struct {
	paths Paths
	log   *logger.Logger
}

// NewOrderStore construye el store de pedidos.
func NewOrderStore(paths Paths, log *logger.Logger) *OrderStore {
	return &OrderStore{paths: paths, log: log}
}

var _ repository.OrderRepository = (*OrderStore)(nil)

// Load lee el documento de pedidos; ausente o indecodificable → colección
// vacía sembrada y persistida (LoadSeeded).
func (s *OrderStore) Load() (repository.OrdersResult, error) {
	var doc schema.OrdersDocument
	seeded, err := loadOrSeed(s.paths.Orders(), &doc, schema.EmptyOrders(), s.log, "pedidos")
	if err != nil {
		return repository.OrdersResult{}, err
	}
	status := repository.LoadOK
	if seeded {
		doc = schema.EmptyOrders()
		status = repository.LoadSeeded
	}
	return repository.OrdersResult{Orders: OrdersToEntities(doc.Pedidos), Status: status}, nil
}

// Save sobrescribe atómicamente el documento de pedidos.
func (s *OrderStore) Save(orders []entity.Order) error {
	doc := schema.OrdersDocument{Pedidos: OrdersFromEntities(orders)}
	if err := writeJSONAtomic(s.paths.Orders(), doc); err != nil {
		s.log.Error().Err(err).Msg("guardar pedidos")
		return fmt.Errorf("guardar pedidos: %w", err)
	}
	s.log.Info().Int("pedidos", len(doc.Pedidos)).Msg("pedidos guardados")
	return nil
}

// DetailStore persiste los detalles en datos/pedidos/detalles_pedidos.json.
type DetailStore struct {
	paths Paths
	log   *logger.Logger
}

// NewDetailStore construye el store de detalles de pedidos.
func NewDetailStore(paths Paths, log *logger.Logger) *DetailStore {
	return &DetailStore{paths: paths, log: log}
}

var _ repository.DetailRepository = (*DetailStore)(nil)

// Load lee el documento de detalles con la misma política de siembra que
// los pedidos.
func (s *DetailStore) Load() (repository.DetailsResult, error) {
	var doc schema.DetailsDocument
	seeded, err := loadOrSeed(s.paths.Details(), &doc, schema.EmptyDetails(), s.log, "detalles de pedidos")
	if err != nil {
		return repository.DetailsResult{}, err
	}
	status := repository.LoadOK
	if seeded {
		doc = schema.EmptyDetails()
		status = repository.LoadSeeded
	}
	return repository.DetailsResult{Details: DetailsToEntities(doc.DetallesPedidos), Status: status}, nil
}

// Save sobrescribe atómicamente el documento de detalles.
func (s *DetailStore) Save(details []entity.OrderDetail) error {
	doc := schema.DetailsDocument{DetallesPedidos: DetailsFromEntities(details)}
	if err := writeJSONAtomic(s.paths.Details(), doc); err != nil {
		s.log.Error().Err(err).Msg("guardar detalles de pedidos")
		return fmt.Errorf("guardar detalles de pedidos: %w", err)
	}
	s.log.Info().Int("detalles", len(doc.DetallesPedidos)).Msg("detalles de pedidos guardados")
	return nil
}

// loadOrSeed lee y decodifica path en out. Devuelve seeded=true si el
// documento no existía o no decodificaba, en cuyo caso persiste la semilla.
func loadOrSeed(path string, out any, semilla any, log *logger.Logger, nombre string) (bool, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if derr := json.Unmarshal(data, out); derr == nil {
			log.Info().Str("documento", nombre).Msg("documento cargado")
			return false, nil
		}
		log.Error().Str("documento", nombre).Msg("documento corrupto, sembrando vacío")
	} else if !os.IsNotExist(err) {
		log.Error().Err(err).Str("documento", nombre).Msg("leer documento")
	}
	if err := writeJSONAtomic(path, semilla); err != nil {
		log.Error().Err(err).Str("documento", nombre).Msg("persistir semilla")
		return true, fmt.Errorf("persistir %s: %w", nombre, err)
	}
	log.Info().Str("documento", nombre).Msg("documento no encontrado, semilla creada")
	return true, nil
}
