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

// CatalogStore persiste el catálogo de productos en datos_panaderia.json.
type CatalogStore struct {
	paths       Paths
	backup      *Backup
	diasRetener int
	log         *logger.Logger
}

// NewCatalogStore construye el store del catálogo.
func NewCatalogStore(paths Paths, backup *Backup, diasRetener int, log *logger.Logger) *CatalogStore {
	return &CatalogStore{paths: paths, backup: backup, diasRetener: diasRetener, log: log}
}

var _ repository.CatalogRepository = (*CatalogStore)(nil)

// Load lee el documento principal. Ausente o indecodificable → siembra la
// estructura inicial y la persiste de inmediato (LoadSeeded). Decodificable
// pero con violaciones de esquema → versión reparada en memoria
// (LoadRepaired). El único error posible es un fallo de escritura al
// persistir la siembra.
func (s *CatalogStore) Load() (repository.CatalogResult, error) {
	data, err := os.ReadFile(s.paths.Catalog())
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error().Err(err).Msg("leer catálogo")
		}
		return s.seed()
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		s.log.Error().Err(err).Msg("decodificar catálogo")
		return s.seed()
	}

	if violaciones := schema.Validate(raw); len(violaciones) > 0 {
		doc := schema.Repair(raw)
		s.log.Warn().Strs("violaciones", violaciones).Msg("catálogo reparado en memoria")
		return repository.CatalogResult{
			Products:   ProductsToEntities(doc.Productos),
			Status:     repository.LoadRepaired,
			Violations: violaciones,
		}, nil
	}

	var doc schema.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		// Conforme al esquema validado pero con algún campo de texto de
		// tipo inesperado: misma ruta de reparación.
		doc = schema.Repair(raw)
		viol := []string{fmt.Sprintf("campos con tipo inesperado: %v", err)}
		s.log.Warn().Strs("violaciones", viol).Msg("catálogo reparado en memoria")
		return repository.CatalogResult{
			Products:   ProductsToEntities(doc.Productos),
			Status:     repository.LoadRepaired,
			Violations: viol,
		}, nil
	}

	s.log.Info().Int("productos", len(doc.Productos)).Msg("catálogo cargado")
	return repository.CatalogResult{
		Products: ProductsToEntities(doc.Productos),
		Status:   repository.LoadOK,
	}, nil
}

func (s *CatalogStore) seed() (repository.CatalogResult, error) {
	doc := schema.Seed()
	if err := s.save(doc); err != nil {
		return repository.CatalogResult{}, fmt.Errorf("persistir catálogo inicial: %w", err)
	}
	s.log.Info().Msg("catálogo no encontrado, estructura inicial creada")
	return repository.CatalogResult{
		Products: ProductsToEntities(doc.Productos),
		Status:   repository.LoadSeeded,
	}, nil
}

// Save respalda el estado actual, sobrescribe atómicamente y poda los
// respaldos fuera de la ventana de retención. Un fallo del respaldo se
// registra y se traga; un fallo de escritura se devuelve al llamador.
func (s *CatalogStore) Save(products []entity.Product) error {
	return s.save(schema.CatalogDocument{
		Productos: ProductsFromEntities(products),
		Pedidos:   []json.RawMessage{},
	})
}

func (s *CatalogStore) save(doc schema.CatalogDocument) error {
	if err := s.backup.Create(); err != nil {
		s.log.Error().Err(err).Msg("respaldo previo al guardado")
	}
	if err := writeJSONAtomic(s.paths.Catalog(), doc); err != nil {
		s.log.Error().Err(err).Msg("guardar catálogo")
		return fmt.Errorf("guardar catálogo: %w", err)
	}
	s.backup.Prune(s.diasRetener)
	s.log.Info().Int("productos", len(doc.Productos)).Msg("catálogo guardado")
	return nil
}
