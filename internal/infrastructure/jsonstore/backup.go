package jsonstore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tu-usuario/panaderia-pro/pkg/logger"
)

// Backup crea y poda copias con timestamp del documento principal y del
// directorio de pedidos. Las copias son best-effort: un fallo se registra y
// nunca se propaga al guardado que lo disparó.
type Backup struct {
	paths Paths
	log   *logger.Logger
}

// NewBackup construye el gestor de respaldos.
func NewBackup(paths Paths, log *logger.Logger) *Backup {
	return &Backup{paths: paths, log: log}
}

// Create copia el documento principal y el directorio de pedidos completo a
// entradas con sufijo YYYYMMDD_HHMMSS bajo el directorio de respaldos.
// Documentos aún inexistentes simplemente se omiten.
func (b *Backup) Create() error {
	if err := os.MkdirAll(b.paths.BackupDir(), 0o755); err != nil {
		b.log.Error().Err(err).Msg("crear directorio de respaldos")
		return err
	}
	ts := time.Now().Format("20060102_150405")

	if _, err := os.Stat(b.paths.Catalog()); err == nil {
		dst := filepath.Join(b.paths.BackupDir(), fmt.Sprintf("datos_panaderia_%s.json", ts))
		if err := copyFile(b.paths.Catalog(), dst); err != nil {
			b.log.Error().Err(err).Msg("respaldar documento principal")
			return err
		}
	}

	if _, err := os.Stat(b.paths.OrdersDir()); err == nil {
		dst := filepath.Join(b.paths.BackupDir(), fmt.Sprintf("pedidos_%s", ts))
		if err := copyDir(b.paths.OrdersDir(), dst); err != nil {
			b.log.Error().Err(err).Msg("respaldar pedidos")
			return err
		}
	}

	b.log.Info().Str("timestamp", ts).Msg("respaldo creado")
	return nil
}

// Prune elimina las entradas de respaldo más viejas que la ventana de
// retención, recursivamente para las entradas con forma de directorio.
func (b *Backup) Prune(diasRetener int) {
	entries, err := os.ReadDir(b.paths.BackupDir())
	if err != nil {
		if !os.IsNotExist(err) {
			b.log.Error().Err(err).Msg("leer directorio de respaldos")
		}
		return
	}

	limite := time.Now().AddDate(0, 0, -diasRetener)
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(limite) {
			continue
		}
		ruta := filepath.Join(b.paths.BackupDir(), e.Name())
		if err := os.RemoveAll(ruta); err != nil {
			b.log.Error().Err(err).Str("respaldo", e.Name()).Msg("eliminar respaldo")
			continue
		}
		b.log.Info().Str("respaldo", e.Name()).Msg("respaldo eliminado")
	}
}
