package jsonstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/panaderia-pro/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/panaderia-pro/pkg/logger"
)

func TestBackup_CreateCopiaCatalogoYPedidos(t *testing.T) {
	paths := jsonstore.NewPaths(t.TempDir())
	backup := jsonstore.NewBackup(paths, logger.Nop())

	require.NoError(t, os.MkdirAll(paths.OrdersDir(), 0o755))
	require.NoError(t, os.WriteFile(paths.Catalog(), []byte(`{"productos": []}`), 0o644))
	require.NoError(t, os.WriteFile(paths.Orders(), []byte(`{"pedidos": []}`), 0o644))

	require.NoError(t, backup.Create())

	entries, err := os.ReadDir(paths.BackupDir())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var archivos, directorios int
	for _, e := range entries {
		if e.IsDir() {
			directorios++
			assert.Regexp(t, `^pedidos_\d{8}_\d{6}$`, e.Name())
			_, err := os.Stat(filepath.Join(paths.BackupDir(), e.Name(), "pedidos.json"))
			assert.NoError(t, err, "la copia del directorio de pedidos incluye sus documentos")
		} else {
			archivos++
			assert.Regexp(t, `^datos_panaderia_\d{8}_\d{6}\.json$`, e.Name())
		}
	}
	assert.Equal(t, 1, archivos)
	assert.Equal(t, 1, directorios)
}

func TestBackup_CreateOmiteDocumentosInexistentes(t *testing.T) {
	paths := jsonstore.NewPaths(t.TempDir())
	backup := jsonstore.NewBackup(paths, logger.Nop())

	require.NoError(t, backup.Create(),
		"sin documentos que copiar el respaldo no es un error")

	entries, err := os.ReadDir(paths.BackupDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBackup_PruneEliminaSoloLosViejos(t *testing.T) {
	paths := jsonstore.NewPaths(t.TempDir())
	backup := jsonstore.NewBackup(paths, logger.Nop())
	require.NoError(t, os.MkdirAll(paths.BackupDir(), 0o755))

	viejo := filepath.Join(paths.BackupDir(), "datos_panaderia_20200101_000000.json")
	reciente := filepath.Join(paths.BackupDir(), "datos_panaderia_hoy.json")
	viejoDir := filepath.Join(paths.BackupDir(), "pedidos_20200101_000000")
	require.NoError(t, os.WriteFile(viejo, []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(reciente, []byte("{}"), 0o644))
	require.NoError(t, os.MkdirAll(viejoDir, 0o755))

	hace40Dias := time.Now().AddDate(0, 0, -40)
	require.NoError(t, os.Chtimes(viejo, hace40Dias, hace40Dias))
	require.NoError(t, os.Chtimes(viejoDir, hace40Dias, hace40Dias))

	backup.Prune(30)

	_, err := os.Stat(viejo)
	assert.True(t, os.IsNotExist(err), "el archivo fuera de la ventana se elimina")
	_, err = os.Stat(viejoDir)
	assert.True(t, os.IsNotExist(err), "los respaldos con forma de directorio también se podan")
	_, err = os.Stat(reciente)
	assert.NoError(t, err, "el respaldo dentro de la ventana sobrevive")
}

func TestBackup_PruneSinDirectorioNoFalla(t *testing.T) {
	paths := jsonstore.NewPaths(t.TempDir())
	backup := jsonstore.NewBackup(paths, logger.Nop())

	backup.Prune(30)
}
