// Package jsonstore implementa la persistencia en documentos JSON planos:
// el catálogo principal, los pedidos y sus detalles, con respaldo con
// timestamp antes de cada sobrescritura y poda por retención.
package jsonstore

import "path/filepath"

// Paths resuelve las rutas de todos los documentos bajo el directorio base.
type Paths struct {
	base string
}

// NewPaths crea el resolutor de rutas para el directorio base del proyecto.
func NewPaths(base string) Paths {
	return Paths{base: base}
}

// Catalog ruta del documento principal (productos + clave pedidos histórica).
func (p Paths) Catalog() string {
	return filepath.Join(p.base, "datos", "datos_panaderia.json")
}

// OrdersDir directorio de los documentos de pedidos.
func (p Paths) OrdersDir() string {
	return filepath.Join(p.base, "datos", "pedidos")
}

// Orders ruta del documento de pedidos.
func (p Paths) Orders() string {
	return filepath.Join(p.OrdersDir(), "pedidos.json")
}

// Details ruta del documento de detalles de pedidos.
func (p Paths) Details() string {
	return filepath.Join(p.OrdersDir(), "detalles_pedidos.json")
}

// BackupDir directorio de respaldos.
func (p Paths) BackupDir() string {
	return filepath.Join(p.base, "backups")
}

// ReportsDir directorio de reportes exportados.
func (p Paths) ReportsDir() string {
	return filepath.Join(p.base, "reportes")
}
