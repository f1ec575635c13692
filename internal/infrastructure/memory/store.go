// Package memory implementa los puertos de persistencia sobre mapas en proceso.
// Pensado para desarrollo local (STORE_DRIVER=memory) y pruebas; no persiste entre reinicios.
package memory

import (
	"sync"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// Store colecciones compartidas por los repositorios en memoria.
type Store struct {
	mu         sync.RWMutex
	inventory  map[string]entity.InventoryRecord
	products   map[string]entity.Product
	categories map[string]entity.Category
	suppliers  map[string]entity.Supplier
	campaigns  map[string]entity.Campaign
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		inventory:  make(map[string]entity.InventoryRecord),
		products:   make(map[string]entity.Product),
		categories: make(map[string]entity.Category),
		suppliers:  make(map[string]entity.Supplier),
		campaigns:  make(map[string]entity.Campaign),
	}
}

// withProduct copia el registro y resuelve su producto, como el LEFT JOIN de PostgreSQL.
// Se llama con el lock tomado.
func (s *Store) withProduct(rec entity.InventoryRecord) *entity.InventoryRecord {
	out := rec
	out.Product = nil
	if p, ok := s.products[rec.ProductID]; ok {
		out.Product = &entity.ProductSummary{Name: p.Name, Price: p.Price, CategoryID: p.CategoryID}
	}
	return &out
}
