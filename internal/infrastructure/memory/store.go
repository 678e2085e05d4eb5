// Package memory implementa los puertos de persistencia en memoria, con las mismas
// reglas que el adaptador PostgreSQL (IDs secuenciales, pares de ruta únicos,
// borrado en cascada y transacciones todo o nada). Se usa en simulaciones y tests.
package memory

import (
	"sync"

	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
)

type dataset struct {
	products    map[int64]entity.Product
	stockPoints map[int64]entity.StockPoint
	routes      map[int64]entity.SupplyRoute
	requests    map[int64]entity.MoveRequest
	orders      map[int64]entity.MoveOrder
	seq         map[entity.Kind]int64
}

func newDataset() *dataset {
	return &dataset{
		products:    map[int64]entity.Product{},
		stockPoints: map[int64]entity.StockPoint{},
		routes:      map[int64]entity.SupplyRoute{},
		requests:    map[int64]entity.MoveRequest{},
		orders:      map[int64]entity.MoveOrder{},
		seq:         map[entity.Kind]int64{},
	}
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		products:    copyMap(d.products),
		stockPoints: copyMap(d.stockPoints),
		routes:      copyMap(d.routes),
		requests:    copyMap(d.requests),
		orders:      copyMap(d.orders),
		seq:         make(map[entity.Kind]int64, len(d.seq)),
	}
	for k, v := range d.seq {
		c.seq[k] = v
	}
	return c
}

func copyMap[T any](m map[int64]T) map[int64]T {
	out := make(map[int64]T, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// nextID asigna el siguiente ID del tipo, o respeta uno explícito avanzando la secuencia.
func (d *dataset) nextID(kind entity.Kind, explicit int64) int64 {
	if explicit > 0 {
		if explicit > d.seq[kind] {
			d.seq[kind] = explicit
		}
		return explicit
	}
	d.seq[kind]++
	return d.seq[kind]
}

// Store contenedor compartido por todos los repositorios en memoria.
// Las escrituras fuera de una transacción trabajan sobre una copia y la publican al terminar bien.
type Store struct {
	mu   sync.RWMutex
	data *dataset
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

// base resuelve sobre qué dataset opera un repositorio: el de la transacción en curso
// o el del almacén con su mutex.
type base struct {
	s  *Store
	tx *dataset
}

func (b base) read(fn func(d *dataset) error) error {
	if b.tx != nil {
		return fn(b.tx)
	}
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()
	return fn(b.s.data)
}

func (b base) write(fn func(d *dataset) error) error {
	if b.tx != nil {
		return fn(b.tx)
	}
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	work := b.s.data.clone()
	if err := fn(work); err != nil {
		return err
	}
	b.s.data = work
	return nil
}

// Repositories agrupa los adaptadores fuera de transacción.
type Repositories struct {
	Products    *ProductRepo
	StockPoints *StockPointRepo
	Routes      *SupplyRouteRepo
	Requests    *MoveRequestRepo
	Orders      *MoveOrderRepo
	Catalog     *Catalog
	Tx          *TxRunner
}

// Repositories construye todos los adaptadores atados a este almacén.
func (s *Store) Repositories() Repositories {
	b := base{s: s}
	return Repositories{
		Products:    &ProductRepo{b},
		StockPoints: &StockPointRepo{b},
		Routes:      &SupplyRouteRepo{b},
		Requests:    &MoveRequestRepo{b},
		Orders:      &MoveOrderRepo{b},
		Catalog:     &Catalog{b},
		Tx:          &TxRunner{s: s},
	}
}
