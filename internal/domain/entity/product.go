package entity

// Product representa un artículo con su propia red de puntos de stock y rutas.
// Price se expresa en unidades menores de moneda (centavos): 100 = 1.00.
// Eliminar un producto elimina en cascada sus puntos de stock y rutas.
type Product struct {
	ID    int64
	Name  string
	Price int64
}

func (p Product) Kind() Kind      { return KindProduct }
func (p Product) EntityID() int64 { return p.ID }

// NameClash indica si o es otro producto con el mismo nombre.
func (p Product) NameClash(o Product) bool { return p.ID != o.ID && p.Name == o.Name }
