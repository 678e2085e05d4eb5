package planner

import (
	"context"
	"fmt"

	"github.com/jhoicas/Abastecimiento-api/internal/domain/entity"
	"github.com/jhoicas/Abastecimiento-api/internal/domain/repository"
)

// LoadNetwork arma la instantánea de solo lectura con todas las entidades del catálogo.
func LoadNetwork(ctx context.Context, catalog repository.Catalog) (*entity.Network, error) {
	net := entity.NewNetwork()
	for _, kind := range entity.Kinds() {
		all, err := catalog.GetAll(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", kind, err)
		}
		if err := net.AddAll(all...); err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", kind, err)
		}
	}
	return net, nil
}
