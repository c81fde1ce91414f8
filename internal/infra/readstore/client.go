package readstore

import (
	"context"

	"sales-invoicing/internal/domain/published"
	"sales-invoicing/internal/infra"
	"sales-invoicing/internal/infra/queries"
	"sales-invoicing/internal/pkg/pgconv"
)

type ClientReadQueries interface {
	GetClientByID(ctx context.Context, db queries.DBTX, id string) (queries.ClientRow, error)
}

type ClientReadStore struct {
	queries ClientReadQueries
	db      queries.DBTX
}

func NewClientReadStore(queries ClientReadQueries, db queries.DBTX) *ClientReadStore {
	return &ClientReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClientReadStore) FindByID(ctx context.Context, id published.ID) (published.ClientData, error) {
	row, err := r.queries.GetClientByID(ctx, r.db, id.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return published.ClientData{}, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return published.ClientData{}, infra.WrapRepoErr("failed to find client by ID", err)
	}

	return toClientData(row)
}

func toClientData(row queries.ClientRow) (published.ClientData, error) {
	id, err := published.NewID(row.ID)
	if err != nil {
		return published.ClientData{}, infra.WrapRepoErr("stored client has no id", err, infra.KindCorruptData)
	}
	client, err := published.NewClientData(id, row.Name)
	if err != nil {
		return published.ClientData{}, infra.WrapRepoErr("stored client is invalid", err, infra.KindCorruptData)
	}
	return client, nil
}
