package components

import (
	"sales-invoicing/internal/infra/queries"
	"sales-invoicing/internal/infra/uow"
	"sales-invoicing/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		queries.New,
		NewTxBeginner,
		// Client and product snapshots are read through one transaction
		fx.Annotate(
			uow.NewPostgresSnapshot,
			fx.As(new(commands.CatalogSnapshot)),
		),
	),
)

func NewTxBeginner(pool *pgxpool.Pool) uow.TxBeginner {
	return pool
}
