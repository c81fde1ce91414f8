package uow

import (
	"context"
	"errors"
	"log/slog"

	"sales-invoicing/internal/infra"
	"sales-invoicing/internal/infra/queries"
	"sales-invoicing/internal/infra/readstore"
	"sales-invoicing/internal/pkg/clock"
	"sales-invoicing/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
)

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// snapshotTxOptions pins one catalog state for every read in the transaction.
var snapshotTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

type PostgresSnapshot struct {
	db    TxBeginner
	q     *queries.Queries
	clock clock.Clock
}

func NewPostgresSnapshot(db TxBeginner, q *queries.Queries, clock clock.Clock) *PostgresSnapshot {
	return &PostgresSnapshot{
		db:    db,
		q:     q,
		clock: clock,
	}
}

func (u *PostgresSnapshot) WithinSnapshot(ctx context.Context, fn func(ctx context.Context, reads commands.CatalogReads) error) error {
	pgxTx, err := u.db.BeginTx(ctx, snapshotTxOptions)
	if err != nil {
		return infra.WrapRepoErr("failed to begin snapshot transaction", err)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback snapshot transaction", "error", rollbackErr.Error())
			}
		}
	}()

	reads := &catalogReads{
		clients:  readstore.NewClientReadStore(u.q, pgxTx),
		products: readstore.NewProductReadStore(u.q, pgxTx, u.clock),
	}
	if err := fn(ctx, reads); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit snapshot transaction", err)
	}
	return nil
}

type catalogReads struct {
	clients  *readstore.ClientReadStore
	products *readstore.ProductReadStore
}

func (r *catalogReads) Clients() commands.ClientReadStore   { return r.clients }
func (r *catalogReads) Products() commands.ProductReadStore { return r.products }
