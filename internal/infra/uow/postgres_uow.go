package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bayashop-backoffice/internal/infra/db"
	"bayashop-backoffice/internal/infra/repository"
	"bayashop-backoffice/internal/pkg/config"
	"bayashop-backoffice/internal/pkg/errs"
	"bayashop-backoffice/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultTxTimeout = 10 * time.Second
	rollbackTimeout  = 5 * time.Second
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrTransactionTimeout = errs.New("transaction deadline exceeded")
)

type PostgresUoW struct {
	pool      *pgxpool.Pool
	txTimeout time.Duration

	promoCodes *repository.PromoCodeRepository
	mappings   *repository.PromoMappingRepository
}

func NewPostgresUoW(pool *pgxpool.Pool, cfg config.Config) shared.UnitOfWork {
	timeout := cfg.DB.TxTimeout
	if timeout <= 0 {
		timeout = defaultTxTimeout
	}
	return &PostgresUoW{
		pool:       pool,
		txTimeout:  timeout,
		promoCodes: repository.NewPromoCodeRepository(),
		mappings:   repository.NewPromoMappingRepository(),
	}
}

// Within runs fn in one ReadCommitted transaction. The transaction is detached
// from the caller's cancellation and bounded by the configured timeout, so a
// client that goes away cannot leave it open. It is rolled back on every path
// that does not reach a successful commit, panics included. There are no retries.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	txCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.txTimeout)
	defer cancel()

	pgxTx, err := u.pool.BeginTx(txCtx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, ErrTransactionBegin)
	}

	defer u.rollback(pgxTx)

	if err := fn(txCtx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return u.markTimeout(txCtx, err)
	}

	if err := pgxTx.Commit(txCtx); err != nil {
		return u.markTimeout(txCtx, errs.Mark(err, ErrTransactionCommit))
	}
	return nil
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

// rollback is a no-op after a successful commit.
func (u *PostgresUoW) rollback(tx pgx.Tx) {
	ctx, cancel := context.WithTimeout(context.Background(), rollbackTimeout)
	defer cancel()

	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err.Error())
	}
}

func (u *PostgresUoW) markTimeout(txCtx context.Context, err error) error {
	if errors.Is(txCtx.Err(), context.DeadlineExceeded) {
		slog.Warn("transaction aborted after deadline", "timeout", u.txTimeout.String())
		return errs.Mark(err, ErrTransactionTimeout)
	}
	return err
}

type pgTx struct {
	dbtx pgx.Tx
	uow  *PostgresUoW
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) PromoCodes() shared.PromoCodeRepository {
	return t.uow.promoCodes
}

func (t *pgTx) Mappings() shared.PromoMappingRepository {
	return t.uow.mappings
}
