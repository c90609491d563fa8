package components

import (
	"bayashop-backoffice/internal/domain/promo"
	"bayashop-backoffice/internal/infra/db"
	"bayashop-backoffice/internal/infra/readstore"
	"bayashop-backoffice/internal/infra/uow"
	"bayashop-backoffice/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewPromoCodeReadStore,
			fx.As(new(shared.PromoCodeReadStore)),
		),
		fx.Annotate(
			readstore.NewProductCategoryReadStore,
			fx.As(new(promo.CategoryLookup)),
		),
	),
)

// the write repositories are owned by the unit of work
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
