package shared

import (
	"context"

	"bayashop-backoffice/internal/domain/promo"
	"bayashop-backoffice/internal/infra/db"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations; rolled back on any error
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	PromoCodes() PromoCodeRepository
	Mappings() PromoMappingRepository
	DB() db.DBTX
}

type PromoCodeRepository interface {
	Insert(ctx context.Context, tx db.DBTX, draft *promo.Draft) (int64, error)
	Update(ctx context.Context, tx db.DBTX, id int64, draft *promo.Draft) (int64, error)
	Delete(ctx context.Context, tx db.DBTX, id int64) (int64, error)
}

type PromoMappingRepository interface {
	ReplaceProductMappings(ctx context.Context, tx db.DBTX, promoID int64, productIDs promo.IDSet) error
	ReplaceCategoryMappings(ctx context.Context, tx db.DBTX, promoID int64, categoryIDs promo.IDSet) error
	DeleteAllMappings(ctx context.Context, tx db.DBTX, promoID int64) (int64, error)
}

type PromoCodeReadStore interface {
	ListAll(ctx context.Context, db db.DBTX) ([]*promo.PromoCode, error)
	FindByCode(ctx context.Context, db db.DBTX, code string) (*promo.PromoCode, error)
}
