//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bayashop-backoffice/internal/domain/promo"
	"bayashop-backoffice/internal/infra"
	"bayashop-backoffice/internal/infra/db"
	"bayashop-backoffice/internal/pkg/clock"
	"bayashop-backoffice/internal/pkg/errs"
	"bayashop-backoffice/internal/usecase/queries"
	"bayashop-backoffice/tests/common/builder"
	promomock "bayashop-backoffice/tests/mock/promo"
	sharedmock "bayashop-backoffice/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PromoQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	uow     *sharedmock.MockUnitOfWork
	store   *sharedmock.MockPromoCodeReadStore
	lookup  *promomock.MockCategoryLookup
	clock   *clock.FixedClock
	queries queries.PromoQueries
}

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func (s *PromoQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.store = sharedmock.NewMockPromoCodeReadStore(s.ctrl)
	s.lookup = promomock.NewMockCategoryLookup(s.ctrl)
	s.clock = clock.NewFixedClock(fixedNow)
	s.queries = queries.NewPromoQueries(s.uow, s.store, s.lookup, s.clock, nil)

	s.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
}

func (s *PromoQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPromoQueriesSuite(t *testing.T) {
	suite.Run(t, new(PromoQueriesTestSuite))
}

func activeNow() *builder.PromoBuilder {
	return builder.NewPromoBuilder().WithWindow(fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour))
}

func (s *PromoQueriesTestSuite) TestList() {
	ctx := context.Background()

	s.Run("success: returns store rows unchanged", func() {
		rows := []*promo.PromoCode{
			activeNow().WithID(1).BuildDomain(),
			activeNow().WithID(2).WithProducts("specific", 4, 2).BuildDomain(),
		}
		s.store.EXPECT().ListAll(ctx, nil).Return(rows, nil)

		got, err := s.queries.List(ctx)
		s.Require().NoError(err)
		if diff := cmp.Diff(rows, got, cmp.AllowUnexported(promo.IDSet{})); diff != "" {
			s.T().Errorf("list mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: storage failure", func() {
		dbErr := errors.New("timeout")
		s.store.EXPECT().ListAll(ctx, nil).Return(nil, dbErr)

		got, err := s.queries.List(ctx)
		s.Nil(got)
		s.ErrorIs(err, dbErr)
	})
}

func (s *PromoQueriesTestSuite) TestValidate() {
	ctx := context.Background()

	s.Run("success: valid code returns its reduction", func() {
		s.store.EXPECT().FindByCode(ctx, nil, "SUMMER10").
			Return(activeNow().WithReduction(12.5).BuildDomain(), nil)

		res, err := s.queries.Validate(ctx, "SUMMER10", []int64{1})
		s.Require().NoError(err)
		s.True(res.Valid)
		s.Equal(12.5, res.Reduction)
		s.Equal("Code promo valide", res.Message)
	})

	s.Run("success: surrounding spaces are ignored as on write", func() {
		s.store.EXPECT().FindByCode(ctx, nil, "SALE10").
			Return(activeNow().WithCode("SALE10").BuildDomain(), nil)

		res, err := s.queries.Validate(ctx, " SALE10 ", []int64{1})
		s.Require().NoError(err)
		s.True(res.Valid)
	})

	s.Run("success: category lookup resolves membership", func() {
		s.store.EXPECT().FindByCode(ctx, nil, "CAT").
			Return(activeNow().WithCode("CAT").WithCategories("specific", 8).BuildDomain(), nil)
		s.lookup.EXPECT().CategoriesOf(ctx, int64(31)).Return([]int64{8}, nil)

		res, err := s.queries.Validate(ctx, "CAT", []int64{31})
		s.Require().NoError(err)
		s.True(res.Valid)
	})

	rejections := []struct {
		name   string
		promo  *promo.PromoCode
		status promo.Status
	}{
		{
			name:   "unknown code",
			promo:  nil,
			status: promo.StatusInvalid,
		},
		{
			name:   "inactive code",
			promo:  activeNow().WithActive(false).BuildDomain(),
			status: promo.StatusInactive,
		},
		{
			name:   "expired code",
			promo:  builder.NewPromoBuilder().WithWindow(fixedNow.Add(-2*time.Hour), fixedNow.Add(-time.Hour)).BuildDomain(),
			status: promo.StatusExpired,
		},
		{
			name:   "product not mapped",
			promo:  activeNow().WithProducts("specific", 5, 9).BuildDomain(),
			status: promo.StatusNotApplicable,
		},
	}

	for _, tc := range rejections {
		s.Run("rejected: "+tc.name, func() {
			if tc.promo == nil {
				notFound := infra.WrapRepoErr("promo code not found", errors.New("no rows"), infra.KindNotFound)
				s.store.EXPECT().FindByCode(ctx, nil, "X").Return(nil, notFound)
			} else {
				s.store.EXPECT().FindByCode(ctx, nil, "X").Return(tc.promo, nil)
			}

			res, err := s.queries.Validate(ctx, "X", []int64{7})
			s.Nil(res)
			s.ErrorIs(err, errs.ErrPromoRejected)

			var rejected *promo.RejectedError
			s.Require().ErrorAs(err, &rejected)
			s.Equal(tc.status, rejected.Status)
		})
	}

	s.Run("clock drives the expiry decision", func() {
		p := activeNow().BuildDomain()
		s.store.EXPECT().FindByCode(ctx, nil, "SUMMER10").Return(p, nil).Times(2)

		_, err := s.queries.Validate(ctx, "SUMMER10", []int64{1})
		s.Require().NoError(err)

		s.clock.Add(2 * time.Hour)
		defer s.clock.Set(fixedNow)
		_, err = s.queries.Validate(ctx, "SUMMER10", []int64{1})
		s.ErrorIs(err, errs.ErrPromoRejected)
	})

	s.Run("error: storage failure is not a rejection", func() {
		dbErr := infra.WrapRepoErr("failed to load promo code", errors.New("conn refused"))
		s.store.EXPECT().FindByCode(ctx, nil, "SUMMER10").Return(nil, dbErr)

		_, err := s.queries.Validate(ctx, "SUMMER10", []int64{1})
		s.Require().Error(err)
		s.NotErrorIs(err, errs.ErrPromoRejected)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})

	s.Run("error: lookup failure is not a rejection", func() {
		lookupErr := errors.New("lookup failed")
		s.store.EXPECT().FindByCode(ctx, nil, "CAT").
			Return(activeNow().WithCategories("specific", 8).BuildDomain(), nil)
		s.lookup.EXPECT().CategoriesOf(ctx, int64(1)).Return(nil, lookupErr)

		_, err := s.queries.Validate(ctx, "CAT", []int64{1})
		s.ErrorIs(err, lookupErr)
		s.NotErrorIs(err, errs.ErrPromoRejected)
	})
}
