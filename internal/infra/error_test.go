//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"bayashop-backoffice/internal/infra"
	"bayashop-backoffice/internal/pkg/errs"
	"bayashop-backoffice/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	pgErr := func(code string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code})
	}

	tests := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
	}{
		{"unique violation", pgErr(pgconv.CodeUniqueViolation), nil, infra.KindDuplicateKey},
		{"foreign key violation", pgErr(pgconv.CodeForeignKeyViolation), nil, infra.KindForeignKeyViolated},
		{"check violation", pgErr(pgconv.CodeCheckViolation), nil, infra.KindConstraintViolated},
		{"unknown failure", errors.New("connection reset"), nil, infra.KindDBFailure},
		{"explicit kind wins", pgErr(pgconv.CodeUniqueViolation), []infra.RepositoryErrorKind{infra.KindNotFound}, infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed to write", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.wantKind))
			assert.Contains(t, err.Error(), "failed to write")
			assert.Equal(t, tt.wantKind != infra.KindNotFound, errors.Is(err, errs.ErrDatabaseOperationFailed))
		})
	}
}

func TestIsKind_UnrelatedError(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindDBFailure))
}
