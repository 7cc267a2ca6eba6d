package postgres

import (
	"context"
	"errors"
	"fmt"
	"lottery-engine/internal/model"
	"lottery-engine/internal/repository"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		notFound    bool
		persistence bool
	}{
		{"no rows", pgx.ErrNoRows, true, false},
		{"serialization failure", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, false, true},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, false, true},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, false, true},
		{"disk full", &pgconn.PgError{Code: pgerrcode.DiskFull}, false, true},
		{"admin shutdown", &pgconn.PgError{Code: pgerrcode.AdminShutdown}, false, true},
		{"invalid json", &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}, false, false},
		{"network", errors.New("dial tcp: connection refused"), false, true},
		{"cancelled", fmt.Errorf("query: %w", context.Canceled), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("read account:1", tt.err)
			assert.Equal(t, tt.notFound, errors.Is(err, repository.ErrKeyNotFound))
			assert.Equal(t, tt.persistence, errors.Is(err, model.ErrPersistence))
		})
	}
}

func TestClassify_KeepsCause(t *testing.T) {
	cause := &pgconn.PgError{Code: pgerrcode.SerializationFailure}
	err := classify("commit transaction", cause)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
	assert.Contains(t, err.Error(), "commit transaction")
}
