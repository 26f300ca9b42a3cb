package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	tests := []struct {
		name    string
		execErr error
	}{
		{"success", nil},
		{"db error", sql.ErrConnDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			exp := mock.ExpectExec(`CREATE TABLE IF NOT EXISTS documents`)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 0))
			}

			err = Migrate(context.Background(), db)
			if tt.execErr != nil {
				require.ErrorIs(t, err, tt.execErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSchemaCoversAllTables(t *testing.T) {
	for _, table := range []string{"documents", "users", "auth_sessions"} {
		require.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS "+table)
	}
}
