package checks

import (
	"context"
	"regexp"
	"testing"

	"propulsion-estimator/core/catalog"
	"propulsion-estimator/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func columnRows(names ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment")
	for _, n := range names {
		rows.AddRow(n, "double", "YES", "", nil, "")
	}
	return rows
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_MySQL(t *testing.T) {
	db, mock := setupMockDB(t)

	for _, table := range catalog.Tables() {
		cols := catalog.RequiredColumns(table)
		if table == (catalog.Motor{}).TableName() {
			cols = cols[:len(cols)-1]
		}
		mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `" + table + "`")).WillReturnRows(columnRows(cols...))
	}

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.Equal(t, "mysql", report.Driver)
	assert.False(t, report.Matched)
	assert.Equal(t, "ok", report.Tables["catalog_batteries"].Status)
	assert.Equal(t, "error", report.Tables["catalog_motors"].Status)
	assert.Equal(t, []string{"weight"}, report.Tables["catalog_motors"].MissingColumns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSchema_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, catalog.RequiredColumns("catalog_propellers"), report.Tables["catalog_propellers"].MissingColumns)

	require.NoError(t, catalog.Import(context.Background(), db, &catalog.Catalog{}, 100))

	report, err = CheckSchema(db)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Empty(t, report.Errors)
}
