package catalog

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"propulsion-estimator/core/database"
	"propulsion-estimator/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func sampleCatalog() *Catalog {
	return &Catalog{
		Batteries: []Battery{
			{Text: "LiPo 4200mAh - 80/120C", CellVolt: 3.7, Rin: 0.0012, Capacity: 4200, CRateMax: 120, CRateConst: 80, Weight: 99},
			{Text: "LiPo 5000mAh - 25/35C", CellVolt: 3.7, Rin: 0.0030, Capacity: 5000, CRateMax: 35, CRateConst: 25, Weight: 130},
		},
		Motors: []Motor{
			{Manufacturer: "T-Motor", Type: "MN705-S KV260 (260)", Kv: 260, Io: 1.2, Rin: 0.036, Weight: 535},
		},
		ESCs: []ESC{
			{Text: "max 80A", Rin: 0.0012, MaxCurrent: 80, Weight: 80},
		},
		Propellers: []Propeller{
			{Type: "APC Electric E", Tconst: 1.0, Pconst: 1.08},
		},
	}
}

func newSQLiteDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestImportAndLoadDatabase(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()

	require.NoError(t, Import(ctx, db, sampleCatalog(), 1))

	loaded, err := LoadDatabase(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, SourceDatabase, loaded.Source)
	assert.Equal(t, map[string]int{DomainBattery: 2, DomainMotor: 1, DomainESC: 1, DomainPropeller: 1}, loaded.Counts())
	assert.Equal(t, "LiPo 4200mAh - 80/120C", loaded.Batteries[0].Text)
	assert.Equal(t, 260.0, loaded.Motors[0].Kv)
	assert.Equal(t, 1.08, loaded.Propellers[0].Pconst)

	// A second import replaces the previous rows.
	smaller := sampleCatalog()
	smaller.Batteries = smaller.Batteries[:1]
	require.NoError(t, Import(ctx, db, smaller, 10))
	loaded, err = LoadDatabase(ctx, db)
	require.NoError(t, err)
	assert.Len(t, loaded.Batteries, 1)
}

func TestLoadDatabase_MissingTables(t *testing.T) {
	db := newSQLiteDB(t)
	_, err := LoadDatabase(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog_batteries is missing columns")
}

func TestVerifySchema_MySQL(t *testing.T) {
	sqlDB, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "int", "NO", "PRI", nil, "auto_increment").
		AddRow("text", "varchar(255)", "YES", "", nil, "").
		AddRow("capacity", "double", "YES", "", nil, "")
	mockDB.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `catalog_batteries`")).WillReturnRows(rows)

	err = VerifySchema(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cell_volt")
	assert.NotContains(t, err.Error(), "capacity")
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestLoadSnapshot(t *testing.T) {
	client := new(mocks.Client)
	objects := map[string]string{
		"catalog/battery.json":   `[{"text":"LiPo 4200mAh - 80/120C","cell_volt":3.7,"Rin":0.0012,"capacity":4200,"crate_max":120,"crate_const":80,"weight":99}]`,
		"catalog/motor.json":     `[{"manufacturer":"T-Motor","type":"MN705-S KV260 (260)","Kv":260,"Io":1.2,"Rin":0.036,"weight":535}]`,
		"catalog/esc.json":       `[]`,
		"catalog/propeller.json": `[{"type":"APC Electric E","Tconst":1,"Pconst":1.08}]`,
	}
	for name, body := range objects {
		client.On("GetObject", mock.Anything, "propulsion", name, minio.GetObjectOptions{}).
			Return(io.NopCloser(strings.NewReader(body)), nil)
	}

	c, err := LoadSnapshot(context.Background(), client, "propulsion", "catalog")
	require.NoError(t, err)
	assert.Equal(t, SourceStorage, c.Source)
	assert.Equal(t, 120.0, c.Batteries[0].CRateMax)
	assert.Equal(t, "T-Motor", c.Motors[0].Manufacturer)
	assert.Empty(t, c.ESCs)
	assert.Equal(t, 1.08, c.Propellers[0].Pconst)
	client.AssertExpectations(t)
}

func TestLoadSnapshot_DecodeError(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "propulsion", "catalog/battery.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader("{not json")), nil)
	client.On("GetObject", mock.Anything, "propulsion", mock.Anything, mock.Anything).
		Return(io.NopCloser(strings.NewReader("[]")), nil)

	_, err := LoadSnapshot(context.Background(), client, "propulsion", "catalog")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "battery.json")
}

func TestWriteSnapshot(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "propulsion").Return(true, nil)
	client.On("PutObject", mock.Anything, "propulsion", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	require.NoError(t, WriteSnapshot(context.Background(), client, "propulsion", "catalog", sampleCatalog()))
	client.AssertNumberOfCalls(t, "PutObject", 4)
	client.AssertCalled(t, "PutObject", mock.Anything, "propulsion", "catalog/motor.json", mock.Anything, mock.Anything, mock.Anything)
}

func TestStore(t *testing.T) {
	t.Run("Not Loaded", func(t *testing.T) {
		s := NewStore(func(context.Context) (*Catalog, error) { return sampleCatalog(), nil }, nil)
		_, err := s.Current()
		assert.ErrorIs(t, err, ErrNotLoaded)
	})

	t.Run("Reload Swaps Snapshot", func(t *testing.T) {
		calls := 0
		s := NewStore(func(context.Context) (*Catalog, error) {
			calls++
			c := sampleCatalog()
			if calls > 1 {
				c.Motors = nil
			}
			return c, nil
		}, nil)

		_, err := s.Reload(context.Background())
		require.NoError(t, err)
		first, err := s.Current()
		require.NoError(t, err)
		assert.Len(t, first.Motors, 1)
		assert.False(t, first.LoadedAt.IsZero())

		_, err = s.Reload(context.Background())
		require.NoError(t, err)
		second, _ := s.Current()
		assert.Empty(t, second.Motors)
		// Earlier readers keep their complete snapshot.
		assert.Len(t, first.Motors, 1)
	})

	t.Run("Failed Reload Keeps Previous", func(t *testing.T) {
		fail := false
		s := NewStore(func(context.Context) (*Catalog, error) {
			if fail {
				return nil, errors.New("db down")
			}
			return sampleCatalog(), nil
		}, nil)
		_, err := s.Reload(context.Background())
		require.NoError(t, err)

		fail = true
		_, err = s.Reload(context.Background())
		assert.Error(t, err)
		c, err := s.Current()
		require.NoError(t, err)
		assert.Len(t, c.Batteries, 2)
	})

	t.Run("Static", func(t *testing.T) {
		s := NewStaticStore(sampleCatalog())
		c, err := s.Current()
		require.NoError(t, err)
		assert.Len(t, c.Propellers, 1)
	})

	t.Run("Reload Leaves Served Snapshot Untouched", func(t *testing.T) {
		served := sampleCatalog()
		served.LoadedAt = time.Time{}
		s := NewStaticStore(served)

		reloaded, err := s.Reload(context.Background())
		require.NoError(t, err)
		assert.True(t, served.LoadedAt.IsZero())
		assert.False(t, reloaded.LoadedAt.IsZero())
		assert.NotSame(t, served, reloaded)
		assert.Equal(t, served.Motors, reloaded.Motors)

		current, err := s.Current()
		require.NoError(t, err)
		assert.Same(t, reloaded, current)
	})

	t.Run("Reload Keeps Loader Timestamp", func(t *testing.T) {
		stamp := time.Unix(1700000000, 0)
		s := NewStore(func(context.Context) (*Catalog, error) {
			c := sampleCatalog()
			c.LoadedAt = stamp
			return c, nil
		}, nil)
		c, err := s.Reload(context.Background())
		require.NoError(t, err)
		assert.True(t, stamp.Equal(c.LoadedAt))
	})
}
