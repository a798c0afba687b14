package integrity

import (
	"io"
	"net/http/httptest"
	"testing"

	"propulsion-estimator/core/storage/mocks"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupApp(client *mocks.Client, db *gorm.DB) *fiber.App {
	app := fiber.New()
	feature := NewFeature(client, "propulsion", "catalog", db, zap.NewNop())
	_ = feature.Load(app)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestLoader(t *testing.T) {
	feature := NewFeature(new(mocks.Client), "propulsion", "catalog", nil, zap.NewNop())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())
	assert.NoError(t, feature.Load(fiber.New()))
}

func TestHandleSnapshotCheck(t *testing.T) {
	t.Run("Checked", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "propulsion").Return(true, nil)
		ch := make(chan minio.ObjectInfo)
		close(ch)
		client.On("ListObjects", mock.Anything, "propulsion", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		status, body := get(t, setupApp(client, nil), "/integrity/snapshots")
		assert.Equal(t, 200, status)
		assert.Equal(t, "checked", body["status"])
		assert.Len(t, body["missing"], 4)
	})

	t.Run("Fix Without Database", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "propulsion").Return(false, nil)

		status, body := get(t, setupApp(client, nil), "/integrity/snapshots?fix=true")
		assert.Equal(t, 500, status)
		assert.Equal(t, "Failed to rewrite snapshots", body["error"])
	})

	t.Run("Fixed", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "propulsion").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "propulsion", mock.Anything).Return(nil)
		client.On("PutObject", mock.Anything, "propulsion", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		status, body := get(t, setupApp(client, seededDB(t)), "/integrity/snapshots?fix=true")
		assert.Equal(t, 200, status)
		assert.Equal(t, "fixed", body["status"])
	})
}

func TestHandleSchemaCheck(t *testing.T) {
	status, _ := get(t, setupApp(new(mocks.Client), nil), "/integrity/schema")
	assert.Equal(t, 503, status)

	status, body := get(t, setupApp(new(mocks.Client), seededDB(t)), "/integrity/schema")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["matched"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "propulsion").Return(false, assert.AnError)

	status, body := get(t, setupApp(client, nil), "/integrity")
	assert.Equal(t, 200, status)
	assert.Contains(t, body, "schema")
	assert.Contains(t, body, "snapshots")
	assert.Contains(t, body, "drift")
}
