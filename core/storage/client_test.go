package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"propulsion-estimator/core/storage"
	"propulsion-estimator/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestReadObject(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "propulsion", "catalog/motors.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`[]`))), nil)

	data, err := storage.ReadObject(context.Background(), mockClient, "propulsion", "catalog/motors.json")
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	missing := new(mocks.Client)
	missing.On("GetObject", mock.Anything, "propulsion", "nope", mock.Anything).Return(nil, errors.New("not found"))
	_, err = storage.ReadObject(context.Background(), missing, "propulsion", "nope")
	assert.Error(t, err)
}

func TestWriteObject_CreatesBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "propulsion").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "propulsion", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "propulsion", "calibration/a.csv", mock.Anything, int64(3), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	err := storage.WriteObject(context.Background(), mockClient, "propulsion", "calibration/a.csv", "text/csv", []byte("a;b"))
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}
