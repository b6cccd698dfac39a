package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"apk-server/core/storage/mocks"
	"apk-server/feature/artifact"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const objectKey = "app/build/outputs/apk/debug/app-debug.apk"

func bucketService(client *mocks.Client) *artifact.Service {
	cfg := artifact.Config{Source: artifact.SourceBucket, Path: objectKey, Routes: []string{apkRoute}}
	return artifact.NewService(artifact.NewBucketSource(client, "builds", objectKey), cfg, zap.NewNop())
}

func TestRunCheck_Bucket(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "builds").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "builds", objectKey, mock.Anything).
			Return(minio.ObjectInfo{Key: objectKey, Size: 42, LastModified: time.Now()}, nil)

		var out bytes.Buffer
		require.NoError(t, runCheck(context.Background(), bucketService(mockClient), &out))
		assert.Contains(t, out.String(), "Location: builds/"+objectKey)
		assert.Contains(t, out.String(), "Size: 42 bytes")
		mockClient.AssertExpectations(t)
	})

	t.Run("BucketMissing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "builds").Return(false, nil)

		err := runCheck(context.Background(), bucketService(mockClient), &bytes.Buffer{})
		assert.ErrorIs(t, err, artifact.ErrBucketMissing)
		assert.Contains(t, err.Error(), "bucket missing")
		mockClient.AssertNotCalled(t, "StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ObjectMissing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "builds").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "builds", objectKey, mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

		err := runCheck(context.Background(), bucketService(mockClient), &bytes.Buffer{})
		assert.ErrorIs(t, err, artifact.ErrNotFound)
		assert.NotErrorIs(t, err, artifact.ErrBucketMissing)
		assert.Contains(t, err.Error(), "object missing")
	})
}
