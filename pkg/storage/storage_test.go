package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"glassfinder/pkg/utils"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMinioAPI struct {
	buckets map[string]bool
	objects map[string][]byte
	puts    []minio.PutObjectOptions
}

func newFakeMinioAPI() *fakeMinioAPI {
	return &fakeMinioAPI{
		buckets: map[string]bool{},
		objects: map[string][]byte{},
	}
}

func (f *fakeMinioAPI) BucketExists(_ context.Context, bucketName string) (bool, error) {
	return f.buckets[bucketName], nil
}

func (f *fakeMinioAPI) MakeBucket(_ context.Context, bucketName string, _ minio.MakeBucketOptions) error {
	f.buckets[bucketName] = true
	return nil
}

func (f *fakeMinioAPI) PutObject(_ context.Context, bucketName, objectName string, reader io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[bucketName+"/"+objectName] = data
	f.puts = append(f.puts, opts)
	return minio.UploadInfo{Bucket: bucketName, Key: objectName}, nil
}

func testStorageConfig() utils.StorageConfig {
	return utils.StorageConfig{
		Bucket:    "images",
		PublicURL: "https://cdn.test/",
	}
}

func TestNewStoreEnsuresBucket(t *testing.T) {
	api := newFakeMinioAPI()

	_, err := NewMinioStoreWithAPI(context.Background(), api, testStorageConfig(), zap.NewNop())
	require.NoError(t, err)
	assert.True(t, api.buckets["images"])

	// A second start finds the bucket and does not recreate it.
	_, err = NewMinioStoreWithAPI(context.Background(), api, testStorageConfig(), zap.NewNop())
	require.NoError(t, err)
}

func TestStoreWritesBlobAndReturnsURL(t *testing.T) {
	api := newFakeMinioAPI()
	store, err := NewMinioStoreWithAPI(context.Background(), api, testStorageConfig(), zap.NewNop())
	require.NoError(t, err)

	url, err := store.Store(context.Background(), strings.NewReader("png-bytes"), 9, "image/png")
	require.NoError(t, err)

	// Trailing slash on the public URL does not double up.
	assert.True(t, strings.HasPrefix(url, "https://cdn.test/images/"))
	assert.NotContains(t, url, "//images")

	require.Len(t, api.objects, 1)
	for _, data := range api.objects {
		assert.Equal(t, "png-bytes", string(data))
	}
	require.Len(t, api.puts, 1)
	assert.Equal(t, "image/png", api.puts[0].ContentType)
}

func TestStoreKeysAreUnique(t *testing.T) {
	api := newFakeMinioAPI()
	store, err := NewMinioStoreWithAPI(context.Background(), api, testStorageConfig(), zap.NewNop())
	require.NoError(t, err)

	first, err := store.Store(context.Background(), strings.NewReader("a"), 1, "image/png")
	require.NoError(t, err)
	second, err := store.Store(context.Background(), strings.NewReader("b"), 1, "image/png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, api.objects, 2)
}
