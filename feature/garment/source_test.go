package garment

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"garment-geek/core/database"
	"garment-geek/core/storage/mocks"
	"garment-geek/feature/garment/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(Config{Source: SourceFile, Path: "inventory.txt"}, nil, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "file:inventory.txt", src.Name())

	_, err = NewSource(Config{Source: SourceStorage}, nil, "garments", nil)
	assert.Error(t, err)

	_, err = NewSource(Config{Source: SourceDatabase}, nil, "", nil)
	assert.Error(t, err)

	_, err = NewSource(Config{Source: "ftp"}, nil, "", nil)
	assert.True(t, errors.Is(err, ErrUnknownSource))
}

func TestFileSource_Load(t *testing.T) {
	src := &FileSource{Path: "testdata/inventory.txt"}

	result, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Inventory.Len())
	assert.NotEmpty(t, result.Version)

	_, err = (&FileSource{Path: "testdata/missing.txt"}).Load(context.Background())
	assert.Error(t, err)
}

func TestStorageSource_Load(t *testing.T) {
	data, err := os.ReadFile("testdata/inventory.txt")
	require.NoError(t, err)

	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, "garments", "catalog/inventory.txt", mock.Anything).
		Return(minio.ObjectInfo{ETag: "etag-1"}, nil)
	client.On("GetObject", mock.Anything, "garments", "catalog/inventory.txt", mock.Anything).
		Return(io.NopCloser(strings.NewReader(string(data))), nil)

	src := &StorageSource{Client: client, Bucket: "garments", Object: "catalog/inventory.txt"}
	result, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Inventory.Len())
	assert.Equal(t, "etag-1", result.Version)
	client.AssertExpectations(t)
}

func TestStorageSource_MissingObject(t *testing.T) {
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, "garments", "catalog/inventory.txt", mock.Anything).
		Return(nil, errors.New("object does not exist"))

	src := &StorageSource{Client: client, Bucket: "garments", Object: "catalog/inventory.txt"}
	_, err := src.Load(context.Background())
	assert.Error(t, err)
	client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDatabase_ImportAndLoad(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	parsed, err := (&FileSource{Path: "testdata/inventory.txt"}).Load(ctx)
	require.NoError(t, err)

	n, err := ImportToDatabase(ctx, db, parsed.Inventory)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// A second import updates rows in place.
	n, err = ImportToDatabase(ctx, db, parsed.Inventory)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	result, err := (&DatabaseSource{DB: db}).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rows:3", result.Version)
	require.Equal(t, 3, result.Inventory.Len())
	assert.Equal(t, parsed.Inventory.Brands(), result.Inventory.Brands())
	assert.Equal(t, parsed.Inventory.MaxPrice(), result.Inventory.MaxPrice())

	want, _ := parsed.Inventory.Get(3)
	got, ok := result.Inventory.Get(3)
	require.True(t, ok)
	assert.Equal(t, want.Attributes.Describe(), got.Attributes.Describe())
}

func TestDatabaseSource_SkipInvalidRows(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&[]models.GarmentRecord{
		{ProductCode: 1, Type: "HOODIE", Name: "Good", Price: 10, Material: NA, Sizes: "M"},
		{ProductCode: 2, Type: "JUMPER", Name: "Bad", Price: 10, Material: NA, Sizes: "M"},
	}).Error)

	_, err := (&DatabaseSource{DB: db, Mode: Strict}).Load(ctx)
	assert.True(t, errors.Is(err, ErrUnknownValue))

	result, err := (&DatabaseSource{DB: db, Mode: SkipInvalid}).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inventory.Len())
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "type", result.Skipped[0].Field)
}

func TestUploadToStorage(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "garments").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "garments", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "garments", "catalog/inventory.txt", mock.Anything, int64(5), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	err := UploadToStorage(context.Background(), client, "garments", "catalog/inventory.txt", []byte("hello"))
	require.NoError(t, err)
	client.AssertExpectations(t)
}
