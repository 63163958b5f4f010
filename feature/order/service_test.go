package order

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"garment-geek/core/catalog"
	"garment-geek/core/database"
	"garment-geek/core/storage/mocks"
	"garment-geek/feature/session"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type stubCatalog map[catalog.ProductCode]catalog.Item

func (s stubCatalog) Get(ctx context.Context, code catalog.ProductCode) (catalog.Item, error) {
	item, ok := s[code]
	if !ok {
		return catalog.Item{}, errors.New("not found")
	}
	return item, nil
}

var geekTee = catalog.Item{Code: 222, Name: "Geek Tee", Price: 12.99}

func testCatalog() stubCatalog {
	return stubCatalog{geekTee.Code: geekTee}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

// setupMockDB creates a mock GORM DB for testing.
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

func expectPut(client *mocks.Client, key string) {
	client.On("PutObject", mock.Anything, "garments", key, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{Key: key}, nil)
}

func TestService_SubmitFromSession(t *testing.T) {
	client := new(mocks.Client)
	expectPut(client, "orders/Alex_Robertson_222.txt")

	db := openTestDB(t)
	repo := NewRepository(db)
	require.NoError(t, repo.Migrate())

	sessions := session.NewStore(time.Minute)
	sess := sessions.SetResults("", []catalog.Item{geekTee})

	svc := NewService(client, "garments", Config{Prefix: "orders/"}, repo, testCatalog(), sessions, zap.NewNop(), nil)
	ctx := context.Background()

	_, err := svc.Select(ctx, sess.ID, 222)
	require.NoError(t, err)

	o, err := svc.Submit(ctx, Request{
		SessionID: sess.ID,
		Name:      " Alex Robertson ",
		Email:     "geek@geekmail.com",
		Message:   "Hurry please",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "Alex Robertson", o.Customer.Name)
	assert.Equal(t, catalog.ProductCode(222), o.ProductCode)
	assert.Equal(t, "orders/Alex_Robertson_222.txt", o.ObjectKey)
	client.AssertExpectations(t)

	call := client.Calls[0]
	body, err := io.ReadAll(call.Arguments.Get(3).(io.Reader))
	require.NoError(t, err)
	assert.Equal(t, o.Confirmation(), string(body))

	_, err = sessions.Choice(sess.ID)
	assert.True(t, errors.Is(err, session.ErrNoChoice))

	recent, err := svc.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, o.ID, recent[0].ID)
	assert.Equal(t, "Geek Tee", recent[0].ItemName)
}

func TestService_SubmitByProductCode(t *testing.T) {
	client := new(mocks.Client)
	expectPut(client, "orders/Alex_Robertson_222.txt")
	svc := NewService(client, "garments", Config{Prefix: "orders/"}, nil, testCatalog(), nil, zap.NewNop(), nil)

	code := catalog.ProductCode(222)
	o, err := svc.Submit(context.Background(), Request{ProductCode: &code, Name: "Alex Robertson", Email: "geek@geekmail.com"})
	require.NoError(t, err)
	assert.Equal(t, "Geek Tee", o.ItemName)

	_, err = svc.Recent(context.Background(), 5)
	assert.Error(t, err)
}

func TestService_SubmitRejected(t *testing.T) {
	client := new(mocks.Client)
	sessions := session.NewStore(time.Minute)
	sess := sessions.SetResults("", []catalog.Item{geekTee})
	svc := NewService(client, "garments", Config{Prefix: "orders/"}, nil, testCatalog(), sessions, zap.NewNop(), nil)
	ctx := context.Background()

	_, err := svc.Submit(ctx, Request{SessionID: sess.ID, Name: "Alex", Email: "geek@geekmail.com"})
	assert.True(t, errors.Is(err, ErrInvalidCustomer))

	_, err = svc.Submit(ctx, Request{SessionID: sess.ID, Name: "Alex Robertson", Email: "geek@geekmail.com"})
	assert.True(t, errors.Is(err, ErrNoSelection))

	_, err = svc.Submit(ctx, Request{Name: "Alex Robertson", Email: "geek@geekmail.com"})
	assert.True(t, errors.Is(err, ErrNoSelection))

	_, err = svc.Submit(ctx, Request{SessionID: "gone", Name: "Alex Robertson", Email: "geek@geekmail.com"})
	assert.True(t, errors.Is(err, session.ErrSessionNotFound))

	_, err = svc.Select(ctx, sess.ID, 999)
	assert.True(t, errors.Is(err, session.ErrNotInResults))

	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_StorageFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "garments", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket unreachable"))

	sessions := session.NewStore(time.Minute)
	sess := sessions.SetResults("", []catalog.Item{geekTee})
	_, err := sessions.Choose(sess.ID, 222)
	require.NoError(t, err)

	svc := NewService(client, "garments", Config{Prefix: "orders/"}, nil, testCatalog(), sessions, zap.NewNop(), nil)
	_, err = svc.Submit(context.Background(), Request{SessionID: sess.ID, Name: "Alex Robertson", Email: "geek@geekmail.com"})
	assert.Error(t, err)

	// The choice survives so the shopper can retry.
	_, err = sessions.Choice(sess.ID)
	assert.NoError(t, err)
}

func TestService_DatabaseFailure(t *testing.T) {
	client := new(mocks.Client)
	expectPut(client, "orders/Alex_Robertson_222.txt")

	db, sqlMock := setupMockDB(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `orders`").WillReturnError(errors.New("table is read only"))
	sqlMock.ExpectRollback()

	svc := NewService(client, "garments", Config{Prefix: "orders/"}, NewRepository(db), testCatalog(), nil, zap.NewNop(), nil)
	code := catalog.ProductCode(222)
	_, err := svc.Submit(context.Background(), Request{ProductCode: &code, Name: "Alex Robertson", Email: "geek@geekmail.com"})
	assert.Error(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
