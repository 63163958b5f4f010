package garment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"garment-geek/core/catalog"
	"garment-geek/core/database"
	"garment-geek/core/storage"
	"garment-geek/feature/garment/models"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Source loads a complete inventory.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Load reads and parses every record.
	Load(ctx context.Context) (*LoadResult, error)
}

// NewSource builds the source selected by cfg. Storage and database sources
// need their client; the other may be nil.
func NewSource(cfg Config, client storage.Client, bucket string, db *gorm.DB) (Source, error) {
	switch cfg.Source {
	case SourceFile:
		return &FileSource{Path: cfg.Path, Mode: cfg.Mode()}, nil
	case SourceStorage:
		if client == nil {
			return nil, errors.New("storage source requires a storage client")
		}
		return &StorageSource{Client: client, Bucket: bucket, Object: cfg.Object, Mode: cfg.Mode()}, nil
	case SourceDatabase:
		if db == nil {
			return nil, errors.New("database source requires a database connection")
		}
		return &DatabaseSource{DB: db, Mode: cfg.Mode()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

// FileSource reads the inventory from a local text file.
type FileSource struct {
	Path string
	Mode ErrorMode
}

func (s *FileSource) Name() string { return "file:" + s.Path }

func (s *FileSource) Load(ctx context.Context) (*LoadResult, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer f.Close()

	result, err := ParseInventory(f, s.Mode)
	if err != nil {
		return nil, err
	}
	if info, err := f.Stat(); err == nil {
		result.Version = info.ModTime().UTC().Format("20060102T150405.000000000Z")
	}
	return result, nil
}

// StorageSource reads the inventory from an object in the bucket.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Object string
	Mode   ErrorMode
}

func (s *StorageSource) Name() string { return "storage:" + s.Bucket + "/" + s.Object }

func (s *StorageSource) Load(ctx context.Context) (*LoadResult, error) {
	info, err := s.Client.StatObject(ctx, s.Bucket, s.Object, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", s.Object, err)
	}

	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.Object, err)
	}
	defer obj.Close()

	result, err := ParseInventory(obj, s.Mode)
	if err != nil {
		return nil, err
	}
	result.Version = info.ETag
	return result, nil
}

// DatabaseSource reads the inventory from the garments table, ordered by product code.
type DatabaseSource struct {
	DB   *gorm.DB
	Mode ErrorMode
}

func (s *DatabaseSource) Name() string { return "database:" + models.GarmentRecord{}.TableName() }

func (s *DatabaseSource) Load(ctx context.Context) (*LoadResult, error) {
	var rows []models.GarmentRecord
	if err := s.DB.WithContext(ctx).Order("product_code").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query garments: %w", err)
	}

	result := &LoadResult{Inventory: catalog.NewInventory(), Version: "rows:" + strconv.Itoa(len(rows))}
	for i, row := range rows {
		item, err := RecordFromModel(row).Item()
		if err == nil {
			err = result.Inventory.Add(item)
		}
		if err == nil {
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			perr = &ParseError{Field: "code", Raw: strconv.FormatInt(row.ProductCode, 10), Err: err}
		}
		if s.Mode == Strict {
			return nil, fmt.Errorf("row %d: %w", i+1, perr)
		}
		result.Skipped = append(result.Skipped, perr)
	}
	return result, nil
}

// Migrate creates or updates the garments table and verifies its columns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.GarmentRecord{}); err != nil {
		return fmt.Errorf("failed to migrate garments table: %w", err)
	}
	missing, err := database.MissingColumns(db, models.GarmentRecord{}.TableName(), models.GarmentColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("garments table is missing columns: %v", missing)
	}
	return nil
}

// ImportToDatabase upserts every inventory item into the garments table.
func ImportToDatabase(ctx context.Context, db *gorm.DB, inv *catalog.Inventory) (int, error) {
	items := inv.Items()
	if len(items) == 0 {
		return 0, nil
	}
	rows := make([]models.GarmentRecord, 0, len(items))
	for _, item := range items {
		rows = append(rows, RecordFromItem(item).Model())
	}

	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_code"}},
		UpdateAll: true,
	}).CreateInBatches(rows, 100).Error
	if err != nil {
		return 0, fmt.Errorf("failed to import garments: %w", err)
	}
	return len(rows), nil
}

// UploadToStorage stores raw inventory text under object, creating the bucket if needed.
func UploadToStorage(ctx context.Context, client storage.Client, bucket, object string, data []byte) error {
	if err := storage.EnsureBucket(ctx, client, bucket, ""); err != nil {
		return err
	}
	_, err := client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", object, err)
	}
	return nil
}
