package order

import (
	"context"
	"fmt"
	"time"

	"garment-geek/core/catalog"
	"garment-geek/core/database"

	"gorm.io/gorm"
)

// Record is a row of the orders table.
type Record struct {
	ID          string    `gorm:"column:id;primaryKey;size:36"`
	Name        string    `gorm:"column:name;size:255;not null"`
	Email       string    `gorm:"column:email;size:255;not null"`
	ProductCode int64     `gorm:"column:product_code;index;not null"`
	ItemName    string    `gorm:"column:item_name;size:255"`
	Message     string    `gorm:"column:message;type:text"`
	ObjectKey   string    `gorm:"column:object_key;size:512"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (Record) TableName() string {
	return "orders"
}

var orderColumns = []string{"id", "name", "email", "product_code", "item_name", "message", "object_key", "created_at"}

func recordFromOrder(o *Order) Record {
	return Record{
		ID:          o.ID,
		Name:        o.Customer.Name,
		Email:       o.Customer.Email,
		ProductCode: int64(o.ProductCode),
		ItemName:    o.ItemName,
		Message:     o.Message,
		ObjectKey:   o.ObjectKey,
		CreatedAt:   o.CreatedAt,
	}
}

func (r Record) order() Order {
	return Order{
		ID:          r.ID,
		Customer:    Customer{Name: r.Name, Email: r.Email},
		ProductCode: catalog.ProductCode(r.ProductCode),
		ItemName:    r.ItemName,
		Message:     r.Message,
		ObjectKey:   r.ObjectKey,
		CreatedAt:   r.CreatedAt,
	}
}

// Repository persists orders with GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the orders table and verifies its columns.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("failed to migrate orders table: %w", err)
	}
	missing, err := database.MissingColumns(r.db, Record{}.TableName(), orderColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("orders table is missing columns: %v", missing)
	}
	return nil
}

// Save inserts the order.
func (r *Repository) Save(ctx context.Context, o *Order) error {
	rec := recordFromOrder(o)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to save order %s: %w", o.ID, err)
	}
	return nil
}

// List returns the most recent orders first, at most limit of them.
func (r *Repository) List(ctx context.Context, limit int) ([]Order, error) {
	var rows []Record
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	orders := make([]Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.order())
	}
	return orders, nil
}
