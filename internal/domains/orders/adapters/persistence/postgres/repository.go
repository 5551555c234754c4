package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders and their lines in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle and schema.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderRecord maps the order aggregate root to a relational table.
type orderRecord struct {
	ID         string            `gorm:"primaryKey;column:id;type:uuid"`
	CustomerID string            `gorm:"column:customer_id;size:64;index"`
	Lines      []orderLineRecord `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt  time.Time         `gorm:"column:created_at;index"`
	UpdatedAt  time.Time         `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

type orderLineRecord struct {
	ID        string          `gorm:"primaryKey;column:id;type:uuid"`
	OrderID   string          `gorm:"column:order_id;type:uuid;index"`
	Position  int             `gorm:"column:position"`
	ProductID string          `gorm:"column:product_id;size:64;index"`
	Quantity  int32           `gorm:"column:quantity;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (orderLineRecord) TableName() string { return "order_products" }

// Create inserts the order and its lines in one transaction.
func (r *Repository) Create(ctx context.Context, input ports.NewOrder) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if input.Customer == nil {
		return nil, errors.New("order customer is nil")
	}
	order := &domain.Order{
		ID:         uuid.NewString(),
		CustomerID: input.Customer.ID,
		Lines:      make([]domain.Line, 0, len(input.Lines)),
	}
	for _, line := range input.Lines {
		line.ID = uuid.NewString()
		order.Lines = append(order.Lines, line)
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(order)
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&record).Error
	}); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, record.ID)
}

// FindByID fetches an order with its lines in creation order.
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ports.ErrNotFound
	}
	var record orderRecord
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	rec := orderRecord{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Lines:      make([]orderLineRecord, 0, len(order.Lines)),
	}
	for i, line := range order.Lines {
		rec.Lines = append(rec.Lines, orderLineRecord{
			ID:        line.ID,
			OrderID:   order.ID,
			Position:  i,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	return rec
}

func (r orderRecord) toDomain() *domain.Order {
	order := &domain.Order{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Lines:      make([]domain.Line, 0, len(r.Lines)),
		CreatedAt:  r.CreatedAt.UTC(),
	}
	for _, line := range r.Lines {
		order.Lines = append(order.Lines, domain.Line{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	return order
}
