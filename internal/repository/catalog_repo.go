package repository

import (
	"context"
	"time"

	"zenchair/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	ShopID      string    `gorm:"column:shop_id;index"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description;type:text"`
	Price       float64   `gorm:"column:price"`
	Duration    int       `gorm:"column:duration"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) domain.Service {
	return domain.Service{
		ID:          m.ID,
		ShopID:      m.ShopID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Duration:    m.Duration,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := serviceModel{
		ID:          s.ID,
		ShopID:      s.ShopID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		CreatedAt:   s.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	var m serviceModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	s := toDomainService(m)
	return &s, nil
}

// GetByIDsInShop resolves ids against one shop's catalog. Fewer results
// than requested ids means some ids are foreign, duplicate or unknown.
func (r *ServiceRepository) GetByIDsInShop(ctx context.Context, shopID string, ids []string) ([]domain.Service, error) {
	if len(ids) == 0 {
		return []domain.Service{}, nil
	}

	var rows []serviceModel
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND id IN ?", shopID, ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainService(m))
	}
	return out, nil
}

func (r *ServiceRepository) ListByShop(ctx context.Context, shopID string) ([]domain.Service, error) {
	var rows []serviceModel
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainService(m))
	}
	return out, nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	m := serviceModel{
		ID:          s.ID,
		ShopID:      s.ShopID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		CreatedAt:   s.CreatedAt,
	}
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&serviceModel{}, "id = ?", id).Error
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

type productModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	ShopID      string    `gorm:"column:shop_id;index"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description;type:text"`
	Price       float64   `gorm:"column:price"`
	Image       *string   `gorm:"column:image;type:text"`
	Quantity    int       `gorm:"column:quantity"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (productModel) TableName() string { return "products" }

func toDomainProduct(m productModel) domain.Product {
	var image string
	if m.Image != nil {
		image = *m.Image
	}

	return domain.Product{
		ID:          m.ID,
		ShopID:      m.ShopID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       image,
		Quantity:    m.Quantity,
		CreatedAt:   m.CreatedAt,
	}
}

func toProductModel(p *domain.Product) productModel {
	var image *string
	if p.Image != "" {
		v := p.Image
		image = &v
	}

	return productModel{
		ID:          p.ID,
		ShopID:      p.ShopID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       image,
		Quantity:    p.Quantity,
		CreatedAt:   p.CreatedAt,
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	m := toProductModel(p)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var m productModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	p := toDomainProduct(m)
	return &p, nil
}

func (r *ProductRepository) GetByIDsInShop(ctx context.Context, shopID string, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	var rows []productModel
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND id IN ?", shopID, ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainProduct(m))
	}
	return out, nil
}

func (r *ProductRepository) ListByShop(ctx context.Context, shopID string) ([]domain.Product, error) {
	var rows []productModel
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainProduct(m))
	}
	return out, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	m := toProductModel(p)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&productModel{}, "id = ?", id).Error
}

func CatalogModels() []interface{} {
	return []interface{}{&serviceModel{}, &productModel{}}
}
