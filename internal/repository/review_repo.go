package repository

import (
	"context"
	"time"

	"zenchair/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	ShopID     string    `gorm:"column:shop_id;index"`
	CustomerID string    `gorm:"column:customer_id"`
	Rating     int       `gorm:"column:rating"`
	Comment    string    `gorm:"column:comment;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) domain.Review {
	return domain.Review{
		ID:         m.ID,
		ShopID:     m.ShopID,
		CustomerID: m.CustomerID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	m := reviewModel{
		ID:         rev.ID,
		ShopID:     rev.ShopID,
		CustomerID: rev.CustomerID,
		Rating:     rev.Rating,
		Comment:    rev.Comment,
		CreatedAt:  rev.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *ReviewRepository) ExistsByShopAndCustomer(ctx context.Context, shopID, customerID string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&reviewModel{}).
		Where("shop_id = ? AND customer_id = ?", shopID, customerID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *ReviewRepository) ListByShop(ctx context.Context, shopID string) ([]domain.Review, error) {
	var rows []reviewModel
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainReview(m))
	}
	return out, nil
}

// AggregateForShop computes the review count and mean rating in one query.
func (r *ReviewRepository) AggregateForShop(ctx context.Context, shopID string) (avg float64, count int64, err error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err = r.db.WithContext(ctx).Model(&reviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(1) AS count").
		Where("shop_id = ?", shopID).
		Scan(&row).Error
	return row.Avg, row.Count, err
}

func ReviewModel() interface{} { return &reviewModel{} }
