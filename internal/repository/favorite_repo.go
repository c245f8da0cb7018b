package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

type favoriteModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    string    `gorm:"column:user_id;uniqueIndex:idx_user_shop"`
	ShopID    string    `gorm:"column:shop_id;uniqueIndex:idx_user_shop"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (favoriteModel) TableName() string { return "favorites" }

// Add is idempotent: favoriting a shop twice is not an error, matching the
// original's $addToSet semantics.
func (r *FavoriteRepository) Add(ctx context.Context, userID, shopID string) error {
	exists, err := r.Exists(ctx, userID, shopID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	m := favoriteModel{UserID: userID, ShopID: shopID, CreatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, shopID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND shop_id = ?", userID, shopID).
		Delete(&favoriteModel{}).Error
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, shopID string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&favoriteModel{}).
		Where("user_id = ? AND shop_id = ?", userID, shopID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *FavoriteRepository) ShopIDsByUser(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&favoriteModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("shop_id", &ids).Error
	return ids, err
}

func FavoriteModel() interface{} { return &favoriteModel{} }
