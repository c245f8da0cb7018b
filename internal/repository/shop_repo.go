package repository

import (
	"context"
	"time"

	"zenchair/internal/domain"

	"gorm.io/gorm"
)

type ShopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

type shopModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	BarberID      string    `gorm:"column:barber_id;index"`
	Name          string    `gorm:"column:name"`
	Description   string    `gorm:"column:description;type:text"`
	Address       string    `gorm:"column:address"`
	City          string    `gorm:"column:city;index"`
	Latitude      float64   `gorm:"column:latitude"`
	Longitude     float64   `gorm:"column:longitude"`
	Phone         string    `gorm:"column:phone"`
	Email         string    `gorm:"column:email"`
	Rating        float64   `gorm:"column:rating"`
	TotalReviews  int       `gorm:"column:total_reviews"`
	GalleryImages []string  `gorm:"column:gallery_images;serializer:json"`
	IsOpen        bool      `gorm:"column:is_open"`
	VacationDates []string  `gorm:"column:vacation_dates;serializer:json"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (shopModel) TableName() string { return "shops" }

type workingHourModel struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ShopID    string `gorm:"column:shop_id;uniqueIndex:idx_shop_day"`
	Day       int    `gorm:"column:day;uniqueIndex:idx_shop_day"` // 0=Monday .. 6=Sunday
	OpenTime  string `gorm:"column:open_time"`
	CloseTime string `gorm:"column:close_time"`
	IsClosed  bool   `gorm:"column:is_closed"`
}

func (workingHourModel) TableName() string { return "working_hours" }

func toDomainShop(m shopModel, hours []workingHourModel) *domain.Shop {
	wh := make([]domain.WorkingHour, 0, len(hours))
	for _, h := range hours {
		wh = append(wh, domain.WorkingHour{
			Day:       h.Day,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
			IsClosed:  h.IsClosed,
		})
	}

	gallery := m.GalleryImages
	if gallery == nil {
		gallery = []string{}
	}
	vacations := m.VacationDates
	if vacations == nil {
		vacations = []string{}
	}

	return &domain.Shop{
		ID:            m.ID,
		BarberID:      m.BarberID,
		Name:          m.Name,
		Description:   m.Description,
		Address:       m.Address,
		City:          m.City,
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		Phone:         m.Phone,
		Email:         m.Email,
		Rating:        m.Rating,
		TotalReviews:  m.TotalReviews,
		GalleryImages: gallery,
		WorkingHours:  wh,
		IsOpen:        m.IsOpen,
		VacationDates: vacations,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toShopModel(s *domain.Shop) shopModel {
	return shopModel{
		ID:            s.ID,
		BarberID:      s.BarberID,
		Name:          s.Name,
		Description:   s.Description,
		Address:       s.Address,
		City:          s.City,
		Latitude:      s.Latitude,
		Longitude:     s.Longitude,
		Phone:         s.Phone,
		Email:         s.Email,
		Rating:        s.Rating,
		TotalReviews:  s.TotalReviews,
		GalleryImages: s.GalleryImages,
		IsOpen:        s.IsOpen,
		VacationDates: s.VacationDates,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (r *ShopRepository) loadHours(ctx context.Context, shopID string) ([]workingHourModel, error) {
	var hours []workingHourModel
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("day").
		Find(&hours).Error
	return hours, err
}

func (r *ShopRepository) Create(ctx context.Context, s *domain.Shop) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toShopModel(s)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for _, h := range s.WorkingHours {
			hm := workingHourModel{
				ShopID:    s.ID,
				Day:       h.Day,
				OpenTime:  h.OpenTime,
				CloseTime: h.CloseTime,
				IsClosed:  h.IsClosed,
			}
			if err := tx.Create(&hm).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ShopRepository) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	var m shopModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	hours, err := r.loadHours(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDomainShop(m, hours), nil
}

func (r *ShopRepository) GetByBarberID(ctx context.Context, barberID string) (*domain.Shop, error) {
	var m shopModel
	if err := r.db.WithContext(ctx).First(&m, "barber_id = ?", barberID).Error; err != nil {
		return nil, err
	}
	hours, err := r.loadHours(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	return toDomainShop(m, hours), nil
}

func (r *ShopRepository) ExistsForBarber(ctx context.Context, barberID string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&shopModel{}).
		Where("barber_id = ?", barberID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *ShopRepository) Update(ctx context.Context, s *domain.Shop) error {
	s.UpdatedAt = time.Now().UTC()
	m := toShopModel(s)
	return r.db.WithContext(ctx).Save(&m).Error
}

// ListByCity returns shops whose city matches the substring, newest first.
// An empty city lists everything.
func (r *ShopRepository) ListByCity(ctx context.Context, city string, limit int) ([]domain.Shop, error) {
	q := r.db.WithContext(ctx).Model(&shopModel{}).Order("created_at DESC")
	if city != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+city+"%")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []shopModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	shops := make([]domain.Shop, 0, len(rows))
	for _, m := range rows {
		hours, err := r.loadHours(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		shops = append(shops, *toDomainShop(m, hours))
	}
	return shops, nil
}

func (r *ShopRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Shop, error) {
	if len(ids) == 0 {
		return []domain.Shop{}, nil
	}

	var rows []shopModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	shops := make([]domain.Shop, 0, len(rows))
	for _, m := range rows {
		hours, err := r.loadHours(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		shops = append(shops, *toDomainShop(m, hours))
	}
	return shops, nil
}

// ReplaceWorkingHours swaps out the full weekly schedule in one transaction.
func (r *ShopRepository) ReplaceWorkingHours(ctx context.Context, shopID string, hours []domain.WorkingHour) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shop_id = ?", shopID).Delete(&workingHourModel{}).Error; err != nil {
			return err
		}
		for _, h := range hours {
			hm := workingHourModel{
				ShopID:    shopID,
				Day:       h.Day,
				OpenTime:  h.OpenTime,
				CloseTime: h.CloseTime,
				IsClosed:  h.IsClosed,
			}
			if err := tx.Create(&hm).Error; err != nil {
				return err
			}
		}
		return tx.Model(&shopModel{}).Where("id = ?", shopID).
			Update("updated_at", time.Now().UTC()).Error
	})
}

// SetVacationDates replaces the vacation set, matching the original
// PUT-style semantics.
func (r *ShopRepository) SetVacationDates(ctx context.Context, shopID string, dates []string) error {
	if dates == nil {
		dates = []string{}
	}
	return r.db.WithContext(ctx).Model(&shopModel{}).
		Where("id = ?", shopID).
		Select("vacation_dates", "updated_at").
		Updates(shopModel{VacationDates: dates, UpdatedAt: time.Now().UTC()}).Error
}

func (r *ShopRepository) SetGalleryImages(ctx context.Context, shopID string, images []string) error {
	if images == nil {
		images = []string{}
	}
	return r.db.WithContext(ctx).Model(&shopModel{}).
		Where("id = ?", shopID).
		Select("gallery_images", "updated_at").
		Updates(shopModel{GalleryImages: images, UpdatedAt: time.Now().UTC()}).Error
}

func (r *ShopRepository) UpdateRating(ctx context.Context, shopID string, rating float64, totalReviews int) error {
	return r.db.WithContext(ctx).Model(&shopModel{}).
		Where("id = ?", shopID).
		Updates(map[string]interface{}{
			"rating":        rating,
			"total_reviews": totalReviews,
		}).Error
}

func ShopModels() []interface{} {
	return []interface{}{&shopModel{}, &workingHourModel{}}
}
