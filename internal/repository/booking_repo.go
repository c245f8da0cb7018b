package repository

import (
	"context"
	"errors"
	"time"

	"zenchair/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	ShopID        string    `gorm:"column:shop_id;index"`
	CustomerID    string    `gorm:"column:customer_id;index"`
	CustomerName  string    `gorm:"column:customer_name"`
	CustomerPhone string    `gorm:"column:customer_phone"`
	BarberID      string    `gorm:"column:barber_id"`
	ServiceIDs    []string  `gorm:"column:service_ids;serializer:json"`
	ProductIDs    []string  `gorm:"column:product_ids;serializer:json"`
	Date          string    `gorm:"column:date;index:idx_bookings_date_time"`
	Time          string    `gorm:"column:time;index:idx_bookings_date_time"`
	Status        string    `gorm:"column:status"`
	TotalPrice    float64   `gorm:"column:total_price"`
	Notes         *string   `gorm:"column:notes"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	services := m.ServiceIDs
	if services == nil {
		services = []string{}
	}
	products := m.ProductIDs
	if products == nil {
		products = []string{}
	}

	return &domain.Booking{
		ID:            m.ID,
		ShopID:        m.ShopID,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		BarberID:      m.BarberID,
		ServiceIDs:    services,
		ProductIDs:    products,
		Date:          m.Date,
		Time:          m.Time,
		Status:        domain.BookingStatus(m.Status),
		TotalPrice:    m.TotalPrice,
		Notes:         notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return bookingModel{
		ID:            b.ID,
		ShopID:        b.ShopID,
		CustomerID:    b.CustomerID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		BarberID:      b.BarberID,
		ServiceIDs:    b.ServiceIDs,
		ProductIDs:    b.ProductIDs,
		Date:          b.Date,
		Time:          b.Time,
		Status:        string(b.Status),
		TotalPrice:    b.TotalPrice,
		Notes:         notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// Create inserts the booking. The idx_no_double_booking partial unique
// index rejects a second pending/confirmed booking for the same
// (shop_id, date, time) triple; callers see that as a duplicated-key error.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// FindOccupant returns the booking holding the slot under one of the given
// statuses, or nil when the slot is free.
func (r *BookingRepository) FindOccupant(ctx context.Context, shopID, date, slot string, statuses []domain.BookingStatus) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND date = ? AND time = ? AND status IN ?",
			shopID, date, slot, statusStrings(statuses)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainBooking(m), nil
}

// OccupiedTimes lists the "HH:MM" slots taken on a date under the given
// statuses.
func (r *BookingRepository) OccupiedTimes(ctx context.Context, shopID, date string, statuses []domain.BookingStatus) ([]string, error) {
	var times []string
	err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("shop_id = ? AND date = ? AND status IN ?",
			shopID, date, statusStrings(statuses)).
		Pluck("time", &times).Error
	return times, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *BookingRepository) ListByShop(ctx context.Context, shopID string) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("date, time").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// RecentShopIDs returns distinct shop ids from the customer's most recent
// bookings, newest first.
func (r *BookingRepository) RecentShopIDs(ctx context.Context, customerID string, limit int) ([]string, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(rows))
	var ids []string
	for _, m := range rows {
		if !seen[m.ShopID] {
			seen[m.ShopID] = true
			ids = append(ids, m.ShopID)
		}
	}
	return ids, nil
}

func BookingModel() interface{} { return &bookingModel{} }
