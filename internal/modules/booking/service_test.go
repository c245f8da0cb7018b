package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"zenchair/internal/domain"
	"zenchair/internal/notification"
)

// Mock repositories

type MockShopReader struct {
	mock.Mock
}

func (m *MockShopReader) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

type MockServiceCatalog struct {
	mock.Mock
}

func (m *MockServiceCatalog) GetByIDsInShop(ctx context.Context, shopID string, ids []string) ([]domain.Service, error) {
	args := m.Called(ctx, shopID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

type MockProductCatalog struct {
	mock.Mock
}

func (m *MockProductCatalog) GetByIDsInShop(ctx context.Context, shopID string, ids []string) ([]domain.Product, error) {
	args := m.Called(ctx, shopID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindOccupant(ctx context.Context, shopID, date, slot string, statuses []domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, shopID, date, slot, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) OccupiedTimes(ctx context.Context, shopID, date string, statuses []domain.BookingStatus) ([]string, error) {
	args := m.Called(ctx, shopID, date, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) ListByShop(ctx context.Context, shopID string) ([]domain.Booking, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(shopID, event string, payload interface{}) {
	m.Called(shopID, event, payload)
}

func newTestService(shops *MockShopReader, services *MockServiceCatalog, products *MockProductCatalog, bookings *MockBookingRepository, hub *MockPublisher) *Service {
	s := NewService(shops, services, products, bookings, hub)
	// Freeze the clock on the 2025-01-15 morning so horizon checks are stable.
	s.now = func() time.Time {
		return time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	}
	return s
}

func openShop() *domain.Shop {
	hours := make([]domain.WorkingHour, 0, 7)
	for day := 0; day < 7; day++ {
		hours = append(hours, domain.WorkingHour{Day: day, OpenTime: "09:00", CloseTime: "13:00"})
	}
	return &domain.Shop{
		ID:           "shop_1",
		BarberID:     "user_barber",
		Name:         "Test Shop",
		WorkingHours: hours,
	}
}

func TestService_CreateBooking_Success(t *testing.T) {
	shops := new(MockShopReader)
	services := new(MockServiceCatalog)
	products := new(MockProductCatalog)
	bookings := new(MockBookingRepository)
	hub := new(MockPublisher)

	shops.On("GetByID", mock.Anything, "shop_1").Return(openShop(), nil)
	services.On("GetByIDsInShop", mock.Anything, "shop_1", []string{"service_1", "service_2"}).Return([]domain.Service{
		{ID: "service_1", ShopID: "shop_1", Name: "Haircut", Price: 80},
		{ID: "service_2", ShopID: "shop_1", Name: "Beard Trim", Price: 40},
	}, nil)
	products.On("GetByIDsInShop", mock.Anything, "shop_1", []string{"product_1"}).Return([]domain.Product{
		{ID: "product_1", ShopID: "shop_1", Name: "Pomade", Price: 55},
	}, nil)
	bookings.On("FindOccupant", mock.Anything, "shop_1", "2025-01-16", "10:00", domain.OccupyingStatuses()).Return(nil, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	hub.On("Publish", "shop_1", notification.EventNewBooking, mock.Anything).Return()

	service := newTestService(shops, services, products, bookings, hub)

	b, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		ShopID:        "shop_1",
		ServiceIDs:    []string{"service_1", "service_2"},
		ProductIDs:    []string{"product_1"},
		Date:          "2025-01-16",
		Time:          "10:00",
		CustomerName:  "Alice",
		CustomerPhone: "+972500000002",
	}, "user_alice")

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, 175.0, b.TotalPrice)
	assert.Equal(t, "user_alice", b.CustomerID)
	assert.Equal(t, "user_barber", b.BarberID)
	hub.AssertCalled(t, "Publish", "shop_1", notification.EventNewBooking, mock.Anything)
}

func TestService_CreateBooking_GuestFallback(t *testing.T) {
	shops := new(MockShopReader)
	services := new(MockServiceCatalog)
	products := new(MockProductCatalog)
	bookings := new(MockBookingRepository)
	hub := new(MockPublisher)

	shops.On("GetByID", mock.Anything, "shop_1").Return(openShop(), nil)
	services.On("GetByIDsInShop", mock.Anything, "shop_1", []string(nil)).Return([]domain.Service{}, nil)
	bookings.On("FindOccupant", mock.Anything, "shop_1", "2025-01-16", "10:00", domain.OccupyingStatuses()).Return(nil, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	hub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return()

	service := newTestService(shops, services, products, bookings, hub)

	b, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		ShopID:        "shop_1",
		Date:          "2025-01-16",
		Time:          "10:00",
		CustomerName:  "Walk-in",
		CustomerPhone: "+972500000003",
	}, "")

	assert.NoError(t, err)
	assert.Equal(t, domain.GuestCustomerID, b.CustomerID)
	assert.Equal(t, 0.0, b.TotalPrice)
	assert.NotNil(t, b.ServiceIDs)
	assert.NotNil(t, b.ProductIDs)
}

func TestService_CreateBooking_SlotOccupied(t *testing.T) {
	shops := new(MockShopReader)
	services := new(MockServiceCatalog)
	products := new(MockProductCatalog)
	bookings := new(MockBookingRepository)
	hub := new(MockPublisher)

	shops.On("GetByID", mock.Anything, "shop_1").Return(openShop(), nil)
	services.On("GetByIDsInShop", mock.Anything, "shop_1", []string{"service_1"}).Return([]domain.Service{
		{ID: "service_1", ShopID: "shop_1", Price: 80},
	}, nil)
	occupant := &domain.Booking{ID: "booking_other", Status: domain.BookingConfirmed}
	bookings.On("FindOccupant", mock.Anything, "shop_1", "2025-01-16", "10:00", domain.OccupyingStatuses()).Return(occupant, nil)

	service := newTestService(shops, services, products, bookings, hub)

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		ShopID:        "shop_1",
		ServiceIDs:    []string{"service_1"},
		Date:          "2025-01-16",
		Time:          "10:00",
		CustomerName:  "Bob",
		CustomerPhone: "+972500000004",
	}, "user_bob")

	assert.ErrorIs(t, err, ErrSlotTaken)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	hub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateBooking_DuplicateKeyLosesRace(t *testing.T) {
	shops := new(MockShopReader)
	services := new(MockServiceCatalog)
	products := new(MockProductCatalog)
	bookings := new(MockBookingRepository)
	hub := new(MockPublisher)

	shops.On("GetByID", mock.Anything, "shop_1").Return(openShop(), nil)
	services.On("GetByIDsInShop", mock.Anything, "shop_1", []string{"service_1"}).Return([]domain.Service{
		{ID: "service_1", ShopID: "shop_1", Price: 80},
	}, nil)
	// FindOccupant saw a free slot but another request inserted first.
	bookings.On("FindOccupant", mock.Anything, "shop_1", "2025-01-16", "10:00", domain.OccupyingStatuses()).Return(nil, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	service := newTestService(shops, services, products, bookings, hub)

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		ShopID:        "shop_1",
		ServiceIDs:    []string{"service_1"},
		Date:          "2025-01-16",
		Time:          "10:00",
		CustomerName:  "Bob",
		CustomerPhone: "+972500000004",
	}, "user_bob")

	assert.ErrorIs(t, err, ErrSlotTaken)
	hub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateBooking_HorizonBounds(t *testing.T) {
	cases := []struct {
		date    string
		wantErr error
	}{
		{"2025-01-22", nil},               // today + 7, last bookable day
		{"2025-01-23", ErrDateOutOfRange}, // today + 8
		{"2025-01-14", ErrDateOutOfRange}, // yesterday
	}

	for _, tc := range cases {
		shops := new(MockShopReader)
		services := new(MockServiceCatalog)
		products := new(MockProductCatalog)
		bookings := new(MockBookingRepository)
		hub := new(MockPublisher)

		shops.On("GetByID", mock.Anything, "shop_1").Return(openShop(), nil)
		services.On("GetByIDsInShop", mock.Anything, "shop_1", []string{"service_1"}).Return([]domain.Service{
			{ID: "service_1", ShopID: "shop_1", Price: 80},
		}, nil)
		bookings.On("FindOccupant", mock.Anything, "shop_1", tc.date, "10:00", domain.OccupyingStatuses()).Return(nil, nil)
		bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
		hub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return()

		service := newTestService(shops, services, products, bookings, hub)

		_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
			ShopID:        "shop_1",
			ServiceIDs:    []string{"service_1"},
			Date:          tc.date,
			Time:          "10:00",
			CustomerName:  "Carol",
			CustomerPhone: "+972500000005",
		}, "user_carol")

		if tc.wantErr == nil {
			assert.NoError(t, err, "date %s", tc.date)
		} else {
			assert.ErrorIs(t, err, tc.wantErr, "date %s", tc.date)
		}
	}
}

func TestService_CreateBooking_UnknownShop(t *testing.T) {
	shops := new(MockShopReader)
	shops.On("GetByID", mock.Anything, "shop_missing").Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(shops, new(MockServiceCatalog), new(MockProductCatalog), new(MockBookingRepository), new(MockPublisher))

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		ShopID:        "shop_missing",
		Date:          "2025-01-16",
		Time:          "10:00",
		CustomerName:  "Dave",
		CustomerPhone: "+972500000006",
	}, "user_dave")

	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestService_CreateBooking_InvalidServiceIDs(t *testing.T) {
	shops := new(MockShopReader)
	services := new(MockServiceCatalog)

	shops.On("GetByID", mock.Anything, "shop_1").Return(openShop(), nil)
	// Repo resolves fewer services than requested: one id is foreign or bogus.
	services.On("GetByIDsInShop", mock.Anything, "shop_1", []string{"service_1", "service_ghost"}).Return([]domain.Service{
		{ID: "service_1", ShopID: "shop_1", Price: 80},
	}, nil)

	service := newTestService(shops, services, new(MockProductCatalog), new(MockBookingRepository), new(MockPublisher))

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		ShopID:        "shop_1",
		ServiceIDs:    []string{"service_1", "service_ghost"},
		Date:          "2025-01-16",
		Time:          "10:00",
		CustomerName:  "Eve",
		CustomerPhone: "+972500000007",
	}, "user_eve")

	assert.ErrorIs(t, err, ErrInvalidServiceIDs)
}

func TestService_AvailableSlots_SubtractsOccupied(t *testing.T) {
	shops := new(MockShopReader)
	bookings := new(MockBookingRepository)

	shop := testShop([]domain.WorkingHour{
		{Day: 2, OpenTime: "09:00", CloseTime: "13:00"},
	})
	shops.On("GetByID", mock.Anything, "shop_1").Return(shop, nil)
	bookings.On("OccupiedTimes", mock.Anything, "shop_1", wednesday, domain.OccupyingStatuses()).Return([]string{"10:00", "11:30"}, nil)

	service := newTestService(shops, new(MockServiceCatalog), new(MockProductCatalog), bookings, new(MockPublisher))

	slots, err := service.AvailableSlots(context.Background(), "shop_1", wednesday)

	assert.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "12:00", "12:30"}, slots)
}

func TestService_AvailableSlots_VacationSkipsOccupancyQuery(t *testing.T) {
	shops := new(MockShopReader)
	bookings := new(MockBookingRepository)

	shop := testShop([]domain.WorkingHour{
		{Day: 2, OpenTime: "09:00", CloseTime: "13:00"},
	})
	shop.VacationDates = []string{wednesday}
	shops.On("GetByID", mock.Anything, "shop_1").Return(shop, nil)

	service := newTestService(shops, new(MockServiceCatalog), new(MockProductCatalog), bookings, new(MockPublisher))

	slots, err := service.AvailableSlots(context.Background(), "shop_1", wednesday)

	assert.NoError(t, err)
	assert.Empty(t, slots)
	bookings.AssertNotCalled(t, "OccupiedTimes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ChangeStatus_BarberConfirms(t *testing.T) {
	bookings := new(MockBookingRepository)
	hub := new(MockPublisher)

	b := &domain.Booking{
		ID:         "booking_1",
		ShopID:     "shop_1",
		CustomerID: "user_alice",
		BarberID:   "user_barber",
		Status:     domain.BookingPending,
	}
	bookings.On("GetByID", mock.Anything, "booking_1").Return(b, nil)
	bookings.On("UpdateStatus", mock.Anything, "booking_1", domain.BookingConfirmed).Return(nil)
	hub.On("Publish", "shop_1", notification.EventBookingUpdated, mock.Anything).Return()

	service := newTestService(new(MockShopReader), new(MockServiceCatalog), new(MockProductCatalog), bookings, hub)

	err := service.ChangeStatus(context.Background(), "booking_1", domain.BookingConfirmed, "user_barber")

	assert.NoError(t, err)
	hub.AssertCalled(t, "Publish", "shop_1", notification.EventBookingUpdated, StatusPayload{
		BookingID: "booking_1",
		Status:    "confirmed",
	})
}

func TestService_ChangeStatus_InvalidTransition(t *testing.T) {
	bookings := new(MockBookingRepository)
	hub := new(MockPublisher)

	b := &domain.Booking{
		ID:         "booking_1",
		ShopID:     "shop_1",
		CustomerID: "user_alice",
		BarberID:   "user_barber",
		Status:     domain.BookingCancelled,
	}
	bookings.On("GetByID", mock.Anything, "booking_1").Return(b, nil)

	service := newTestService(new(MockShopReader), new(MockServiceCatalog), new(MockProductCatalog), bookings, hub)

	err := service.ChangeStatus(context.Background(), "booking_1", domain.BookingConfirmed, "user_barber")

	assert.ErrorIs(t, err, ErrInvalidTransition)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ChangeStatus_PendingCannotComplete(t *testing.T) {
	bookings := new(MockBookingRepository)

	b := &domain.Booking{
		ID:         "booking_1",
		ShopID:     "shop_1",
		CustomerID: "user_alice",
		BarberID:   "user_barber",
		Status:     domain.BookingPending,
	}
	bookings.On("GetByID", mock.Anything, "booking_1").Return(b, nil)

	service := newTestService(new(MockShopReader), new(MockServiceCatalog), new(MockProductCatalog), bookings, new(MockPublisher))

	err := service.ChangeStatus(context.Background(), "booking_1", domain.BookingCompleted, "user_barber")

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_ChangeStatus_StrangerForbidden(t *testing.T) {
	bookings := new(MockBookingRepository)

	b := &domain.Booking{
		ID:         "booking_1",
		ShopID:     "shop_1",
		CustomerID: "user_alice",
		BarberID:   "user_barber",
		Status:     domain.BookingPending,
	}
	bookings.On("GetByID", mock.Anything, "booking_1").Return(b, nil)

	service := newTestService(new(MockShopReader), new(MockServiceCatalog), new(MockProductCatalog), bookings, new(MockPublisher))

	err := service.ChangeStatus(context.Background(), "booking_1", domain.BookingConfirmed, "user_mallory")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_ChangeStatus_UnknownStatus(t *testing.T) {
	bookings := new(MockBookingRepository)

	b := &domain.Booking{
		ID:         "booking_1",
		ShopID:     "shop_1",
		CustomerID: "user_alice",
		BarberID:   "user_barber",
		Status:     domain.BookingPending,
	}
	bookings.On("GetByID", mock.Anything, "booking_1").Return(b, nil)

	service := newTestService(new(MockShopReader), new(MockServiceCatalog), new(MockProductCatalog), bookings, new(MockPublisher))

	err := service.ChangeStatus(context.Background(), "booking_1", domain.BookingStatus("archived"), "user_barber")

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_CancelBooking_PublishesCancelled(t *testing.T) {
	bookings := new(MockBookingRepository)
	hub := new(MockPublisher)

	b := &domain.Booking{
		ID:         "booking_1",
		ShopID:     "shop_1",
		CustomerID: "user_alice",
		BarberID:   "user_barber",
		Status:     domain.BookingConfirmed,
	}
	bookings.On("GetByID", mock.Anything, "booking_1").Return(b, nil)
	bookings.On("UpdateStatus", mock.Anything, "booking_1", domain.BookingCancelled).Return(nil)
	hub.On("Publish", "shop_1", notification.EventBookingCancelled, mock.Anything).Return()

	service := newTestService(new(MockShopReader), new(MockServiceCatalog), new(MockProductCatalog), bookings, hub)

	err := service.CancelBooking(context.Background(), "booking_1", "user_alice")

	assert.NoError(t, err)
	hub.AssertCalled(t, "Publish", "shop_1", notification.EventBookingCancelled, StatusPayload{
		BookingID: "booking_1",
		Status:    "cancelled",
	})
}

func TestService_CancelBooking_BarberMustUseStatusRoute(t *testing.T) {
	bookings := new(MockBookingRepository)

	b := &domain.Booking{
		ID:         "booking_1",
		ShopID:     "shop_1",
		CustomerID: "user_alice",
		BarberID:   "user_barber",
		Status:     domain.BookingPending,
	}
	bookings.On("GetByID", mock.Anything, "booking_1").Return(b, nil)

	service := newTestService(new(MockShopReader), new(MockServiceCatalog), new(MockProductCatalog), bookings, new(MockPublisher))

	err := service.CancelBooking(context.Background(), "booking_1", "user_barber")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_ShopBookings_OwnerOnly(t *testing.T) {
	shops := new(MockShopReader)
	bookings := new(MockBookingRepository)

	shops.On("GetByID", mock.Anything, "shop_1").Return(openShop(), nil)

	service := newTestService(shops, new(MockServiceCatalog), new(MockProductCatalog), bookings, new(MockPublisher))

	_, err := service.ShopBookings(context.Background(), "shop_1", "user_other_barber")

	assert.ErrorIs(t, err, ErrForbidden)
	bookings.AssertNotCalled(t, "ListByShop", mock.Anything, mock.Anything)
}
