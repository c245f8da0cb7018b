package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zenchair/internal/domain"
	"zenchair/internal/notification"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	shops    ShopReader
	services ServiceCatalog
	products ProductCatalog
	bookings BookingRepository
	hub      Publisher

	// now supplies the reference clock for the booking horizon (UTC policy).
	now func() time.Time
}

func NewService(
	shops ShopReader,
	services ServiceCatalog,
	products ProductCatalog,
	bookings BookingRepository,
	hub Publisher,
) *Service {
	return &Service{
		shops:    shops,
		services: services,
		products: products,
		bookings: bookings,
		hub:      hub,
		now:      time.Now,
	}
}

// AvailableSlots computes the free slots for a shop on a date: the
// calendar template minus every slot held by a pending or confirmed
// booking. Template order is preserved.
func (s *Service) AvailableSlots(ctx context.Context, shopID, date string) ([]string, error) {
	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}

	template, err := SlotTemplate(shop, date)
	if err != nil {
		return nil, err
	}
	if len(template) == 0 {
		return template, nil
	}

	occupied, err := s.bookings.OccupiedTimes(ctx, shopID, date, domain.OccupyingStatuses())
	if err != nil {
		return nil, err
	}

	return subtractOccupied(template, occupied), nil
}

// CreateBooking validates the request, claims the slot and persists a
// pending booking, then notifies the shop's subscribers. Anonymous
// callers book under the "guest" customer id.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest, customerID string) (*domain.Booking, error) {
	shop, err := s.shops.GetByID(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}

	services, err := s.services.GetByIDsInShop(ctx, req.ShopID, req.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(req.ServiceIDs) {
		return nil, ErrInvalidServiceIDs
	}

	var products []domain.Product
	if len(req.ProductIDs) > 0 {
		products, err = s.products.GetByIDsInShop(ctx, req.ShopID, req.ProductIDs)
		if err != nil {
			return nil, err
		}
		if len(products) != len(req.ProductIDs) {
			return nil, ErrInvalidProductIDs
		}
	}

	ok, err := withinHorizon(req.Date, s.now())
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !ok {
		return nil, ErrDateOutOfRange
	}

	occupant, err := s.bookings.FindOccupant(ctx, req.ShopID, req.Date, req.Time, domain.OccupyingStatuses())
	if err != nil {
		return nil, err
	}
	if occupant != nil {
		return nil, ErrSlotTaken
	}

	// Total price is fixed at creation; later catalog changes never touch it.
	var total float64
	for _, svc := range services {
		total += svc.Price
	}
	for _, p := range products {
		total += p.Price
	}

	if customerID == "" {
		customerID = domain.GuestCustomerID
	}
	serviceIDs := req.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []string{}
	}
	productIDs := req.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}

	nowUTC := s.now().UTC()
	b := &domain.Booking{
		ID:            fmt.Sprintf("booking_%s", uuid.NewString()),
		ShopID:        req.ShopID,
		CustomerID:    customerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		BarberID:      shop.BarberID,
		ServiceIDs:    serviceIDs,
		ProductIDs:    productIDs,
		Date:          req.Date,
		Time:          req.Time,
		Status:        domain.BookingPending,
		TotalPrice:    total,
		Notes:         req.Notes,
		CreatedAt:     nowUTC,
		UpdatedAt:     nowUTC,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		// Two requests can both pass FindOccupant before either inserts;
		// idx_no_double_booking settles the race in favor of one of them.
		if isDuplicateKey(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	names := make([]string, 0, len(services))
	for _, svc := range services {
		names = append(names, svc.Name)
	}
	s.hub.Publish(req.ShopID, notification.EventNewBooking, NewBookingPayload{
		BookingID:     b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Date:          b.Date,
		Time:          b.Time,
		Services:      names,
		TotalPrice:    b.TotalPrice,
	})

	return b, nil
}

// ChangeStatus moves a booking through its state machine. Only the
// booking's customer or its barber may act on it.
func (s *Service) ChangeStatus(ctx context.Context, bookingID string, next domain.BookingStatus, actorID string) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if actorID != b.CustomerID && actorID != b.BarberID {
		return ErrForbidden
	}

	if !next.Valid() {
		return ErrInvalidStatus
	}
	if !b.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, next); err != nil {
		return err
	}

	payload := StatusPayload{BookingID: bookingID, Status: string(next)}
	if next == domain.BookingCancelled {
		s.hub.Publish(b.ShopID, notification.EventBookingCancelled, payload)
	} else {
		s.hub.Publish(b.ShopID, notification.EventBookingUpdated, payload)
	}

	return nil
}

// CancelBooking is the customer-facing cancel path. The booking stays on
// record with status cancelled; its slot becomes bookable again.
func (s *Service) CancelBooking(ctx context.Context, bookingID, actorID string) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if actorID != b.CustomerID {
		return ErrForbidden
	}
	if !b.Status.CanTransitionTo(domain.BookingCancelled) {
		return ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCancelled); err != nil {
		return err
	}

	s.hub.Publish(b.ShopID, notification.EventBookingCancelled, StatusPayload{
		BookingID: bookingID,
		Status:    string(domain.BookingCancelled),
	})

	return nil
}

// MyBookings lists the customer's bookings, newest first.
func (s *Service) MyBookings(ctx context.Context, customerID string) ([]domain.Booking, error) {
	return s.bookings.ListByCustomer(ctx, customerID)
}

// ShopBookings lists a shop's bookings for its owner.
func (s *Service) ShopBookings(ctx context.Context, shopID, actorID string) ([]domain.Booking, error) {
	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	if shop.BarberID != actorID {
		return nil, ErrForbidden
	}

	return s.bookings.ListByShop(ctx, shopID)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
