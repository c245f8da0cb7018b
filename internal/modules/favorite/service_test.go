package favorite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"zenchair/internal/domain"
)

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID, shopID string) error {
	args := m.Called(ctx, userID, shopID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, shopID string) error {
	args := m.Called(ctx, userID, shopID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID, shopID string) (bool, error) {
	args := m.Called(ctx, userID, shopID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ShopIDsByUser(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]string), args.Error(1)
}

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

func (m *MockShopReader) ListByIDs(ctx context.Context, ids []string) ([]domain.Shop, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Shop), args.Error(1)
}

type MockRecentVisitSource struct {
	mock.Mock
}

func (m *MockRecentVisitSource) RecentShopIDs(ctx context.Context, customerID string, limit int) ([]string, error) {
	args := m.Called(ctx, customerID, limit)
	return args.Get(0).([]string), args.Error(1)
}

func TestService_Add_UnknownShop(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	shops := new(MockShopReader)
	shops.On("GetByID", mock.Anything, "shop_missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(favorites, shops, new(MockRecentVisitSource))

	err := service.Add(context.Background(), "user_alice", "shop_missing")

	assert.ErrorIs(t, err, ErrShopNotFound)
	favorites.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_List_Empty(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	shops := new(MockShopReader)
	favorites.On("ShopIDsByUser", mock.Anything, "user_alice").Return([]string{}, nil)

	service := NewService(favorites, shops, new(MockRecentVisitSource))

	result, err := service.List(context.Background(), "user_alice")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
	shops.AssertNotCalled(t, "ListByIDs", mock.Anything, mock.Anything)
}

func TestService_Recent_RestoresBookingOrder(t *testing.T) {
	shops := new(MockShopReader)
	bookings := new(MockRecentVisitSource)

	bookings.On("RecentShopIDs", mock.Anything, "user_alice", recentShopLimit).Return([]string{"shop_2", "shop_1"}, nil)
	// The storage layer returns shops in its own order.
	shops.On("ListByIDs", mock.Anything, []string{"shop_2", "shop_1"}).Return([]domain.Shop{
		{ID: "shop_1", Name: "First Visited"},
		{ID: "shop_2", Name: "Last Visited"},
	}, nil)

	service := NewService(new(MockFavoriteRepository), shops, bookings)

	result, err := service.Recent(context.Background(), "user_alice")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "shop_2", result[0].ID)
	assert.Equal(t, "shop_1", result[1].ID)
}

func TestService_Recent_SkipsDeletedShops(t *testing.T) {
	shops := new(MockShopReader)
	bookings := new(MockRecentVisitSource)

	bookings.On("RecentShopIDs", mock.Anything, "user_alice", recentShopLimit).Return([]string{"shop_gone", "shop_1"}, nil)
	shops.On("ListByIDs", mock.Anything, []string{"shop_gone", "shop_1"}).Return([]domain.Shop{
		{ID: "shop_1"},
	}, nil)

	service := NewService(new(MockFavoriteRepository), shops, bookings)

	result, err := service.Recent(context.Background(), "user_alice")

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "shop_1", result[0].ID)
}
