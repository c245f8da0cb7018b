package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"zenchair/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateToken(userID, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_RegisterCustomer_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwt.On("GenerateToken", mock.Anything, "customer").Return("token-abc", nil)

	service := NewService(users, jwt)

	res, err := service.RegisterCustomer(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", res.Token)
	assert.Equal(t, domain.RoleCustomer, res.User.Role)
	assert.True(t, strings.HasPrefix(res.User.ID, "user_"))
	// Stored hash must verify against the plain password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("secret123")))
}

func TestService_RegisterBarber_SetsRole(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("ExistsByEmail", mock.Anything, "bob@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwt.On("GenerateToken", mock.Anything, "barber").Return("token-def", nil)

	service := NewService(users, jwt)

	res, err := service.RegisterBarber(context.Background(), RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleBarber, res.User.Role)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(true, nil)

	service := NewService(users, new(MockJWT))

	_, err := service.RegisterCustomer(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_DuplicateEmailRace(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	service := NewService(users, new(MockJWT))

	_, err := service.RegisterCustomer(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           "user_1",
		Email:        "alice@example.com",
		Role:         domain.RoleCustomer,
		PasswordHash: string(hash),
	}, nil)
	jwt.On("GenerateToken", "user_1", "customer").Return("token-abc", nil)

	service := NewService(users, jwt)

	res, err := service.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", res.Token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           "user_1",
		PasswordHash: string(hash),
	}, nil)

	service := NewService(users, new(MockJWT))

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, new(MockJWT))

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
