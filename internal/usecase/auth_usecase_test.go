package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) AssignCompany(ctx context.Context, userID, companyID int64) error {
	return m.Called(ctx, userID, companyID).Error(0)
}

func newAuthUC(repo domain.UserRepository) domain.AuthUsecase {
	tokens := auth.NewManager("test-secret", time.Hour)
	return usecase.NewAuthUsecase(repo, tokens, validator.New())
}

func validRegisterInput() domain.RegisterInput {
	return domain.RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "12345678",
		Password: "supersecret",
		Role:     domain.RoleJobSeeker,
	}
}

func TestRegister(t *testing.T) {
	t.Run("New user gets hashed password and token", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, domain.ErrNotFound)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		uc := newAuthUC(repo)
		user, token, err := uc.Register(context.Background(), validRegisterInput())

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEqual(t, "supersecret", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")))
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(&domain.User{ID: 1}, nil)

		uc := newAuthUC(repo)
		_, _, err := uc.Register(context.Background(), validRegisterInput())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown role rejected", func(t *testing.T) {
		uc := newAuthUC(new(MockUserRepo))
		input := validRegisterInput()
		input.Role = "admin"

		_, _, err := uc.Register(context.Background(), input)
		assert.Error(t, err)
	})

	t.Run("Short password rejected", func(t *testing.T) {
		uc := newAuthUC(new(MockUserRepo))
		input := validRegisterInput()
		input.Password = "short"

		_, _, err := uc.Register(context.Background(), input)
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	stored := &domain.User{ID: 1, Email: "jane@example.com", Password: string(hash), Role: domain.RoleJobSeeker}

	t.Run("Correct credentials return user and token", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(stored, nil)

		uc := newAuthUC(repo)
		user, token, err := uc.Login(context.Background(), "jane@example.com", "supersecret")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("Wrong password and unknown email return the same message", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(stored, nil)
		repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

		uc := newAuthUC(repo)
		_, _, errWrongPassword := uc.Login(context.Background(), "jane@example.com", "nope")
		_, _, errUnknownEmail := uc.Login(context.Background(), "nobody@example.com", "nope")

		assert.Error(t, errWrongPassword)
		assert.Error(t, errUnknownEmail)
		assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	})

	t.Run("Missing credentials rejected", func(t *testing.T) {
		uc := newAuthUC(new(MockUserRepo))
		_, _, err := uc.Login(context.Background(), "", "")
		assert.Error(t, err)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := auth.NewManager("test-secret", time.Hour)

	token, err := tokens.Generate(42, domain.RoleEmployer)
	assert.NoError(t, err)

	claims, err := tokens.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, domain.RoleEmployer, claims.Role)

	t.Run("Wrong secret rejected", func(t *testing.T) {
		other := auth.NewManager("other-secret", time.Hour)
		_, err := other.Parse(token)
		assert.Error(t, err)
	})

	t.Run("Garbage token rejected", func(t *testing.T) {
		_, err := tokens.Parse("not-a-token")
		assert.Error(t, err)
	})
}
