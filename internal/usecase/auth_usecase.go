package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.Manager
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.Manager, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validate,
	}
}

// Register creates a user and returns it together with a session token.
func (uc *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, "", apperror.BadRequest(err.Error())
	}

	if _, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", apperror.BadRequest("Email already registered!")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	user := &domain.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: string(hash),
		Role:     input.Role,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, "", apperror.Internal(err)
	}

	token, err := uc.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (uc *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperror.BadRequest("Please provide email and password.")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Same message for unknown email and wrong password
		return nil, "", apperror.BadRequest("Invalid Email Or Password.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperror.BadRequest("Invalid Email Or Password.")
	}

	token, err := uc.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (uc *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
