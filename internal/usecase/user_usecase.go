package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/bereketsh/viewtube/internal/domain/apperror"
	"github.com/bereketsh/viewtube/internal/domain/contract"
	"github.com/bereketsh/viewtube/internal/domain/entity"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

// UserUsecase is the minimal account layer the rest of the core consumes an
// actor identity from: registration, credential login and profile lookup.
type UserUsecase struct {
	userRepo   contract.IUserRepository
	hasher     contract.IHasher
	jwtService JWTService
	validator  usecasecontract.IValidator
	logger     usecasecontract.IAppLogger
}

func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *UserUsecase {
	return &UserUsecase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		validator:  validator,
		logger:     logger,
	}
}

var _ usecasecontract.IUserUsecase = (*UserUsecase)(nil)

func (u *UserUsecase) Register(ctx context.Context, input usecasecontract.RegisterInput) (*entity.User, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, apperror.Errorf(apperror.EInvalidContent, "Username is required")
	}
	if err := u.validator.ValidateEmail(input.Email); err != nil {
		return nil, apperror.Errorf(apperror.EInvalidContent, "Invalid email address")
	}
	if err := u.validator.ValidatePasswordStrength(input.Password); err != nil {
		return nil, apperror.Errorf(apperror.EInvalidContent, "%s", err.Error())
	}

	if _, err := u.userRepo.GetUserByEmail(ctx, input.Email); err == nil {
		return nil, apperror.Errorf(apperror.EInvalidContent, "Email already registered")
	} else if !errors.Is(err, contract.ErrUserNotFound) {
		return nil, apperror.Wrap(err, "Failed to check existing email")
	}
	if _, err := u.userRepo.GetUserByUsername(ctx, input.Username); err == nil {
		return nil, apperror.Errorf(apperror.EInvalidContent, "Username already taken")
	} else if !errors.Is(err, contract.ErrUserNotFound) {
		return nil, apperror.Wrap(err, "Failed to check existing username")
	}

	hash, err := u.hasher.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to hash password")
	}
	user := &entity.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		FullName:     strings.TrimSpace(input.FullName),
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, apperror.Wrap(err, "Failed to create user")
	}
	u.logger.Infof("user registered: %s", user.Username)
	return user, nil
}

// Login verifies credentials and issues an access and refresh token pair.
func (u *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, "", "", apperror.Errorf(apperror.EUnauthorized, "Invalid credentials")
		}
		return nil, "", "", apperror.Wrap(err, "Failed to fetch user")
	}
	if err := u.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", apperror.Errorf(apperror.EUnauthorized, "Invalid credentials")
	}

	accessToken, err := u.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, "", "", apperror.Wrap(err, "Failed to issue access token")
	}
	refreshToken, err := u.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, "", "", apperror.Wrap(err, "Failed to issue refresh token")
	}
	return user, accessToken, refreshToken, nil
}

func (u *UserUsecase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if err := validateID(id, "user"); err != nil {
		return nil, err
	}
	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, apperror.Errorf(apperror.ENotFound, "User not found")
		}
		return nil, apperror.Wrap(err, "Failed to fetch user")
	}
	return user, nil
}
