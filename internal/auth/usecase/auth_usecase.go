// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
	authService "github.com/allisson/expense-tracker/internal/auth/service"
	"github.com/allisson/expense-tracker/internal/clock"
	"github.com/allisson/expense-tracker/internal/database"
	apperrors "github.com/allisson/expense-tracker/internal/errors"
	appValidation "github.com/allisson/expense-tracker/internal/validation"
)

// authUseCase implements AuthUseCase.
type authUseCase struct {
	txManager       database.TxManager
	userRepo        AuthUserRepository
	accountRepo     AccountRepository
	passwordService authService.PasswordService
	tokenCodec      authService.TokenCodec
	clock           clock.Clock
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	txManager database.TxManager,
	userRepo AuthUserRepository,
	accountRepo AccountRepository,
	passwordService authService.PasswordService,
	tokenCodec authService.TokenCodec,
	clk clock.Clock,
) AuthUseCase {
	return &authUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		passwordService: passwordService,
		tokenCodec:      tokenCodec,
		clock:           clk,
	}
}

// validateRegisterInput validates the registration input using jellydator/validation.
func (uc *authUseCase) validateRegisterInput(input *authDomain.RegisterInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.Username,
			validation.Length(3, 50).Error("username must be between 3 and 50 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register creates the account and its credential record in one transaction.
func (uc *authUseCase) Register(
	ctx context.Context,
	input *authDomain.RegisterInput,
) (*authDomain.AuthUser, error) {
	if err := uc.validateRegisterInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	account := &authDomain.Account{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      strings.TrimSpace(input.Username),
		CreatedAt: now,
	}
	user := &authDomain.AuthUser{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     strings.TrimSpace(input.Username),
		Email:        strings.TrimSpace(strings.ToLower(input.Email)),
		PasswordHash: hashedPassword,
		Role:         authDomain.RoleUser,
		AccountID:    account.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.accountRepo.Create(ctx, account); err != nil {
			return err
		}
		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a signed access token.
// An unknown identifier and a wrong password produce the same error, so a
// caller cannot probe which usernames exist.
func (uc *authUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.TokenOutput, error) {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Identifier,
			validation.Required.Error("identifier is required"),
			appValidation.NotBlank,
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
		),
	)
	if err := appValidation.WrapValidationError(err); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByUsernameOrEmail(ctx, strings.TrimSpace(input.Identifier))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.passwordService.Compare(input.Password, user.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	accessToken, err := uc.tokenCodec.Create(user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &authDomain.TokenOutput{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(uc.tokenCodec.Lifetime().Seconds()),
	}, nil
}

// ResolvePrincipal maps a verified token subject to the current Principal.
func (uc *authUseCase) ResolvePrincipal(
	ctx context.Context,
	subject string,
) (*authDomain.Principal, error) {
	if subject == "" {
		return nil, authDomain.ErrCredentialsNotFound
	}

	user, err := uc.userRepo.GetByUsername(ctx, subject)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, authDomain.ErrCredentialsNotFound
		}
		return nil, err
	}

	return authDomain.NewPrincipal(user), nil
}
