package app

import (
	"context"
	"fmt"

	authHTTP "github.com/allisson/expense-tracker/internal/auth/http"
	authRepository "github.com/allisson/expense-tracker/internal/auth/repository"
	authService "github.com/allisson/expense-tracker/internal/auth/service"
	authUseCase "github.com/allisson/expense-tracker/internal/auth/usecase"
)

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// TokenCodec returns the access token codec.
// The signing key is resolved once at startup, either directly from
// configuration or through a secrets keeper.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	var err error
	c.tokenCodecInit.Do(func() {
		c.tokenCodec, err = c.initTokenCodec()
		if err != nil {
			c.initErrors["tokenCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// AuthUserRepository returns the credential repository based on database driver.
func (c *Container) AuthUserRepository() (authUseCase.AuthUserRepository, error) {
	var err error
	c.authUserRepoInit.Do(func() {
		c.authUserRepo, err = c.initAuthUserRepository()
		if err != nil {
			c.initErrors["authUserRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUserRepo"]; exists {
		return nil, storedErr
	}
	return c.authUserRepo, nil
}

// AccountRepository returns the account repository based on database driver.
func (c *Container) AccountRepository() (authUseCase.AccountRepository, error) {
	var err error
	c.accountRepoInit.Do(func() {
		c.accountRepo, err = c.initAccountRepository()
		if err != nil {
			c.initErrors["accountRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["accountRepo"]; exists {
		return nil, storedErr
	}
	return c.accountRepo, nil
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	var err error
	c.authUCInit.Do(func() {
		c.authUC, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUC"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUC"]; exists {
		return nil, storedErr
	}
	return c.authUC, nil
}

// AuthHandler returns the HTTP handler for registration and login.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	var err error
	c.authHandlerInit.Do(func() {
		c.authHandler, err = c.initAuthHandler()
		if err != nil {
			c.initErrors["authHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.authHandler, nil
}

// initTokenCodec resolves the signing key and creates the token codec.
func (c *Container) initTokenCodec() (authService.TokenCodec, error) {
	signingKey, err := authService.ResolveSigningKey(
		context.Background(),
		c.config.JWTSecretKeeperURI,
		c.config.JWTSecretCiphertext,
		c.config.JWTSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve signing key: %w", err)
	}

	codec, err := authService.NewTokenCodec(signingKey, c.config.JWTLifetime, c.Clock())
	if err != nil {
		return nil, fmt.Errorf("failed to create token codec: %w", err)
	}

	return codec, nil
}

// initAuthUserRepository creates the credential repository instance.
func (c *Container) initAuthUserRepository() (authUseCase.AuthUserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for auth user repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return authRepository.NewMySQLAuthUserRepository(db), nil
	case "postgres":
		return authRepository.NewPostgreSQLAuthUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAccountRepository creates the account repository instance.
func (c *Container) initAccountRepository() (authUseCase.AccountRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for account repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return authRepository.NewMySQLAccountRepository(db), nil
	case "postgres":
		return authRepository.NewPostgreSQLAccountRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAuthUseCase creates the authentication use case with all its dependencies.
func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for auth use case: %w", err)
	}

	userRepo, err := c.AuthUserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth user repository for auth use case: %w", err)
	}

	accountRepo, err := c.AccountRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get account repository for auth use case: %w", err)
	}

	tokenCodec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for auth use case: %w", err)
	}

	return authUseCase.NewAuthUseCase(
		txManager,
		userRepo,
		accountRepo,
		c.PasswordService(),
		tokenCodec,
		c.Clock(),
	), nil
}

// initAuthHandler creates the auth HTTP handler.
func (c *Container) initAuthHandler() (*authHTTP.AuthHandler, error) {
	authUC, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
	}

	return authHTTP.NewAuthHandler(authUC, c.Logger()), nil
}
