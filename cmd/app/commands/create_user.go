package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
	authUseCase "github.com/allisson/expense-tracker/internal/auth/usecase"
)

// RunCreateUser registers a new account with its first credential set.
// Supports both text and JSON output formats. The use case applies the same
// validation rules as the registration endpoint.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	authUC authUseCase.AuthUseCase,
	logger *slog.Logger,
	out io.Writer,
	username, email, password, format string,
) error {
	logger.Info("creating user", slog.String("username", username))

	user, err := authUC.Register(ctx, &authDomain.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		outputCreateUserJSON(out, user)
	} else {
		outputCreateUserText(out, user)
	}

	logger.Info("user created",
		slog.String("username", user.Username),
		slog.String("account_id", user.AccountID.String()),
	)

	return nil
}

// outputCreateUserText outputs the result in human-readable text format.
func outputCreateUserText(out io.Writer, user *authDomain.AuthUser) {
	fmt.Fprintf(out, "Successfully created user %q\n", user.Username)
	fmt.Fprintf(out, "  User ID:    %s\n", user.ID)
	fmt.Fprintf(out, "  Account ID: %s\n", user.AccountID)
	fmt.Fprintf(out, "  Email:      %s\n", user.Email)
}

// outputCreateUserJSON outputs the result in JSON format for machine consumption.
func outputCreateUserJSON(out io.Writer, user *authDomain.AuthUser) {
	result := map[string]interface{}{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"account_id": user.AccountID,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(out, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(out, string(jsonBytes))
}
