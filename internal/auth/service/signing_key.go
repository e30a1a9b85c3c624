package service

import (
	"context"
	"encoding/base64"

	"gocloud.dev/secrets"

	apperrors "github.com/allisson/expense-tracker/internal/errors"

	// Register secrets keeper drivers for signing-key decryption
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// ResolveSigningKey returns the symmetric token-signing secret.
//
// When keeperURI is set, the base64-encoded ciphertext is decrypted through a
// gocloud.dev secrets keeper (base64key://, awskms://, gcpkms://,
// azurekeyvault://, hashivault://) so the plain secret never has to live in
// the environment.
// Otherwise plainSecret is used as-is.
func ResolveSigningKey(ctx context.Context, keeperURI, ciphertextB64, plainSecret string) ([]byte, error) {
	if keeperURI == "" {
		if plainSecret == "" {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "JWT_SECRET is required")
		}
		return []byte(plainSecret), nil
	}

	if ciphertextB64 == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "JWT_SECRET_CIPHERTEXT is required when a keeper URI is configured")
	}

	ciphertext, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decode signing key ciphertext")
	}

	keeper, err := secrets.OpenKeeper(ctx, keeperURI)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open secrets keeper")
	}
	defer keeper.Close()

	key, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decrypt signing key")
	}
	if len(key) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "decrypted signing key is empty")
	}

	return key, nil
}
