package auth

import (
	"context"

	"github.com/atlax/atlax/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password,
// passkeys, OAuth, etc.) without changing the handlers.
type Authenticator interface {
	// Register creates a new account for the given email and credential.
	// The credential format depends on the implementation.
	Register(ctx context.Context, email, credential string) (*models.User, error)

	// Authenticate verifies the credentials and returns the account if
	// successful.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the
	// implementation's requirements before any storage is touched.
	ValidateCredential(credential string) error
}
