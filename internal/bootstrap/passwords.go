// Package bootstrap holds one-off startup passes run before the server
// starts accepting traffic.
package bootstrap

import (
	"context"
	"log"
	"strings"

	"github.com/slooze/foodorder/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// HashPlaintextPasswords rewrites any stored password that is not yet a
// bcrypt hash. Bcrypt hashes always start with a "$2" version marker, so a
// password without it was seeded as plaintext.
func HashPlaintextPasswords(ctx context.Context, store storage.Storage) error {
	users, err := store.ListUsers(ctx)
	if err != nil {
		return err
	}

	for _, user := range users {
		if user.Password == "" || strings.HasPrefix(user.Password, "$2") {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		if err := store.UpdateUserPassword(ctx, user.ID, string(hashed)); err != nil {
			return err
		}
		log.Printf("Hashed plaintext password for user %s", user.Username)
	}

	return nil
}
