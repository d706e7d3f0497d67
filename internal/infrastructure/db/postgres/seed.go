package postgres

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/cinevault/movies-service/internal/domain"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

// SeedUsers inserts dev accounts so role-guarded routes are exercisable
// locally. Restart safe: duplicates are ignored.
func SeedUsers(ctx context.Context, repo SeederRepo, hasher SeederHasher) {
	type seedUser struct {
		Username string
		Email    string
		Role     string
		Pass     string
	}

	seeds := []seedUser{
		{Username: "admin", Email: "admin@example.com", Role: "admin", Pass: "AdminPassword123"},
		{Username: "regular", Email: "regular@example.com", Role: "regular", Pass: "RegularPassword123"},
	}

	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			log.Printf("[seed] hash failed (%s): %v", s.Username, err)
			continue
		}

		u := domain.User{
			ID:           uuid.NewString(),
			Username:     s.Username,
			Email:        s.Email,
			PasswordHash: hash,
			Role:         s.Role,
		}

		if _, err = repo.Create(ctx, u); err != nil {
			// ignore duplicates (restart safe)
			continue
		}
	}

	log.Println("[seed] postgres users seeded")
}
