package users

import (
	"context"

	"github.com/cinevault/movies-service/internal/domain"
)

/*
Repo
----
Persistence port for account management.
Create must surface a racing duplicate insert as the same conflict the
exists-check produces: the storage unique indexes are the final authority.
*/
type Repo interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	// Delete returns the number of rows removed; 0 means the id was absent.
	Delete(ctx context.Context, id string) (int64, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}
