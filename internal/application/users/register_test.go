package users

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cinevault/movies-service/internal/domain"
)

/*
Fakes for ports
*/

type fakeRepo struct {
	mu sync.Mutex

	byID map[string]domain.User

	// injected errors (if set, method returns error)
	existsErr error
	createErr error
	listErr   error
	deleteErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]domain.User{}}
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, u := range f.byID {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return 0, nil
	}
	delete(f.byID, id)
	return 1, nil
}

type fakeHasher struct {
	hashFn func(pw string) (string, error)
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashFn != nil {
		return h.hashFn(password)
	}
	return "hash:" + password, nil
}

func newSvcForTest(t *testing.T) (*Service, *fakeRepo, *fakeHasher) {
	t.Helper()

	repo := newFakeRepo()
	hasher := &fakeHasher{}
	return NewService(repo, hasher), repo, hasher
}

func requireDomainCode(t *testing.T, err error, wantCode string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected domain code %q, got nil", wantCode)
	}
	if !domain.Is(err, wantCode) {
		t.Fatalf("expected code %q, got err=%v", wantCode, err)
	}
}

/*
Register
*/

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvcForTest(t)

	_, err := svc.Register(context.Background(), "", "pw", "a@x.com", "")
	requireDomainCode(t, err, "missing_field")

	_, err = svc.Register(context.Background(), "alice", "", "a@x.com", "")
	requireDomainCode(t, err, "missing_field")

	_, err = svc.Register(context.Background(), "alice", "pw", "   ", "")
	requireDomainCode(t, err, "missing_field")
}

func TestRegister_InvalidRole(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvcForTest(t)

	_, err := svc.Register(context.Background(), "alice", "pw", "a@x.com", "superuser")
	requireDomainCode(t, err, "invalid_role")
}

func TestRegister_DefaultsToRegularRole(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvcForTest(t)

	u, err := svc.Register(context.Background(), "alice", "pw", "a@x.com", "")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if u.Role != string(domain.RoleRegular) {
		t.Fatalf("expected role regular, got %q", u.Role)
	}
}

func TestRegister_DuplicateUsername_Conflict(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newSvcForTest(t)
	repo.byID["u1"] = domain.User{ID: "u1", Username: "alice", Email: "a@x.com"}

	_, err := svc.Register(context.Background(), "alice", "pw", "other@x.com", "")
	requireDomainCode(t, err, "user_already_exists")
}

func TestRegister_DuplicateEmail_Conflict(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newSvcForTest(t)
	repo.byID["u1"] = domain.User{ID: "u1", Username: "alice", Email: "a@x.com"}

	_, err := svc.Register(context.Background(), "bob", "pw", "a@x.com", "")
	requireDomainCode(t, err, "user_already_exists")
}

func TestRegister_RacingInsert_SameConflict(t *testing.T) {
	t.Parallel()

	// The exists pre-check passes but the insert loses a race and hits the
	// storage unique index. The caller must see the same conflict either way.
	svc, repo, _ := newSvcForTest(t)
	repo.createErr = domain.ErrUserAlreadyExists()

	_, err := svc.Register(context.Background(), "alice", "pw", "a@x.com", "")
	requireDomainCode(t, err, "user_already_exists")
}

func TestRegister_HashFailure(t *testing.T) {
	t.Parallel()

	svc, _, hasher := newSvcForTest(t)
	hasher.hashFn = func(pw string) (string, error) { return "", errors.New("boom") }

	_, err := svc.Register(context.Background(), "alice", "pw", "a@x.com", "")
	requireDomainCode(t, err, "hash_failed")
}

func TestRegister_Success_PersistsHashedUser(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newSvcForTest(t)

	u, err := svc.Register(context.Background(), "  alice ", "pw", " a@x.com ", "admin")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected generated id")
	}
	if u.Username != "alice" || u.Email != "a@x.com" || u.Role != "admin" {
		t.Fatalf("unexpected user %+v", u)
	}

	stored, ok := repo.byID[u.ID]
	if !ok {
		t.Fatalf("expected user persisted")
	}
	if stored.PasswordHash != "hash:pw" {
		t.Fatalf("expected hashed password, got %q", stored.PasswordHash)
	}
	if stored.PasswordHash == "pw" {
		t.Fatalf("plaintext password stored")
	}
}
