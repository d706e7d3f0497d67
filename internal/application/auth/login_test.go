package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cinevault/movies-service/internal/domain"
)

func TestValidateUser_EmptyFields_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newSvcForTest(t)

	_, err := svc.ValidateUser(context.Background(), "", "")
	requireDomainCode(t, err, "invalid_credentials")

	_, err = svc.ValidateUser(context.Background(), "alice", "")
	requireDomainCode(t, err, "invalid_credentials")

	_, err = svc.ValidateUser(context.Background(), "   ", "pw")
	requireDomainCode(t, err, "invalid_credentials")
}

func TestValidateUser_UnknownUser_NonEnumerating(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newSvcForTest(t)

	_, err := svc.ValidateUser(context.Background(), "missing", "pw")
	requireDomainCode(t, err, "invalid_credentials")
}

func TestValidateUser_BadPassword_SameErrorAsUnknownUser(t *testing.T) {
	t.Parallel()

	svc, users, _, _ := newSvcForTest(t)
	users.add(domain.User{ID: "u1", Username: "alice", PasswordHash: "hash:pw", Role: "regular"})

	_, badPwErr := svc.ValidateUser(context.Background(), "alice", "wrong")
	_, unknownErr := svc.ValidateUser(context.Background(), "nobody", "wrong")

	requireDomainCode(t, badPwErr, "invalid_credentials")
	requireDomainCode(t, unknownErr, "invalid_credentials")

	// The two failure modes must be indistinguishable to the caller.
	if badPwErr.Error() != unknownErr.Error() {
		t.Fatalf("enumeration oracle: %q vs %q", badPwErr.Error(), unknownErr.Error())
	}
}

func TestValidateUser_StorageOutage_NotMaskedAsBadCredentials(t *testing.T) {
	t.Parallel()

	svc, users, _, _ := newSvcForTest(t)
	users.getByUsernameErr = domain.ErrDBUnavailable(errors.New("pool exhausted"))

	_, err := svc.ValidateUser(context.Background(), "alice", "pw")
	requireDomainCode(t, err, "db_unavailable")
}

func TestValidateUser_UnexpectedRepoError_Propagates(t *testing.T) {
	t.Parallel()

	svc, users, _, _ := newSvcForTest(t)
	users.getByUsernameErr = errors.New("boom")

	_, err := svc.ValidateUser(context.Background(), "alice", "pw")
	if err == nil || domainCode(err) == "invalid_credentials" {
		t.Fatalf("expected the raw failure to surface, got %v", err)
	}
}

func TestValidateUser_Success_StripsSecret(t *testing.T) {
	t.Parallel()

	svc, users, _, _ := newSvcForTest(t)
	users.add(domain.User{ID: "u1", Username: "alice", Email: "a@x.com", PasswordHash: "hash:pw", Role: "admin"})

	u, err := svc.ValidateUser(context.Background(), "  alice  ", "pw")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if u.ID != "u1" || u.Username != "alice" || u.Role != "admin" {
		t.Fatalf("unexpected user %+v", u)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked out of the service")
	}
}

func TestLogin_BadCredentials_NoToken(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newSvcForTest(t)

	res, err := svc.Login(context.Background(), "alice", "pw")
	requireDomainCode(t, err, "invalid_credentials")
	if res.AccessToken != "" {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestLogin_Success_IssuesToken(t *testing.T) {
	t.Parallel()

	svc, users, _, _ := newSvcForTest(t)
	users.add(domain.User{ID: "u1", Username: "alice", PasswordHash: "hash:pw", Role: "regular"})

	res, err := svc.Login(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if res.AccessToken != "jwt(u1,alice)" {
		t.Fatalf("unexpected token %q", res.AccessToken)
	}
	if res.TokenType != "Bearer" {
		t.Fatalf("unexpected token type %q", res.TokenType)
	}
	if res.ExpiresIn != 3600 {
		t.Fatalf("unexpected expires_in %d", res.ExpiresIn)
	}
}

func TestLogin_SignerFailure_SurfacesError(t *testing.T) {
	t.Parallel()

	svc, users, _, signer := newSvcForTest(t)
	users.add(domain.User{ID: "u1", Username: "alice", PasswordHash: "hash:pw", Role: "regular"})
	signer.signFn = func(userID, username string, ttl time.Duration) (string, error) {
		return "", errors.New("sign boom")
	}

	_, err := svc.Login(context.Background(), "alice", "pw")
	if err == nil {
		t.Fatalf("expected error")
	}
}
