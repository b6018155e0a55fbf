package session

import (
	"context"
	"testing"
)

type fakeLogin struct {
	token  string
	logins int
}

func (f *fakeLogin) Login(ctx context.Context, username, key string) (string, error) {
	f.logins++
	return f.token, nil
}

func newTestService(api Commerce) *Service {
	return &Service{api: api, username: "shop", key: "secret"}
}

func TestBootstrapReusesTokenForSameIP(t *testing.T) {
	api := &fakeLogin{token: "fresh"}
	service := newTestService(api)

	token, reused, err := service.Bootstrap(context.Background(), "existing", "1.2.3.4", "1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reused || token != "existing" {
		t.Fatalf("expected reuse of existing token, got %q (reused=%v)", token, reused)
	}
	if api.logins != 0 {
		t.Fatalf("no login expected on reuse, got %d", api.logins)
	}
}

func TestBootstrapRefreshesOnIPChange(t *testing.T) {
	api := &fakeLogin{token: "fresh"}
	service := newTestService(api)

	token, reused, err := service.Bootstrap(context.Background(), "existing", "1.2.3.4", "5.6.7.8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reused || token != "fresh" {
		t.Fatalf("IP change must force a fresh login, got %q (reused=%v)", token, reused)
	}
	if api.logins != 1 {
		t.Fatalf("expected one login, got %d", api.logins)
	}
}

func TestBootstrapLogsInWithoutExistingToken(t *testing.T) {
	api := &fakeLogin{token: "fresh"}
	service := newTestService(api)

	token, reused, err := service.Bootstrap(context.Background(), "", "", "1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reused || token != "fresh" {
		t.Fatalf("expected fresh login, got %q (reused=%v)", token, reused)
	}
}

func TestBootstrapFailsWithoutCredentials(t *testing.T) {
	service := &Service{api: &fakeLogin{}}

	if _, _, err := service.Bootstrap(context.Background(), "", "", "1.2.3.4"); err != ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}
