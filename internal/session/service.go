package session

import (
	"context"
	"errors"
	"os"
)

var (
	ErrMissingCredentials = errors.New("missing shop api credentials")
)

// Commerce is the slice of the commerce client the session flow needs.
type Commerce interface {
	Login(ctx context.Context, username, key string) (string, error)
}

// Service bootstraps browsing sessions against the commerce backend. A
// session is an api token obtained with the shop's fixed credential pair and
// pinned to the client IP it was issued to.
type Service struct {
	api      Commerce
	username string
	key      string
}

func NewService(api Commerce) *Service {
	return &Service{
		api:      api,
		username: os.Getenv("SHOP_API_USERNAME"),
		key:      os.Getenv("SHOP_API_KEY"),
	}
}

// Bootstrap returns a usable api token. An existing token is reused only when
// the caller's IP matches the IP the token was issued to; otherwise a fresh
// login is performed. The returned bool reports reuse.
func (s *Service) Bootstrap(ctx context.Context, existingToken, issuedIP, clientIP string) (string, bool, error) {
	if existingToken != "" && issuedIP != "" && issuedIP == clientIP {
		return existingToken, true, nil
	}

	if s.username == "" || s.key == "" {
		return "", false, ErrMissingCredentials
	}

	token, err := s.api.Login(ctx, s.username, s.key)
	if err != nil {
		return "", false, err
	}
	return token, false, nil
}
