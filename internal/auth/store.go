package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexedwards/scs/v2"
)

// failSoftStore reports unreadable session records as missing, so a broken
// store reads as logged out instead of failing the request.
type failSoftStore struct {
	store  scs.Store
	logger *slog.Logger
}

func newFailSoftStore(store scs.Store, logger *slog.Logger) *failSoftStore {
	return &failSoftStore{store: store, logger: logger}
}

func (s *failSoftStore) Find(token string) ([]byte, bool, error) {
	return s.FindCtx(context.Background(), token)
}

func (s *failSoftStore) Commit(token string, b []byte, expiry time.Time) error {
	return s.CommitCtx(context.Background(), token, b, expiry)
}

func (s *failSoftStore) Delete(token string) error {
	return s.DeleteCtx(context.Background(), token)
}

func (s *failSoftStore) FindCtx(ctx context.Context, token string) ([]byte, bool, error) {
	var (
		b     []byte
		found bool
		err   error
	)
	if cs, ok := s.store.(scs.CtxStore); ok {
		b, found, err = cs.FindCtx(ctx, token)
	} else {
		b, found, err = s.store.Find(token)
	}

	if err != nil {
		s.logger.Warn("session store unreadable, treating session as logged out", "error", err)
		return nil, false, nil
	}

	return b, found, nil
}

func (s *failSoftStore) CommitCtx(ctx context.Context, token string, b []byte, expiry time.Time) error {
	if cs, ok := s.store.(scs.CtxStore); ok {
		return cs.CommitCtx(ctx, token, b, expiry)
	}
	return s.store.Commit(token, b, expiry)
}

func (s *failSoftStore) DeleteCtx(ctx context.Context, token string) error {
	if cs, ok := s.store.(scs.CtxStore); ok {
		return cs.DeleteCtx(ctx, token)
	}
	return s.store.Delete(token)
}

// failSoftCodec replaces records that cannot be decoded with a fresh, empty
// session.
type failSoftCodec struct {
	codec    scs.Codec
	lifetime time.Duration
	logger   *slog.Logger
}

func (c failSoftCodec) Encode(deadline time.Time, values map[string]interface{}) ([]byte, error) {
	return c.codec.Encode(deadline, values)
}

func (c failSoftCodec) Decode(b []byte) (time.Time, map[string]interface{}, error) {
	deadline, values, err := c.codec.Decode(b)
	if err != nil {
		c.logger.Warn("corrupt session record discarded", "error", err)
		return time.Now().Add(c.lifetime), make(map[string]interface{}), nil
	}
	return deadline, values, nil
}
