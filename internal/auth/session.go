package auth

import (
	"encoding/gob"
	"fmt"
	"invoice-dashboard/internal/config"
	"invoice-dashboard/internal/metrics"
	"invoice-dashboard/internal/middlewares"
	"invoice-dashboard/internal/models"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/redis/go-redis/v9"
)

type SessionManager struct {
	*scs.SessionManager
	logger      *slog.Logger
	credentials *CredentialChecker

	flagName   string
	flagMaxAge time.Duration
	secure     bool
}

// NewSessionManager builds the session store. redisClient is only used when
// sessions.store is "redis".
func NewSessionManager(logger *slog.Logger, cfg *config.Config, redisClient *redis.Client) (*SessionManager, error) {
	gob.Register(models.Invoice{})
	sessionManager := scs.New()

	var store scs.Store
	switch cfg.Sessions.Store {
	case "memory":
		store = memstore.New()
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("redis session store requires a redis client")
		}
		store = goredisstore.New(redisClient)
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Sessions.Store)
	}

	sessionManager.Store = newFailSoftStore(store, logger)
	sessionManager.Codec = failSoftCodec{
		codec:    scs.GobCodec{},
		lifetime: cfg.Sessions.Lifetime,
		logger:   logger,
	}
	sessionManager.Lifetime = cfg.Sessions.Lifetime

	sessionManager.Cookie.Name = cfg.Sessions.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Sessions.Secure
	sessionManager.Cookie.Path = "/"
	sessionManager.Cookie.Persist = true

	flagName := cfg.Auth.FlagCookieName
	sessionManager.ErrorFunc = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error("session error", "path", r.URL.Path, "error", err)
		// the record was not stored, so the flag must not reach the client
		dropSetCookie(w.Header(), flagName)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}

	return &SessionManager{
		SessionManager: sessionManager,
		logger:         logger,
		credentials:    NewCredentialChecker(cfg.Auth),
		flagName:       flagName,
		flagMaxAge:     cfg.Auth.FlagMaxAge,
		secure:         cfg.Sessions.Secure,
	}, nil
}

func (s *SessionManager) LoadAndSave(next http.Handler) http.Handler {
	return s.SessionManager.LoadAndSave(next)
}

// Login checks the credentials and, on success, records the user in the
// session and writes the auth flag in the same response. A rejected login
// changes nothing and returns false with a nil error. An error means the
// credentials were fine but the session could not be stored; no flag is
// written in that case.
func (s *SessionManager) Login(ctx *middlewares.AppContext, username, password string) (bool, error) {
	if !s.credentials.Check(username, password) {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginResultRejected).Inc()
		s.logger.Info("login rejected", "username", username)
		return false, nil
	}

	if err := s.RenewToken(ctx); err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginResultError).Inc()
		s.logger.Error("failed to renew session token", "username", username, "error", err)
		return false, fmt.Errorf("failed to renew session token: %w", err)
	}

	s.Put(ctx, string(SessionKeyAuthenticated), true)
	s.Put(ctx, string(SessionKeyUsername), username)

	// the flag may only go out once the record is durable
	if _, _, err := s.Commit(ctx); err != nil {
		s.Remove(ctx, string(SessionKeyAuthenticated))
		s.Remove(ctx, string(SessionKeyUsername))
		metrics.LoginAttempts.WithLabelValues(metrics.LoginResultError).Inc()
		s.logger.Error("failed to store session", "username", username, "error", err)
		return false, fmt.Errorf("failed to store session: %w", err)
	}

	s.writeAuthFlag(ctx.Response)

	metrics.LoginAttempts.WithLabelValues(metrics.LoginResultSuccess).Inc()
	s.logger.Info("login succeeded", "username", username)
	return true, nil
}

// Logout clears the session record and the auth flag. Safe to call when
// already logged out.
func (s *SessionManager) Logout(ctx *middlewares.AppContext) {
	s.Remove(ctx, string(SessionKeyAuthenticated))
	s.Remove(ctx, string(SessionKeyUsername))

	if err := s.Destroy(ctx); err != nil {
		s.logger.Error("failed to destroy session", "error", err)
	}

	s.clearAuthFlag(ctx.Response)
}

func (s *SessionManager) State(ctx *middlewares.AppContext) models.SessionState {
	authenticated := s.GetBool(ctx, string(SessionKeyAuthenticated))
	username := s.GetString(ctx, string(SessionKeyUsername))

	if !authenticated || username == "" {
		return models.SessionState{}
	}

	return models.SessionState{Authenticated: true, Username: username}
}

// ReassertAuthFlag rewrites the flag when the session record is still logged
// in but the request did not carry a valid flag.
func (s *SessionManager) ReassertAuthFlag(ctx *middlewares.AppContext) {
	if !s.State(ctx).Authenticated {
		return
	}

	if middlewares.HasAuthFlag(ctx.Request, s.flagName) {
		return
	}

	s.logger.Debug("re-asserting auth flag for live session")
	s.writeAuthFlag(ctx.Response)
}

func (s *SessionManager) PutFlash(ctx *middlewares.AppContext, flash models.Flash) {
	s.Put(ctx, string(SessionKeyFlashLevel), string(flash.Level))
	s.Put(ctx, string(SessionKeyFlashMessage), flash.Message)
}

func (s *SessionManager) PopFlash(ctx *middlewares.AppContext) (models.Flash, bool) {
	message := s.PopString(ctx, string(SessionKeyFlashMessage))
	level := s.PopString(ctx, string(SessionKeyFlashLevel))
	if message == "" {
		return models.Flash{}, false
	}

	if level == "" {
		level = string(models.FlashInfo)
	}

	return models.Flash{Level: models.FlashLevel(level), Message: message}, true
}

func (s *SessionManager) SetInvoiceDraft(ctx *middlewares.AppContext, invoice models.Invoice) {
	s.Put(ctx, invoiceDraftKey(invoice.InvoiceID), invoice)
}

func (s *SessionManager) GetInvoiceDraft(ctx *middlewares.AppContext, invoiceID string) (models.Invoice, bool) {
	invoice, ok := s.Get(ctx, invoiceDraftKey(invoiceID)).(models.Invoice)
	return invoice, ok
}

func (s *SessionManager) ClearInvoiceDraft(ctx *middlewares.AppContext, invoiceID string) {
	s.Remove(ctx, invoiceDraftKey(invoiceID))
}

func (s *SessionManager) writeAuthFlag(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.flagName,
		Value:    middlewares.AuthFlagValue,
		Path:     "/",
		MaxAge:   int(s.flagMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *SessionManager) clearAuthFlag(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.flagName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// dropSetCookie removes any Set-Cookie header for name.
func dropSetCookie(h http.Header, name string) {
	values := h.Values("Set-Cookie")
	if len(values) == 0 {
		return
	}

	h.Del("Set-Cookie")
	for _, v := range values {
		if strings.HasPrefix(v, name+"=") {
			continue
		}
		h.Add("Set-Cookie", v)
	}
}
