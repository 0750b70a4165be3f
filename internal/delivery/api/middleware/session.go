package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionMiddleware loads the browser session named by the session cookie,
// exposes it to handlers and saves it once the handler returns.
type SessionMiddleware struct {
	repo         repository.SessionRepository
	logger       *slog.Logger
	cookieName   string
	secure       bool
	ttl          time.Duration
	cleanupEvery time.Duration
	now          func() time.Time
	newID        func() string

	stop chan struct{}
	done sync.WaitGroup
}

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Lc     fx.Lifecycle
	Repo   repository.SessionRepository
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionMiddleware creates the session middleware and registers the
// expired-session sweeper with the application lifecycle.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	m := newSessionMiddleware(params.Repo, params.Config.Session, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			m.startCleanup()

			return nil
		},
		OnStop: func(context.Context) error {
			m.stopCleanup()

			return nil
		},
	})

	return m
}

func newSessionMiddleware(repo repository.SessionRepository, cfg *config.SessionConfig, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		repo:         repo,
		logger:       logger,
		cookieName:   cfg.CookieName,
		secure:       cfg.Secure,
		ttl:          cfg.TTL,
		cleanupEvery: cfg.CleanupEvery,
		now:          time.Now,
		newID:        uuid.NewString,
		stop:         make(chan struct{}),
	}
}

// Load attaches the session to the request and persists it afterwards.
// A fresh session that the handler leaves blank is neither stored nor sent
// as a cookie, so anonymous page views do not create rows.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		now := m.now()

		sess, stored, err := m.find(ctx, c, now)
		if err != nil {
			return err
		}

		sess.Touch(now, m.ttl)
		deliverycontext.SetSession(c, sess)

		// The cookie carries the id current when headers go out, which may
		// differ from the loaded one after sign-in rotates it.
		cookieSent := false
		sendCookie := func() {
			if cookieSent || !keepSession(sess, stored) {
				return
			}
			cookieSent = true
			m.writeCookie(c, sess)
		}
		c.Response().Before(sendCookie)

		handlerErr := next(c)
		if !c.Response().Committed {
			sendCookie()
		}
		if !keepSession(sess, stored) {
			return handlerErr
		}

		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		// The request context may already be cancelled by a disconnecting client.
		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if saveErr := m.repo.Save(saveCtx, sess); saveErr != nil {
			logger.Error("Failed to save session",
				slog.String("session_id", sess.ID),
				slog.Any("error", saveErr),
			)
			if handlerErr == nil && !c.Response().Committed {
				return errors.Wrap(saveErr, "failed to save session")
			}

			return handlerErr
		}

		if oldID := sess.RotatedFrom(); oldID != "" && stored {
			if err := m.repo.Delete(saveCtx, oldID); err != nil {
				logger.Warn("Failed to delete rotated session",
					slog.String("session_id", sess.ID),
					slog.Any("error", err),
				)
			}
		}

		return handlerErr
	}
}

func keepSession(sess *entity.Session, stored bool) bool {
	return stored || !sess.IsBlank()
}

// find returns the session named by the cookie and whether it came from the store.
func (m *SessionMiddleware) find(ctx context.Context, c echo.Context, now time.Time) (*entity.Session, bool, error) {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return entity.NewSession(m.newID(), now, m.ttl), false, nil
	}

	sess, err := m.repo.Find(ctx, cookie.Value)
	switch {
	case err == nil && !sess.IsExpired(now):
		return sess, true, nil
	case err == nil, errors.Is(err, repository.ErrSessionNotFound):
		// Unknown or expired ids are never reused.
		return entity.NewSession(m.newID(), now, m.ttl), false, nil
	default:
		return nil, false, errors.Wrap(err, "failed to load session")
	}
}

func (m *SessionMiddleware) writeCookie(c echo.Context, sess *entity.Session) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		MaxAge:   int(m.ttl.Seconds()),
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *SessionMiddleware) startCleanup() {
	if m.cleanupEvery <= 0 {
		return
	}

	m.done.Add(1)
	go func() {
		defer m.done.Done()

		ticker := time.NewTicker(m.cleanupEvery)
		defer ticker.Stop()

		for {
			select {
			case <-m.stop:
				return
			case <-ticker.C:
				m.sweep(context.Background())
			}
		}
	}()
}

func (m *SessionMiddleware) stopCleanup() {
	close(m.stop)
	m.done.Wait()
}

func (m *SessionMiddleware) sweep(ctx context.Context) {
	removed, err := m.repo.DeleteExpired(ctx, m.now())
	if err != nil {
		m.logger.Warn("Failed to delete expired sessions", slog.Any("error", err))

		return
	}
	if removed > 0 {
		m.logger.Info("Deleted expired sessions", slog.Int64("count", removed))
	}
}
