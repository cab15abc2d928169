package middleware

import (
	"context"
	"sync"
	"time"

	"bulletin/config"
	domainerrors "bulletin/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	throttleSweepInterval = time.Minute
	throttleClientTTL     = 10 * time.Minute
)

type throttleClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// SignInThrottle limits sign-in attempts per client IP with a token bucket.
type SignInThrottle struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu      sync.Mutex
	clients map[string]*throttleClient
}

// SignInThrottleParams holds dependencies for SignInThrottle, injected by Fx.
type SignInThrottleParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
}

// NewSignInThrottle builds the throttle and runs its idle-client sweeper for
// the lifetime of the application.
func NewSignInThrottle(params SignInThrottleParams) *SignInThrottle {
	throttle := newSignInThrottle(params.Config.Auth.SignIn, time.Now)

	ctx, cancel := context.WithCancel(context.Background())
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go throttle.sweepLoop(ctx)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return throttle
}

func newSignInThrottle(cfg config.SignInConfig, now func() time.Time) *SignInThrottle {
	return &SignInThrottle{
		limit:   rate.Limit(float64(cfg.RatePerMinute) / 60),
		burst:   cfg.Burst,
		now:     now,
		clients: make(map[string]*throttleClient),
	}
}

// Handle rejects the request with ErrTooManyRequests once the caller's bucket is empty.
func (t *SignInThrottle) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !t.allow(c.RealIP()) {
			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}

func (t *SignInThrottle) allow(ip string) bool {
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	client, found := t.clients[ip]
	if !found {
		client = &throttleClient{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}

func (t *SignInThrottle) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(throttleSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.sweep()
		case <-ctx.Done():
			return
		}
	}
}

func (t *SignInThrottle) sweep() {
	cutoff := t.now().Add(-throttleClientTTL)

	t.mu.Lock()
	defer t.mu.Unlock()

	for ip, client := range t.clients {
		if client.lastSeen.Before(cutoff) {
			delete(t.clients, ip)
		}
	}
}
