package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/signup/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig is a token bucket refilled with RequestsPerWindow tokens
// every Window, holding at most Burst.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

func (c RateLimitConfig) limit() rate.Limit {
	return rate.Limit(float64(c.RequestsPerWindow) / c.Window.Seconds())
}

// Profiles used by the router. Each one can be overridden at startup with
// RATELIMIT_<NAME>_REQUESTS, RATELIMIT_<NAME>_WINDOW_SEC and
// RATELIMIT_<NAME>_BURST.
var (
	// ModerateLimit guards writes (registrations): 20/min.
	ModerateLimit = LoadRateLimit("MODERATE", RateLimitConfig{RequestsPerWindow: 20, Window: time.Minute, Burst: 20})

	// LenientLimit guards reads (listings, downloads, health): 100/min.
	LenientLimit = LoadRateLimit("LENIENT", RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100})

	// PublicLimit guards static pages: 1000/min.
	PublicLimit = LoadRateLimit("PUBLIC", RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000})
)

// LoadRateLimit overlays def with RATELIMIT_<name>_* environment variables.
// Missing, malformed and non-positive values keep the default.
func LoadRateLimit(name string, def RateLimitConfig) RateLimitConfig {
	prefix := "RATELIMIT_" + name + "_"

	if n, ok := envPositiveInt(prefix + "REQUESTS"); ok {
		def.RequestsPerWindow = n
	}
	if n, ok := envPositiveInt(prefix + "WINDOW_SEC"); ok {
		def.Window = time.Duration(n) * time.Second
	}
	if n, ok := envPositiveInt(prefix + "BURST"); ok {
		def.Burst = n
	}

	return def
}

func envPositiveInt(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ClientIP returns the address requests are limited by: the first valid
// X-Forwarded-For entry, then X-Real-IP, then the peer address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}

	if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
		return ip.String()
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitors holds one bucket per key. Keys idle for longer than ttl are
// swept on access, at most once per ttl.
type visitors struct {
	mu        sync.Mutex
	byKey     map[string]*visitor
	config    RateLimitConfig
	ttl       time.Duration
	lastSweep time.Time
}

func newVisitors(config RateLimitConfig) *visitors {
	return &visitors{
		byKey:     make(map[string]*visitor),
		config:    config,
		ttl:       max(3*config.Window, 5*time.Minute),
		lastSweep: time.Now(),
	}
}

func (v *visitors) get(key string, now time.Time) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	if now.Sub(v.lastSweep) >= v.ttl {
		for k, vis := range v.byKey {
			if now.Sub(vis.lastSeen) >= v.ttl {
				delete(v.byKey, k)
			}
		}
		v.lastSweep = now
	}

	vis, ok := v.byKey[key]
	if !ok {
		vis = &visitor{limiter: rate.NewLimiter(v.config.limit(), v.config.Burst)}
		v.byKey[key] = vis
	}
	vis.lastSeen = now

	return vis.limiter
}

// RateLimit rejects requests with 429 once the bucket for key(r) is empty.
// Requests without a key are let through.
func RateLimit(config RateLimitConfig, key func(*http.Request) string) Middleware {
	buckets := newVisitors(config)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				slogx.FromContext(r.Context()).Warn("rate limit: no key for request, allowing")
				next.ServeHTTP(w, r)
				return
			}

			now := time.Now()
			limiter := buckets.get(k, now)
			if limiter.AllowN(now, 1) {
				next.ServeHTTP(w, r)
				return
			}

			res := limiter.ReserveN(now, 1)
			retryAfter := max(int(res.DelayFrom(now).Seconds()), 1)
			res.CancelAt(now)

			h := w.Header()
			h.Set("Retry-After", strconv.Itoa(retryAfter))
			h.Set("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerWindow))
			h.Set("X-RateLimit-Window", config.Window.String())

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				"key", k,
				"path", r.URL.Path,
				"retry_after", retryAfter,
			)

			WriteText(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		})
	}
}

// RateLimitByIP limits by ClientIP.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return RateLimit(config, ClientIP)
}
