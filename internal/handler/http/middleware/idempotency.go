package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/workaxis/hrms-backend-go/internal/handler/http/response"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	ReplayedHeader    = "Idempotent-Replayed"

	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

// CachedResponse is the stored outcome of a request made with an idempotency key.
type CachedResponse struct {
	RequestHash string `json:"request_hash"`
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type IdempotencyStore interface {
	Get(ctx context.Context, key string) (CachedResponse, bool, error)
	// Lock reports false when another request holds key.
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
	Save(ctx context.Context, key string, resp CachedResponse, ttl time.Duration) error
}

type RedisIdempotencyStore struct {
	client *redis.Client
}

func NewRedisIdempotencyStore(client *redis.Client) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client}
}

func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) (CachedResponse, bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return CachedResponse{}, false, nil
	}
	if err != nil {
		return CachedResponse{}, false, err
	}

	var cached CachedResponse
	if err := json.Unmarshal(raw, &cached); err != nil {
		return CachedResponse{}, false, fmt.Errorf("decode cached response: %w", err)
	}
	return cached, true, nil
}

func (s *RedisIdempotencyStore) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, key+":lock", uuid.NewString(), ttl).Result()
}

func (s *RedisIdempotencyStore) Unlock(ctx context.Context, key string) error {
	return s.client.Del(ctx, key+":lock").Err()
}

func (s *RedisIdempotencyStore) Save(ctx context.Context, key string, resp CachedResponse, ttl time.Duration) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, raw, ttl).Err()
}

// Idempotency replays the stored response of a POST retried with the same
// Idempotency-Key. A nil store disables it. Server errors are not stored.
func Idempotency(store IdempotencyStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idempKey := r.Header.Get(IdempotencyHeader)
			if store == nil || idempKey == "" || r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				response.BadRequest(w, "Invalid request body", nil)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))
			sum := sha256.Sum256(body)
			requestHash := hex.EncodeToString(sum[:])

			ctx := r.Context()
			cacheKey := fmt.Sprintf("idemp:%s:%s:%s", CurrentUser(ctx), r.URL.Path, idempKey)

			cached, found, err := store.Get(ctx, cacheKey)
			if err != nil {
				slog.Error("idempotency lookup failed", "key", cacheKey, "error", err)
				response.InternalServerError(w, "An unexpected error occurred")
				return
			}
			if found {
				if cached.RequestHash != requestHash {
					response.Error(w, http.StatusUnprocessableEntity, "IDEMPOTENCY_KEY_REUSED",
						"Idempotency-Key was already used with a different request", nil)
					return
				}
				w.Header().Set("Content-Type", cached.ContentType)
				w.Header().Set(ReplayedHeader, "true")
				w.WriteHeader(cached.Status)
				_, _ = w.Write(cached.Body)
				return
			}

			locked, err := store.Lock(ctx, cacheKey, idempotencyLockTTL)
			if err != nil {
				slog.Error("idempotency lock failed", "key", cacheKey, "error", err)
				response.InternalServerError(w, "An unexpected error occurred")
				return
			}
			if !locked {
				response.Conflict(w, "A request with this Idempotency-Key is already being processed")
				return
			}
			defer func() {
				if err := store.Unlock(context.WithoutCancel(ctx), cacheKey); err != nil {
					slog.Warn("idempotency unlock failed", "key", cacheKey, "error", err)
				}
			}()

			var buf bytes.Buffer
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(&buf)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			if status >= http.StatusInternalServerError {
				return
			}

			err = store.Save(context.WithoutCancel(ctx), cacheKey, CachedResponse{
				RequestHash: requestHash,
				Status:      status,
				ContentType: ww.Header().Get("Content-Type"),
				Body:        buf.Bytes(),
			}, idempotencyResultTTL)
			if err != nil {
				slog.Warn("idempotency save failed", "key", cacheKey, "error", err)
			}
		})
	}
}
