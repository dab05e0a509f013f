package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"wascrap/pkg"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	HeaderIdempotencyKey      = "Idempotency-Key"
	HeaderIdempotencyReplayed = "X-Idempotency-Replayed"

	idempotencyProcessing = "PROCESSING"
	idempotencyLockTTL    = 30 * time.Second
	idempotencyResultTTL  = 24 * time.Hour
)

var errConcurrentRequest = pkg.NewDomainErrorSimple("CONCURRENT_REQUEST", "A request with this Idempotency-Key is already in progress", http.StatusConflict)

type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response of a previous POST carrying the same
// Idempotency-Key for the same caller. Server errors release the key so the
// client can retry. With a nil client the middleware is a pass-through.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if rdb == nil || key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		idemKey := "idempotency:" + CurrentUserID(c) + ":" + c.FullPath() + ":" + key

		val, err := rdb.Get(ctx, idemKey).Result()
		switch {
		case err == nil && val == idempotencyProcessing:
			c.AbortWithStatusJSON(errConcurrentRequest.HTTPStatus, errConcurrentRequest.ToHTTPError())
			return
		case err == nil:
			var stored storedResponse
			if jsonErr := json.Unmarshal([]byte(val), &stored); jsonErr == nil {
				c.Header(HeaderIdempotencyReplayed, "true")
				c.Data(stored.Status, stored.ContentType, stored.Body)
				c.Abort()
				return
			}
			log.Printf("[http][idempotency] corrupt stored response key=%s", idemKey)
			rdb.Del(ctx, idemKey)
		case !errors.Is(err, redis.Nil):
			log.Printf("[http][idempotency] redis get failed key=%s err=%v", idemKey, err)
			c.Next()
			return
		}

		acquired, err := rdb.SetNX(ctx, idemKey, idempotencyProcessing, idempotencyLockTTL).Result()
		if err != nil {
			log.Printf("[http][idempotency] redis lock failed key=%s err=%v", idemKey, err)
			c.Next()
			return
		}
		if !acquired {
			c.AbortWithStatusJSON(errConcurrentRequest.HTTPStatus, errConcurrentRequest.ToHTTPError())
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()
		c.Writer = rec.ResponseWriter

		status := rec.Status()
		if status >= http.StatusInternalServerError {
			rdb.Del(ctx, idemKey)
			return
		}
		b, err := json.Marshal(storedResponse{
			Status:      status,
			ContentType: rec.Header().Get("Content-Type"),
			Body:        rec.body.Bytes(),
		})
		if err != nil {
			rdb.Del(ctx, idemKey)
			return
		}
		if err := rdb.Set(ctx, idemKey, b, idempotencyResultTTL).Err(); err != nil {
			log.Printf("[http][idempotency] redis store failed key=%s err=%v", idemKey, err)
		}
	}
}
