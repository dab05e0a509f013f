package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestOTPRedisStore(t *testing.T) {
	ctx := context.Background()

	newStore := func(t *testing.T) (*OTPRedisStore, *miniredis.Miniredis) {
		t.Helper()
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })
		return NewOTPRedisStore(rdb), mr
	}

	t.Run("save then get returns the code until it expires", func(t *testing.T) {
		s, mr := newStore(t)

		if err := s.Save(ctx, "otp:a@b.com", "123456", 10*time.Minute); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		code, found, err := s.Get(ctx, "otp:a@b.com")
		if err != nil || !found || code != "123456" {
			t.Fatalf("expected stored code, got code=%q found=%v err=%v", code, found, err)
		}

		mr.FastForward(11 * time.Minute)
		_, found, err = s.Get(ctx, "otp:a@b.com")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if found {
			t.Fatalf("expected code to expire")
		}
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		s, _ := newStore(t)
		_, found, err := s.Get(ctx, "otp:nobody@b.com")
		if err != nil || found {
			t.Fatalf("expected not found, got found=%v err=%v", found, err)
		}
	})

	t.Run("attempts counter sets ttl once", func(t *testing.T) {
		s, mr := newStore(t)
		key := "otp:a@b.com:attempts"

		for want := int64(1); want <= 3; want++ {
			n, err := s.IncrementAttempts(ctx, key, time.Minute)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if n != want {
				t.Fatalf("expected %d, got %d", want, n)
			}
		}
		if ttl := mr.TTL(key); ttl != time.Minute {
			t.Fatalf("expected ttl 1m, got %v", ttl)
		}

		mr.FastForward(2 * time.Minute)
		n, err := s.IncrementAttempts(ctx, key, time.Minute)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if n != 1 {
			t.Fatalf("expected counter reset after expiry, got %d", n)
		}
	})

	t.Run("delete removes the key", func(t *testing.T) {
		s, mr := newStore(t)
		_ = s.Save(ctx, "otp:a@b.com", "123456", time.Minute)

		if err := s.Delete(ctx, "otp:a@b.com"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if mr.Exists("otp:a@b.com") {
			t.Fatalf("expected key to be deleted")
		}
	})
}

func TestOTPMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	newStore := func() *OTPMemoryStore {
		s := NewOTPMemoryStore()
		s.now = func() time.Time { return now }
		return s
	}

	t.Run("save get and expire", func(t *testing.T) {
		s := newStore()
		_ = s.Save(ctx, "otp:a@b.com", "654321", time.Minute)

		code, found, _ := s.Get(ctx, "otp:a@b.com")
		if !found || code != "654321" {
			t.Fatalf("expected stored code, got %q found=%v", code, found)
		}

		s.now = func() time.Time { return now.Add(time.Minute) }
		if _, found, _ := s.Get(ctx, "otp:a@b.com"); found {
			t.Fatalf("expected code to expire at ttl")
		}
	})

	t.Run("attempts accumulate within the window", func(t *testing.T) {
		s := newStore()
		key := "otp:a@b.com:attempts"

		n1, _ := s.IncrementAttempts(ctx, key, time.Minute)
		n2, _ := s.IncrementAttempts(ctx, key, time.Minute)
		if n1 != 1 || n2 != 2 {
			t.Fatalf("expected 1,2 got %d,%d", n1, n2)
		}

		s.now = func() time.Time { return now.Add(2 * time.Minute) }
		n3, _ := s.IncrementAttempts(ctx, key, time.Minute)
		if n3 != 1 {
			t.Fatalf("expected reset after window, got %d", n3)
		}
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore()
		_ = s.Save(ctx, "k", "111111", time.Minute)
		_ = s.Delete(ctx, "k")
		if _, found, _ := s.Get(ctx, "k"); found {
			t.Fatalf("expected deleted key to be gone")
		}
	})
}
