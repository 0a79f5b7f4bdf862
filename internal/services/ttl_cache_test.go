package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// TTLCacheTestSuite defines the test suite for the in-process cache
type TTLCacheTestSuite struct {
	suite.Suite
}

// TestTTLCacheSuite runs the test suite
func TestTTLCacheSuite(t *testing.T) {
	suite.Run(t, new(TTLCacheTestSuite))
}

func (s *TTLCacheTestSuite) TestSetAndGet() {
	cache := newTTLCache[int](time.Minute)

	cache.Set("a", 42)

	value, storedAt, ok := cache.Get("a")
	s.True(ok)
	s.Equal(42, value)
	s.WithinDuration(time.Now(), storedAt, time.Second)
}

func (s *TTLCacheTestSuite) TestMissOnUnknownKey() {
	cache := newTTLCache[string](time.Minute)

	_, _, ok := cache.Get("missing")

	s.False(ok)
}

func (s *TTLCacheTestSuite) TestEntriesExpire() {
	cache := newTTLCache[int](10 * time.Millisecond)

	cache.Set("a", 1)
	time.Sleep(25 * time.Millisecond)

	_, _, ok := cache.Get("a")
	s.False(ok)
	s.Equal(0, cache.Len(), "expired entries are dropped on read")
}

func (s *TTLCacheTestSuite) TestInvalidate() {
	cache := newTTLCache[int](time.Minute)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Invalidate("a")

	_, _, ok := cache.Get("a")
	s.False(ok)
	value, _, ok := cache.Get("b")
	s.True(ok)
	s.Equal(2, value)
}

func (s *TTLCacheTestSuite) TestOverwriteRefreshes() {
	cache := newTTLCache[int](time.Minute)

	cache.Set("a", 1)
	cache.Set("a", 9)

	value, _, ok := cache.Get("a")
	s.True(ok)
	s.Equal(9, value)
	s.Equal(1, cache.Len())
}
