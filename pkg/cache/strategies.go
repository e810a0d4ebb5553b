package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"brewflow/pkg/logger"
)

// Cache key constants
const (
	// User cache keys
	UserPrefix        = "user"
	UserByIDKey       = "user:id:%d"
	UserByUsernameKey = "user:username:%s"
	UserByEmailKey    = "user:email:%s"
	UsersByRoleKey    = "user:role:%d"
	AllUsersKey       = "user:all"
)

// Cache expiration times
const (
	ShortExpiration  = 5 * time.Minute  // Frequently changing data
	MediumExpiration = 30 * time.Minute // Moderately changing data
	LongExpiration   = 2 * time.Hour    // Rarely changing data
)

// UserCacheKey builds the cache key for a user id
func UserCacheKey(id int64) string {
	return fmt.Sprintf(UserByIDKey, id)
}

// UserCacheKeyByUsername builds the cache key for a username lookup
func UserCacheKeyByUsername(username string) string {
	return fmt.Sprintf(UserByUsernameKey, username)
}

// UserCacheKeyByEmail builds the cache key for an email lookup
func UserCacheKeyByEmail(email string) string {
	return fmt.Sprintf(UserByEmailKey, email)
}

// UsersByRoleCacheKey builds the cache key for a role listing
func UsersByRoleCacheKey(roleID int64) string {
	return fmt.Sprintf(UsersByRoleKey, roleID)
}

// InvalidateUserCache drops every key derived from a single user record,
// including the listing keys that may contain it.
func InvalidateUserCache(ctx context.Context, c Cache, id int64) error {
	if err := c.Delete(ctx, UserCacheKey(id)); err != nil {
		return err
	}
	if err := c.Delete(ctx, AllUsersKey); err != nil {
		return err
	}
	return c.DeletePattern(ctx, fmt.Sprintf("%s:role:*", UserPrefix))
}

// CacheStrategy defines different caching patterns
type CacheStrategy interface {
	// Read-through: Check cache first, if miss then fetch from source and cache it
	ReadThrough(ctx context.Context, key string, dest interface{}, fetchFunc func() (interface{}, error), expiration time.Duration) error

	// Write-through: Write to cache and source simultaneously
	WriteThrough(ctx context.Context, key string, value interface{}, writeFunc func(value interface{}) error, expiration time.Duration) error

	// Cache-aside: Manual cache management
	CacheAside(ctx context.Context, key string, dest interface{}, fetchFunc func() (interface{}, error), expiration time.Duration) error
}

// CacheManager implements various caching strategies
type CacheManager struct {
	cache  Cache
	logger logger.Logger
}

// NewCacheManager creates a new cache manager
func NewCacheManager(cache Cache, logger logger.Logger) CacheStrategy {
	return &CacheManager{
		cache:  cache,
		logger: logger,
	}
}

// ReadThrough implements read-through caching pattern
func (cm *CacheManager) ReadThrough(ctx context.Context, key string, dest interface{}, fetchFunc func() (interface{}, error), expiration time.Duration) error {
	// Try to get from cache first
	err := cm.cache.Get(ctx, key, dest)
	if err == nil {
		cm.logger.Debug("Cache hit for read-through", map[string]interface{}{"key": key})
		return nil
	}

	if err != ErrCacheMiss {
		cm.logger.Error("Cache error in read-through", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		// Continue to fetch from source despite cache error
	}

	// Cache miss or error, fetch from source
	cm.logger.Debug("Cache miss, fetching from source", map[string]interface{}{"key": key})
	data, err := fetchFunc()
	if err != nil {
		cm.logger.Error("Source fetch error in read-through", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return err
	}

	// Store in cache for next time
	if err := cm.cache.Set(ctx, key, data, expiration); err != nil {
		cm.logger.Error("Cache set error in read-through", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		// Don't fail the request if cache set fails
	}

	// Copy data to destination
	return copyData(data, dest)
}

// WriteThrough implements write-through caching pattern
func (cm *CacheManager) WriteThrough(ctx context.Context, key string, value interface{}, writeFunc func(value interface{}) error, expiration time.Duration) error {
	// Write to source first
	if err := writeFunc(value); err != nil {
		cm.logger.Error("Source write error in write-through", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return err
	}

	// Then write to cache
	if err := cm.cache.Set(ctx, key, value, expiration); err != nil {
		cm.logger.Error("Cache set error in write-through", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		// Source write already succeeded, don't fail the request
	}

	return nil
}

// CacheAside implements cache-aside pattern
func (cm *CacheManager) CacheAside(ctx context.Context, key string, dest interface{}, fetchFunc func() (interface{}, error), expiration time.Duration) error {
	err := cm.cache.Get(ctx, key, dest)
	if err == nil {
		return nil
	}

	data, err := fetchFunc()
	if err != nil {
		return err
	}

	if err := cm.cache.Set(ctx, key, data, expiration); err != nil {
		cm.logger.Error("Cache set error in cache-aside", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}

	return copyData(data, dest)
}

// copyData copies fetched data into the destination via a JSON round trip,
// matching the representation Get unmarshals from.
func copyData(data interface{}, dest interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
