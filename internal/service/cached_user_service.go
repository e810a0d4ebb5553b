package service

import (
	"context"
	"fmt"

	"brewflow/internal/domain"
	"brewflow/pkg/cache"
	"brewflow/pkg/logger"
)

// CachedUserService wraps UserService with caching functionality
type CachedUserService struct {
	userService  domain.UserService
	cache        cache.Cache
	cacheManager cache.CacheStrategy
	logger       logger.Logger
}

// NewCachedUserService creates a new cached user service
func NewCachedUserService(
	userService domain.UserService,
	cacheInstance cache.Cache,
	cacheManager cache.CacheStrategy,
	logger logger.Logger,
) domain.UserService {
	return &CachedUserService{
		userService:  userService,
		cache:        cacheInstance,
		cacheManager: cacheManager,
		logger:       logger,
	}
}

func (s *CachedUserService) Authenticate(email, password string) (*domain.User, error) {
	// Credentials should not be cached for security reasons
	return s.userService.Authenticate(email, password)
}

func (s *CachedUserService) GetUserByID(id int64) (*domain.User, error) {
	ctx := context.Background()
	key := cache.UserCacheKey(id)

	var user *domain.User
	err := s.cacheManager.ReadThrough(ctx, key, &user, func() (interface{}, error) {
		return s.userService.GetUserByID(id)
	}, cache.LongExpiration)

	if err != nil {
		s.logger.Error("Cache read-through error for user by ID", map[string]interface{}{
			"userID": id,
			"error":  err.Error(),
		})
		// Fallback to direct service call
		return s.userService.GetUserByID(id)
	}

	return user, nil
}

func (s *CachedUserService) GetAllUsers() ([]*domain.User, error) {
	ctx := context.Background()

	var users []*domain.User
	err := s.cacheManager.ReadThrough(ctx, cache.AllUsersKey, &users, func() (interface{}, error) {
		return s.userService.GetAllUsers()
	}, cache.ShortExpiration)

	if err != nil {
		s.logger.Error("Cache read-through error for user listing", map[string]interface{}{
			"error": err.Error(),
		})
		return s.userService.GetAllUsers()
	}

	return users, nil
}

func (s *CachedUserService) GetUsersByRole(roleID int64) ([]*domain.User, error) {
	ctx := context.Background()
	key := cache.UsersByRoleCacheKey(roleID)

	var users []*domain.User
	err := s.cacheManager.ReadThrough(ctx, key, &users, func() (interface{}, error) {
		return s.userService.GetUsersByRole(roleID)
	}, cache.ShortExpiration)

	if err != nil {
		s.logger.Error("Cache read-through error for users by role", map[string]interface{}{
			"roleID": roleID,
			"error":  err.Error(),
		})
		return s.userService.GetUsersByRole(roleID)
	}

	return users, nil
}

func (s *CachedUserService) CreateUser(user *domain.User) (*domain.User, error) {
	created, err := s.userService.CreateUser(user)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()

	if setErr := s.cache.Set(ctx, cache.UserCacheKey(created.ID), created, cache.LongExpiration); setErr != nil {
		s.logger.Error("Error caching created user", map[string]interface{}{
			"userID": created.ID,
			"error":  setErr.Error(),
		})
	}

	// Listing keys are stale as soon as a user exists
	s.invalidateListings(ctx)

	return created, nil
}

func (s *CachedUserService) UpdateUser(user *domain.User) error {
	ctx := context.Background()

	err := s.cacheManager.WriteThrough(ctx, cache.UserCacheKey(user.ID), user, func(value interface{}) error {
		return s.userService.UpdateUser(user)
	}, cache.LongExpiration)

	if err != nil {
		return err
	}

	s.invalidateListings(ctx)

	return nil
}

func (s *CachedUserService) DeleteUser(id int64) (bool, error) {
	deleted, err := s.userService.DeleteUser(id)
	if err != nil {
		return deleted, err
	}

	ctx := context.Background()
	if cacheErr := cache.InvalidateUserCache(ctx, s.cache, id); cacheErr != nil {
		s.logger.Error("Error invalidating user cache", map[string]interface{}{
			"userID": id,
			"error":  cacheErr.Error(),
		})
	}

	return deleted, nil
}

func (s *CachedUserService) invalidateListings(ctx context.Context) {
	if delErr := s.cache.Delete(ctx, cache.AllUsersKey); delErr != nil {
		s.logger.Error("Error invalidating user listing cache", map[string]interface{}{
			"error": delErr.Error(),
		})
	}

	pattern := fmt.Sprintf("%s:role:*", cache.UserPrefix)
	if delErr := s.cache.DeletePattern(ctx, pattern); delErr != nil {
		s.logger.Error("Error invalidating role listing cache", map[string]interface{}{
			"error": delErr.Error(),
		})
	}
}
