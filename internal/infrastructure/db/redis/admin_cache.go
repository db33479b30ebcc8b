package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jass-platform/distribution-service/internal/api/metrics"
	"github.com/jass-platform/distribution-service/internal/core/domain"
	"github.com/jass-platform/distribution-service/internal/core/ports"
)

const adminCacheKeyPrefix = "orgadmins:"

// AdminCache is a read-through cache over an OrganizationService. Only
// successful admin-list results are cached; failures are never cached, so
// the fail-closed semantics of the boolean predicates are unaffected.
// Redis being unavailable degrades to a cache miss.
type AdminCache struct {
	inner  ports.OrganizationService
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewAdminCache(inner ports.OrganizationService, client *redis.Client, ttl time.Duration, log zerolog.Logger) *AdminCache {
	return &AdminCache{inner: inner, client: client, ttl: ttl, log: log}
}

func (c *AdminCache) ListAuthorizedAdmins(ctx context.Context, organizationID string) ([]domain.AdminUser, error) {
	key := adminCacheKeyPrefix + organizationID

	cached, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var admins []domain.AdminUser
		if err := json.Unmarshal(cached, &admins); err == nil {
			metrics.AdminCacheTotal.WithLabelValues("hit").Inc()
			return admins, nil
		}
		// Unreadable entry: drop it and refetch.
		_ = c.client.Del(ctx, key).Err()
	} else if !errors.Is(err, redis.Nil) {
		c.log.Debug().Err(err).Str("organization_id", organizationID).Msg("admin cache read failed")
	}
	metrics.AdminCacheTotal.WithLabelValues("miss").Inc()

	admins, err := c.inner.ListAuthorizedAdmins(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(admins); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Debug().Err(err).Str("organization_id", organizationID).Msg("admin cache write failed")
		}
	}
	return admins, nil
}

// IsAuthorizedAdmin derives from the cached list; any failure is false.
func (c *AdminCache) IsAuthorizedAdmin(ctx context.Context, organizationID, userID string) bool {
	admins, err := c.ListAuthorizedAdmins(ctx, organizationID)
	if err != nil {
		return false
	}
	for _, admin := range admins {
		if admin.ID == userID {
			return true
		}
	}
	return false
}

// OrganizationExists derives from the cached list; any failure is false.
func (c *AdminCache) OrganizationExists(ctx context.Context, organizationID string) bool {
	admins, err := c.ListAuthorizedAdmins(ctx, organizationID)
	if err != nil {
		return false
	}
	return len(admins) > 0
}

func (c *AdminCache) GetAdminByID(ctx context.Context, organizationID, adminID string) (*domain.AdminUser, error) {
	admins, err := c.ListAuthorizedAdmins(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		if admins[i].ID == adminID {
			return &admins[i], nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (c *AdminCache) ListOrganizationUsers(ctx context.Context, organizationID string) ([]domain.RawRecord, error) {
	return c.inner.ListOrganizationUsers(ctx, organizationID)
}

func (c *AdminCache) ListOrganizationClients(ctx context.Context, organizationID string) ([]domain.RawRecord, error) {
	return c.inner.ListOrganizationClients(ctx, organizationID)
}

func (c *AdminCache) GetUserByID(ctx context.Context, userID string) (domain.RawRecord, error) {
	return c.inner.GetUserByID(ctx, userID)
}
