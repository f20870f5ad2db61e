package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// RedisClient wraps the Redis client with template document management.
// Template definitions live in a single hash keyed by template name.
type RedisClient struct {
	client *redis.Client
	config *config.Config
	logger logging.Logger
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(cfg *config.Config) *RedisClient {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	return &RedisClient{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (r *RedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	return r.client.Close()
}

// ListTemplates retrieves every template document from the store. Entries
// that fail to decode are skipped and logged rather than failing the listing.
func (r *RedisClient) ListTemplates(ctx context.Context) ([]models.TemplateDefinition, error) {
	key := r.templatesKey()

	raw, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	templates := make([]models.TemplateDefinition, 0, len(raw))
	for name, doc := range raw {
		var def models.TemplateDefinition
		if err := json.Unmarshal([]byte(doc), &def); err != nil {
			r.logger.Warn("Skipping undecodable template document", map[string]interface{}{
				"template": name,
				"error":    err.Error(),
			})
			continue
		}
		templates = append(templates, def)
	}
	return templates, nil
}

// SaveTemplate writes a template document into the store
func (r *RedisClient) SaveTemplate(ctx context.Context, def models.TemplateDefinition) error {
	if def.Name == "" {
		return fmt.Errorf("template name is required")
	}
	if def.CreatedAt.IsZero() {
		def.CreatedAt = time.Now()
	}
	def.UpdatedAt = time.Now()

	doc, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to marshal template %s: %w", def.Name, err)
	}

	if err := r.client.HSet(ctx, r.templatesKey(), def.Name, doc).Err(); err != nil {
		return fmt.Errorf("failed to save template %s: %w", def.Name, err)
	}
	return nil
}

// DeleteTemplate removes a template document from the store
func (r *RedisClient) DeleteTemplate(ctx context.Context, name string) error {
	return r.client.HDel(ctx, r.templatesKey(), name).Err()
}

// templatesKey generates the Redis key for the template hash
func (r *RedisClient) templatesKey() string {
	return r.config.Templates.KeyPrefix + ":templates"
}

// IsHealthy checks if Redis is connected and healthy
func (r *RedisClient) IsHealthy(ctx context.Context) error {
	return r.Ping(ctx)
}
