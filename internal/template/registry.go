package template

import (
	"context"
	"sync"
	"time"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// Store is the remote template store. Implemented by utils.RedisClient.
type Store interface {
	ListTemplates(ctx context.Context) ([]models.TemplateDefinition, error)
	SaveTemplate(ctx context.Context, def models.TemplateDefinition) error
}

// Registry resolves template definitions with a read-through cache over the
// remote store, falling back to the builtin set when the store is empty or
// unreachable. Resolution never fails.
type Registry struct {
	store  Store
	ttl    time.Duration
	logger logging.Logger

	mu        sync.RWMutex
	cache     []models.TemplateDefinition
	fetchedAt time.Time
	seeded    bool
}

func NewRegistry(store Store, cfg *config.Config) *Registry {
	return &Registry{
		store:  store,
		ttl:    cfg.Templates.CacheTTL,
		logger: logging.GetGlobalLogger(),
	}
}

// List returns the known template definitions, optionally restricted to
// active ones. Store failures are logged and masked by the builtin set.
func (r *Registry) List(ctx context.Context, activeOnly bool) []models.TemplateDefinition {
	r.mu.RLock()
	if r.cache != nil && time.Since(r.fetchedAt) < r.ttl {
		defs := filterActive(r.cache, activeOnly)
		r.mu.RUnlock()
		return defs
	}
	r.mu.RUnlock()

	return filterActive(r.refresh(ctx), activeOnly)
}

// Resolve returns the definition for name. Unknown names, empty stores and
// store failures all resolve to a usable definition; the canonical default
// covers everything else.
func (r *Registry) Resolve(ctx context.Context, name string) models.TemplateDefinition {
	if name == "" {
		name = models.DefaultTemplate
	}
	for _, def := range r.List(ctx, false) {
		if def.Name != name {
			continue
		}
		if def.Preamble == "" {
			// Stored metadata without content: fill from the builtin.
			def.Preamble = BuiltinByName(name).Preamble
		}
		if def.CSSContent == "" {
			def.CSSContent = BuiltinByName(name).CSSContent
		}
		return def
	}
	return BuiltinByName(name)
}

// refresh fetches the store, seeding it from the builtin set exactly once
// per process lifetime when it turns up empty.
func (r *Registry) refresh(ctx context.Context) []models.TemplateDefinition {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if r.cache != nil && time.Since(r.fetchedAt) < r.ttl {
		return r.cache
	}

	if r.store == nil {
		return Builtins()
	}

	defs, err := r.store.ListTemplates(ctx)
	if err != nil {
		r.logger.Warn("Template store read failed, using builtin templates", map[string]interface{}{
			"error": err.Error(),
		})
		return Builtins()
	}

	if len(defs) == 0 && !r.seeded {
		r.seeded = true
		r.logger.Info("Template store is empty, seeding builtin templates")
		for _, def := range Builtins() {
			if err := r.store.SaveTemplate(ctx, def); err != nil {
				r.logger.Warn("Failed to seed template", map[string]interface{}{
					"template": def.Name,
					"error":    err.Error(),
				})
			}
		}
		if defs, err = r.store.ListTemplates(ctx); err != nil {
			r.logger.Warn("Template store read failed after seeding", map[string]interface{}{
				"error": err.Error(),
			})
			return Builtins()
		}
	}

	if len(defs) == 0 {
		return Builtins()
	}

	r.cache = defs
	r.fetchedAt = time.Now()
	return r.cache
}

// Invalidate drops the cached definitions so the next read hits the store.
func (r *Registry) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = nil
	r.fetchedAt = time.Time{}
}

func filterActive(defs []models.TemplateDefinition, activeOnly bool) []models.TemplateDefinition {
	out := make([]models.TemplateDefinition, 0, len(defs))
	for _, def := range defs {
		if activeOnly && !def.Active {
			continue
		}
		out = append(out, def)
	}
	return out
}
