package template

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/config"
	"resumeforge/pkg/models"
)

type fakeStore struct {
	templates map[string]models.TemplateDefinition
	listErr   error
	saveErr   error
	listCalls int
	saveCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{templates: make(map[string]models.TemplateDefinition)}
}

func (f *fakeStore) ListTemplates(ctx context.Context) ([]models.TemplateDefinition, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.TemplateDefinition, 0, len(f.templates))
	for _, def := range f.templates {
		out = append(out, def)
	}
	return out, nil
}

func (f *fakeStore) SaveTemplate(ctx context.Context, def models.TemplateDefinition) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.templates[def.Name] = def
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Templates.CacheTTL = 5 * time.Minute
	return cfg
}

func TestResolveUnknownNameFallsBackToDefault(t *testing.T) {
	r := NewRegistry(newFakeStore(), testConfig())

	def := r.Resolve(context.Background(), "NoSuchTemplate")
	assert.Equal(t, models.DefaultTemplate, def.Name)
	assert.NotEmpty(t, def.Preamble)
}

func TestResolveEmptyNameUsesDefault(t *testing.T) {
	r := NewRegistry(newFakeStore(), testConfig())

	def := r.Resolve(context.Background(), "")
	assert.Equal(t, models.DefaultTemplate, def.Name)
}

func TestResolveNilStoreUsesBuiltins(t *testing.T) {
	r := NewRegistry(nil, testConfig())

	def := r.Resolve(context.Background(), "Creative")
	assert.Equal(t, "Creative", def.Name)
	assert.Contains(t, def.Preamble, "accent")
}

func TestEmptyStoreSeededOnce(t *testing.T) {
	store := newFakeStore()
	r := NewRegistry(store, testConfig())

	defs := r.List(context.Background(), false)
	require.Len(t, defs, len(Builtins()))
	assert.Equal(t, len(Builtins()), store.saveCalls)

	// A second listing after invalidation must not seed again.
	r.Invalidate()
	r.List(context.Background(), false)
	assert.Equal(t, len(Builtins()), store.saveCalls)
}

func TestStoreFailureMaskedByBuiltins(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("connection refused")
	r := NewRegistry(store, testConfig())

	defs := r.List(context.Background(), false)
	assert.Len(t, defs, len(Builtins()))

	def := r.Resolve(context.Background(), "Classic")
	assert.Equal(t, "Classic", def.Name)
}

func TestListUsesCacheWithinTTL(t *testing.T) {
	store := newFakeStore()
	for _, def := range Builtins() {
		store.templates[def.Name] = def
	}
	r := NewRegistry(store, testConfig())

	r.List(context.Background(), false)
	calls := store.listCalls
	r.List(context.Background(), false)
	r.List(context.Background(), false)
	assert.Equal(t, calls, store.listCalls, "fresh cache should not hit the store")
}

func TestListActiveOnly(t *testing.T) {
	store := newFakeStore()
	for _, def := range Builtins() {
		store.templates[def.Name] = def
	}
	inactive := BuiltinByName("Classic")
	inactive.Name = "Retired"
	inactive.Active = false
	store.templates[inactive.Name] = inactive

	r := NewRegistry(store, testConfig())

	all := r.List(context.Background(), false)
	active := r.List(context.Background(), true)
	assert.Len(t, all, len(Builtins())+1)
	assert.Len(t, active, len(Builtins()))
	for _, def := range active {
		assert.True(t, def.Active)
	}
}

func TestResolveFillsMissingContentFromBuiltin(t *testing.T) {
	store := newFakeStore()
	store.templates["Modern"] = models.TemplateDefinition{Name: "Modern", Description: "metadata only", Active: true}
	r := NewRegistry(store, testConfig())

	def := r.Resolve(context.Background(), "Modern")
	assert.Equal(t, "metadata only", def.Description)
	assert.Equal(t, BuiltinByName("Modern").Preamble, def.Preamble)
	assert.Equal(t, BuiltinByName("Modern").CSSContent, def.CSSContent)
}

func TestBuiltinSeparators(t *testing.T) {
	assert.Equal(t, `$\cdot$`, BuiltinByName("Modern").Separator())
	assert.Equal(t, `$|$`, BuiltinByName("Classic").Separator())
	assert.Equal(t, `$\bullet$`, BuiltinByName("Creative").Separator())
}
