package templates

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, kv storage.KV) *Registry {
	t.Helper()
	return NewRegistry(context.Background(), kv, log.New(io.Discard))
}

func TestList_Catalog(t *testing.T) {
	list := List()
	require.Len(t, list, 11)

	var ids []string
	for _, p := range list {
		ids = append(ids, p.ID)
		assert.NotEmpty(t, p.Name, p.ID)
		assert.NotEmpty(t, p.Colors.Get("primary", ""), p.ID)
	}
	assert.Equal(t, []string{
		"modern", "sidebar", "classic", "creative", "minimal", "executive",
		"tech", "elegant", "corporate", "artistic", "academic",
	}, ids)

	sidebar, ok := Get("sidebar")
	require.True(t, ok)
	assert.True(t, sidebar.IsSidebar())
	assert.Equal(t, "#4b5563", sidebar.Colors["headerBg"])
	assert.Equal(t, "#e5e7eb", sidebar.Colors["sidebarBg"])
	assert.Equal(t, "#374151", sidebar.Colors["sidebarText"])
}

func TestList_ReturnsCopies(t *testing.T) {
	List()[0].Colors["primary"] = "#ff0000"
	modern, _ := Get("modern")
	assert.Equal(t, "#2563eb", modern.Colors["primary"])
}

func TestRegistry_Defaults(t *testing.T) {
	r := newTestRegistry(t, storage.NewMemoryKV())

	assert.Equal(t, DefaultTemplateID, r.Selected())
	assert.Equal(t, Overrides{}, r.Overrides())

	modern, _ := Get("modern")
	assert.Equal(t, modern, r.Effective())
}

func TestRegistry_SelectUnknown(t *testing.T) {
	r := newTestRegistry(t, storage.NewMemoryKV())

	err := r.Select(context.Background(), "neon")
	var ute *UnknownTemplateError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "neon", ute.ID)
	assert.Equal(t, DefaultTemplateID, r.Selected())
}

func TestRegistry_SelectClearsOverrides(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	r := newTestRegistry(t, kv)

	r.SetTypographyOverride(ctx, &types.Typography{HeadingFont: "Georgia"})
	r.SetColorOverride(ctx, types.Colors{"primary": "#000000"})
	require.NotNil(t, r.Overrides().Typography)

	require.NoError(t, r.Select(ctx, "classic"))
	assert.Equal(t, Overrides{}, r.Overrides())

	_, ok, _ := kv.Get(ctx, TypographyKey)
	assert.False(t, ok)
	_, ok, _ = kv.Get(ctx, ColorsKey)
	assert.False(t, ok)

	v, _, _ := kv.Get(ctx, SelectedKey)
	assert.Equal(t, "classic", v)
}

func TestRegistry_EffectiveReplacesWholeObjects(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, storage.NewMemoryKV())

	r.SetColorOverride(ctx, types.Colors{"primary": "#111111"})
	eff := r.Effective()
	assert.Equal(t, types.Colors{"primary": "#111111"}, eff.Colors, "no field-level merge with the preset")

	modern, _ := Get("modern")
	assert.Equal(t, modern.Typography, eff.Typography)

	r.SetTypographyOverride(ctx, &types.Typography{BodyFont: "Courier"})
	assert.Equal(t, types.Typography{BodyFont: "Courier"}, r.Effective().Typography)

	r.ResetOverrides(ctx)
	assert.Equal(t, modern, r.Effective())
}

func TestRegistry_Persistence(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	r := newTestRegistry(t, kv)

	require.NoError(t, r.Select(ctx, "tech"))
	r.SetTypographyOverride(ctx, &types.Typography{HeadingFont: "Fira Code"})
	r.SetColorOverride(ctx, types.Colors{"primary": "#00ff00"})

	reloaded := newTestRegistry(t, kv)
	assert.Equal(t, "tech", reloaded.Selected())
	assert.Equal(t, r.Overrides(), reloaded.Overrides())
	assert.Equal(t, r.Effective(), reloaded.Effective())

	r.SetTypographyOverride(ctx, nil)
	_, ok, _ := kv.Get(ctx, TypographyKey)
	assert.False(t, ok, "clearing an override deletes its key")
}

func TestRegistry_KeysLoadIndependently(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, SelectedKey, "retro"))
	require.NoError(t, kv.Set(ctx, TypographyKey, "{broken"))
	require.NoError(t, kv.Set(ctx, ColorsKey, `{"primary":"#123456"}`))

	r := newTestRegistry(t, kv)
	assert.Equal(t, DefaultTemplateID, r.Selected())
	assert.Nil(t, r.Overrides().Typography)
	assert.Equal(t, types.Colors{"primary": "#123456"}, r.Overrides().Colors)
}

func TestRegistry_NullOverrideIsAbsent(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, TypographyKey, "null"))
	require.NoError(t, kv.Set(ctx, ColorsKey, "null"))

	r := newTestRegistry(t, kv)
	assert.Equal(t, Overrides{}, r.Overrides())
}
