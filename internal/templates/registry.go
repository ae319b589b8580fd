// Package templates holds the fixed catalog of resume style presets and the
// session's selection and customization layer on top of it.
package templates

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// Storage keys. Each one loads and saves independently.
const (
	SelectedKey   = "selectedTemplate"
	TypographyKey = "customTypography"
	ColorsKey     = "customColors"
)

// UnknownTemplateError is returned when selecting an id outside the catalog
type UnknownTemplateError struct {
	ID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template %q", e.ID)
}

// List returns the catalog in display order. The result is a copy.
func List() []types.TemplateStyle {
	out := make([]types.TemplateStyle, len(presets))
	for i, p := range presets {
		out[i] = clonePreset(p)
	}
	return out
}

// Get returns the preset with the given id.
func Get(id string) (types.TemplateStyle, bool) {
	for _, p := range presets {
		if p.ID == id {
			return clonePreset(p), true
		}
	}
	return types.TemplateStyle{}, false
}

func clonePreset(p types.TemplateStyle) types.TemplateStyle {
	p.Colors = p.Colors.Clone()
	return p
}

// Overrides replace a preset's typography or colors wholesale. A nil field
// means the preset's own value is used.
type Overrides struct {
	Typography *types.Typography `json:"typography"`
	Colors     types.Colors      `json:"colors"`
}

// Registry tracks the selected preset and the active overrides.
type Registry struct {
	mu         sync.RWMutex
	kv         storage.KV
	logger     *log.Logger
	selected   string
	typography *types.Typography
	colors     types.Colors
}

// NewRegistry restores the selection and overrides from kv. A missing or
// corrupt value falls back to its own default without affecting the others.
func NewRegistry(ctx context.Context, kv storage.KV, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	r := &Registry{kv: kv, logger: logger, selected: DefaultTemplateID}

	if id, ok := r.read(ctx, SelectedKey); ok {
		if _, known := Get(id); known {
			r.selected = id
		} else {
			logger.Warn("saved template is not in the catalog, using default", "template", id, "default", DefaultTemplateID)
		}
	}

	if raw, ok := r.read(ctx, TypographyKey); ok {
		var t *types.Typography
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			logger.Warn("discarding corrupt typography override", "key", TypographyKey, "err", err)
		} else {
			r.typography = t
		}
	}

	if raw, ok := r.read(ctx, ColorsKey); ok {
		var c types.Colors
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			logger.Warn("discarding corrupt color override", "key", ColorsKey, "err", err)
		} else {
			r.colors = c
		}
	}

	return r
}

// List returns the catalog in display order.
func (r *Registry) List() []types.TemplateStyle {
	return List()
}

// Selected returns the id of the active preset.
func (r *Registry) Selected() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selected
}

// Select makes id the active preset and clears both overrides.
func (r *Registry) Select(ctx context.Context, id string) error {
	if _, ok := Get(id); !ok {
		return &UnknownTemplateError{ID: id}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected = id
	r.typography = nil
	r.colors = nil
	r.write(ctx, SelectedKey, id)
	r.saveOverrides(ctx)
	return nil
}

// SetTypographyOverride replaces the typography override. nil clears it.
func (r *Registry) SetTypographyOverride(ctx context.Context, t *types.Typography) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t != nil {
		c := *t
		t = &c
	}
	r.typography = t
	r.saveOverrides(ctx)
}

// SetColorOverride replaces the color override. nil clears it.
func (r *Registry) SetColorOverride(ctx context.Context, c types.Colors) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.colors = c.Clone()
	r.saveOverrides(ctx)
}

// ResetOverrides clears both overrides.
func (r *Registry) ResetOverrides(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.typography = nil
	r.colors = nil
	r.saveOverrides(ctx)
}

// Overrides returns a copy of the active overrides.
func (r *Registry) Overrides() Overrides {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o := Overrides{Colors: r.colors.Clone()}
	if r.typography != nil {
		t := *r.typography
		o.Typography = &t
	}
	return o
}

// Effective returns the selected preset with overrides applied. An override
// replaces the whole typography or colors object; fields are never mixed.
func (r *Registry) Effective() types.TemplateStyle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	style, ok := Get(r.selected)
	if !ok {
		style, _ = Get(DefaultTemplateID)
	}
	if r.typography != nil {
		style.Typography = *r.typography
	}
	if r.colors != nil {
		style.Colors = r.colors.Clone()
	}
	return style
}

// saveOverrides writes both override keys, deleting the ones that are unset.
// Callers hold r.mu.
func (r *Registry) saveOverrides(ctx context.Context) {
	if r.typography != nil {
		r.writeJSON(ctx, TypographyKey, r.typography)
	} else {
		r.remove(ctx, TypographyKey)
	}
	if r.colors != nil {
		r.writeJSON(ctx, ColorsKey, r.colors)
	} else {
		r.remove(ctx, ColorsKey)
	}
}

func (r *Registry) read(ctx context.Context, key string) (string, bool) {
	v, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		r.logger.Warn("failed to read template setting", "key", key, "err", err)
		return "", false
	}
	return v, ok && v != ""
}

func (r *Registry) write(ctx context.Context, key, value string) {
	if err := r.kv.Set(ctx, key, value); err != nil {
		r.logger.Error("failed to save template setting", "key", key, "err", err)
	}
}

func (r *Registry) writeJSON(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		r.logger.Error("failed to encode template setting", "key", key, "err", err)
		return
	}
	r.write(ctx, key, string(data))
}

func (r *Registry) remove(ctx context.Context, key string) {
	if err := r.kv.Delete(ctx, key); err != nil {
		r.logger.Error("failed to clear template setting", "key", key, "err", err)
	}
}
