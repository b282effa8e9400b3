package rating

import (
	"encoding/json"
	"fmt"

	"dario.cat/mergo"

	apperrors "github.com/alexisbeaulieu97/starrating/pkg/errors"
)

// Settings keys accepted by ResolveKey.
const (
	KeyFilledIcon  = "filledIcon"
	KeyOutlineIcon = "outlineIcon"
	KeyTopLimit    = "topLimit"
)

// MaxTopLimit is the largest accepted topLimit. It must match the lte bound
// on Override.TopLimit.
const MaxTopLimit = 100

// Settings is the effective configuration of a widget.
type Settings struct {
	FilledIcon  string `json:"filledIcon" yaml:"filledIcon"`
	OutlineIcon string `json:"outlineIcon" yaml:"outlineIcon"`
	TopLimit    int    `json:"topLimit" yaml:"topLimit"`
}

// DefaultSettings returns the built-in settings layer.
func DefaultSettings() Settings {
	return Settings{
		FilledIcon:  "glyphicon glyphicon-star",
		OutlineIcon: "glyphicon glyphicon-star-empty",
		TopLimit:    5,
	}
}

// Lookup returns the value stored under key.
func (s Settings) Lookup(key string) (any, bool) {
	switch key {
	case KeyFilledIcon:
		return s.FilledIcon, true
	case KeyOutlineIcon:
		return s.OutlineIcon, true
	case KeyTopLimit:
		return s.TopLimit, true
	default:
		return nil, false
	}
}

// Override is a partial settings layer. Nil fields fall through to the next
// lower-priority layer.
type Override struct {
	FilledIcon  *string `json:"filledIcon,omitempty" yaml:"filledIcon,omitempty" validate:"omitempty,icon_class"`
	OutlineIcon *string `json:"outlineIcon,omitempty" yaml:"outlineIcon,omitempty" validate:"omitempty,icon_class"`
	TopLimit    *int    `json:"topLimit,omitempty" yaml:"topLimit,omitempty" validate:"omitempty,gte=1,lte=100"`
}

// Clone returns a deep copy of o.
func (o Override) Clone() Override {
	var out Override
	if o.FilledIcon != nil {
		v := *o.FilledIcon
		out.FilledIcon = &v
	}
	if o.OutlineIcon != nil {
		v := *o.OutlineIcon
		out.OutlineIcon = &v
	}
	if o.TopLimit != nil {
		v := *o.TopLimit
		out.TopLimit = &v
	}
	return out
}

// Validate checks the fields the override sets.
func (o Override) Validate() error {
	return Validator().Struct(o)
}

func overrideOf(s Settings) Override {
	filled, outline, limit := s.FilledIcon, s.OutlineIcon, s.TopLimit
	return Override{FilledIcon: &filled, OutlineIcon: &outline, TopLimit: &limit}
}

// ParseOverride decodes a serialized per-instance override. Keys other than
// the settings keys are ignored.
func ParseOverride(raw string) (Override, error) {
	var o Override
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		return Override{}, apperrors.NewConfigParseError(raw, err)
	}
	if err := o.Validate(); err != nil {
		return Override{}, apperrors.NewConfigParseError(raw, err)
	}
	return o, nil
}

// Resolve merges the layers with precedence instance > global > defaults.
// A nil instance or global means the layer is absent. The defaults are never
// modified.
func Resolve(instance *string, global *Override) (Settings, error) {
	var merged Override
	if instance != nil {
		parsed, err := ParseOverride(*instance)
		if err != nil {
			return Settings{}, err
		}
		merged = parsed
	}

	if global != nil {
		if err := global.Validate(); err != nil {
			return Settings{}, apperrors.NewValidationError("global", "invalid global settings override", err)
		}
		if err := mergo.Merge(&merged, *global, mergo.WithoutDereference); err != nil {
			return Settings{}, fmt.Errorf("merge global settings: %w", err)
		}
	}

	if err := mergo.Merge(&merged, overrideOf(DefaultSettings()), mergo.WithoutDereference); err != nil {
		return Settings{}, fmt.Errorf("merge default settings: %w", err)
	}

	return Settings{
		FilledIcon:  *merged.FilledIcon,
		OutlineIcon: *merged.OutlineIcon,
		TopLimit:    *merged.TopLimit,
	}, nil
}

// ResolveKey resolves the settings and returns the value under key. When key
// is empty or unknown the whole Settings value is returned instead.
func ResolveKey(instance *string, global *Override, key string) (any, error) {
	settings, err := Resolve(instance, global)
	if err != nil {
		return nil, err
	}
	if value, ok := settings.Lookup(key); ok {
		return value, nil
	}
	return settings, nil
}

// GlobalSource provides the process-wide override layer.
type GlobalSource interface {
	GlobalOverride() *Override
}

// GlobalSourceFunc adapts a function to GlobalSource.
type GlobalSourceFunc func() *Override

// GlobalOverride implements GlobalSource.
func (f GlobalSourceFunc) GlobalOverride() *Override {
	if f == nil {
		return nil
	}
	return f()
}

// Resolver resolves settings against a live global source. The source is read
// on every call, so a changed global override applies to the next resolution.
type Resolver struct {
	global GlobalSource
}

// NewResolver creates a Resolver. A nil source means no global layer.
func NewResolver(global GlobalSource) *Resolver {
	return &Resolver{global: global}
}

func (r *Resolver) globalOverride() *Override {
	if r == nil || r.global == nil {
		return nil
	}
	return r.global.GlobalOverride()
}

// Resolve merges the instance override onto the current global and default layers.
func (r *Resolver) Resolve(instance *string) (Settings, error) {
	return Resolve(instance, r.globalOverride())
}

// ResolveKey is ResolveKey bound to the resolver's global source.
func (r *Resolver) ResolveKey(instance *string, key string) (any, error) {
	return ResolveKey(instance, r.globalOverride(), key)
}
