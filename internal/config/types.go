package config

import (
	"github.com/alexisbeaulieu97/starrating/internal/rating"
)

// File is the global configuration document.
type File struct {
	Namespace string            `yaml:"namespace,omitempty" validate:"omitempty,alphanum,max=32"`
	Settings  rating.Override   `yaml:"settings,omitempty"`
	Glyphs    map[string]string `yaml:"glyphs,omitempty" validate:"omitempty,dive,keys,icon_class,endkeys,required"`
}

// HasSettings reports whether the file sets any settings key.
func (f *File) HasSettings() bool {
	if f == nil {
		return false
	}
	s := f.Settings
	return s.FilledIcon != nil || s.OutlineIcon != nil || s.TopLimit != nil
}
