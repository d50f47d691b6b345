package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/textutils/pkg/sanitizer"
)

// Profile is a named set of Sanitize options.
// Nil fields leave the sanitizer default in place.
type Profile struct {
	AllowSpaces      *bool   `yaml:"allow_spaces"`
	SpaceReplacement *string `yaml:"space_replacement"`
	RemapUnicode     *bool   `yaml:"remap_unicode"`
}

// Options converts the profile to sanitizer options.
func (p Profile) Options() []sanitizer.Option {
	opts := make([]sanitizer.Option, 0, 3)
	if p.AllowSpaces != nil {
		opts = append(opts, sanitizer.AllowSpaces(*p.AllowSpaces))
	}
	if p.SpaceReplacement != nil {
		opts = append(opts, sanitizer.SpaceReplacement(*p.SpaceReplacement))
	}
	if p.RemapUnicode != nil {
		opts = append(opts, sanitizer.RemapUnicode(*p.RemapUnicode))
	}
	return opts
}

// Profiles maps profile names to their settings.
//
//	slug:
//	  allow_spaces: false
//	  space_replacement: "-"
//	  remap_unicode: true
type Profiles map[string]Profile

// Lookup returns the named profile or ErrProfileNotFound.
func (p Profiles) Lookup(name string) (Profile, error) {
	profile, ok := p[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return profile, nil
}

// Names returns the profile names in sorted order.
func (p Profiles) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseProfiles decodes profiles from YAML.
func ParseProfiles(data []byte) (Profiles, error) {
	profiles := Profiles{}
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, errors.Join(ErrLoadingProfiles, err)
	}
	return profiles, nil
}

// LoadProfiles reads and decodes the profiles file at path.
func LoadProfiles(path string) (Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrLoadingProfiles, err)
	}
	return ParseProfiles(data)
}
