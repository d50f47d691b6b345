// Package config loads textutils settings from the environment and named
// sanitize profiles from YAML.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// Load reads the default `.env` file once (if present) and parses the
// environment into any struct annotated with `env` tags. Config is the struct
// used by the textutils command:
//
//	TEXTUTILS_ENV         development | staging | production (default development)
//	TEXTUTILS_LOG_LEVEL   debug | info | warn | error (default info)
//	TEXTUTILS_LOG_FORMAT  text | json (default text)
//	TEXTUTILS_PROFILES    path to a profiles YAML file (optional)
//
// # Profiles
//
// A profiles file maps names to sanitizer settings. Unset keys keep the
// sanitizer defaults:
//
//	slug:
//	  allow_spaces: false
//	  space_replacement: "-"
//	  remap_unicode: true
//	ascii:
//	  remap_unicode: true
//
// Load it and turn a profile into options:
//
//	profiles, err := config.LoadProfiles(cfg.Profiles)
//	profile, err := profiles.Lookup("slug")
//	out := sanitizer.Sanitize(in, profile.Options()...)
//
// # Error Handling
//
// Errors wrap the sentinels below and can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`   – failed to parse env vars into struct.
//   - `ErrNilPointer`      – nil pointer passed to `Load`/`MustLoad`.
//   - `ErrLoadingEnvFile`  – `LoadEnv` could not read a file.
//   - `ErrInvalidLogLevel` – unknown `TEXTUTILS_LOG_LEVEL`.
//   - `ErrLoadingProfiles` – profiles file missing or malformed.
//   - `ErrProfileNotFound` – `Lookup` of an undefined profile.
package config
