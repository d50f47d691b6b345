package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textutils/pkg/config"
	"github.com/dmitrymomot/textutils/pkg/logger"
	"github.com/dmitrymomot/textutils/pkg/random"
	"github.com/dmitrymomot/textutils/pkg/sanitizer"
	"github.com/dmitrymomot/textutils/pkg/slug"
)

var (
	errUsage        = errors.New("usage error")
	errInvalidInput = errors.New("input contains invalid values")
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

type app struct {
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	cfg    config.Config
}

// run executes the command line in args. On usage errors the usage of the
// failing command is written to stderr.
func (a *app) run(ctx context.Context, args []string) error {
	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}

	root := a.rootCmd()
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if errors.Is(err, errUsage) {
		fmt.Fprintf(a.stderr, "Error: %v\n\n%s", err, cmd.UsageString())
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "textutils",
		Short:         "textutils sanitizes text and generates random identifiers",
		Long:          "textutils sanitizes text read from stdin and generates random identifiers.\nSettings are read from TEXTUTILS_* environment variables.",
		Args:          usageArgs(cobra.NoArgs),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(context.WithValue(cmd.Context(), commandKey{}, cmd.Name()))
		},
		RunE: func(*cobra.Command, []string) error {
			return fmt.Errorf("%w: missing command", errUsage)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	root.AddCommand(
		a.sanitizeCmd(),
		a.emailCmd(),
		a.slugCmd(),
		a.htmlCmd(),
		a.tokenCmd(),
		a.stringCmd(),
	)
	return root
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		return nil
	}
}

func (a *app) sanitizeCmd() *cobra.Command {
	var (
		noSpaces     bool
		replacement  string
		remap        bool
		profileName  string
		profilesPath string
	)

	cmd := &cobra.Command{
		Use:   "sanitize",
		Short: "Filter, collapse and optionally transliterate each stdin line",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var opts []sanitizer.Option
			if profileName != "" {
				profile, err := loadProfile(profilesPath, profileName)
				if err != nil {
					return err
				}
				opts = append(opts, profile.Options()...)
				a.log.DebugContext(ctx, "using profile", logger.Profile(profileName))
			}

			// Flags given explicitly override the profile.
			flags := cmd.Flags()
			if flags.Changed("no-spaces") {
				opts = append(opts, sanitizer.AllowSpaces(!noSpaces))
			}
			if flags.Changed("replacement") {
				opts = append(opts, sanitizer.SpaceReplacement(replacement))
			}
			if flags.Changed("remap") {
				opts = append(opts, sanitizer.RemapUnicode(remap))
			}

			return a.eachLine(ctx, func(_ int, line string) (string, bool) {
				return sanitizer.Sanitize(line, opts...), true
			})
		},
	}

	cmd.Flags().BoolVar(&noSpaces, "no-spaces", false, "replace whitespace runs with --replacement")
	cmd.Flags().StringVar(&replacement, "replacement", "-", "string substituted for whitespace when --no-spaces is set")
	cmd.Flags().BoolVar(&remap, "remap", false, "transliterate accented letters to ASCII")
	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "named profile from the profiles file")
	cmd.Flags().StringVar(&profilesPath, "profiles", a.cfg.Profiles, "profiles YAML file")
	return cmd
}

func loadProfile(path, name string) (config.Profile, error) {
	if path == "" {
		return config.Profile{}, fmt.Errorf("%w: profile %q requested but no profiles file set", errUsage, name)
	}
	profiles, err := config.LoadProfiles(path)
	if err != nil {
		return config.Profile{}, err
	}
	return profiles.Lookup(name)
}

func (a *app) emailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "email",
		Short: "Normalize each stdin line as an email address",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			invalid := 0
			err := a.eachLine(ctx, func(n int, line string) (string, bool) {
				email, err := sanitizer.SanitizeEmail(line)
				if err != nil {
					invalid++
					a.log.WarnContext(ctx, "invalid email", logger.Line(n), logger.Error(err))
					return "", false
				}
				a.log.DebugContext(ctx, "accepted email", logger.Line(n), logger.Domain(sanitizer.EmailDomain(email)))
				return email, true
			})
			if err != nil {
				return err
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d invalid email(s)", errInvalidInput, invalid)
			}
			return nil
		},
	}
}

func (a *app) slugCmd() *cobra.Command {
	var (
		sep       string
		maxLength int
		suffix    int
	)

	cmd := &cobra.Command{
		Use:   "slug",
		Short: "Turn each stdin line into a URL-safe slug",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []slug.Option{slug.Separator(sep), slug.MaxLength(maxLength), slug.WithSuffix(suffix)}
			return a.eachLine(cmd.Context(), func(_ int, line string) (string, bool) {
				return slug.Make(line, opts...), true
			})
		},
	}

	cmd.Flags().StringVar(&sep, "sep", "-", "word separator")
	cmd.Flags().IntVar(&maxLength, "max", 0, "maximum length in runes, 0 for no limit")
	cmd.Flags().IntVar(&suffix, "suffix", 0, "length of a random suffix, 0 for none")
	return cmd
}

func (a *app) htmlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "html",
		Short: "Strip markup from stdin",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := io.ReadAll(a.stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			_, err = fmt.Fprintln(a.stdout, sanitizer.StripHTML(string(data)))
			return err
		},
	}
}

func (a *app) tokenCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print random underscore-separated UUIDs",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd.Context(), count, func() (string, error) {
				return random.Token(), nil
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of tokens")
	return cmd
}

func (a *app) stringCmd() *cobra.Command {
	var (
		size  int
		chars string
		count int
	)

	cmd := &cobra.Command{
		Use:   "string",
		Short: "Print random strings",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			classes, err := random.ParseClasses(chars)
			if err != nil {
				return fmt.Errorf("%w: %w", errUsage, err)
			}

			return a.generate(cmd.Context(), count, func() (string, error) {
				return random.String(size, classes)
			})
		},
	}

	cmd.Flags().IntVar(&size, "size", 32, "length of each string")
	cmd.Flags().StringVar(&chars, "chars", "uppercase,lowercase,digits", "comma-separated character classes")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of strings")
	return cmd
}

func (a *app) generate(ctx context.Context, count int, next func() (string, error)) (err error) {
	if count < 1 {
		return fmt.Errorf("%w: --count must be positive, got %d", errUsage, count)
	}

	w := bufio.NewWriter(a.stdout)
	defer flush(w, &err)

	for range count {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, err := next()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// eachLine applies fn to every stdin line and writes the accepted results,
// one per line. Line numbers passed to fn start at 1. Results produced before
// a failure are still written.
func (a *app) eachLine(ctx context.Context, fn func(n int, line string) (string, bool)) (err error) {
	scanner := bufio.NewScanner(a.stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	w := bufio.NewWriter(a.stdout)
	defer flush(w, &err)

	n := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		n++
		out, ok := fn(n, scanner.Text())
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	a.log.DebugContext(ctx, "processed input", logger.Count(n))
	return nil
}

// flush writes out buffered results, reporting a flush failure only when
// nothing else failed first.
func flush(w *bufio.Writer, err *error) {
	if ferr := w.Flush(); ferr != nil && *err == nil {
		*err = fmt.Errorf("write stdout: %w", ferr)
	}
}
