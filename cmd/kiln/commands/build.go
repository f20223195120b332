package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] [game args...] [-- game args...]",
		Short: "Configure and build the game, then optionally run it",
		Long: `Configure and build the game with CMake, then optionally run it.

Arguments that are not kiln flags, and everything after --, are passed to the game.`,
		Args: cobra.ArbitraryArgs,
		// Unknown flags belong to the game, so parsing happens in RunE.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			own, gameArgs := splitArgs(cmd.Flags(), args)
			if err := cmd.Flags().Parse(own); err != nil {
				return err
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			for _, group := range [][]string{platformFlags, actionFlags} {
				if err := mutuallyExclusive(cmd.Flags(), group); err != nil {
					return err
				}
			}

			opts, err := buildOptions(cmd.Flags())
			if err != nil {
				return err
			}
			opts.GameArgs = gameArgs

			return c.app.Build(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.BoolP("clean", "c", false, "Remove the build directory before building")
	f.BoolP("cmake", "C", false, "Run the CMake configure step even if it could be skipped")
	f.BoolP("release", "R", false, "Build an optimized release configuration")
	f.StringP("generator", "G", "", "CMake generator to use")
	f.StringP("arch", "A", "", "Target architecture: x64, x86 or arm64 (default: host)")
	f.StringArrayP("define", "D", nil, "Set a CMake variable, VAR=VALUE (repeatable)")

	f.Bool("web", false, "Build for the web with Emscripten")
	f.Bool("ios", false, "Build for iOS")
	f.Bool("android", false, "Build for Android")

	f.BoolP("run", "r", false, "Run the game after building (serve it for web builds)")
	f.BoolP("ide", "i", false, "Open the generated project in the IDE instead of building")
	f.Bool("renderdoc", false, "Launch the game in RenderDoc after building")
	f.Bool("package", false, "Package the web build for publishing")

	cmd.InitDefaultHelpFlag()
	f.Lookup("help").Usage = "Show help for command"

	return cmd
}

var (
	platformFlags = []string{"web", "ios", "android"}
	actionFlags   = []string{"run", "ide", "renderdoc", "package"}
)

// mutuallyExclusive fails when more than one flag of group was given.
// cobra skips its own flag group checks for commands that parse their
// flags themselves.
func mutuallyExclusive(f *pflag.FlagSet, group []string) error {
	var set []string
	for _, name := range group {
		if flag := f.Lookup(name); flag != nil && flag.Changed {
			set = append(set, "--"+name)
		}
	}
	if len(set) < 2 {
		return nil
	}
	return zerr.With(zerr.With(domain.ErrConflictingFlags,
		"group", strings.Join(group, " ")),
		"set", strings.Join(set, " "))
}

func buildOptions(f *pflag.FlagSet) (app.BuildOptions, error) {
	var opts app.BuildOptions
	var errs error
	getBool := func(name string) bool {
		v, err := f.GetBool(name)
		errs = errors.Join(errs, err)
		return v
	}
	getString := func(name string) string {
		v, err := f.GetString(name)
		errs = errors.Join(errs, err)
		return v
	}

	opts.Clean = getBool("clean")
	opts.Reconfigure = getBool("cmake")
	opts.Release = getBool("release")
	opts.Generator = getString("generator")
	opts.Arch = getString("arch")

	vars, err := f.GetStringArray("define")
	errs = errors.Join(errs, err)
	opts.Variables = vars

	opts.Platform = domain.PlatformNative
	for _, p := range []domain.Platform{domain.PlatformWeb, domain.PlatformIOS, domain.PlatformAndroid} {
		if getBool(p.String()) {
			opts.Platform = p
		}
	}

	actions := []struct {
		flag   string
		action domain.Action
	}{
		{"run", domain.ActionRun},
		{"ide", domain.ActionIDE},
		{"renderdoc", domain.ActionRenderDoc},
		{"package", domain.ActionPackage},
	}
	for _, a := range actions {
		if getBool(a.flag) {
			opts.Action = a.action
		}
	}

	return opts, errs
}

// splitArgs separates the arguments kiln understands from the ones passed
// through to the game. Everything after "--" goes to the game.
func splitArgs(f *pflag.FlagSet, args []string) (own, game []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return own, append(game, args[i+1:]...)
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			flag := f.Lookup(name)
			if flag == nil {
				game = append(game, arg)
				continue
			}
			own = append(own, arg)
			if !hasValue && needsValue(flag) && i+1 < len(args) {
				i++
				own = append(own, args[i])
			}
		case len(arg) > 1 && arg[0] == '-':
			takesNext, ok := shorthands(f, arg[1:])
			if !ok {
				game = append(game, arg)
				continue
			}
			own = append(own, arg)
			if takesNext && i+1 < len(args) {
				i++
				own = append(own, args[i])
			}
		default:
			game = append(game, arg)
		}
	}
	return own, game
}

func needsValue(flag *pflag.Flag) bool {
	return flag.NoOptDefVal == ""
}

// shorthands walks a group of shorthand flags such as "cR", "cG" or
// "cDFOO=1" the way pflag does: boolean letters may be combined and the first
// letter taking a value consumes the rest of the group. ok is false when a
// letter is not a kiln flag. takesNext reports that the value is the next
// argument.
func shorthands(f *pflag.FlagSet, letters string) (takesNext, ok bool) {
	for i := range len(letters) {
		flag := f.ShorthandLookup(letters[i : i+1])
		if flag == nil {
			return false, false
		}
		if needsValue(flag) {
			return i == len(letters)-1, true
		}
	}
	return false, true
}
