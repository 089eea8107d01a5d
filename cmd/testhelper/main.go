// Command testhelper exposes the cryptocore primitives as JSON commands for
// cross-implementation testing. Each command reads one JSON request from
// stdin and writes one JSON response to stdout. Integers are hex strings
// with an optional leading "-"; byte strings are hex unless noted.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vaultsandbox/cryptocore"
)

// Environment variables read at startup. Flags take precedence.
const (
	envLogLevel   = "CRYPTOCORE_LOG_LEVEL"
	envPrimeLevel = "CRYPTOCORE_PRIME_LEVEL"
	envHWAES      = "CRYPTOCORE_HW_AES"
)

// Config holds the process surroundings so tests can replace them.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Getenv looks up environment variables.
	Getenv func(string) string
	// EnvFile is a dotenv file read for variables missing from the
	// environment. A missing file is not an error.
	EnvFile string
}

// DefaultConfig returns a Config bound to the real process.
func DefaultConfig() Config {
	return Config{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		EnvFile: ".env",
	}
}

// settings are the values configurable by environment and flags.
type settings struct {
	logLevel   string
	primeLevel int
	hwAES      bool
}

func loadSettings(cfg Config) (settings, error) {
	s := settings{logLevel: "info", primeLevel: 1}

	fileEnv := map[string]string{}
	if cfg.EnvFile != "" {
		m, err := godotenv.Read(cfg.EnvFile)
		switch {
		case err == nil:
			fileEnv = m
		case !errors.Is(err, fs.ErrNotExist):
			return s, fmt.Errorf("read %s: %w", cfg.EnvFile, err)
		}
	}
	lookup := func(key string) string {
		if cfg.Getenv != nil {
			if v := cfg.Getenv(key); v != "" {
				return v
			}
		}
		return fileEnv[key]
	}

	if v := lookup(envLogLevel); v != "" {
		s.logLevel = v
	}
	if v := lookup(envPrimeLevel); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("%s: %w", envPrimeLevel, err)
		}
		s.primeLevel = n
	}
	if v := lookup(envHWAES); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("%s: %w", envHWAES, err)
		}
		s.hwAES = b
	}
	return s, nil
}

// newLogger builds a JSON logger writing to w. Only metadata is logged:
// command names, sizes, algorithm names and durations.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// environment is shared by all commands of one invocation.
type environment struct {
	cfg    Config
	log    *zap.Logger
	engine *cryptocore.Engine
}

func run(args []string, cfg Config) error {
	s, err := loadSettings(cfg)
	if err != nil {
		return err
	}

	env := &environment{cfg: cfg}
	root := &cobra.Command{
		Use:           "testhelper",
		Short:         "JSON front end to the cryptocore primitives",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(s.logLevel, cfg.Stderr)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			env.log = log.With(zap.String("command", cmd.Name()))

			env.engine, err = cryptocore.New(
				cryptocore.WithPrimalityLevel(s.primeLevel),
				cryptocore.WithHardwareAES(s.hwAES),
			)
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = env.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", s.logLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().IntVar(&s.primeLevel, "prime-level", s.primeLevel, "primality assurance level 0-2")
	root.PersistentFlags().BoolVar(&s.hwAES, "hw-aes", s.hwAES, "use hardware AES when available")

	root.AddCommand(
		powmodCmd(env),
		divmodCmd(env),
		gcdCmd(env),
		inverseCmd(env),
		isPrimeCmd(env),
		randomPrimeCmd(env),
		sealCmd(env),
		openCmd(env),
		keygenCmd(env),
		envelopeSealCmd(env),
		envelopeOpenCmd(env),
	)

	root.SetArgs(args[1:])
	root.SetIn(cfg.Stdin)
	root.SetOut(cfg.Stdout)
	root.SetErr(cfg.Stderr)
	return root.Execute()
}

// Exit codes reported by the process.
const (
	exitOK         = 0
	exitFailure    = 1
	exitBadRequest = 2
)

// errBadRequest marks input that could not be decoded, as opposed to a
// request the primitives rejected.
var errBadRequest = errors.New("bad request")

// exitCode reports err on w and maps it to the process exit status.
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(w, "testhelper: %v\n", err)
	if errors.Is(err, errBadRequest) {
		return exitBadRequest
	}
	return exitFailure
}
