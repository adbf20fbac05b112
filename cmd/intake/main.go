// Command intake stores image files through the upload pipeline and checks
// that the upload directory is usable.
//
// Usage:
//
//	intake store [-config intake.yaml] FILE...
//	intake check [-config intake.yaml]
//
// Settings come from UPLOAD_* environment variables, a .env file in the
// working directory, and the optional YAML file. APP_ENV and LOG_LEVEL
// control logging, which goes to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dmitrymomot/intake/pkg/config"
	"github.com/dmitrymomot/intake/pkg/intake"
	"github.com/dmitrymomot/intake/pkg/logger"
)

const usage = `usage:
  intake store [-config file.yaml] FILE...
  intake check [-config file.yaml]
`

type appConfig struct {
	Env      string        `env:"APP_ENV" envDefault:"development" yaml:"env"`
	LogLevel string        `env:"LOG_LEVEL" yaml:"log_level"`
	Intake   intake.Config `yaml:",inline"`
}

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "store":
		err = storeCmd(ctx, args[1:], stdout, stderr)
	case "check":
		err = checkCmd(ctx, args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintln(stderr, "intake:", err)
		return 1
	}
}

func storeCmd(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("store", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprint(stderr, usage)
		return errUsage
	}

	in, err := setup(*configPath, stderr)
	if err != nil {
		return err
	}

	reqs := make([]intake.Request, 0, fs.NArg())
	for _, name := range fs.Args() {
		payload, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		reqs = append(reqs, intake.Request{Filename: filepath.Base(name), Payload: payload})
	}

	var rejected int
	for _, out := range in.StoreAll(ctx, reqs) {
		if file, ok := out.Stored(); ok {
			fmt.Fprintf(stdout, "stored %s %d\n", file.Path, file.Size)
			continue
		}
		rej, _ := out.Rejected()
		fmt.Fprintf(stdout, "rejected %s: %s\n", rej.Kind, rej.Message)
		rejected++
	}

	if rejected > 0 {
		return fmt.Errorf("%d of %d files rejected", rejected, len(reqs))
	}
	return nil
}

func checkCmd(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprint(stderr, usage)
		return errUsage
	}

	in, err := setup(*configPath, stderr)
	if err != nil {
		return err
	}

	if err := in.Healthcheck(ctx); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "ok %s\n", in.BaseDir())
	return nil
}

// setup loads configuration and builds the pipeline with a stderr logger.
func setup(configPath string, stderr io.Writer) (*intake.Intake, error) {
	var cfg appConfig
	if err := config.Load(&cfg, config.WithEnvFiles(".env"), config.WithYAMLFile(configPath)); err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "intake"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(stderr),
	)
	slog.SetDefault(log)

	return intake.NewFromConfig(cfg.Intake, intake.WithLogger(log)), nil
}
