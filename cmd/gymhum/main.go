package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/naveenspark/gymhum/internal/logging"
	"github.com/naveenspark/gymhum/internal/state"
	"github.com/naveenspark/gymhum/internal/store"
	"github.com/naveenspark/gymhum/internal/tui"
	"github.com/naveenspark/gymhum/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// config is read from the environment after an optional .env file is loaded.
type config struct {
	APIURL   string
	DataDir  string
	LogLevel string
}

// loadConfig resolves settings from getenv. GYMHUM_DATA_DIR defaults to
// ~/.gymhum.
func loadConfig(getenv func(string) string) (config, error) {
	cfg := config{
		APIURL:   getenv("GYMHUM_API_URL"),
		DataDir:  getenv("GYMHUM_DATA_DIR"),
		LogLevel: getenv("GYMHUM_LOG_LEVEL"),
	}
	if cfg.APIURL == "" {
		cfg.APIURL = client.DefaultBaseURL
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return config{}, fmt.Errorf("get home dir: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".gymhum")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

func run(args []string, stdout io.Writer) error {
	// .env is optional.
	_ = godotenv.Load() //nolint:errcheck

	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		switch args[0] {
		case "--version", "version", "-v":
			fmt.Fprintln(stdout, "gymhum "+version)
			return nil
		case "help", "--help", "-h":
			printHelp(stdout)
			return nil
		case "reset":
			return runReset(cfg, stdout)
		case "cart":
			return runCart(cfg, stdout)
		default:
			return fmt.Errorf("unknown command %q (try: gymhum help)", args[0])
		}
	}

	log, err := logging.New(filepath.Join(cfg.DataDir, "gymhum.log"), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		log = zap.NewNop()
	}
	defer log.Sync() //nolint:errcheck

	st := state.Load(store.New(store.NewFileMedium(cfg.DataDir), log), log)
	c := client.New(cfg.APIURL)
	log.Info("starting", zap.String("version", version), zap.String("api", c.BaseURL()), zap.String("data_dir", cfg.DataDir))

	app := tui.NewApp(c, st, log)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	printSignOff(stdout)
	return nil
}

// runReset deletes the stored cart and profile.
func runReset(cfg config, stdout io.Writer) error {
	m := store.NewFileMedium(cfg.DataDir)
	var errs []error
	for _, key := range []string{store.KeyCart, store.KeyProfile} {
		if err := m.Delete(key); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	printResetDone(stdout, cfg.DataDir)
	return nil
}

// runCart prints the stored cart without starting the TUI.
func runCart(cfg config, stdout io.Writer) error {
	st := store.New(store.NewFileMedium(cfg.DataDir), zap.NewNop())
	printCart(stdout, st.LoadCart())
	return nil
}
