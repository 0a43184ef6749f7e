package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"ahudio-admin-server/internal/config"
	"ahudio-admin-server/internal/db"
	"ahudio-admin-server/internal/services"
	"ahudio-admin-server/internal/vapi"
	"ahudio-admin-server/pkg/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version can be overridden at build time via:
// go build -ldflags "-X main.version=1.2.3"
var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "ahudio-admin-server",
		Short:        "Ahudio voice assistant admin backend",
		Long:         color.CyanString("Ahudio") + " admin backend: contact intake, site content and the VAPI assistant mirror.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "absolute path to a JSON or YAML config file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Mirror every remote assistant and phone number into the local database once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if err := initLogger(cfg); err != nil {
				return err
			}
			defer logger.Sync()
			return runSync(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ahudio-admin-server %s\n", version)
		},
	}

	root.AddCommand(serveCmd, syncCmd, versionCmd)
	return root
}

// loadConfig reads the config file when given, else the defaults, then applies AHUDIO_* overrides
func loadConfig(path string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func initLogger(cfg *config.Config) error {
	if err := logger.InitWithLevel(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func runServe(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := initLogger(cfg); err != nil {
		return err
	}
	defer logger.Sync()
	defer logger.Info("Server shutting down")

	srv, err := SetupServer(cfg)
	if err != nil {
		logger.Error("Failed to setup server", zap.Error(err))
		return err
	}

	if err := StartServer(srv); err != nil {
		logger.Error("Server error", zap.Error(err))
		return err
	}
	return nil
}

// runSync reconciles all remote assistants and phone numbers and prints a summary to out
func runSync(ctx context.Context, cfg *config.Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.NewDatabase(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	client := vapi.NewClient(cfg.Vapi.Endpoint, cfg.Vapi.Credential)
	syncService := services.NewSyncService(
		db.NewAssistantRepository(database.GetDB()),
		db.NewPhoneNumberRepository(database.GetDB()),
		client,
		client,
	)

	ok := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)

	steps := []struct {
		label string
		run   func(context.Context) (*services.SyncReport, error)
	}{
		{"Assistants", syncService.SyncAllAssistants},
		{"Phone numbers", syncService.SyncAllPhoneNumbers},
	}

	for _, step := range steps {
		report, err := step.run(ctx)
		if err != nil {
			fail.Fprint(out, "✗ ")
			fmt.Fprintf(out, "%s: %v\n", step.label, err)
			return fmt.Errorf("failed to sync %s: %w", step.label, err)
		}
		ok.Fprint(out, "✓ ")
		fmt.Fprintf(out, "%s: %d remote, %d created, %d updated\n",
			step.label, report.Remote, report.Created, report.Updated)
		logger.Info("Sync finished",
			zap.String("kind", step.label),
			zap.Int("remote", report.Remote),
			zap.Int("created", report.Created),
			zap.Int("updated", report.Updated))
	}
	return nil
}
