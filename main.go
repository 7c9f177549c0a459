package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/mirceanton/homer-sync/config"
	"github.com/mirceanton/homer-sync/controllers"
	"github.com/mirceanton/homer-sync/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "homer-sync",
		Short:        "Automatically generate a Homer dashboard config from Kubernetes HTTPRoutes",
		Version:      version.String(),
		SilenceUsage: true,
		RunE:         run,
	}

	f := cmd.Flags()
	f.StringSlice("gateway-names", nil,
		"Comma-separated gateway names to filter HTTPRoutes by (opt-out mode when set)")
	f.StringSlice("domain-suffixes", nil,
		"Comma-separated domain suffixes to filter hostnames by (e.g. .home.example.com)")
	f.String("configmap-name", "homer-config",
		"Name of the ConfigMap to write the Homer config into")
	f.String("configmap-namespace", "",
		"Namespace for the ConfigMap (auto-detected from service account when empty)")
	f.Bool("daemon", true,
		"Run continuously; set to false to exit after one sync")
	f.Int("scan-interval", 300,
		"Seconds between scans in daemon mode")
	f.String("log-level", "info",
		"Log verbosity: debug, info, warn, error")
	f.String("title", "Home Dashboard",
		"Homer dashboard title")
	f.String("subtitle", "",
		"Homer dashboard subtitle")
	f.Int("columns", 5,
		"Number of service columns in the Homer layout")
	f.String("template-path", "",
		"Path to a custom Go template file; falls back to the built-in template when empty")

	// Each flag is also settable through its HOMER_SYNC_* environment
	// variable, matching the names the deployment manifests already use.
	bindEnv := func(flag, env string) {
		if err := viper.BindPFlag(flag, f.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %q: %v", flag, err))
		}
		if err := viper.BindEnv(flag, env); err != nil {
			panic(fmt.Sprintf("bind env %q: %v", env, err))
		}
	}

	bindEnv("gateway-names", "HOMER_SYNC_GATEWAY_NAMES")
	bindEnv("domain-suffixes", "HOMER_SYNC_DOMAIN_SUFFIXES")
	bindEnv("configmap-name", "HOMER_SYNC_CONFIGMAP_NAME")
	bindEnv("configmap-namespace", "HOMER_SYNC_CONFIGMAP_NAMESPACE")
	bindEnv("daemon", "HOMER_SYNC_DAEMON_MODE")
	bindEnv("scan-interval", "HOMER_SYNC_SCAN_INTERVAL")
	bindEnv("log-level", "HOMER_SYNC_LOG_LEVEL")
	bindEnv("title", "HOMER_SYNC_TITLE")
	bindEnv("subtitle", "HOMER_SYNC_SUBTITLE")
	bindEnv("columns", "HOMER_SYNC_COLUMNS")
	bindEnv("template-path", "HOMER_SYNC_TEMPLATE_PATH")

	return cmd
}

func run(_ *cobra.Command, _ []string) error {
	cfg := buildConfig()
	setupLogging(cfg.LogLevel)

	log := ctrl.Log.WithName("homer-sync")
	log.Info("Starting",
		"version", version.Version,
		"daemon", cfg.Daemon,
		"interval", cfg.ScanInterval,
		"gateways", cfg.GatewayNames,
		"domainSuffixes", cfg.DomainSuffixes,
	)

	restConfig, err := ctrl.GetConfig()
	if err != nil {
		return errors.Wrap(err, "failed loading kubernetes config")
	}

	scheme := runtime.NewScheme()
	controllers.RegisterSchemes(scheme)

	cli, err := client.New(restConfig, client.Options{Scheme: scheme})
	if err != nil {
		return errors.Wrap(err, "failed creating kubernetes client")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reconciler := &controllers.DashboardReconciler{
		Client: cli,
		Log:    ctrl.Log.WithName("controllers").WithName("dashboard"),
		Config: cfg,
	}
	return reconciler.Start(ctx)
}

// buildConfig assembles the immutable runtime configuration from viper
// (flags and environment variables combined).
func buildConfig() *config.Config {
	namespace := viper.GetString("configmap-namespace")
	if namespace == "" {
		namespace = config.DetectNamespace()
	}

	return &config.Config{
		GatewayNames:       listSetting("gateway-names"),
		DomainSuffixes:     listSetting("domain-suffixes"),
		ConfigMapName:      viper.GetString("configmap-name"),
		ConfigMapNamespace: namespace,
		Daemon:             viper.GetBool("daemon"),
		ScanInterval:       time.Duration(viper.GetInt("scan-interval")) * time.Second,
		LogLevel:           viper.GetString("log-level"),
		Title:              viper.GetString("title"),
		Subtitle:           viper.GetString("subtitle"),
		Columns:            viper.GetInt("columns"),
		TemplatePath:       viper.GetString("template-path"),
	}
}

// listSetting reads a list-valued setting, splitting comma-separated entries
// so both repeated flags and single env var values work.
func listSetting(key string) []string {
	var out []string
	for _, raw := range viper.GetStringSlice(key) {
		out = append(out, config.SplitList(raw)...)
	}
	return out
}

func setupLogging(level string) {
	opts := zap.Options{
		TimeEncoder: zapcore.TimeEncoderOfLayout(time.RFC3339),
		Level:       config.ParseLogLevel(level),
	}
	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))
}
