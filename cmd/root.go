/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/internal/iofs"
	"github.com/gnames/gncamtrap/internal/iologger"
	app "github.com/gnames/gncamtrap/pkg"
	"github.com/gnames/gncamtrap/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = getRootCmd()

func getRootCmd() *cobra.Command {
	res := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gncamtrap",
		Short:   "Ensembles camera-trap detector and classifier outputs",
		Long: `gncamtrap combines outputs of an animal detector and a species
classifier into one prediction per camera-trap image.

Predictions are checked against geographic ranges of taxa (geofence)
and low-confidence species predictions are rolled up to genus,
family, order, class or kingdom.

Taxonomy and geofence files are read from ~/.config/gncamtrap
unless other locations are configured.`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "gncamtrap version" prefix
	res.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	res.Flags().BoolP("version", "V", false, "version for gncamtrap")

	res.PersistentFlags().IntP("jobs", "j", 0,
		"number of concurrent workers (default: number of CPUs)")

	res.AddCommand(
		getEnsembleCmd(),
		getAncestorsCmd(),
		getGeofenceCmd(),
		getConfigCmd(),
	)
	return res
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if jobs, _ := cmd.Flags().GetInt("jobs"); jobs > 0 {
		cfg.Update([]config.Option{config.OptJobsNumber(jobs)})
	}

	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	iologger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions(), the persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNCAMTRAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Ensemble configuration
	v.BindEnv("ensemble.taxonomy_path", "GNCAMTRAP_ENSEMBLE_TAXONOMY_PATH")
	v.BindEnv("ensemble.geofence_path", "GNCAMTRAP_ENSEMBLE_GEOFENCE_PATH")
	v.BindEnv("ensemble.geofence_fix_path", "GNCAMTRAP_ENSEMBLE_GEOFENCE_FIX_PATH")
	v.BindEnv("ensemble.geofence_enabled", "GNCAMTRAP_ENSEMBLE_GEOFENCE_ENABLED")

	// Output configuration
	v.BindEnv("output.format", "GNCAMTRAP_OUTPUT_FORMAT")
	v.BindEnv("output.store", "GNCAMTRAP_OUTPUT_STORE")
	v.BindEnv("output.sqlite_path", "GNCAMTRAP_OUTPUT_SQLITE_PATH")

	// Database configuration
	v.BindEnv("database.host", "GNCAMTRAP_DATABASE_HOST")
	v.BindEnv("database.port", "GNCAMTRAP_DATABASE_PORT")
	v.BindEnv("database.user", "GNCAMTRAP_DATABASE_USER")
	v.BindEnv("database.password", "GNCAMTRAP_DATABASE_PASSWORD")
	v.BindEnv("database.database", "GNCAMTRAP_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "GNCAMTRAP_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "GNCAMTRAP_DATABASE_BATCH_SIZE")

	// Log configuration
	v.BindEnv("log.level", "GNCAMTRAP_LOG_LEVEL")
	v.BindEnv("log.format", "GNCAMTRAP_LOG_FORMAT")
	v.BindEnv("log.destination", "GNCAMTRAP_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNCAMTRAP_JOBS_NUMBER")

	v.AutomaticEnv()
}
