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

	"github.com/brickmanlab/ngsdb/internal/iofs"
	"github.com/brickmanlab/ngsdb/internal/iologger"
	app "github.com/brickmanlab/ngsdb/pkg"
	"github.com/brickmanlab/ngsdb/pkg/config"
	"github.com/gnames/gn"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
	runID   string
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "ngsdb",
		Short:   "NGSdb rebuilds the SQLite catalogue of NGS assays",
		Long: `NGSdb rebuilds the SQLite catalogue of NGS assays from metadata.yml
and description.yml files kept in every assay directory of the project.

One 'ngsdb init' run:
  1. backs up the current catalogue (single .db.backup generation)
  2. creates tables from the versioned remote SQL schema
  3. collects assay metadata files
  4. validates their fields against the remote field schema
  5. fills lookup tables and the assay table in one transaction

Configuration precedence (highest to lowest):
  1. CLI flags (--database, --project-root, etc.)
  2. Environment variables (NGSDB_*)
  3. Config file (~/.config/ngsdb/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (database.path -> NGSDB_DATABASE_PATH).

  Examples:
    NGSDB_DATABASE_PATH             Catalogue file
    NGSDB_DATABASE_DRIVER           sqlite (pure Go) or sqlite3 (cgo)
    NGSDB_SCHEMA_VERSION            Pinned schema version
    NGSDB_ASSAYS_PROJECT_ROOT       Project root with assays directory
    NGSDB_LOG_LEVEL                 Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "ngsdb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for ngsdb")

	addConfigFlags(rootCmd)

	rootCmd.AddCommand(
		getInitCmd(),
		getValidateCmd(),
		getBackupCmd(),
		getRestoreCmd(),
	)

	return rootCmd
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

	// flags win over config file and environment
	cfg.Update(configOptions(cmd))

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	runID = uuid.NewString()
	slog.SetDefault(slog.Default().With("run_id", runID))

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
		"database", cfg.Database.Path,
		"driver", cfg.Database.Driver,
		"schema_version", cfg.Schema.Version,
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Creates log file in the proper location now that we know HomeDir.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
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
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("NGSDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.path", "NGSDB_DATABASE_PATH")
	v.BindEnv("database.driver", "NGSDB_DATABASE_DRIVER")
	v.BindEnv("database.backup_suffix", "NGSDB_DATABASE_BACKUP_SUFFIX")

	// Schema configuration
	v.BindEnv("schema.version", "NGSDB_SCHEMA_VERSION")
	v.BindEnv("schema.sql_url", "NGSDB_SCHEMA_SQL_URL")
	v.BindEnv("schema.fields_url", "NGSDB_SCHEMA_FIELDS_URL")
	v.BindEnv("schema.encoding", "NGSDB_SCHEMA_ENCODING")

	// Assays configuration
	v.BindEnv("assays.project_root", "NGSDB_ASSAYS_PROJECT_ROOT")
	v.BindEnv("assays.dir", "NGSDB_ASSAYS_DIR")

	// Log configuration
	v.BindEnv("log.level", "NGSDB_LOG_LEVEL")
	v.BindEnv("log.format", "NGSDB_LOG_FORMAT")
	v.BindEnv("log.destination", "NGSDB_LOG_DESTINATION")

	v.AutomaticEnv()
}
