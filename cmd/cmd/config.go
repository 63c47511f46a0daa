// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/errors"
	"github.com/ostafen/restorext/internal/fs"
	"github.com/ostafen/restorext/internal/logger"
	"github.com/ostafen/restorext/internal/signature"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "RESTOREXT"

type Config struct {
	Database string
	LogLevel string
	LogFile  string
	DryRun   bool
}

func defineConfigFlags(cmd *cobra.Command, v *viper.Viper) {
	pflags := cmd.PersistentFlags()
	pflags.String("config", "", "config file (default $HOME/.config/"+AppName+"/config.yaml)")
	pflags.String("database", "", "path of a signature database to use instead of the bundled one")
	pflags.String("log-level", logger.DefaultLevel.String(), "log level (DEBUG, INFO, WARN, ERROR)")
	pflags.String("log-file", "", "append logs to this file instead of stderr")

	cmd.Flags().Bool("dry-run", false, "report the new file name without renaming")

	_ = v.BindPFlag("database", pflags.Lookup("database"))
	_ = v.BindPFlag("log_level", pflags.Lookup("log-level"))
	_ = v.BindPFlag("log_file", pflags.Lookup("log-file"))
	_ = v.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}

// loadConfig merges flags, environment and the config file. A missing default
// config file is not an error; an explicit one must be readable.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (Config, error) {
	configFile, _ := cmd.Flags().GetString("config")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, errors.CodeInvalidConfig, "failed to read config file %q", configFile)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(home, ".config", AppName))

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file")
			}
		}
	}

	return Config{
		Database: v.GetString("database"),
		LogLevel: v.GetString("log_level"),
		LogFile:  v.GetString("log_file"),
		DryRun:   v.GetBool("dry_run"),
	}, nil
}

// session holds what a command needs once configuration is resolved.
type session struct {
	cfg      Config
	log      *slog.Logger
	closeLog func() error
}

func newSession(cmd *cobra.Command, v *viper.Viper) (*session, error) {
	cfg, err := loadConfig(cmd, v)
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logger.Open(cfg.LogFile, level, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		log:      log,
		closeLog: closeLog,
	}, nil
}

func (s *session) Close() error {
	return s.closeLog()
}

// Database loads the configured signature database, or the bundled one.
func (s *session) Database() *signature.Database {
	if s.cfg.Database == "" {
		return signature.Default(s.log)
	}

	fsys, path := fs.Resolve(s.cfg.Database)
	return signature.LoadFile(fsys, path, s.log)
}
