/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ENTITYCTL_DYNAMODB_TABLE.
const EnvPrefix = "ENTITYCTL"

// Config is the configuration of the entityctl tooling.
type Config struct {
	Log      Log      `mapstructure:"log"`
	Seed     Seed     `mapstructure:"seed"`
	DynamoDB DynamoDB `mapstructure:"dynamodb"`
}

// Log configures logging.
type Log struct {
	Level string `mapstructure:"level"`
}

// Seed lists the seed files loaded by "entityctl seed".
type Seed struct {
	Files []string `mapstructure:"files"`
}

// DynamoDB configures the DynamoDB seed source.
type DynamoDB struct {
	Region    string `mapstructure:"region"`
	Table     string `mapstructure:"table"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string `mapstructure:"endpoint"`
	// PartitionKey is the attribute holding the kind partition.
	PartitionKey string `mapstructure:"partition_key"`
	// PartitionTemplate is expanded with {Kind} to select a kind's partition.
	PartitionTemplate string `mapstructure:"partition_template"`
	// IndexName optionally queries a secondary index instead of the table.
	IndexName string `mapstructure:"index_name"`
}

// Enabled reports whether a table is configured.
func (d DynamoDB) Enabled() bool {
	return d.Table != ""
}

var defaults = map[string]any{
	"log.level":                   "info",
	"seed.files":                  []string{},
	"dynamodb.region":             "us-east-1",
	"dynamodb.table":              "",
	"dynamodb.access_key":         "",
	"dynamodb.secret_key":         "",
	"dynamodb.endpoint":           "",
	"dynamodb.partition_key":      "PK",
	"dynamodb.partition_template": "KIND#{Kind}",
	"dynamodb.index_name":         "",
}

// Load builds the configuration from defaults, the optional config file at
// path, a .env file in the working directory and ENTITYCTL_* variables, in
// increasing order of precedence. A missing config file or .env is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound) || stderrors.Is(err, fs.ErrNotExist)
}
