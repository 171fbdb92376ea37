package config

import (
	"errors"
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// InputStdin makes the command read its input document from standard input.
	InputStdin = "-"

	envPrefix = "FINDMEETING"
)

// Config holds the command settings.
// Precedence: flags, environment (FINDMEETING_*), config file, defaults.
type Config struct {
	InputPath   string `mapstructure:"input" valid:"required"`
	InputFormat string `mapstructure:"input_format" valid:"in(yaml|yml|json)"`
	LogLevel    string `mapstructure:"log_level" valid:"in(debug|info|warn|error)"`
	Env         string `mapstructure:"env" valid:"in(development|production)"`
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load parses the command line arguments, without the program name,
// and merges them with the other configuration sources.
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("findmeeting", pflag.ContinueOnError)

	configFile := flags.String("config", "", "path to a configuration file")
	flags.String("input", "", "path to the input document, - for standard input")
	flags.String("input-format", "", "input document format when read from standard input")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("env", "", "development or production")

	if errParse := flags.Parse(args); errParse != nil {
		return nil,
			fmt.Errorf("parse flags: %w", errParse)
	}

	v := viper.New()

	v.SetDefault("input", InputStdin)
	v.SetDefault("input_format", "yaml")
	v.SetDefault("log_level", "info")
	v.SetDefault("env", EnvProduction)

	for key, flagName := range map[string]string{
		"input":        "input",
		"input_format": "input-format",
		"log_level":    "log-level",
		"env":          "env",
	} {
		if errBind := v.BindPFlag(key, flags.Lookup(flagName)); errBind != nil {
			return nil,
				fmt.Errorf("bind flag %s: %w", flagName, errBind)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if len(*configFile) > 0 {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName("findmeeting")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if errRead := v.ReadInConfig(); errRead != nil {
		var errNotFound viper.ConfigFileNotFoundError

		if len(*configFile) > 0 || !errors.As(errRead, &errNotFound) {
			return nil,
				fmt.Errorf("read config: %w", errRead)
		}
	}

	var result Config

	if errUnmarshal := v.Unmarshal(&result); errUnmarshal != nil {
		return nil,
			fmt.Errorf("unmarshal config: %w", errUnmarshal)
	}

	if _, errValidation := govalidator.ValidateStruct(&result); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "findmeeting",
				Caller:      "config.Load",
				Issue:       errValidation,
			}
	}

	return &result,
		nil
}
