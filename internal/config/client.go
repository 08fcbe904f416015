package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/genvault/genvault-go/internal/model"
	"github.com/spf13/viper"
)

// Client configuration keys. Flags bound to viper use the same names.
const (
	KeyServer  = "server"
	KeyToken   = "token"
	KeyTimeout = "timeout"
	KeyLetters = "letters"
	KeyNumbers = "numbers"
	KeySymbols = "symbols"
	KeyLogFile = "log-file"
)

// ClientConfig holds settings for the genvault command-line client.
type ClientConfig struct {
	Server  string
	Token   string
	Timeout time.Duration
	Options model.GeneratorOptions
	LogFile string
}

// SetClientDefaults registers the client defaults on v.
func SetClientDefaults(v *viper.Viper) {
	opts := model.DefaultGeneratorOptions()
	v.SetDefault(KeyServer, "http://localhost:8080")
	v.SetDefault(KeyToken, "")
	v.SetDefault(KeyTimeout, 10*time.Second)
	v.SetDefault(KeyLetters, opts.Letters)
	v.SetDefault(KeyNumbers, opts.Numbers)
	v.SetDefault(KeySymbols, opts.Symbols)
	v.SetDefault(KeyLogFile, "")
}

// LoadClient resolves the client configuration from defaults, an optional
// config file, GENVAULT_* environment variables and any flags already bound
// to v. An explicit configFile must exist; the default search path
// ($HOME/.genvault.yaml, ./.genvault.yaml) may be empty.
func LoadClient(v *viper.Viper, configFile string) (ClientConfig, error) {
	SetClientDefaults(v)

	v.SetEnvPrefix("genvault")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".genvault")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return ClientConfig{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := ClientConfig{
		Server:  strings.TrimRight(v.GetString(KeyServer), "/"),
		Token:   v.GetString(KeyToken),
		Timeout: v.GetDuration(KeyTimeout),
		Options: model.GeneratorOptions{
			Letters: v.GetInt(KeyLetters),
			Numbers: v.GetInt(KeyNumbers),
			Symbols: v.GetInt(KeySymbols),
		},
		LogFile: v.GetString(KeyLogFile),
	}

	if cfg.Server == "" {
		return ClientConfig{}, errors.New("server address must not be empty")
	}

	return cfg, nil
}
