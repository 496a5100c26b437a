package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// loadConfig loads optional tool configuration using Viper. A missing
// config file is fine; defaults and B58UUID_* environment variables apply.
func loadConfig() {
	viper.SetConfigName("b58uuid-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.b58uuid")
	viper.AddConfigPath("/etc/b58uuid")

	viper.SetDefault("no_color", false)
	viper.SetDefault("generate_count", 1)

	viper.SetEnvPrefix("B58UUID")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file: %v\n", err)
		}
	}
}
