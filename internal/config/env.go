package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	TagFilePath    string `envconfig:"TAG_FILE_PATH" required:"true"`
	SolanaRPCURL   string `envconfig:"SOLANA_RPC_URL" default:"https://api.mainnet-beta.solana.com"`
	EthereumRPCURL string `envconfig:"ETHEREUM_RPC_URL" default:"https://ethereum-rpc.publicnode.com"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetTagFilePath returns the path of the file-backed tag store
func GetTagFilePath() string {
	return Get().TagFilePath
}

// GetSolanaRPCURL returns Solana RPC URL from configuration
func GetSolanaRPCURL() string {
	return Get().SolanaRPCURL
}

// GetEthereumRPCURL returns Ethereum RPC URL from configuration
func GetEthereumRPCURL() string {
	return Get().EthereumRPCURL
}
