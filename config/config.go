package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode     string `mapstructure:"mode"`
	Handlers struct {
		Prometheus struct {
			Port string `mapstructure:"port"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Providers struct {
		Amadeus struct {
			BaseURL      string        `mapstructure:"baseURL"`
			ClientID     string        `mapstructure:"clientID"`
			ClientSecret string        `mapstructure:"clientSecret"`
			Timeout      time.Duration `mapstructure:"timeout"`
		} `mapstructure:"amadeus"`
		OpenWeather struct {
			BaseURL string        `mapstructure:"baseURL"`
			APIKey  string        `mapstructure:"apiKey"`
			Timeout time.Duration `mapstructure:"timeout"`
		} `mapstructure:"openweather"`
	} `mapstructure:"providers"`
	Aggregation struct {
		FetchTimeout time.Duration `mapstructure:"fetchTimeout"`
		ResultTTL    time.Duration `mapstructure:"resultTTL"`
	} `mapstructure:"aggregation"`
	Server struct {
		HTTPPort string        `mapstructure:"HTTPPort"`
		Timeout  time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	// Add file-based config paths
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// Provider credentials come from the environment, never from the file.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("providers.amadeus.clientID", "AMADEUS_CLIENT_ID")
	_ = v.BindEnv("providers.amadeus.clientSecret", "AMADEUS_CLIENT_SECRET")
	_ = v.BindEnv("providers.openweather.apiKey", "OPENWEATHER_API_KEY")

	// Try to load file-based config
	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	// Unmarshal the config into the Config struct
	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}
