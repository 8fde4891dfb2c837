package config

import "github.com/spf13/viper"

// Config holds the runtime settings for the transform and worklist tools.
// The geographic destination fields are constants of the target directory
// site; they are never derived from record or cache content.
type Config struct {
	City    string `mapstructure:"CITY"`
	Region  string `mapstructure:"REGION"`
	Country string `mapstructure:"COUNTRY"`

	CacheFile   string `mapstructure:"CACHE_FILE"`
	MappingFile string `mapstructure:"MAPPING_FILE"`

	PostType      string `mapstructure:"POST_TYPE"`
	DefaultAuthor string `mapstructure:"DEFAULT_AUTHOR"`
	DefaultStatus string `mapstructure:"DEFAULT_STATUS"`
	DefaultStreet string `mapstructure:"DEFAULT_STREET"`

	// CategoryMatch selects how filter names are compared against taxonomy
	// tokens: "contains" or "exact".
	CategoryMatch string `mapstructure:"CATEGORY_MATCH"`
}

// LoadConfig reads configuration from a config.yaml in the given directory,
// with environment variables taking precedence.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("CITY", "St. Croix")
	viper.SetDefault("REGION", "VI")
	viper.SetDefault("COUNTRY", "United States")
	viper.SetDefault("CACHE_FILE", "address_cache.json")
	viper.SetDefault("MAPPING_FILE", "categories_and_tags.json")
	viper.SetDefault("POST_TYPE", "gd_listing_new")
	viper.SetDefault("DEFAULT_AUTHOR", "1")
	viper.SetDefault("DEFAULT_STATUS", "publish")
	viper.SetDefault("DEFAULT_STREET", "123 King Street")
	viper.SetDefault("CATEGORY_MATCH", "contains")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
