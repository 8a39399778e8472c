package config

// Config represents the complete configuration structure
type Config struct {
	FatSecret FatSecretConfig `mapstructure:"fatsecret"`
	Filter    FilterConfig    `mapstructure:"filter"`
	Safety    SafetyConfig    `mapstructure:"safety"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// FatSecretConfig holds the API consumer credentials and, once the user has
// authorized the app, the stored access token pair.
type FatSecretConfig struct {
	ConsumerKey    string `mapstructure:"consumer_key"`
	ConsumerSecret string `mapstructure:"consumer_secret"`
	AccessToken    string `mapstructure:"access_token"`
	AccessSecret   string `mapstructure:"access_secret"`
}

// HasAccessToken reports whether a complete access token pair is stored.
func (c FatSecretConfig) HasAccessToken() bool {
	return c.AccessToken != "" && c.AccessSecret != ""
}

// FilterConfig contains filter definitions for search commands
type FilterConfig struct {
	DefaultExpression string            `mapstructure:"default_expression"`
	Presets           map[string]string `mapstructure:"presets"`
}

// SafetyConfig contains output-related settings
type SafetyConfig struct {
	ShowDetails bool `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
