package compose

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds site-wide composition settings.
// Embed this in your app config, or load it from a YAML file with LoadConfig.
type Config struct {
	// SiteName substitutes the #site_name# macro.
	SiteName string `yaml:"site_name"`

	// SiteLink substitutes the #site_link# macro.
	SiteLink string `yaml:"site_link"`

	// MasterAddress receives mail composed without a recipient.
	MasterAddress string `yaml:"master_address"`

	// FromAddress is the default sender when neither the caller nor the
	// rendition supplies one.
	FromAddress string `yaml:"from_address"`

	// UnsubscribeURL is the base URL for #unsubscribe_link# macros. When
	// empty, the macro is left unresolved.
	UnsubscribeURL string `yaml:"unsubscribe_url"`

	// UnsubscribeSecret signs unsubscribe link tokens.
	UnsubscribeSecret string `yaml:"unsubscribe_secret"`
}

// LoadConfig reads a Config from a YAML file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("compose: failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("compose: failed to parse config: %w", err)
	}
	return cfg, nil
}
