package itunes

import (
	"github.com/spf13/viper"
	"github.com/tunesearch-cli/tunesearch/key"
)

// NewFromConfig returns a Client for the configured endpoint.
func NewFromConfig() *Client {
	if endpoint := viper.GetString(key.ItunesEndpoint); endpoint != "" {
		return New(WithEndpoint(endpoint))
	}
	return New()
}

// ParamsFromConfig fills search parameters for term from the configured defaults.
func ParamsFromConfig(term string) Params {
	return Params{
		Term:    term,
		Country: viper.GetString(key.ItunesCountry),
		Media:   viper.GetString(key.ItunesMedia),
		Entity:  viper.GetString(key.ItunesEntity),
		Limit:   viper.GetInt(key.ItunesLimit),
		Lang:    viper.GetString(key.ItunesLang),
	}
}
