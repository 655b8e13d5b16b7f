package config

type ProvidersConfig struct {
	Stripe StripeConfig `yaml:"stripe"`
	Paddle PaddleConfig `yaml:"paddle"`
	Paypal PaypalConfig `yaml:"paypal"`
}

// StripeConfig configures the full-service gateway used for larger and
// cross-border transactions.
type StripeConfig struct {
	Enabled             bool     `yaml:"enabled"`
	APIKey              string   `yaml:"api_key"`
	SupportedCountries  []string `yaml:"supported_countries"`
	SupportedCurrencies []string `yaml:"supported_currencies"`
	MinAmount           string   `yaml:"min_amount"`
	MaxAmount           string   `yaml:"max_amount"`
}

// PaddleConfig configures the checkout-link gateway used for smaller
// domestic transactions.
type PaddleConfig struct {
	Enabled             bool     `yaml:"enabled"`
	VendorID            string   `yaml:"vendor_id"`
	APIKey              string   `yaml:"api_key"`
	APIURL              string   `yaml:"api_url"`
	ReturnURL           string   `yaml:"return_url"`
	SupportedCountries  []string `yaml:"supported_countries"`
	SupportedCurrencies []string `yaml:"supported_currencies"`
}

type PaypalConfig struct {
	Enabled             bool     `yaml:"enabled"`
	ClientID            string   `yaml:"client_id"`
	ClientSecret        string   `yaml:"client_secret"`
	SupportedCountries  []string `yaml:"supported_countries"`
	SupportedCurrencies []string `yaml:"supported_currencies"`
}
