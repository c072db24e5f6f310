package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Config holds the demo configuration, loadable from environment variables
// (CHECKOUT_ prefix) or YAML config files. The defaults reproduce the fixed
// demonstration sequence, so a bare run stays deterministic.
type Config struct {
	Gateway  string `default:"stripe" usage:"Initial payment gateway (paypal, razorpay, stripe)"`
	SwitchTo string `default:"razorpay" usage:"Gateway to switch to mid-demo"`
	Amounts  AmountsConfig
}

// AmountsConfig carries the checkout amounts used by the demo run.
type AmountsConfig struct {
	First   string `default:"120.50" usage:"Amount charged through the initial gateway"`
	Second  string `default:"150.50" usage:"Amount charged after switching gateways"`
	Unbound string `default:"10.00"  usage:"Amount attempted with no gateway bound"`
}

// demoAmounts is the parsed form of AmountsConfig.
type demoAmounts struct {
	first   decimal.Decimal
	second  decimal.Decimal
	unbound decimal.Decimal
}

// LoadConfig loads configuration from environment variables and YAML config
// files. The demo takes no command-line arguments, so flag loading is skipped.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CHECKOUT",
		SkipFlags: true,
		Files:     []string{"config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}

// parse converts the configured amount strings into decimals.
func (c AmountsConfig) parse() (demoAmounts, error) {
	var (
		a   demoAmounts
		err error
	)
	if a.first, err = parseAmount("first", c.First); err != nil {
		return demoAmounts{}, err
	}
	if a.second, err = parseAmount("second", c.Second); err != nil {
		return demoAmounts{}, err
	}
	if a.unbound, err = parseAmount("unbound", c.Unbound); err != nil {
		return demoAmounts{}, err
	}
	return a, nil
}

func parseAmount(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "parse %s amount %q", name, s)
	}
	return d, nil
}
