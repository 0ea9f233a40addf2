// Package catalogue loads the orderable products and their prices.
package catalogue

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var validate = validator.New()

// Config is the on-disk catalogue layout.
type Config struct {
	Club     string            `yaml:"club" validate:"required"`
	Currency string            `yaml:"currency" validate:"required,len=3,uppercase"`
	Products []string          `yaml:"products" validate:"required,min=1,unique,dive,required"`
	Pricing  map[string]string `yaml:"pricing" validate:"required,dive,keys,required,endkeys,required,numeric"`
}

// Catalogue is a read-only product list with unit prices.
type Catalogue struct {
	club     string
	currency string
	products []string
	prices   map[string]decimal.Decimal
}

// New returns a catalogue over the given products and prices. Products
// without a price are kept; looking up their price fails.
func New(club, currency string, products []string, prices map[string]decimal.Decimal) *Catalogue {
	c := &Catalogue{
		club:     club,
		currency: currency,
		products: append([]string(nil), products...),
		prices:   make(map[string]decimal.Decimal, len(prices)),
	}
	for name, price := range prices {
		c.prices[name] = price
	}
	return c
}

// Default returns the built-in catalogue.
func Default() (*Catalogue, error) {
	c, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("default catalogue: %w", err)
	}
	return c, nil
}

// Load reads a catalogue YAML file.
func Load(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalogue %q: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalogue %q: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalogue document.
func Parse(data []byte) (*Catalogue, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, describe(err)
	}

	prices := make(map[string]decimal.Decimal, len(cfg.Pricing))
	for name, raw := range cfg.Pricing {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("price of %q: %w", name, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("price of %q is negative", name)
		}
		prices[strings.TrimSpace(name)] = price
	}

	products := make([]string, len(cfg.Products))
	for i, p := range cfg.Products {
		products[i] = strings.TrimSpace(p)
	}
	return New(cfg.Club, cfg.Currency, products, prices), nil
}

// Products returns the product names in report order.
func (c *Catalogue) Products() []string {
	return append([]string(nil), c.products...)
}

// UnitPrice returns the price of a product.
func (c *Catalogue) UnitPrice(name string) (decimal.Decimal, bool) {
	p, ok := c.prices[name]
	return p, ok
}

// Club returns the club name.
func (c *Catalogue) Club() string { return c.club }

// Currency returns the ISO 4217 currency code of the prices.
func (c *Catalogue) Currency() string { return c.currency }

// describe flattens validator errors into one message.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid catalogue: %s", strings.Join(msgs, "; "))
}
