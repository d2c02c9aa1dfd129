package shop

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Products []productSeed `yaml:"products"`
}

type productSeed struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	Currency    string  `yaml:"currency"`
	Stock       int     `yaml:"stock"`
	Category    string  `yaml:"category"`
}

// DefaultCatalog parses the embedded demo catalog, pricing it in currency.
func DefaultCatalog(currency string) ([]*Product, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalog), currency)
}

// LoadCatalog decodes a YAML product list. Entries without a currency are
// priced in currency.
func LoadCatalog(r io.Reader, currency string) ([]*Product, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Products))
	out := make([]*Product, 0, len(f.Products))
	for i, ps := range f.Products {
		if ps.ID == "" {
			return nil, fmt.Errorf("catalog product %d: missing id", i)
		}
		if _, dup := seen[ps.ID]; dup {
			return nil, fmt.Errorf("catalog product %s: %w", ps.ID, ErrDuplicateID)
		}
		seen[ps.ID] = struct{}{}

		cur := ps.Currency
		if cur == "" {
			cur = currency
		}
		price, err := NewMoney(ps.Price, cur)
		if err != nil {
			return nil, fmt.Errorf("catalog product %s price: %w", ps.ID, err)
		}
		p, err := NewProduct(ps.ID, ps.Name, ps.Description, price, ps.Stock, ps.Category)
		if err != nil {
			return nil, fmt.Errorf("catalog product %s: %w", ps.ID, err)
		}
		out = append(out, p)
	}
	return out, nil
}
