// Package catalog holds the destination packages shown on the menu page.
package catalog

import (
	_ "embed"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed destinations.yaml
var defaultYAML []byte

type Destination struct {
	Name    string `yaml:"name"`
	Country string `yaml:"country"`
	Price   int64  `yaml:"price"`
	Nights  int    `yaml:"nights"`
	Image   string `yaml:"image"`
	Blurb   string `yaml:"blurb"`
}

// CheckoutURL links the card to the quick checkout flow.
func (d Destination) CheckoutURL() string {
	q := url.Values{}
	q.Set("destination", d.Name)
	q.Set("price", strconv.FormatInt(d.Price, 10))
	return "/checkout-destination/?" + q.Encode()
}

type Catalog struct {
	Destinations []Destination `yaml:"destinations"`
}

// Parse decodes a catalog document and rejects entries without a name or with a negative price.
func Parse(raw []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	for i, d := range c.Destinations {
		if strings.TrimSpace(d.Name) == "" {
			return Catalog{}, fmt.Errorf("parse catalog: destination %d has no name", i)
		}
		if d.Price < 0 {
			return Catalog{}, fmt.Errorf("parse catalog: %s has a negative price", d.Name)
		}
	}
	return c, nil
}

// Default returns the embedded catalog.
func Default() Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Find looks a destination up by name, case-insensitively.
func (c Catalog) Find(name string) (Destination, bool) {
	for _, d := range c.Destinations {
		if strings.EqualFold(d.Name, strings.TrimSpace(name)) {
			return d, true
		}
	}
	return Destination{}, false
}
