package seed

import (
	"fmt"
	"strings"
	"unicode"

	"catalog-service/internal/models"

	"github.com/go-playground/validator/v10"
)

// Family describes one phone model and every storage and color it ships in
type Family struct {
	Name        string              `validate:"required"`
	Brand       string              `validate:"required"`
	Description string              `validate:"required"`
	Highlights  []string            `validate:"dive,required"`
	Colors      []string            `validate:"min=1,unique,dive,required"`
	Tiers       []Tier              `validate:"min=1,dive"`
	Images      map[string][]string `validate:"required,dive,keys,required,endkeys,min=1,dive,url"`
}

// Tier is a storage option with its pricing
type Tier struct {
	Storage string `validate:"required"`
	MRP     int64  `validate:"gt=0"`
	Price   int64  `validate:"gt=0,ltefield=MRP"`
}

var validate = validator.New()

// Validate checks a family definition, including that every color has images
func (f Family) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("family %q: %w", f.Name, err)
	}
	for _, color := range f.Colors {
		if len(f.Images[color]) == 0 {
			return fmt.Errorf("family %q: no images for color %q", f.Name, color)
		}
	}
	return nil
}

// Expand turns family definitions into products, storage tiers outermost,
// each carrying the EMI ladder for its price.
func Expand(families []Family) ([]models.Product, error) {
	var products []models.Product
	slugs := make(map[string]struct{})

	for _, f := range families {
		if err := f.Validate(); err != nil {
			return nil, err
		}

		for _, tier := range f.Tiers {
			for _, color := range f.Colors {
				slug := Slug(f.Name, tier.Storage, color)
				if _, dup := slugs[slug]; dup {
					return nil, fmt.Errorf("duplicate slug %q", slug)
				}
				slugs[slug] = struct{}{}

				products = append(products, models.Product{
					Slug:        slug,
					Name:        f.Name,
					Brand:       f.Brand,
					Variant:     tier.Storage,
					Color:       color,
					Description: f.Description,
					Highlights:  append([]string{}, f.Highlights...),
					MRP:         tier.MRP,
					Price:       tier.Price,
					ImageURLs:   append([]string{}, f.Images[color]...),
					EMIPlans:    Plans(tier.Price),
				})
			}
		}
	}
	return products, nil
}

// Slug joins name, variant and color into a lowercase hyphenated key
func Slug(parts ...string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(strings.Join(parts, " ")) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
