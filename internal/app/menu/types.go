package menu

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Reserved category ids with storefront meaning.
const (
	CategoryAll         = "all"
	CategoryChefsChoice = "chefs-choice"
)

var ErrInvalidProduct = errors.New("invalid product")

type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	SecondaryPrice   *float64 `json:"secondaryPrice,omitempty"`
	Image            string   `json:"image,omitempty"`
	Category         string   `json:"category"`
	IsFeatured       bool     `json:"isFeatured"`
	IsVisible        bool     `json:"isVisible"`
	AvailableOptions []string `json:"availableOptions,omitempty"`
}

// DualPrice reports whether the product carries two priced options.
func (p Product) DualPrice() bool {
	return p.SecondaryPrice != nil
}

// Validate checks the pricing invariants of a product.
func (p Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if p.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidProduct)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if p.SecondaryPrice != nil {
		if *p.SecondaryPrice < 0 {
			return fmt.Errorf("%w: secondary price must not be negative", ErrInvalidProduct)
		}
		if len(p.AvailableOptions) != 2 {
			return fmt.Errorf("%w: dual-price products need exactly 2 options", ErrInvalidProduct)
		}
		return nil
	}
	if len(p.AvailableOptions) > 1 {
		return fmt.Errorf("%w: single-price products allow at most 1 option", ErrInvalidProduct)
	}
	return nil
}

// PriceEntry is one priced option as shown on a menu card.
type PriceEntry struct {
	Option string  `json:"option,omitempty"`
	Price  float64 `json:"price"`
}

// PriceList returns one entry for single-price products and two entries for
// dual-price products.
func (p Product) PriceList() []PriceEntry {
	if p.SecondaryPrice == nil {
		entry := PriceEntry{Price: p.Price}
		if len(p.AvailableOptions) > 0 {
			entry.Option = p.AvailableOptions[0]
		}
		return []PriceEntry{entry}
	}
	first, second := "", ""
	if len(p.AvailableOptions) > 0 {
		first = p.AvailableOptions[0]
	}
	if len(p.AvailableOptions) > 1 {
		second = p.AvailableOptions[1]
	}
	return []PriceEntry{
		{Option: first, Price: p.Price},
		{Option: second, Price: *p.SecondaryPrice},
	}
}

// PriceFor returns the price of the given option label.
func (p Product) PriceFor(option string) (float64, bool) {
	for _, entry := range p.PriceList() {
		if entry.Option == option {
			return entry.Price, true
		}
	}
	if option == "" {
		return p.Price, true
	}
	return 0, false
}

type Category struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	SortOrder int    `json:"sortOrder"`
}

type ThemeConfig struct {
	PrimaryColor   string `json:"primaryColor"`
	BrandNameColor string `json:"brandNameColor"`
	FontFamily     string `json:"fontFamily"`
}

type SocialConfig struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}

type AddressConfig struct {
	Text    string `json:"text"`
	MapsURL string `json:"mapsUrl"`
}

type AppConfig struct {
	BrandName       string `json:"brand_name"`
	ShowLogo        bool   `json:"show_logo"`
	LogoURL         string `json:"logo_url"`
	HeroMessage     string `json:"hero_message"`
	ShowHeroMessage bool   `json:"show_hero_message"`
	HeroImage       string `json:"hero_image"`
	FontSizeBase    int    `json:"font_size_base"`
	FooterText      string `json:"footer_text"`
}

// AllConfig groups the storefront look-and-contact singletons.
type AllConfig struct {
	Theme   ThemeConfig   `json:"theme"`
	Social  SocialConfig  `json:"social"`
	Address AddressConfig `json:"address"`
}

// NullableFloat distinguishes an absent JSON field from an explicit null.
type NullableFloat struct {
	Set   bool
	Valid bool
	Value float64
}

func (n *NullableFloat) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n NullableFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// ProductPatch is a sparse product update. Nil fields are left untouched.
type ProductPatch struct {
	Name             *string       `json:"name,omitempty"`
	Description      *string       `json:"description,omitempty"`
	Price            *float64      `json:"price,omitempty"`
	SecondaryPrice   NullableFloat `json:"secondaryPrice"`
	Image            *string       `json:"image,omitempty"`
	Category         *string       `json:"category,omitempty"`
	IsFeatured       *bool         `json:"isFeatured,omitempty"`
	IsVisible        *bool         `json:"isVisible,omitempty"`
	AvailableOptions *[]string     `json:"availableOptions,omitempty"`
}

// Apply returns a copy of p with the patch fields applied.
func (patch ProductPatch) Apply(p Product) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.SecondaryPrice.Set {
		if patch.SecondaryPrice.Valid {
			v := patch.SecondaryPrice.Value
			p.SecondaryPrice = &v
		} else {
			p.SecondaryPrice = nil
		}
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
	if patch.IsVisible != nil {
		p.IsVisible = *patch.IsVisible
	}
	if patch.AvailableOptions != nil {
		p.AvailableOptions = append([]string(nil), (*patch.AvailableOptions)...)
	}
	return p
}

// Validate checks the fields the patch carries on their own.
func (patch ProductPatch) Validate() error {
	if patch.Name != nil && *patch.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if patch.Category != nil && *patch.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidProduct)
	}
	if patch.Price != nil && *patch.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if patch.SecondaryPrice.Valid && patch.SecondaryPrice.Value < 0 {
		return fmt.Errorf("%w: secondary price must not be negative", ErrInvalidProduct)
	}
	if patch.AvailableOptions != nil {
		n := len(*patch.AvailableOptions)
		if n > 2 {
			return fmt.Errorf("%w: at most 2 options", ErrInvalidProduct)
		}
		if patch.SecondaryPrice.Set {
			if patch.SecondaryPrice.Valid && n != 2 {
				return fmt.Errorf("%w: dual-price products need exactly 2 options", ErrInvalidProduct)
			}
			if !patch.SecondaryPrice.Valid && n > 1 {
				return fmt.Errorf("%w: single-price products allow at most 1 option", ErrInvalidProduct)
			}
		}
	}
	return nil
}

// ThemePatch, AppConfigPatch, SocialPatch and AddressPatch carry sparse
// singleton updates.
type ThemePatch struct {
	PrimaryColor   *string `json:"primaryColor,omitempty"`
	BrandNameColor *string `json:"brandNameColor,omitempty"`
	FontFamily     *string `json:"fontFamily,omitempty"`
}

type AppConfigPatch struct {
	BrandName       *string `json:"brand_name,omitempty"`
	ShowLogo        *bool   `json:"show_logo,omitempty"`
	LogoURL         *string `json:"logo_url,omitempty"`
	HeroMessage     *string `json:"hero_message,omitempty"`
	ShowHeroMessage *bool   `json:"show_hero_message,omitempty"`
	HeroImage       *string `json:"hero_image,omitempty"`
	FontSizeBase    *int    `json:"font_size_base,omitempty"`
	FooterText      *string `json:"footer_text,omitempty"`
}

type SocialPatch struct {
	Instagram *string `json:"instagram,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
}

type AddressPatch struct {
	Text    *string `json:"text,omitempty"`
	MapsURL *string `json:"mapsUrl,omitempty"`
}

func (p ThemePatch) Apply(t ThemeConfig) ThemeConfig {
	assign(&t.PrimaryColor, p.PrimaryColor)
	assign(&t.BrandNameColor, p.BrandNameColor)
	assign(&t.FontFamily, p.FontFamily)
	return t
}

func (p SocialPatch) Apply(s SocialConfig) SocialConfig {
	assign(&s.Instagram, p.Instagram)
	assign(&s.Facebook, p.Facebook)
	return s
}

func (p AddressPatch) Apply(a AddressConfig) AddressConfig {
	assign(&a.Text, p.Text)
	assign(&a.MapsURL, p.MapsURL)
	return a
}

func (p AppConfigPatch) Apply(a AppConfig) AppConfig {
	assign(&a.BrandName, p.BrandName)
	assign(&a.ShowLogo, p.ShowLogo)
	assign(&a.LogoURL, p.LogoURL)
	assign(&a.HeroMessage, p.HeroMessage)
	assign(&a.ShowHeroMessage, p.ShowHeroMessage)
	assign(&a.HeroImage, p.HeroImage)
	assign(&a.FontSizeBase, p.FontSizeBase)
	assign(&a.FooterText, p.FooterText)
	return a
}

func assign[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
