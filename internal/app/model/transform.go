package model

import (
	"github.com/ikkim/creme-backend/internal/app/menu"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ToMenu maps a product row to the storefront shape. A null secondary price
// becomes an absent optional.
func (p Product) ToMenu() menu.Product {
	out := menu.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Image:       p.Image,
		Category:    p.Category,
		IsFeatured:  p.IsFeatured,
		IsVisible:   p.IsVisible,
	}
	if p.SecondaryPrice.Valid {
		v := p.SecondaryPrice.Decimal.InexactFloat64()
		out.SecondaryPrice = &v
	}
	if len(p.AvailableOptions) > 0 {
		out.AvailableOptions = append([]string(nil), p.AvailableOptions...)
	}
	return out
}

func ProductFromMenu(p menu.Product) Product {
	row := Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       decimal.NewFromFloat(p.Price).Round(2),
		Image:       p.Image,
		Category:    p.Category,
		IsFeatured:  p.IsFeatured,
		IsVisible:   p.IsVisible,
	}
	if p.SecondaryPrice != nil {
		row.SecondaryPrice = decimal.NewNullDecimal(decimal.NewFromFloat(*p.SecondaryPrice).Round(2))
	}
	row.AvailableOptions = append([]string{}, p.AvailableOptions...)
	return row
}

// ProductColumns returns the columns a sparse patch touches.
func ProductColumns(patch menu.ProductPatch) map[string]interface{} {
	cols := map[string]interface{}{}
	if patch.Name != nil {
		cols["name"] = *patch.Name
	}
	if patch.Description != nil {
		cols["description"] = *patch.Description
	}
	if patch.Price != nil {
		cols["price"] = decimal.NewFromFloat(*patch.Price).Round(2)
	}
	if patch.SecondaryPrice.Set {
		if patch.SecondaryPrice.Valid {
			cols["secondary_price"] = decimal.NewNullDecimal(decimal.NewFromFloat(patch.SecondaryPrice.Value).Round(2))
		} else {
			cols["secondary_price"] = decimal.NullDecimal{}
		}
	}
	if patch.Image != nil {
		cols["image"] = *patch.Image
	}
	if patch.Category != nil {
		cols["category"] = *patch.Category
	}
	if patch.IsFeatured != nil {
		cols["is_featured"] = *patch.IsFeatured
	}
	if patch.IsVisible != nil {
		cols["is_visible"] = *patch.IsVisible
	}
	if patch.AvailableOptions != nil {
		cols["available_options"] = datatypes.JSONSlice[string](append([]string{}, (*patch.AvailableOptions)...))
	}
	return cols
}

func (c Category) ToMenu() menu.Category {
	return menu.Category{ID: c.ID, Label: c.Label, SortOrder: c.SortOrder}
}

func CategoryFromMenu(c menu.Category) Category {
	return Category{ID: c.ID, Label: c.Label, SortOrder: c.SortOrder}
}

// Singleton transforms fall back per field when a stored string is empty.

func (t ThemeConfig) ToMenu() menu.ThemeConfig {
	def := menu.FallbackTheme()
	return menu.ThemeConfig{
		PrimaryColor:   orDefault(t.PrimaryColor, def.PrimaryColor),
		BrandNameColor: orDefault(t.BrandNameColor, def.BrandNameColor),
		FontFamily:     orDefault(t.FontFamily, def.FontFamily),
	}
}

func ThemeConfigFromMenu(t menu.ThemeConfig) ThemeConfig {
	return ThemeConfig{
		ID:             SingletonID,
		PrimaryColor:   t.PrimaryColor,
		BrandNameColor: t.BrandNameColor,
		FontFamily:     t.FontFamily,
	}
}

func (s SocialConfig) ToMenu() menu.SocialConfig {
	def := menu.FallbackSocial()
	return menu.SocialConfig{
		Instagram: orDefault(s.Instagram, def.Instagram),
		Facebook:  orDefault(s.Facebook, def.Facebook),
	}
}

func SocialConfigFromMenu(s menu.SocialConfig) SocialConfig {
	return SocialConfig{ID: SingletonID, Instagram: s.Instagram, Facebook: s.Facebook}
}

func (a AddressConfig) ToMenu() menu.AddressConfig {
	def := menu.FallbackAddress()
	return menu.AddressConfig{
		Text:    orDefault(a.AddressText, def.Text),
		MapsURL: orDefault(a.MapsURL, def.MapsURL),
	}
}

func AddressConfigFromMenu(a menu.AddressConfig) AddressConfig {
	return AddressConfig{ID: SingletonID, AddressText: a.Text, MapsURL: a.MapsURL}
}

// ToMenu keeps the stored booleans and numbers as they are. An unset font
// size falls back to the default.
func (a AppConfig) ToMenu() menu.AppConfig {
	def := menu.FallbackAppConfig()
	out := menu.AppConfig{
		BrandName:       orDefault(a.BrandName, def.BrandName),
		ShowLogo:        a.ShowLogo,
		LogoURL:         a.LogoURL,
		HeroMessage:     a.HeroMessage,
		ShowHeroMessage: a.ShowHeroMessage,
		HeroImage:       a.HeroImage,
		FontSizeBase:    a.FontSizeBase,
		FooterText:      orDefault(a.FooterText, def.FooterText),
	}
	if out.FontSizeBase <= 0 {
		out.FontSizeBase = def.FontSizeBase
	}
	return out
}

func AppConfigFromMenu(a menu.AppConfig) AppConfig {
	return AppConfig{
		ID:              SingletonID,
		BrandName:       a.BrandName,
		ShowLogo:        a.ShowLogo,
		LogoURL:         a.LogoURL,
		HeroMessage:     a.HeroMessage,
		ShowHeroMessage: a.ShowHeroMessage,
		HeroImage:       a.HeroImage,
		FontSizeBase:    a.FontSizeBase,
		FooterText:      a.FooterText,
	}
}

// Column maps for singleton patches.

func ThemeColumns(p menu.ThemePatch) map[string]interface{} {
	cols := map[string]interface{}{}
	setString(cols, "primary_color", p.PrimaryColor)
	setString(cols, "brand_name_color", p.BrandNameColor)
	setString(cols, "font_family", p.FontFamily)
	return cols
}

func SocialColumns(p menu.SocialPatch) map[string]interface{} {
	cols := map[string]interface{}{}
	setString(cols, "instagram", p.Instagram)
	setString(cols, "facebook", p.Facebook)
	return cols
}

func AddressColumns(p menu.AddressPatch) map[string]interface{} {
	cols := map[string]interface{}{}
	setString(cols, "address_text", p.Text)
	setString(cols, "maps_url", p.MapsURL)
	return cols
}

func AppConfigColumns(p menu.AppConfigPatch) map[string]interface{} {
	cols := map[string]interface{}{}
	setString(cols, "brand_name", p.BrandName)
	setString(cols, "logo_url", p.LogoURL)
	setString(cols, "hero_message", p.HeroMessage)
	setString(cols, "hero_image", p.HeroImage)
	setString(cols, "footer_text", p.FooterText)
	if p.ShowLogo != nil {
		cols["show_logo"] = *p.ShowLogo
	}
	if p.ShowHeroMessage != nil {
		cols["show_hero_message"] = *p.ShowHeroMessage
	}
	if p.FontSizeBase != nil {
		cols["font_size_base"] = *p.FontSizeBase
	}
	return cols
}

func setString(cols map[string]interface{}, column string, v *string) {
	if v != nil {
		cols[column] = *v
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
