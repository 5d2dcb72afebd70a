package model

// Singleton rows. Each table holds at most one row with ID = SingletonID.
const SingletonID uint = 1

type ThemeConfig struct {
	ID             uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	PrimaryColor   string `json:"primary_color"`
	BrandNameColor string `json:"brand_name_color"`
	FontFamily     string `json:"font_family"`
}

func (ThemeConfig) TableName() string {
	return "theme_config"
}

type SocialConfig struct {
	ID        uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}

func (SocialConfig) TableName() string {
	return "social_config"
}

type AddressConfig struct {
	ID          uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	AddressText string `json:"address_text"`
	MapsURL     string `gorm:"column:maps_url" json:"maps_url"`
}

func (AddressConfig) TableName() string {
	return "address_config"
}

type AppConfig struct {
	ID              uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	BrandName       string `json:"brand_name"`
	ShowLogo        bool   `gorm:"not null" json:"show_logo"`
	LogoURL         string `gorm:"column:logo_url" json:"logo_url"`
	HeroMessage     string `gorm:"type:text" json:"hero_message"`
	ShowHeroMessage bool   `gorm:"not null" json:"show_hero_message"`
	HeroImage       string `json:"hero_image"`
	FontSizeBase    int    `json:"font_size_base"`
	FooterText      string `json:"footer_text"`
}

func (AppConfig) TableName() string {
	return "app_config"
}
