package menu

// Static fallback dataset served whenever the remote store is unconfigured or
// a read fails. Accessors return deep copies so callers cannot mutate it.

var fallbackTheme = ThemeConfig{
	PrimaryColor:   "#e66e19",
	BrandNameColor: "#1b130e",
	FontFamily:     "'Plus Jakarta Sans', sans-serif",
}

var fallbackSocial = SocialConfig{
	Instagram: "https://instagram.com/cafeminimal",
	Facebook:  "https://facebook.com/cafeminimal_official",
}

var fallbackAddress = AddressConfig{
	Text:    "123 Coffee Street, Brew City, CA 90210",
	MapsURL: "https://www.google.com/maps/search/?api=1&query=123+Coffee+Street+Brew+City+CA+90210",
}

var fallbackAppConfig = AppConfig{
	BrandName:       "CRÈME.ge",
	ShowLogo:        true,
	LogoURL:         "",
	HeroMessage:     "Slow coffee, warm bakes, good company.",
	ShowHeroMessage: true,
	HeroImage:       "",
	FontSizeBase:    16,
	FooterText:      "© CRÈME.ge. All rights reserved.",
}

var fallbackCategories = []Category{
	{ID: CategoryAll, Label: "All", SortOrder: 0},
	{ID: CategoryChefsChoice, Label: "Chef's Selection", SortOrder: 1},
	{ID: "coffee", Label: "Coffee & Brews", SortOrder: 2},
	{ID: "tea", Label: "Premium Teas", SortOrder: 3},
	{ID: "bakery", Label: "Fresh Bakery", SortOrder: 4},
	{ID: "savory", Label: "Savory Delights", SortOrder: 5},
}

func price(v float64) *float64 { return &v }

var fallbackProducts = []Product{
	// Chef's choice
	{
		ID:          "1",
		Name:        "Avocado Toast Deluxe",
		Description: "Sourdough, poached egg, chili flakes, microgreens.",
		Price:       12.50,
		Category:    CategoryChefsChoice,
		IsFeatured:  true,
		IsVisible:   true,
		Image:       "https://images.unsplash.com/photo-1588137378633-dea1336ce1e2?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:          "cc-2",
		Name:        "Matcha Soufflé Pancakes",
		Description: "Light and airy matcha-infused pancakes served with fresh seasonal berries and pure maple syrup.",
		Price:       14.50,
		Category:    CategoryChefsChoice,
		IsFeatured:  true,
		IsVisible:   true,
		Image:       "https://images.unsplash.com/photo-1575853121743-60c24f0a7502?q=80&w=800&auto=format&fit=crop",
	},

	// Coffee
	{
		ID:               "2",
		Name:             "Classic Cappuccino",
		Description:      "Rich espresso with steamed milk foam and a dusting of cocoa.",
		Price:            4.50,
		SecondaryPrice:   price(5.00),
		Category:         "coffee",
		AvailableOptions: []string{"Hot", "Cold"},
		IsVisible:        true,
		Image:            "https://images.unsplash.com/photo-1572442388796-11668a67e53d?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:               "c-3",
		Name:             "Piccolo Latte",
		Description:      `A "little" latte made with a restricted double shot of espresso.`,
		Price:            4.80,
		Category:         "coffee",
		AvailableOptions: []string{"Hot"},
		IsVisible:        true,
	},
	{
		ID:               "c-4",
		Name:             "Flat White",
		Description:      "Espresso with microfoam (steamed milk with small, fine bubbles).",
		Price:            4.50,
		SecondaryPrice:   price(5.00),
		Category:         "coffee",
		AvailableOptions: []string{"Hot", "Cold"},
		IsVisible:        true,
	},
	{
		ID:               "c-6",
		Name:             "Spanish Latte",
		Description:      "Creamy espresso-based drink sweetened with condensed milk.",
		Price:            5.50,
		SecondaryPrice:   price(6.00),
		Category:         "coffee",
		AvailableOptions: []string{"Hot", "Cold"},
		IsVisible:        true,
		Image:            "https://images.unsplash.com/photo-1541167760496-1628856ab772?q=80&w=800&auto=format&fit=crop",
	},

	// Tea
	{
		ID:               "t-3",
		Name:             "Chamomile Bliss",
		Description:      "Soothing caffeine-free herbal infusion with honey notes.",
		Price:            3.50,
		Category:         "tea",
		AvailableOptions: []string{"Hot"},
		IsVisible:        true,
	},
	{
		ID:          "t-4",
		Name:        "Earl Grey Reserve",
		Description: "Classic black tea infused with double bergamot and blue cornflowers.",
		Price:       4.50,
		Category:    "tea",
		IsVisible:   true,
	},
	{
		ID:               "t-5",
		Name:             "Hojicha Latte",
		Description:      "Roasted green tea with a nutty, smoky flavor and velvety milk.",
		Price:            5.50,
		SecondaryPrice:   price(6.00),
		Category:         "tea",
		AvailableOptions: []string{"Hot", "Cold"},
		IsVisible:        true,
		Image:            "https://images.unsplash.com/photo-1594631252845-29fc4586c55c?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:               "t-6",
		Name:             "Oolong Milk Tea",
		Description:      "Robust oolong tea leaves blended with creamy milk and cane sugar.",
		Price:            5.00,
		SecondaryPrice:   price(5.50),
		Category:         "tea",
		AvailableOptions: []string{"Hot", "Cold"},
		IsVisible:        true,
	},

	// Bakery
	{
		ID:          "b-1",
		Name:        "Pain au Chocolat",
		Description: "French dark chocolate wrapped in 81 layers of buttery dough.",
		Price:       4.25,
		Category:    "bakery",
		IsVisible:   true,
		Image:       "https://images.unsplash.com/photo-1530610476181-d83430b64dcd?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:          "b-2",
		Name:        "Classic Butter Croissant",
		Description: "Traditional flaky, crescent-shaped pastry made with premium butter.",
		Price:       3.80,
		Category:    "bakery",
		IsVisible:   true,
		Image:       "https://images.unsplash.com/photo-1555507036-ab1f4038808a?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:          "b-3",
		Name:        "Almond Croissant",
		Description: "Twice-baked with almond frangipane and topped with toasted flakes.",
		Price:       4.90,
		Category:    "bakery",
		IsVisible:   true,
		Image:       "https://images.unsplash.com/photo-1509440159596-0249088772ff?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:          "b-4",
		Name:        "Blueberry Crumble Muffin",
		Description: "Bursting with fresh blueberries and topped with a brown sugar streusel.",
		Price:       3.50,
		Category:    "bakery",
		IsVisible:   true,
	},
	{
		ID:          "b-5",
		Name:        "Cinnamon Swirl Roll",
		Description: "Soft brioche dough with Ceylon cinnamon and cream cheese glaze.",
		Price:       4.50,
		Category:    "bakery",
		IsVisible:   true,
		Image:       "https://images.unsplash.com/photo-1509365465985-25d11c17e812?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:          "b-6",
		Name:        "Lemon Poppyseed Scone",
		Description: "Crumbly, buttery scone with fresh lemon zest and poppyseeds.",
		Price:       3.90,
		Category:    "bakery",
		IsVisible:   true,
	},

	// Savory
	{
		ID:          "s-1",
		Name:        "Smoked Salmon Bagel",
		Description: "Everything bagel, cream cheese, capers, red onion, dill.",
		Price:       11.50,
		Category:    "savory",
		IsVisible:   true,
		Image:       "https://images.unsplash.com/photo-1533089860892-a7c6f0a88666?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:          "s-2",
		Name:        "Classic Chicken Sandwich",
		Description: "Grilled chicken breast with avocado, lettuce, and herb mayo.",
		Price:       10.50,
		Category:    "savory",
		IsVisible:   true,
	},
	{
		ID:          "s-3",
		Name:        "Roasted Veggie Wrap",
		Description: "Hummus, roasted peppers, zucchini, and spinach in a whole wheat wrap.",
		Price:       9.00,
		Category:    "savory",
		IsVisible:   true,
	},
	{
		ID:          "s-4",
		Name:        "Beef & Mushroom Pie",
		Description: "Slow-cooked beef and button mushrooms in a rich gravy.",
		Price:       8.50,
		Category:    "savory",
		IsVisible:   true,
		Image:       "https://images.unsplash.com/photo-1604467731651-40479f649808?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:               "s-5",
		Name:             "Crystal Prawn Dumplings",
		Description:      "Translucent skins filled with whole succulent prawns and bamboo shoots.",
		Price:            12.00,
		SecondaryPrice:   price(14.50),
		AvailableOptions: []string{"Steamed", "Baked"},
		Category:         "savory",
		IsVisible:        true,
		Image:            "https://images.unsplash.com/photo-1496116218417-1a781b1c416c?q=80&w=800&auto=format&fit=crop",
	},
	{
		ID:               "s-8",
		Name:             "BBQ Chicken Bao",
		Description:      "Soft white buns with honey-glazed BBQ chicken filling.",
		Price:            6.00,
		SecondaryPrice:   price(7.20),
		AvailableOptions: []string{"Steamed", "Baked"},
		Category:         "savory",
		IsVisible:        true,
	},
	{
		ID:               "s-9",
		Name:             "Curry Puff Trio",
		Description:      "Crispy pastry filled with spiced potato, chicken, and egg.",
		Price:            4.50,
		SecondaryPrice:   price(5.50),
		AvailableOptions: []string{"Steamed", "Baked"},
		Category:         "savory",
		IsVisible:        true,
	},
}

// FallbackProducts returns every fallback product, hidden ones included.
func FallbackProducts() []Product {
	out := make([]Product, len(fallbackProducts))
	for i, p := range fallbackProducts {
		out[i] = cloneProduct(p)
	}
	return out
}

// FallbackVisibleProducts returns the fallback products shown on the storefront.
func FallbackVisibleProducts() []Product {
	return VisibleOnly(FallbackProducts())
}

func FallbackCategories() []Category {
	return append([]Category(nil), fallbackCategories...)
}

func FallbackTheme() ThemeConfig { return fallbackTheme }

func FallbackSocial() SocialConfig { return fallbackSocial }

func FallbackAddress() AddressConfig { return fallbackAddress }

func FallbackAppConfig() AppConfig { return fallbackAppConfig }

// VisibleOnly drops products explicitly hidden from the storefront.
func VisibleOnly(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.IsVisible {
			out = append(out, p)
		}
	}
	return out
}

func cloneProduct(p Product) Product {
	if p.SecondaryPrice != nil {
		v := *p.SecondaryPrice
		p.SecondaryPrice = &v
	}
	if p.AvailableOptions != nil {
		p.AvailableOptions = append([]string(nil), p.AvailableOptions...)
	}
	return p
}
