// internal/domain/settings/defaults.go
package settings

// DefaultNavLinks returns the navigation every new session starts with
func DefaultNavLinks() []NavLinkItem {
	return []NavLinkItem{
		{ID: 1, Text: "Home", Path: "/", Enabled: true},
		{ID: 2, Text: "Shopping", Path: "/shopping", Enabled: true},
		{ID: 3, Text: "About Us", Path: "/about", Enabled: true},
		{ID: 4, Text: "Services", Path: "/services", Enabled: true},
		{ID: 5, Text: "Contact Us", Path: "/contact", Enabled: true},
		{ID: 6, Text: "Favorites", Path: "/favorites", Enabled: true},
	}
}

// DefaultSettings returns the fully populated initial configuration. No field
// is ever left at its zero value; the storefront renders from this object
// until the admin publishes an edit.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		LogoURL:    "https://swafwans.github.io/Whitespot/logo.png",
		LogoWidth:  150,
		LogoHeight: 40,

		NavLinks:        DefaultNavLinks(),
		ShowAuthButtons: true,

		Facebook:  "https://www.facebook.com/profile.php?id=100091728812950",
		Instagram: "https://www.instagram.com/yasirperfumes/?hl=en",
		YouTube:   "https://www.youtube.com/channel/UCu9R2vLWv_EGjtx2AhqBZGw",

		HeroTitle:      "The Essence of Luxury",
		HeroSubtitle:   "Discover a world of exquisite fragrances, crafted for the modern connoisseur.",
		HeroButtonText: "Explore Collection",
		HeroImageURL:   "https://picsum.photos/seed/hero/1920/1080",

		Banners: []Banner{},

		PrimaryColor:              "#F59E0B",
		BackgroundColor:           "#030712",
		CardBackgroundColor:       "#111827",
		TextColor:                 "#E5E7EB",
		AccentTextColor:           "#FFFFFF",
		SectionTitleColor:         "#FFFFFF",
		SectionSubtitleColor:      "#F59E0B",
		SectionTextColor:          "#D1D5DB",
		HomeParallaxTitleColor:    "#FFFFFF",
		HomeParallaxSubtitleColor: "#D1D5DB",

		HeroTitleFontSize:       "text-4xl md:text-6xl",
		HeroTitleFontFamily:     "serif",
		HeroSubtitleFontSize:    "text-lg md:text-xl",
		PageTitleFontSize:       "text-4xl md:text-5xl",
		SectionTitleFontSize:    "text-3xl md:text-4xl",
		SectionTitleFontFamily:  "serif",
		SectionSubtitleFontSize: "text-sm",
		SectionTextFontSize:     "text-base",

		ContainerWidth:  "max-w-7xl",
		CardImageHeight: "h-64",

		CardBorderRadius:    8,
		CardPadding:         1,
		CardTitleFontSize:   "text-lg",
		CardTitleFontWeight: "font-semibold",
		CardPriceFontSize:   "text-base",
		CardButtonText:      "Add to Cart",
		CardShadow:          true,
		CardOutline:         false,

		HomeAboutImageURL:    "https://picsum.photos/seed/abouthome/800/600",
		HomeParallaxImageURL: "https://picsum.photos/seed/parallax1/1920/1080",
		HomeParallaxTitle:    "Perfumes for a Life Time",
		HomeParallaxSubtitle: "We thrive for perfection, diversity, sophistication and excellence in all our products. We became creative with everything from the product itself to choosing distinctive designs for all our perfume bottles that preserve our Arabian culture and heritage.",

		AboutPageHistoryImageURL: "https://picsum.photos/seed/aboutpage/800/900",

		PrivacyPolicyContent: "<h2>Privacy Policy</h2><p>Your privacy is important to us. It is our policy to respect your privacy regarding any information we may collect from you across our website. We only ask for personal information when we truly need it to provide a service to you. We collect it by fair and lawful means, with your knowledge and consent. We also let you know why we’re collecting it and how it will be used.</p>",
		TermsContent:         "<h2>Terms & Conditions</h2><p>By accessing this website, you are agreeing to be bound by these website Terms and Conditions of Use, all applicable laws and regulations, and agree that you are responsible for compliance with any applicable local laws. If you do not agree with any of these terms, you are prohibited from using or accessing this site. The materials contained in this website are protected by applicable copyright and trade mark law.</p>",
		RefundContent:        "<h2>Refund & Cancellation Policy</h2><p>We have a 30-day return policy, which means you have 30 days after receiving your item to request a return. To be eligible for a return, your item must be in the same condition that you received it, unworn or unused, with tags, and in its original packaging. You’ll also need the receipt or proof of purchase.</p>",
	}
}
