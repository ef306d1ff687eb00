// internal/domain/settings/entity.go
package settings

import "fmt"

// NavLinkItem represents one configurable top-navigation entry. Sequence order
// is display order.
type NavLinkItem struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Path    string `json:"path"`
	Enabled bool   `json:"enabled"`
}

// Banner represents one promotional hero slide. Only enabled banners are shown
// to shoppers, in stored order.
type Banner struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"image_url"`
	ButtonText string `json:"button_text,omitempty"`
	ButtonLink string `json:"button_link,omitempty"`
	Enabled    bool   `json:"enabled"`
}

// SiteSettings is the single aggregate controlling theme, copy and layout for
// the whole site. Every field always has a value; admin edits replace the
// entire object atomically, never field by field.
//
// The three *Content fields hold admin-authored HTML that is served verbatim.
// That is a deliberate trust boundary: only the authenticated admin can write
// these fields, and no sanitization happens on read or write. They must never
// be fed from untrusted input.
type SiteSettings struct {
	// Branding
	LogoURL    string `json:"logo_url"`
	LogoWidth  int    `json:"logo_width"`
	LogoHeight int    `json:"logo_height"`

	// Navigation
	NavLinks        []NavLinkItem `json:"nav_links"`
	ShowAuthButtons bool          `json:"show_auth_buttons"`

	// Social links
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`

	// Hero content
	HeroTitle      string `json:"hero_title"`
	HeroSubtitle   string `json:"hero_subtitle"`
	HeroButtonText string `json:"hero_button_text"`
	HeroImageURL   string `json:"hero_image_url"`

	// Promotional banners
	Banners []Banner `json:"banners"`

	// Color tokens
	PrimaryColor             string `json:"primary_color"`
	BackgroundColor          string `json:"background_color"`
	CardBackgroundColor      string `json:"card_background_color"`
	TextColor                string `json:"text_color"`
	AccentTextColor          string `json:"accent_text_color"`
	SectionTitleColor        string `json:"section_title_color"`
	SectionSubtitleColor     string `json:"section_subtitle_color"`
	SectionTextColor         string `json:"section_text_color"`
	HomeParallaxTitleColor   string `json:"home_parallax_title_color"`
	HomeParallaxSubtitleColor string `json:"home_parallax_subtitle_color"`

	// Typography tokens
	HeroTitleFontSize       string `json:"hero_title_font_size"`
	HeroTitleFontFamily     string `json:"hero_title_font_family"`
	HeroSubtitleFontSize    string `json:"hero_subtitle_font_size"`
	PageTitleFontSize       string `json:"page_title_font_size"`
	SectionTitleFontSize    string `json:"section_title_font_size"`
	SectionTitleFontFamily  string `json:"section_title_font_family"`
	SectionSubtitleFontSize string `json:"section_subtitle_font_size"`
	SectionTextFontSize     string `json:"section_text_font_size"`

	// Layout tokens
	ContainerWidth  string `json:"container_width"`
	CardImageHeight string `json:"card_image_height"`

	// Card appearance
	CardBorderRadius    int    `json:"card_border_radius"`
	CardPadding         int    `json:"card_padding"`
	CardTitleFontSize   string `json:"card_title_font_size"`
	CardTitleFontWeight string `json:"card_title_font_weight"`
	CardPriceFontSize   string `json:"card_price_font_size"`
	CardButtonText      string `json:"card_button_text"`
	CardShadow          bool   `json:"card_shadow"`
	CardOutline         bool   `json:"card_outline"`

	// Home page sections
	HomeAboutImageURL    string `json:"home_about_image_url"`
	HomeParallaxImageURL string `json:"home_parallax_image_url"`
	HomeParallaxTitle    string `json:"home_parallax_title"`
	HomeParallaxSubtitle string `json:"home_parallax_subtitle"`

	// About page
	AboutPageHistoryImageURL string `json:"about_page_history_image_url"`

	// Rich-text blocks, trusted admin-authored markup (see type comment)
	PrivacyPolicyContent string `json:"privacy_policy_content"`
	TermsContent         string `json:"terms_content"`
	RefundContent        string `json:"refund_content"`
}

// Enumerated option sets for styling fields. The admin form offers exactly
// these values; Replace rejects anything outside them.
var (
	ContainerWidthOptions = []string{"max-w-5xl", "max-w-6xl", "max-w-7xl", "max-w-full"}

	// Card image shapes: fixed-medium, fixed-tall, square, landscape, portrait
	CardImageHeightOptions = []string{"h-56", "h-64", "h-80", "aspect-square", "aspect-video", "aspect-[3/4]"}

	FontFamilyOptions = []string{"serif", "sans-serif", "monospace"}

	HeroTitleFontSizeOptions    = []string{"text-3xl md:text-5xl", "text-4xl md:text-6xl", "text-5xl md:text-7xl"}
	HeroSubtitleFontSizeOptions = []string{"text-base md:text-lg", "text-lg md:text-xl"}
	PageTitleFontSizeOptions    = []string{"text-3xl md:text-4xl", "text-4xl md:text-5xl"}

	SectionTitleFontSizeOptions    = []string{"text-2xl md:text-3xl", "text-3xl md:text-4xl"}
	SectionSubtitleFontSizeOptions = []string{"text-xs", "text-sm", "text-base"}
	SectionTextFontSizeOptions     = []string{"text-sm", "text-base", "text-lg"}

	CardTitleFontSizeOptions   = []string{"text-base", "text-lg", "text-xl"}
	CardTitleFontWeightOptions = []string{"font-normal", "font-medium", "font-semibold", "font-bold"}
	CardPriceFontSizeOptions   = []string{"text-sm", "text-base", "text-lg"}
)

// Validate checks that every enumerated styling field holds one of its allowed
// values. Content fields are not validated; the admin form owns those.
func (s *SiteSettings) Validate() error {
	checks := []struct {
		field   string
		value   string
		options []string
	}{
		{"container_width", s.ContainerWidth, ContainerWidthOptions},
		{"card_image_height", s.CardImageHeight, CardImageHeightOptions},
		{"hero_title_font_size", s.HeroTitleFontSize, HeroTitleFontSizeOptions},
		{"hero_title_font_family", s.HeroTitleFontFamily, FontFamilyOptions},
		{"hero_subtitle_font_size", s.HeroSubtitleFontSize, HeroSubtitleFontSizeOptions},
		{"page_title_font_size", s.PageTitleFontSize, PageTitleFontSizeOptions},
		{"section_title_font_size", s.SectionTitleFontSize, SectionTitleFontSizeOptions},
		{"section_title_font_family", s.SectionTitleFontFamily, FontFamilyOptions},
		{"section_subtitle_font_size", s.SectionSubtitleFontSize, SectionSubtitleFontSizeOptions},
		{"section_text_font_size", s.SectionTextFontSize, SectionTextFontSizeOptions},
		{"card_title_font_size", s.CardTitleFontSize, CardTitleFontSizeOptions},
		{"card_title_font_weight", s.CardTitleFontWeight, CardTitleFontWeightOptions},
		{"card_price_font_size", s.CardPriceFontSize, CardPriceFontSizeOptions},
	}

	for _, c := range checks {
		if !contains(c.options, c.value) {
			return fmt.Errorf("invalid value %q for %s", c.value, c.field)
		}
	}

	if s.CardBorderRadius < 0 {
		return fmt.Errorf("card_border_radius cannot be negative")
	}
	if s.CardPadding < 0 {
		return fmt.Errorf("card_padding cannot be negative")
	}

	return nil
}

// Clone returns a deep copy of the settings, including the nav-link and banner
// sequences, so a draft can be edited without aliasing committed state.
func (s SiteSettings) Clone() SiteSettings {
	out := s

	out.NavLinks = make([]NavLinkItem, len(s.NavLinks))
	copy(out.NavLinks, s.NavLinks)

	out.Banners = make([]Banner, len(s.Banners))
	copy(out.Banners, s.Banners)

	return out
}

// EnabledBanners returns only the banners shoppers should see, in stored order
func (s *SiteSettings) EnabledBanners() []Banner {
	out := make([]Banner, 0, len(s.Banners))
	for _, b := range s.Banners {
		if b.Enabled {
			out = append(out, b)
		}
	}
	return out
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
