package settings

import (
	"reflect"
	"testing"
)

func TestDefaultSettingsPassValidation(t *testing.T) {
	defaults := DefaultSettings()
	if err := defaults.Validate(); err != nil {
		t.Errorf("default settings failed validation: %v", err)
	}
}

func TestGetReturnsDeepCopy(t *testing.T) {
	store := NewStore()

	first := store.Get()
	first.NavLinks[0].Text = "Hacked"
	first.PrimaryColor = "#000000"

	second := store.Get()
	if second.NavLinks[0].Text == "Hacked" {
		t.Error("mutating a returned copy leaked into the store")
	}
	if second.PrimaryColor == "#000000" {
		t.Error("scalar mutation leaked into the store")
	}
}

func TestReplaceSwapsWholeAggregate(t *testing.T) {
	store := NewStore()

	next := store.Get()
	next.HeroTitle = "Summer Collection"
	next.PrimaryColor = "#10B981"
	next.NavLinks[0].Text = "Start"
	next.Banners = append(next.Banners, Banner{ID: 42, Title: "Sale", Enabled: true})

	if err := store.Replace(next); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}

	got := store.Get()
	if !reflect.DeepEqual(got, next) {
		t.Error("committed settings differ from the replacement object")
	}
	if got.NavLinks[0].ID != next.NavLinks[0].ID {
		t.Error("nav link ids were not preserved across replace")
	}
}

func TestReplaceRejectsInvalidEnumValue(t *testing.T) {
	store := NewStore()
	before := store.Get()

	next := store.Get()
	next.ContainerWidth = "max-w-9xl"

	if err := store.Replace(next); err == nil {
		t.Fatal("Replace accepted a container width outside the option set")
	}

	// A rejected replace leaves the committed settings untouched.
	if !reflect.DeepEqual(store.Get(), before) {
		t.Error("committed settings changed after a rejected replace")
	}
}

func TestValidateChecksEveryEnumField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SiteSettings)
	}{
		{"card_image_height", func(s *SiteSettings) { s.CardImageHeight = "h-999" }},
		{"hero_title_font_family", func(s *SiteSettings) { s.HeroTitleFontFamily = "cursive" }},
		{"card_title_font_weight", func(s *SiteSettings) { s.CardTitleFontWeight = "font-heavy" }},
		{"negative radius", func(s *SiteSettings) { s.CardBorderRadius = -1 }},
		{"negative padding", func(s *SiteSettings) { s.CardPadding = -4 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Error("Validate accepted an invalid value")
			}
		})
	}
}

func TestAddBannerAssignsUniqueIDs(t *testing.T) {
	s := DefaultSettings()

	a := s.AddBanner(Banner{Title: "First"})
	b := s.AddBanner(Banner{Title: "Second"})

	if a.ID == b.ID {
		t.Errorf("two added banners share id %d", a.ID)
	}
	if !a.Enabled || !b.Enabled {
		t.Error("new banners must start enabled")
	}

	seen := make(map[int64]bool)
	for _, banner := range s.Banners {
		if seen[banner.ID] {
			t.Errorf("duplicate banner id %d", banner.ID)
		}
		seen[banner.ID] = true
	}
}

func TestUpdateBannerKeepsPosition(t *testing.T) {
	s := DefaultSettings()
	s.Banners = []Banner{
		{ID: 10, Title: "One", Enabled: true},
		{ID: 20, Title: "Two", Enabled: true},
		{ID: 30, Title: "Three", Enabled: true},
	}

	if !s.UpdateBanner(Banner{ID: 20, Title: "Two Updated", Enabled: false}) {
		t.Fatal("UpdateBanner reported banner 20 as missing")
	}

	if s.Banners[1].Title != "Two Updated" {
		t.Errorf("banner at position 1 = %q, want the updated title", s.Banners[1].Title)
	}
	if s.Banners[0].ID != 10 || s.Banners[2].ID != 30 {
		t.Error("neighboring banners moved during an update")
	}

	if s.UpdateBanner(Banner{ID: 99, Title: "Ghost"}) {
		t.Error("UpdateBanner reported success for an absent id")
	}
	if len(s.Banners) != 3 {
		t.Errorf("banner count = %d, want 3", len(s.Banners))
	}
}

func TestToggleBannerFlipsInPlace(t *testing.T) {
	s := DefaultSettings()
	s.Banners = []Banner{
		{ID: 10, Title: "One", Enabled: true},
		{ID: 20, Title: "Two", Enabled: true},
	}

	if !s.ToggleBanner(10) {
		t.Fatal("ToggleBanner reported banner 10 as missing")
	}
	if s.Banners[0].Enabled {
		t.Error("banner 10 still enabled after toggle")
	}
	if s.Banners[0].ID != 10 {
		t.Error("toggle reordered the banner sequence")
	}

	s.ToggleBanner(10)
	if !s.Banners[0].Enabled {
		t.Error("second toggle did not restore the enabled flag")
	}

	if s.ToggleBanner(99) {
		t.Error("ToggleBanner reported success for an absent id")
	}
}

func TestRemoveBanner(t *testing.T) {
	s := DefaultSettings()
	s.Banners = []Banner{
		{ID: 10, Title: "One"},
		{ID: 20, Title: "Two"},
	}

	s.RemoveBanner(10)
	s.RemoveBanner(10)

	if len(s.Banners) != 1 || s.Banners[0].ID != 20 {
		t.Errorf("banners = %+v, want only id 20", s.Banners)
	}
}

func TestEnabledBannersFiltersInOrder(t *testing.T) {
	s := SiteSettings{Banners: []Banner{
		{ID: 1, Enabled: true},
		{ID: 2, Enabled: false},
		{ID: 3, Enabled: true},
	}}

	got := s.EnabledBanners()
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("enabled banners = %+v, want ids [1 3]", got)
	}
}

func TestUpdateNavLinkKeepsPosition(t *testing.T) {
	s := DefaultSettings()
	originalFirst := s.NavLinks[0]

	target := s.NavLinks[2]
	target.Text = "Our Story"
	target.Enabled = false

	if !s.UpdateNavLink(target) {
		t.Fatal("UpdateNavLink reported the link as missing")
	}
	if s.NavLinks[2].Text != "Our Story" || s.NavLinks[2].Enabled {
		t.Errorf("nav link at position 2 = %+v, want the updated link", s.NavLinks[2])
	}
	if s.NavLinks[0] != originalFirst {
		t.Error("unrelated nav link changed during an update")
	}

	if s.UpdateNavLink(NavLinkItem{ID: 99, Text: "Ghost"}) {
		t.Error("UpdateNavLink reported success for an absent id")
	}
}

func TestCloneIsolatesSequences(t *testing.T) {
	original := DefaultSettings()
	original.Banners = []Banner{{ID: 1, Title: "One", Enabled: true}}

	clone := original.Clone()
	clone.NavLinks[0].Text = "Changed"
	clone.Banners[0].Title = "Changed"

	if original.NavLinks[0].Text == "Changed" {
		t.Error("clone aliases the nav link slice")
	}
	if original.Banners[0].Title == "Changed" {
		t.Error("clone aliases the banner slice")
	}
}
