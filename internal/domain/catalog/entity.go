// internal/domain/catalog/entity.go
package catalog

// Product represents a fragrance in the catalog
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // Price in whole rupees
	ImageURL    string `json:"image_url"`
	Notes       Notes  `json:"notes"`
}

// Notes describes the fragrance pyramid of a product
type Notes struct {
	Top    string `json:"top"`
	Middle string `json:"middle"`
	Base   string `json:"base"`
}

// SeedProducts returns the initial catalog every new session starts with
func SeedProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Noir Enigma",
			Description: "A mysterious and captivating fragrance that blends spicy top notes with a rich, woody base. Perfect for evening wear.",
			Price:       10000,
			ImageURL:    "https://picsum.photos/seed/perfume1/800/800",
			Notes: Notes{
				Top:    "Black Pepper, Cardamom",
				Middle: "Oud, Sandalwood",
				Base:   "Vanilla, Tonka Bean",
			},
		},
		{
			ID:          2,
			Name:        "Azure Dream",
			Description: "A fresh and invigorating scent reminiscent of a coastal breeze. Citrus and marine notes awaken the senses.",
			Price:       7500,
			ImageURL:    "https://picsum.photos/seed/perfume2/800/800",
			Notes: Notes{
				Top:    "Bergamot, Lemon, Sea Salt",
				Middle: "Jasmine, Neroli",
				Base:   "Ambergris, Cedarwood",
			},
		},
		{
			ID:          3,
			Name:        "Golden Serenity",
			Description: "A warm and luxurious perfume with floral and amber accords. It radiates elegance and sophistication.",
			Price:       12000,
			ImageURL:    "https://picsum.photos/seed/perfume3/800/800",
			Notes: Notes{
				Top:    "Saffron, Jasmine",
				Middle: "Amberwood, Ambergris",
				Base:   "Fir Resin, Cedar",
			},
		},
		{
			ID:          4,
			Name:        "Velvet Rose",
			Description: "A modern take on a classic rose scent. Rich, velvety, and deeply romantic with a hint of smoky oud.",
			Price:       11000,
			ImageURL:    "https://picsum.photos/seed/perfume4/800/800",
			Notes: Notes{
				Top:    "Bulgarian Rose, May Rose",
				Middle: "Turkish Rose, Patchouli",
				Base:   "Oud, Sandalwood",
			},
		},
		{
			ID:          5,
			Name:        "Citrus Grove",
			Description: "A vibrant and zesty fragrance that captures the essence of a sun-drenched citrus orchard. Uplifting and energetic.",
			Price:       7000,
			ImageURL:    "https://picsum.photos/seed/perfume5/800/800",
			Notes: Notes{
				Top:    "Grapefruit, Mandarin Orange",
				Middle: "Basil, Thyme",
				Base:   "Vetiver, Patchouli",
			},
		},
		{
			ID:          6,
			Name:        "Midnight Oud",
			Description: "An intense and powerful fragrance centered around precious oud wood. For those who dare to make a statement.",
			Price:       14500,
			ImageURL:    "https://picsum.photos/seed/perfume6/800/800",
			Notes: Notes{
				Top:    "Incense, Raspberry",
				Middle: "Oud, Leather",
				Base:   "Amber, Benzoin",
			},
		},
	}
}
