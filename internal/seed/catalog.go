package seed

const (
	iphoneImage  = "https://images.unsplash.com/photo-1621330396173-e41b1cafd17f?q=80&w=1000&auto=format&fit=crop"
	galaxyImage  = "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?q=80&w=1000&auto=format&fit=crop"
	pixelImage   = "https://images.unsplash.com/photo-1596742578443-7682ef5251cd?q=80&w=1000&auto=format&fit=crop"
	onePlusImage = "https://images.unsplash.com/photo-1598327105666-5b89351aff97?q=80&w=1000&auto=format&fit=crop"
)

// DefaultCatalog is the demo catalog written by the seed command
func DefaultCatalog() []Family {
	return []Family{
		{
			Name:        "Apple iPhone 17 Pro",
			Brand:       "Apple",
			Description: "Titanium design with the A19 Pro chip, a 48MP Fusion camera system and all-day battery life.",
			Highlights: []string{
				"6.3-inch Super Retina XDR display with ProMotion",
				"A19 Pro chip",
				"48MP Fusion, Ultra Wide and 5x Telephoto cameras",
				"USB-C with USB 3 speeds",
			},
			Colors: []string{"Titanium Silver", "Titanium Black", "Desert Titanium"},
			Tiers: []Tier{
				{Storage: "256GB", MRP: 139900, Price: 129900},
				{Storage: "512GB", MRP: 159900, Price: 149900},
				{Storage: "1TB", MRP: 179900, Price: 169900},
			},
			Images: map[string][]string{
				"Titanium Silver": {iphoneImage, iphoneImage + "&sat=-100"},
				"Titanium Black":  {iphoneImage + "&blend=000000&blend-mode=multiply", iphoneImage},
				"Desert Titanium": {iphoneImage + "&sepia=40", iphoneImage},
			},
		},
		{
			Name:        "Samsung Galaxy S24 Ultra",
			Brand:       "Samsung",
			Description: "Galaxy AI on a titanium frame with a built-in S Pen and a 200MP wide camera.",
			Highlights: []string{
				"6.8-inch QHD+ Dynamic AMOLED 2X, 120Hz",
				"Snapdragon 8 Gen 3 for Galaxy",
				"200MP + 50MP + 12MP + 10MP rear cameras",
				"Built-in S Pen",
			},
			Colors: []string{"Titanium Gray", "Titanium Black", "Titanium Violet"},
			Tiers: []Tier{
				{Storage: "256GB", MRP: 129900, Price: 119900},
				{Storage: "512GB", MRP: 139900, Price: 129900},
			},
			Images: map[string][]string{
				"Titanium Gray":   {galaxyImage, galaxyImage + "&sat=-100"},
				"Titanium Black":  {galaxyImage + "&blend=000000&blend-mode=multiply", galaxyImage},
				"Titanium Violet": {galaxyImage + "&hue=270", galaxyImage},
			},
		},
		{
			Name:        "Google Pixel 9 Pro",
			Brand:       "Google",
			Description: "Google Tensor G4 with Gemini built in, a triple rear camera and seven years of updates.",
			Highlights: []string{
				"6.3-inch Super Actua display",
				"Google Tensor G4",
				"50MP wide, 48MP ultrawide and 48MP 5x telephoto",
				"7 years of OS and security updates",
			},
			Colors: []string{"Porcelain", "Obsidian", "Hazel"},
			Tiers: []Tier{
				{Storage: "128GB", MRP: 109900, Price: 99900},
				{Storage: "256GB", MRP: 119900, Price: 109900},
			},
			Images: map[string][]string{
				"Porcelain": {pixelImage, pixelImage + "&sat=-100"},
				"Obsidian":  {pixelImage + "&blend=000000&blend-mode=multiply", pixelImage},
				"Hazel":     {pixelImage + "&hue=90", pixelImage},
			},
		},
		{
			Name:        "OnePlus 13",
			Brand:       "OnePlus",
			Description: "Snapdragon 8 Elite, Hasselblad-tuned cameras and 100W wired charging.",
			Highlights: []string{
				"6.82-inch ProXDR display, 120Hz",
				"Snapdragon 8 Elite",
				"Hasselblad camera for mobile",
				"6000 mAh battery with 100W SUPERVOOC",
			},
			Colors: []string{"Midnight Ocean", "Arctic Dawn"},
			Tiers: []Tier{
				{Storage: "256GB", MRP: 72999, Price: 69999},
				{Storage: "512GB", MRP: 79999, Price: 76999},
			},
			Images: map[string][]string{
				"Midnight Ocean": {onePlusImage, onePlusImage + "&sat=-100"},
				"Arctic Dawn":    {onePlusImage + "&exp=20", onePlusImage},
			},
		},
	}
}
