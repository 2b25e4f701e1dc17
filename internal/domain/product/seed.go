// internal/domain/product/seed.go
package product

// Seed returns the storefront catalog in display order.
func Seed() []Product {
	return []Product{
		{
			ID:            1,
			Name:          "Dreamy Blue & White Bouquet",
			Price:         89.99,
			OriginalPrice: price(105.99),
			Image:         "/assets/products/1.jpg",
			Rating:        4.8,
			Reviews:       127,
			Description:   "A dreamy arrangement of soft blue and white flowers wrapped in delicate tulle. Perfect for expressing gentle emotions and creating a romantic atmosphere.",
			Benefits: []Benefit{
				{Icon: "fas fa-leaf", Title: "Fresh & Long-lasting", Text: "Guaranteed to stay fresh for 7-10 days"},
				{Icon: "fas fa-heart", Title: "Romantic Appeal", Text: "Perfect for romantic occasions"},
				{Icon: "fas fa-truck", Title: "Same-Day Delivery", Text: "Order before 2 PM for same-day delivery"},
				{Icon: "fas fa-gift", Title: "Premium Wrapping", Text: "Elegant tulle and ribbon presentation"},
			},
			Category: "Mixed Bouquets",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            2,
			Name:          "Pink Rose Paradise Bouquet",
			Price:         79.99,
			OriginalPrice: price(94.99),
			Image:         "/assets/products/2.jpg",
			Rating:        4.7,
			Reviews:       156,
			Description:   "Luxurious pink roses beautifully wrapped in soft pink paper with delicate ribbon. A symbol of grace, gratitude, and admiration.",
			Benefits: []Benefit{
				{Icon: "fas fa-star", Title: "Premium Quality", Text: "Hand-selected premium pink roses"},
				{Icon: "fas fa-clock", Title: "Long Lasting", Text: "Stays beautiful for up to 2 weeks"},
				{Icon: "fas fa-home", Title: "Home Delivery", Text: "Free delivery within city limits"},
				{Icon: "fas fa-certificate", Title: "Quality Guarantee", Text: "100% satisfaction guaranteed"},
			},
			Category: "Roses",
			OnSale:   true,
			Discount: 16,
		},
		{
			ID:            3,
			Name:          "Purple Rose Elegance",
			Price:         94.99,
			OriginalPrice: price(110.99),
			Image:         "/assets/products/3.jpg",
			Rating:        4.9,
			Reviews:       98,
			Description:   "Stunning purple roses wrapped in matching purple paper with a satin bow. Represents enchantment, mystery, and love at first sight.",
			Benefits: []Benefit{
				{Icon: "fas fa-palette", Title: "Unique Color", Text: "Rare purple rose variety"},
				{Icon: "fas fa-seedling", Title: "Fresh from Farm", Text: "Directly sourced from premium farms"},
				{Icon: "fas fa-smile", Title: "Mood Booster", Text: "Purple flowers enhance creativity"},
				{Icon: "fas fa-recycle", Title: "Eco-Friendly", Text: "Sustainably grown and packaged"},
			},
			Category: "Roses",
			OnSale:   true,
			Discount: 14,
		},
		{
			ID:            4,
			Name:          "Sky Blue Rose Collection",
			Price:         99.99,
			OriginalPrice: price(119.99),
			Image:         "/assets/products/4.jpg",
			Rating:        4.6,
			Reviews:       112,
			Description:   "Enchanting sky blue roses wrapped in coordinating blue paper. These unique roses symbolize mystery, impossibility, and dreams coming true.",
			Benefits: []Benefit{
				{Icon: "fas fa-sun", Title: "Unique Beauty", Text: "Rare blue roses for special occasions"},
				{Icon: "fas fa-dollar-sign", Title: "Premium Value", Text: "Exceptional quality at fair price"},
				{Icon: "fas fa-users", Title: "Perfect Gift", Text: "Unforgettable for loved ones"},
				{Icon: "fas fa-leaf", Title: "Special Treatment", Text: "Specially preserved for longevity"},
			},
			Category: "Roses",
			OnSale:   true,
			Discount: 17,
		},
		{
			ID:            5,
			Name:          "Ocean Breeze Blue Bouquet",
			Price:         74.99,
			OriginalPrice: price(87.99),
			Image:         "/assets/products/5.jpg",
			Rating:        4.5,
			Reviews:       134,
			Description:   "Fresh blue flowers wrapped in elegant blue paper with ribbon. Evokes feelings of tranquility, peace, and the calming essence of ocean waves.",
			Benefits: []Benefit{
				{Icon: "fas fa-crown", Title: "Calming Effect", Text: "Blue flowers promote relaxation"},
				{Icon: "fas fa-calendar", Title: "Versatile Gift", Text: "Perfect for any occasion"},
				{Icon: "fas fa-award", Title: "Artistically Arranged", Text: "Professional floral design"},
				{Icon: "fas fa-spa", Title: "Therapeutic", Text: "Known for stress-relieving properties"},
			},
			Category: "Mixed Bouquets",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            6,
			Name:          "Lavender Dream Bouquet",
			Price:         84.99,
			OriginalPrice: price(97.99),
			Image:         "/assets/products/6.jpg",
			Rating:        4.8,
			Reviews:       87,
			Description:   "Exquisite purple and lavender flowers arranged in a sophisticated black box. Perfect for expressing admiration and creating an elegant atmosphere.",
			Benefits: []Benefit{
				{Icon: "fas fa-sun", Title: "Sophisticated Style", Text: "Elegant black box presentation"},
				{Icon: "fas fa-expand", Title: "Premium Arrangement", Text: "Professional floral artistry"},
				{Icon: "fas fa-heart", Title: "Emotional Impact", Text: "Creates lasting memories"},
				{Icon: "fas fa-camera", Title: "Photo Perfect", Text: "Instagram-worthy presentation"},
			},
			Category: "Premium Arrangements",
			OnSale:   true,
			Discount: 13,
		},
		{
			ID:            7,
			Name:          "Pink Peony Paradise",
			Price:         92.99,
			OriginalPrice: price(109.99),
			Image:         "/assets/products/7.jpg",
			Rating:        4.7,
			Reviews:       165,
			Description:   "Lush pink and white peonies wrapped in soft white paper with pink ribbon. Peonies symbolize honor, wealth, and a happy marriage.",
			Benefits: []Benefit{
				{Icon: "fas fa-heart", Title: "Symbol of Love", Text: "Perfect for romantic occasions"},
				{Icon: "fas fa-clock", Title: "Seasonal Beauty", Text: "Premium peony season flowers"},
				{Icon: "fas fa-gift", Title: "Luxury Feel", Text: "High-end floral experience"},
				{Icon: "fas fa-star", Title: "Customer Favorite", Text: "Highly rated by customers"},
			},
			Category: "Peonies",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            8,
			Name:          "Purple Carnation Delight",
			Price:         64.99,
			OriginalPrice: price(76.99),
			Image:         "/assets/products/8.jpg",
			Rating:        4.4,
			Reviews:       143,
			Description:   "Beautiful purple and white carnations wrapped in coordinating purple paper. Carnations represent deep love, fascination, and distinction.",
			Benefits: []Benefit{
				{Icon: "fas fa-dollar-sign", Title: "Great Value", Text: "Beautiful flowers at affordable price"},
				{Icon: "fas fa-clock", Title: "Long Lasting", Text: "Carnations stay fresh for weeks"},
				{Icon: "fas fa-palette", Title: "Color Variety", Text: "Mixed purple and white tones"},
				{Icon: "fas fa-home", Title: "Perfect Size", Text: "Ideal for home decoration"},
			},
			Category: "Carnations",
			OnSale:   true,
			Discount: 16,
		},
		{
			ID:            9,
			Name:          "Pink Carnation Elegance",
			Price:         69.99,
			OriginalPrice: price(82.99),
			Image:         "/assets/products/9.jpg",
			Rating:        4.6,
			Reviews:       121,
			Description:   "Soft pink carnations beautifully arranged and wrapped with a delicate pink ribbon. Perfect for expressing gratitude and admiration.",
			Benefits: []Benefit{
				{Icon: "fas fa-heart", Title: "Gentle Expression", Text: "Perfect for showing appreciation"},
				{Icon: "fas fa-leaf", Title: "Fresh Quality", Text: "Hand-picked premium carnations"},
				{Icon: "fas fa-smile", Title: "Cheerful Gift", Text: "Brings joy to any recipient"},
				{Icon: "fas fa-users", Title: "Versatile Choice", Text: "Suitable for all ages"},
			},
			Category: "Carnations",
			OnSale:   true,
			Discount: 16,
		},
		{
			ID:            10,
			Name:          "Baby's Breath Cloud",
			Price:         54.99,
			OriginalPrice: price(64.99),
			Image:         "/assets/products/10.jpg",
			Rating:        4.3,
			Reviews:       89,
			Description:   "Delicate baby's breath arranged in a charming pink pot. Symbolizes everlasting love, purity, and new beginnings.",
			Benefits: []Benefit{
				{Icon: "fas fa-seedling", Title: "Symbol of Purity", Text: "Represents new beginnings"},
				{Icon: "fas fa-home", Title: "Potted Plant", Text: "Can be replanted for lasting beauty"},
				{Icon: "fas fa-dollar-sign", Title: "Affordable Luxury", Text: "Premium look at great price"},
				{Icon: "fas fa-clock", Title: "Long Lasting", Text: "Enjoys extended bloom period"},
			},
			Category: "Potted Arrangements",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            11,
			Name:          "White Baby's Breath Garden",
			Price:         49.99,
			OriginalPrice: price(59.99),
			Image:         "/assets/products/11.jpg",
			Rating:        4.2,
			Reviews:       76,
			Description:   "Pure white baby's breath in decorative pots. Perfect for minimalist decor and representing innocence and pure love.",
			Benefits: []Benefit{
				{Icon: "fas fa-home", Title: "Home Decor", Text: "Perfect for modern minimalist style"},
				{Icon: "fas fa-leaf", Title: "Easy Care", Text: "Low maintenance potted plants"},
				{Icon: "fas fa-recycle", Title: "Reusable Pots", Text: "Beautiful decorative containers"},
				{Icon: "fas fa-star", Title: "Trendy Choice", Text: "Popular in modern arrangements"},
			},
			Category: "Potted Arrangements",
			OnSale:   true,
			Discount: 17,
		},
		{
			ID:            12,
			Name:          "Sunny Gerbera Mix",
			Price:         59.99,
			OriginalPrice: price(71.99),
			Image:         "/assets/products/12.jpg",
			Rating:        4.5,
			Reviews:       198,
			Description:   "Vibrant gerbera daisies in cheerful yellow and pink, wrapped in brown paper with pink ribbon. Represents happiness and cheerfulness.",
			Benefits: []Benefit{
				{Icon: "fas fa-sun", Title: "Bright & Cheerful", Text: "Instantly brightens any space"},
				{Icon: "fas fa-smile", Title: "Mood Booster", Text: "Scientifically proven to improve mood"},
				{Icon: "fas fa-palette", Title: "Vibrant Colors", Text: "Eye-catching color combination"},
				{Icon: "fas fa-gift", Title: "Perfect Gift", Text: "Ideal for birthdays and celebrations"},
			},
			Category: "Gerberas",
			OnSale:   true,
			Discount: 17,
		},
		{
			ID:            13,
			Name:          "Rainbow Rose Celebration",
			Price:         129.99,
			OriginalPrice: price(149.99),
			Image:         "/assets/products/13.jpg",
			Rating:        4.9,
			Reviews:       234,
			Description:   "Spectacular rainbow-colored roses in a clear vase with decorative patterned base. Each rose represents a different emotion and celebration of life's diversity.",
			Benefits: []Benefit{
				{Icon: "fas fa-rainbow", Title: "Unique Rainbow Colors", Text: "Each rose is a different vibrant color"},
				{Icon: "fas fa-star", Title: "Premium Quality", Text: "Specially treated rainbow roses"},
				{Icon: "fas fa-home", Title: "Includes Vase", Text: "Beautiful decorative glass vase included"},
				{Icon: "fas fa-camera", Title: "Show Stopper", Text: "Perfect conversation piece"},
			},
			Category: "Premium Arrangements",
			OnSale:   true,
			Discount: 13,
		},
		{
			ID:            14,
			Name:          "Garden Fresh Mixed Bouquet",
			Price:         74.99,
			OriginalPrice: price(87.99),
			Image:         "/assets/products/14.jpg",
			Rating:        4.6,
			Reviews:       156,
			Description:   "Fresh garden-style bouquet with roses, eucalyptus, and seasonal flowers in a kraft paper wrap. Represents natural beauty and organic elegance.",
			Benefits: []Benefit{
				{Icon: "fas fa-leaf", Title: "Garden Fresh", Text: "Straight from the garden feel"},
				{Icon: "fas fa-recycle", Title: "Eco-Friendly", Text: "Sustainable kraft paper wrapping"},
				{Icon: "fas fa-seedling", Title: "Mixed Varieties", Text: "Diverse selection of flowers"},
				{Icon: "fas fa-heart", Title: "Natural Beauty", Text: "Organic, unstructured arrangement"},
			},
			Category: "Garden Style",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            15,
			Name:          "Sunflower Symphony",
			Price:         84.99,
			OriginalPrice: price(99.99),
			Image:         "/assets/products/15.jpg",
			Rating:        4.7,
			Reviews:       187,
			Description:   "Cheerful sunflowers mixed with colorful seasonal blooms in a glass vase. Represents adoration, loyalty, and sunny disposition.",
			Benefits: []Benefit{
				{Icon: "fas fa-sun", Title: "Symbol of Happiness", Text: "Sunflowers represent joy and positivity"},
				{Icon: "fas fa-expand", Title: "Large Blooms", Text: "Impressive size and visual impact"},
				{Icon: "fas fa-home", Title: "Includes Vase", Text: "Ready to display glass vase"},
				{Icon: "fas fa-clock", Title: "Long Lasting", Text: "Sunflowers have excellent vase life"},
			},
			Category: "Sunflowers",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            16,
			Name:          "Yellow Rose & Blue Accent",
			Price:         89.99,
			OriginalPrice: price(104.99),
			Image:         "/assets/products/16.jpg",
			Rating:        4.8,
			Reviews:       143,
			Description:   "Bright yellow roses with blue accent flowers in a sunny yellow box. Yellow roses symbolize friendship, joy, and new beginnings.",
			Benefits: []Benefit{
				{Icon: "fas fa-sun", Title: "Bright & Uplifting", Text: "Yellow roses bring joy and warmth"},
				{Icon: "fas fa-users", Title: "Friendship Symbol", Text: "Perfect for celebrating friendships"},
				{Icon: "fas fa-gift", Title: "Gift Box Included", Text: "Beautiful yellow presentation box"},
				{Icon: "fas fa-palette", Title: "Color Harmony", Text: "Perfect yellow and blue combination"},
			},
			Category: "Roses",
			OnSale:   true,
			Discount: 14,
		},
		{
			ID:            17,
			Name:          "Golden Elegance Box",
			Price:         119.99,
			OriginalPrice: price(139.99),
			Image:         "/assets/products/17.jpg",
			Rating:        4.9,
			Reviews:       98,
			Description:   "Luxurious red and yellow roses arranged in an elegant golden box. Represents passion, friendship, and the perfect balance of love and joy.",
			Benefits: []Benefit{
				{Icon: "fas fa-crown", Title: "Luxury Collection", Text: "Premium golden box presentation"},
				{Icon: "fas fa-heart", Title: "Mixed Emotions", Text: "Combines passion and friendship"},
				{Icon: "fas fa-gift", Title: "Reusable Box", Text: "Beautiful keepsake golden box"},
				{Icon: "fas fa-star", Title: "Premium Roses", Text: "Top quality red and yellow roses"},
			},
			Category: "Premium Arrangements",
			OnSale:   true,
			Discount: 14,
		},
		{
			ID:            18,
			Name:          "Creamy Yellow Rose Luxury",
			Price:         104.99,
			OriginalPrice: price(122.99),
			Image:         "/assets/products/18.jpg",
			Rating:        4.8,
			Reviews:       167,
			Description:   "Elegant cream and yellow roses in a pristine white hat box. Represents grace, elegance, and sophisticated beauty.",
			Benefits: []Benefit{
				{Icon: "fas fa-crown", Title: "Sophisticated Style", Text: "Elegant white hat box presentation"},
				{Icon: "fas fa-star", Title: "Premium Quality", Text: "Hand-selected cream roses"},
				{Icon: "fas fa-home", Title: "Luxury Display", Text: "Perfect for upscale environments"},
				{Icon: "fas fa-gift", Title: "Special Occasion", Text: "Ideal for milestone celebrations"},
			},
			Category: "Premium Arrangements",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            19,
			Name:          "Autumn Sunflower Collection",
			Price:         94.99,
			OriginalPrice: price(112.99),
			Image:         "/assets/products/19.jpg",
			Rating:        4.6,
			Reviews:       178,
			Description:   "Warm sunflowers with orange roses in a sophisticated black box. Perfect autumn arrangement representing warmth, abundance, and harvest joy.",
			Benefits: []Benefit{
				{Icon: "fas fa-leaf", Title: "Autumn Colors", Text: "Perfect fall color palette"},
				{Icon: "fas fa-sun", Title: "Warm & Inviting", Text: "Creates cozy autumn atmosphere"},
				{Icon: "fas fa-gift", Title: "Elegant Box", Text: "Sophisticated black presentation box"},
				{Icon: "fas fa-home", Title: "Seasonal Decor", Text: "Perfect for autumn decorating"},
			},
			Category: "Seasonal Arrangements",
			OnSale:   true,
			Discount: 16,
		},
		{
			ID:            20,
			Name:          "Golden Sunshine Bundle",
			Price:         79.99,
			OriginalPrice: price(93.99),
			Image:         "/assets/products/20.jpg",
			Rating:        4.5,
			Reviews:       145,
			Description:   "Bright yellow sunflowers and roses wrapped in yellow paper with matching ribbon. Brings the warmth and energy of sunshine indoors.",
			Benefits: []Benefit{
				{Icon: "fas fa-sun", Title: "Sunshine Energy", Text: "Brings warmth and positive energy"},
				{Icon: "fas fa-smile", Title: "Mood Enhancer", Text: "Yellow flowers boost happiness"},
				{Icon: "fas fa-dollar-sign", Title: "Great Value", Text: "Premium flowers at fair price"},
				{Icon: "fas fa-users", Title: "Universal Appeal", Text: "Perfect gift for anyone"},
			},
			Category: "Sunflowers",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            21,
			Name:          "Vibrant Mixed Garden Bouquet",
			Price:         89.99,
			OriginalPrice: price(105.99),
			Image:         "/assets/products/21.jpg",
			Rating:        4.7,
			Reviews:       203,
			Description:   "Spectacular mix of purple, orange, pink, and yellow flowers creating a vibrant garden-style bouquet. Celebrates the diversity and beauty of nature.",
			Benefits: []Benefit{
				{Icon: "fas fa-palette", Title: "Rainbow Colors", Text: "Full spectrum of vibrant colors"},
				{Icon: "fas fa-seedling", Title: "Garden Variety", Text: "Multiple flower types and textures"},
				{Icon: "fas fa-heart", Title: "Emotional Impact", Text: "Creates joy and wonder"},
				{Icon: "fas fa-camera", Title: "Photo Ready", Text: "Perfect for special photos"},
			},
			Category: "Mixed Bouquets",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            22,
			Name:          "Peach Rose Elegance",
			Price:         99.99,
			OriginalPrice: price(117.99),
			Image:         "/assets/products/22.jpg",
			Rating:        4.8,
			Reviews:       134,
			Description:   "Soft peach and coral roses arranged in a decorative copper vase. Represents appreciation, sincerity, and genuine feelings.",
			Benefits: []Benefit{
				{Icon: "fas fa-heart", Title: "Warm Feelings", Text: "Peach roses express sincere emotions"},
				{Icon: "fas fa-home", Title: "Decorative Vase", Text: "Beautiful copper-toned vase included"},
				{Icon: "fas fa-star", Title: "Unique Color", Text: "Rare peach rose variety"},
				{Icon: "fas fa-clock", Title: "Long Lasting", Text: "Roses maintain beauty for weeks"},
			},
			Category: "Roses",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            23,
			Name:          "Blue & White Elegance",
			Price:         109.99,
			OriginalPrice: price(127.99),
			Image:         "/assets/products/23.jpg",
			Rating:        4.9,
			Reviews:       87,
			Description:   "Stunning blue and white flowers in an ornate blue and white porcelain vase. Represents tranquility, peace, and timeless elegance.",
			Benefits: []Benefit{
				{Icon: "fas fa-crown", Title: "Porcelain Vase", Text: "Elegant blue and white porcelain"},
				{Icon: "fas fa-spa", Title: "Calming Colors", Text: "Blue and white promote serenity"},
				{Icon: "fas fa-home", Title: "Decorative Art", Text: "Functions as home decor piece"},
				{Icon: "fas fa-gift", Title: "Heirloom Quality", Text: "Vase becomes treasured keepsake"},
			},
			Category: "Premium Arrangements",
			OnSale:   true,
			Discount: 14,
		},
		{
			ID:            24,
			Name:          "Purple & White Rose Elegance",
			Price:         94.99,
			OriginalPrice: price(110.99),
			Image:         "/assets/products/24.jpg",
			Rating:        4.7,
			Reviews:       156,
			Description:   "Sophisticated purple and white roses with eucalyptus, wrapped in deep purple paper with ribbon. Represents admiration and respect.",
			Benefits: []Benefit{
				{Icon: "fas fa-star", Title: "Color Contrast", Text: "Beautiful purple and white contrast"},
				{Icon: "fas fa-leaf", Title: "Eucalyptus Accent", Text: "Fresh eucalyptus adds fragrance"},
				{Icon: "fas fa-heart", Title: "Sophisticated Gift", Text: "Perfect for elegant occasions"},
				{Icon: "fas fa-crown", Title: "Premium Roses", Text: "Top quality rose varieties"},
			},
			Category: "Roses",
			OnSale:   true,
			Discount: 14,
		},
		{
			ID:            25,
			Name:          "Blue & White Lily Arrangement",
			Price:         87.99,
			OriginalPrice: price(102.99),
			Image:         "/assets/products/25.jpg",
			Rating:        4.6,
			Reviews:       123,
			Description:   "Fresh blue and white lilies in a deep blue vase. Lilies symbolize purity, rebirth, and the restored innocence of the soul.",
			Benefits: []Benefit{
				{Icon: "fas fa-star", Title: "Symbol of Purity", Text: "Lilies represent pure intentions"},
				{Icon: "fas fa-home", Title: "Beautiful Vase", Text: "Deep blue ceramic vase included"},
				{Icon: "fas fa-clock", Title: "Long Blooming", Text: "Lilies have extended bloom time"},
				{Icon: "fas fa-spa", Title: "Fresh Fragrance", Text: "Natural lily fragrance"},
			},
			Category: "Lilies",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            26,
			Name:          "Pink & White Lily Paradise",
			Price:         92.99,
			OriginalPrice: price(108.99),
			Image:         "/assets/products/26.jpg",
			Rating:        4.8,
			Reviews:       167,
			Description:   "Elegant pink lilies and white roses in a clear crystal vase. Combines the purity of lilies with the love symbolized by roses.",
			Benefits: []Benefit{
				{Icon: "fas fa-heart", Title: "Love & Purity", Text: "Perfect combination of roses and lilies"},
				{Icon: "fas fa-gem", Title: "Crystal Vase", Text: "High-quality crystal vase included"},
				{Icon: "fas fa-star", Title: "Premium Flowers", Text: "Hand-selected lilies and roses"},
				{Icon: "fas fa-home", Title: "Elegant Display", Text: "Perfect for sophisticated spaces"},
			},
			Category: "Mixed Arrangements",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            27,
			Name:          "Pink Lily & Calla Lily Mix",
			Price:         104.99,
			OriginalPrice: price(122.99),
			Image:         "/assets/products/27.jpg",
			Rating:        4.9,
			Reviews:       98,
			Description:   "Stunning pink lilies and white calla lilies in a tall glass vase. Calla lilies represent magnificent beauty and sophisticated elegance.",
			Benefits: []Benefit{
				{Icon: "fas fa-crown", Title: "Sophisticated Mix", Text: "Lilies and calla lilies combination"},
				{Icon: "fas fa-expand", Title: "Tall Arrangement", Text: "Impressive height and presence"},
				{Icon: "fas fa-star", Title: "Premium Varieties", Text: "High-end lily varieties"},
				{Icon: "fas fa-home", Title: "Statement Piece", Text: "Perfect centerpiece arrangement"},
			},
			Category: "Lilies",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            28,
			Name:          "Pink & White Mixed Bouquet",
			Price:         79.99,
			OriginalPrice: price(94.99),
			Image:         "/assets/products/28.jpg",
			Rating:        4.6,
			Reviews:       145,
			Description:   "Cheerful pink gerberas and white roses in a clear glass vase. This vibrant arrangement combines the joy of gerberas with the elegance of roses.",
			Benefits: []Benefit{
				{Icon: "fas fa-smile", Title: "Joyful Colors", Text: "Pink and white create cheerful atmosphere"},
				{Icon: "fas fa-heart", Title: "Mixed Emotions", Text: "Combines joy and pure love"},
				{Icon: "fas fa-home", Title: "Glass Vase", Text: "Clear glass vase included"},
				{Icon: "fas fa-gift", Title: "Perfect Gift", Text: "Ideal for celebrations and birthdays"},
			},
			Category: "Mixed Arrangements",
			OnSale:   true,
			Discount: 16,
		},
		{
			ID:            29,
			Name:          "Pure White Rose Bouquet",
			Price:         114.99,
			OriginalPrice: price(134.99),
			Image:         "/assets/products/29.jpg",
			Rating:        4.9,
			Reviews:       187,
			Description:   "Luxurious pure white roses wrapped in elegant white paper with pearl accents and white ribbon. Represents purity, new beginnings, and eternal love.",
			Benefits: []Benefit{
				{Icon: "fas fa-crown", Title: "Premium White Roses", Text: "Highest quality white rose variety"},
				{Icon: "fas fa-gem", Title: "Pearl Accents", Text: "Beautiful pearl decorations"},
				{Icon: "fas fa-heart", Title: "Symbol of Purity", Text: "Perfect for weddings and special occasions"},
				{Icon: "fas fa-star", Title: "Elegant Wrapping", Text: "Sophisticated white paper presentation"},
			},
			Category: "Premium Arrangements",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            30,
			Name:          "Mixed Color Rose & Daisy Bouquet",
			Price:         89.99,
			OriginalPrice: price(105.99),
			Image:         "/assets/products/30.jpg",
			Rating:        4.7,
			Reviews:       198,
			Description:   "Vibrant mix of red roses, cream roses, and white daisies wrapped in brown kraft paper with red ribbon. A rustic yet elegant combination celebrating diversity.",
			Benefits: []Benefit{
				{Icon: "fas fa-palette", Title: "Color Variety", Text: "Beautiful mix of reds, creams, and whites"},
				{Icon: "fas fa-recycle", Title: "Rustic Style", Text: "Eco-friendly kraft paper wrapping"},
				{Icon: "fas fa-heart", Title: "Mixed Symbolism", Text: "Combines passion, purity, and innocence"},
				{Icon: "fas fa-users", Title: "Versatile Gift", Text: "Perfect for various occasions"},
			},
			Category: "Mixed Bouquets",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            31,
			Name:          "Wildflower Garden Bouquet",
			Price:         74.99,
			OriginalPrice: price(87.99),
			Image:         "/assets/products/31.jpg",
			Rating:        4.5,
			Reviews:       156,
			Description:   "Natural wildflower arrangement with pink, yellow, and purple blooms wrapped in beige burlap. Evokes the beauty of a countryside meadow.",
			Benefits: []Benefit{
				{Icon: "fas fa-seedling", Title: "Natural Style", Text: "Authentic wildflower garden feel"},
				{Icon: "fas fa-leaf", Title: "Diverse Blooms", Text: "Multiple flower varieties and textures"},
				{Icon: "fas fa-recycle", Title: "Burlap Wrap", Text: "Eco-friendly natural burlap wrapping"},
				{Icon: "fas fa-sun", Title: "Country Charm", Text: "Brings countryside beauty indoors"},
			},
			Category: "Garden Style",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            32,
			Name:          "Pink Rose Ball Bouquet",
			Price:         124.99,
			OriginalPrice: price(146.99),
			Image:         "/assets/products/32.jpg",
			Rating:        4.8,
			Reviews:       123,
			Description:   "Stunning compact pink roses arranged in a perfect sphere shape with baby's breath accents, wrapped in soft pink paper. A modern take on classic elegance.",
			Benefits: []Benefit{
				{Icon: "fas fa-crown", Title: "Sphere Design", Text: "Unique compact ball arrangement"},
				{Icon: "fas fa-star", Title: "Perfect Shape", Text: "Professionally structured rose ball"},
				{Icon: "fas fa-heart", Title: "Romantic Pink", Text: "Soft pink roses express tender love"},
				{Icon: "fas fa-gift", Title: "Special Occasion", Text: "Perfect for anniversaries and proposals"},
			},
			Category: "Premium Arrangements",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            33,
			Name:          "Pink Peony & Rose Elegance",
			Price:         109.99,
			OriginalPrice: price(128.99),
			Image:         "/assets/products/33.jpg",
			Rating:        4.9,
			Reviews:       167,
			Description:   "Luxurious pink peonies and roses wrapped in elegant black paper with pink ribbon. This sophisticated arrangement combines two of the most beloved flowers.",
			Benefits: []Benefit{
				{Icon: "fas fa-crown", Title: "Luxury Flowers", Text: "Premium peonies and roses combination"},
				{Icon: "fas fa-palette", Title: "Elegant Contrast", Text: "Beautiful black wrapping with pink blooms"},
				{Icon: "fas fa-heart", Title: "Double Beauty", Text: "Two most romantic flower types"},
				{Icon: "fas fa-star", Title: "Premium Quality", Text: "Hand-selected seasonal peonies"},
			},
			Category: "Premium Arrangements",
			OnSale:   true,
			Discount: 15,
		},
		{
			ID:            34,
			Name:          "Single Pink Gerbera Delight",
			Price:         34.99,
			OriginalPrice: price(42.99),
			Image:         "/assets/products/34.jpg",
			Rating:        4.4,
			Reviews:       89,
			Description:   "Simple yet beautiful single pink gerbera daisy wrapped in soft pink paper with blue ribbon accent. Perfect for small gestures and everyday joy.",
			Benefits: []Benefit{
				{Icon: "fas fa-dollar-sign", Title: "Affordable Joy", Text: "Beautiful flower at great price"},
				{Icon: "fas fa-smile", Title: "Simple Happiness", Text: "Single bloom brings instant joy"},
				{Icon: "fas fa-gift", Title: "Perfect Size", Text: "Ideal for small gestures"},
				{Icon: "fas fa-heart", Title: "Thoughtful Gift", Text: "Shows care and consideration"},
			},
			Category: "Single Stems",
			OnSale:   true,
			Discount: 19,
		},
		{
			ID:            35,
			Name:          "Orange Tulip Bunch",
			Price:         64.99,
			OriginalPrice: price(76.99),
			Image:         "/assets/products/35.jpg",
			Rating:        4.6,
			Reviews:       134,
			Description:   "Fresh orange tulips wrapped in kraft paper with brown ribbon. Tulips represent perfect love and elegance, bringing spring's freshness indoors.",
			Benefits: []Benefit{
				{Icon: "fas fa-sun", Title: "Spring Fresh", Text: "Bright orange tulips bring spring energy"},
				{Icon: "fas fa-clock", Title: "Seasonal Beauty", Text: "Fresh tulips from premium growers"},
				{Icon: "fas fa-recycle", Title: "Natural Wrap", Text: "Eco-friendly kraft paper packaging"},
				{Icon: "fas fa-heart", Title: "Perfect Love", Text: "Tulips symbolize perfect love"},
			},
			Category: "Tulips",
			OnSale:   true,
			Discount: 16,
		},
		{
			ID:            36,
			Name:          "Sunflower & Wildflower Mix",
			Price:         84.99,
			OriginalPrice: price(99.99),
			Image:         "/assets/products/36.jpg",
			Rating:        4.7,
			Reviews:       176,
			Description:   "Cheerful sunflowers mixed with colorful wildflowers in kraft paper wrapping. This rustic arrangement brings the joy of summer fields to any space.",
			Benefits: []Benefit{
				{Icon: "fas fa-sun", Title: "Sunshine Joy", Text: "Sunflowers bring warmth and happiness"},
				{Icon: "fas fa-seedling", Title: "Wild Beauty", Text: "Natural wildflower varieties included"},
				{Icon: "fas fa-recycle", Title: "Rustic Style", Text: "Natural kraft paper presentation"},
				{Icon: "fas fa-smile", Title: "Mood Booster", Text: "Guaranteed to brighten any day"},
			},
			Category: "Sunflowers",
			OnSale:   true,
			Discount: 15,
		},
	}
}

func price(v float64) *float64 {
	return &v
}
