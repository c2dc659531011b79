package models

// SeedMenuItems returns the curated starter catalog across all six
// categories. Seeding inserts these as-is; there is no uniqueness constraint
// on dish names, so seeding twice duplicates every record.
func SeedMenuItems() []MenuItem {
	return []MenuItem{
		// Starters
		{
			Name:        "Tandoori Chicken",
			Description: "Marinated chicken cooked in a clay oven with royal spices",
			Price:       "₹189.9",
			Image:       "https://images.pexels.com/photos/995735/pexels-photo-995735.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Starters",
		},
		{
			Name:        "Paneer Tikka",
			Description: "Grilled cottage cheese with bell peppers and onions",
			Price:       "₹159.9",
			Image:       "https://images.pexels.com/photos/20004800/pexels-photo-20004800/free-photo-of-asian-soup-served-in-a-restaurant.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Starters",
		},
		{
			Name:        "Hara Bhara Kebab",
			Description: "Spiced spinach and pea patties, shallow-fried to perfection",
			Price:       "₹139.9",
			Image:       "https://images.pexels.com/photos/1351238/pexels-photo-1351238.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Starters",
		},
		{
			Name:        "Amritsari Fish",
			Description: "Crispy fried fish with aromatic Punjabi spices",
			Price:       "₹179.9",
			Image:       "https://images.pexels.com/photos/262959/pexels-photo-262959.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Starters",
		},
		{
			Name:        "Chicken Seekh Kebab",
			Description: "Minced chicken skewers grilled with fragrant spices",
			Price:       "₹169.9",
			Image:       "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Starters",
		},
		{
			Name:        "Veg Spring Rolls",
			Description: "Crispy rolls stuffed with spiced vegetables",
			Price:       "₹129.9",
			Image:       "https://images.pexels.com/photos/3023472/pexels-photo-3023472.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Starters",
		},

		// Main Course
		{
			Name:        "Dal Makhani",
			Description: "Black lentils simmered with cream and butter",
			Price:       "₹149.9",
			Image:       "https://images.pexels.com/photos/2175211/pexels-photo-2175211.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Main Course",
		},
		{
			Name:        "Rogan Josh",
			Description: "Slow-cooked lamb in a rich spiced gravy",
			Price:       "₹219.9",
			Image:       "https://images.pexels.com/photos/958546/pexels-photo-958546.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Main Course",
		},
		{
			Name:        "Butter Chicken",
			Description: "Tender chicken in a creamy tomato sauce",
			Price:       "₹199.9",
			Image:       "https://images.pexels.com/photos/20004800/pexels-photo-20004800/free-photo-of-asian-soup-served-in-a-restaurant.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Main Course",
		},
		{
			Name:        "Prawn Masala",
			Description: "Succulent prawns in a fiery coastal curry",
			Price:       "₹229.9",
			Image:       "https://images.pexels.com/photos/699953/pexels-photo-699953.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Main Course",
		},
		{
			Name:        "Palak Paneer",
			Description: "Cottage cheese cubes in a creamy spinach gravy",
			Price:       "₹169.9",
			Image:       "https://images.pexels.com/photos/1435895/pexels-photo-1435895.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Main Course",
		},
		{
			Name:        "Mutton Korma",
			Description: "Tender mutton in a rich almond and yogurt curry",
			Price:       "₹239.9",
			Image:       "https://images.pexels.com/photos/7353380/pexels-photo-7353380.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Main Course",
		},

		// Breads
		{
			Name:        "Butter Naan",
			Description: "Soft flatbread brushed with ghee and herbs",
			Price:       "₹49.9",
			Image:       "https://images.pexels.com/photos/1117862/pexels-photo-1117862.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Breads",
		},
		{
			Name:        "Garlic Naan",
			Description: "Fluffy naan topped with garlic and coriander",
			Price:       "₹59.9",
			Image:       "https://images.pexels.com/photos/3434523/pexels-photo-3434523.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Breads",
		},
		{
			Name:        "Stuffed Kulcha",
			Description: "Naan stuffed with spiced paneer and herbs",
			Price:       "₹69.9",
			Image:       "https://images.pexels.com/photos/2144200/pexels-photo-2144200.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Breads",
		},
		{
			Name:        "Tandoori Roti",
			Description: "Whole wheat bread baked in a clay oven",
			Price:       "₹39.9",
			Image:       "https://images.pexels.com/photos/1410236/pexels-photo-1410236.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Breads",
		},

		// Desserts
		{
			Name:        "Gulab Jamun",
			Description: "Soft milk dumplings soaked in saffron syrup",
			Price:       "₹99.9",
			Image:       "https://images.pexels.com/photos/4045508/pexels-photo-4045508.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Desserts",
		},
		{
			Name:        "Rasmalai",
			Description: "Spongy paneer balls in thickened milk with cardamom",
			Price:       "₹119.9",
			Image:       "https://images.pexels.com/photos/2673353/pexels-photo-2673353.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Desserts",
		},
		{
			Name:        "Shahi Tukda",
			Description: "Fried bread soaked in rabri with pistachios",
			Price:       "₹129.9",
			Image:       "https://images.pexels.com/photos/2878738/pexels-photo-2878738.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Desserts",
		},
		{
			Name:        "Kheer",
			Description: "Creamy rice pudding with nuts and saffron",
			Price:       "₹109.9",
			Image:       "https://images.pexels.com/photos/5688059/pexels-photo-5688059.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Desserts",
		},

		// Beverages
		{
			Name:        "Mango Lassi",
			Description: "Sweet yogurt drink blended with fresh mangoes",
			Price:       "₹89.9",
			Image:       "https://images.pexels.com/photos/5947063/pexels-photo-5947063.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Beverages",
		},
		{
			Name:        "Masala Chai",
			Description: "Spiced tea brewed with aromatic herbs",
			Price:       "₹49.9",
			Image:       "https://images.pexels.com/photos/312420/pexels-photo-312420.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Beverages",
		},
		{
			Name:        "Nimbu Pani",
			Description: "Refreshing lemon water with a hint of spices",
			Price:       "₹39.9",
			Image:       "https://images.pexels.com/photos/161616/pexels-photo-161616.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Beverages",
		},

		// Rice & Biryani
		{
			Name:        "Chicken Biryani",
			Description: "Fragrant rice with tender chicken and spices",
			Price:       "₹199.9",
			Image:       "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Rice & Biryani",
		},
		{
			Name:        "Veg Pulao",
			Description: "Spiced rice with mixed vegetables",
			Price:       "₹139.9",
			Image:       "https://images.pexels.com/photos/723198/pexels-photo-723198.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Rice & Biryani",
		},
		{
			Name:        "Mutton Biryani",
			Description: "Rich rice layered with succulent mutton",
			Price:       "₹249.9",
			Image:       "https://images.pexels.com/photos/16274438/pexels-photo-16274438/free-photo-of-indian-food.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:    "Rice & Biryani",
		},
	}
}
