package reference

var supplyRegions = map[string][]SupplyRegion{
	"Hazelnuts": {
		{Region: "Giresun, Turkey", Lat: 40.91, Lon: 38.38, Output: "High", Risk: "Critical (Frost)"},
		{Region: "Ordu, Turkey", Lat: 40.98, Lon: 37.88, Output: "High", Risk: "High (Frost)"},
		{Region: "Viterbo, Italy", Lat: 42.42, Lon: 12.10, Output: "Medium", Risk: "Low"},
		{Region: "Oregon, USA", Lat: 44.94, Lon: -123.03, Output: "Low", Risk: "Low"},
	},
	"Cocoa": {
		{Region: "Abidjan, Ivory Coast", Lat: 5.36, Lon: -4.00, Output: "Very High", Risk: "Medium (Disease)"},
		{Region: "Accra, Ghana", Lat: 5.60, Lon: -0.18, Output: "High", Risk: "High (Drought)"},
		{Region: "Sulawesi, Indonesia", Lat: -2.50, Lon: 119.50, Output: "Medium", Risk: "Low"},
	},
	"Avocados": {
		{Region: "Michoacan, Mexico", Lat: 19.56, Lon: -101.70, Output: "Very High", Risk: "Medium (Cartel/Water)"},
		{Region: "La Libertad, Peru", Lat: -8.10, Lon: -79.02, Output: "High", Risk: "Low"},
		{Region: "California, USA", Lat: 36.77, Lon: -119.41, Output: "Medium", Risk: "High (Drought)"},
	},
	"Coffee": {
		{Region: "Minas Gerais, Brazil", Lat: -18.51, Lon: -44.55, Output: "Very High", Risk: "Medium (Heat)"},
		{Region: "Dak Lak, Vietnam", Lat: 12.66, Lon: 108.03, Output: "High", Risk: "Low"},
		{Region: "Huila, Colombia", Lat: 2.53, Lon: -75.54, Output: "Medium", Risk: "Low"},
	},
	"Wheat": {
		{Region: "Kansas, USA", Lat: 38.50, Lon: -98.00, Output: "High", Risk: "Medium"},
		{Region: "Rostov, Russia", Lat: 47.23, Lon: 39.70, Output: "Very High", Risk: "High (Geopolitics)"},
	},
	"Corn": {
		{Region: "Iowa, USA", Lat: 42.03, Lon: -93.64, Output: "Very High", Risk: "Low"},
		{Region: "Mato Grosso, Brazil", Lat: -12.68, Lon: -56.09, Output: "High", Risk: "Medium"},
	},
	"Cotton": {
		{Region: "Texas, USA", Lat: 31.96, Lon: -99.90, Output: "High", Risk: "Medium (Drought)"},
		{Region: "Gujarat, India", Lat: 22.25, Lon: 71.19, Output: "Very High", Risk: "Medium"},
		{Region: "Xinjiang, China", Lat: 41.11, Lon: 85.26, Output: "Very High", Risk: "Low"},
	},
	"Soybeans": {
		{Region: "Mato Grosso, Brazil", Lat: -12.68, Lon: -56.09, Output: "Very High", Risk: "Low"},
		{Region: "Illinois, USA", Lat: 40.63, Lon: -89.39, Output: "High", Risk: "Low"},
	},
}

var sectorInsights = map[string][]SectorInsight{
	"Hazelnuts": {
		{Sector: "Confectionery", Share: 80, Signal: SignalRed, Status: "Stressed", Dynamics: "Supply shock due to frost."},
		{Sector: "Snacks & Retail", Share: 15, Signal: SignalYellow, Status: "Caution", Dynamics: "Margins squeezing."},
		{Sector: "Cosmetics", Share: 5, Signal: SignalGreen, Status: "Stable", Dynamics: "Niche market stable."},
	},
	"Cocoa": {
		{Sector: "Chocolate Mfg", Share: 65, Signal: SignalRed, Status: "Critical", Dynamics: "Structural deficit."},
		{Sector: "Cosmetics", Share: 15, Signal: SignalGreen, Status: "Growing", Dynamics: "Clean beauty trend."},
	},
	"Avocados": {
		{Sector: "Fresh Retail", Share: 85, Signal: SignalGreen, Status: "Bullish", Dynamics: "Super Bowl demand."},
		{Sector: "Oil Processing", Share: 10, Signal: SignalGreen, Status: "Emerging", Dynamics: "Replacing olive oil."},
	},
	"Coffee": {
		{Sector: "Specialty Roasters", Share: 20, Signal: SignalOrange, Status: "Strained", Dynamics: "High bean prices."},
		{Sector: "Instant/Commercial", Share: 45, Signal: SignalGreen, Status: "Stable", Dynamics: "Robust hedging."},
	},
	"Wheat": {
		{Sector: "Milling & Baking", Share: 60, Signal: SignalYellow, Status: "Volatile", Dynamics: "Geopolitical risk."},
	},
	"Corn": {
		{Sector: "Animal Feed", Share: 55, Signal: SignalGreen, Status: "Abundant", Dynamics: "Record crops."},
		{Sector: "Ethanol", Share: 35, Signal: SignalYellow, Status: "Risk", Dynamics: "EV transition threat."},
	},
}

var defaultSectors = []SectorInsight{
	{Sector: "General Market", Share: 100, Signal: SignalWhite, Status: "Normal", Dynamics: "Market balanced."},
}

var factSheets = map[string]FactSheet{
	"Hazelnuts": {
		Origin:      "Native to the temperate Northern Hemisphere.",
		Producers:   "Turkey (~70%), Italy, Azerbaijan, USA (Oregon).",
		Uses:        "Confectionery (pralines, spreads), baking, oil extraction.",
		Description: "The hazelnut is the nut of the hazel and therefore includes any of the nuts deriving from species of the genus Corylus, especially the nuts of the species Corylus avellana.",
	},
	"Cocoa": {
		Origin:      "Upper Amazon basin.",
		Producers:   "Ivory Coast (~40%), Ghana, Indonesia, Ecuador.",
		Uses:        "Chocolate, Cocoa butter (cosmetics), Cocoa powder.",
		Description: "Cocoa beans are the dried and fully fermented seeds of Theobroma cacao, from which cocoa solids and cocoa butter can be extracted.",
	},
	"Avocados": {
		Origin:      "South Central Mexico.",
		Producers:   "Mexico, Peru, Indonesia, Colombia.",
		Uses:        "Fresh consumption (guacamole), oil, cosmetics.",
		Description: "The avocado (Persea americana) is a medium-sized, evergreen tree in the laurel family. It is native to the Americas and was first domesticated by Mesoamerican tribes.",
	},
	"Coffee": {
		Origin:      "Ethiopia (Arabica) / West Africa (Robusta).",
		Producers:   "Brazil, Vietnam, Colombia, Indonesia.",
		Uses:        "Beverage, flavoring, caffeine extraction.",
		Description: "Coffee is a brewed drink prepared from roasted coffee beans, the seeds of berries from certain Coffea species.",
	},
	"Wheat": {
		Origin:      "Fertile Crescent (Middle East).",
		Producers:   "China, India, Russia, USA, France.",
		Uses:        "Flour (bread, pasta, pastry), animal feed, ethanol.",
		Description: "Wheat is a grass widely cultivated for its seed, a cereal grain which is a worldwide staple food.",
	},
	"Corn": {
		Origin:      "Southern Mexico.",
		Producers:   "USA, China, Brazil, Argentina.",
		Uses:        "Animal feed, ethanol, high-fructose corn syrup, human food.",
		Description: "Maize, also known as corn, is a cereal grain first domesticated by indigenous peoples in southern Mexico about 10,000 years ago.",
	},
	"Soybeans": {
		Origin:      "East Asia.",
		Producers:   "Brazil, USA, Argentina.",
		Uses:        "Animal feed (meal), oil, tofu, soy milk.",
		Description: "The soybean (Glycine max) is a species of legume native to East Asia, widely grown for its edible bean, which has numerous uses.",
	},
	"Palm Oil": {
		Origin:      "West Africa.",
		Producers:   "Indonesia, Malaysia, Thailand.",
		Uses:        "Cooking oil, processed foods, biofuels, soaps.",
		Description: "Palm oil is an edible vegetable oil derived from the mesocarp (reddish pulp) of the fruit of the oil palms.",
	},
	"Cotton": {
		Origin:      "Independently in Old and New Worlds.",
		Producers:   "China, India, USA, Brazil.",
		Uses:        "Textiles, cottonseed oil, animal feed.",
		Description: "Cotton is a soft, fluffy staple fiber that grows in a boll, or protective case, around the seeds of the cotton plants of the genus Gossypium.",
	},
	"Sugar": {
		Origin:      "New Guinea (Cane) / Europe (Beet).",
		Producers:   "Brazil, India, EU, Thailand, China.",
		Uses:        "Sweetener, ethanol, preservatives.",
		Description: "Sugar is the generic name for sweet-tasting, soluble carbohydrates, many of which are used in food. Primary sources are Sugarcane and Sugar Beet.",
	},
}
