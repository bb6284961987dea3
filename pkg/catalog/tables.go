package catalog

// DefaultLocation is the most common storage bucket, used when no location
// keyword matches.
const DefaultLocation = "Placard cuisine"

// AvailableLocations is the fixed vocabulary of storage locations.
var AvailableLocations = []string{
	"Placard cuisine",
	"Réfrigérateur",
	"Congélateur",
	"Garde-manger",
	"Boîte à pain",
	"Tiroir cuisine",
	"Dépendance",
}

// DefaultTaxonomy is the main-category rule table for French grocery data.
var DefaultTaxonomy = Taxonomy{
	{Name: "Produits frais", Keywords: []string{"Produits laitiers", "Viandes", "Poissons", "Fruits et légumes"}},
	{Name: "Épicerie", Keywords: []string{"Conserves", "Pâtes et riz", "Petit-déjeuner", "Snacks", "Condiments"}},
	{Name: "Boissons", Keywords: []string{"Eau", "Sodas", "Jus", "Alcools"}},
	{Name: "Non alimentaire", Keywords: []string{"Entretien", "Hygiène", "Fournitures"}},
	{Name: "Autres", Keywords: []string{"Divers"}},
}

// DefaultTables are the keyword tables for product-info extraction.
var DefaultTables = KeywordTables{
	Locations: []LocationRule{
		{Keyword: "divers", Locations: []string{"Dépendance"}},
		{Keyword: "frais", Locations: []string{"Réfrigérateur"}},
		{Keyword: "laitier", Locations: []string{"Réfrigérateur"}},
		{Keyword: "yaourt", Locations: []string{"Réfrigérateur"}},
		{Keyword: "fromage", Locations: []string{"Réfrigérateur"}},
		{Keyword: "surgelé", Locations: []string{"Congélateur"}},
		{Keyword: "glace", Locations: []string{"Congélateur"}},
		{Keyword: "conserve", Locations: []string{"Placard cuisine", "Garde-manger"}},
		{Keyword: "épicerie", Locations: []string{"Placard cuisine", "Garde-manger"}},
		{Keyword: "fruit", Locations: []string{"Réfrigérateur"}},
		{Keyword: "légume", Locations: []string{"Réfrigérateur"}},
		{Keyword: "boulangerie", Locations: []string{"Tiroir cuisine", "Boîte à pain"}},
		{Keyword: "pâtisserie", Locations: []string{"Tiroir cuisine"}},
		{Keyword: "boisson", Locations: []string{"Placard cuisine"}},
		{Keyword: "jus", Locations: []string{"Réfrigérateur"}},
		{Keyword: "bio", Locations: []string{"Placard cuisine"}},
	},
	Diets: []TagRule{
		{Keyword: "vegan", Tag: "Convient aux végans"},
		{Keyword: "végétalien", Tag: "Convient aux végétaliens"},
		{Keyword: "végétarien", Tag: "Convient aux végétariens"},
		{Keyword: "sans gluten", Tag: "Sans gluten"},
		{Keyword: "sans lactose", Tag: "Sans lactose"},
		{Keyword: "faible en sel", Tag: "Faible en sel"},
		{Keyword: "sans sucre", Tag: "Sans sucre"},
		{Keyword: "bio", Tag: "Agriculture biologique"},
	},
	Allergens: []TagRule{
		{Keyword: "gluten", Tag: "Contient du gluten"},
		{Keyword: "lactose", Tag: "Contient du lactose"},
		{Keyword: "arachide", Tag: "Contient des arachides"},
		{Keyword: "soja", Tag: "Contient du soja"},
		{Keyword: "fruits à coque", Tag: "Contient des fruits à coque"},
	},
}
