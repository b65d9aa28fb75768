package catalog

// AseoCategorySlug categoría curada de productos de aseo.
const AseoCategorySlug = "aseo"

// PlaceholderImage imagen genérica cuando un producto no tiene ninguna.
const PlaceholderImage = "img/productos/sin-imagen.png"

// AseoClassifier grupos de la página de aseo. "lavaloza" va antes que ropa para que
// "detergente lavaloza" no caiga en detergentes de ropa.
func AseoClassifier() Classifier {
	return Classifier{
		Buckets: []BucketDefinition{
			NewBucketDefinition("cocina", "Cocina y loza",
				"lavaloza", "lava loza", "axion", "esponja", "desengrasante", "brillo", "lavaplatos"),
			NewBucketDefinition("ropa", "Cuidado de la ropa",
				"detergente", "suavizante", "ariel", "downy", "vanish", "quitamanchas", "jabón en barra", "jabon en barra"),
			NewBucketDefinition("desinfeccion", "Desinfección y pisos",
				"cloro", "blanqueador", "límpido", "limpido", "desinfectante", "limpiapisos", "limpiador", "varsol"),
			NewBucketDefinition("papel", "Papeles y desechables",
				"papel higiénico", "papel higienico", "servilleta", "toalla de cocina", "bolsa"),
			NewBucketDefinition("personal", "Cuidado personal",
				"jabón de tocador", "jabon de tocador", "shampoo", "crema dental", "desodorante", "antibacterial"),
			NewBucketDefinition("utensilios", "Utensilios de aseo",
				"escoba", "trapero", "recogedor", "guantes", "balde"),
		},
		CatchAll: NewBucketDefinition("otros", "Otros productos"),
		Overrides: []ImageOverride{
			{Match: "lavaloza", Image: "img/aseo/lavaloza.jpg"},
			{Match: "cloro", Image: "img/aseo/cloro.jpg"},
			{Match: "suavizante", Image: "img/aseo/suavizante.jpg"},
			{Match: "detergente", Image: "img/aseo/detergente.jpg"},
			{Match: "papel", Image: "img/aseo/papel-higienico.jpg"},
			{Match: "escoba", Image: "img/aseo/escoba.jpg"},
		},
		Placeholder: PlaceholderImage,
	}
}
