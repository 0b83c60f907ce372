package animal

// Diet classifies what an animal eats. It drives enclosure compatibility and
// the zoo's batch feeding heuristic.
type Diet uint8

const (
	DietCarnivore Diet = iota
	DietHerbivore
	DietOmnivore
)

func (d Diet) String() string {
	switch d {
	case DietCarnivore:
		return "carnivore"
	case DietHerbivore:
		return "herbivore"
	default:
		return "omnivore"
	}
}

// Species holds the per-species parameter set: diet, habitat, feeding rules,
// and daily behavior quirks. The differences between species are parametric,
// so one record per species replaces a subclass hierarchy.
type Species struct {
	Name    string
	Kind    string // mammal, bird, reptile
	Diet    Diet
	Habitat string
	Sound   string

	// Feeding: food names are matched by substring. Favorites select the big
	// hunger-reduction branch; anything else takes the fallback branch.
	Favorites         []string
	FavoriteHunger    float64
	FavoriteHappiness float64
	FallbackHunger    float64
	FallbackHappiness float64

	// Refusal rules. RefuseUnless refuses any food not containing one of the
	// listed substrings (picky carnivores). RefuseIfPresent refuses food
	// containing one (herbivores offered meat). A refusal changes no vitals.
	RefuseUnless    []string
	RefuseIfPresent []string
	RefuseMessage   string

	FeastMessage string
	PickMessage  string

	// Daily drift on top of the base decay: flying birds burn energy,
	// reptiles run a slow metabolism.
	DailyHunger float64

	// Daily quirk: mammals socialize, reptiles bask.
	QuirkChance    float64
	QuirkHappiness float64
}

// catalog is the built-in species registry, keyed by lower-case type name.
var catalog = map[string]*Species{
	"lion": {
		Name: "Lion", Kind: "mammal", Diet: DietCarnivore, Habitat: "savannah",
		Sound:     "Rooaar!",
		Favorites: []string{"meat"}, FavoriteHunger: -35.0, FavoriteHappiness: 10.0,
		FallbackHunger: -15.0,
		RefuseUnless:   []string{"meat"},
		RefuseMessage:  "%s stares at the %s with disdain - this is not meat!",
		FeastMessage:   "%s devours the %s hungrily!",
		PickMessage:    "%s picks at the %s without interest.",
		QuirkChance:    0.3, QuirkHappiness: 2.0,
	},
	"tiger": {
		Name: "Tiger", Kind: "mammal", Diet: DietCarnivore, Habitat: "jungle",
		Sound:          "Growl!",
		FallbackHunger: -30.0, FallbackHappiness: 5.0,
		RefuseUnless:  []string{"meat"},
		RefuseMessage: "%s sniffs the %s but refuses to eat it - needs meat!",
		PickMessage:   "%s happily eats the %s with mammalian appetite!",
		QuirkChance:   0.3, QuirkHappiness: 2.0,
	},
	"eagle": {
		Name: "Eagle", Kind: "bird", Diet: DietCarnivore, Habitat: "mountains",
		Sound:     "Screeeech!",
		Favorites: []string{"fish", "rodent"}, FavoriteHunger: -30.0, FavoriteHappiness: 12.0,
		FallbackHunger: -15.0,
		FeastMessage:   "%s tears into the %s with sharp talons!",
		PickMessage:    "%s picks at the %s reluctantly.",
		DailyHunger:    5.0,
	},
	"penguin": {
		Name: "Penguin", Kind: "bird", Diet: DietCarnivore, Habitat: "arctic",
		Sound:     "Honk!",
		Favorites: []string{"fish"}, FavoriteHunger: -20.0, FavoriteHappiness: 12.0,
		FallbackHunger: -10.0,
		FeastMessage:   "%s eagerly swallows the %s whole!",
		PickMessage:    "%s waddles away from the %s.",
	},
	"snake": {
		Name: "Snake", Kind: "reptile", Diet: DietCarnivore, Habitat: "forest",
		Sound:     "Hiss!",
		Favorites: []string{"insect", "rodent"}, FavoriteHunger: -40.0, FavoriteHappiness: 3.0,
		FallbackHunger: -20.0,
		FeastMessage:   "%s slowly consumes the %s.",
		PickMessage:    "%s cautiously tastes the %s before eating.",
		DailyHunger:    -5.0,
		QuirkChance:    0.4, QuirkHappiness: 3.0,
	},
	"elephant": {
		Name: "Elephant", Kind: "mammal", Diet: DietHerbivore, Habitat: "savannah",
		Sound:     "Trumpet!",
		Favorites: []string{"fruit", "vegetable"}, FavoriteHunger: -25.0, FavoriteHappiness: 8.0,
		FallbackHunger: -15.0,
		FeastMessage:   "%s uses its trunk to eat the %s happily!",
		PickMessage:    "%s cautiously samples the %s.",
		QuirkChance:    0.3, QuirkHappiness: 2.0,
	},
	"giraffe": {
		Name: "Giraffe", Kind: "mammal", Diet: DietHerbivore, Habitat: "savannah",
		Sound:          "Hum!",
		FallbackHunger: -30.0, FallbackHappiness: 5.0,
		RefuseIfPresent: []string{"meat"},
		RefuseMessage:   "%s looks disgusted by the %s - prefers plants!",
		PickMessage:     "%s happily eats the %s with mammalian appetite!",
		QuirkChance:     0.3, QuirkHappiness: 2.0,
	},
	"zebra": {
		Name: "Zebra", Kind: "mammal", Diet: DietHerbivore, Habitat: "savannah",
		Sound:          "Bray!",
		FallbackHunger: -30.0, FallbackHappiness: 5.0,
		RefuseIfPresent: []string{"meat"},
		RefuseMessage:   "%s looks disgusted by the %s - prefers plants!",
		PickMessage:     "%s happily eats the %s with mammalian appetite!",
		QuirkChance:     0.3, QuirkHappiness: 2.0,
	},

	// Generic fallbacks for animals without a dedicated entry.
	"mammal": {
		Name: "Mammal", Kind: "mammal", Diet: DietOmnivore, Habitat: "forest",
		Sound:          "Generic mammal sound!",
		FallbackHunger: -30.0, FallbackHappiness: 5.0,
		PickMessage: "%s happily eats the %s with mammalian appetite!",
		QuirkChance: 0.3, QuirkHappiness: 2.0,
	},
	"bird": {
		Name: "Bird", Kind: "bird", Diet: DietOmnivore, Habitat: "aviary",
		Sound:     "Chirp chirp!",
		Favorites: []string{"seed", "worm"}, FavoriteHunger: -25.0, FavoriteHappiness: 8.0,
		FallbackHunger: -15.0,
		FeastMessage:   "%s pecks at the %s enthusiastically!",
		PickMessage:    "%s cautiously pecks at the %s.",
		DailyHunger:    5.0,
	},
	"reptile": {
		Name: "Reptile", Kind: "reptile", Diet: DietCarnivore, Habitat: "forest",
		Sound:     "Hiss!",
		Favorites: []string{"insect", "rodent"}, FavoriteHunger: -40.0, FavoriteHappiness: 3.0,
		FallbackHunger: -20.0,
		FeastMessage:   "%s slowly consumes the %s.",
		PickMessage:    "%s cautiously tastes the %s before eating.",
		DailyHunger:    -5.0,
		QuirkChance:    0.4, QuirkHappiness: 3.0,
	},
}

// Lookup returns the species record for a type key, or nil if unknown.
func Lookup(typeKey string) *Species {
	return catalog[typeKey]
}
