package physics

// Category is the collision group of a collider.
type Category uint8

const (
	CategoryDefault Category = iota
	CategoryPlayer
	CategoryProjectile
	CategoryPlatform
	CategoryHazard
	CategoryPickup
	CategoryAbilityEffect
	CategorySensor
	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryDefault:       "default",
	CategoryPlayer:        "player",
	CategoryProjectile:    "projectile",
	CategoryPlatform:      "platform",
	CategoryHazard:        "hazard",
	CategoryPickup:        "pickup",
	CategoryAbilityEffect: "ability_effect",
	CategorySensor:        "sensor",
}

func (c Category) String() string {
	if c >= categoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

// tag is the resolv tag every object of the category carries.
func (c Category) tag() string {
	return "cat:" + c.String()
}

// accepts lists, per category, the categories it is willing to touch.
var accepts = [categoryCount][]Category{
	CategoryDefault:       allCategories(),
	CategoryPlayer:        {CategoryPlatform, CategoryHazard, CategoryPickup, CategoryAbilityEffect, CategorySensor},
	CategoryProjectile:    {CategoryPlayer, CategoryPlatform, CategoryProjectile},
	CategoryPlatform:      {CategoryPlayer, CategoryProjectile, CategoryPlatform, CategoryHazard},
	CategoryHazard:        {CategoryPlayer},
	CategoryPickup:        {CategoryPlayer},
	CategoryAbilityEffect: {CategoryPlayer, CategoryProjectile},
	CategorySensor:        allCategories(),
}

// collides is the category x category table. Two categories interact
// only when each accepts the other.
var collides = buildCollisionTable()

func allCategories() []Category {
	out := make([]Category, categoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

func buildCollisionTable() [categoryCount][categoryCount]bool {
	var accept [categoryCount][categoryCount]bool
	for a, list := range accepts {
		for _, b := range list {
			accept[a][b] = true
		}
	}
	var table [categoryCount][categoryCount]bool
	for a := Category(0); a < categoryCount; a++ {
		for b := Category(0); b < categoryCount; b++ {
			table[a][b] = accept[a][b] && accept[b][a]
		}
	}
	return table
}

// Collides reports whether colliders of categories a and b interact.
func Collides(a, b Category) bool {
	if a >= categoryCount || b >= categoryCount {
		return false
	}
	return collides[a][b]
}

// partnerTags returns the resolv tags of every category c interacts with.
func partnerTags(c Category) []string {
	var out []string
	for b := Category(0); b < categoryCount; b++ {
		if Collides(c, b) {
			out = append(out, b.tag())
		}
	}
	return out
}
