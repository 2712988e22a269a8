package attack

// SpecialEffect tags a rules side effect of an attack. The engine only
// surfaces the tag; applying it is up to the caller.
type SpecialEffect string

const (
	SpecialNone      SpecialEffect = ""
	SpecialExtended  SpecialEffect = "extended"
	SpecialKnockback SpecialEffect = "knockback"
	SpecialCleave    SpecialEffect = "cleave"
	SpecialCharge    SpecialEffect = "charge"
	SpecialPin       SpecialEffect = "pin"
	SpecialSpin      SpecialEffect = "spin"
	SpecialPenetrate SpecialEffect = "penetrate"
	SpecialQuake     SpecialEffect = "quake"
	SpecialWard      SpecialEffect = "ward"
	SpecialPetrify   SpecialEffect = "petrify"
)

var specialTitles = map[SpecialEffect]string{
	SpecialNone:      "",
	SpecialExtended:  "Long Reach",
	SpecialKnockback: "Haft Sweep",
	SpecialCleave:    "Reaping Sweep",
	SpecialCharge:    "Charging Lance",
	SpecialPin:       "Pinning Strike",
	SpecialSpin:      "Titan's Windmill",
	SpecialPenetrate: "Giant's Skewer",
	SpecialQuake:     "Earthshaker",
	SpecialWard:      "Mineral Ward",
	SpecialPetrify:   "Petrifying Touch",
}

// Valid reports whether s is a known special effect
func (s SpecialEffect) Valid() bool {
	_, ok := specialTitles[s]
	return ok
}

// Title is the heading shown with the effect on a result card
func (s SpecialEffect) Title() string {
	return specialTitles[s]
}

// String returns "none" for the empty effect
func (s SpecialEffect) String() string {
	if s == SpecialNone {
		return "none"
	}
	return string(s)
}
