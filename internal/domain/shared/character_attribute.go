package shared

import (
	"fmt"
	"strings"
)

// Attribute is one of the six ability scores
type Attribute string

var Attributes = []Attribute{AttributeStrength, AttributeDexterity, AttributeConstitution, AttributeIntelligence, AttributeWisdom, AttributeCharisma}

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "str"
	AttributeDexterity    Attribute = "dex"
	AttributeConstitution Attribute = "con"
	AttributeIntelligence Attribute = "int"
	AttributeWisdom       Attribute = "wis"
	AttributeCharisma     Attribute = "cha"
)

var attributeNames = map[Attribute]string{
	AttributeStrength:     "Strength",
	AttributeDexterity:    "Dexterity",
	AttributeConstitution: "Constitution",
	AttributeIntelligence: "Intelligence",
	AttributeWisdom:       "Wisdom",
	AttributeCharisma:     "Charisma",
}

// Short returns the upper case abbreviation, e.g. "STR"
func (a Attribute) Short() string {
	return strings.ToUpper(string(a))
}

// Name returns the full attribute name
func (a Attribute) Name() string {
	return attributeNames[a]
}

// ParseAttribute accepts either the abbreviation or the full name, any case.
func ParseAttribute(s string) (Attribute, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, attr := range Attributes {
		if key == string(attr) || key == strings.ToLower(attr.Name()) {
			return attr, nil
		}
	}
	return AttributeNone, fmt.Errorf("unknown attribute %q", s)
}

// Modifier converts an ability score to its modifier, rounding down.
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}
