package cards

import (
	"slices"
	"strings"
)

// CreatureClass is the combat archetype of a creature
type CreatureClass string

// Creature classes
const (
	ClassGuardian  CreatureClass = "Guardian"
	ClassHunter    CreatureClass = "Hunter"
	ClassMystic    CreatureClass = "Mystic"
	ClassTrickster CreatureClass = "Trickster"
)

var allClasses = []CreatureClass{
	ClassGuardian,
	ClassHunter,
	ClassMystic,
	ClassTrickster,
}

var classPreferredTypes = map[CreatureClass][]ItemType{
	ClassGuardian:  {ItemTypeShield, ItemTypeHeavy},
	ClassHunter:    {ItemTypeBow, ItemTypeBlade},
	ClassMystic:    {ItemTypeStaff, ItemTypeCrystal, ItemTypeArtifact},
	ClassTrickster: {ItemTypeLight, ItemTypeCharm, ItemTypeTonic},
}

// String returns the string representation of the class
func (c CreatureClass) String() string {
	return string(c)
}

// IsValid checks if the class is one of the four known classes
func (c CreatureClass) IsValid() bool {
	_, ok := classPreferredTypes[c]
	return ok
}

// PreferredTypes returns the item types this class gains synergy from
func (c CreatureClass) PreferredTypes() []ItemType {
	return slices.Clone(classPreferredTypes[c])
}

// Prefers reports whether the class has synergy with the item type
func (c CreatureClass) Prefers(t ItemType) bool {
	return slices.Contains(classPreferredTypes[c], t)
}

// AllClasses returns every class in declaration order
func AllClasses() []CreatureClass {
	return slices.Clone(allClasses)
}

// ParseClass matches a name case-insensitively
func ParseClass(s string) (CreatureClass, bool) {
	s = strings.TrimSpace(s)
	for _, c := range allClasses {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}
