package cards

import "strings"

// Element is one of the six thematic tags governing compatibility
type Element string

// Elements
const (
	ElementFire   Element = "Fire"
	ElementWater  Element = "Water"
	ElementEarth  Element = "Earth"
	ElementAir    Element = "Air"
	ElementLight  Element = "Light"
	ElementShadow Element = "Shadow"
)

var allElements = []Element{
	ElementFire,
	ElementWater,
	ElementEarth,
	ElementAir,
	ElementLight,
	ElementShadow,
}

var opposingElements = map[Element]Element{
	ElementFire:   ElementWater,
	ElementWater:  ElementFire,
	ElementEarth:  ElementAir,
	ElementAir:    ElementEarth,
	ElementLight:  ElementShadow,
	ElementShadow: ElementLight,
}

var complementaryElements = map[Element]Element{
	ElementFire:   ElementAir,
	ElementAir:    ElementFire,
	ElementWater:  ElementEarth,
	ElementEarth:  ElementWater,
	ElementLight:  ElementShadow,
	ElementShadow: ElementLight,
}

// String returns the string representation of the element
func (e Element) String() string {
	return string(e)
}

// IsValid checks if the element is one of the six known elements
func (e Element) IsValid() bool {
	_, ok := opposingElements[e]
	return ok
}

// Opposing returns the element this one is opposed to.
// Unknown elements return the empty element.
func (e Element) Opposing() Element {
	return opposingElements[e]
}

// Complementary returns the element that pairs well with this one.
// Unknown elements return the empty element.
func (e Element) Complementary() Element {
	return complementaryElements[e]
}

// AllElements returns every element in declaration order
func AllElements() []Element {
	out := make([]Element, len(allElements))
	copy(out, allElements)
	return out
}

// ParseElement matches a name case-insensitively
func ParseElement(s string) (Element, bool) {
	s = strings.TrimSpace(s)
	for _, e := range allElements {
		if strings.EqualFold(s, string(e)) {
			return e, true
		}
	}
	return "", false
}

// DetectElement returns the first element whose name appears in text.
// Matching is a case-insensitive substring search in declaration order.
func DetectElement(text string) (Element, bool) {
	lower := strings.ToLower(text)
	for _, e := range allElements {
		if strings.Contains(lower, strings.ToLower(string(e))) {
			return e, true
		}
	}
	return "", false
}
