package cards

import (
	"encoding/json"
)

// SetSize is the number of items in a complete card set
const SetSize = 4

// CardSet is one creature plus its four items, with the verdict of validation.
// Validity is advisory; an invalid set is still returned and rendered.
type CardSet struct {
	Creature           *Creature `json:"creature"`
	Items              []Item    `json:"items"`
	IsValid            bool      `json:"is_valid"`
	ValidationMessages []string  `json:"validation_messages"`
}

// ItemTypes returns the item type of every item in order
func (s *CardSet) ItemTypes() []ItemType {
	types := make([]ItemType, 0, len(s.Items))
	for _, item := range s.Items {
		types = append(types, item.Base().ItemType)
	}
	return types
}

// UnmarshalJSON decodes items through their category tag
func (s *CardSet) UnmarshalJSON(data []byte) error {
	var raw struct {
		Creature           *Creature         `json:"creature"`
		Items              []json.RawMessage `json:"items"`
		IsValid            bool              `json:"is_valid"`
		ValidationMessages []string          `json:"validation_messages"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	items := make([]Item, 0, len(raw.Items))
	for _, data := range raw.Items {
		item, err := UnmarshalItem(data)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	s.Creature = raw.Creature
	s.Items = items
	s.IsValid = raw.IsValid
	s.ValidationMessages = raw.ValidationMessages
	if s.ValidationMessages == nil {
		s.ValidationMessages = []string{}
	}
	return nil
}
