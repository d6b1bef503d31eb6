package models

import (
	"encoding/json"
	"fmt"
)

// Category names one of the three roster sequences a contact record lands in.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryContact
	CategoryGroupJoined
	CategoryGroupInvited
)

// Categories lists every recognized category in roster order.
var Categories = [...]Category{CategoryContact, CategoryGroupJoined, CategoryGroupInvited}

const (
	TagContact      = "CONTACT"
	TagGroupJoined  = "GROUP_JOINED"
	TagGroupInvited = "GROUP_INVITED"
)

func (c Category) String() string {
	switch c {
	case CategoryContact:
		return TagContact
	case CategoryGroupJoined:
		return TagGroupJoined
	case CategoryGroupInvited:
		return TagGroupInvited
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	return c >= CategoryContact && c <= CategoryGroupInvited
}

// ParseCategory resolves a wire tag. Unknown tags wrap ErrInvalidArgument.
func ParseCategory(tag string) (Category, error) {
	switch tag {
	case TagContact:
		return CategoryContact, nil
	case TagGroupJoined:
		return CategoryGroupJoined, nil
	case TagGroupInvited:
		return CategoryGroupInvited, nil
	}
	return CategoryUnknown, fmt.Errorf("unknown contact category %q: %w", tag, ErrInvalidArgument)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("marshal %s: %w", c, ErrInvalidArgument)
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ContactBatch is a roster sync payload: one category and the records for it.
// On the wire it is the two-element array ["CONTACT", [{...}, ...]].
type ContactBatch struct {
	Category Category
	Records  []ContactRecord
}

func (b ContactBatch) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{b.Category, b.Records})
}

func (b *ContactBatch) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("contact batch is not an array: %w", ErrInvalidArgument)
	}
	if len(pair) != 2 {
		return fmt.Errorf("contact batch has %d elements, want 2: %w", len(pair), ErrInvalidArgument)
	}

	var tag string
	if err := json.Unmarshal(pair[0], &tag); err != nil {
		return fmt.Errorf("contact batch category is not a string: %w", ErrInvalidArgument)
	}
	category, err := ParseCategory(tag)
	if err != nil {
		return err
	}

	var records []ContactRecord
	if err := json.Unmarshal(pair[1], &records); err != nil {
		return fmt.Errorf("contact batch records: %v: %w", err, ErrInvalidArgument)
	}

	b.Category = category
	b.Records = records
	return nil
}

// Validate checks the batch resolves to one recognized category and carries records.
func (b ContactBatch) Validate() error {
	if !b.Category.Valid() {
		return fmt.Errorf("contact batch category %s: %w", b.Category, ErrInvalidArgument)
	}
	if len(b.Records) == 0 {
		return fmt.Errorf("contact batch for %s has no records: %w", b.Category, ErrInvalidArgument)
	}
	return nil
}
