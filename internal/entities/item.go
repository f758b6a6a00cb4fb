package entities

// Item is a movable or static object: equipment, containers, corpses, ground tiles.
type Item struct {
	// ItemID is the item type (sprite/definition) id
	ItemID uint16 `json:"item_id"`

	// UniqueID is a map-assigned unique id, zero when the item has none
	UniqueID uint32 `json:"unique_id,omitempty"`

	ActionID uint16 `json:"action_id,omitempty"`

	// SubType is the stack count or fluid type
	SubType uint16 `json:"sub_type,omitempty"`

	Name     string   `json:"name"`
	Text     string   `json:"text,omitempty"`
	Position Position `json:"position"`
}

// GetName returns the item name, or an empty string for nil
func (i *Item) GetName() string {
	if i == nil {
		return ""
	}
	return i.Name
}

// Tile is a single map square
type Tile struct {
	Position Position `json:"position"`
	Ground   *Item    `json:"ground,omitempty"`
}
