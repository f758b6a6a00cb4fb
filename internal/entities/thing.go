package entities

// Thing is anything that occupies a map square: a creature or an item
type Thing interface {
	GetName() string
	GetPosition() Position
}

var (
	_ Thing = (*Creature)(nil)
	_ Thing = (*Item)(nil)
)

// GetPosition returns where the creature stands
func (c *Creature) GetPosition() Position {
	if c == nil {
		return Position{}
	}
	return c.Position
}

// GetPosition returns where the item lies
func (i *Item) GetPosition() Position {
	if i == nil {
		return Position{}
	}
	return i.Position
}
