package domain

// Item is a stack of a single item as reported by the game client.
// ID is an opaque key into the item reference table.
type Item struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// ItemWithName is an Item resolved against the reference table.
// Name is nil when the id is unknown.
type ItemWithName struct {
	ID       int     `json:"id"`
	Quantity int     `json:"quantity"`
	Name     *string `json:"name"`
}

// cloneItems returns an independent copy of items, preserving nil.
func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// cloneEquipment returns an independent copy of an equipment map, preserving nil.
func cloneEquipment(items map[string]Item) map[string]Item {
	if items == nil {
		return nil
	}
	out := make(map[string]Item, len(items))
	for slot, item := range items {
		out[slot] = item
	}
	return out
}
