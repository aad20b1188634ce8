// Package view joins a player snapshot with the item table to produce the
// display form served to clients.
package view

import (
	"github.com/osse101/RuneStatus_Go/internal/domain"
	"github.com/osse101/RuneStatus_Go/internal/itemdb"
)

// Build returns the display form of snap. Every item is annotated with its
// name from names; ids missing from names keep a nil name. Scalar and stats
// fields are shared with snap, so pass a copy nobody else mutates. names may
// be nil.
func Build(snap domain.Snapshot, names itemdb.Lookup) domain.PlayerView {
	r := resolver{names: names, cache: make(map[int]*string)}

	return domain.PlayerView{
		Username:        snap.Username,
		Position:        snap.Position,
		LoginState:      snap.LoginState,
		Equipment:       r.equipment(snap.Equipment),
		Inventory:       r.items(snap.Inventory),
		Bank:            r.items(snap.Bank),
		Stats:           snap.Stats,
		Quests:          snap.Quests,
		QuestsCompleted: snap.QuestsCompleted,
		TotalQuests:     snap.TotalQuests,
		QuestPoints:     snap.QuestPoints,
		LastLoot:        r.loot(snap.LastLoot),
		LastDeathTime:   snap.LastDeathTime,
		Overhead:        snap.Overhead,
		Skull:           snap.Skull,
	}
}

// resolver memoizes lookups for the duration of one Build.
type resolver struct {
	names itemdb.Lookup
	cache map[int]*string
}

func (r *resolver) name(id int) *string {
	if name, ok := r.cache[id]; ok {
		return name
	}
	var out *string
	if r.names != nil {
		if name, ok := r.names.Name(id); ok {
			out = &name
		}
	}
	r.cache[id] = out
	return out
}

func (r *resolver) item(it domain.Item) domain.ItemWithName {
	return domain.ItemWithName{ID: it.ID, Quantity: it.Quantity, Name: r.name(it.ID)}
}

func (r *resolver) items(items []domain.Item) []domain.ItemWithName {
	if items == nil {
		return nil
	}
	out := make([]domain.ItemWithName, len(items))
	for i, it := range items {
		out[i] = r.item(it)
	}
	return out
}

func (r *resolver) equipment(slots map[string]domain.Item) map[string]domain.ItemWithName {
	if slots == nil {
		return nil
	}
	out := make(map[string]domain.ItemWithName, len(slots))
	for slot, it := range slots {
		out[slot] = r.item(it)
	}
	return out
}

func (r *resolver) loot(loot *domain.LootUpdate) *domain.LootView {
	if loot == nil {
		return nil
	}
	return &domain.LootView{
		Username:   loot.Username,
		LootType:   loot.LootType,
		EntityID:   loot.EntityID,
		EntityName: loot.EntityName,
		Items:      r.items(loot.Items),
	}
}
