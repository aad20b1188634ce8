package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Clone_IsIndependent(t *testing.T) {
	original := &Snapshot{
		Username:  StringPtr("zezima"),
		Position:  &WorldPoint{X: 3200, Y: 3200, Plane: 0},
		Equipment: map[string]Item{"HEAD": {ID: 1163, Quantity: 1}},
		Inventory: []Item{{ID: 995, Quantity: 100}},
		Bank:      []Item{{ID: 4151, Quantity: 1}},
		Stats: &StatUpdate{
			Username:    "zezima",
			CombatLevel: 126,
			StatChanges: []StatChange{{Skill: SkillAttack, Level: 99, BoostedLevel: 99, XP: 13034431}},
		},
		Quests: &QuestUpdate{
			Username:     "zezima",
			QuestPoints:  5,
			QuestChanges: []Quest{{ID: 1, Name: "Cook's Assistant", State: QuestStateFinished}},
		},
		LastLoot: &LootUpdate{
			Username: "zezima",
			EntityID: IntPtr(2),
			Items:    []Item{{ID: 526, Quantity: 1}},
		},
		Skull: IntPtr(0),
	}

	clone := original.Clone()

	// Mutate every reference-typed field on the clone
	*clone.Username = "other"
	clone.Position.X = 1
	clone.Equipment["HEAD"] = Item{ID: 1, Quantity: 1}
	clone.Inventory[0].Quantity = 1
	clone.Bank[0].ID = 1
	clone.Stats.StatChanges[0].Level = 1
	clone.Quests.QuestChanges[0].State = "NOT_STARTED"
	clone.LastLoot.Items[0].ID = 1
	*clone.LastLoot.EntityID = 99
	*clone.Skull = 1

	assert.Equal(t, "zezima", *original.Username)
	assert.Equal(t, 3200, original.Position.X)
	assert.Equal(t, 1163, original.Equipment["HEAD"].ID)
	assert.Equal(t, 100, original.Inventory[0].Quantity)
	assert.Equal(t, 4151, original.Bank[0].ID)
	assert.Equal(t, 99, original.Stats.StatChanges[0].Level)
	assert.Equal(t, QuestStateFinished, original.Quests.QuestChanges[0].State)
	assert.Equal(t, 526, original.LastLoot.Items[0].ID)
	assert.Equal(t, 2, *original.LastLoot.EntityID)
	assert.Equal(t, 0, *original.Skull)
}

func TestSnapshot_Clone_PreservesAbsence(t *testing.T) {
	var nilSnap *Snapshot
	assert.Equal(t, Snapshot{}, nilSnap.Clone())

	clone := (&Snapshot{}).Clone()
	assert.Nil(t, clone.Equipment)
	assert.Nil(t, clone.Inventory)
	assert.Nil(t, clone.Stats)
	assert.Nil(t, clone.LastLoot)
}

func TestEvents_KindAndPlayer(t *testing.T) {
	events := []Event{
		EquipmentUpdate{Username: "a"},
		InventoryUpdate{Username: "a"},
		BankUpdate{Username: "a"},
		StatUpdate{Username: "a"},
		QuestUpdate{Username: "a"},
		PositionUpdate{Username: "a"},
		LoginUpdate{Username: "a"},
		LootUpdate{Username: "a"},
		DeathUpdate{Username: "a"},
		OverheadUpdate{Username: "a"},
		SkullUpdate{Username: "a"},
	}
	require.Len(t, events, len(EventKinds))

	seen := make(map[EventKind]bool)
	for _, evt := range events {
		assert.Equal(t, "a", evt.Player())
		assert.False(t, seen[evt.Kind()], "duplicate kind %s", evt.Kind())
		seen[evt.Kind()] = true
	}
	for _, kind := range EventKinds {
		assert.True(t, seen[kind], "kind %s has no event type", kind)
	}
}

func TestFindSkill(t *testing.T) {
	changes := []StatChange{{Skill: SkillAttack}, {Skill: SkillMagic}}

	assert.Equal(t, 0, FindSkill(changes, SkillAttack))
	assert.Equal(t, 1, FindSkill(changes, SkillMagic))
	assert.Equal(t, -1, FindSkill(changes, SkillPrayer))
	assert.Equal(t, -1, FindSkill(nil, SkillPrayer))
}
