package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RuneStatus_Go/internal/domain"
	"github.com/osse101/RuneStatus_Go/internal/itemdb"
)

var names = itemdb.Map{
	995:  "Coins",
	4151: "Abyssal whip",
	1163: "Rune full helm",
}

func TestBuild_EmptySnapshotIsAllNull(t *testing.T) {
	v := Build(domain.Snapshot{}, names)

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	expected := []string{
		"username", "position", "loginState", "equipment", "inventory", "bank",
		"stats", "quests", "questsCompleted", "totalQuests", "questPoints",
		"lastLoot", "lastDeathTime", "overhead", "skull",
	}
	assert.Len(t, fields, len(expected))
	for _, key := range expected {
		value, ok := fields[key]
		assert.True(t, ok, "missing key %s", key)
		assert.Nil(t, value, "key %s should be null", key)
	}
}

func TestBuild_ResolvesInventoryNames(t *testing.T) {
	snap := domain.Snapshot{
		Inventory: []domain.Item{{ID: 995, Quantity: 100}, {ID: 99999, Quantity: 1}},
	}

	v := Build(snap, names)

	require.Len(t, v.Inventory, 2)
	assert.Equal(t, 995, v.Inventory[0].ID)
	assert.Equal(t, 100, v.Inventory[0].Quantity)
	require.NotNil(t, v.Inventory[0].Name)
	assert.Equal(t, "Coins", *v.Inventory[0].Name)

	assert.Equal(t, 99999, v.Inventory[1].ID)
	assert.Nil(t, v.Inventory[1].Name)

	raw, err := json.Marshal(v.Inventory)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":995,"quantity":100,"name":"Coins"},{"id":99999,"quantity":1,"name":null}]`, string(raw))
}

func TestBuild_ResolvesEquipmentBankAndLoot(t *testing.T) {
	entity := "Abyssal demon"
	snap := domain.Snapshot{
		Equipment: map[string]domain.Item{
			"HEAD":   {ID: 1163, Quantity: 1},
			"WEAPON": {ID: 4151, Quantity: 1},
		},
		Bank: []domain.Item{{ID: 995, Quantity: 5000000}},
		LastLoot: &domain.LootUpdate{
			Username:   "zezima",
			EntityID:   domain.IntPtr(415),
			EntityName: &entity,
			Items:      []domain.Item{{ID: 4151, Quantity: 1}},
		},
	}

	v := Build(snap, names)

	assert.Equal(t, "Rune full helm", *v.Equipment["HEAD"].Name)
	assert.Equal(t, "Abyssal whip", *v.Equipment["WEAPON"].Name)
	assert.Equal(t, "Coins", *v.Bank[0].Name)

	require.NotNil(t, v.LastLoot)
	assert.Equal(t, "zezima", v.LastLoot.Username)
	assert.Equal(t, 415, *v.LastLoot.EntityID)
	assert.Equal(t, entity, *v.LastLoot.EntityName)
	assert.Nil(t, v.LastLoot.LootType)
	assert.Equal(t, "Abyssal whip", *v.LastLoot.Items[0].Name)
}

func TestBuild_PassesThroughNonItemFields(t *testing.T) {
	snap := domain.Snapshot{
		Username:        domain.StringPtr("zezima"),
		Position:        &domain.WorldPoint{X: 3222, Y: 3218, Plane: 0},
		LoginState:      domain.StringPtr("LOGGED_IN"),
		Stats:           &domain.StatUpdate{Username: "zezima", CombatLevel: 126},
		QuestPoints:     domain.IntPtr(300),
		TotalQuests:     domain.IntPtr(158),
		QuestsCompleted: domain.IntPtr(158),
		LastDeathTime:   domain.StringPtr("2024-03-09T13:30:00Z"),
		Overhead:        domain.StringPtr("PROTECT_FROM_MELEE"),
		Skull:           domain.IntPtr(0),
	}

	v := Build(snap, names)

	assert.Equal(t, "zezima", *v.Username)
	assert.Equal(t, 3222, v.Position.X)
	assert.Equal(t, "LOGGED_IN", *v.LoginState)
	assert.Equal(t, 126, v.Stats.CombatLevel)
	assert.Equal(t, 300, *v.QuestPoints)
	assert.Equal(t, 158, *v.TotalQuests)
	assert.Equal(t, 158, *v.QuestsCompleted)
	assert.Equal(t, "2024-03-09T13:30:00Z", *v.LastDeathTime)
	assert.Equal(t, "PROTECT_FROM_MELEE", *v.Overhead)
	assert.Equal(t, 0, *v.Skull)
}

func TestBuild_EmptyCollectionsStayEmpty(t *testing.T) {
	v := Build(domain.Snapshot{Inventory: []domain.Item{}, Equipment: map[string]domain.Item{}}, names)

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"inventory":[]`)
	assert.Contains(t, string(raw), `"equipment":{}`)
}

func TestBuild_NilLookup(t *testing.T) {
	v := Build(domain.Snapshot{Inventory: []domain.Item{{ID: 995, Quantity: 1}}}, nil)
	assert.Nil(t, v.Inventory[0].Name)

	var empty *itemdb.Table
	v = Build(domain.Snapshot{Inventory: []domain.Item{{ID: 995, Quantity: 1}}}, empty)
	assert.Nil(t, v.Inventory[0].Name)
}

func TestBuild_UsesTable(t *testing.T) {
	table := itemdb.NewTable(map[int]string{995: "Coins"})

	v := Build(domain.Snapshot{Bank: []domain.Item{{ID: 995, Quantity: 1}}}, table)
	assert.Equal(t, "Coins", *v.Bank[0].Name)
}
