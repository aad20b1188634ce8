package domain

// PlayerView is the display form of a Snapshot served by GET /status.
// Every item carries its resolved name; absent fields encode as null.
type PlayerView struct {
	Username        *string                 `json:"username"`
	Position        *WorldPoint             `json:"position"`
	LoginState      *string                 `json:"loginState"`
	Equipment       map[string]ItemWithName `json:"equipment"`
	Inventory       []ItemWithName          `json:"inventory"`
	Bank            []ItemWithName          `json:"bank"`
	Stats           *StatUpdate             `json:"stats"`
	Quests          *QuestUpdate            `json:"quests"`
	QuestsCompleted *int                    `json:"questsCompleted"`
	TotalQuests     *int                    `json:"totalQuests"`
	QuestPoints     *int                    `json:"questPoints"`
	LastLoot        *LootView               `json:"lastLoot"`
	LastDeathTime   *string                 `json:"lastDeathTime"`
	Overhead        *string                 `json:"overhead"`
	Skull           *int                    `json:"skull"`
}

// LootView is a LootUpdate with resolved item names.
type LootView struct {
	Username   string         `json:"username"`
	LootType   *string        `json:"lootType"`
	EntityID   *int           `json:"entityId"`
	EntityName *string        `json:"entityName"`
	Items      []ItemWithName `json:"items"`
}
