package domain

import "reflect"

// EventKind identifies one of the closed set of player update events.
type EventKind string

const (
	EventKindEquipment EventKind = "equipment"
	EventKindInventory EventKind = "inventory"
	EventKindBank      EventKind = "bank"
	EventKindStat      EventKind = "stat"
	EventKindQuest     EventKind = "quest"
	EventKindPosition  EventKind = "position"
	EventKindLogin     EventKind = "login"
	EventKindLoot      EventKind = "loot"
	EventKindDeath     EventKind = "death"
	EventKindOverhead  EventKind = "overhead"
	EventKindSkull     EventKind = "skull"
)

// EventKinds lists every known kind in route registration order.
var EventKinds = []EventKind{
	EventKindPosition,
	EventKindLogin,
	EventKindStat,
	EventKindQuest,
	EventKindBank,
	EventKindLoot,
	EventKindInventory,
	EventKindEquipment,
	EventKindDeath,
	EventKindOverhead,
	EventKindSkull,
}

// Event is a decoded player update. Only the update types in this file implement it.
type Event interface {
	Kind() EventKind
	Player() string
}

// IsNilEvent reports a nil interface or a typed nil pointer such as
// (*LoginUpdate)(nil), on which Kind and Player would panic.
func IsNilEvent(evt Event) bool {
	if evt == nil {
		return true
	}
	v := reflect.ValueOf(evt)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// EquipmentUpdate replaces the worn equipment, keyed by slot name.
type EquipmentUpdate struct {
	Username string          `json:"username" validate:"required,rsn"`
	Items    map[string]Item `json:"items"`
}

// InventoryUpdate replaces the inventory contents.
type InventoryUpdate struct {
	Username string `json:"username" validate:"required,rsn"`
	Items    []Item `json:"items"`
}

// BankUpdate replaces the bank contents.
type BankUpdate struct {
	Username string `json:"username" validate:"required,rsn"`
	Items    []Item `json:"items"`
}

// StatUpdate carries the combat level and any number of changed skills.
// It is also the stored form of the merged stats on the snapshot.
type StatUpdate struct {
	Username    string       `json:"username" validate:"required,rsn"`
	CombatLevel int          `json:"combatLevel"`
	StatChanges []StatChange `json:"statChanges"`
}

// QuestUpdate carries the full quest list as last reported.
type QuestUpdate struct {
	Username     string  `json:"username" validate:"required,rsn"`
	QuestPoints  int     `json:"questPoints"`
	QuestChanges []Quest `json:"questChanges"`
}

// PositionUpdate moves the player.
type PositionUpdate struct {
	Username string     `json:"username" validate:"required,rsn"`
	Position WorldPoint `json:"position"`
}

// LoginUpdate reports the client login state (e.g. LOGGED_IN, LOGIN_SCREEN).
type LoginUpdate struct {
	Username string `json:"username" validate:"required,rsn"`
	State    string `json:"state"`
}

// LootUpdate reports the most recent loot received.
type LootUpdate struct {
	Username   string  `json:"username" validate:"required,rsn"`
	LootType   *string `json:"lootType"`
	EntityID   *int    `json:"entityId"`
	EntityName *string `json:"entityName"`
	Items      []Item  `json:"items"`
}

// DeathUpdate marks a death. It carries no timestamp of its own.
type DeathUpdate struct {
	Username string `json:"username" validate:"required,rsn"`
}

// OverheadUpdate reports the active overhead prayer, nil when none.
type OverheadUpdate struct {
	Username string  `json:"username" validate:"required,rsn"`
	Overhead *string `json:"overhead"`
}

// SkullUpdate reports the skull icon id.
type SkullUpdate struct {
	Username string `json:"username" validate:"required,rsn"`
	Skull    int    `json:"skull"`
}

func (EquipmentUpdate) Kind() EventKind { return EventKindEquipment }
func (InventoryUpdate) Kind() EventKind { return EventKindInventory }
func (BankUpdate) Kind() EventKind      { return EventKindBank }
func (StatUpdate) Kind() EventKind      { return EventKindStat }
func (QuestUpdate) Kind() EventKind     { return EventKindQuest }
func (PositionUpdate) Kind() EventKind  { return EventKindPosition }
func (LoginUpdate) Kind() EventKind     { return EventKindLogin }
func (LootUpdate) Kind() EventKind      { return EventKindLoot }
func (DeathUpdate) Kind() EventKind     { return EventKindDeath }
func (OverheadUpdate) Kind() EventKind  { return EventKindOverhead }
func (SkullUpdate) Kind() EventKind     { return EventKindSkull }

func (e EquipmentUpdate) Player() string { return e.Username }
func (e InventoryUpdate) Player() string { return e.Username }
func (e BankUpdate) Player() string      { return e.Username }
func (e StatUpdate) Player() string      { return e.Username }
func (e QuestUpdate) Player() string     { return e.Username }
func (e PositionUpdate) Player() string  { return e.Username }
func (e LoginUpdate) Player() string     { return e.Username }
func (e LootUpdate) Player() string      { return e.Username }
func (e DeathUpdate) Player() string     { return e.Username }
func (e OverheadUpdate) Player() string  { return e.Username }
func (e SkullUpdate) Player() string     { return e.Username }
