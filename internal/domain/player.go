package domain

// QuestStateFinished is the quest state counted as completed.
const QuestStateFinished = "FINISHED"

// WorldPoint is a tile position in the game world.
type WorldPoint struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Plane int `json:"plane"`
}

// StatChange is the current state of a single skill.
type StatChange struct {
	BoostedLevel int    `json:"boostedLevel"`
	Level        int    `json:"level"`
	Skill        string `json:"skill"`
	XP           int    `json:"xp"`
}

// Quest is a single quest and its progress state.
type Quest struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// Snapshot is the aggregated state of the tracked character.
// A nil field means no update for it has been received yet.
type Snapshot struct {
	Username        *string
	Position        *WorldPoint
	LoginState      *string
	Equipment       map[string]Item
	Inventory       []Item
	Bank            []Item
	Stats           *StatUpdate
	Quests          *QuestUpdate
	QuestsCompleted *int
	TotalQuests     *int
	QuestPoints     *int
	LastLoot        *LootUpdate
	LastDeathTime   *string
	Overhead        *string
	Skull           *int
}

// Clone returns a deep copy that shares no memory with s.
func (s *Snapshot) Clone() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	return Snapshot{
		Username:        cloneString(s.Username),
		Position:        clonePtr(s.Position),
		LoginState:      cloneString(s.LoginState),
		Equipment:       cloneEquipment(s.Equipment),
		Inventory:       cloneItems(s.Inventory),
		Bank:            cloneItems(s.Bank),
		Stats:           s.Stats.Clone(),
		Quests:          s.Quests.Clone(),
		QuestsCompleted: clonePtr(s.QuestsCompleted),
		TotalQuests:     clonePtr(s.TotalQuests),
		QuestPoints:     clonePtr(s.QuestPoints),
		LastLoot:        s.LastLoot.Clone(),
		LastDeathTime:   cloneString(s.LastDeathTime),
		Overhead:        cloneString(s.Overhead),
		Skull:           clonePtr(s.Skull),
	}
}

// Clone returns a deep copy, nil for nil.
func (u *StatUpdate) Clone() *StatUpdate {
	if u == nil {
		return nil
	}
	out := *u
	if u.StatChanges != nil {
		out.StatChanges = make([]StatChange, len(u.StatChanges))
		copy(out.StatChanges, u.StatChanges)
	}
	return &out
}

// Clone returns a deep copy, nil for nil.
func (u *QuestUpdate) Clone() *QuestUpdate {
	if u == nil {
		return nil
	}
	out := *u
	if u.QuestChanges != nil {
		out.QuestChanges = make([]Quest, len(u.QuestChanges))
		copy(out.QuestChanges, u.QuestChanges)
	}
	return &out
}

// Clone returns a deep copy, nil for nil.
func (u *LootUpdate) Clone() *LootUpdate {
	if u == nil {
		return nil
	}
	return &LootUpdate{
		Username:   u.Username,
		LootType:   cloneString(u.LootType),
		EntityID:   clonePtr(u.EntityID),
		EntityName: cloneString(u.EntityName),
		Items:      cloneItems(u.Items),
	}
}

// StringPtr returns a pointer to a copy of v.
func StringPtr(v string) *string { return &v }

// IntPtr returns a pointer to a copy of v.
func IntPtr(v int) *int { return &v }

func cloneString(p *string) *string {
	return clonePtr(p)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
