package merge

import (
	"time"

	"github.com/osse101/RuneStatus_Go/internal/domain"
)

// DeathTimeFormat is the layout of Snapshot.LastDeathTime.
const DeathTimeFormat = time.RFC3339

func applyEquipment(snap *domain.Snapshot, evt domain.EquipmentUpdate, _ time.Time) {
	equipment := make(map[string]domain.Item, len(evt.Items))
	for slot, item := range evt.Items {
		equipment[slot] = item
	}
	snap.Equipment = equipment
}

func applyInventory(snap *domain.Snapshot, evt domain.InventoryUpdate, _ time.Time) {
	snap.Inventory = copyItems(evt.Items)
}

func applyBank(snap *domain.Snapshot, evt domain.BankUpdate, _ time.Time) {
	snap.Bank = copyItems(evt.Items)
}

// applyStats merges skill changes by name instead of replacing the list, so
// clients may report one skill at a time without losing the others. The
// stored stats keep the username they were installed with; only the
// snapshot username follows the latest event.
func applyStats(snap *domain.Snapshot, evt domain.StatUpdate, _ time.Time) {
	if snap.Stats == nil {
		snap.Stats = evt.Clone()
		if snap.Stats.StatChanges == nil {
			snap.Stats.StatChanges = []domain.StatChange{}
		}
		return
	}

	snap.Stats.CombatLevel = evt.CombatLevel
	for _, change := range evt.StatChanges {
		if i := domain.FindSkill(snap.Stats.StatChanges, change.Skill); i >= 0 {
			snap.Stats.StatChanges[i] = change
			continue
		}
		snap.Stats.StatChanges = append(snap.Stats.StatChanges, change)
	}
}

// applyQuests replaces the quest list and recomputes the derived totals from
// this payload alone. A partial list therefore shrinks the totals.
func applyQuests(snap *domain.Snapshot, evt domain.QuestUpdate, _ time.Time) {
	completed := 0
	for _, q := range evt.QuestChanges {
		if q.State == domain.QuestStateFinished {
			completed++
		}
	}

	snap.Quests = evt.Clone()
	snap.QuestPoints = domain.IntPtr(evt.QuestPoints)
	snap.TotalQuests = domain.IntPtr(len(evt.QuestChanges))
	snap.QuestsCompleted = domain.IntPtr(completed)
}

func applyPosition(snap *domain.Snapshot, evt domain.PositionUpdate, _ time.Time) {
	pos := evt.Position
	snap.Position = &pos
}

func applyLogin(snap *domain.Snapshot, evt domain.LoginUpdate, _ time.Time) {
	snap.LoginState = domain.StringPtr(evt.State)
}

func applyLoot(snap *domain.Snapshot, evt domain.LootUpdate, _ time.Time) {
	snap.LastLoot = evt.Clone()
}

// applyDeath stamps the processing time; the event carries no time of its own.
func applyDeath(snap *domain.Snapshot, _ domain.DeathUpdate, now time.Time) {
	snap.LastDeathTime = domain.StringPtr(now.UTC().Format(DeathTimeFormat))
}

// applyOverhead assigns the optional value as sent, so an empty update clears it.
func applyOverhead(snap *domain.Snapshot, evt domain.OverheadUpdate, _ time.Time) {
	if evt.Overhead == nil {
		snap.Overhead = nil
		return
	}
	snap.Overhead = domain.StringPtr(*evt.Overhead)
}

func applySkull(snap *domain.Snapshot, evt domain.SkullUpdate, _ time.Time) {
	snap.Skull = domain.IntPtr(evt.Skull)
}

func copyItems(items []domain.Item) []domain.Item {
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out
}
