package domain

// Skill names as reported by the game client plugin (upper case).
const (
	SkillAttack       = "ATTACK"
	SkillDefence      = "DEFENCE"
	SkillStrength     = "STRENGTH"
	SkillHitpoints    = "HITPOINTS"
	SkillRanged       = "RANGED"
	SkillPrayer       = "PRAYER"
	SkillMagic        = "MAGIC"
	SkillCooking      = "COOKING"
	SkillWoodcutting  = "WOODCUTTING"
	SkillFletching    = "FLETCHING"
	SkillFishing      = "FISHING"
	SkillFiremaking   = "FIREMAKING"
	SkillCrafting     = "CRAFTING"
	SkillSmithing     = "SMITHING"
	SkillMining       = "MINING"
	SkillHerblore     = "HERBLORE"
	SkillAgility      = "AGILITY"
	SkillThieving     = "THIEVING"
	SkillSlayer       = "SLAYER"
	SkillFarming      = "FARMING"
	SkillRunecraft    = "RUNECRAFT"
	SkillHunter       = "HUNTER"
	SkillConstruction = "CONSTRUCTION"
	SkillSailing      = "SAILING"
)

// FindSkill returns the index of skill in changes, or -1.
func FindSkill(changes []StatChange, skill string) int {
	for i := range changes {
		if changes[i].Skill == skill {
			return i
		}
	}
	return -1
}
