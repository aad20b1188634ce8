package baseline

import (
	"math"

	"github.com/osse101/RuneStatus_Go/internal/domain"
)

// CombatLevel computes the combat level from skill levels. Skills missing
// from changes count as level 1.
func CombatLevel(changes []domain.StatChange) int {
	level := func(skill string) float64 {
		if i := domain.FindSkill(changes, skill); i >= 0 {
			return float64(changes[i].Level)
		}
		return 1
	}

	attack := level(domain.SkillAttack)
	defence := level(domain.SkillDefence)
	strength := level(domain.SkillStrength)
	hitpoints := level(domain.SkillHitpoints)
	prayer := level(domain.SkillPrayer)
	ranged := level(domain.SkillRanged)
	magic := level(domain.SkillMagic)

	base := 0.25 * (defence + hitpoints + math.Floor(prayer/2))
	melee := 0.325 * (attack + strength)
	rng := 0.325 * math.Floor(ranged*3/2)
	mage := 0.325 * math.Floor(magic*3/2)

	return int(math.Floor(base + max(melee, rng, mage)))
}
