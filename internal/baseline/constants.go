package baseline

import "time"

// Hiscores endpoint defaults
const (
	DefaultBaseURL    = "https://secure.runescape.com/m=hiscore_oldschool/index_lite.ws"
	DefaultTimeout    = 10 * time.Second
	DefaultRetryDelay = 500 * time.Millisecond
	DefaultUserAgent  = "runestatus/1.0 (+https://github.com/osse101/RuneStatus_Go)"

	QueryParamPlayer = "player"
)

// Skills lists the skill rows of the lite hiscores CSV in response order.
// The first row is the Overall total and is not a skill. Rows past the last
// skill are activities and bosses.
var Skills = []string{
	"Overall",
	"Attack", "Defence", "Strength", "Hitpoints", "Ranged", "Prayer", "Magic",
	"Cooking", "Woodcutting", "Fletching", "Fishing", "Firemaking", "Crafting",
	"Smithing", "Mining", "Herblore", "Agility", "Thieving", "Slayer", "Farming",
	"Runecraft", "Hunter", "Construction", "Sailing",
}

// Level floors applied to unranked rows
const (
	MinSkillLevel     = 1
	MinHitpointsLevel = 10
)

const (
	ErrFmtBadRow      = "%w: row %d (%s): %q"
	ErrFmtStatus      = "%w: status %d"
	ErrFmtRetries     = "%w: giving up after %d attempts: %w"
	ErrFmtBuildURL    = "%w: bad hiscores url: %w"
	ErrFmtReadBody    = "%w: reading body: %w"
	ErrMsgEmptyResult = "no skill rows"
)

const (
	LogMsgFetching       = "Fetching hiscores baseline"
	LogMsgRetrying       = "Retrying hiscores request"
	LogMsgRequestFailed  = "Hiscores request failed"
	LogMsgServerError    = "Hiscores server error, will retry"
	LogMsgBaselineLoaded = "Hiscores baseline loaded"
)
