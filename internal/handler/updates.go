package handler

import (
	"io"
	"net/http"

	"github.com/osse101/RuneStatus_Go/internal/domain"
	"github.com/osse101/RuneStatus_Go/internal/logger"
	"github.com/osse101/RuneStatus_Go/internal/metrics"
	"github.com/osse101/RuneStatus_Go/internal/status"
)

// UpdatePath returns the route the game client posts kind updates to
func UpdatePath(kind domain.EventKind) string {
	return "/" + string(kind) + "_update/"
}

// UpdateHandlers returns one handler per known event kind
func UpdateHandlers(svc status.Service) map[domain.EventKind]http.HandlerFunc {
	return map[domain.EventKind]http.HandlerFunc{
		domain.EventKindEquipment: HandleEquipmentUpdate(svc),
		domain.EventKindInventory: HandleInventoryUpdate(svc),
		domain.EventKindBank:      HandleBankUpdate(svc),
		domain.EventKindStat:      HandleStatUpdate(svc),
		domain.EventKindQuest:     HandleQuestUpdate(svc),
		domain.EventKindPosition:  HandlePositionUpdate(svc),
		domain.EventKindLogin:     HandleLoginUpdate(svc),
		domain.EventKindLoot:      HandleLootUpdate(svc),
		domain.EventKindDeath:     HandleDeathUpdate(svc),
		domain.EventKindOverhead:  HandleOverheadUpdate(svc),
		domain.EventKindSkull:     HandleSkullUpdate(svc),
	}
}

// handleUpdate decodes one E from the body and hands it to the service.
// The body must match the kind's schema, so an update that omits its
// payload is rejected rather than applied as zero values. Success is an
// empty 200.
func handleUpdate[E domain.Event](svc status.Service) http.HandlerFunc {
	var zero E
	kind := string(zero.Kind())
	schema := UpdateSchemaName(kind)

	return func(w http.ResponseWriter, r *http.Request) {
		var evt E
		if err := decodeRequest(r, w, &evt, kind, schema); err != nil {
			return
		}

		log := logger.FromContext(r.Context())
		if svc.Apply(r.Context(), evt) {
			log.Debug(LogMsgUpdateApplied, "kind", kind, "username", evt.Player())
		} else {
			log.Warn(LogMsgUpdateIgnored, "kind", kind, "username", evt.Player())
		}

		respondOK(w)
	}
}

// HandleEquipmentUpdate replaces the worn equipment
// @Summary Equipment update
// @Description Replace the worn equipment, keyed by slot
// @Tags updates
// @Accept json
// @Param request body domain.EquipmentUpdate true "Equipment by slot"
// @Success 200
// @Failure 400 {object} ValidationErrorResponse
// @Router /equipment_update/ [post]
func HandleEquipmentUpdate(svc status.Service) http.HandlerFunc {
	return handleUpdate[domain.EquipmentUpdate](svc)
}

// HandleInventoryUpdate replaces the inventory
// @Summary Inventory update
// @Tags updates
// @Accept json
// @Param request body domain.InventoryUpdate true "Inventory items"
// @Success 200
// @Failure 400 {object} ValidationErrorResponse
// @Router /inventory_update/ [post]
func HandleInventoryUpdate(svc status.Service) http.HandlerFunc {
	return handleUpdate[domain.InventoryUpdate](svc)
}

// HandleBankUpdate replaces the bank
// @Summary Bank update
// @Tags updates
// @Accept json
// @Param request body domain.BankUpdate true "Bank items"
// @Success 200
// @Failure 400 {object} ValidationErrorResponse
// @Router /bank_update/ [post]
func HandleBankUpdate(svc status.Service) http.HandlerFunc {
	return handleUpdate[domain.BankUpdate](svc)
}

// HandleStatUpdate merges changed skills into the stored stats
// @Summary Stat update
// @Description Merge changed skills by name and replace the combat level
// @Tags updates
// @Accept json
// @Param request body domain.StatUpdate true "Changed skills"
// @Success 200
// @Failure 400 {object} ValidationErrorResponse
// @Router /stat_update/ [post]
func HandleStatUpdate(svc status.Service) http.HandlerFunc {
	return handleUpdate[domain.StatUpdate](svc)
}

// HandleQuestUpdate replaces the quest list and recomputes quest totals
// @Summary Quest update
// @Tags updates
// @Accept json
// @Param request body domain.QuestUpdate true "Quest list"
// @Success 200
// @Failure 400 {object} ValidationErrorResponse
// @Router /quest_update/ [post]
func HandleQuestUpdate(svc status.Service) http.HandlerFunc {
	return handleUpdate[domain.QuestUpdate](svc)
}

// HandlePositionUpdate moves the player
// @Summary Position update
// @Tags updates
// @Accept json
// @Param request body domain.PositionUpdate true "World point"
// @Success 200
// @Failure 400 {object} ValidationErrorResponse
// @Router /position_update/ [post]
func HandlePositionUpdate(svc status.Service) http.HandlerFunc {
	return handleUpdate[domain.PositionUpdate](svc)
}

// HandleLoginUpdate records the client login state
// @Summary Login update
// @Tags updates
// @Accept json
// @Param request body domain.LoginUpdate true "Login state"
// @Success 200
// @Failure 400 {object} ValidationErrorResponse
// @Router /login_update/ [post]
func HandleLoginUpdate(svc status.Service) http.HandlerFunc {
	return handleUpdate[domain.LoginUpdate](svc)
}

// HandleLootUpdate records the most recent loot
// @Summary Loot update
// @Tags updates
// @Accept json
// @Param request body domain.LootUpdate true "Loot received"
// @Success 200
// @Failure 400 {object} ValidationErrorResponse
// @Router /loot_update/ [post]
func HandleLootUpdate(svc status.Service) http.HandlerFunc {
	return handleUpdate[domain.LootUpdate](svc)
}

// HandleDeathUpdate stamps the death time with the server clock
// @Summary Death update
// @Tags updates
// @Accept json
// @Param request body domain.DeathUpdate true "Player"
// @Success 200
// @Failure 400 {object} ValidationErrorResponse
// @Router /death_update/ [post]
func HandleDeathUpdate(svc status.Service) http.HandlerFunc {
	return handleUpdate[domain.DeathUpdate](svc)
}

// HandleOverheadUpdate records the active overhead prayer
// @Summary Overhead update
// @Tags updates
// @Accept json
// @Param request body domain.OverheadUpdate true "Overhead prayer, null when none"
// @Success 200
// @Failure 400 {object} ValidationErrorResponse
// @Router /overhead_update/ [post]
func HandleOverheadUpdate(svc status.Service) http.HandlerFunc {
	return handleUpdate[domain.OverheadUpdate](svc)
}

// HandleSkullUpdate records the skull icon
// @Summary Skull update
// @Tags updates
// @Accept json
// @Param request body domain.SkullUpdate true "Skull icon id"
// @Success 200
// @Failure 400 {object} ValidationErrorResponse
// @Router /skull_update/ [post]
func HandleSkullUpdate(svc status.Service) http.HandlerFunc {
	return handleUpdate[domain.SkullUpdate](svc)
}

// HandleUnknownUpdate acknowledges posts to any other path. The raw body is
// logged, truncated to MaxLoggedPayloadBytes.
// @Summary Unknown update
// @Description Any other POST path is logged and acknowledged
// @Tags updates
// @Success 200
// @Router /{path} [post]
func HandleUnknownUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		payload, err := io.ReadAll(io.LimitReader(r.Body, MaxLoggedPayloadBytes))
		if err != nil {
			log.Warn(LogMsgUnknownUpdate, "path", r.URL.Path, "error", err)
		} else {
			log.Info(LogMsgUnknownUpdate, "path", r.URL.Path, "payload", string(payload))
		}
		metrics.PlayerUnknownEvents.Inc()
		respondOK(w)
	}
}
