package sse

import "github.com/osse101/RuneStatus_Go/internal/domain"

// ConnectedPayload opens every stream so clients can render without a
// separate GET /status.
type ConnectedPayload struct {
	ClientID string             `json:"client_id"`
	Filters  []string           `json:"filters"`
	View     *domain.PlayerView `json:"view,omitempty"`
}

// PlayerUpdatedPayload is pushed after each applied update
type PlayerUpdatedPayload struct {
	Kind     string             `json:"kind"`
	Username string             `json:"username"`
	Revision uint64             `json:"revision"`
	View     *domain.PlayerView `json:"view,omitempty"`
}

// BaselineLoadedPayload is pushed when the hiscores baseline arrives
type BaselineLoadedPayload struct {
	Username    string `json:"username"`
	Skills      int    `json:"skills"`
	CombatLevel int    `json:"combat_level"`
}
