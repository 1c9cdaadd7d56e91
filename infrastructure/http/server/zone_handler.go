package server

import (
	"net/http"
	"whisperwall/contract"
	"whisperwall/domain"
	"whisperwall/domain/event"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type ZoneHandler struct {
	zones    domain.Zones
	registry contract.IRegistry
}

func NewZoneHandler(zones domain.Zones, registry contract.IRegistry) *ZoneHandler {
	return &ZoneHandler{zones: zones, registry: registry}
}

type zoneView struct {
	Zone     domain.Zone    `json:"zone"`
	Activity event.Activity `json:"activity"`
}

type emotionView struct {
	Emotion domain.Emotion `json:"emotion"`
	Pulse   event.Pulse    `json:"pulse"`
}

// GET /api/zones
// Every allowed zone is listed, the ones nobody touched yet with zero users.
func (h *ZoneHandler) ListZones(c *gin.Context) {
	snapshot, err := h.registry.Snapshot(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusServiceUnavailable, "registry_unavailable", err)
		return
	}
	active := lo.SliceToMap(snapshot.Zones, func(za domain.ZoneActivity) (domain.Zone, domain.ZoneActivity) {
		return za.Zone, za
	})
	zones := lo.Map(h.zones.List(), func(zone domain.Zone, _ int) zoneView {
		view := zoneView{Zone: zone}
		if za, ok := active[zone]; ok {
			view.Activity = event.Activity{Users: za.Users, LastActivity: event.Millis(za.LastActivity)}
		}
		return view
	})
	emotions := lo.Map(snapshot.Emotions, func(ep domain.EmotionPulse, _ int) emotionView {
		return emotionView{
			Emotion: ep.Emotion,
			Pulse:   event.Pulse{Count: ep.Count, LastPulse: event.Millis(ep.LastPulse)},
		}
	})
	c.JSON(http.StatusOK, gin.H{
		"zones":       zones,
		"emotions":    emotions,
		"totalActive": snapshot.TotalActive,
		"sessions":    snapshot.Sessions,
	})
}
