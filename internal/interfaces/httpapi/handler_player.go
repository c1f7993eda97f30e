package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerProfile")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	player, err := h.playerService.Profile(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player profile failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(player))
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	req := comparePlayersRequest{
		Left:  strings.TrimSpace(r.URL.Query().Get("left")),
		Right: strings.TrimSpace(r.URL.Query().Get("right")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	comparison, err := h.playerService.Compare(ctx, req.Left, req.Right)
	if err != nil {
		h.logger.WarnContext(ctx, "compare players failed", "left", req.Left, "right", req.Right, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerComparisonDTO{
		Left:  playerToDTO(comparison.Left),
		Right: playerToDTO(comparison.Right),
	})
}
