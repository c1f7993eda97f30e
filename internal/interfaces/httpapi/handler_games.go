package httpapi

import (
	"net/http"
	"strings"
	"time"
)

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	req := gamesRequest{Date: strings.TrimSpace(r.PathValue("date"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	// validated above, so the parse cannot fail
	date, _ := time.Parse(time.DateOnly, req.Date)

	board, err := h.scoreboardService.GamesOn(ctx, date)
	if err != nil {
		h.logger.WarnContext(ctx, "list games failed", "date", req.Date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoreboardToDTO(board))
}
