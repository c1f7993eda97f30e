package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/diamond-stats/internal/usecase"
)

func (h *Handler) ListSeasonLeaders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonLeaders")
	defer span.End()

	season, err := parseSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	req := seasonLeadersRequest{
		Season: season,
		Phase:  normalizePhase(r.URL.Query().Get("phase")),
		Stat:   strings.TrimSpace(r.PathValue("stat")),
		Limit:  limit,
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	list, err := h.leaderService.List(ctx, usecase.LeaderQuery(req))
	if err != nil {
		h.logger.WarnContext(ctx, "list season leaders failed", "season", season, "stat", req.Stat, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderListToDTO(ctx, list))
}

func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHome")
	defer span.End()

	season, err := parseSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := seasonRequest{Season: season, Phase: normalizePhase(r.URL.Query().Get("phase"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	home, err := h.homeService.Get(ctx, req.Season, req.Phase)
	if err != nil {
		h.logger.WarnContext(ctx, "get home failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, homeToDTO(ctx, home))
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBoard")
	defer span.End()

	if h.board == nil {
		writeError(ctx, w, fmt.Errorf("%w: leader board is disabled", usecase.ErrDependencyUnavailable))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boardToDTO(ctx, h.board.Snapshot()))
}

// SelectBoard switches the shared leader board. It answers 202 with the
// loading snapshot; clients poll GET /v1/board for the result.
func (h *Handler) SelectBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectBoard")
	defer span.End()

	if h.board == nil {
		writeError(ctx, w, fmt.Errorf("%w: leader board is disabled", usecase.ErrDependencyUnavailable))
		return
	}

	var req boardSelectRequest
	decoder := jsoniter.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	req.Phase = normalizePhase(req.Phase)
	req.Stat = strings.TrimSpace(req.Stat)
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	snapshot, err := h.board.Select(ctx, usecase.BoardSelection(req))
	if err != nil {
		h.logger.WarnContext(ctx, "select leader board failed", "season", req.Season, "stat", req.Stat, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, boardToDTO(ctx, snapshot))
}
