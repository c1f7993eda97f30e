package httpapi

import (
	"net/http"

	"github.com/riskibarqy/diamond-stats/internal/platform/resilience"
)

type healthDTO struct {
	Status   string             `json:"status"`
	Upstream *upstreamHealthDTO `json:"upstream,omitempty"`
}

type upstreamHealthDTO struct {
	Circuit             string `json:"circuit"`
	ConsecutiveFailures int    `json:"consecutiveFailures"`
	Rejected            uint64 `json:"rejected"`
	Transitions         uint64 `json:"transitions"`
	OpenedAt            string `json:"openedAt,omitempty"`
}

// Healthz is liveness only. An open upstream circuit is reported as
// "degraded" but still answers 200 so the process is not restarted for an
// upstream outage.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	out := healthDTO{Status: "ok"}
	if h.upstream != nil {
		counts := h.upstream.CircuitCounts()
		out.Upstream = &upstreamHealthDTO{
			Circuit:             string(counts.State),
			ConsecutiveFailures: counts.ConsecutiveFailures,
			Rejected:            counts.Rejected,
			Transitions:         counts.Transitions,
			OpenedAt:            formatTime(counts.OpenedAt),
		}
		if counts.State != "" && counts.State != resilience.CircuitStateClosed {
			out.Status = "degraded"
		}
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
