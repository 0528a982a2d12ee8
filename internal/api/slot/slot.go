package slot

import (
	"context"
	"errors"
	"net/http"
	dto "slot_machine/internal/api/dto/slot"
	"slot_machine/internal/converter"
	"slot_machine/internal/engine"
	"slot_machine/internal/model"
	"slot_machine/internal/service"
	"slot_machine/pkg/req"
	"slot_machine/pkg/resp"
	"time"

	"go.uber.org/zap"
)

const keepAliveInterval = 25 * time.Second

var errEmptyLayout = errors.New("layout request must set slot_height or buffer_slots")

type HandlerDeps struct {
	Serv   service.SlotService
	Logger *zap.Logger
}

type Handler struct {
	serv service.SlotService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, log: logger}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	accepted, state, err := h.serv.Spin(r.Context())
	if err != nil {
		h.engineError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, dto.SpinResponse{
		Accepted: accepted,
		State:    converter.ToStateResponse(state),
	})
}

func (h *Handler) Bet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dir, err := converter.ToBetDirection(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	changed, state, err := h.serv.AdjustBet(r.Context(), dir)
	if err != nil {
		h.engineError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, dto.BetResponse{
		Changed: changed,
		State:   converter.ToStateResponse(state),
	})
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.State(r.Context())
	if err != nil {
		h.engineError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(state))
}

func (h *Handler) LastResult(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.LastResult(r.Context())
	if err != nil {
		h.engineError(w, err)
		return
	}
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResultResponse(*result))
}

func (h *Handler) Reels(w http.ResponseWriter, r *http.Request) {
	view, err := h.serv.Reels(r.Context())
	if err != nil {
		h.engineError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToReelsResponse(*view))
}

func (h *Handler) Symbols(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSymbolsResponse(model.Catalog()))
}

func (h *Handler) Layout(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.LayoutRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.SlotHeight == nil && payload.BufferSlots == nil {
		http.Error(w, errEmptyLayout.Error(), http.StatusBadRequest)
		return
	}
	if payload.BufferSlots != nil {
		if err := h.serv.ResizeReels(r.Context(), *payload.BufferSlots); err != nil {
			h.layoutError(w, err)
			return
		}
	}
	if payload.SlotHeight != nil {
		if err := h.serv.SetSlotHeight(r.Context(), *payload.SlotHeight); err != nil {
			h.layoutError(w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) layoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrInvalidSize):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, engine.ErrReelSpinning):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.engineError(w, err)
	}
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func (h *Handler) ResetStats(w http.ResponseWriter, _ *http.Request) {
	h.serv.ResetStats()
	h.log.Info("session stats reset")
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

// Stream SSE: сначала текущее состояние, затем события раунда
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	events, cancel := h.serv.Subscribe()
	defer cancel()

	state, err := h.serv.State(r.Context())
	if err != nil {
		h.engineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	h.writeEvent(w, model.Event{Type: model.EventState, State: state})
	flusher.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			h.writeEvent(w, e)
			flusher.Flush()
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keepalive\n\n"))
			flusher.Flush()
		}
	}
}

func (h *Handler) writeEvent(w http.ResponseWriter, e model.Event) {
	name, body := converter.ToEventPayload(e)
	data, err := resp.Marshal(body)
	if err != nil {
		h.log.Error("marshal event", zap.String("event", name), zap.Error(err))
		return
	}
	_, _ = w.Write([]byte("event: " + name + "\n"))
	_, _ = w.Write([]byte("data: "))
	_, _ = w.Write(data)
	_, _ = w.Write([]byte("\n\n"))
}

// Цикл движка остановлен или клиент ушёл
func (h *Handler) engineError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	h.log.Warn("engine unavailable", zap.Error(err))
	http.Error(w, err.Error(), http.StatusServiceUnavailable)
}
