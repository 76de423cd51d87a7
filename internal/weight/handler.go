package weight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitstats/internal/activity"
	"github.com/2beens/fitstats/internal/auth"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=weight_test

type weightRepo interface {
	Add(ctx context.Context, entry Entry) (*Entry, error)
	Delete(ctx context.Context, userID, id int) error
	ListBetween(ctx context.Context, userID int, from, to time.Time) ([]Entry, error)
	Latest(ctx context.Context, userID int) (*Entry, error)
}

type trendAnalyzer interface {
	TrendBetween(ctx context.Context, userID int, from, to time.Time) (*Trend, error)
}

type activityRecorder interface {
	RecordAsync(userID int, kind, details string)
}

type Handler struct {
	repo     weightRepo
	analyzer trendAnalyzer
	activity activityRecorder
}

func NewHandler(repo weightRepo, analyzer trendAnalyzer, activity activityRecorder) *Handler {
	return &Handler{
		repo:     repo,
		analyzer: analyzer,
		activity: activity,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", h.HandleAdd).Methods("POST", "OPTIONS").Name("add-weight")
	router.HandleFunc("/latest", h.HandleLatest).Methods("GET", "OPTIONS").Name("latest-weight")
	router.HandleFunc("/trend", h.HandleTrend).Methods("GET", "OPTIONS").Name("weight-trend")
	router.HandleFunc("/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-weight")
}

type entryRequest struct {
	Kilos     float64   `json:"kilos"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add weight, unmarshal json params: %s", err)
		http.Error(w, "add weight failed", http.StatusBadRequest)
		return
	}
	if req.Kilos <= 0 || req.Kilos > 500 {
		http.Error(w, "invalid weight", http.StatusBadRequest)
		return
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now()
	}

	added, err := h.repo.Add(ctx, Entry{
		UserID:    userID,
		Kilos:     req.Kilos,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		log.Errorf("add weight: %s", err)
		http.Error(w, "add weight failed", http.StatusInternalServerError)
		return
	}

	h.activity.RecordAsync(userID, activity.KindWeightLogged, fmt.Sprintf("%.1f", added.Kilos))

	entryJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("add weight, marshal entry: %s", err)
		http.Error(w, "add weight failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusCreated)
}

func (h *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.latest")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	latest, err := h.repo.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "no weight entries", http.StatusNotFound)
			return
		}
		log.Errorf("get latest weight: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	entryJson, err := json.Marshal(latest)
	if err != nil {
		log.Errorf("get latest weight, marshal entry: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, entryJson)
}

// HandleTrend expects "from" and "to" unix timestamp query params.
func (h *Handler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.trend")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	fromUnix, err := strconv.ParseInt(r.URL.Query().Get("from"), 10, 64)
	if err != nil {
		http.Error(w, "invalid from param", http.StatusBadRequest)
		return
	}
	toUnix, err := strconv.ParseInt(r.URL.Query().Get("to"), 10, 64)
	if err != nil {
		http.Error(w, "invalid to param", http.StatusBadRequest)
		return
	}

	from, to := time.Unix(fromUnix, 0), time.Unix(toUnix, 0)
	if to.Before(from) {
		http.Error(w, "to before from", http.StatusBadRequest)
		return
	}

	trend, err := h.analyzer.TrendBetween(ctx, userID, from, to)
	if err != nil {
		log.Errorf("weight trend: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	trendJson, err := json.Marshal(trend)
	if err != nil {
		log.Errorf("weight trend, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, trendJson)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete weight entry %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}
