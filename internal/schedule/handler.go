package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/fitstats/internal/auth"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=schedule_test

type scheduleRepo interface {
	Upsert(ctx context.Context, entry Entry) error
	Week(ctx context.Context, userID int) ([]Entry, error)
	Delete(ctx context.Context, userID, weekday int) error
}

type Handler struct {
	repo scheduleRepo
}

func NewHandler(repo scheduleRepo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", h.HandleWeek).Methods("GET", "OPTIONS").Name("week-schedule")
	router.HandleFunc("", h.HandleUpsert).Methods("PUT", "OPTIONS").Name("upsert-schedule")
	router.HandleFunc("/{weekday}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-schedule")
}

type entryRequest struct {
	Weekday  int    `json:"weekday"`
	Exercise string `json:"exercise"`
	Minutes  int    `json:"minutes"`
}

func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.upsert")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("upsert schedule, unmarshal json params: %s", err)
		http.Error(w, "upsert schedule failed", http.StatusBadRequest)
		return
	}
	if !ValidWeekday(req.Weekday) {
		http.Error(w, fmt.Sprintf("invalid weekday: %d", req.Weekday), http.StatusBadRequest)
		return
	}
	if req.Exercise == "" {
		http.Error(w, "exercise empty", http.StatusBadRequest)
		return
	}
	if req.Minutes <= 0 {
		http.Error(w, "minutes must be positive", http.StatusBadRequest)
		return
	}

	if err := h.repo.Upsert(ctx, Entry{
		UserID:   userID,
		Weekday:  req.Weekday,
		Exercise: req.Exercise,
		Minutes:  req.Minutes,
	}); err != nil {
		log.Errorf("upsert schedule: %s", err)
		http.Error(w, "upsert schedule failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "saved")
}

func (h *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.week")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	entries, err := h.repo.Week(ctx, userID)
	if err != nil {
		log.Errorf("get week schedule: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("get week schedule, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, entriesJson)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	weekday, err := strconv.Atoi(mux.Vars(r)["weekday"])
	if err != nil || !ValidWeekday(weekday) {
		http.Error(w, "invalid weekday", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(ctx, userID, weekday); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "schedule entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete schedule entry: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", weekday))
}
