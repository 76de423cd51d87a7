package workouts

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
	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, session Session) (*Session, error)
	Get(ctx context.Context, userID, id int) (*Session, error)
	Update(ctx context.Context, session Session) error
	Delete(ctx context.Context, userID, id int) error
	List(ctx context.Context, params ListParams) (*SessionsPage, error)
}

type activityRecorder interface {
	RecordAsync(userID int, kind, details string)
}

type Handler struct {
	repo           workoutsRepo
	activity       activityRecorder
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, activity activityRecorder, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		activity:       activity,
		metricsManager: metricsManager,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", h.HandleAdd).Methods("POST", "OPTIONS").Name("add-workout")
	router.HandleFunc("/list/page/{page}/size/{size}", h.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	router.HandleFunc("/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	router.HandleFunc("/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	router.HandleFunc("/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
}

type sessionRequest struct {
	Exercise        string    `json:"exercise"`
	Intensity       string    `json:"intensity"`
	Calories        int       `json:"calories"`
	DurationMinutes int       `json:"durationMinutes"`
	Date            time.Time `json:"date"`
}

func (req *sessionRequest) validate() error {
	if req.Exercise == "" {
		return errors.New("exercise empty")
	}
	if !ValidIntensity(req.Intensity) {
		return fmt.Errorf("invalid intensity: %s", req.Intensity)
	}
	if req.DurationMinutes <= 0 {
		return errors.New("duration must be positive")
	}
	if req.Calories < 0 {
		return errors.New("calories must not be negative")
	}
	return nil
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	added, err := h.repo.Add(ctx, Session{
		UserID:          userID,
		Exercise:        req.Exercise,
		Intensity:       req.Intensity,
		Calories:        req.Calories,
		DurationMinutes: req.DurationMinutes,
		Date:            req.Date,
	})
	if err != nil {
		log.Errorf("add workout: %s", err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}

	h.metricsManager.CounterWorkouts.Inc()
	h.activity.RecordAsync(userID, activity.KindWorkoutAdded, added.Exercise)

	sessionJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("add workout, marshal session: %s", err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	session, err := h.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("get workout, marshal session: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, sessionJson)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid page: %s", vars["page"]), http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid size: %s", vars["size"]), http.StatusBadRequest)
		return
	}
	if page < 1 {
		http.Error(w, "invalid page, should be greater than 0", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size, should be greater than 0", http.StatusBadRequest)
		return
	}

	sessionsPage, err := h.repo.List(ctx, ListParams{
		UserID: userID,
		Page:   page,
		Size:   size,
	})
	if err != nil {
		log.Errorf("list workouts: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pageJson, err := json.Marshal(sessionsPage)
	if err != nil {
		log.Errorf("list workouts, marshal page: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, pageJson)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.Update(ctx, Session{
		ID:              id,
		UserID:          userID,
		Exercise:        req.Exercise,
		Intensity:       req.Intensity,
		Calories:        req.Calories,
		DurationMinutes: req.DurationMinutes,
		Date:            req.Date,
	}); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("update workout %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.activity.RecordAsync(userID, activity.KindWorkoutDeleted, strconv.Itoa(id))

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}
