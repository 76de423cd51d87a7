package goals

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=goals_test

type goalsRepo interface {
	Add(ctx context.Context, goal Goal) (*Goal, error)
	Get(ctx context.Context, userID, id int) (*Goal, error)
	List(ctx context.Context, userID int) ([]Goal, error)
	Complete(ctx context.Context, userID, id int, completedAt time.Time) error
	Delete(ctx context.Context, userID, id int) error
}

type activityRecorder interface {
	RecordAsync(userID int, kind, details string)
}

type Handler struct {
	repo     goalsRepo
	activity activityRecorder
	now      func() time.Time
}

func NewHandler(repo goalsRepo, activity activityRecorder) *Handler {
	return &Handler{
		repo:     repo,
		activity: activity,
		now:      time.Now,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", h.HandleAdd).Methods("POST", "OPTIONS").Name("add-goal")
	router.HandleFunc("", h.HandleList).Methods("GET", "OPTIONS").Name("list-goals")
	router.HandleFunc("/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-goal")
	router.HandleFunc("/{id}/complete", h.HandleComplete).Methods("POST", "OPTIONS").Name("complete-goal")
	router.HandleFunc("/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-goal")
}

type goalRequest struct {
	Kind        string     `json:"kind"`
	Description string     `json:"description"`
	Target      float64    `json:"target"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add goal, unmarshal json params: %s", err)
		http.Error(w, "add goal failed", http.StatusBadRequest)
		return
	}
	if !ValidKind(req.Kind) {
		http.Error(w, fmt.Sprintf("invalid goal kind: %s", req.Kind), http.StatusBadRequest)
		return
	}
	if req.Deadline != nil && req.Deadline.Before(h.now()) {
		http.Error(w, "deadline in the past", http.StatusBadRequest)
		return
	}

	added, err := h.repo.Add(ctx, Goal{
		UserID:      userID,
		Kind:        req.Kind,
		Description: req.Description,
		Target:      req.Target,
		Deadline:    req.Deadline,
		CreatedAt:   h.now(),
	})
	if err != nil {
		log.Errorf("add goal: %s", err)
		http.Error(w, "add goal failed", http.StatusInternalServerError)
		return
	}

	h.activity.RecordAsync(userID, activity.KindGoalCreated, added.Kind)

	goalJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("add goal, marshal goal: %s", err)
		http.Error(w, "add goal failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalJson, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	goals, err := h.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list goals: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if goals == nil {
		goals = []Goal{}
	}

	goalsJson, err := json.Marshal(goals)
	if err != nil {
		log.Errorf("list goals, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, goalsJson)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid goal id", http.StatusBadRequest)
		return
	}

	goal, err := h.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("get goal %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	goalJson, err := json.Marshal(goal)
	if err != nil {
		log.Errorf("get goal, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, goalJson)
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.complete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid goal id", http.StatusBadRequest)
		return
	}

	if err := h.repo.Complete(ctx, userID, id, h.now()); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("complete goal %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.activity.RecordAsync(userID, activity.KindGoalCompleted, strconv.Itoa(id))

	pkg.WriteTextResponseOK(w, "completed")
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid goal id", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete goal %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}
