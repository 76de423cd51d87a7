package achievements

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fitstats/internal/auth"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/internal/workouts"
	"github.com/2beens/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=achievements_test

type sessionsLister interface {
	ListAll(ctx context.Context, userID int) ([]workouts.Session, error)
}

type achievementsEvaluator interface {
	GetUserAchievements(ctx context.Context, userID int, sessions []workouts.Session) ([]Achievement, error)
}

type Handler struct {
	evaluator achievementsEvaluator
	sessions  sessionsLister
	catalog   []Definition
}

func NewHandler(evaluator achievementsEvaluator, sessions sessionsLister, catalog []Definition) *Handler {
	return &Handler{
		evaluator: evaluator,
		sessions:  sessions,
		catalog:   catalog,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", h.HandleGetAchievements).Methods("GET", "OPTIONS").Name("get-achievements")
	router.HandleFunc("/definitions", h.HandleGetDefinitions).Methods("GET", "OPTIONS").Name("get-achievement-definitions")
}

func (h *Handler) HandleGetAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.achievements.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessions, err := h.sessions.ListAll(ctx, userID)
	if err != nil {
		log.Errorf("get achievements, list sessions: %s", err)
		http.Error(w, "failed to fetch achievements", http.StatusInternalServerError)
		return
	}

	achievements, err := h.evaluator.GetUserAchievements(ctx, userID, sessions)
	if err != nil {
		log.Errorf("get achievements for user %d: %s", userID, err)
		http.Error(w, "failed to fetch achievements", http.StatusInternalServerError)
		return
	}

	achievementsJson, err := json.Marshal(achievements)
	if err != nil {
		log.Errorf("get achievements, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, achievementsJson)
}

// HandleGetDefinitions serves the static catalog, no evaluation involved.
func (h *Handler) HandleGetDefinitions(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.achievements.definitions")
	defer span.End()

	catalogJson, err := json.Marshal(h.catalog)
	if err != nil {
		log.Errorf("get achievement definitions, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, catalogJson)
}
