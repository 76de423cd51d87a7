package preferences

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fitstats/internal/auth"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=preferences_test

type preferencesRepo interface {
	Get(ctx context.Context, userID int) (Preferences, error)
	Upsert(ctx context.Context, p Preferences) error
}

type Handler struct {
	repo preferencesRepo
}

func NewHandler(repo preferencesRepo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", h.HandleGet).Methods("GET", "OPTIONS").Name("get-preferences")
	router.HandleFunc("", h.HandleUpsert).Methods("PUT", "OPTIONS").Name("upsert-preferences")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	prefs, err := h.repo.Get(ctx, userID)
	if err != nil {
		log.Errorf("get preferences: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	prefsJson, err := json.Marshal(prefs)
	if err != nil {
		log.Errorf("get preferences, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, prefsJson)
}

func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.upsert")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var prefs Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		log.Errorf("upsert preferences, unmarshal json params: %s", err)
		http.Error(w, "save preferences failed", http.StatusBadRequest)
		return
	}

	prefs.UserID = userID
	if !prefs.Validate() {
		http.Error(w, "invalid preferences", http.StatusBadRequest)
		return
	}

	if err := h.repo.Upsert(ctx, prefs); err != nil {
		log.Errorf("upsert preferences: %s", err)
		http.Error(w, "save preferences failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "saved")
}
