package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitstats/internal/activity"
	"github.com/2beens/fitstats/internal/auth"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersRepo interface {
	Add(ctx context.Context, user User) (int, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Get(ctx context.Context, id int) (*User, error)
}

type authService interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

type activityRecorder interface {
	RecordAsync(userID int, kind, details string)
}

type Handler struct {
	repo     usersRepo
	auth     authService
	activity activityRecorder
}

func NewHandler(repo usersRepo, auth authService, activity activityRecorder) *Handler {
	return &Handler{
		repo:     repo,
		auth:     auth,
		activity: activity,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/register", h.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	router.HandleFunc("/login", h.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	router.HandleFunc("/logout", h.HandleLogout).Methods("GET", "POST", "OPTIONS").Name("logout")
	router.HandleFunc("/me", h.HandleMe).Methods("GET", "OPTIONS").Name("me")
}

type registerRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("register, unmarshal json params: %s", err)
		http.Error(w, "add user failed", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(strings.ToLower(req.Username))
	if req.Username == "" || req.Password == "" {
		http.Error(w, "error, username or password empty", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 8 {
		http.Error(w, "error, password too short", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		http.Error(w, "add user failed", http.StatusInternalServerError)
		return
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	id, err := h.repo.Add(ctx, User{
		Username:     req.Username,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			http.Error(w, "username taken", http.StatusConflict)
			return
		}
		log.Errorf("register, add user: %s", err)
		http.Error(w, "add user failed", http.StatusInternalServerError)
		return
	}

	h.activity.RecordAsync(id, activity.KindRegistered, req.Username)

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, []byte(fmt.Sprintf(`{"id":%d}`, id)), http.StatusCreated)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(strings.ToLower(req.Username))
	if req.Username == "" || req.Password == "" {
		http.Error(w, "error, username or password empty", http.StatusBadRequest)
		return
	}

	user, err := h.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "login failed", http.StatusUnauthorized)
			return
		}
		log.Errorf("login, get user: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(req.Password, user.PasswordHash) {
		log.Tracef("login failed, wrong password for user: %s", req.Username)
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}

	token, err := h.auth.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("login, create session: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("user [%s] logged in", req.Username)
	h.activity.RecordAsync(user.ID, activity.KindLoggedIn, "")

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, []byte(fmt.Sprintf(`{"token":"%s"}`, token)), http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	token := r.Header.Get("X-FITSTATS-TOKEN")
	if token == "" {
		http.Error(w, "logout failed", http.StatusUnauthorized)
		return
	}

	if err := h.auth.Logout(ctx, token); err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			http.Error(w, "logout failed", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.me")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	user, err := h.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get user %d: %s", userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("marshal user %d: %s", userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, userJson)
}
