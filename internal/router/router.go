package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"

	"github.com/basedalex/nlptk/internal/db"
	"github.com/basedalex/nlptk/pkg/config"
	"github.com/basedalex/nlptk/pkg/sentiment"
	"github.com/basedalex/nlptk/pkg/stem"
)

//go:generate mockgen -source=router.go -destination=mocks/mock.go

type HTTPResponse struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type termStore interface {
	SaveTerm(ctx context.Context, e sentiment.Entry) error
	GetUserByLogin(ctx context.Context, login string) (db.User, error)
	GetUserPasswordByLogin(ctx context.Context, login string) (string, error)
}

type ctxKey string

const userKey ctxKey = "user"

type Handler struct {
	limiter     ratelimit.Limiter
	concurrency chan struct{}
	service     termStore
	model       *sentiment.Model
	stemmer     stem.Stemmer
	cfg         *config.Config
	clock       clock.Clock
}

func NewServer(ctx context.Context, cfg *config.Config, service termStore, model *sentiment.Model, stemmer stem.Stemmer) error {
	srv := &http.Server{
		Addr:              ":" + cfg.SrvPort,
		Handler:           newRouter(newHandler(cfg, service, model, stemmer)),
		ReadHeaderTimeout: 3 * time.Second,
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)

	go func() {
		<-ctx.Done()

		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn(err)
		}
	}()

	log.Infof("listening on %s", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error with the server: %w", err)
	}

	return nil
}

func newHandler(cfg *config.Config, service termStore, model *sentiment.Model, stemmer stem.Stemmer) *Handler {
	return &Handler{
		limiter:     ratelimit.New(cfg.RateLimit),
		concurrency: make(chan struct{}, cfg.ConcurrencyLimit),
		service:     service,
		model:       model,
		stemmer:     stemmer,
		cfg:         cfg,
		clock:       clock.New(),
	}
}

func newRouter(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", h.login)

	mux.Handle("GET /stem", h.limit(http.HandlerFunc(h.stem)))
	mux.Handle("GET /normalize", h.limit(http.HandlerFunc(h.normalize)))
	mux.Handle("GET /sentiment", h.limit(http.HandlerFunc(h.sentiment)))
	mux.Handle("POST /similarity", h.limit(http.HandlerFunc(h.similarity)))

	mux.Handle("POST /terms", h.Guard()(checkRole(
		isAuth(h.limit(http.HandlerFunc(h.addTerm))), "admin")))

	return mux
}

// limit applies the request rate and the concurrency cap.
func (h *Handler) limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.limiter.Take()
		h.concurrency <- struct{}{}
		defer func() {
			<-h.concurrency
		}()

		next.ServeHTTP(w, r)
	})
}

func checkRole(next http.Handler, role string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := r.Context().Value(userKey)
		if user != role {
			writeErrResponse(w, http.StatusUnauthorized, fmt.Errorf("invalid role"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := r.Context().Value(userKey)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type claims struct {
	Login string `json:"login"`
	jwt.RegisteredClaims
}

// Guard resolves the JWT in the "token" header to a user and stores the
// user's role in the request context.
func (h *Handler) Guard() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("token")
			token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
				return []byte(h.cfg.JWTSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(h.clock.Now))
			if err != nil {
				writeErrResponse(w, http.StatusBadRequest, err)
				return
			}

			c, ok := token.Claims.(*claims)
			if !ok || !token.Valid {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			log.Debugf("token for %s", c.Login)
			user, err := h.service.GetUserByLogin(r.Context(), c.Login)
			if err != nil {
				writeErrResponse(w, http.StatusUnauthorized, fmt.Errorf("invalid credentials"))
				return
			}

			ctxWithValue := context.WithValue(r.Context(), userKey, user.Role)
			next.ServeHTTP(w, r.WithContext(ctxWithValue))
		})
	}
}

func writeOkResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	log.Infof("successful request with statusCode %d and data type %T", statusCode, data)
	if data != nil {
		err := json.NewEncoder(w).Encode(HTTPResponse{Data: data})
		if err != nil {
			log.Error(err)
		}
	}
}

func writeErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	log.Error(err)

	jsonErr := json.NewEncoder(w).Encode(HTTPResponse{Error: err.Error()})
	if jsonErr != nil {
		log.Error(jsonErr)
	}
}
