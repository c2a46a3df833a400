package auth

import (
	"net/http"

	"github.com/sirupsen/logrus"

	dto "sponsor_backend/internal/api/dto/auth"
	"sponsor_backend/internal/api/middleware"
	"sponsor_backend/internal/converter"
	"sponsor_backend/internal/service"
	"sponsor_backend/pkg/req"
	"sponsor_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv  service.AuthService
	Log   *logrus.Logger
	Debug bool
}

type Handler struct {
	serv  service.AuthService
	log   *logrus.Logger
	debug bool
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:  deps.Serv,
		log:   deps.Log,
		debug: deps.Debug,
	}
}

// Login - обменивает Google ID токен на сессионный токен
// и возвращает сводку пользователя
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(requestBody.Token) == 0 {
		resp.WriteError(w, http.StatusBadRequest, "token is required")
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Token)
	if err != nil {
		h.log.WithError(err).Warn("google login failed")
		resp.WriteServiceError(w, err, h.debug)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLoginResponse(data))
}

// Protected - эхо расшифрованных claims для проверки токена
func (h *Handler) Protected(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"user": claims,
	})
}
