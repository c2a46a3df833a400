package family

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	dto "sponsor_backend/internal/api/dto/family"
	"sponsor_backend/internal/api/middleware"
	"sponsor_backend/internal/converter"
	"sponsor_backend/internal/service"
	"sponsor_backend/pkg/req"
	"sponsor_backend/pkg/resp"
)

const dateLayout = "2006-01-02"

type HandlerDeps struct {
	Serv  service.FamilyService
	Log   *logrus.Logger
	Debug bool
}

type Handler struct {
	serv  service.FamilyService
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

// Create - создает члена семьи для спонсора из сессии.
// Дата рождения проверяется до вызова сервиса
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.CreateRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dateOfBirth, err := time.Parse(dateLayout, requestBody.DateOfBirth)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid date_of_birth, expected YYYY-MM-DD")
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := h.serv.Create(r.Context(), claims, converter.CreateRequestToFamilyMemberModel(&requestBody, dateOfBirth))
	if err != nil {
		h.log.WithError(err).Error("create family member failed")
		resp.WriteServiceError(w, err, h.debug)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToFamilyMemberCreateResponse(id))
}
