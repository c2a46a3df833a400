package sponsor

import (
	"net/http"

	"github.com/sirupsen/logrus"

	dto "sponsor_backend/internal/api/dto/sponsor"
	"sponsor_backend/internal/converter"
	"sponsor_backend/internal/service"
	"sponsor_backend/pkg/req"
	"sponsor_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv  service.SponsorService
	Log   *logrus.Logger
	Debug bool
}

type Handler struct {
	serv  service.SponsorService
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

// Create - создает спонсора и возвращает его ID
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.CreateRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.serv.Create(r.Context(), converter.CreateRequestToSponsorModel(&requestBody))
	if err != nil {
		h.log.WithError(err).Error("create sponsor failed")
		resp.WriteServiceError(w, err, h.debug)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSponsorCreateResponse(id))
}
