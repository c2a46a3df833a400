package report

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"sponsor_backend/internal/converter"
	"sponsor_backend/internal/service"
	"sponsor_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv  service.ReportService
	Log   *logrus.Logger
	Debug bool
}

type Handler struct {
	serv  service.ReportService
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

// Sponsors - список спонсоров с агрегатами по членам семьи
func (h *Handler) Sponsors(w http.ResponseWriter, r *http.Request) {
	reports, err := h.serv.Sponsors(r.Context())
	if err != nil {
		h.log.WithError(err).Error("sponsor report failed")
		resp.WriteServiceError(w, err, h.debug)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSponsorRows(reports))
}

// FamilyMembers - список членов семьи с данными спонсора и возрастом
func (h *Handler) FamilyMembers(w http.ResponseWriter, r *http.Request) {
	reports, err := h.serv.FamilyMembers(r.Context())
	if err != nil {
		h.log.WithError(err).Error("family member report failed")
		resp.WriteServiceError(w, err, h.debug)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToFamilyMemberRows(reports))
}

// Search - кросс-табличный поиск по параметру query
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.serv.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.log.WithError(err).Warn("search failed")
		resp.WriteServiceError(w, err, h.debug)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSearchRows(results))
}
