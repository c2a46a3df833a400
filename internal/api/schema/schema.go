package schema

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"sponsor_backend/internal/service"
	"sponsor_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv  service.SchemaService
	Log   *logrus.Logger
	Debug bool
}

type Handler struct {
	serv  service.SchemaService
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

// CreateDatabase - проверяет, что настроенная база доступна
func (h *Handler) CreateDatabase(w http.ResponseWriter, r *http.Request) {
	err := h.serv.EnsureDatabase(r.Context())
	if err != nil {
		h.log.WithError(err).Error("ensure database failed")
		resp.WriteServiceError(w, err, h.debug)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"message": "database created or already exists",
	})
}

// CreateSponsorsTable - идемпотентно создает таблицу спонсоров
func (h *Handler) CreateSponsorsTable(w http.ResponseWriter, r *http.Request) {
	err := h.serv.CreateSponsorsTable(r.Context())
	if err != nil {
		h.log.WithError(err).Error("create sponsors table failed")
		resp.WriteServiceError(w, err, h.debug)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Sponsors table created",
	})
}

// CreateFamilyMembersTable - идемпотентно создает таблицу членов семьи
func (h *Handler) CreateFamilyMembersTable(w http.ResponseWriter, r *http.Request) {
	err := h.serv.CreateFamilyMembersTable(r.Context())
	if err != nil {
		h.log.WithError(err).Error("create family members table failed")
		resp.WriteServiceError(w, err, h.debug)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Family members table created",
	})
}
