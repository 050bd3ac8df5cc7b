package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/johnp-05/sumativatr1/internal/common"
	"github.com/johnp-05/sumativatr1/internal/server/tasks"
	"github.com/johnp-05/sumativatr1/internal/validation"
)

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := s.repo.List(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	t, err := s.repo.Get(r.Context(), id)
	if errors.Is(err, common.ErrorNotFound) {
		writeError(w, http.StatusNotFound, "tarea no encontrada")
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload tasks.Task
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if err := validation.TaskTitle(payload.Title); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.TaskDescription(payload.Description); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The client stamps createdAt; fill it in only when absent.
	if payload.CreatedAt.IsZero() {
		payload.CreatedAt = time.Now().UTC()
	}

	created, err := s.repo.Create(r.Context(), &payload)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	var upd tasks.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if upd.Title != nil {
		if err := validation.TaskTitle(*upd.Title); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if upd.Description != nil {
		if err := validation.TaskDescription(*upd.Description); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	t, err := s.repo.Update(r.Context(), id, upd)
	if errors.Is(err, common.ErrorNotFound) {
		writeError(w, http.StatusNotFound, "tarea no encontrada")
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	err := s.repo.Delete(r.Context(), id)
	if errors.Is(err, common.ErrorNotFound) {
		writeError(w, http.StatusNotFound, "tarea no encontrada")
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{})
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "error interno del servidor")
}

// pathID reads the {id} route variable. The route pattern guarantees it
// is numeric.
func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}
