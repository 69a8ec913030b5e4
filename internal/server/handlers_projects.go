package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/keelson/sitedesk/internal/domain/project"
)

type projectPayload struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Status      *string  `json:"status"`
	Phase       *string  `json:"phase"`
	Budget      *float64 `json:"budget"`
	ActualCost  *float64 `json:"actual_cost"`
	Progress    *int     `json:"progress"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.services.Projects.List(r.Context())
	if err != nil {
		s.logger.Error("list projects failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.services.Projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		s.logger.Error("get project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get project")
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var payload projectPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Name == nil || *payload.Name == "" {
		writeError(w, http.StatusBadRequest, "Project name is required")
		return
	}

	req := project.CreateRequest{Name: *payload.Name}
	if payload.Description != nil {
		req.Description = *payload.Description
	}
	if payload.Location != nil {
		req.Location = *payload.Location
	}
	if payload.Status != nil {
		req.Status = project.Status(*payload.Status)
	}
	if payload.Phase != nil {
		req.Phase = *payload.Phase
	}
	if payload.Budget != nil {
		req.Budget = *payload.Budget
	}
	if payload.ActualCost != nil {
		req.ActualCost = *payload.ActualCost
	}
	if payload.Progress != nil {
		req.Progress = *payload.Progress
	}
	if payload.StartDate != nil {
		req.StartDate = *payload.StartDate
	}
	if payload.EndDate != nil {
		req.EndDate = *payload.EndDate
	}

	proj, err := s.services.Projects.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, project.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("create project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create project")
		return
	}

	writeJSON(w, http.StatusCreated, proj)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var payload projectPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	req := project.UpdateRequest{
		Name:        payload.Name,
		Description: payload.Description,
		Location:    payload.Location,
		Phase:       payload.Phase,
		Budget:      payload.Budget,
		ActualCost:  payload.ActualCost,
		Progress:    payload.Progress,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
	}
	if payload.Status != nil {
		status := project.Status(*payload.Status)
		req.Status = &status
	}

	proj, err := s.services.Projects.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		switch {
		case errors.Is(err, project.ErrProjectNotFound):
			writeError(w, http.StatusNotFound, "Project not found")
		case errors.Is(err, project.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			s.logger.Error("update project failed", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to update project")
		}
		return
	}

	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Projects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		s.logger.Error("delete project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
