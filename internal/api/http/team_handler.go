package http

import (
	"net/http"

	"hrassets-backend/internal/service"
)

type TeamHandler struct {
	teams service.TeamService
	admin service.AdminService
}

func NewTeamHandler(teams service.TeamService, admin service.AdminService) *TeamHandler {
	return &TeamHandler{teams: teams, admin: admin}
}

func (h *TeamHandler) Employees(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	employees, err := h.teams.EmployeesOfCompany(r.Context(), claims.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *TeamHandler) Team(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	groups, err := h.teams.TeamOf(r.Context(), claims.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *TeamHandler) Usage(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	usage, err := h.admin.CompanyUsage(r.Context(), claims.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, usage)
}
