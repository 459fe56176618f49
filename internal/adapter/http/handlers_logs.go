package adapthttp

import (
	"net/http"
	"strings"

	"healthmate/internal/app"
	"healthmate/internal/domain"
)

type dashboardData struct {
	Email string
	Logs  []domain.HealthLog
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user := userFrom(r.Context())
	logs, err := s.logs.ListForOwner(r.Context(), user.ID, app.DefaultDashboardLimit)
	if err != nil {
		s.serverError(w, err)
		return
	}

	s.render(w, http.StatusOK, "dashboard.html", dashboardData{
		Email: user.Email,
		Logs:  logs,
	})
}

func (s *Server) handleAddLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	water, err := floatField(r, "water")
	if err != nil {
		http.Error(w, "water must be a number", http.StatusBadRequest)
		return
	}
	sleep, err := floatField(r, "sleep")
	if err != nil {
		http.Error(w, "sleep must be a number", http.StatusBadRequest)
		return
	}

	user := userFrom(r.Context())
	metrics := domain.Metrics{
		Water:      water,
		SleepHours: sleep,
		Meals:      domain.ParseMeals(strings.TrimSpace(r.PostFormValue("meals"))),
		Mood:       strings.TrimSpace(r.PostFormValue("mood")),
	}

	if _, err := s.logs.Record(r.Context(), user.ID, metrics); err != nil {
		s.serverError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
