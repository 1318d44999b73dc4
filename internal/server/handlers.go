package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/jwulff/diabeyes-go/internal/advice"
	"github.com/jwulff/diabeyes-go/internal/advisor"
	"github.com/jwulff/diabeyes-go/internal/bloodsugar"
	"github.com/jwulff/diabeyes-go/internal/domain"
)

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

type findingResponse struct {
	Finding         advisor.Finding `json:"finding"`
	Recommendations []string        `json:"recommendations"`
}

type exerciseSuggestionsRequest struct {
	ExerciseType    string `json:"exerciseType"`
	SessionDuration int    `json:"sessionDuration"`
}

type exerciseSuggestionsResponse struct {
	SuggestedExercises []advice.ExerciseSuggestion `json:"suggestedExercises"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// storageFailure reports an error from the profile store as a 500.
func (s *Server) storageFailure(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("profile storage failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "profile storage unavailable")
}

// validationFailure reports a rejected profile as a 422 naming the fields.
func (s *Server) validationFailure(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.log.Warn("profile rejected", "path", r.URL.Path, "fields", verr.Fields)
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Error(), Fields: verr.Fields})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.Get(r.Context())
	if err != nil {
		s.storageFailure(w, r, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "no profile stored")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var u domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile update: "+err.Error())
		return
	}
	if err := u.Validate(); err != nil {
		s.validationFailure(w, r, err)
		return
	}
	p, err := s.profiles.Update(r.Context(), u)
	if err != nil {
		s.storageFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	p := domain.NewHealthProfile()
	p.ID = ""
	if err := json.NewDecoder(r.Body).Decode(p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile: "+err.Error())
		return
	}
	if err := p.ValidateAll(); err != nil {
		s.validationFailure(w, r, err)
		return
	}
	saved, err := s.profiles.Save(r.Context(), p)
	if err != nil {
		if domain.IsValidationError(err) {
			s.validationFailure(w, r, err)
			return
		}
		s.storageFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleResetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.Reset(r.Context())
	if err != nil {
		s.storageFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	level, err := bloodsugar.ParseReading(q.Get("level"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	profile, err := bloodsugar.ParseProfile(q.Get("profile"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := advisor.Classify(level, profile)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDietPlan(w http.ResponseWriter, r *http.Request) {
	level := float64(advisor.DefaultDietLevel)

	if raw := r.URL.Query().Get("level"); raw != "" {
		parsed, err := bloodsugar.ParseReading(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		level = parsed
	} else {
		stored, ok, err := s.profiles.GlucoseLevel(r.Context())
		switch {
		case bloodsugar.IsInvalidReading(err):
			s.log.Warn("ignoring unreadable stored glucose level", "error", err)
		case err != nil:
			s.storageFailure(w, r, err)
			return
		case ok:
			level = stored
		}
	}

	plan, err := advisor.DietPlan(level, bloodsugar.DietProfile)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleExercisePlan(w http.ResponseWriter, r *http.Request) {
	level, err := bloodsugar.ParseReading(r.URL.Query().Get("level"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	plan, err := advisor.ExercisePlan(level)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleHealthInsights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var level float64
	if raw := q.Get("level"); raw != "" {
		parsed, err := bloodsugar.ParseReading(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		level = parsed
	} else {
		stored, ok, err := s.profiles.GlucoseLevel(r.Context())
		switch {
		case bloodsugar.IsInvalidReading(err):
			s.log.Warn("ignoring unreadable stored glucose level", "error", err)
		case err != nil:
			s.storageFailure(w, r, err)
			return
		}
		if !ok {
			writeError(w, http.StatusBadRequest, "level is required when no glucose level is stored")
			return
		}
		level = stored
	}

	var pressure *float64
	if raw := q.Get("iop"); raw != "" {
		v, err := advisor.ParsePressure(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		pressure = &v
	}

	var nephropathy *bool
	if raw := q.Get("nephropathy"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "nephropathy must be true or false")
			return
		}
		nephropathy = &v
	}

	insights, err := advisor.HealthInsights(level, pressure, nephropathy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, insights)
}

func (s *Server) handleFindingRecommendations(w http.ResponseWriter, r *http.Request) {
	label := strings.TrimSpace(r.URL.Query().Get("finding"))
	if label == "" {
		writeError(w, http.StatusBadRequest, "finding is required")
		return
	}
	f := advisor.ParseFinding(label)
	writeJSON(w, http.StatusOK, findingResponse{Finding: f, Recommendations: advisor.FindingRecommendations(f)})
}

func (s *Server) handleExerciseSuggestions(w http.ResponseWriter, r *http.Request) {
	var req exerciseSuggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if _, err := advice.NewExerciseRequest(nil, req.ExerciseType, req.SessionDuration); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.profiles.Get(r.Context())
	if err != nil {
		s.storageFailure(w, r, err)
		return
	}

	suggestions, err := advice.SuggestExercises(r.Context(), s.advice, p, req.ExerciseType, req.SessionDuration)
	if err != nil {
		s.upstreamFailure(w, r, err)
		return
	}
	if suggestions == nil {
		suggestions = []advice.ExerciseSuggestion{}
	}
	writeJSON(w, http.StatusOK, exerciseSuggestionsResponse{SuggestedExercises: suggestions})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req advice.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := advice.Chat(r.Context(), s.chat, req.Message)
	if err != nil {
		s.upstreamFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) upstreamFailure(w http.ResponseWriter, r *http.Request, err error) {
	if advice.IsTimeout(err) {
		s.log.Warn("advice collaborator timed out", "path", r.URL.Path)
		writeError(w, http.StatusGatewayTimeout, "advice service timed out")
		return
	}
	s.log.Error("advice collaborator failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusBadGateway, "advice service unavailable")
}
