package web

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/justestif/moodtunes/internal/mood"
	"github.com/justestif/moodtunes/internal/recommend"
	"github.com/justestif/moodtunes/internal/validation"
)

const dateLayout = "2006-01-02"

// Handlers contains HTTP handlers for the JSON API.
type Handlers struct {
	service *recommend.Service
	now     func() time.Time
	logger  *zap.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *recommend.Service, now func() time.Time, logger *zap.Logger) *Handlers {
	return &Handlers{
		service: service,
		now:     now,
		logger:  logger,
	}
}

type cycleRequest struct {
	PeriodStart string `name:"period_start" validate:"required,datetime=2006-01-02"`
}

// CycleResponse is the body of GET /api/mood/cycle.
type CycleResponse struct {
	PeriodStart string          `json:"period_start"`
	CycleDay    int             `json:"cycle_day"`
	Phase       mood.CyclePhase `json:"phase"`
	Mood        mood.Mood       `json:"mood"`
}

type weatherRequest struct {
	Condition string `name:"condition" validate:"required"`
}

// WeatherResponse is the body of GET /api/mood/weather.
type WeatherResponse struct {
	Condition mood.WeatherCondition `json:"condition"`
	Mood      mood.Mood             `json:"mood"`
}

type recommendationRequest struct {
	Mood     string `name:"mood" validate:"required,oneof=Relaxing Happy Romantic Melancholy Calm Cozy Intense Chill"`
	Language string
	Era      string
	Genre    string
	Artist   string
}

// TrackResponse is one recommended track.
type TrackResponse struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Artist   string `json:"artist"`
}

// RecommendationResponse is the body of GET /api/recommendations.
type RecommendationResponse struct {
	ID     string          `json:"id"`
	Mood   mood.Mood       `json:"mood"`
	Query  string          `json:"query"`
	Tracks []TrackResponse `json:"tracks"`
}

// Health reports liveness (GET /healthz).
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CycleMood classifies a period start date (GET /api/mood/cycle?period_start=YYYY-MM-DD).
func (h *Handlers) CycleMood(w http.ResponseWriter, r *http.Request) {
	req := cycleRequest{PeriodStart: strings.TrimSpace(r.URL.Query().Get("period_start"))}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		writeError(w, h.logger, recommend.InputError("invalid query", validationError(fieldErrors)))
		return
	}

	now := h.now()
	// Validated above, so the layout matches.
	start, _ := time.ParseInLocation(dateLayout, req.PeriodStart, now.Location())

	phase := mood.PhaseAt(start, now)
	writeJSON(w, http.StatusOK, CycleResponse{
		PeriodStart: req.PeriodStart,
		CycleDay:    mood.CycleDay(start, now),
		Phase:       phase,
		Mood:        mood.PhaseMood(phase),
	})
}

// WeatherMood classifies a weather label (GET /api/mood/weather?condition=Rain).
func (h *Handlers) WeatherMood(w http.ResponseWriter, r *http.Request) {
	req := weatherRequest{Condition: strings.TrimSpace(r.URL.Query().Get("condition"))}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		writeError(w, h.logger, recommend.InputError("invalid query", validationError(fieldErrors)))
		return
	}

	condition := mood.WeatherCondition(req.Condition)
	writeJSON(w, http.StatusOK, WeatherResponse{
		Condition: condition,
		Mood:      mood.WeatherMood(condition),
	})
}

// Recommendations searches the catalog for a mood and optional filters
// (GET /api/recommendations?mood=Happy&language=&era=&genre=&artist=).
func (h *Handlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := recommendationRequest{
		Mood:     strings.TrimSpace(q.Get("mood")),
		Language: strings.TrimSpace(q.Get("language")),
		Era:      strings.TrimSpace(q.Get("era")),
		Genre:    strings.TrimSpace(q.Get("genre")),
		Artist:   strings.TrimSpace(q.Get("artist")),
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		writeError(w, h.logger, recommend.InputError("invalid query", validationError(fieldErrors)))
		return
	}

	m := mood.Mood(req.Mood)
	result, err := h.service.Recommend(r.Context(), m, recommend.Preferences{
		Language: req.Language,
		Era:      req.Era,
		Genre:    req.Genre,
		Artist:   req.Artist,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	tracks := make([]TrackResponse, len(result.Tracks))
	for i, t := range result.Tracks {
		tracks[i] = TrackResponse{Position: i + 1, Name: t.Name, Artist: t.Artist}
	}

	writeJSON(w, http.StatusOK, RecommendationResponse{
		ID:     uuid.NewString(),
		Mood:   m,
		Query:  result.Query,
		Tracks: tracks,
	})
}

type validationError []validation.FieldError

func (e validationError) Error() string {
	return validation.Join(e)
}

// statusFor maps an error kind to an HTTP status.
func statusFor(err error) int {
	switch recommend.KindOf(err) {
	case recommend.KindInput:
		return http.StatusBadRequest
	case recommend.KindProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Stringer("kind", recommend.KindOf(err)), zap.Error(err))
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
