package routes

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/coachkit/coachkit/internal/analysis"
	appmw "github.com/coachkit/coachkit/internal/http/middleware"
	"github.com/coachkit/coachkit/internal/pipeline"
)

type Server struct {
	Router *chi.Mux
	Proc   *pipeline.Processor
	Log    zerolog.Logger
}

type ServerOptions struct {
	Proc   *pipeline.Processor
	Log    zerolog.Logger
	APIKey string
}

func New(opts ServerOptions) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	s := &Server{Router: r, Proc: opts.Proc, Log: opts.Log}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			s.Log.Error().Err(err).Msg("writing health check response")
		}
	})

	r.Group(func(pr chi.Router) {
		pr.Use(appmw.RequireAPIKey(opts.APIKey))
		pr.Post("/process_logs", s.handleProcessLogs)
	})

	return s
}

// traineePayload is the raw per-trainee record before shape validation.
type traineePayload struct {
	WorkoutLogs *json.RawMessage `json:"workout_logs"`
	DietLogs    *json.RawMessage `json:"diet_logs"`
	Targets     *json.RawMessage `json:"targets"`
}

// handleProcessLogs implements the batch contract: a JSON object mapping
// trainee ids to log records in, a per-trainee map of suggestion lists or
// error entries out. Malformed trainees get error entries; only an
// undecodable request body fails the whole call.
func (s *Server) handleProcessLogs(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON data"})
		return
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		var probe any
		if json.Unmarshal(raw, &probe) == nil {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "Invalid data structure: top level must be an object keyed by trainee id",
			})
			return
		}
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON data"})
		return
	}

	results := make(map[string]any, len(body))
	batch := make(map[string]pipeline.TraineeLogs, len(body))

	for traineeID, raw := range body {
		logs, errMsg := decodeTrainee(raw)
		if errMsg != "" {
			results[traineeID] = map[string]string{"error": errMsg}
			continue
		}
		batch[traineeID] = logs
	}

	for traineeID, res := range s.Proc.Process(r.Context(), batch) {
		if res.Err != nil {
			results[traineeID] = map[string]string{"error": res.Err.Error()}
			continue
		}
		results[traineeID] = res.Suggestions
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"suggestions": results})
}

// decodeTrainee validates one trainee's record shape, returning a
// caller-facing message for anything malformed.
func decodeTrainee(raw json.RawMessage) (pipeline.TraineeLogs, string) {
	var payload traineePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return pipeline.TraineeLogs{}, "Invalid data structure for trainee"
	}
	if payload.WorkoutLogs == nil || payload.DietLogs == nil {
		return pipeline.TraineeLogs{}, "Missing 'workout_logs' or 'diet_logs'"
	}

	var logs pipeline.TraineeLogs
	if err := json.Unmarshal(*payload.WorkoutLogs, &logs.WorkoutLogs); err != nil {
		return pipeline.TraineeLogs{}, "Invalid data structure for 'workout_logs'"
	}
	if err := json.Unmarshal(*payload.DietLogs, &logs.DietLogs); err != nil {
		return pipeline.TraineeLogs{}, "Invalid data structure for 'diet_logs'"
	}
	if payload.Targets != nil {
		var targets analysis.Targets
		if err := json.Unmarshal(*payload.Targets, &targets); err != nil {
			return pipeline.TraineeLogs{}, "Invalid data structure for 'targets'"
		}
		logs.Targets = &targets
	}
	return logs, ""
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.Error().Err(err).Msg("encoding response")
	}
}
