package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ubuzima-backend/internal/database"
	"ubuzima-backend/internal/directory"
	"ubuzima-backend/internal/session"
	"ubuzima-backend/internal/sms"
	"ubuzima-backend/pkg/api"
)

// Notifier sends a doctor notification and reports the structured outcome.
type Notifier interface {
	Notify(ctx context.Context, to, summary string) sms.Result
}

// CareService exposes the doctor directory page, SMS notification,
// breathing-exercise, appointment, and health-tracking endpoints.
type CareService struct {
	db        *gorm.DB
	notifier  Notifier
	directory *directory.Directory
}

func NewCareService(db *gorm.DB, notifier Notifier, dir *directory.Directory) *CareService {
	return &CareService{db: db, notifier: notifier, directory: dir}
}

func (s *CareService) AddRoutes(r chi.Router) {
	r.Get("/", s.Index)
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Post("/send_sms", RestHandler(s.SendSMS))
	r.Get("/breathing_exercise", RestHandler(s.BreathingExercise))
	r.Post("/add_appointment", RestHandler(s.AddAppointment))
	r.Get("/get_appointments", RestHandler(s.GetAppointments))
	r.Get("/health_tracking", RestHandler(s.GetHealthMetrics))
	r.Post("/health_tracking", RestHandler(s.AddHealthReading))
}

func (s *CareService) SendSMS(r *http.Request) (any, error) {
	req, err := ParseRequest[api.SMSRequest](r)
	if err != nil {
		return nil, err
	}

	if req.DoctorNumber == "" || req.CaseSummary == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "missing required information")
	}

	result := s.notifier.Notify(r.Context(), req.DoctorNumber, req.CaseSummary)
	return api.SMSResponse{Success: result.Success, Message: result.Message}, nil
}

var breathingExercises = map[string]api.BreathingExercise{
	"box": {
		Name: "Box Breathing",
		Steps: []api.BreathingStep{
			{Action: "inhale", Duration: 4},
			{Action: "hold", Duration: 4},
			{Action: "exhale", Duration: 4},
			{Action: "hold", Duration: 4},
		},
		Description: "A technique used to calm the nervous system",
	},
	"478": {
		Name: "4-7-8 Breathing",
		Steps: []api.BreathingStep{
			{Action: "inhale", Duration: 4},
			{Action: "hold", Duration: 7},
			{Action: "exhale", Duration: 8},
		},
		Description: "Helps reduce anxiety and helps people get to sleep",
	},
}

func (s *CareService) BreathingExercise(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[api.BreathingQuery](r)
	if err != nil {
		return nil, err
	}

	exercise, ok := breathingExercises[params.Type]
	if !ok {
		exercise = breathingExercises["box"]
	}
	return exercise, nil
}

func (s *CareService) AddAppointment(r *http.Request) (any, error) {
	req, err := ParseRequest[api.AppointmentRequest](r)
	if err != nil {
		return nil, err
	}

	if req.Date == "" || req.Specialty == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "missing required information")
	}

	appointment := &database.Appointment{
		ID:        uuid.New(),
		SessionID: session.FromContext(r.Context()),
		Date:      req.Date,
		Specialty: req.Specialty,
		Status:    database.AppointmentScheduled,
		CreatedAt: time.Now().UTC(),
	}
	if err := database.SaveAppointment(s.db, appointment); err != nil {
		slog.Error("error saving appointment", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to create appointment")
	}

	return api.AppointmentResponse{Success: true, Appointment: toAPIAppointment(*appointment)}, nil
}

func (s *CareService) GetAppointments(r *http.Request) (any, error) {
	sessionID := session.FromContext(r.Context())

	out := make([]api.Appointment, 0)
	if sessionID != uuid.Nil {
		appointments, err := database.GetAppointments(s.db, sessionID)
		if err != nil {
			slog.Error("error retrieving appointments", "session_id", sessionID, "error", err)
			return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving appointments")
		}
		for _, appointment := range appointments {
			out = append(out, toAPIAppointment(appointment))
		}
	}

	return api.AppointmentsResponse{Appointments: out}, nil
}

func (s *CareService) AddHealthReading(r *http.Request) (any, error) {
	req, err := ParseRequest[api.HealthReadingRequest](r)
	if err != nil {
		return nil, err
	}

	if req.Metric == "" || req.Value == nil {
		return nil, CodedErrorf(http.StatusBadRequest, "missing metric or value")
	}

	value, err := json.Marshal(req.Value)
	if err != nil {
		return nil, CodedErrorf(http.StatusBadRequest, "unsupported metric value")
	}

	reading := &database.HealthReading{
		SessionID: session.FromContext(r.Context()),
		Metric:    req.Metric,
		Value:     datatypes.JSON(value),
		Timestamp: time.Now().UTC(),
	}
	if err := database.SaveHealthReading(s.db, reading); err != nil {
		slog.Error("error saving health reading", "metric", req.Metric, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to record health reading")
	}

	return api.StatusResponse{Success: true}, nil
}

func (s *CareService) GetHealthMetrics(r *http.Request) (any, error) {
	sessionID := session.FromContext(r.Context())

	var readings []database.HealthReading
	if sessionID != uuid.Nil {
		var err error
		readings, err = database.GetHealthReadings(s.db, sessionID)
		if err != nil {
			slog.Error("error retrieving health readings", "session_id", sessionID, "error", err)
			return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving health metrics")
		}
	}

	if len(readings) == 0 {
		return mockHealthMetrics(time.Now()), nil
	}

	metrics := make(map[string][]api.HealthReading)
	for _, reading := range readings {
		var value any
		if err := json.Unmarshal(reading.Value, &value); err != nil {
			value = string(reading.Value)
		}
		metrics[reading.Metric] = append(metrics[reading.Metric], api.HealthReading{
			Value:     value,
			Timestamp: reading.Timestamp.Format(time.RFC3339),
		})
	}
	return metrics, nil
}

// mockHealthMetrics synthesizes a week of plausible readings for first-time
// visitors so the tracking view is never empty. Nothing is persisted; the
// first real reading replaces the whole mock view.
func mockHealthMetrics(now time.Time) map[string][]api.HealthReading {
	metrics := map[string][]api.HealthReading{
		"temperature": {},
		"pulse":       {},
		"stress":      {},
	}

	for i := 0; i < 7; i++ {
		ts := now.AddDate(0, 0, i-6).Format(time.RFC3339)

		temperature := math.Round((36.5+rand.Float64()*0.7)*10) / 10
		metrics["temperature"] = append(metrics["temperature"], api.HealthReading{Value: temperature, Timestamp: ts})
		metrics["pulse"] = append(metrics["pulse"], api.HealthReading{Value: 65 + rand.Intn(21), Timestamp: ts})
		metrics["stress"] = append(metrics["stress"], api.HealthReading{Value: 1 + rand.Intn(10), Timestamp: ts})
	}

	return metrics
}

func toAPIAppointment(appointment database.Appointment) api.Appointment {
	return api.Appointment{
		ID:        appointment.ID.String(),
		Date:      appointment.Date,
		Specialty: appointment.Specialty,
		Status:    appointment.Status,
		CreatedAt: appointment.CreatedAt.Format(time.RFC3339),
	}
}
