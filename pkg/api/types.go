package api

// ChatTurn is one user input paired with the assistant's reply.
type ChatTurn struct {
	UserText      string `json:"user"`
	AssistantText string `json:"assistant"`
	Mode          string `json:"mode"`
	Timestamp     string `json:"timestamp"`
}

type TextResponse struct {
	Success  bool       `json:"success"`
	Response string     `json:"response"`
	History  []ChatTurn `json:"history,omitempty"`
}

type AudioResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

type HistoryResponse struct {
	History []ChatTurn `json:"history"`
}

type SMSRequest struct {
	DoctorNumber string `json:"doctor_number"`
	CaseSummary  string `json:"case_summary"`
}

type SMSResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type BreathingQuery struct {
	Type string `schema:"type"`
}

type BreathingStep struct {
	Action   string `json:"action"`
	Duration int    `json:"duration"`
}

type BreathingExercise struct {
	Name        string          `json:"name"`
	Steps       []BreathingStep `json:"steps"`
	Description string          `json:"description"`
}

type AppointmentRequest struct {
	Date      string `json:"date"`
	Specialty string `json:"specialty"`
}

type Appointment struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Specialty string `json:"specialty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type AppointmentResponse struct {
	Success     bool        `json:"success"`
	Appointment Appointment `json:"appointment"`
}

type AppointmentsResponse struct {
	Appointments []Appointment `json:"appointments"`
}

type HealthReadingRequest struct {
	Metric string `json:"metric"`
	Value  any    `json:"value"`
}

type HealthReading struct {
	Value     any    `json:"value"`
	Timestamp string `json:"timestamp"`
}

type StatusResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
