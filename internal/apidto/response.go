package apidto

import "time"

// JobAcceptedResponse is returned from POST /v1/jobs once a solve has
// been queued.
type JobAcceptedResponse struct {
	JobID string `json:"job_id"`
}

// JobStatusResponse is returned from GET /v1/jobs/:id.
type JobStatusResponse struct {
	JobID     string     `json:"job_id"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Error     string     `json:"error,omitempty"`
	Result    *SolveResult `json:"result,omitempty"`
}

// SolveResult is the solved-schedule payload embedded in a finished
// job's status response, built by BuildSolveResult directly from the
// schedule and statistics with raw entity IDs.
type SolveResult struct {
	Lessons    []LessonDTO       `json:"lessons"`
	Statistics StatisticsDTO     `json:"statistics"`
}

type LessonDTO struct {
	ClassID   string `json:"class_id"`
	SubjectID string `json:"subject_id"`
	TeacherID string `json:"teacher_id"`
	RoomID    string `json:"room_id"`
	Day       int    `json:"day"`
	Period    int    `json:"period"`
}

type StatisticsDTO struct {
	ConstructAttempts int                `json:"construct_attempts"`
	RequestsHandled   int                `json:"requests_handled"`
	InitialCost       float64            `json:"initial_cost,omitempty"`
	FinalCost         float64            `json:"final_cost,omitempty"`
	BestCost          float64            `json:"best_cost,omitempty"`
	Accepted          int                `json:"accepted,omitempty"`
	Rejected          int                `json:"rejected,omitempty"`
	Reheats           int                `json:"reheats,omitempty"`
	Decomposition     map[string]float64 `json:"decomposition,omitempty"`
}

// ErrorResponse is the uniform error envelope for every non-2xx
// response cmd/timetableapi returns.
type ErrorResponse struct {
	Error string `json:"error"`
}
