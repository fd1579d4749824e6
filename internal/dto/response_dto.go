package dto

import "time"

// Response is the uniform envelope applied to every API response, success or
// failure. Data is null for error responses without detail.
type Response[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type QuestionResponse struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuestionWithAnswersResponse is the detail view with eager-loaded answers,
// ordered by creation time.
type QuestionWithAnswersResponse struct {
	ID        uint             `json:"id"`
	Text      string           `json:"text"`
	Answers   []AnswerResponse `json:"answers"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type AnswerResponse struct {
	ID         uint      `json:"id"`
	QuestionID uint      `json:"question_id"`
	UserID     int       `json:"user_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DeleteResponse confirms a delete, echoing the removed id.
type DeleteResponse struct {
	ID uint `json:"id"`
}

// FieldError is one schema violation inside a 422 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorData is the data payload of a 422 response.
type ValidationErrorData struct {
	Errors []FieldError `json:"errors"`
}
