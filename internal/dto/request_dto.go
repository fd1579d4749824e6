package dto

// CreateQuestionRequest is the body of POST /questions.
type CreateQuestionRequest struct {
	Text string `json:"text" binding:"required,min=1,max=200"`
}

// CreateAnswerRequest is the body of POST /questions/{id}/answers.
// An absent user_id decodes to zero and fails gt like any other
// non-positive value, so the violation always names the real constraint.
type CreateAnswerRequest struct {
	Text   string `json:"text" binding:"required,min=1,max=10000"`
	UserID int    `json:"user_id" binding:"gt=0"`
}
