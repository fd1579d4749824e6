package controller_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gooodforeal/que-ans-api/internal/dto"
)

func TestCreateAnswerSuccess(t *testing.T) {
	router := newTestRouter(t)

	question := createQuestion(t, router, "What is idiomatic error handling?")
	body := `{"text":"Return it, do not panic.","user_id":1}`
	w := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/questions/%d/answers", question.ID), body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body: %s)", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Message != "Answer created successfully" {
		t.Errorf("unexpected message: %q", env.Message)
	}
	var answer dto.AnswerResponse
	if err := json.Unmarshal(env.Data, &answer); err != nil {
		t.Fatalf("data is not an answer: %v", err)
	}
	if answer.ID == 0 {
		t.Error("expected id > 0")
	}
	if answer.QuestionID != question.ID {
		t.Errorf("expected question_id %d, got %d", question.ID, answer.QuestionID)
	}
	if answer.UserID != 1 {
		t.Errorf("expected user_id 1, got %d", answer.UserID)
	}
}

func TestCreateAnswerQuestionMissing(t *testing.T) {
	router := newTestRouter(t)

	// Not-found, never a generic bad-input.
	w := doRequest(t, router, http.MethodPost, "/api/v1/questions/777/answers",
		`{"text":"into the void","user_id":1}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (body: %s)", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Message != "Question with ID 777 not found" {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestCreateAnswerValidation(t *testing.T) {
	router := newTestRouter(t)
	question := createQuestion(t, router, "validation target")

	cases := []struct {
		name string
		body string
	}{
		{"empty text", `{"text":"","user_id":1}`},
		{"missing text", `{"user_id":1}`},
		{"text too long", fmt.Sprintf(`{"text":%q,"user_id":1}`, strings.Repeat("a", 10001))},
		{"user_id zero", `{"text":"ok","user_id":0}`},
		{"user_id negative", `{"text":"ok","user_id":-5}`},
		{"missing user_id", `{"text":"ok"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost,
				fmt.Sprintf("/api/v1/questions/%d/answers", question.ID), tc.body)
			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d (body: %s)", w.Code, w.Body.String())
			}
			env := decodeEnvelope(t, w)
			if !strings.HasPrefix(env.Message, "Validation error: ") {
				t.Errorf("message missing validation prefix: %q", env.Message)
			}
		})
	}
}

func TestCreateAnswerUserIDViolationMessage(t *testing.T) {
	router := newTestRouter(t)
	question := createQuestion(t, router, "message target")

	// Zero and absent user_id both report the positivity constraint, not a
	// missing-field message.
	for _, body := range []string{`{"text":"ok","user_id":0}`, `{"text":"ok"}`} {
		w := doRequest(t, router, http.MethodPost,
			fmt.Sprintf("/api/v1/questions/%d/answers", question.ID), body)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d (body: %s)", w.Code, w.Body.String())
		}
		env := decodeEnvelope(t, w)
		var data dto.ValidationErrorData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("data is not validation detail: %v", err)
		}
		found := false
		for _, fe := range data.Errors {
			if fe.Field == "user_id" {
				found = true
				if fe.Message != "must be greater than 0" {
					t.Errorf("unexpected user_id violation: %q", fe.Message)
				}
			}
		}
		if !found {
			t.Errorf("expected a user_id violation, got %+v", data.Errors)
		}
	}
}

func TestCreateAnswerBoundaryLength(t *testing.T) {
	router := newTestRouter(t)
	question := createQuestion(t, router, "boundary target")

	// Exactly 10000 characters is accepted, user_id == 1 is the smallest
	// valid value.
	body := fmt.Sprintf(`{"text":%q,"user_id":1}`, strings.Repeat("a", 10000))
	w := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/questions/%d/answers", question.ID), body)
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201 for 10000-char text, got %d", w.Code)
	}
}

func TestGetAnswer(t *testing.T) {
	router := newTestRouter(t)

	question := createQuestion(t, router, "Q")
	w := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/questions/%d/answers", question.ID), `{"text":"A","user_id":2}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating answer, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	var created dto.AnswerResponse
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("data is not an answer: %v", err)
	}

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/answers/%d", created.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	env = decodeEnvelope(t, w)
	if env.Message != "Answer retrieved successfully" {
		t.Errorf("unexpected message: %q", env.Message)
	}
	var answer dto.AnswerResponse
	if err := json.Unmarshal(env.Data, &answer); err != nil {
		t.Fatalf("data is not an answer: %v", err)
	}
	if answer.ID != created.ID || answer.Text != "A" || answer.UserID != 2 {
		t.Errorf("unexpected answer: %+v", answer)
	}
}

func TestGetAnswerNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/answers/321", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Message != "Answer with ID 321 not found" {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestGetAnswerInvalidID(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/answers/not-a-number", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for non-integer id, got %d", w.Code)
	}
}

func TestDeleteAnswer(t *testing.T) {
	router := newTestRouter(t)

	question := createQuestion(t, router, "Q")
	w := doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/questions/%d/answers", question.ID), `{"text":"A","user_id":1}`)
	env := decodeEnvelope(t, w)
	var answer dto.AnswerResponse
	if err := json.Unmarshal(env.Data, &answer); err != nil {
		t.Fatalf("data is not an answer: %v", err)
	}

	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/answers/%d", answer.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	env = decodeEnvelope(t, w)
	if env.Message != "Answer deleted successfully" {
		t.Errorf("unexpected message: %q", env.Message)
	}

	// Deleting again observes absence.
	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/answers/%d", answer.ID), "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}

	// The parent question is untouched.
	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/questions/%d", question.ID), "")
	if w.Code != http.StatusOK {
		t.Errorf("expected question to survive answer deletion, got %d", w.Code)
	}
}
