package service

import (
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/gooodforeal/que-ans-api/internal/apperr"
	"github.com/gooodforeal/que-ans-api/internal/dto"
	"github.com/gooodforeal/que-ans-api/internal/model"
	"github.com/gooodforeal/que-ans-api/internal/repository"
)

type QuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetAllQuestions() ([]dto.QuestionResponse, error)
	GetQuestionByID(id uint) (*dto.QuestionWithAnswersResponse, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question := model.Question{Text: req.Text}
	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, err
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) GetAllQuestions() ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	copier.Copy(&resp, &questions)
	return resp, nil
}

// GetQuestionByID returns the question with its answers or a typed not-found
// error naming the id.
func (s *questionService) GetQuestionByID(id uint) (*dto.QuestionWithAnswersResponse, error) {
	question, err := s.repo.FindByIDWithAnswers(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperr.NewNotFound("Question", id)
	}
	var resp dto.QuestionWithAnswersResponse
	copier.Copy(&resp, question)
	if resp.Answers == nil {
		resp.Answers = []dto.AnswerResponse{}
	}
	return &resp, nil
}

// DeleteQuestion cascades to the question's answers in the repository.
func (s *questionService) DeleteQuestion(id uint) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NewNotFound("Question", id)
	}
	return nil
}
