package service

import (
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/gooodforeal/que-ans-api/internal/apperr"
	"github.com/gooodforeal/que-ans-api/internal/dto"
	"github.com/gooodforeal/que-ans-api/internal/model"
	"github.com/gooodforeal/que-ans-api/internal/repository"
)

type AnswerService interface {
	CreateAnswer(questionID uint, req dto.CreateAnswerRequest) (*dto.AnswerResponse, error)
	GetAnswerByID(id uint) (*dto.AnswerResponse, error)
	DeleteAnswer(id uint) error
}

type answerService struct {
	repo repository.AnswerRepository
}

func NewAnswerService(repo repository.AnswerRepository) AnswerService {
	return &answerService{repo: repo}
}

// CreateAnswer attaches an answer to the question named in the path. The
// repository's reference-missing failure already carries the question's id,
// so it propagates unchanged as a not-found outcome.
func (s *answerService) CreateAnswer(questionID uint, req dto.CreateAnswerRequest) (*dto.AnswerResponse, error) {
	answer := model.Answer{
		Text:   req.Text,
		UserID: req.UserID,
	}
	if err := s.repo.Create(questionID, &answer); err != nil {
		if !apperr.IsNotFound(err) {
			log.Error().Err(err).Uint("question_id", questionID).Msg("Failed to create answer")
		}
		return nil, err
	}
	var resp dto.AnswerResponse
	copier.Copy(&resp, &answer)
	return &resp, nil
}

func (s *answerService) GetAnswerByID(id uint) (*dto.AnswerResponse, error) {
	answer, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, apperr.NewNotFound("Answer", id)
	}
	var resp dto.AnswerResponse
	copier.Copy(&resp, answer)
	return &resp, nil
}

func (s *answerService) DeleteAnswer(id uint) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NewNotFound("Answer", id)
	}
	return nil
}
