package repository

import (
	"errors"

	"github.com/gooodforeal/que-ans-api/internal/apperr"
	"github.com/gooodforeal/que-ans-api/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(questionID uint, answer *model.Answer) error
	FindByID(id uint) (*model.Answer, error)
	Delete(id uint) (bool, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// Create inserts the answer after verifying the referenced question exists,
// both steps inside one transaction. A missing question yields a typed
// not-found error naming the question, not a generic write failure.
func (r *answerRepository) Create(questionID uint, answer *model.Answer) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var question model.Question
		if err := tx.Select("id").First(&question, questionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NewNotFound("Question", questionID)
			}
			return err
		}
		answer.QuestionID = questionID
		return tx.Create(answer).Error
	})
	if err != nil {
		if apperr.IsNotFound(err) {
			log.Warn().Uint("question_id", questionID).Msg("Answer creation against missing question")
			return err
		}
		log.Error().Err(err).Uint("question_id", questionID).Msg("Failed to create answer")
		return translateError(err)
	}
	return nil
}

// FindByID returns (nil, nil) when no row exists.
func (r *answerRepository) FindByID(id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.First(&answer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &answer, nil
}

// Delete removes the answer and reports whether a row existed.
func (r *answerRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&model.Answer{}, id)
	if res.Error != nil {
		return false, translateError(res.Error)
	}
	return res.RowsAffected > 0, nil
}
