package repository

import (
	"errors"

	"github.com/gooodforeal/que-ans-api/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDWithAnswers(id uint) (*model.Question, error)
	FindAll() ([]model.Question, error)
	Delete(id uint) (bool, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	if err := r.db.Create(question).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// FindByID returns (nil, nil) when no row exists; absence is not an error at
// this layer, the caller decides what it means.
func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &question, nil
}

// FindByIDWithAnswers eager-loads the question's answers ordered by creation
// time, avoiding a second round trip.
func (r *questionRepository) FindByIDWithAnswers(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("answers.created_at ASC")
	}).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &question, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("created_at desc").Find(&questions).Error; err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}

// Delete removes the question and all of its answers in one transaction.
// Returns whether a question row existed and was removed. The explicit
// child-then-parent delete keeps the no-orphan invariant even without the
// database-level ON DELETE CASCADE constraint.
func (r *questionRepository) Delete(id uint) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Question{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("id", id).Msg("Failed to delete question")
		return false, translateError(err)
	}
	return deleted, nil
}
