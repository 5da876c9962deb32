package studyplan

import (
	"errors"

	"github.com/estudai/estudai-api/internal/flashcard"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionKey identifica uma sessão dentro do plano. Espelha o índice único
// idx_plan_date_type.
type sessionKey struct {
	Date string
	Type ContentType
}

type PlanRepository interface {
	CreatePlan(tx *gorm.DB, plan *StudyPlan) error
	FindPlanByID(id uuid.UUID) (*StudyPlan, error)
	ListPlansByStudent(studentID uuid.UUID) ([]*StudyPlan, error)
	UpdatePlan(tx *gorm.DB, plan *StudyPlan) error
	SaveContent(tx *gorm.DB, content *PlanContent) error

	ExistingSessionKeys(tx *gorm.DB, planID uuid.UUID) (map[sessionKey]bool, error)
	CreateSession(tx *gorm.DB, session *PlanSession) error
	FindSessionByID(id uuid.UUID) (*PlanSession, error)
	FindSessionForUpdate(tx *gorm.DB, id uuid.UUID) (*PlanSession, error)
	ListSessionsByPlan(planID uuid.UUID, from, to *DateOnly) ([]*PlanSession, error)
	SaveSession(tx *gorm.DB, session *PlanSession) error

	CreateQbankQuestions(tx *gorm.DB, entries []*QbankQuestion) error
	ListQbankBySession(sessionID uuid.UUID) ([]*QbankQuestion, error)
	FindQbankEntryForUpdate(tx *gorm.DB, sessionID, questionID uuid.UUID) (*QbankQuestion, error)
	SaveQbankEntry(tx *gorm.DB, entry *QbankQuestion) error
	CountQbankBySession(sessionID uuid.UUID) (int, error)
	CountQbankByPlan(planID uuid.UUID) (int, error)

	CountFlashcardsInDecks(deckIDs []uuid.UUID) (int, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) CreatePlan(tx *gorm.DB, plan *StudyPlan) error {
	return tx.Create(plan).Error
}

func (r *planRepository) FindPlanByID(id uuid.UUID) (*StudyPlan, error) {
	var plan StudyPlan
	if err := r.db.Preload("Contents").First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) ListPlansByStudent(studentID uuid.UUID) ([]*StudyPlan, error) {
	var plans []*StudyPlan
	if err := r.db.
		Preload("Contents").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) UpdatePlan(tx *gorm.DB, plan *StudyPlan) error {
	return tx.Omit("Contents").Save(plan).Error
}

func (r *planRepository) SaveContent(tx *gorm.DB, content *PlanContent) error {
	return tx.Save(content).Error
}

func (r *planRepository) ExistingSessionKeys(tx *gorm.DB, planID uuid.UUID) (map[sessionKey]bool, error) {
	var sessions []PlanSession
	if err := tx.
		Select("session_date", "content_type").
		Where("plan_id = ?", planID).
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	keys := make(map[sessionKey]bool, len(sessions))
	for _, s := range sessions {
		keys[sessionKey{Date: s.SessionDate.String(), Type: s.ContentType}] = true
	}
	return keys, nil
}

func (r *planRepository) CreateSession(tx *gorm.DB, session *PlanSession) error {
	return tx.Create(session).Error
}

func (r *planRepository) FindSessionByID(id uuid.UUID) (*PlanSession, error) {
	var s PlanSession
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *planRepository) FindSessionForUpdate(tx *gorm.DB, id uuid.UUID) (*PlanSession, error) {
	var s PlanSession
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *planRepository) ListSessionsByPlan(planID uuid.UUID, from, to *DateOnly) ([]*PlanSession, error) {
	query := r.db.Where("plan_id = ?", planID)
	if from != nil {
		query = query.Where("session_date >= ?", from.Time)
	}
	if to != nil {
		query = query.Where("session_date <= ?", to.Time)
	}

	var sessions []*PlanSession
	if err := query.Order("session_date ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *planRepository) SaveSession(tx *gorm.DB, session *PlanSession) error {
	return tx.Save(session).Error
}

func (r *planRepository) CreateQbankQuestions(tx *gorm.DB, entries []*QbankQuestion) error {
	if len(entries) == 0 {
		return nil
	}
	return tx.Create(entries).Error
}

func (r *planRepository) ListQbankBySession(sessionID uuid.UUID) ([]*QbankQuestion, error) {
	var entries []*QbankQuestion
	if err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *planRepository) FindQbankEntryForUpdate(tx *gorm.DB, sessionID, questionID uuid.UUID) (*QbankQuestion, error) {
	var entry QbankQuestion
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&entry, "session_id = ? AND question_id = ?", sessionID, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *planRepository) SaveQbankEntry(tx *gorm.DB, entry *QbankQuestion) error {
	return tx.Save(entry).Error
}

func (r *planRepository) CountQbankBySession(sessionID uuid.UUID) (int, error) {
	var count int64
	if err := r.db.Model(&QbankQuestion{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *planRepository) CountQbankByPlan(planID uuid.UUID) (int, error) {
	var count int64
	if err := r.db.Model(&QbankQuestion{}).
		Joins("JOIN plan_sessions ON plan_sessions.id = qbank_questions.session_id").
		Where("plan_sessions.plan_id = ?", planID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *planRepository) CountFlashcardsInDecks(deckIDs []uuid.UUID) (int, error) {
	if len(deckIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := r.db.Model(&flashcard.Flashcard{}).
		Where("deck_id IN ?", deckIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
