package studyplan

import (
	"context"
	"errors"
	"time"

	"github.com/estudai/estudai-api/internal/auth"
	"github.com/estudai/estudai-api/internal/config"
	"github.com/estudai/estudai-api/internal/question"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPlanNotFound         = errors.New("study plan not found")
	ErrSessionNotFound      = errors.New("plan session not found")
	ErrQuestionNotInSession = errors.New("question is not part of this session")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidID            = errors.New("invalid id format")
	ErrInvalidDate          = errors.New("invalid date format")
	ErrInvalidWeekday       = errors.New("invalid weekday abbreviation")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidTransition    = errors.New("invalid session status transition")
)

type PlanService interface {
	CreatePlan(ctx context.Context, dto CreatePlanDTO) (*StudyPlan, error)
	GetPlanByID(ctx context.Context, id string) (*StudyPlan, error)
	ListPlans(ctx context.Context) ([]*StudyPlan, error)
	UpdatePlan(ctx context.Context, id string, dto UpdatePlanDTO) (*StudyPlan, error)

	GenerateSessions(ctx context.Context, planID string) (*GenerateResultDTO, error)
	ListSessions(ctx context.Context, planID string, from, to string) ([]*PlanSession, error)
	GetSession(ctx context.Context, sessionID string) (*PlanSession, error)
	ListSessionQuestions(ctx context.Context, sessionID string) ([]*QbankQuestion, error)
	AnswerQuestion(ctx context.Context, sessionID string, dto AnswerQuestionDTO) (*AnswerResultDTO, error)
	UpdateSession(ctx context.Context, sessionID string, dto UpdateSessionDTO) (*PlanSession, error)

	PlanProgress(ctx context.Context, planID string) (*PlanProgress, error)
	SessionProgress(ctx context.Context, sessionID string) (*SessionProgress, error)
}

type planService struct {
	db        *gorm.DB
	repo      PlanRepository
	assembler *Assembler
}

func NewService(db *gorm.DB, repo PlanRepository, assembler *Assembler) PlanService {
	return &planService{db: db, repo: repo, assembler: assembler}
}

func studentIDFromContext(ctx context.Context) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return id, nil
}

func validateStudyDays(days []string) error {
	for _, token := range days {
		if _, ok := ParseWeekday(token); !ok {
			return ErrInvalidWeekday
		}
	}
	return nil
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, ErrInvalidID
		}
		ids = append(ids, id)
	}
	return ids, nil
}

const defaultMaxPerDay = 20

// perDayLimit aplica o limite padrão quando o plano não define um. Limite
// zero viraria pool ilimitado na montagem do qbank.
func perDayLimit(v int) int {
	if v <= 0 {
		return defaultMaxPerDay
	}
	return v
}

func contentFromDTO(planID uuid.UUID, c PlanContentDTO) (PlanContent, error) {
	content := PlanContent{
		ID:          uuid.New(),
		PlanID:      planID,
		ContentType: ContentType(c.ContentType),
	}

	var err error
	if content.ModuleIDs, err = parseUUIDs(c.ModuleIDs); err != nil {
		return PlanContent{}, err
	}
	if content.SubjectIDs, err = parseUUIDs(c.SubjectIDs); err != nil {
		return PlanContent{}, err
	}
	if content.TopicIDs, err = parseUUIDs(c.TopicIDs); err != nil {
		return PlanContent{}, err
	}
	if content.DeckIDs, err = parseUUIDs(c.DeckIDs); err != nil {
		return PlanContent{}, err
	}
	if content.ExamIDs, err = parseUUIDs(c.ExamIDs); err != nil {
		return PlanContent{}, err
	}
	if content.BookIDs, err = parseUUIDs(c.BookIDs); err != nil {
		return PlanContent{}, err
	}
	return content, nil
}

// mergeContents aplica as alterações de escopo sobre as linhas existentes do
// plano. A linha de um tipo já declarado é atualizada no lugar, preservando o
// ID que as sessões referenciam; tipos ainda sem linha ganham uma nova.
func mergeContents(planID uuid.UUID, existing []PlanContent, updates []PlanContentDTO) ([]PlanContent, error) {
	merged := make([]PlanContent, len(existing))
	copy(merged, existing)

	for _, u := range updates {
		parsed, err := contentFromDTO(planID, u)
		if err != nil {
			return nil, err
		}

		replaced := false
		for i := range merged {
			if merged[i].ContentType == parsed.ContentType {
				parsed.ID = merged[i].ID
				parsed.CreatedAt = merged[i].CreatedAt
				merged[i] = parsed
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, parsed)
		}
	}
	return merged, nil
}

func (s *planService) CreatePlan(ctx context.Context, dto CreatePlanDTO) (*StudyPlan, error) {
	log := config.WithContext(ctx)

	studentID, err := studentIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	startDate, err := ParseDateOnly(dto.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	endDate, err := ParseDateOnly(dto.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if err := validateStudyDays(dto.StudyDays); err != nil {
		return nil, err
	}

	mode := SelectionModeStudy
	if dto.SelectionMode != "" {
		mode = SelectionMode(dto.SelectionMode)
	}

	difficulties := make([]question.Difficulty, 0, len(dto.Difficulties))
	for _, d := range dto.Difficulties {
		difficulties = append(difficulties, question.Difficulty(d))
	}

	plan := &StudyPlan{
		ID:                  uuid.New(),
		StudentID:           studentID,
		Name:                dto.Name,
		StartDate:           startDate,
		EndDate:             endDate,
		StudyDays:           dto.StudyDays,
		DailyTimeMinutes:    dto.DailyTimeMinutes,
		MaxQuestionsPerDay:  perDayLimit(dto.MaxQuestionsPerDay),
		MaxFlashcardsPerDay: perDayLimit(dto.MaxFlashcardsPerDay),
		SelectionMode:       mode,
		Difficulties:        difficulties,
		Status:              PlanStatusActive,
	}

	for _, c := range dto.Contents {
		content, err := contentFromDTO(plan.ID, c)
		if err != nil {
			return nil, err
		}
		plan.Contents = append(plan.Contents, content)
	}

	// Criação do plano e geração das sessões na mesma transação: ou o plano
	// nasce com o calendário completo, ou nada é persistido.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.CreatePlan(tx, plan); err != nil {
			return err
		}
		_, err := s.generate(ctx, tx, plan)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Erro ao criar plano de estudos")
		return nil, err
	}

	log.WithField("plan_id", plan.ID.String()).Info("Plano de estudos criado com sucesso")
	return plan, nil
}

func (s *planService) GetPlanByID(ctx context.Context, id string) (*StudyPlan, error) {
	log := config.WithContext(ctx)

	studentID, err := studentIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	planID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	plan, err := s.repo.FindPlanByID(planID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar plano de estudos")
		return nil, err
	}
	// Plano de outro aluno é indistinguível de inexistente.
	if plan == nil || plan.StudentID != studentID {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *planService) ListPlans(ctx context.Context) ([]*StudyPlan, error) {
	log := config.WithContext(ctx)

	studentID, err := studentIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	plans, err := s.repo.ListPlansByStudent(studentID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar planos de estudos")
		return nil, err
	}
	return plans, nil
}

func (s *planService) UpdatePlan(ctx context.Context, id string, dto UpdatePlanDTO) (*StudyPlan, error) {
	log := config.WithContext(ctx)

	existing, err := s.GetPlanByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil && *dto.Name != "" {
		existing.Name = *dto.Name
	}
	if dto.EndDate != nil {
		endDate, err := ParseDateOnly(*dto.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		existing.EndDate = endDate
	}
	if dto.StudyDays != nil {
		if err := validateStudyDays(dto.StudyDays); err != nil {
			return nil, err
		}
		existing.StudyDays = dto.StudyDays
	}
	if dto.DailyTimeMinutes != nil {
		existing.DailyTimeMinutes = *dto.DailyTimeMinutes
	}
	if dto.MaxQuestionsPerDay != nil {
		existing.MaxQuestionsPerDay = *dto.MaxQuestionsPerDay
	}
	if dto.MaxFlashcardsPerDay != nil {
		existing.MaxFlashcardsPerDay = *dto.MaxFlashcardsPerDay
	}
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		existing.Status = *dto.Status
	}
	if dto.Contents != nil {
		merged, err := mergeContents(existing.ID, existing.Contents, dto.Contents)
		if err != nil {
			return nil, err
		}
		existing.Contents = merged
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if dto.Contents != nil {
			for i := range existing.Contents {
				if err := s.repo.SaveContent(tx, &existing.Contents[i]); err != nil {
					return err
				}
			}
		}
		return s.repo.UpdatePlan(tx, existing)
	})
	if err != nil {
		log.WithError(err).Error("Erro ao atualizar plano de estudos")
		return nil, err
	}

	log.WithField("plan_id", existing.ID.String()).Info("Plano de estudos atualizado com sucesso")
	return existing, nil
}

// generate materializa as sessões do plano dentro da transação recebida.
// Idempotente por (plano, data, tipo): pares já existentes são pulados e o
// índice único cobre a corrida entre duas gerações concorrentes.
func (s *planService) generate(ctx context.Context, tx *gorm.DB, plan *StudyPlan) (int, error) {
	log := config.WithContext(ctx)

	dates, err := DatesBetween(plan.StartDate, plan.EndDate, plan.StudyDays)
	if err != nil {
		// Intervalo inválido vira calendário vazio, nunca falha da geração.
		if errors.Is(err, ErrInvalidRange) {
			log.WithField("plan_id", plan.ID.String()).Warn("Intervalo de datas inválido, nenhuma sessão gerada")
			return 0, nil
		}
		return 0, err
	}

	scopes := eligibleScopes(plan.Contents)
	assignments := RotateContent(dates, scopes)
	if len(assignments) == 0 {
		return 0, nil
	}

	existing, err := s.repo.ExistingSessionKeys(tx, plan.ID)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, a := range assignments {
		key := sessionKey{Date: a.Date.Date.String(), Type: a.Scope.ContentType}
		if existing[key] {
			continue
		}

		session := &PlanSession{
			ID:          uuid.New(),
			PlanID:      plan.ID,
			SessionDate: a.Date.Date,
			ContentType: a.Scope.ContentType,
			ContentID:   a.Scope.ID,
			Status:      SessionStatusPending,
		}
		if err := s.repo.CreateSession(tx, session); err != nil {
			return 0, err
		}

		if a.Scope.ContentType == ContentTypeQuestionBank {
			snapshots, err := s.assembler.Assemble(ctx, a.Scope, plan.Difficulties, plan.MaxQuestionsPerDay)
			if err != nil {
				return 0, err
			}
			entries := make([]*QbankQuestion, 0, len(snapshots))
			for _, snap := range snapshots {
				entries = append(entries, &QbankQuestion{
					ID:            uuid.New(),
					SessionID:     session.ID,
					QuestionID:    snap.QuestionID,
					CorrectOption: snap.CorrectOption,
				})
			}
			if err := s.repo.CreateQbankQuestions(tx, entries); err != nil {
				return 0, err
			}
		}
		created++
	}
	return created, nil
}

func (s *planService) GenerateSessions(ctx context.Context, planID string) (*GenerateResultDTO, error) {
	log := config.WithContext(ctx)

	plan, err := s.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	var created int
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = s.generate(ctx, tx, plan)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Erro ao gerar sessões do plano")
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"plan_id":          plan.ID.String(),
		"sessions_created": created,
	}).Info("Sessões do plano geradas")

	return &GenerateResultDTO{
		PlanID:          plan.ID.String(),
		SessionsCreated: created,
	}, nil
}

func (s *planService) ListSessions(ctx context.Context, planID string, from, to string) ([]*PlanSession, error) {
	log := config.WithContext(ctx)

	plan, err := s.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	var fromDate, toDate *DateOnly
	if from != "" {
		d, err := ParseDateOnly(from)
		if err != nil {
			return nil, ErrInvalidDate
		}
		fromDate = &d
	}
	if to != "" {
		d, err := ParseDateOnly(to)
		if err != nil {
			return nil, ErrInvalidDate
		}
		toDate = &d
	}

	sessions, err := s.repo.ListSessionsByPlan(plan.ID, fromDate, toDate)
	if err != nil {
		log.WithError(err).Error("Erro ao listar sessões do plano")
		return nil, err
	}
	return sessions, nil
}

// getOwnedSession carrega a sessão e confere que o plano pai pertence ao
// aluno da requisição.
func (s *planService) getOwnedSession(ctx context.Context, sessionID string) (*PlanSession, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, ErrInvalidID
	}

	session, err := s.repo.FindSessionByID(id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if _, err := s.GetPlanByID(ctx, session.PlanID.String()); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *planService) GetSession(ctx context.Context, sessionID string) (*PlanSession, error) {
	return s.getOwnedSession(ctx, sessionID)
}

func (s *planService) ListSessionQuestions(ctx context.Context, sessionID string) ([]*QbankQuestion, error) {
	log := config.WithContext(ctx)

	session, err := s.getOwnedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListQbankBySession(session.ID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar questões da sessão")
		return nil, err
	}
	return entries, nil
}

func (s *planService) AnswerQuestion(ctx context.Context, sessionID string, dto AnswerQuestionDTO) (*AnswerResultDTO, error) {
	log := config.WithContext(ctx)

	session, err := s.getOwnedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	questionID, err := uuid.Parse(dto.QuestionID)
	if err != nil {
		return nil, ErrInvalidID
	}

	var result *AnswerResultDTO
	err = s.db.Transaction(func(tx *gorm.DB) error {
		entry, err := s.repo.FindQbankEntryForUpdate(tx, session.ID, questionID)
		if err != nil {
			return err
		}
		if entry == nil {
			return ErrQuestionNotInSession
		}

		// Só a primeira resposta conta nos agregados da sessão; respostas
		// repetidas devolvem o resultado já registrado.
		if entry.Answered {
			result = &AnswerResultDTO{
				QuestionID:    entry.QuestionID.String(),
				Correct:       entry.Correct != nil && *entry.Correct,
				CorrectOption: entry.CorrectOption,
				AlreadySolved: true,
			}
			return nil
		}

		locked, err := s.repo.FindSessionForUpdate(tx, session.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return ErrSessionNotFound
		}

		correct := dto.Option == entry.CorrectOption
		now := time.Now()
		entry.Answered = true
		entry.AnsweredOption = &dto.Option
		entry.Correct = &correct
		entry.AnsweredAt = &now
		if err := s.repo.SaveQbankEntry(tx, entry); err != nil {
			return err
		}

		locked.QuestionsAttempted++
		if correct {
			locked.QuestionsCorrect++
		}
		if locked.Status == SessionStatusPending {
			locked.Status = SessionStatusInProgress
		}
		if err := s.repo.SaveSession(tx, locked); err != nil {
			return err
		}

		result = &AnswerResultDTO{
			QuestionID:    entry.QuestionID.String(),
			Correct:       correct,
			CorrectOption: entry.CorrectOption,
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrQuestionNotInSession) {
			log.WithError(err).Error("Erro ao registrar resposta da sessão")
		}
		return nil, err
	}
	return result, nil
}

func (s *planService) UpdateSession(ctx context.Context, sessionID string, dto UpdateSessionDTO) (*PlanSession, error) {
	log := config.WithContext(ctx)

	session, err := s.getOwnedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var updated *PlanSession
	err = s.db.Transaction(func(tx *gorm.DB) error {
		locked, err := s.repo.FindSessionForUpdate(tx, session.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return ErrSessionNotFound
		}

		// Agregados só crescem; deltas negativos já barrados no DTO.
		if dto.TimeSpentDelta != nil {
			locked.TimeSpentMinutes += *dto.TimeSpentDelta
		}
		if dto.FlashcardsStudiedDelta != nil {
			locked.FlashcardsStudied += *dto.FlashcardsStudiedDelta
		}
		if dto.FlashcardsCorrectDelta != nil {
			locked.FlashcardsCorrect += *dto.FlashcardsCorrectDelta
		}
		if dto.Status != nil {
			if !dto.Status.IsValid() {
				return ErrInvalidStatus
			}
			if dto.Status.rank() < locked.Status.rank() {
				return ErrInvalidTransition
			}
			locked.Status = *dto.Status
		}

		if err := s.repo.SaveSession(tx, locked); err != nil {
			return err
		}
		updated = locked
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidStatus) && !errors.Is(err, ErrInvalidTransition) {
			log.WithError(err).Error("Erro ao atualizar sessão")
		}
		return nil, err
	}
	return updated, nil
}

// flashcardTotal soma os cartões dos decks no escopo de flashcards do plano.
func (s *planService) flashcardTotal(plan *StudyPlan) (int, error) {
	for i := range plan.Contents {
		if plan.Contents[i].ContentType == ContentTypeFlashcards {
			return s.repo.CountFlashcardsInDecks(plan.Contents[i].DeckIDs)
		}
	}
	return 0, nil
}

func (s *planService) PlanProgress(ctx context.Context, planID string) (*PlanProgress, error) {
	log := config.WithContext(ctx)

	plan, err := s.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.ListSessionsByPlan(plan.ID, nil, nil)
	if err != nil {
		log.WithError(err).Error("Erro ao consultar sessões para o progresso do plano")
		return nil, err
	}
	qbankTotal, err := s.repo.CountQbankByPlan(plan.ID)
	if err != nil {
		return nil, err
	}
	cardTotal, err := s.flashcardTotal(plan)
	if err != nil {
		return nil, err
	}

	progress := planProgress(plan, sessions, qbankTotal, cardTotal)
	return &progress, nil
}

func (s *planService) SessionProgress(ctx context.Context, sessionID string) (*SessionProgress, error) {
	log := config.WithContext(ctx)

	session, err := s.getOwnedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	qbankTotal, err := s.repo.CountQbankBySession(session.ID)
	if err != nil {
		log.WithError(err).Error("Erro ao consultar snapshot para o progresso da sessão")
		return nil, err
	}

	plan, err := s.GetPlanByID(ctx, session.PlanID.String())
	if err != nil {
		return nil, err
	}
	cardTotal := 0
	if session.ContentType == ContentTypeFlashcards {
		if cardTotal, err = s.flashcardTotal(plan); err != nil {
			return nil, err
		}
	}

	progress := sessionProgress(session, qbankTotal, cardTotal)
	return &progress, nil
}
