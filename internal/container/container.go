package container

import (
	"context"
	"log"
	"os"

	"github.com/estudai/estudai-api/internal/auth"
	"github.com/estudai/estudai-api/internal/config"
	"github.com/estudai/estudai-api/internal/exam"
	"github.com/estudai/estudai-api/internal/flashcard"
	"github.com/estudai/estudai-api/internal/library"
	"github.com/estudai/estudai-api/internal/module"
	"github.com/estudai/estudai-api/internal/question"
	"github.com/estudai/estudai-api/internal/studyplan"
	"github.com/estudai/estudai-api/internal/subject"
	"github.com/estudai/estudai-api/internal/topic"
	"github.com/estudai/estudai-api/internal/user"
)

type Container struct {
	UserContainer      *user.UserContainer
	ModuleContainer    *module.ModuleContainer
	SubjectContainer   *subject.SubjectContainer
	TopicContainer     *topic.TopicContainer
	QuestionContainer  *question.QuestionContainer
	FlashcardContainer *flashcard.FlashcardContainer
	ExamContainer      *exam.ExamContainer
	LibraryContainer   *library.LibraryContainer
	StudyPlanContainer *studyplan.StudyPlanContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	driver := os.Getenv("DB_DRIVER")
	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), driver, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if config.AutoMigrateEnabled() {
		if err := config.DB.AutoMigrate(
			&user.User{},
			&module.Module{},
			&subject.Subject{},
			&topic.Topic{},
			&question.Question{},
			&flashcard.Deck{},
			&flashcard.Flashcard{},
			&flashcard.ReviewState{},
			&exam.Exam{},
			&library.Book{},
			&studyplan.StudyPlan{},
			&studyplan.PlanContent{},
			&studyplan.PlanSession{},
			&studyplan.QbankQuestion{},
		); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	userContainer := user.NewUserContainer(config.DB)
	moduleContainer := module.NewModuleContainer(config.DB)
	subjectContainer := subject.NewSubjectContainer(config.DB, moduleContainer.Service)
	topicContainer := topic.NewTopicContainer(config.DB, subjectContainer.Service)
	questionContainer := question.NewQuestionContainer(config.DB, topicContainer.Service)
	flashcardContainer := flashcard.NewFlashcardContainer(config.DB)
	examContainer := exam.NewExamContainer(config.DB, questionContainer.Service)
	libraryContainer := library.NewLibraryContainer(config.DB)
	studyPlanContainer := studyplan.NewStudyPlanContainer(config.DB, topicContainer.Repo, questionContainer.Repo)

	return &Container{
		UserContainer:      userContainer,
		ModuleContainer:    moduleContainer,
		SubjectContainer:   subjectContainer,
		TopicContainer:     topicContainer,
		QuestionContainer:  questionContainer,
		FlashcardContainer: flashcardContainer,
		ExamContainer:      examContainer,
		LibraryContainer:   libraryContainer,
		StudyPlanContainer: studyPlanContainer,
	}
}
