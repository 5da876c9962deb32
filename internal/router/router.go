package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/estudai/estudai-api/internal/auth"
	"github.com/estudai/estudai-api/internal/exam"
	"github.com/estudai/estudai-api/internal/flashcard"
	"github.com/estudai/estudai-api/internal/library"
	"github.com/estudai/estudai-api/internal/middlewares"
	"github.com/estudai/estudai-api/internal/module"
	"github.com/estudai/estudai-api/internal/question"
	"github.com/estudai/estudai-api/internal/studyplan"
	"github.com/estudai/estudai-api/internal/subject"
	"github.com/estudai/estudai-api/internal/topic"
	"github.com/estudai/estudai-api/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	ModuleHandler    *module.Handler
	SubjectHandler   *subject.Handler
	TopicHandler     *topic.Handler
	QuestionHandler  *question.Handler
	FlashcardHandler *flashcard.Handler
	ExamHandler      *exam.Handler
	LibraryHandler   *library.Handler
	StudyPlanHandler *studyplan.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/google", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/modules", module.Routes(cfg.ModuleHandler))
		r.Mount("/subjects", subject.Routes(cfg.SubjectHandler))
		r.Mount("/topics", topic.Routes(cfg.TopicHandler))
		r.Mount("/questions", question.Routes(cfg.QuestionHandler))
		r.Mount("/decks", flashcard.Routes(cfg.FlashcardHandler))
		r.Mount("/exams", exam.Routes(cfg.ExamHandler))
		r.Mount("/library", library.Routes(cfg.LibraryHandler))
		r.Mount("/study-plans", studyplan.Routes(cfg.StudyPlanHandler))

		r.Get("/modules/{moduleId}/subjects", cfg.SubjectHandler.ListByModule)
		r.Get("/subjects/{subjectId}/topics", cfg.TopicHandler.ListBySubject)
		r.Get("/topics/{topicId}/questions", cfg.QuestionHandler.ListByTopic)
	})
	return r
}
