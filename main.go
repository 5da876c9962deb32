package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/estudai/estudai-api/internal/container"
	"github.com/estudai/estudai-api/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func lambdaHandler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	_ = godotenv.Load()

	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		ModuleHandler:    c.ModuleContainer.Handler,
		SubjectHandler:   c.SubjectContainer.Handler,
		TopicHandler:     c.TopicContainer.Handler,
		QuestionHandler:  c.QuestionContainer.Handler,
		FlashcardHandler: c.FlashcardContainer.Handler,
		ExamHandler:      c.ExamContainer.Handler,
		LibraryHandler:   c.LibraryContainer.Handler,
		StudyPlanHandler: c.StudyPlanContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.New(r)
		lambda.Start(lambdaHandler)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.WithField("port", port).Info("Servidor HTTP iniciado")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.WithError(err).Fatal("Servidor HTTP encerrado com erro")
	}
}
