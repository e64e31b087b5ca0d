package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"user-directory-api/internal/config"
	applambda "user-directory-api/pkg/lambda"
	"user-directory-api/pkg/server"
)

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := server.GetConnectionManager().Initialize(context.Background(), cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := server.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Container unavailable")
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	req := applambda.FromAPIGatewayRequest(event)
	resp := container.Router.Dispatch(ctx, req)

	return resp.ToAPIGatewayResponse(), nil
}

func main() {
	awslambda.Start(handler)
}
