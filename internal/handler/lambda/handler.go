package lambda

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mywebclass-content/internal/handler/response"
	"github.com/MKhiriev/mywebclass-content/internal/logger"
	"github.com/MKhiriev/mywebclass-content/internal/service"
	"github.com/MKhiriev/mywebclass-content/models"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("lambda handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Handle serves the about page for one invocation. The request payload is
// not inspected.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	ctx = h.withRequestLogger(ctx, req)

	defer func() {
		if r := recover(); r != nil {
			resp = toProxyResponse(response.Fallback(ctx, fmt.Errorf("panic: %v", r)))
			err = nil
		}
	}()

	doc, lookupErr := h.services.ContentService.GetAboutPage(ctx)
	return toProxyResponse(response.Build(ctx, doc, lookupErr)), nil
}

// withRequestLogger attaches a child logger carrying the invocation's
// request id to ctx.
func (h *Handler) withRequestLogger(ctx context.Context, req events.APIGatewayProxyRequest) context.Context {
	requestID := req.RequestContext.RequestID
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		requestID = lc.AwsRequestID
	}

	l := h.logger.GetChildLogger()
	if requestID != "" {
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
	}

	return l.WithContext(ctx)
}

func toProxyResponse(resp models.Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
}
