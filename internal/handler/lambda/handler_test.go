package lambda

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/mywebclass-content/internal/adapter"
	"github.com/MKhiriev/mywebclass-content/internal/logger"
	"github.com/MKhiriev/mywebclass-content/internal/mock"
	"github.com/MKhiriev/mywebclass-content/internal/service"
	"github.com/MKhiriev/mywebclass-content/models"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// Keep-alive connections of the CMS round trips close asynchronously.
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

const wantFallbackBody = `{"title":"About MyWebClass","content":"<p>Content from Sanity CMS will appear here once configured.</p>"}`

func newTestHandler(t *testing.T, log *logger.Logger) (*Handler, *mock.MockContentService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	contentService := mock.NewMockContentService(ctrl)
	services := &service.Services{ContentService: contentService}

	if log == nil {
		log = logger.Nop()
	}
	return NewHandler(services, log), contentService
}

func mustDoc(t *testing.T, raw string) *models.ContentDocument {
	t.Helper()
	doc, err := models.NewContentDocument(json.RawMessage(raw))
	require.NoError(t, err)
	return doc
}

func TestHandle_Found(t *testing.T) {
	h, contentService := newTestHandler(t, nil)
	raw := `{"title":"About","content":"<p>Hello</p>","slug":{"_type":"slug","current":"about"}}`
	contentService.EXPECT().GetAboutPage(gomock.Any()).Return(mustDoc(t, raw), nil)

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "public, max-age=3600", resp.Headers["Cache-Control"])
	assert.Equal(t, raw, resp.Body)
}

func TestHandle_NotFound(t *testing.T) {
	h, contentService := newTestHandler(t, nil)
	contentService.EXPECT().GetAboutPage(gomock.Any()).Return(nil, service.ErrContentNotFound)

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, map[string]string{"Content-Type": "application/json"}, resp.Headers)
	assert.Equal(t, `{"error":"Content not found"}`, resp.Body)
}

func TestHandle_NeverReturnsError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "missing project id", err: errors.Join(service.ErrContentUnavailable, adapter.ErrMissingProjectID)},
		{name: "unauthorized", err: adapter.ErrUnauthorized},
		{name: "rate limited", err: adapter.ErrRateLimited},
		{name: "invalid response", err: adapter.ErrInvalidResponse},
		{name: "deadline", err: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, contentService := newTestHandler(t, nil)
			contentService.EXPECT().GetAboutPage(gomock.Any()).Return(nil, tt.err)

			resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{})

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, map[string]string{"Content-Type": "application/json"}, resp.Headers)
			assert.Equal(t, wantFallbackBody, resp.Body)
		})
	}
}

func TestHandle_PanicBecomesFallback(t *testing.T) {
	h, contentService := newTestHandler(t, nil)
	contentService.EXPECT().GetAboutPage(gomock.Any()).DoAndReturn(
		func(context.Context) (*models.ContentDocument, error) {
			panic("nil map write")
		},
	)

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, wantFallbackBody, resp.Body)
}

func TestHandle_IsIdempotent(t *testing.T) {
	h, contentService := newTestHandler(t, nil)
	raw := `{"title":"About","content":"x","slug":{"current":"about"}}`
	contentService.EXPECT().GetAboutPage(gomock.Any()).Return(mustDoc(t, raw), nil).Times(2)

	first, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	second, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{Path: "/ignored"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHandle_LogsErrorWithRequestID(t *testing.T) {
	buf := &bytes.Buffer{}
	h, contentService := newTestHandler(t, &logger.Logger{Logger: zerolog.New(buf)})
	contentService.EXPECT().GetAboutPage(gomock.Any()).Return(nil, adapter.ErrUnauthorized)

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-42"})
	_, err := h.Handle(ctx, events.APIGatewayProxyRequest{})
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	assert.Equal(t, "error fetching about content", entry["message"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Contains(t, entry["error"], "unauthorized")
}

func TestHandle_RequestIDFromProxyContext(t *testing.T) {
	buf := &bytes.Buffer{}
	h, contentService := newTestHandler(t, &logger.Logger{Logger: zerolog.New(buf)})
	contentService.EXPECT().GetAboutPage(gomock.Any()).Return(nil, errors.New("boom"))

	req := events.APIGatewayProxyRequest{
		RequestContext: events.APIGatewayProxyRequestContext{RequestID: "gw-7"},
	}
	_, err := h.Handle(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"request_id":"gw-7"`)
}
