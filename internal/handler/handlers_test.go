package handler

import (
	"testing"

	"github.com/MKhiriev/mywebclass-content/internal/logger"
	"github.com/MKhiriev/mywebclass-content/internal/mock"
	"github.com/MKhiriev/mywebclass-content/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewHandlers_CreatesBothTransports(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{
		ContentService: mock.NewMockContentService(ctrl),
		AppInfoService: mock.NewMockAppInfoService(ctrl),
	}

	h, err := NewHandlers(services, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.Lambda)
}

func TestNewHandlers_NoServices(t *testing.T) {
	tests := []struct {
		name     string
		services *service.Services
	}{
		{name: "nil services", services: nil},
		{name: "missing content service", services: &service.Services{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(tt.services, logger.Nop())

			require.ErrorIs(t, err, errNoContentService)
			assert.Nil(t, h)
		})
	}
}
