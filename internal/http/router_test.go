package http_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shopgate/backend/internal/handler"
	shttp "shopgate/backend/internal/http"
	"shopgate/backend/internal/service/mock"
)

func TestNewRouter_RegistersRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admissionService := mock.NewMockAdmissionService(ctrl)
	rateLimitService := mock.NewMockRateLimitService(ctrl)
	deviceGuardService := mock.NewMockDeviceGuardService(ctrl)
	busyModeService := mock.NewMockBusyModeService(ctrl)
	blockService := mock.NewMockBlockService(ctrl)
	incidentService := mock.NewMockIncidentService(ctrl)
	authService := mock.NewMockAuthService(ctrl)

	admissionHandler := handler.NewAdmissionHandler(admissionService, rateLimitService, deviceGuardService, busyModeService)
	blockHandler := handler.NewBlockHandler(blockService)
	incidentHandler := handler.NewIncidentHandler(incidentService)
	busyModeHandler := handler.NewBusyModeHandler(busyModeService)
	authHandler := handler.NewAuthHandler(authService)

	e := shttp.NewRouter(
		admissionHandler,
		blockHandler,
		incidentHandler,
		busyModeHandler,
		authHandler,
		authService,
	)

	require.NotNil(t, e)
	require.True(t, hasRoute(e, http.MethodPost, "/api/orders/admission"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/admission/rate-limit"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/admission/devices/:deviceId"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/admission/busy-mode/:tenantId"))
	require.True(t, hasRoute(e, http.MethodPost, "/api/auth/login"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/admin/blocks/clients"))
	require.True(t, hasRoute(e, http.MethodPost, "/api/admin/blocks/devices"))
	require.True(t, hasRoute(e, http.MethodDelete, "/api/admin/blocks/clients/:key"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/admin/incidents"))
	require.True(t, hasRoute(e, http.MethodPut, "/api/admin/tenants/:id/busy-mode"))
	require.True(t, hasRoute(e, http.MethodPut, "/api/admin/tenants/:id/admission-config"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/admin/stats"))
}

func hasRoute(e *echo.Echo, method, path string) bool {
	for _, r := range e.Routes() {
		if r.Method == method && r.Path == path {
			return true
		}
	}
	return false
}
