package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/shenikar/emergency_dispatch_system/internal/service/mocks"
	"github.com/shenikar/emergency_dispatch_system/internal/upload"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockHelpRequestService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockHelpRequestService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:   []string{"test-api-key"},
		UploadDir: t.TempDir(),
	}

	uploads, err := upload.NewDiskStorage(cfg.UploadDir)
	require.NoError(t, err)

	handler := NewHandler(mockService, logger, cfg, uploads, nil)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// makeMultipartBody собирает multipart-форму подачи заявки
func makeMultipartBody(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func validCreateFields() map[string]string {
	return map[string]string{
		"longitude":     "37.61",
		"latitude":      "55.75",
		"emergencyType": "Fire",
		"victimCount":   "5+",
		"medicalInfo":   "Smoke inhalation",
		"contactNumber": "+79001234567",
	}
}

func TestCreateHelpRequest_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	requestID := uuid.New()

	mockService.EXPECT().
		Report(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.HelpRequest) error {
			assert.Equal(t, "Fire", r.EmergencyType)
			assert.Equal(t, "5+", r.VictimCount)
			assert.Equal(t, "+79001234567", r.ContactNumber)
			// Симулируем работу сервиса
			r.ID = requestID
			r.Status = models.StatusPending
			r.CreatedAt = time.Now()
			r.UpdatedAt = r.CreatedAt
			return nil
		}).Times(1)

	body, contentType := makeMultipartBody(t, validCreateFields(), "")
	w := makeRequest(router, "POST", "/api/v1/requests", body, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp HelpRequestResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, requestID, resp.ID)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, "warning", resp.Variant)
	assert.Equal(t, "In Progress", resp.NextStatus)
	assert.Equal(t, "Accept", resp.NextAction)
}

func TestCreateHelpRequest_WithImage(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Report(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.HelpRequest) error {
			// Файл сохранён до вызова сервиса, путь уже в модели
			assert.Contains(t, r.Image, "/uploads/image-")
			assert.Contains(t, r.Image, ".jpg")
			return nil
		}).Times(1)

	body, contentType := makeMultipartBody(t, validCreateFields(), "scene.jpg")
	w := makeRequest(router, "POST", "/api/v1/requests", body, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateHelpRequest_MissingRequiredField(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Report(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	fields := validCreateFields()
	delete(fields, "emergencyType")
	body, contentType := makeMultipartBody(t, fields, "")
	w := makeRequest(router, "POST", "/api/v1/requests", body, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'EmergencyType' failed on the 'required' tag")
}

func TestCreateHelpRequest_InvalidContactNumber(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Report(gomock.Any(), gomock.Any()).Times(0)

	fields := validCreateFields()
	fields["contactNumber"] = "not-a-phone"
	body, contentType := makeMultipartBody(t, fields, "")
	w := makeRequest(router, "POST", "/api/v1/requests", body, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'ContactNumber' failed on the 'e164' tag")
}

func TestCreateHelpRequest_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("failed to report help request in service")

	mockService.EXPECT().Report(gomock.Any(), gomock.Any()).Return(serviceError).Times(1)

	body, contentType := makeMultipartBody(t, validCreateFields(), "")
	w := makeRequest(router, "POST", "/api/v1/requests", body, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListHelpRequests_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedRequests := []*models.HelpRequest{
		{ID: uuid.New(), EmergencyType: "Fire", Status: models.StatusPending},
		{ID: uuid.New(), EmergencyType: "Flood", Status: models.StatusResolved},
	}

	mockService.EXPECT().ListHelpRequests(gomock.Any(), service.ViewAll).Return(expectedRequests, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/requests", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []HelpRequestResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, expectedRequests[0].EmergencyType, resp[0].EmergencyType)
	// У завершённой заявки нет следующего перехода
	assert.Empty(t, resp[1].NextStatus)
	assert.Equal(t, "success", resp[1].Variant)
}

func TestListHelpRequests_HistoryView(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListHelpRequests(gomock.Any(), service.ViewHistory).Return([]*models.HelpRequest{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/requests?view=history", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListHelpRequests_InvalidView(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListHelpRequests(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/requests?view=archived", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid view value")
}

func TestListHelpRequests_Unauthorized(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListHelpRequests(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/requests", nil) // Нет API ключа

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestGetHelpRequest_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	requestID := uuid.New()
	expectedRequest := &models.HelpRequest{
		ID:            requestID,
		EmergencyType: "Earthquake",
		Status:        models.StatusInProgress,
	}

	mockService.EXPECT().GetHelpRequest(gomock.Any(), requestID).Return(expectedRequest, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/requests/%s", requestID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HelpRequestResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, requestID, resp.ID)
	assert.Equal(t, "On Scene", resp.NextStatus)
	assert.Equal(t, "Arrived on Scene", resp.NextAction)
}

func TestGetHelpRequest_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetHelpRequest(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/requests/invalid-uuid", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid help request ID")
}

func TestGetHelpRequest_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	requestID := uuid.New()

	mockService.EXPECT().GetHelpRequest(gomock.Any(), requestID).Return(nil, service.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/requests/%s", requestID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "help request not found")
}

func TestUpdateStatus_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	requestID := uuid.New()
	updated := &models.HelpRequest{
		ID:     requestID,
		Status: models.StatusInProgress,
	}

	mockService.EXPECT().UpdateStatus(gomock.Any(), requestID, "In Progress").Return(updated, nil).Times(1)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{Status: "In Progress"})
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/requests/%s", requestID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HelpRequestResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "In Progress", resp.Status)
	assert.Equal(t, "info", resp.Variant)
}

func TestUpdateStatus_EmptyStatus(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	requestID := uuid.New()
	existing := &models.HelpRequest{ID: requestID, Status: models.StatusPending}

	// Пустой статус проходит до сервиса, тот оставляет текущий
	mockService.EXPECT().UpdateStatus(gomock.Any(), requestID, "").Return(existing, nil).Times(1)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{Status: ""})
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/requests/%s", requestID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateStatus_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{Status: "In Progress"})
	w := makeRequest(router, "PUT", "/api/v1/requests/invalid-uuid", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid help request ID")
}

func TestUpdateStatus_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	requestID := uuid.New()

	mockService.EXPECT().
		UpdateStatus(gomock.Any(), requestID, "In Progress").
		Return(nil, fmt.Errorf("service: %w", service.ErrNotFound)).
		Times(1)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{Status: "In Progress"})
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/requests/%s", requestID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "help request not found")
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	requestID := uuid.New()

	mockService.EXPECT().
		UpdateStatus(gomock.Any(), requestID, "Escalated").
		Return(nil, fmt.Errorf("service: %w: %q", service.ErrInvalidStatus, "Escalated")).
		Times(1)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{Status: "Escalated"})
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/requests/%s", requestID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid status value")
}

func TestUpdateStatus_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	requestID := uuid.New()

	mockService.EXPECT().
		UpdateStatus(gomock.Any(), requestID, "In Progress").
		Return(nil, errors.New("database error")).
		Times(1)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{Status: "In Progress"})
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/requests/%s", requestID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestFindNearby_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedRequests := []*models.HelpRequest{
		{ID: uuid.New(), EmergencyType: "Fire", Status: models.StatusPending},
	}

	mockService.EXPECT().FindNearby(gomock.Any(), 55.75, 37.61, 5000).Return(expectedRequests, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/requests/nearby?latitude=55.75&longitude=37.61&radius_meters=5000", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []HelpRequestResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestFindNearby_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Радиус за пределами допустимого
	w := makeRequest(router, "GET", "/api/v1/requests/nearby?latitude=55.75&longitude=37.61&radius_meters=100000", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'RadiusMeters' failed on the 'lte' tag")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_QueryParam(t *testing.T) {
	// Браузерный WebSocket не умеет ставить заголовки, ключ приходит в query
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test?api_key=valid-key", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
