package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"microblog/internal/models"
	"microblog/internal/service"
	"microblog/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func newUserTestApp(mockRepo *MockUserRepository) *fiber.App {
	app := fiber.New()
	s := &Server{
		userRepo:    mockRepo,
		userService: service.NewUserService(mockRepo),
	}
	app.Post("/create-user/", s.CreateUser)
	app.Get("/get-user/:id/", s.GetUser)
	app.Get("/get-users/", s.GetUsers)
	return app
}

func TestGetUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	app := newUserTestApp(mockRepo)

	tests := []struct {
		name           string
		userIDParam    string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:        "Success",
			userIDParam: "1",
			mockSetup: func() {
				mockRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1, Username: "alice"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid ID",
			userIDParam:    "abc",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Not Found",
			userIDParam: "99",
			mockSetup: func() {
				mockRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, models.NewNotFoundError("User", 99))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodGet, "/get-user/"+tt.userIDParam+"/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	app := newUserTestApp(mockRepo)

	mockRepo.On("GetByUsername", mock.Anything, "alice").Return(&models.User{ID: 1, Username: "alice"}, nil)
	mockRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)

	body := `{"username":"alice","email":"new@example.com","password":"pass123"}`
	req := httptest.NewRequest(http.MethodPost, "/create-user/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var violations map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&violations))
	assert.Equal(t, []string{validation.MsgUsernameTaken}, violations["username"])
}

func TestCreateUser_PasswordNeverSerialized(t *testing.T) {
	mockRepo := new(MockUserRepository)
	app := newUserTestApp(mockRepo)

	mockRepo.On("GetByUsername", mock.Anything, "bob").Return(nil, nil)
	mockRepo.On("GetByEmail", mock.Anything, "bob@example.com").Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	body := `{"username":"bob","email":"bob@example.com","password":"pass123","first_name":"Bob"}`
	req := httptest.NewRequest(http.MethodPost, "/create-user/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "pass123")
	assert.Contains(t, string(raw), `"username":"bob"`)
}

func TestCreateUser_MalformedBody(t *testing.T) {
	mockRepo := new(MockUserRepository)
	app := newUserTestApp(mockRepo)

	req := httptest.NewRequest(http.MethodPost, "/create-user/", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	app := newUserTestApp(mockRepo)

	mockRepo.On("List", mock.Anything).Return([]models.User{{ID: 1, Username: "alice"}, {ID: 2, Username: "bob"}}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/get-users/", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 2)
}
