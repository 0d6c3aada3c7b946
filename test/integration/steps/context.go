// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/usecase/auth"
	"github.com/habit-tracker/backend/internal/application/usecase/category"
	"github.com/habit-tracker/backend/internal/application/usecase/check"
	"github.com/habit-tracker/backend/internal/application/usecase/goal"
	"github.com/habit-tracker/backend/internal/application/usecase/stats"
	"github.com/habit-tracker/backend/internal/application/usecase/user"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	"github.com/habit-tracker/backend/internal/integration/cache"
	"github.com/habit-tracker/backend/internal/integration/email"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/persistence"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
	"github.com/habit-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

const dateLayout = "2006-01-02"

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken  string
	refreshToken string

	currentUserID     uuid.UUID
	currentCategoryID uuid.UUID
	currentGoalID     uuid.UUID
	currentCheckID    uuid.UUID
	goalIDsByName     map[string]uuid.UUID
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("habit_tracker", map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"categories":     &model.CategoryModel{},
			"goals":          &model.GoalModel{},
			"checks":         &model.CheckModel{},
			"streak_records": &model.StreakRecordModel{},
			"email_queue":    &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)

	// Category setup steps
	ctx.Given(`^a category exists with name "([^"]*)" and color "([^"]*)"$`, test.aCategoryExistsWithNameAndColor)

	// Goal setup steps
	ctx.Given(`^a goal exists with name "([^"]*)"$`, test.aGoalExistsWithName)
	ctx.Given(`^a goal exists with name "([^"]*)" worth (\d+) points$`, test.aGoalExistsWithNameWorthPoints)
	ctx.Given(`^a goal exists with name "([^"]*)" in category "([^"]*)"$`, test.aGoalExistsWithNameInCategory)
	ctx.Given(`^an inactive goal exists with name "([^"]*)"$`, test.anInactiveGoalExistsWithName)

	// Check setup steps
	ctx.Given(`^the goal "([^"]*)" is checked on "([^"]*)"$`, test.theGoalIsCheckedOn)
	ctx.Given(`^the goal "([^"]*)" has been checked every day for the last (\d+) days$`, test.theGoalHasBeenCheckedForTheLastDays)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.currentGoalID = uuid.Nil
	t.currentCheckID = uuid.Nil
	t.goalIDsByName = make(map[string]uuid.UUID)

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			goalRepo := persistence.NewGoalRepository(testDB.DbConn)
			checkRepo := persistence.NewCheckRepository(testDB.DbConn)
			streakRepo := persistence.NewStreakRecordRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			clock := adapters.NewSystemClock()
			scoresCache := cache.NewScoresCache(mock.NewRedis())
			emailService := email.NewService(emailQueueRepo)

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			// Create user use cases
			getCurrentUserUseCase := user.NewGetCurrentUserUseCase(userRepo)
			updatePrefsUseCase := user.NewUpdatePreferencesUseCase(userRepo)

			// Create category use cases
			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
			getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, goalRepo)

			// Create goal use cases
			listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
			createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, categoryRepo)
			getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
			updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, categoryRepo)
			deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, scoresCache)
			reorderGoalsUseCase := goal.NewReorderGoalsUseCase(goalRepo)

			// Create check use cases
			toggleCheckUseCase := check.NewToggleCheckUseCase(checkRepo, goalRepo, scoresCache)
			weekChecksUseCase := check.NewGetWeekChecksUseCase(checkRepo, goalRepo, clock)
			dateChecksUseCase := check.NewGetDateChecksUseCase(checkRepo, goalRepo)
			deleteCheckUseCase := check.NewDeleteCheckUseCase(checkRepo, scoresCache)

			// Create stats use cases
			dashboardStatsUseCase := stats.NewGetDashboardStatsUseCase(
				goalRepo, checkRepo, streakRepo, userRepo, emailService, clock, stats.DefaultStreakLookbackDays,
			)
			streaksUseCase := stats.NewGetStreaksUseCase(goalRepo, checkRepo, streakRepo, clock)
			scoresUseCase := stats.NewGetScoresUseCase(goalRepo, checkRepo, scoresCache)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
			)

			userController := controller.NewUserController(
				getCurrentUserUseCase,
				updatePrefsUseCase,
			)

			categoryController := controller.NewCategoryController(
				listCategoriesUseCase,
				createCategoryUseCase,
				getCategoryUseCase,
				updateCategoryUseCase,
				deleteCategoryUseCase,
			)

			goalController := controller.NewGoalController(
				listGoalsUseCase,
				createGoalUseCase,
				getGoalUseCase,
				updateGoalUseCase,
				deleteGoalUseCase,
				reorderGoalsUseCase,
			)

			checkController := controller.NewCheckController(
				toggleCheckUseCase,
				weekChecksUseCase,
				dateChecksUseCase,
				deleteCheckUseCase,
			)

			statsController := controller.NewStatsController(
				dashboardStatsUseCase,
				streaksUseCase,
				scoresUseCase,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				userController,
				categoryController,
				goalController,
				checkController,
				statsController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	userModel := &model.UserModel{
		ID:                 userID,
		Email:              email,
		Name:               name,
		PasswordHash:       hashPassword(password),
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	return t.db.DbConn.Create(userModel).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs ensures the user exists and issues a fresh token pair for them.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := t.createUser(email, "SecurePass123!", "Test User "+email); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
			return err
		}
	}

	t.currentUserID = userModel.ID
	return t.issueTokens(userModel.Email)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokens("test@example.com")
}

func (t *testContext) issueTokens(email string) error {
	now := time.Now().UTC()

	accessToken, err := signToken(t.currentUserID, email, "access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessToken

	refreshToken, err := signToken(t.currentUserID, email, "refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshToken

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func signToken(userID uuid.UUID, email, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "habit-tracker",
		"sub":        userID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) aCategoryExistsWithNameAndColor(name, color string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	var maxOrder int
	row := t.db.DbConn.Model(&model.CategoryModel{}).
		Where("user_id = ?", t.currentUserID).
		Select("COALESCE(MAX(display_order), -1)").
		Row()
	if err := row.Scan(&maxOrder); err != nil {
		return err
	}

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:           categoryID,
		UserID:       t.currentUserID,
		Name:         name,
		Color:        color,
		DisplayOrder: maxOrder + 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) aGoalExistsWithName(name string) error {
	return t.createGoal(name, 1, true, nil)
}

func (t *testContext) aGoalExistsWithNameWorthPoints(name string, points int) error {
	return t.createGoal(name, points, true, nil)
}

func (t *testContext) aGoalExistsWithNameInCategory(name, categoryName string) error {
	var categoryModel model.CategoryModel
	if err := t.db.DbConn.
		Where("name = ? AND user_id = ?", categoryName, t.currentUserID).
		First(&categoryModel).Error; err != nil {
		return fmt.Errorf("category '%s' not found: %w", categoryName, err)
	}
	categoryID := categoryModel.ID
	return t.createGoal(name, 1, true, &categoryID)
}

func (t *testContext) anInactiveGoalExistsWithName(name string) error {
	return t.createGoal(name, 1, false, nil)
}

func (t *testContext) createGoal(name string, points int, active bool, categoryID *uuid.UUID) error {
	goalID := uuid.New()
	t.currentGoalID = goalID
	t.goalIDsByName[name] = goalID

	var maxOrder int
	row := t.db.DbConn.Model(&model.GoalModel{}).
		Where("user_id = ?", t.currentUserID).
		Select("COALESCE(MAX(display_order), -1)").
		Row()
	if err := row.Scan(&maxOrder); err != nil {
		return err
	}

	now := time.Now().UTC()
	goalModel := &model.GoalModel{
		ID:           goalID,
		UserID:       t.currentUserID,
		Name:         name,
		Icon:         "check-circle",
		Positive:     true,
		Points:       points,
		DisplayOrder: maxOrder + 1,
		Active:       active,
		CategoryID:   categoryID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(goalModel).Error
}

func (t *testContext) theGoalIsCheckedOn(goalName, date string) error {
	goalID, ok := t.goalIDsByName[goalName]
	if !ok {
		return fmt.Errorf("goal '%s' was not created in this scenario", goalName)
	}

	day, err := time.Parse(dateLayout, t.replacePlaceholders(date))
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	return t.createCheck(goalID, day)
}

func (t *testContext) theGoalHasBeenCheckedForTheLastDays(goalName string, days int) error {
	goalID, ok := t.goalIDsByName[goalName]
	if !ok {
		return fmt.Errorf("goal '%s' was not created in this scenario", goalName)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < days; i++ {
		if err := t.createCheck(goalID, today.AddDate(0, 0, -i)); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) createCheck(goalID uuid.UUID, date time.Time) error {
	checkID := uuid.New()
	t.currentCheckID = checkID

	now := time.Now().UTC()
	checkModel := &model.CheckModel{
		ID:        checkID,
		UserID:    t.currentUserID,
		GoalID:    goalID,
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Completed: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(checkModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

var namedGoalPlaceholder = regexp.MustCompile(`\{\{goal_id:([^}]+)\}\}`)

func (t *testContext) replacePlaceholders(content string) string {
	today := time.Now().UTC()
	content = namedGoalPlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		name := namedGoalPlaceholder.FindStringSubmatch(match)[1]
		return t.goalIDsByName[name].String()
	})
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	content = strings.ReplaceAll(content, "{{check_id}}", t.currentCheckID.String())
	content = strings.ReplaceAll(content, "{{today}}", today.Format(dateLayout))
	content = strings.ReplaceAll(content, "{{yesterday}}", today.AddDate(0, 0, -1).Format(dateLayout))
	content = strings.ReplaceAll(content, "{{week_ago}}", today.AddDate(0, 0, -6).Format(dateLayout))
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIdentifiers(responseBody)

	return nil
}

// captureIdentifiers keeps the most recent entity IDs so later steps can
// reference {{goal_id}}, {{category_id}} and {{check_id}} placeholders.
func (t *testContext) captureIdentifiers(body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case hasKey(body, "goalId"):
		t.currentCheckID = id
	case hasKey(body, "color"):
		t.currentCategoryID = id
	case hasKey(body, "positive"):
		t.currentGoalID = id
		if name, ok := body["name"].(string); ok {
			t.goalIDsByName[name] = id
		}
	}
}

func hasKey(body map[string]any, key string) bool {
	_, ok := body[key]
	return ok
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
