package handlers_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/TallerServices01/maintenance-tracker/internal/models"
	"github.com/TallerServices01/maintenance-tracker/internal/routes"
	"github.com/TallerServices01/maintenance-tracker/internal/session"
	"github.com/TallerServices01/maintenance-tracker/internal/storage"
)

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	store  *session.MemoryStore
	mgr    *session.Manager
}

// Minimal templates with the same names the real pages use, shaped for easy
// assertions on listing order and flash content.
const testTemplateSrc = `
{{define "login"}}login:{{.Notice}}{{end}}
{{define "register"}}register:{{.Notice}}{{end}}
{{define "index"}}{{range .Flashes}}<flash>{{.}}</flash>{{end}}{{range .Orders}}<order id="{{.ID}}" status="{{.Status}}">{{.EquipmentName}}</order>{{end}}counts:{{.Counts.Pending}}/{{.Counts.InProgress}}/{{.Counts.Finished}}{{end}}
{{define "equipos"}}{{range .Flashes}}<flash>{{.}}</flash>{{end}}{{range .Equipment}}<equip id="{{.ID}}" orders="{{.OrderCount}}">{{.Name}}</equip>{{end}}{{end}}
{{define "equipo"}}detail:{{.Equipment.Name}} orders:{{len .Orders}} photo:{{.PhotoURL}}{{end}}
`

func setupApp(t *testing.T, uploader storage.Uploader) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Equipment{}, &models.Order{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	store := session.NewMemoryStore()
	mgr := session.NewManager("test-secret", time.Hour)

	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New("t").Parse(testTemplateSrc)))
	routes.RegisterRoutes(router, db, mgr, store, uploader)

	return &testApp{router: router, db: db, store: store, mgr: mgr}
}

func (a *testApp) createUser(t *testing.T, username, password, role string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		PasswordHash: string(hashed),
		DisplayName:  username,
		Role:         role,
	}
	require.NoError(t, a.db.Create(&user).Error)
	return user
}

func (a *testApp) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	form := url.Values{"usuario": {username}, "clave": {password}}
	w := a.postForm("/login", form, nil)
	require.Equal(t, http.StatusFound, w.Code, "login should redirect, body: %s", w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie issued on login")
	return nil
}

func (a *testApp) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}
