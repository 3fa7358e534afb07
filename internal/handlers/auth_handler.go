package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/TallerServices01/maintenance-tracker/internal/middleware"
	"github.com/TallerServices01/maintenance-tracker/internal/models"
	"github.com/TallerServices01/maintenance-tracker/internal/session"
	"github.com/TallerServices01/maintenance-tracker/internal/validators"
)

// One message for both unknown user and wrong password, so the form does not
// leak which usernames exist.
const msgInvalidCredentials = "Credenciales incorrectas"

const (
	msgMissingCredentials = "Usuario y contraseña son obligatorios"
	msgUserExists         = "El usuario ya existe"
	msgInvalidEmail       = "El correo indicado no parece válido"
)

type AuthHandler struct {
	db    *gorm.DB
	mgr   *session.Manager
	store session.Store
}

func NewAuthHandler(db *gorm.DB, mgr *session.Manager, store session.Store) *AuthHandler {
	return &AuthHandler{db: db, mgr: mgr, store: store}
}

// --------- Login ---------

func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, h.store, "login", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("usuario"))
	password := c.PostForm("clave")

	if username == "" || password == "" {
		c.HTML(http.StatusOK, "login", gin.H{"Notice": msgMissingCredentials})
		return
	}

	var user models.User
	if err := h.db.Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.HTML(http.StatusOK, "login", gin.H{"Notice": msgInvalidCredentials})
			return
		}
		serverError(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		c.HTML(http.StatusOK, "login", gin.H{"Notice": msgInvalidCredentials})
		return
	}

	sid := session.NewID()
	sess := session.Session{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Role:        user.Role,
	}
	if err := h.store.Save(c.Request.Context(), sid, sess, h.mgr.TTL()); err != nil {
		serverError(c)
		return
	}

	token, err := h.mgr.Issue(sid)
	if err != nil {
		serverError(c)
		return
	}

	c.SetCookie(session.CookieName, token, int(h.mgr.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// --------- Logout ---------

func (h *AuthHandler) Logout(c *gin.Context) {
	if sid, ok := middleware.SessionID(c); ok {
		_ = h.store.Delete(c.Request.Context(), sid)
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

// --------- Register ---------

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	render(c, h.store, "register", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("usuario"))
	displayName := strings.TrimSpace(c.PostForm("nombre"))
	password := c.PostForm("clave")
	role := strings.TrimSpace(c.PostForm("rol"))

	if username == "" || password == "" {
		c.HTML(http.StatusOK, "register", gin.H{"Notice": msgMissingCredentials})
		return
	}

	if validators.IsEmail(username) && !validators.IsEmailDomainValid(username) {
		c.HTML(http.StatusOK, "register", gin.H{"Notice": msgInvalidEmail})
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		serverError(c)
		return
	}
	if count > 0 {
		c.HTML(http.StatusOK, "register", gin.H{"Notice": msgUserExists})
		return
	}

	// "admin" is only granted via the bootstrap seed, never via the form.
	if role != "technician" && role != "user" {
		role = "technician"
	}

	if displayName == "" {
		displayName = username
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		serverError(c)
		return
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hashed),
		DisplayName:  displayName,
		Role:         role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		serverError(c)
		return
	}

	c.Redirect(http.StatusFound, "/login")
}
