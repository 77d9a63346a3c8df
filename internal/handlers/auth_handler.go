package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"talentbridge/jobboard/internal/models"
	"talentbridge/jobboard/internal/repositories"
)

const sessionUserKey = "user_id"

type AuthHandler struct {
	userRepo repositories.UserRepository
	store    *session.Store
}

func NewAuthHandler(userRepo repositories.UserRepository, lifetime time.Duration) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		store: session.New(session.Config{
			Expiration: lifetime,
		}),
	}
}

// RequireAuth blocks requests without a logged-in session and stashes the
// user ID in locals.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	userID, ok := h.currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "login required",
		})
	}

	c.Locals(sessionUserKey, userID)
	return c.Next()
}

// RequireAdmin builds on RequireAuth and additionally checks the admin flag.
func (h *AuthHandler) RequireAdmin(c *fiber.Ctx) error {
	userID, ok := h.currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "login required",
		})
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil || !user.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "admin access required",
		})
	}

	c.Locals(sessionUserKey, userID)
	return c.Next()
}

func (h *AuthHandler) currentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	sess, err := h.store.Get(c)
	if err != nil {
		return uuid.Nil, false
	}

	raw, ok := sess.Get(sessionUserKey).(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// CurrentUserID reads the user ID set by RequireAuth/RequireAdmin.
func CurrentUserID(c *fiber.Ctx) uuid.UUID {
	return c.Locals(sessionUserKey).(uuid.UUID)
}

// OptionalUserID reports the logged-in user on routes that work either way.
func (h *AuthHandler) OptionalUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	return h.currentUserID(c)
}

func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email, password and full_name are required",
		})
	}
	if len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "password must be at least 8 characters",
		})
	}

	if _, err := h.userRepo.FindByEmail(req.Email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "email already registered",
		})
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Location: req.Location,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	if err := h.userRepo.Create(&user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful. Please log in.",
		"user":    user,
	})
}

func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := h.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil || !user.CheckPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid email or password",
		})
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to open session")
	}
	sess.Set(sessionUserKey, user.ID.String())
	if err := sess.Save(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save session")
	}

	// Login still succeeds when the timestamp update fails.
	if err := h.userRepo.TouchLastLogin(user.ID); err != nil {
		log.Printf("⚠️  Failed to update last login for %s: %v\n", user.ID, err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}

	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	user, err := h.userRepo.FindByID(CurrentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "user not found",
		})
	}

	return c.JSON(user)
}

func (h *AuthHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := h.userRepo.FindByID(CurrentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "user not found",
		})
	}

	user.FullName = req.FullName
	user.Phone = req.Phone
	user.Location = req.Location
	user.Bio = req.Bio

	if err := h.userRepo.Update(user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update profile")
	}

	return c.JSON(user)
}

func (h *AuthHandler) HandleChangePassword(c *fiber.Ctx) error {
	var req models.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := h.userRepo.FindByID(CurrentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "user not found",
		})
	}

	if !user.CheckPassword(req.CurrentPassword) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "current password is incorrect",
		})
	}
	if len(req.NewPassword) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "password must be at least 8 characters",
		})
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}
	if err := h.userRepo.Update(user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update password")
	}

	return c.JSON(fiber.Map{
		"message": "Password updated",
	})
}

func (h *AuthHandler) HandleSavedJobs(c *fiber.Ctx) error {
	jobs, err := h.userRepo.SavedJobs(CurrentUserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list saved jobs")
	}

	return c.JSON(fiber.Map{
		"jobs": jobs,
	})
}
