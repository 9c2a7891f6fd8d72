package Controllers

import (
	"strings"

	"LogiTrack/Models"
	"LogiTrack/Store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	Data *Store.Data
}

func NewUserHandler(data *Store.Data) *UserHandler {
	return &UserHandler{Data: data}
}

func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.Data.Users.FetchAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// CreateUser registers an account. Duplicate usernames are rejected before
// any write happens.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var input struct {
		Username           string          `json:"username" validate:"required"`
		Password           string          `json:"password" validate:"required"`
		Role               Models.UserRole `json:"role" validate:"required,oneof=ADMIN OPERATIONAL CLIENT"`
		ClientID           string          `json:"clientId"`
		Name               string          `json:"name" validate:"required"`
		MustChangePassword bool            `json:"mustChangePassword"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(input); err != nil {
		return validationError(c, err)
	}

	taken, err := h.usernameTaken(c, input.Username, "")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}
	if taken {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "A user with this username already exists",
		})
	}

	user := Models.User{
		ID:                 uuid.NewString(),
		Username:           input.Username,
		Role:               input.Role,
		ClientID:           input.ClientID,
		Name:               input.Name,
		MustChangePassword: input.MustChangePassword,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	saveErr := h.Data.Users.Add(c.Context(), user)
	user.Password = ""
	return respondSaved(c, fiber.StatusCreated, fiber.Map{"user": user}, saveErr)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var input Models.User
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	existing, found, err := h.Data.Users.FetchOne(c.Context(), input.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if !strings.EqualFold(existing.Username, input.Username) {
		taken, err := h.usernameTaken(c, input.Username, input.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch users",
			})
		}
		if taken {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A user with this username already exists",
			})
		}
	}

	// An empty password on update means keep the stored hash.
	if input.Password == "" {
		input.Password = existing.Password
	} else if err := input.SetPassword(input.Password); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	saveErr := h.Data.Users.Update(c.Context(), input)
	input.Password = ""
	return respondSaved(c, fiber.StatusOK, fiber.Map{"user": input}, saveErr)
}

// DeleteUser removes an account. The seeded admin is protected so the
// system always keeps at least one working ADMIN login.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	user, found, err := h.Data.Users.FetchOne(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}
	if found && strings.EqualFold(user.Username, Models.DefaultAdminUsername) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "The default admin account cannot be deleted",
		})
	}

	saveErr := h.Data.Users.Delete(c.Context(), id)
	return respondSaved(c, fiber.StatusOK, fiber.Map{
		"message": "User deleted",
	}, saveErr)
}

func (h *UserHandler) usernameTaken(c *fiber.Ctx, username, excludeID string) (bool, error) {
	users, err := h.Data.Users.FetchAll(c.Context())
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.ID != excludeID && strings.EqualFold(u.Username, username) {
			return true, nil
		}
	}
	return false, nil
}
