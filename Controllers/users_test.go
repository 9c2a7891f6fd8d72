package Controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"LogiTrack/Models"
	"LogiTrack/Store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserApp(t *testing.T) (*fiber.App, *Store.Data) {
	t.Helper()
	data := newTestData(t)
	require.NoError(t, data.EnsureUsers(context.Background()))
	handler := NewUserHandler(data)

	app := fiber.New()
	app.Get("/users", handler.GetUsers)
	app.Post("/users", handler.CreateUser)
	app.Put("/users", handler.UpdateUser)
	app.Delete("/users/:id", handler.DeleteUser)
	return app, data
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	app, data := newUserApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/users", fiber.Map{
		"username": "Admin", // case-insensitive clash with the seeded account
		"password": "segredo",
		"role":     "OPERATIONAL",
		"name":     "Segundo Admin",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// The rejection happens before any write.
	users, err := data.Users.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestCreateUserHashesPasswordAndBlanksResponse(t *testing.T) {
	app, data := newUserApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/users", fiber.Map{
		"username": "novo.operador",
		"password": "segredo",
		"role":     "OPERATIONAL",
		"name":     "Novo Operador",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		User Models.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.User.Password)

	stored, found, err := data.Users.FetchOne(context.Background(), body.User.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotEqual(t, "segredo", stored.Password)
	assert.True(t, stored.CheckPassword("segredo"))
}

func TestDeleteUserProtectsDefaultAdmin(t *testing.T) {
	app, data := newUserApp(t)

	users, err := data.Users.FetchAll(context.Background())
	require.NoError(t, err)

	var adminID, operationalID string
	for _, u := range users {
		switch u.Username {
		case Models.DefaultAdminUsername:
			adminID = u.ID
		case "operacional":
			operationalID = u.ID
		}
	}
	require.NotEmpty(t, adminID)
	require.NotEmpty(t, operationalID)

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/users/"+adminID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/users/"+operationalID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	users, err = data.Users.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUpdateUserKeepsStoredHashOnEmptyPassword(t *testing.T) {
	app, data := newUserApp(t)

	users, err := data.Users.FetchAll(context.Background())
	require.NoError(t, err)

	var operational Models.User
	for _, u := range users {
		if u.Username == "operacional" {
			operational = u
		}
	}
	require.NotEmpty(t, operational.ID)

	operational.Name = "Operacional Renomeado"
	operational.Password = ""
	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/users", operational))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	stored, found, err := data.Users.FetchOne(context.Background(), operational.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Operacional Renomeado", stored.Name)
	assert.True(t, stored.CheckPassword("123"))
}
