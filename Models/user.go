package Models

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminUsername is seeded on first run and protected from deletion.
const DefaultAdminUsername = "admin"

type User struct {
	ID                 string   `json:"id"`
	Username           string   `json:"username" validate:"required"`
	Role               UserRole `json:"role" validate:"required,oneof=ADMIN OPERATIONAL CLIENT"`
	ClientID           string   `json:"clientId,omitempty"` // set when Role is CLIENT
	Name               string   `json:"name" validate:"required"`
	Password           string   `json:"password,omitempty"` // bcrypt hash
	MustChangePassword bool     `json:"mustChangePassword"`
}

// SetPassword stores a bcrypt hash of the plain password.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword compares a plain password against the stored hash.
func (u User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// InitialUsers returns the accounts seeded on first boot.
func InitialUsers() []User {
	users := []User{
		{ID: "1", Username: DefaultAdminUsername, Role: RoleAdmin, Name: "Administrador"},
		{ID: "2", Username: "operacional", Role: RoleOperational, Name: "Operador Logístico"},
		{ID: "3", Username: "cliente", Role: RoleClient, Name: "Cliente Demo", ClientID: "client_demo_id"},
	}
	passwords := []string{"admin", "123", "123"}
	for i := range users {
		if err := users[i].SetPassword(passwords[i]); err != nil {
			log.Println("Failed to hash seed password:", err)
		}
	}
	return users
}
