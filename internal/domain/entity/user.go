package entity

// User representa un usuario con acceso al dashboard. Solo lectura desde la app.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano
}
