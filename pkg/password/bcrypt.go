// Package password encapsula el hash de contraseñas con bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt compara y genera hashes bcrypt. Cost 0 usa bcrypt.DefaultCost.
type Bcrypt struct {
	Cost int
}

// Hash genera el hash salado de la contraseña en texto plano.
func (b Bcrypt) Hash(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare indica si plain corresponde al hash almacenado.
func (b Bcrypt) Compare(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
