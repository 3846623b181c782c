// Package password implementa o hash e a verificação de senhas com bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GetHash recebe a senha do usuário e devolve o hash bcrypt correspondente.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash compara um hash bcrypt com a senha informada.
//
// Devolve nil quando a senha corresponde ao hash.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
