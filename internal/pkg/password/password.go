// Package password implementa o hash de senhas (bcrypt) e a verificação.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash devolve o hash bcrypt (com salt embutido) da senha em texto puro.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify compara a senha em texto puro com o hash armazenado.
// Um hash vazio (conta sem senha) nunca confere.
func Verify(plain, hashed string) bool {
	if hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
