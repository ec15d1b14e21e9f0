package utils

import "golang.org/x/crypto/bcrypt"

// BcryptCost is the work factor for new password hashes. Tests lower it.
var BcryptCost = 12

func HashPassword(p string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(p), BcryptCost)
	return string(bytes), err
}

func CheckPassword(hash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
	return err == nil
}
