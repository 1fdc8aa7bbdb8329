package validation

import (
	"fmt"
	"regexp"
)

// OperatorNamePattern определяет допустимый формат имени оператора:
// латинские буквы, цифры, точка, дефис и подчеркивание, 3-32 символа
var OperatorNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,32}$`)

const (
	// MinOperatorNameLen минимальная длина имени оператора
	MinOperatorNameLen = 3
	// MaxOperatorNameLen максимальная длина имени оператора
	MaxOperatorNameLen = 32
	// MinOperatorPasswordLen минимальная длина пароля оператора
	MinOperatorPasswordLen = 12
)

// ValidateOperatorName checks an operator login name
func ValidateOperatorName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("operator name cannot be empty")
	case len(name) < MinOperatorNameLen:
		return fmt.Errorf("operator name must be at least %d characters long", MinOperatorNameLen)
	case len(name) > MaxOperatorNameLen:
		return fmt.Errorf("operator name must not exceed %d characters", MaxOperatorNameLen)
	case !OperatorNamePattern.MatchString(name):
		return fmt.Errorf("operator name can only contain letters, digits, '.', '-' and '_'")
	}
	return nil
}

// ValidateOperatorPassword checks the minimal password policy used when
// hashing a new operator password
func ValidateOperatorPassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < MinOperatorPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinOperatorPasswordLen)
	}
	return nil
}
