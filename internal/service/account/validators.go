package account

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	return strings.TrimSpace(phone) != ""
}

func isValidPassword(password string) bool {
	return password != ""
}
