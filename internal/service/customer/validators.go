package customer

import "strings"

func isValidPhone(phone string) bool {
	return strings.TrimSpace(phone) != ""
}
