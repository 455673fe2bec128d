package order

import "strings"

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidPrice(price float64) bool {
	return price >= 0
}
