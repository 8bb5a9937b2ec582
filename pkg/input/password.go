package input

import "strings"

type PasswordStrength string

const (
	PasswordWeak   PasswordStrength = "Weak"
	PasswordMedium PasswordStrength = "Medium"
	PasswordStrong PasswordStrength = "Strong"
)

// CheckPassword scores a password on length, digits, specials, and
// uppercase. Weak passwords are refused client-side before register
// ever reaches the network.
func CheckPassword(password string) PasswordStrength {
	if len(password) < 6 {
		return PasswordWeak
	}

	score := 0
	if len(password) >= 8 {
		score++
	}
	if strings.ContainsAny(password, "0123456789") {
		score++
	}
	if strings.ContainsAny(password, "!@#$%^&*") {
		score++
	}
	if strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		score++
	}

	switch {
	case score <= 1:
		return PasswordWeak
	case score == 2:
		return PasswordMedium
	default:
		return PasswordStrong
	}
}
