package redact

import "strings"

// Email маскирует локальную часть адреса для логов.
func Email(s string) string {
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return "***"
	}

	local, domain := parts[0], parts[1]
	if len(local) > 2 {
		local = local[:2] + "***"
	} else {
		local = "***"
	}

	return local + "@" + domain
}

// Token — плейсхолдер вместо значения magic-link токена или сессии.
func Token() string { return "[REDACTED_TOKEN]" }
