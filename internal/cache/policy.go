package cache

import "strings"

// Префиксы, исключённые из кэширования: порталы и мутирующие/служебные
// эндпойнты всегда считаются заново.
var excludedPrefixes = []string{
	"/admin",
	"/musician",
	"/api",
	"/metrics",
	"/livez",
	"/healthz",
}

// CacheablePath сообщает, подлежит ли путь кэшированию.
// Кэшируются только GET-запросы к публичным страницам.
func CacheablePath(method, path string) bool {
	if method != "GET" {
		return false
	}

	for _, p := range excludedPrefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return false
		}
	}

	return true
}
