package models

// Portal — закрытое перечисление порталов сайта. Каждому порталу
// соответствует собственная cookie, страница входа и целевая страница
// после верификации; таблица ниже заменяет ветвления по строке роли.
type Portal string

const (
	PortalAdmin    Portal = "admin"
	PortalMusician Portal = "musician"
)

// PortalInfo — атрибуты портала: имя cookie, пути входа/назначения.
type PortalInfo struct {
	// CookieName — имя сессионной cookie портала; имена различаются,
	// чтобы admin- и musician-сессии не пересекались.
	CookieName string
	// LoginPath — страница входа; сюда ведут редиректы с ?error=...
	LoginPath string
	// LandingPath — страница после успешной верификации.
	LandingPath string
	// VerifyPath — эндпойнт потребления токена.
	VerifyPath string
}

var portalInfos = map[Portal]PortalInfo{
	PortalAdmin: {
		CookieName:  "admin_session",
		LoginPath:   "/admin/login",
		LandingPath: "/admin",
		VerifyPath:  "/admin/verify",
	},
	PortalMusician: {
		CookieName:  "musicien_session",
		LoginPath:   "/musician/login",
		LandingPath: "/musician/profile",
		VerifyPath:  "/musician/verify",
	},
}

// Valid сообщает, известен ли портал.
func (p Portal) Valid() bool {
	_, ok := portalInfos[p]
	return ok
}

// Info возвращает атрибуты портала. Паника на неизвестном портале —
// программная ошибка вызова, а не пользовательский ввод: все значения
// Portal в коде берутся из констант выше.
func (p Portal) Info() PortalInfo {
	info, ok := portalInfos[p]
	if !ok {
		panic("models: unknown portal " + string(p))
	}

	return info
}

// Satisfies сообщает, удовлетворяет ли роль пользователя требованиям
// портала: admin принимает ADMIN и SUPER_ADMIN (иерархия админов),
// musician — строго MUSICIAN.
func (p Portal) Satisfies(role Role) bool {
	switch p {
	case PortalAdmin:
		return role == RoleAdmin || role == RoleSuperAdmin
	case PortalMusician:
		return role == RoleMusician
	default:
		return false
	}
}
