package postgres

import "strings"

// likeEscaper экранирует метасимволы шаблона LIKE/ILIKE.
var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// SearchPattern строит шаблон ILIKE для поиска по подстроке.
// Текст запроса трактуется буквально: `%`, `_` и `\` экранируются,
// совпадение не привязано к началу или концу поля.
func SearchPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}
