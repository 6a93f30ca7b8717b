package psqlbuilder

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern шаблон для (I)LIKE "содержит подстроку"
// Символы \ % _ экранируются и совпадают буквально (ESCAPE по умолчанию '\')
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
