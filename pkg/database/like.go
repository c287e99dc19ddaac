package database

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns s into an ILIKE pattern matching s as a literal
// substring. Backslash is Postgres's default LIKE escape character.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
