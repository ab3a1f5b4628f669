package queries

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns free text into a case-insensitive ILIKE pattern that
// matches the text anywhere. Wildcards typed by the user match literally.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}
