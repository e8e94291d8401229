package symbol

// Unison reserved words. The language has relatively few; generated
// identifiers that collide get an underscore suffix.
var reservedWords = map[string]bool{
	"type":       true,
	"ability":    true,
	"structural": true,
	"unique":     true,
	"namespace":  true,
	"if":         true,
	"then":       true,
	"else":       true,
	"match":      true,
	"with":       true,
	"cases":      true,
	"let":        true,
	"in":         true,
	"where":      true,
	"do":         true,
	"handle":     true,
	"handler":    true,
	"true":       true,
	"false":      true,
	"use":        true,
	"forall":     true,
	"termLink":   true,
	"typeLink":   true,
}

// IsReserved reports whether name is a Unison keyword.
func IsReserved(name string) bool { return reservedWords[name] }

// EscapeReserved appends an underscore to reserved words, leaving other
// names untouched.
func EscapeReserved(name string) string {
	if reservedWords[name] {
		return name + "_"
	}
	return name
}
