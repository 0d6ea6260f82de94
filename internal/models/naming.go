package models

import (
	"strings"
	"unicode"
)

// SnakeToTrain converts snake_case to train-case: "example_field_name"
// becomes "example-field-name". Every part is lowercased.
func SnakeToTrain(snake string) string {
	return strings.ToLower(strings.Join(strings.Split(snake, "_"), "-"))
}

// TrainToSnake converts train-case back to snake_case.
func TrainToSnake(train string) string {
	return strings.ReplaceAll(train, "-", "_")
}

// PascalToTrain converts PascalCase to train-case by putting a hyphen before
// every upper-case letter but the first: "ExampleModel" becomes
// "example-model". Acronyms are split per letter.
func PascalToTrain(pascal string) string {
	var b strings.Builder
	for i, r := range pascal {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// KeyName derives a schema key from a Go field name or a json tag name.
// snake_case and lower-case names go through SnakeToTrain, anything else
// through PascalToTrain.
func KeyName(name string) string {
	if strings.Contains(name, "_") || name == strings.ToLower(name) {
		return SnakeToTrain(name)
	}
	return PascalToTrain(name)
}
