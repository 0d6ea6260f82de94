package models

import "testing"

func TestNaming(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string) string
		input string
		want  string
	}{
		{name: "snake to train", fn: SnakeToTrain, input: "example_field_name", want: "example-field-name"},
		{name: "snake to train lowercases", fn: SnakeToTrain, input: "Example_FIELD", want: "example-field"},
		{name: "snake to train single word", fn: SnakeToTrain, input: "name", want: "name"},
		{name: "train to snake", fn: TrainToSnake, input: "example-field-name", want: "example_field_name"},
		{name: "pascal to train", fn: PascalToTrain, input: "ExampleModel", want: "example-model"},
		{name: "pascal to train single word", fn: PascalToTrain, input: "Instance", want: "instance"},
		{name: "pascal to train acronym", fn: PascalToTrain, input: "HTTPServer", want: "h-t-t-p-server"},
		{name: "key from json tag", fn: KeyName, input: "working_directory", want: "working-directory"},
		{name: "key from go field", fn: KeyName, input: "ExampleFieldName", want: "example-field-name"},
		{name: "key already train-case", fn: KeyName, input: "artifacts-directory", want: "artifacts-directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
