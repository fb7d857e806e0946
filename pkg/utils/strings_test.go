package utils

import "testing"

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "Hello"},
		{"helloWorld", "HelloWorld"},
		{"getUserById", "GetUserById"},
		{"XMLHttpRequest", "XmlHttpRequest"},
		{"hello-world", "HelloWorld"},
		{"hello_world", "HelloWorld"},
		{"hello world", "HelloWorld"},
		{"HELLO_WORLD", "HelloWorld"},
		{"cobrança", "Cobranca"},
		{"informações", "Informacoes"},
	}

	for _, test := range tests {
		if got := ToPascalCase(test.input); got != test.expected {
			t.Errorf("ToPascalCase(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"ListUsers", "listUsers"},
		{"user_id", "userId"},
		{"HTTP-server", "httpServer"},
	}

	for _, test := range tests {
		if got := ToCamelCase(test.input); got != test.expected {
			t.Errorf("ToCamelCase(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"helloWorld", "hello_world"},
		{"getUserById", "get_user_by_id"},
		{"XMLHttpRequest", "xml_http_request"},
		{"hello-world", "hello_world"},
		{"HELLO_WORLD", "hello_world"},
		{"café", "cafe"},
	}

	for _, test := range tests {
		if got := ToSnakeCase(test.input); got != test.expected {
			t.Errorf("ToSnakeCase(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestRemoveAccents(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"José", "Jose"},
		{"São Paulo", "Sao Paulo"},
		{"naïve", "naive"},
		{"piñata", "pinata"},
	}

	for _, test := range tests {
		if got := RemoveAccents(test.input); got != test.expected {
			t.Errorf("RemoveAccents(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}
