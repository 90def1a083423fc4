package ctmigrate

import "testing"

func TestContentTypeName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My Teaser", "my_teaser"},
		{"Co--oL!!Name", "co_ol_name"},
		{"  Hero  ", "hero"},
		{"Two-Column Layout", "two_column_layout"},
		{"already_snake", "already_snake"},
		{"__x__", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := ContentTypeName(tt.title); got != tt.want {
				t.Errorf("ContentTypeName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestCamelCaseToLowerCaseUnderscored(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"myField", "my_field"},
		{"MyField", "my_field"},
		{"teaserText2", "teaser_text2"},
		{"HTTPResponse", "h_t_t_p_response"},
		{"header", "header"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CamelCaseToLowerCaseUnderscored(tt.in); got != tt.want {
				t.Errorf("CamelCaseToLowerCaseUnderscored(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnderscoredToUpperCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my_teaser", "MyTeaser"},
		{"box", "Box"},
		{"two__columns", "TwoColumns"},
		{"Mixed_Case", "MixedCase"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := UnderscoredToUpperCamelCase(tt.in); got != tt.want {
				t.Errorf("UnderscoredToUpperCamelCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
