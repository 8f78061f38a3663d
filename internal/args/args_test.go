// SPDX-License-Identifier: MPL-2.0

package args

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
		want Map
	}{
		{
			name: "nil input",
			argv: nil,
			want: Map{},
		},
		{
			name: "bare flag is boolean true",
			argv: []string{"--return_full_paths"},
			want: Map{"return_full_paths": BoolValue(true)},
		},
		{
			name: "true and false are coerced",
			argv: []string{"--a=true", "--b=false"},
			want: Map{"a": BoolValue(true), "b": BoolValue(false)},
		},
		{
			name: "other casings stay strings",
			argv: []string{"--a=True", "--b=FALSE", "--c=1"},
			want: Map{"a": StringValue("True"), "b": StringValue("FALSE"), "c": StringValue("1")},
		},
		{
			name: "value keeps later separators",
			argv: []string{"--title=a=b=c"},
			want: Map{"title": StringValue("a=b=c")},
		},
		{
			name: "empty value is an empty string",
			argv: []string{"--title="},
			want: Map{"title": StringValue("")},
		},
		{
			name: "last duplicate wins",
			argv: []string{"--title=first", "--title=second", "--flag=false", "--flag"},
			want: Map{"title": StringValue("second"), "flag": BoolValue(true)},
		},
		{
			name: "positional and single-dash arguments are ignored",
			argv: []string{"positional", "-t", "-title=x", "--title=kept"},
			want: Map{"title": StringValue("kept")},
		},
		{
			name: "empty keys are ignored",
			argv: []string{"--", "--=value"},
			want: Map{},
		},
		{
			name: "spaces are preserved",
			argv: []string{"--title=Pick Folders", "--default_path=C:\\My Docs"},
			want: Map{"title": StringValue("Pick Folders"), "default_path": StringValue("C:\\My Docs")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Parse(tt.argv)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.argv, got, tt.want)
			}
		})
	}
}

func TestParse_Total(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		{""},
		{"-", "--", "---", "----="},
		{"--\x00=\xff", "--é=ü"},
		{"=", "==", "--==="},
	}
	for _, argv := range inputs {
		m := Parse(argv)
		for k := range m {
			if k == "" {
				t.Errorf("Parse(%q) produced an empty key", argv)
			}
		}
	}
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	s := StringValue("x")
	if s.Kind() != KindString {
		t.Errorf("StringValue kind = %v, want %v", s.Kind(), KindString)
	}
	if got, ok := s.AsString(); !ok || got != "x" {
		t.Errorf("AsString() = %q, %v", got, ok)
	}
	if _, ok := s.AsBool(); ok {
		t.Error("AsBool() on a string value should report false")
	}

	b := BoolValue(false)
	if b.Kind() != KindBool {
		t.Errorf("BoolValue kind = %v, want %v", b.Kind(), KindBool)
	}
	if got, ok := b.AsBool(); !ok || got {
		t.Errorf("AsBool() = %v, %v", got, ok)
	}
	if _, ok := b.AsString(); ok {
		t.Error("AsString() on a bool value should report false")
	}

	var zero Value
	if zero.Kind() != 0 {
		t.Errorf("zero Value kind = %v, want 0", zero.Kind())
	}
}

func TestMap_Lookups(t *testing.T) {
	t.Parallel()

	m := Parse([]string{"--title=Docs", "--return_full_paths=true", "--multi_folder=false", "--weird=yes"})

	if !m.Has("title") || m.Has("missing") {
		t.Error("Has() reported wrong presence")
	}
	if got, ok := m.GetString("title"); !ok || got != "Docs" {
		t.Errorf("GetString(title) = %q, %v", got, ok)
	}
	if _, ok := m.GetString("return_full_paths"); ok {
		t.Error("GetString on a boolean key should report false")
	}
	if !m.IsTrue("return_full_paths") {
		t.Error("IsTrue(return_full_paths) = false, want true")
	}
	if m.IsTrue("weird") {
		t.Error("IsTrue on a string value must be false")
	}
	if m.IsTrue("missing") {
		t.Error("IsTrue on a missing key must be false")
	}

	v, ok := m.First("multi-folder", "multi_folder")
	if !ok {
		t.Fatal("First() should find multi_folder")
	}
	if b, isBool := v.AsBool(); !isBool || b {
		t.Errorf("First() value = %#v, want BoolValue(false)", v)
	}
	if _, ok := m.First("nope", "nada"); ok {
		t.Error("First() with no present keys should report false")
	}
}
