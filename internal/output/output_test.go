// SPDX-License-Identifier: MPL-2.0

package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNames(t *testing.T) {
	t.Parallel()

	docs := filepath.Join(string(filepath.Separator), "home", "user", "docs")
	pics := filepath.Join(string(filepath.Separator), "home", "user", "pics")

	tests := []struct {
		name      string
		paths     []string
		fullPaths bool
		want      []string
	}{
		{"nil selection", nil, false, []string{}},
		{"empty selection full", []string{}, true, []string{}},
		{"full paths keep order", []string{pics, docs}, true, []string{pics, docs}},
		{"basenames keep order", []string{pics, docs}, false, []string{"pics", "docs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Names(tt.paths, tt.fullPaths)
			if got == nil {
				t.Fatal("Names() returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Names() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"nil is empty array", nil, `[]`},
		{"empty", []string{}, `[]`},
		{"paths", []string{"/home/user/docs", "/home/user/pics"}, `["/home/user/docs","/home/user/pics"]`},
		{"escapes", []string{`C:\Users\me`, `say "hi"`}, `["C:\\Users\\me","say \"hi\""]`},
		{"html is not escaped", []string{"R&D <old>"}, `["R&D <old>"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := Write(&buf, tt.names); err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Write() wrote %q, want %q", buf.String(), tt.want)
			}

			var decoded []string
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Errorf("output is not valid JSON: %v", err)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWrite_Error(t *testing.T) {
	t.Parallel()

	if err := Write(failingWriter{}, []string{"a"}); err == nil {
		t.Error("Write() to a failing writer should return an error")
	}
}
