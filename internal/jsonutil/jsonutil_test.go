package jsonutil

import (
	"strings"
	"testing"
)

func TestMarshalIndented(t *testing.T) {
	v := struct {
		Name string `json:"name"`
		Expr string `json:"expr"`
	}{Name: "test", Expr: "value > 0"}

	data, err := MarshalIndented(v)
	if err != nil {
		t.Fatalf("MarshalIndented: %v", err)
	}
	out := string(data)

	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("expected trailing newline, got %q", out[len(out)-2:])
	}
	if !strings.Contains(out, "\n  \"name\"") {
		t.Errorf("expected two-space indentation, got:\n%s", out)
	}
	if !strings.Contains(out, "value > 0") {
		t.Errorf("expected > to stay unescaped, got:\n%s", out)
	}
}

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !strings.Contains(err.Error(), "test context") {
				t.Errorf("error missing context: %v", err)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestMarshalIndented_RoundTrip(t *testing.T) {
	type doc struct {
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
	}
	in := doc{Title: "t", Tags: []string{"a", "b"}}

	data, err := MarshalIndented(in)
	if err != nil {
		t.Fatalf("MarshalIndented: %v", err)
	}
	var out doc
	if err := UnmarshalWithContext(data, &out, "round trip"); err != nil {
		t.Fatalf("UnmarshalWithContext: %v", err)
	}
	if out.Title != in.Title || len(out.Tags) != 2 {
		t.Errorf("round trip mismatch: %+v", out)
	}
}
