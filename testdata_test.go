package tjs_test

import (
	"os"
	"path/filepath"
	"testing"

	"tjs"
	"tjs/value"
)

func TestTestdata(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.tjs"))
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			v, err := tjs.Parse(src)
			if err != nil {
				t.Fatal(err)
			}
			back, err := tjs.ParseString(tjs.Render(v))
			if err != nil || !value.Equal(v, back) {
				t.Fatalf("round trip failed: %v", err)
			}
		})
	}
}

func TestTestdataPerson(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "person.tjs"))
	if err != nil {
		t.Fatal(err)
	}
	var p Person
	if err := tjs.Unmarshal(src, &p, tjs.WithDisallowUnknownFields(true)); err != nil {
		t.Fatal(err)
	}
	if p.Name != "John Doe" || p.Age != 43 || len(p.Phones) != 2 {
		t.Fatalf("got %+v", p)
	}
}
