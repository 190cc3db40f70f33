package corpus

import (
	"errors"
	"reflect"
	"testing"
)

// The same logical book encoded in all three recognized shapes must
// normalize to identical canonical Books.
func TestNormalizeShapeIndependence(t *testing.T) {
	want := &Book{
		Name: "Jonah",
		Chapters: map[int]*Chapter{
			1: {VerseCount: 2, Verses: map[string]string{"1": "first", "2": "second"}},
			2: {VerseCount: 1, Verses: map[string]string{"1": "third"}},
		},
	}

	shapes := []struct {
		name string
		raw  string
	}{
		{
			"chapter object array",
			`{"chapters": [
				{"chapter": 1, "verses": [{"verse": 1, "text": "first"}, {"verse": 2, "text": "second"}]},
				{"chapter": 2, "verses": [{"verse": 1, "text": "third"}]}
			]}`,
		},
		{
			"chapter object array with mapping verses",
			`{"chapters": [
				{"chapter": 1, "verses": {"1": "first", "2": "second"}},
				{"chapter": 2, "verses": {"1": "third"}}
			]}`,
		},
		{
			"chapter mapping",
			`{"chapters": {"1": {"1": "first", "2": "second"}, "2": {"1": "third"}}}`,
		},
		{
			"nested arrays",
			`[["first", "second"], ["third"]]`,
		},
	}

	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize("Jonah", []byte(tt.raw))
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Normalize produced %#v, want %#v", got, want)
			}
		})
	}
}

func TestNormalizeVerseEntryVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{
			"short field names",
			`{"chapters": [{"chapter": 1, "verses": [{"v": 1, "t": "alpha"}, {"num": 2, "text": "beta"}]}]}`,
			map[string]string{"1": "alpha", "2": "beta"},
		},
		{
			"scalar verses use positions",
			`{"chapters": [{"chapter": 1, "verses": ["alpha", "beta"]}]}`,
			map[string]string{"1": "alpha", "2": "beta"},
		},
		{
			"missing number falls back to position",
			`{"chapters": [{"chapter": 1, "verses": [{"text": "alpha"}, {"text": "beta"}]}]}`,
			map[string]string{"1": "alpha", "2": "beta"},
		},
		{
			"missing text defaults to empty",
			`{"chapters": [{"chapter": 1, "verses": [{"verse": 1}]}]}`,
			map[string]string{"1": ""},
		},
		{
			"string verse numbers",
			`{"chapters": [{"chapter": "1", "verses": [{"verse": "2", "text": "beta"}]}]}`,
			map[string]string{"2": "beta"},
		},
		{
			"numeric scalar text",
			`{"chapters": [{"chapter": 1, "verses": [7]}]}`,
			map[string]string{"1": "7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := Normalize("Test", []byte(tt.raw))
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			ch := book.Chapters[1]
			if ch == nil {
				t.Fatal("chapter 1 missing")
			}
			if !reflect.DeepEqual(ch.Verses, tt.want) {
				t.Errorf("verses = %#v, want %#v", ch.Verses, tt.want)
			}
			if ch.VerseCount != len(tt.want) {
				t.Errorf("VerseCount = %d, want %d", ch.VerseCount, len(tt.want))
			}
		})
	}
}

func TestNormalizeChapterNumberFallback(t *testing.T) {
	raw := `{"chapters": [{"verses": ["a"]}, {"chapter": "x", "verses": ["b"]}, {"chapter": 7, "verses": ["c"]}]}`
	book, err := Normalize("Test", []byte(raw))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got := book.ChapterNumbers(); !reflect.DeepEqual(got, []int{1, 2, 7}) {
		t.Errorf("ChapterNumbers = %v, want [1 2 7]", got)
	}
	if book.Chapters[2].Verse(1) != "b" {
		t.Errorf("malformed chapter number should fall back to position 2")
	}
}

func TestNormalizeMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid json", `{`},
		{"scalar top level", `42`},
		{"object without chapters", `{"books": []}`},
		{"chapters is scalar", `{"chapters": 3}`},
		{"non-array chapter in nested shape", `[["a"], "b"]`},
		{"verses is scalar", `{"chapters": [{"chapter": 1, "verses": 5}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize("Obadiah", []byte(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrMalformedData) {
				t.Errorf("error %v does not wrap ErrMalformedData", err)
			}
			var mde *MalformedDataError
			if !errors.As(err, &mde) || mde.Book != "Obadiah" {
				t.Errorf("error does not name the book: %v", err)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	raw := []byte(`{"chapters": {"1": {"1": "text"}}}`)
	snapshot := string(raw)
	if _, err := Normalize("Test", raw); err != nil {
		t.Fatal(err)
	}
	if string(raw) != snapshot {
		t.Error("Normalize mutated its input")
	}
}

func TestChapterVerseDefaultsEmpty(t *testing.T) {
	ch := &Chapter{VerseCount: 3, Verses: map[string]string{"1": "a", "3": "c"}}
	if got := ch.Verse(2); got != "" {
		t.Errorf("Verse(2) = %q, want empty string", got)
	}
}
