package corpus

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// The corpus ships in three incompatible top-level shapes. Each gets its own
// decoder, selected by a structural predicate, so a logical book produces an
// identical canonical Book no matter which shape carried it:
//
//  1. {"chapters": [{"chapter": N, "verses": [...] | {...}}, ...]}
//  2. {"chapters": {"N": verses, ...}}
//  3. [[v1, v2, ...], ...] — per-chapter arrays, 1-based chapter positions
//
// A verse entry anywhere may be a scalar (text, 1-based position as number)
// or an object with one of verse/num/v for the number and text/t for the
// body.

// Normalize converts one raw JSON blob into the canonical Book model. It is
// total over the three recognized shapes and never mutates raw; anything
// else fails with a MalformedDataError naming the book.
func Normalize(name string, raw []byte) (*Book, error) {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &MalformedDataError{Book: name, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	var (
		chapters map[int]*Chapter
		err      error
	)
	switch v := data.(type) {
	case map[string]any:
		switch ch := v["chapters"].(type) {
		case []any:
			chapters, err = decodeChapterList(ch)
		case map[string]any:
			chapters, err = decodeChapterMap(ch)
		default:
			err = fmt.Errorf("object has no recognizable chapters field")
		}
	case []any:
		chapters, err = decodeChapterArrays(v)
	default:
		err = fmt.Errorf("top level is neither object nor array")
	}
	if err != nil {
		return nil, &MalformedDataError{Book: name, Reason: err.Error()}
	}
	return &Book{Name: name, Chapters: chapters}, nil
}

// decodeChapterList handles shape 1: an array of chapter objects carrying a
// chapter number and a verses array or mapping.
func decodeChapterList(entries []any) (map[int]*Chapter, error) {
	chapters := make(map[int]*Chapter, len(entries))
	for i, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("chapter entry %d is not an object", i)
		}
		num, ok := coerceInt(obj["chapter"])
		if !ok {
			num = i + 1
		}
		verses, err := decodeVerses(obj["verses"])
		if err != nil {
			return nil, fmt.Errorf("chapter %d: %w", num, err)
		}
		chapters[num] = verses
	}
	return chapters, nil
}

// decodeChapterMap handles shape 2: chapter numbers as mapping keys. Keys
// are visited in sorted order so that malformed keys get a deterministic
// fallback position.
func decodeChapterMap(m map[string]any) (map[int]*Chapter, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	chapters := make(map[int]*Chapter, len(m))
	for i, k := range keys {
		num, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || num <= 0 {
			num = i + 1
		}
		verses, err := decodeVerses(m[k])
		if err != nil {
			return nil, fmt.Errorf("chapter %q: %w", k, err)
		}
		chapters[num] = verses
	}
	return chapters, nil
}

// decodeChapterArrays handles shape 3: a bare array of per-chapter arrays,
// with chapter numbers assigned by 1-based position.
func decodeChapterArrays(entries []any) (map[int]*Chapter, error) {
	chapters := make(map[int]*Chapter, len(entries))
	for i, entry := range entries {
		arr, ok := entry.([]any)
		if !ok {
			return nil, fmt.Errorf("element %d is not a chapter array", i)
		}
		verses, err := decodeVerses(arr)
		if err != nil {
			return nil, fmt.Errorf("chapter %d: %w", i+1, err)
		}
		chapters[i+1] = verses
	}
	return chapters, nil
}

// decodeVerses converts a verses container (array or mapping) into a
// Chapter. VerseCount is derived from the distinct verse keys.
func decodeVerses(container any) (*Chapter, error) {
	verses := make(map[string]string)
	switch v := container.(type) {
	case []any:
		for i, entry := range v {
			num, text := decodeVerseEntry(entry, i+1)
			verses[strconv.Itoa(num)] = text
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			num := i + 1
			if n, err := strconv.Atoi(strings.TrimSpace(k)); err == nil && n > 0 {
				num = n
			}
			resolved, text := decodeVerseEntry(v[k], num)
			verses[strconv.Itoa(resolved)] = text
		}
	default:
		return nil, fmt.Errorf("verses are neither array nor mapping")
	}
	return &Chapter{VerseCount: len(verses), Verses: verses}, nil
}

// decodeVerseEntry resolves one verse entry to its number and text. Scalars
// are their own text with the fallback position as number; objects carry the
// number in verse/num/v and the text in text/t.
func decodeVerseEntry(entry any, fallback int) (int, string) {
	obj, ok := entry.(map[string]any)
	if !ok {
		return fallback, scalarText(entry)
	}
	num := fallback
	for _, key := range []string{"verse", "num", "v"} {
		if n, ok := coerceInt(obj[key]); ok {
			num = n
			break
		}
	}
	for _, key := range []string{"text", "t"} {
		if t, ok := obj[key]; ok {
			return num, scalarText(t)
		}
	}
	return num, ""
}

// scalarText renders a scalar verse value as its string form. Integral
// numbers print without a fraction part since encoding/json decodes all
// numbers as float64.
func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// coerceInt extracts a positive integer from a JSON value: float64 numbers
// and decimal strings both count.
func coerceInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		if t == math.Trunc(t) && t > 0 && t <= math.MaxInt32 {
			return int(t), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil && n > 0 {
			return n, true
		}
	}
	return 0, false
}
