package manifest

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/starford/txtindex/internal/models"
)

func TestFormatID(t *testing.T) {
	cases := map[int]string{
		1:    "001",
		9:    "009",
		42:   "042",
		999:  "999",
		1000: "1000",
		1234: "1234",
	}
	for pos, want := range cases {
		if got := FormatID(pos); got != want {
			t.Errorf("FormatID(%d) = %q, want %q", pos, got, want)
		}
	}
}

func TestLabel(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"banana.txt", "banana"},
		{"Apple.txt", "Apple"},
		{"my.cookies.txt", "my.cookies"},
		{"with space.txt", "with space"},
		{"日本語.txt", "日本語"},
		{".hidden.txt", ".hidden"},
		{".txt", ".txt"},
		{"..txt", "..txt"},
	}
	for _, tc := range cases {
		if got := Label(tc.name, ".txt"); got != tc.want {
			t.Errorf("Label(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestBuildItems(t *testing.T) {
	now := time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC)
	items := BuildItems("data", ".txt", []string{"Apple.txt", "banana.txt", "cherry.txt"}, now)

	want := []models.Item{
		{ID: "001", Label: "Apple", Path: "data/Apple.txt", AddedAt: "2024-01-02"},
		{ID: "002", Label: "banana", Path: "data/banana.txt", AddedAt: "2024-01-02"},
		{ID: "003", Label: "cherry", Path: "data/cherry.txt", AddedAt: "2024-01-02"},
	}
	if len(items) != len(want) {
		t.Fatalf("len = %d, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestBuildItemsUsesUTCDate(t *testing.T) {
	east := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2024, 1, 3, 2, 0, 0, 0, east) // 2024-01-02 17:00 UTC
	items := BuildItems("./data/", ".txt", []string{"a.txt"}, now)
	if items[0].AddedAt != "2024-01-02" {
		t.Errorf("AddedAt = %q, want 2024-01-02", items[0].AddedAt)
	}
	if items[0].Path != "data/a.txt" {
		t.Errorf("Path = %q, want data/a.txt", items[0].Path)
	}
}

func TestBuildItemsKeepsDotDataDir(t *testing.T) {
	items := BuildItems(".", ".txt", []string{"a.txt"}, time.Now())
	if items[0].Path != "./a.txt" {
		t.Errorf("Path = %q, want ./a.txt", items[0].Path)
	}
}

func TestNewMeta(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 30, 45, 123, time.UTC)
	m := NewMeta(7, now, "index.json")
	if m.Version != 7 || m.UpdatedAt != "2024-03-05T14:30:45Z" || m.IndexURL != "index.json" {
		t.Errorf("NewMeta = %+v", m)
	}
}

func TestNewIndexNeverNull(t *testing.T) {
	data, err := Encode(NewIndex(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"items": []`) {
		t.Errorf("expected empty array, got %s", data)
	}
	if !strings.Contains(string(data), `"schemaVersion": 1`) {
		t.Errorf("expected schemaVersion 1, got %s", data)
	}
}

func TestParseVersion(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		want    int
		wantErr bool
	}{
		{"valid", `{"version": 4, "updatedAt": "x", "indexUrl": "index.json"}`, 4, false},
		{"missing field", `{"updatedAt": "x"}`, 0, false},
		{"null document", `null`, 0, false},
		{"garbage", `not json`, 0, true},
		{"empty", ``, 0, true},
		{"array", `[1, 2]`, 0, true},
		{"string version", `{"version": "3"}`, 0, true},
		{"fractional version", `{"version": 2.5}`, 0, true},
		{"negative version", `{"version": -3}`, 0, true},
		{"max version", fmt.Sprintf(`{"version": %d}`, math.MaxInt), 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseVersion([]byte(tc.data))
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("version = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestEncodeKeepsUnicodeAndIndent(t *testing.T) {
	data, err := Encode(models.Item{ID: "001", Label: "café & <tea>", Path: "data/café & <tea>.txt", AddedAt: "2024-01-01"})
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.Contains(s, `"label": "café & <tea>"`) {
		t.Errorf("label escaped unexpectedly: %s", s)
	}
	if !strings.HasPrefix(s, "{\n  \"id\": \"001\"") {
		t.Errorf("unexpected layout: %s", s)
	}
	if !strings.HasSuffix(s, "}\n") {
		t.Errorf("missing trailing newline: %q", s)
	}
}
