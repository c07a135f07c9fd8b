package schemaorg

import (
	"reflect"
	"testing"
)

func TestDurationMinutes(t *testing.T) {
	cases := []struct {
		in   any
		want int
	}{
		{"PT30M", 30},
		{"PT1H", 60},
		{"PT1H30M", 90},
		{"PT2H5M", 125},
		{"pt1h15m", 75},
		{" PT45M ", 45},
		{"PT0M", 0},
		{"", 0},
		{nil, 0},
		{"30 minutes", 0},
		{"P1D", 0},
		{float64(30), 0},
	}
	for _, c := range cases {
		if got := DurationMinutes(c.in); got != c.want {
			t.Errorf("DurationMinutes(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestServings(t *testing.T) {
	cases := []struct {
		in     any
		want   int
		wantOK bool
	}{
		{"4", 4, true},
		{"4 servings", 4, true},
		{"Makes 6", 6, true},
		{"4-6 servings", 4, true},
		{float64(8), 8, true},
		{[]any{"4", "4 servings"}, 4, true},
		{"a few", 0, false},
		{"", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, c := range cases {
		got, ok := Servings(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("Servings(%v) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestImageURL(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"https://a.example/p.jpg", "https://a.example/p.jpg"},
		{map[string]any{"@type": "ImageObject", "url": "https://b.example/q.jpg"}, "https://b.example/q.jpg"},
		{[]any{"https://c.example/1.jpg", "https://c.example/2.jpg"}, "https://c.example/1.jpg"},
		{[]any{map[string]any{"url": "https://d.example/n.jpg"}}, "https://d.example/n.jpg"},
		{nil, ""},
		{float64(3), ""},
		{map[string]any{"@type": "ImageObject"}, ""},
	}
	for _, c := range cases {
		if got := ImageURL(c.in); got != c.want {
			t.Errorf("ImageURL(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestImageURLs_CollectsAllCandidates(t *testing.T) {
	in := []any{
		"https://a.example/1.jpg",
		map[string]any{"url": "https://a.example/2.jpg"},
		float64(7),
	}
	want := []string{"https://a.example/1.jpg", "https://a.example/2.jpg"}
	if got := ImageURLs(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("ImageURLs = %v, want %v", got, want)
	}
}

func TestInstructions_PlainStrings(t *testing.T) {
	in := []any{"Chop the onions.", "  ", "Fry until golden."}
	want := []string{"Chop the onions.", "Fry until golden."}
	if got := Instructions(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInstructions_HowToSteps(t *testing.T) {
	in := []any{
		map[string]any{"@type": "HowToStep", "text": "Boil the pasta."},
		map[string]any{"@type": "HowToStep", "name": "Drain"},
	}
	want := []string{"Boil the pasta.", "Drain"}
	if got := Instructions(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInstructions_HowToSections(t *testing.T) {
	in := []any{
		map[string]any{
			"@type": "HowToSection",
			"name":  "Sauce",
			"itemListElement": []any{
				map[string]any{"@type": "HowToStep", "text": "Simmer tomatoes."},
				map[string]any{"@type": "HowToStep", "text": "Season."},
			},
		},
		map[string]any{
			"@type": "HowToSection",
			"name":  "Assembly",
			"itemListElement": []any{
				map[string]any{"@type": "HowToStep", "text": "Layer and bake."},
			},
		},
	}
	want := []string{"Sauce:", "Simmer tomatoes.", "Season.", "Assembly:", "Layer and bake."}
	if got := Instructions(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInstructions_SingleString(t *testing.T) {
	want := []string{"Mix everything and bake."}
	if got := Instructions("Mix everything and bake."); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInstructions_Unsupported(t *testing.T) {
	if got := Instructions(nil); got != nil {
		t.Fatalf("expected nil for absent node, got %v", got)
	}
	if got := Instructions(float64(5)); got != nil {
		t.Fatalf("expected nil for numeric node, got %v", got)
	}
}

func TestStringList(t *testing.T) {
	cases := []struct {
		in   any
		want []string
	}{
		{[]any{"dinner", " italian ", ""}, []string{"dinner", "italian"}},
		{[]any{"dessert", float64(3)}, []string{"dessert"}},
		{"quick, weeknight, , pasta", []string{"quick", "weeknight", "pasta"}},
		{"solo", []string{"solo"}},
		{nil, nil},
	}
	for _, c := range cases {
		if got := StringList(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("StringList(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
