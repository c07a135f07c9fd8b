package textparse

import "testing"

func TestParseTimeString(t *testing.T) {
	cases := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"10 minutes", 10, true},
		{"45 min", 45, true},
		{"1 hour", 60, true},
		{"2 hrs", 120, true},
		{"1 hour 30 minutes", 90, true},
		{"1h 30m", 90, true},
		{"about 25 mins total", 25, true},
		{"Quick recipe", 0, false},
		{"", 0, false},
		{"90", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseTimeString(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("ParseTimeString(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestCleanIngredient(t *testing.T) {
	cases := []struct{ in, want string }{
		{"- 1 cup sugar", "cup sugar"},
		{"* butter, softened", "butter, softened"},
		{"• 3 eggs", "eggs"},
		{"2. flour", "flour"},
		{"fresh basil", "fresh basil"},
		// Known quirk: the numbering strip also eats the first integer of
		// a quantity.
		{"2 1/2 cups milk", "1/2 cups milk"},
	}
	for _, c := range cases {
		if got := CleanIngredient(c.in); got != c.want {
			t.Errorf("CleanIngredient(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanInstruction(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Step 1: Preheat the oven.", "Preheat the oven."},
		{"Step 2. Mix the batter.", "Mix the batter."},
		{"3. Bake until golden.", "Bake until golden."},
		{"4) Cool on a rack.", "Cool on a rack."},
		{"Serve warm.", "Serve warm."},
	}
	for _, c := range cases {
		if got := CleanInstruction(c.in); got != c.want {
			t.Errorf("CleanInstruction(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsWebsiteNoise(t *testing.T) {
	c := newClassifier(DefaultVocabulary())
	noisy := []string{
		"Save this recipe for later!",
		"Click here for more",
		"SHOP THESE INGREDIENTS",
		"Get the recipe in your inbox",
		"View all recipes",
		"Subscribe",
		"Home",
		"About",
		"Privacy Policy",
		"Terms and Conditions",
		"Copyright 2024",
		"© 2023",
		"Rate this recipe",
		"Leave a comment",
	}
	for _, line := range noisy {
		if !c.isWebsiteNoise(line) {
			t.Errorf("expected noise: %q", line)
		}
	}
	clean := []string{
		"2 cups flour",
		"Bake for 20 minutes",
		"Homemade chicken stock",
	}
	for _, line := range clean {
		if c.isWebsiteNoise(line) {
			t.Errorf("did not expect noise: %q", line)
		}
	}
}

func TestLooksLikeIngredient(t *testing.T) {
	c := newClassifier(DefaultVocabulary())
	cases := []struct {
		line      string
		inSection bool
		want      bool
	}{
		{"2 cups flour", false, true},
		{"1/2 tsp salt", false, true},
		{"½ cup olive oil", false, true},
		{"fresh garlic", false, true},
		{"a", false, false},
		{"on", true, false},
		{"something obscure", false, false},
		{"something obscure", true, true},
	}
	for _, tc := range cases {
		if got := c.looksLikeIngredient(tc.line, tc.inSection); got != tc.want {
			t.Errorf("looksLikeIngredient(%q, %v) = %v, want %v", tc.line, tc.inSection, got, tc.want)
		}
	}
}

func TestLooksLikeInstruction(t *testing.T) {
	c := newClassifier(DefaultVocabulary())
	cases := []struct {
		line string
		want bool
	}{
		{"Preheat the oven to 375°F.", true},
		{"Rest for 10 minutes before slicing.", true},
		{"Mix", false},
		{"Bake", false},
		{"A short note", false},
	}
	for _, tc := range cases {
		if got := c.looksLikeInstruction(tc.line); got != tc.want {
			t.Errorf("looksLikeInstruction(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}
