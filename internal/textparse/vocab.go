package textparse

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Vocabulary holds the word tables the heuristic classifiers run against.
// Tuning the heuristics means editing these lists, not the control flow;
// a YAML file can override any table wholesale.
type Vocabulary struct {
	// IngredientHeaders and InstructionHeaders name the section headers
	// recognized after trimming and stripping a trailing colon.
	IngredientHeaders  []string `yaml:"ingredientHeaders"`
	InstructionHeaders []string `yaml:"instructionHeaders"`

	// NoisePhrases are matched as case-insensitive substrings anywhere in
	// a line; NoiseLines must match the whole line.
	NoisePhrases []string `yaml:"noisePhrases"`
	NoiseLines   []string `yaml:"noiseLines"`

	// Units are measurement words that, preceded by a digit or fraction,
	// mark a line as an ingredient.
	Units []string `yaml:"units"`

	// Foods are common ingredient nouns accepted without a quantity.
	Foods []string `yaml:"foods"`

	// CookingVerbs mark a line as an instruction step.
	CookingVerbs []string `yaml:"cookingVerbs"`
}

// DefaultVocabulary returns the built-in tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		IngredientHeaders:  []string{"ingredients"},
		InstructionHeaders: []string{"instructions", "directions", "steps", "method"},
		NoisePhrases: []string{
			"save this recipe",
			"save these ingredients",
			"click here",
			"shop ingredients",
			"shop these ingredients",
			"get the recipe",
			"view all recipes",
			"subscribe",
			"sign up for",
			"follow us",
			"jump to recipe",
			"pin this",
			"advertisement",
		},
		NoiseLines: []string{
			"home",
			"about",
			"contact",
			"menu",
			"search",
			"login",
			"log in",
			"privacy policy",
			"terms and conditions",
			"terms of service",
			"rate this recipe",
			"leave a comment",
			"print recipe",
			"share",
		},
		Units: []string{
			"cup", "cups",
			"tablespoon", "tablespoons", "tbsp",
			"teaspoon", "teaspoons", "tsp",
			"ounce", "ounces", "oz",
			"pound", "pounds", "lb", "lbs",
			"gram", "grams", "g", "kg",
			"ml", "l", "liter", "liters", "litre", "litres",
			"clove", "cloves",
			"can", "cans",
			"stick", "sticks",
			"slice", "slices",
			"pinch", "dash",
			"bunch", "sprig", "sprigs",
		},
		Foods: []string{
			"chicken", "beef", "pork", "lamb", "turkey", "bacon", "sausage",
			"fish", "salmon", "tuna", "shrimp",
			"egg", "eggs", "butter", "milk", "cream", "cheese", "yogurt",
			"flour", "sugar", "salt", "pepper", "oil", "vinegar",
			"garlic", "onion", "onions", "tomato", "tomatoes", "potato",
			"potatoes", "carrot", "carrots", "celery", "mushroom",
			"mushrooms", "spinach", "lettuce", "cabbage", "broccoli",
			"pepper", "peppers", "chili", "ginger", "lemon", "lime",
			"apple", "banana", "berries",
			"rice", "pasta", "noodles", "bread", "beans", "lentils",
			"stock", "broth", "water", "wine", "honey", "vanilla",
			"cinnamon", "cumin", "paprika", "oregano", "basil", "thyme",
			"rosemary", "parsley", "cilantro",
			"chocolate", "cocoa", "nuts", "almonds", "walnuts",
		},
		CookingVerbs: []string{
			"preheat", "heat", "mix", "stir", "whisk", "beat", "fold",
			"combine", "add", "pour", "bake", "roast", "grill", "fry",
			"saute", "sauté", "simmer", "boil", "steam", "blanch",
			"chop", "dice", "mince", "slice", "grate", "peel", "season",
			"marinate", "knead", "rest", "chill", "freeze", "cool",
			"drain", "strain", "serve", "garnish", "transfer", "remove",
			"cover", "reduce", "melt", "brown", "toss", "spread", "layer",
			"sprinkle", "drizzle", "blend", "puree", "cook",
		},
	}
}

// LoadVocabulary reads a YAML override file. Tables absent from the file
// keep their defaults, so an override can replace just one list.
func LoadVocabulary(path string) (Vocabulary, error) {
	v := DefaultVocabulary()
	b, err := os.ReadFile(path)
	if err != nil {
		return v, fmt.Errorf("read vocabulary: %w", err)
	}
	var override Vocabulary
	if err := yaml.Unmarshal(b, &override); err != nil {
		return v, fmt.Errorf("decode vocabulary: %w", err)
	}
	if len(override.IngredientHeaders) > 0 {
		v.IngredientHeaders = override.IngredientHeaders
	}
	if len(override.InstructionHeaders) > 0 {
		v.InstructionHeaders = override.InstructionHeaders
	}
	if len(override.NoisePhrases) > 0 {
		v.NoisePhrases = override.NoisePhrases
	}
	if len(override.NoiseLines) > 0 {
		v.NoiseLines = override.NoiseLines
	}
	if len(override.Units) > 0 {
		v.Units = override.Units
	}
	if len(override.Foods) > 0 {
		v.Foods = override.Foods
	}
	if len(override.CookingVerbs) > 0 {
		v.CookingVerbs = override.CookingVerbs
	}
	return v, nil
}
