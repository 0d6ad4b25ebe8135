package hashtag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tagmix/tagmix/internal/hashtag"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantRoots    []string
		wantSuffixes []string
	}{
		{
			name:         "russian labels on separate lines",
			input:        "Корни: a, b, c\nСуффиксы: x, y",
			wantRoots:    []string{"a", "b", "c"},
			wantSuffixes: []string{"x", "y"},
		},
		{
			name:         "english labels on one line",
			input:        "roots: a,b suffixes: c,d",
			wantRoots:    []string{"a", "b"},
			wantSuffixes: []string{"c", "d"},
		},
		{
			name:         "uppercase labels",
			input:        "КОРНИ: кот СУФФИКСЫ: дом",
			wantRoots:    []string{"кот"},
			wantSuffixes: []string{"дом"},
		},
		{
			name:         "space before colon",
			input:        "Корни : a Суффиксы : b",
			wantRoots:    []string{"a"},
			wantSuffixes: []string{"b"},
		},
		{
			name:         "blank entries between commas dropped",
			input:        "Корни: a, , b Суффиксы: x",
			wantRoots:    []string{"a", "b"},
			wantSuffixes: []string{"x"},
		},
		{
			name:      "suffixes label missing",
			input:     "Корни: a, b",
			wantRoots: []string{"a", "b"},
		},
		{
			name:         "roots label missing",
			input:        "Суффиксы: x, y",
			wantSuffixes: []string{"x", "y"},
		},
		{
			name:  "no labels at all",
			input: "просто произвольный текст",
		},
		{
			name:  "empty input",
			input: "",
		},
		{
			name:         "suffixes before roots",
			input:        "Суффиксы: x, y Корни: a, b",
			wantRoots:    []string{"a", "b"},
			wantSuffixes: []string{"x", "y"},
		},
		{
			name:         "empty roots segment before suffixes",
			input:        "Корни: Суффиксы: x",
			wantSuffixes: []string{"x"},
		},
		{
			name:         "whitespace runs collapsed",
			input:        "Корни:\n\tотопление ,\n   котел\nСуффиксы:\tмосква",
			wantRoots:    []string{"отопление", "котел"},
			wantSuffixes: []string{"москва"},
		},
		{
			name:         "duplicates kept at parse time",
			input:        "Корни: a, a Суффиксы: x",
			wantRoots:    []string{"a", "a"},
			wantSuffixes: []string{"x"},
		},
		{
			name:         "entry casing preserved",
			input:        "Корни: Отопление Суффиксы: МСК",
			wantRoots:    []string{"Отопление"},
			wantSuffixes: []string{"МСК"},
		},
		{
			name:         "multi-word entries survive",
			input:        "Корни: натяжные потолки, окна Суффиксы: спб",
			wantRoots:    []string{"натяжные потолки", "окна"},
			wantSuffixes: []string{"спб"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots, suffixes := hashtag.ParseInput(tt.input)
			assert.Equal(t, tt.wantRoots, roots)
			assert.Equal(t, tt.wantSuffixes, suffixes)
		})
	}
}

func TestParseInputOrderPreserved(t *testing.T) {
	roots, suffixes := hashtag.ParseInput("Корни: z, a, m Суффиксы: 3, 1, 2")

	assert.Equal(t, []string{"z", "a", "m"}, roots)
	assert.Equal(t, []string{"3", "1", "2"}, suffixes)
}
