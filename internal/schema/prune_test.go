package schema

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPruneEmpty(t *testing.T) {
	doc := Doc{
		"@type":  "Organization",
		"name":   "Acme",
		"empty":  "",
		"blank":  "   ",
		"nilval": nil,
		"nested": Doc{
			"keep": "yes",
			"drop": "",
			"deep": Doc{"gone": nil},
		},
		"list":    []any{"a", "", nil, Doc{}, Doc{"x": "y"}},
		"strings": []string{"one", "", "two"},
		"zero":    0,
		"falsy":   false,
	}

	got := PruneEmpty(doc).(Doc)

	want := Doc{
		"@type":   "Organization",
		"name":    "Acme",
		"nested":  Doc{"keep": "yes"},
		"list":    []any{"a", Doc{"x": "y"}},
		"strings": []string{"one", "two"},
		"zero":    0,
		"falsy":   false,
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("PruneEmpty = %#v, want %#v", got, want)
	}
}

func TestPruneEmptyIdempotent(t *testing.T) {
	doc := Doc{
		"name": "Acme",
		"sub":  Doc{"a": "", "b": Doc{"c": []any{}}},
	}

	once := PruneEmpty(doc)
	twice := PruneEmpty(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("PruneEmpty not idempotent: %#v vs %#v", once, twice)
	}
}

func TestOneOrManyMarshal(t *testing.T) {
	single := OneOrMany{Doc{"@type": "City", "name": "Austin"}}

	data, err := json.Marshal(single)
	if err != nil {
		t.Fatalf("marshal single: %v", err)
	}

	if data[0] != '{' {
		t.Errorf("single element should marshal as object, got %s", data)
	}

	many := OneOrMany{Doc{"name": "Austin"}, Doc{"name": "Dallas"}}

	data, err = json.Marshal(many)
	if err != nil {
		t.Fatalf("marshal many: %v", err)
	}

	if data[0] != '[' {
		t.Errorf("multiple elements should marshal as array, got %s", data)
	}
}
