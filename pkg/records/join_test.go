package records

import (
	"reflect"
	"testing"
)

func TestJoinDescriptions_MatchFound(t *testing.T) {
	primary := []Record{{"appid": 1, "classid": "A"}}
	secondary := []Record{{"appid": 1, "classid": "A", "name": "Widget"}}

	got := JoinDescriptions(primary, secondary, "appid", "classid")
	want := []Record{{"appid": 1, "classid": "A", "name": "Widget"}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("JoinDescriptions() = %v, want %v", got, want)
	}
}

func TestJoinDescriptions_NoMatch(t *testing.T) {
	primary := []Record{{"appid": 1, "classid": "A"}}
	secondary := []Record{{"appid": 2, "classid": "A", "name": "Other"}}

	got := JoinDescriptions(primary, secondary, "appid", "classid")
	want := []Record{{"appid": 1, "classid": "A"}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("JoinDescriptions() = %v, want %v", got, want)
	}
}

func TestJoinDescriptions_DescriptionFieldsWin(t *testing.T) {
	primary := []Record{{"appid": 1, "classid": "A", "name": "old"}}
	secondary := []Record{{"appid": 1, "classid": "A", "name": "new"}}

	got := JoinDescriptions(primary, secondary, "appid", "classid")

	if got[0]["name"] != "new" {
		t.Errorf("merged name = %v, want %q (description fields take precedence)", got[0]["name"], "new")
	}
}

func TestJoinDescriptions_FirstDescriptionWins(t *testing.T) {
	primary := []Record{{"appid": 1, "classid": "A"}}
	secondary := []Record{
		{"appid": 1, "classid": "A", "name": "first"},
		{"appid": 1, "classid": "A", "name": "second"},
	}

	got := JoinDescriptions(primary, secondary, "appid", "classid")

	if got[0]["name"] != "first" {
		t.Errorf("merged name = %v, want %q (first description per key wins)", got[0]["name"], "first")
	}
}

func TestJoinDescriptions_LengthAndOrderPreserved(t *testing.T) {
	primary := []Record{
		{"appid": 1, "classid": "C"},
		{"appid": 1, "classid": "A"},
		{"appid": 1, "classid": "B"},
	}
	secondary := []Record{
		{"appid": 1, "classid": "A", "name": "a"},
		{"appid": 1, "classid": "B", "name": "b"},
	}

	got := JoinDescriptions(primary, secondary, "appid", "classid")

	if len(got) != len(primary) {
		t.Fatalf("JoinDescriptions() length = %d, want %d", len(got), len(primary))
	}

	wantClassIDs := []string{"C", "A", "B"}
	for i, rec := range got {
		if rec["classid"] != wantClassIDs[i] {
			t.Errorf("result[%d] classid = %v, want %v", i, rec["classid"], wantClassIDs[i])
		}
	}
}

func TestJoinDescriptions_InputsNotMutated(t *testing.T) {
	primary := []Record{{"appid": 1, "classid": "A"}}
	secondary := []Record{{"appid": 1, "classid": "A", "name": "Widget"}}

	JoinDescriptions(primary, secondary, "appid", "classid")

	if _, ok := primary[0]["name"]; ok {
		t.Error("JoinDescriptions mutated a primary record")
	}
	if !reflect.DeepEqual(secondary[0], Record{"appid": 1, "classid": "A", "name": "Widget"}) {
		t.Errorf("JoinDescriptions mutated a secondary record: %v", secondary[0])
	}
}

func TestJoinDescriptions_MixedKeyForms(t *testing.T) {
	// Steam returns ids as strings in descriptions but numbers in assets;
	// both must join.
	primary := []Record{{"appid": 440, "classid": "A"}}
	secondary := []Record{{"appid": "440", "classid": "A", "name": "Widget"}}

	got := JoinDescriptions(primary, secondary, "appid", "classid")

	if got[0]["name"] != "Widget" {
		t.Errorf("merged name = %v, want %q", got[0]["name"], "Widget")
	}
}
