package schema

import (
	"testing"

	"github.com/aloksingh/parquet-core/format"
)

func i32(v int32) *int32                               { return &v }
func rep(v format.FieldRepetitionType) *format.FieldRepetitionType { return &v }
func typ(v format.Type) *format.Type                    { return &v }

func TestBuildFlatSchema(t *testing.T) {
	elements := []format.SchemaElement{
		{Name: "root", NumChildren: i32(2)},
		{Name: "id", Type: typ(format.Int64), RepetitionType: rep(format.Required)},
		{Name: "name", Type: typ(format.ByteArray), RepetitionType: rep(format.Optional)},
	}

	s, err := Build(elements)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(s.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(s.Columns))
	}
	if s.Columns[0].MaxDefinitionLevel != 0 {
		t.Fatalf("id: expected def level 0, got %d", s.Columns[0].MaxDefinitionLevel)
	}
	if s.Columns[1].MaxDefinitionLevel != 1 {
		t.Fatalf("name: expected def level 1, got %d", s.Columns[1].MaxDefinitionLevel)
	}
	for _, c := range s.Logical {
		if c.Kind != Primitive {
			t.Fatalf("expected all primitive logical columns, got %v", c.Kind)
		}
	}
}

func TestBuildMapSchema(t *testing.T) {
	elements := []format.SchemaElement{
		{Name: "root", NumChildren: i32(1)},
		{Name: "scores", RepetitionType: rep(format.Optional), NumChildren: i32(1)},
		{Name: "key_value", RepetitionType: rep(format.Repeated), NumChildren: i32(2)},
		{Name: "key", Type: typ(format.ByteArray), RepetitionType: rep(format.Required)},
		{Name: "value", Type: typ(format.Int32), RepetitionType: rep(format.Optional)},
	}

	s, err := Build(elements)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(s.Columns) != 2 {
		t.Fatalf("expected 2 physical columns, got %d", len(s.Columns))
	}
	if len(s.Logical) != 1 {
		t.Fatalf("expected 1 logical column, got %d", len(s.Logical))
	}
	if s.Logical[0].Kind != Map {
		t.Fatalf("expected MAP logical column, got %v", s.Logical[0].Kind)
	}
	if s.Logical[0].Name != "scores" {
		t.Fatalf("expected map name 'scores', got %q", s.Logical[0].Name)
	}

	key := s.Columns[s.Logical[0].KeyLeaf]
	value := s.Columns[s.Logical[0].ValueLeaf]
	if key.MaxRepetitionLevel != 1 || value.MaxRepetitionLevel != 1 {
		t.Fatalf("expected rep level 1 for key/value, got %d/%d", key.MaxRepetitionLevel, value.MaxRepetitionLevel)
	}
	if key.MaxDefinitionLevel != 2 {
		t.Fatalf("expected key def level 2, got %d", key.MaxDefinitionLevel)
	}
	if value.MaxDefinitionLevel != 3 {
		t.Fatalf("expected value def level 3, got %d", value.MaxDefinitionLevel)
	}
}

func TestBuildListSchema(t *testing.T) {
	elements := []format.SchemaElement{
		{Name: "root", NumChildren: i32(1)},
		{Name: "tags", Type: typ(format.ByteArray), RepetitionType: rep(format.Repeated)},
	}

	s, err := Build(elements)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if s.Logical[0].Kind != List {
		t.Fatalf("expected LIST logical column, got %v", s.Logical[0].Kind)
	}
}
