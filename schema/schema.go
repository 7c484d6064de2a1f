// Package schema derives the physical column layout (leaves, definition
// and repetition levels) and the logical column layout (PRIMITIVE, LIST,
// MAP) from a flat sequence of Thrift SchemaElement records, the same
// shape a Parquet FileMetaData carries its schema tree in.
package schema

import (
	"fmt"

	"github.com/aloksingh/parquet-core/format"
)

// ColumnDescriptor describes one physical leaf column.
type ColumnDescriptor struct {
	PhysicalType       format.Type
	Path               []string
	MaxDefinitionLevel uint32
	MaxRepetitionLevel uint32
	TypeLength         int32
}

// LogicalKind identifies the shape a LogicalColumnDescriptor represents.
type LogicalKind int

const (
	Primitive LogicalKind = iota
	List
	Map
)

// LogicalColumnDescriptor groups one or more physical columns into a
// PRIMITIVE, LIST, or MAP logical column.
type LogicalColumnDescriptor struct {
	Kind LogicalKind
	Name string

	// Primitive / List: index into Columns for the (sole) leaf.
	Leaf int
	// Map: indices into Columns for the key and value leaves.
	KeyLeaf   int
	ValueLeaf int
}

// Schema is the derived physical and logical column layout of a file's
// schema tree.
type Schema struct {
	Columns  []ColumnDescriptor
	Logical  []LogicalColumnDescriptor
	elements []format.SchemaElement
}

// Build walks a flat SchemaElement sequence (as stored in FileMetaData,
// root element first) and derives the physical and logical column layout.
func Build(elements []format.SchemaElement) (*Schema, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("schema: empty schema element list")
	}

	s := &Schema{elements: elements}
	_, err := s.walk(0, nil, 0, 0)
	if err != nil {
		return nil, err
	}
	s.Logical = deriveLogical(s.Columns)
	return s, nil
}

// walk consumes the subtree rooted at index i (depth first, matching the
// order SchemaElement.NumChildren encodes) and returns the index just past
// the subtree. The root element itself contributes no path segment.
func (s *Schema) walk(i int, path []string, defLevel, repLevel uint32) (int, error) {
	el := s.elements[i]

	isRoot := i == 0
	if !isRoot {
		if el.RepetitionType != nil {
			switch *el.RepetitionType {
			case format.Optional:
				defLevel++
			case format.Repeated:
				defLevel++
				repLevel++
			}
		}
		path = append(append([]string(nil), path...), el.Name)
	}

	numChildren := 0
	if el.NumChildren != nil {
		numChildren = int(*el.NumChildren)
	}
	next := i + 1

	if numChildren == 0 {
		if el.Type == nil {
			return next, fmt.Errorf("schema: leaf %v missing physical type", path)
		}
		var typeLength int32
		if el.TypeLength != nil {
			typeLength = *el.TypeLength
		}
		s.Columns = append(s.Columns, ColumnDescriptor{
			PhysicalType:       *el.Type,
			Path:               path,
			MaxDefinitionLevel: defLevel,
			MaxRepetitionLevel: repLevel,
			TypeLength:         typeLength,
		})
		return next, nil
	}

	for c := 0; c < numChildren; c++ {
		var err error
		next, err = s.walk(next, path, defLevel, repLevel)
		if err != nil {
			return next, err
		}
	}
	return next, nil
}

// deriveLogical groups physical columns into PRIMITIVE/LIST/MAP logical
// columns. A MAP is auto-detected from the canonical
// [name, "key_value", "key"] / [name, "key_value", "value"] path pair;
// every other column is a standalone PRIMITIVE. LIST is exposed
// indirectly through its repeated leaf (§4.C12) rather than as a distinct
// grouped logical column, matching the physical-column-driven read path.
func deriveLogical(columns []ColumnDescriptor) []LogicalColumnDescriptor {
	var logical []LogicalColumnDescriptor

	consumed := make([]bool, len(columns))
	for i, col := range columns {
		if consumed[i] || !isMapKeyPath(col.Path) {
			continue
		}
		mapName := col.Path[len(col.Path)-3]
		valueIdx := findMapValue(columns, mapName, i)
		if valueIdx < 0 {
			continue
		}
		consumed[i] = true
		consumed[valueIdx] = true
		logical = append(logical, LogicalColumnDescriptor{
			Kind:      Map,
			Name:      mapName,
			KeyLeaf:   i,
			ValueLeaf: valueIdx,
		})
	}

	for i, col := range columns {
		if consumed[i] {
			continue
		}
		name := col.Path[len(col.Path)-1]
		kind := Primitive
		if col.MaxRepetitionLevel > 0 {
			kind = List
		}
		logical = append(logical, LogicalColumnDescriptor{
			Kind: kind,
			Name: name,
			Leaf: i,
		})
	}

	return logical
}

func isMapKeyPath(path []string) bool {
	return len(path) >= 3 && path[len(path)-2] == "key_value" && path[len(path)-1] == "key"
}

func findMapValue(columns []ColumnDescriptor, mapName string, keyIdx int) int {
	for i, col := range columns {
		if i == keyIdx {
			continue
		}
		p := col.Path
		if len(p) >= 3 && p[len(p)-3] == mapName && p[len(p)-2] == "key_value" && p[len(p)-1] == "value" {
			return i
		}
	}
	return -1
}
