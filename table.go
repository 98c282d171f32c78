package ics

import (
	"fmt"
	"strings"
)

// DefaultValueColumn names the value column when none is given.
const DefaultValueColumn = "content"

// Table is a row per property projection of a component's properties.
type Table struct {
	Columns []string
	Rows    [][]any
}

// PropertiesToTable flattens the properties of kind into a table. The first
// column holds each property's decoded value and is named valueColumn; one
// further column follows per parameter kind in params. Missing parameters
// are nil cells.
func (c *Component) PropertiesToTable(kind PropertyKind, valueColumn string, params ...ParameterKind) (*Table, error) {
	if err := c.initialized(); err != nil {
		return nil, err
	}
	if valueColumn == "" {
		valueColumn = DefaultValueColumn
	}
	t := &Table{Columns: []string{valueColumn}}
	for _, pk := range params {
		k, ok := ParameterKinds.Parse(string(pk))
		if !ok || !k.instantiable() {
			return nil, fmt.Errorf("%w: %q is not a parameter kind", ErrBadParameters, pk)
		}
		t.Columns = append(t.Columns, string(k))
	}
	for it := c.Properties(kind); it.Advance(); {
		p := it.Item()
		v, err := p.Value()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name(), err)
		}
		row := make([]any, 0, len(t.Columns))
		row = append(row, v)
		for _, pk := range t.Columns[1:] {
			if param := p.Parameter(ParameterKind(pk)); param != nil {
				row = append(row, param.Value())
			} else {
				row = append(row, nil)
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// tableColumn maps a table column onto the value or a parameter.
type tableColumn struct {
	value bool
	kind  ParameterKind
}

func resolveColumns(columns []string, valueColumn string) ([]tableColumn, error) {
	out := make([]tableColumn, len(columns))
	haveValue := false
	for i, name := range columns {
		switch {
		case valueColumn != "" && strings.EqualFold(name, valueColumn):
			out[i].value = true
		case valueColumn == "" && !ParameterKindFromName(name).instantiable():
			out[i].value = true
		default:
			k := ParameterKindFromName(name)
			switch {
			case k == ParameterX:
				out[i].kind = ParameterKind(normalizeName(name))
			case k.instantiable():
				out[i].kind = k
			default:
				return nil, fmt.Errorf("%w: column %q is not a parameter", ErrBadParameters, name)
			}
			continue
		}
		if haveValue {
			return nil, fmt.Errorf("%w: more than one value column, %q", ErrBadParameters, name)
		}
		haveValue = true
	}
	return out, nil
}

// TableToProperties adds one property of kind per row of t, in row order,
// and returns the added properties. The column matching valueColumn, case
// insensitively, sets the value; other columns are matched to parameter
// kinds by name. With an empty valueColumn the one column that does not
// name a parameter is the value. Nil cells are skipped.
func (c *Component) TableToProperties(kind PropertyKind, valueColumn string, t *Table) ([]*Property, error) {
	if err := c.initialized(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: no table given", ErrBadParameters)
	}
	cols, err := resolveColumns(t.Columns, valueColumn)
	if err != nil {
		return nil, err
	}
	var added []*Property
	for ri, row := range t.Rows {
		if len(row) > len(cols) {
			return added, fmt.Errorf("%w: row %d has %d cells for %d columns", ErrBadParameters, ri, len(row), len(cols))
		}
		p, err := NewProperty(kind)
		if err != nil {
			return added, err
		}
		for ci, cell := range row {
			if cell == nil {
				continue
			}
			if cols[ci].value {
				if err := p.SetValue(cell); err != nil {
					return added, fmt.Errorf("row %d: %w", ri, err)
				}
				continue
			}
			param, err := NewParameter(cols[ci].kind, cell)
			if err != nil {
				return added, fmt.Errorf("row %d, column %s: %w", ri, t.Columns[ci], err)
			}
			if _, err := p.AddParameter(param); err != nil {
				return added, err
			}
		}
		p.parent = c
		c.properties = append(c.properties, p)
		added = append(added, p)
	}
	return added, nil
}
