package cli

import "encoding/json"

// Item is a single command result. JSON mode encodes Value as-is, quiet
// mode prints ID and human mode prints Text.
type Item struct {
	Value any
	ID    int
	Text  string
}

func (i Item) GetID() int                   { return i.ID }
func (i Item) Human() string                { return i.Text }
func (i Item) MarshalJSON() ([]byte, error) { return json.Marshal(i.Value) }

// List is a multi-row command result
type List struct {
	Values any
	IDList []int
	Text   string
}

func (l List) IDs() []int                   { return l.IDList }
func (l List) Human() string                { return l.Text }
func (l List) MarshalJSON() ([]byte, error) { return json.Marshal(l.Values) }
