package httpjson

import (
	"testing"
)

var pruneTable = map[string]MessageJSONInfo{
	"shop.Item": {
		OmitEmpty:     map[string]bool{"sku": true, "details": true},
		MessageFields: map[string]string{"details": "shop.Details"},
	},
	"shop.Details": {
		OmitEmpty: map[string]bool{"description": true},
	},
}

func TestPruneEmpty(t *testing.T) {
	in := []byte(`{"sku":"","quantity":0,"details":null}`)
	got, err := pruneEmpty(in, "shop.Item", pruneTable)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"quantity":0}` {
		t.Errorf("got %s", got)
	}
}

func TestPruneEmptyKeepsPopulated(t *testing.T) {
	in := []byte(`{"sku":"a-1","quantity":3,"details":{"description":""}}`)
	got, err := pruneEmpty(in, "shop.Item", pruneTable)
	if err != nil {
		t.Fatal(err)
	}
	// nested pruning applies through the message-field link; re-encoded
	// output has stable alphabetical key order
	if string(got) != `{"details":{},"quantity":3,"sku":"a-1"}` {
		t.Errorf("got %s", got)
	}
}

func TestPruneEmptyUnknownMessage(t *testing.T) {
	in := []byte(`{"sku":""}`)
	got, err := pruneEmpty(in, "shop.Unknown", pruneTable)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(in) {
		t.Errorf("unknown messages must pass through untouched, got %s", got)
	}
}

func TestPruneEmptyOnlyAnnotatedFields(t *testing.T) {
	// quantity is not annotated, so a zero stays even though sku goes
	in := []byte(`{"sku":"","quantity":0}`)
	got, err := pruneEmpty(in, "shop.Item", pruneTable)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"quantity":0}` {
		t.Errorf("got %s", got)
	}
}

func TestPruneEmptyBadInput(t *testing.T) {
	if _, err := pruneEmpty([]byte(`[1,2]`), "shop.Item", pruneTable); err == nil {
		t.Fatal("expected error for non-object input")
	}
}
