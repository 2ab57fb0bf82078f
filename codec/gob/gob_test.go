package gob

import (
	"testing"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/x-gob" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/x-gob")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string
		Value int
	}

	original := TestStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored TestStruct
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshalScalar(t *testing.T) {
	c := New()

	data, err := c.Marshal(42)
	if err != nil {
		t.Fatalf("Marshal(int) error: %v", err)
	}

	var restored int
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != 42 {
		t.Errorf("round-trip failed: got %d, want 42", restored)
	}
}

func TestMarshalUntransmittable(t *testing.T) {
	c := New()

	if _, err := c.Marshal(func() {}); err == nil {
		t.Error("Marshal(func) should return error")
	}
	if _, err := c.Marshal(make(chan int)); err == nil {
		t.Error("Marshal(chan) should return error")
	}
	if _, err := c.Marshal(nil); err == nil {
		t.Error("Marshal(nil) should return error")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct{}
	err := c.Unmarshal([]byte("not gob data"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
