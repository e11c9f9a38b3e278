package store

import (
	"testing"

	"github.com/roach88/simgroup/internal/param"
)

func TestMarshalParams_SortedAndTyped(t *testing.T) {
	got, err := marshalParams(param.Params{
		"nu": param.Float(1),
		"nx": param.Int(1),
		"ic": param.String("a-b"),
	})
	if err != nil {
		t.Fatalf("marshalParams() failed: %v", err)
	}
	want := `{"ic":"a-b","nu":1.0,"nx":1}`
	if got != want {
		t.Errorf("marshalParams() = %s, want %s", got, want)
	}
}

func TestMarshalParams_Nil(t *testing.T) {
	got, err := marshalParams(nil)
	if err != nil {
		t.Fatalf("marshalParams() failed: %v", err)
	}
	if got != "{}" {
		t.Errorf("marshalParams(nil) = %s, want {}", got)
	}
}

func TestUnmarshalParams(t *testing.T) {
	p, err := unmarshalParams(`{"nu":1.0,"nx":1}`)
	if err != nil {
		t.Fatalf("unmarshalParams() failed: %v", err)
	}
	if p["nu"] != param.Float(1) {
		t.Errorf("nu = %#v, want Float(1)", p["nu"])
	}
	if p["nx"] != param.Int(1) {
		t.Errorf("nx = %#v, want Int(1)", p["nx"])
	}

	empty, err := unmarshalParams("")
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("unmarshalParams(\"\") = %#v, %v", empty, err)
	}

	if _, err := unmarshalParams(`{"nu":`); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestLxyzRoundTrip(t *testing.T) {
	in := [3]float64{6.2832, 1, 0.5}
	data, err := marshalLxyz(in)
	if err != nil {
		t.Fatalf("marshalLxyz() failed: %v", err)
	}
	if data != "[6.2832,1.0,0.5]" {
		t.Errorf("marshalLxyz() = %s", data)
	}

	out, err := unmarshalLxyz(data)
	if err != nil {
		t.Fatalf("unmarshalLxyz() failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}
