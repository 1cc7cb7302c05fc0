package lax

import (
	"fmt"
	"testing"
)

func TestMode_ZeroValue(t *testing.T) {
	got := Mode{}
	want := IdentityMode()
	if got != want {
		t.Errorf("Mode{} = %v, want %v", got, want)
	}
	if !got.Div0Identity() {
		t.Errorf("Mode{}.Div0Identity() = false, want true")
	}
}

func TestMode_Interfaces(t *testing.T) {
	var i any = Mode{}
	_, ok := i.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
}

func TestMode_Div0Identity(t *testing.T) {
	tests := []struct {
		m    Mode
		want bool
	}{
		{IdentityMode(), true},
		{StrictMode(), false},
		{Mode{}, true},
	}
	for _, tt := range tests {
		got := tt.m.Div0Identity()
		if got != tt.want {
			t.Errorf("%v.Div0Identity() = %v, want %v", tt.m, got, tt.want)
		}
	}
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{IdentityMode(), "identity"},
		{StrictMode(), "strict"},
	}
	for _, tt := range tests {
		got := tt.m.String()
		if got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
