package address

import "testing"

func TestIncrement_TwoOctet(t *testing.T) {
	p := MustParsePattern("192.168")

	tests := []struct {
		name string
		in   TwoOctetAddress
		want TwoOctetAddress
	}{
		{"plain", TwoOctetAddress{p, 10, 20}, TwoOctetAddress{p, 10, 21}},
		{"carry", TwoOctetAddress{p, 10, 255}, TwoOctetAddress{p, 11, 0}},
		{"wraparound", TwoOctetAddress{p, 255, 255}, TwoOctetAddress{p, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Increment(tt.in)
			if got != Address(tt.want) {
				t.Errorf("Increment(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestIncrement_ThreeOctet(t *testing.T) {
	p := MustParsePattern("10")

	tests := []struct {
		name string
		in   ThreeOctetAddress
		want ThreeOctetAddress
	}{
		{"plain", ThreeOctetAddress{p, 1, 2, 3}, ThreeOctetAddress{p, 1, 2, 4}},
		{"carry fourth", ThreeOctetAddress{p, 1, 2, 255}, ThreeOctetAddress{p, 1, 3, 0}},
		{"carry third", ThreeOctetAddress{p, 10, 255, 255}, ThreeOctetAddress{p, 11, 0, 0}},
		{"wraparound", ThreeOctetAddress{p, 255, 255, 255}, ThreeOctetAddress{p, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Increment(tt.in)
			if got != Address(tt.want) {
				t.Errorf("Increment(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestIncrement_DoesNotMutateInput(t *testing.T) {
	in := TwoOctetAddress{MustParsePattern("192.168"), 1, 1}
	_ = Increment(in)

	if in.Fourth != 1 {
		t.Errorf("input mutated: %s", in)
	}
}

func TestIncrement_KeepsShape(t *testing.T) {
	addr, _ := FromString("shape", "", "10")
	for i := 0; i < 300; i++ {
		addr = Increment(addr)
	}
	if _, ok := addr.(ThreeOctetAddress); !ok {
		t.Errorf("Increment changed shape to %T", addr)
	}
	if addr.Pattern().String() != "10" {
		t.Errorf("Pattern() = %q, want %q", addr.Pattern().String(), "10")
	}
}
