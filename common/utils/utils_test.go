package utils

import "testing"

func TestToValidateAddress(t *testing.T) {
	// EIP-55 已知向量
	tests := []struct {
		in   string
		want string
	}{
		{"0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359", "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"},
		{"0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"},
	}
	for _, tt := range tests {
		if got := ToValidateAddress(tt.in); got != tt.want {
			t.Errorf("ToValidateAddress(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAddressEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", "0xD8DA6BF26964AF9D7EED9E03E53415D37AA96045", true},
		{"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", "0x0000000000000000000000000000000000000AAA", false},
		{"", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := AddressEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("AddressEqual(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsHexAddress(t *testing.T) {
	if !IsHexAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045") {
		t.Error("expected valid address")
	}
	if IsHexAddress("0x123") {
		t.Error("expected invalid address")
	}
}

func TestValidatorAddressRule(t *testing.T) {
	v := NewValidator()

	type param struct {
		Addr string `validate:"required,address"`
	}

	if err := v.Struct(param{Addr: "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"}); err != nil {
		t.Errorf("unexpected error for valid address: %v", err)
	}
	if err := v.Struct(param{Addr: "not-an-address"}); err == nil {
		t.Error("expected error for invalid address")
	}
}

func TestValidatorSymbolRule(t *testing.T) {
	v := NewValidator()

	type param struct {
		Symbol string `validate:"symbol"`
	}

	if err := v.Struct(param{Symbol: "USDC"}); err != nil {
		t.Errorf("unexpected error for valid symbol: %v", err)
	}
	if err := v.Struct(param{Symbol: "WAYTOOLONGSYMBOL"}); err == nil {
		t.Error("expected error for overlong symbol")
	}
}
