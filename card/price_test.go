package card

import (
	"fmt"
	"testing"

	types "github.com/ProjectsTask/EasySwapKit/types/v1"
)

func usdc(decimals uint8) types.Currency {
	return types.Currency{
		ContractAddress: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		ChainID:         1,
		Symbol:          "USDC",
		Decimals:        decimals,
	}
}

func TestFormatPrice_ZeroIsFree(t *testing.T) {
	for _, decimals := range []uint8{0, 6, 18, 255} {
		got, err := FormatPrice("0", usdc(decimals))
		if err != nil {
			t.Fatalf("decimals=%d: unexpected error: %v", decimals, err)
		}
		if got.Kind != PriceKindFree {
			t.Errorf("decimals=%d: expected kind=free, got %s", decimals, got.Kind)
		}
	}
}

func TestFormatPrice_Normal(t *testing.T) {
	tests := []struct {
		raw      string
		decimals uint8
		want     string
	}{
		{"1000000000000000000", 18, "1"},   // 1e18 raw at 18 decimals
		{"1500000000000000000", 18, "1.5"},
		{"123456789", 6, "123.4568"}, // 四舍五入到展示精度
		{"50", 6, "0.0001"},          // 0.00005 恰好进位到最小展示单位
		{"42", 0, "42"},
		{"999999999999", 0, "999999999999"}, // 上限以下最后一个整数
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.raw, tt.decimals), func(t *testing.T) {
			got, err := FormatPrice(tt.raw, usdc(tt.decimals))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Kind != PriceKindNormal {
				t.Fatalf("expected kind=normal, got %s", got.Kind)
			}
			if got.DisplayText != tt.want {
				t.Errorf("FormatPrice(%s, %d) = %q, want %q", tt.raw, tt.decimals, got.DisplayText, tt.want)
			}
			if got.Symbol != "USDC" {
				t.Errorf("expected symbol USDC, got %q", got.Symbol)
			}
		})
	}
}

func TestFormatPrice_Underflow(t *testing.T) {
	tests := []struct {
		raw      string
		decimals uint8
	}{
		{"1", 18}, // 1e-18, 远小于展示精度
		{"49", 6}, // 0.000049, 四舍五入为 0
		{"1", 5},
	}

	for _, tt := range tests {
		got, err := FormatPrice(tt.raw, usdc(tt.decimals))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Kind != PriceKindUnderflow {
			t.Errorf("FormatPrice(%s, %d): expected kind=underflow, got %s", tt.raw, tt.decimals, got.Kind)
		}
		// 展示最小可展示单位而不是 "0"
		if got.DisplayText != "0.0001" {
			t.Errorf("FormatPrice(%s, %d) = %q, want 0.0001", tt.raw, tt.decimals, got.DisplayText)
		}
	}
}

func TestFormatPrice_Overflow(t *testing.T) {
	// 1e30 raw at 18 decimals = 1e12, 达到展示宽度预算
	got, err := FormatPrice("1000000000000000000000000000000", usdc(18))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != PriceKindOverflow {
		t.Fatalf("expected kind=overflow, got %s", got.Kind)
	}
	if got.DisplayText != "1000000000000" {
		t.Errorf("expected display 1000000000000, got %q", got.DisplayText)
	}
}

// 对任意非负整数输入和 [0,255] 内的 decimals, 必须恰好返回四种分类之一且不报错
func TestFormatPrice_NeverFails(t *testing.T) {
	amounts := []string{"0", "1", "999", "1000000", "1000000000000000000", "123456789012345678901234567890"}
	kinds := map[PriceKind]bool{
		PriceKindFree:      true,
		PriceKindUnderflow: true,
		PriceKindNormal:    true,
		PriceKindOverflow:  true,
	}

	for d := 0; d <= 255; d++ {
		for _, raw := range amounts {
			got, err := FormatPrice(raw, usdc(uint8(d)))
			if err != nil {
				t.Fatalf("FormatPrice(%s, %d): unexpected error: %v", raw, d, err)
			}
			if !kinds[got.Kind] {
				t.Fatalf("FormatPrice(%s, %d): unknown kind %q", raw, d, got.Kind)
			}
		}
	}
}

func TestFormatPrice_InvalidInput(t *testing.T) {
	for _, raw := range []string{"", "abc", "-5", "1.5", "0x10"} {
		if _, err := FormatPrice(raw, usdc(18)); err == nil {
			t.Errorf("expected error for raw amount %q", raw)
		}
	}
}
