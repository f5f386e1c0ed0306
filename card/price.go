package card

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	types "github.com/ProjectsTask/EasySwapKit/types/v1"
)

// PriceKind 价格展示分类
type PriceKind string

const (
	PriceKindFree      PriceKind = "free"      // 零价格
	PriceKindUnderflow PriceKind = "underflow" // 非零但小于最小展示精度
	PriceKindNormal    PriceKind = "normal"
	PriceKindOverflow  PriceKind = "overflow" // 超出展示宽度预算
)

const (
	// displayDecimals 展示精度: 小数点后保留位数
	displayDecimals = 4
	// overflowExp 展示宽度预算: 整数部分达到 10^overflowExp 即判定为 overflow
	overflowExp = 12
)

var (
	underflowFloor  = decimal.New(1, -displayDecimals) // 0.0001, 最小可展示单位
	overflowCeiling = decimal.New(1, overflowExp)
)

// PriceDisplay 价格展示结果
// DisplayText 只用于展示, 原始整数金额保留在 Raw 中, 不丢精度
type PriceDisplay struct {
	Kind        PriceKind       `json:"kind"`
	DisplayText string          `json:"display_text"`
	Symbol      string          `json:"symbol"`
	Raw         decimal.Decimal `json:"raw"`
}

// FormatPrice 将链上原始整数金额按币种精度归一化为展示价格
// 规则:
// 1. 金额为 0 -> free
// 2. 缩放后整数部分达到 10^12 -> overflow, 展示取整后的值
// 3. 缩放后在展示精度(4位小数)下四舍五入为 0 -> underflow, 展示最小可展示单位
// 4. 其余 -> normal, 按展示精度四舍五入并去除尾随零
// 纯函数, 对任意非负整数输入和 [0,255] 内的 decimals 不会 panic;
// 负数或非整数输入直接报错 (fail fast), 不做静默纠正
func FormatPrice(rawAmount string, currency types.Currency) (PriceDisplay, error) {
	raw, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return PriceDisplay{}, errors.Wrapf(err, "invalid raw amount: %q", rawAmount)
	}
	if raw.IsNegative() {
		return PriceDisplay{}, errors.Errorf("raw amount must be non-negative, got %q", rawAmount)
	}
	if !raw.IsInteger() {
		return PriceDisplay{}, errors.Errorf("raw amount must be an integer, got %q", rawAmount)
	}

	if raw.IsZero() {
		return PriceDisplay{Kind: PriceKindFree, Symbol: currency.Symbol, Raw: raw}, nil
	}

	value := raw.Shift(-int32(currency.Decimals))

	if value.GreaterThanOrEqual(overflowCeiling) {
		return PriceDisplay{
			Kind:        PriceKindOverflow,
			DisplayText: value.Round(0).String(),
			Symbol:      currency.Symbol,
			Raw:         raw,
		}, nil
	}

	rounded := value.Round(displayDecimals)
	if rounded.IsZero() {
		// 太小无法有效展示, 给出最小可展示单位而不是 "0"
		return PriceDisplay{
			Kind:        PriceKindUnderflow,
			DisplayText: underflowFloor.String(),
			Symbol:      currency.Symbol,
			Raw:         raw,
		}, nil
	}

	return PriceDisplay{
		Kind:        PriceKindNormal,
		DisplayText: rounded.String(),
		Symbol:      currency.Symbol,
		Raw:         raw,
	}, nil
}

// parseAmount 解析非负整数字符串 (余额/数量)
// 后端数据理论上总是合法的, 但垃圾输入必须报错而不是得到一个看似合理的错误数字
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid integer string: %q", s)
	}
	if d.IsNegative() || !d.IsInteger() {
		return decimal.Zero, errors.Errorf("amount must be a non-negative integer, got %q", s)
	}
	return d, nil
}
