package utils

import (
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

var (
	// validatorM 存储自定义的验证器函数映射
	// key: 验证规则名称 ("symbol", "address")
	// value: 验证函数实现
	validatorM map[string]validator.Func
	// patternM 存储正则表达式模式映射
	patternM map[string]string
)

func init() {
	validatorM = map[string]validator.Func{
		"symbol":  rightSymbol,     // 验证代币符号长度
		"address": regexpValidator, // 使用正则验证地址格式
	}
	patternM = map[string]string{
		// 以太坊地址正则: 0x开头,后接40位16进制字符
		"address": `^0x[a-fA-F0-9]{40}$`,
	}
}

var (
	// rightSymbol 验证代币符号(Symbol)是否合法: 必须是字符串且长度小于 10
	rightSymbol validator.Func = func(fl validator.FieldLevel) bool {
		symbol, ok := fl.Field().Interface().(string)
		if ok {
			return len(symbol) < 10
		}
		return false
	}

	// regexpValidator 通用正则验证器
	// 根据 tag 中指定的模式名称(如 "address")查找对应的正则表达式并进行匹配
	regexpValidator validator.Func = func(fl validator.FieldLevel) bool {
		key, _ := fl.Field().Interface().(string)
		pattern, ok := patternM[fl.GetTag()]
		if ok {
			match, _ := regexp.MatchString(pattern, key)
			return match
		}
		return false
	}
)

// NewValidator 创建注册了自定义规则的验证器实例
func NewValidator() *validator.Validate {
	v := validator.New()
	for name, fn := range validatorM {
		_ = v.RegisterValidation(name, fn)
	}
	return v
}

// IsHexAddress 判断字符串是否为合法的以太坊地址
func IsHexAddress(address string) bool {
	return common.IsHexAddress(address)
}

// ToValidateAddress 将以太坊地址转换为校验和格式 (EIP-55 Checksum Address)
func ToValidateAddress(address string) string {
	return common.HexToAddress(address).Hex()
}

// AddressEqual 地址比较, 忽略大小写差异
// 空地址与任何地址都不相等
func AddressEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return common.HexToAddress(a) == common.HexToAddress(b)
}
