package recordstore

import (
	"errors"
	"fmt"
	"strings"
)

// 过滤公式是一段在存储服务那边求值的表达式
// 用户输入（昵称之类的）会被拼进去，所以这里必须转义
// 老版本是裸字符串插值，属于注入漏洞，不保留

var ErrUnsafeFormulaValue = errors.New("recordstore: 公式的值里面有非法字符")

// EscapeValue 转义一个要拼进公式单引号字符串里的值
// 控制字符直接拒绝，没有任何正常昵称会带控制字符
func EscapeValue(v string) (string, error) {
	for _, r := range v {
		if r < 0x20 || r == 0x7f {
			return "", ErrUnsafeFormulaValue
		}
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return v, nil
}

// Eq {field} = 'value'
func Eq(field string, value string) (string, error) {
	val, err := EscapeValue(value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("{%s} = '%s'", field, val), nil
}

// EqID RECORD_ID() = 'value'
func EqID(id string) (string, error) {
	val, err := EscapeValue(id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("RECORD_ID() = '%s'", val), nil
}

// Contains 引用列表字段里是否包含某个 id
// ARRAYJOIN 之后用 FIND 找子串，id 是不透明的定长标识，不会误判前缀
func Contains(field string, id string) (string, error) {
	val, err := EscapeValue(id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("FIND('%s', ARRAYJOIN({%s})) > 0", val, field), nil
}

// IsAfter {field} 在某个时间之后，时间是我们自己生成的，不用转义
func IsAfter(field string, iso string) (string, error) {
	val, err := EscapeValue(iso)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("IS_AFTER({%s}, '%s')", field, val), nil
}

func EqBool(field string, b bool) string {
	if b {
		return fmt.Sprintf("{%s} = TRUE()", field)
	}
	return fmt.Sprintf("{%s} = FALSE()", field)
}

func And(preds ...string) string {
	return fmt.Sprintf("AND(%s)", strings.Join(preds, ", "))
}

func Or(preds ...string) string {
	return fmt.Sprintf("OR(%s)", strings.Join(preds, ", "))
}
