package dao

import "time"

// 记录存储返回的是 map[string]any，schema 的转换只允许发生在 dao 这一层
// 往上走的都是带类型的结构体，未知字段直接丢掉

func fieldString(fields map[string]any, key string) string {
	val, _ := fields[key].(string)
	return val
}

func fieldStrings(fields map[string]any, key string) []string {
	raw, ok := fields[key].([]any)
	if !ok {
		return nil
	}
	res := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			res = append(res, s)
		}
	}
	return res
}

func fieldInt64(fields map[string]any, key string) int64 {
	// JSON 数字解出来是 float64
	switch v := fields[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}

func fieldBool(fields map[string]any, key string) bool {
	val, _ := fields[key].(bool)
	return val
}

func fieldTime(fields map[string]any, key string) time.Time {
	s, ok := fields[key].(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
