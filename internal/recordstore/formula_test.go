package recordstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeValue(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "普通昵称原样返回",
			input: "milkman42",
			want:  "milkman42",
		},
		{
			name:  "单引号会被转义",
			input: "it's me",
			want:  `it\'s me`,
		},
		{
			name:  "反斜杠先转义，不会被后面的转义二次利用",
			input: `a\'b`,
			want:  `a\\\'b`,
		},
		{
			name:    "控制字符直接拒绝",
			input:   "evil\nname",
			wantErr: ErrUnsafeFormulaValue,
		},
		{
			name:    "DEL 也算控制字符",
			input:   "evil\x7fname",
			wantErr: ErrUnsafeFormulaValue,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EscapeValue(tc.input)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormulaBuilders(t *testing.T) {
	t.Run("Eq 会把用户输入包在单引号里", func(t *testing.T) {
		got, err := Eq("Nickname", "o'brien")
		require.NoError(t, err)
		assert.Equal(t, `{Nickname} = 'o\'brien'`, got)
	})

	t.Run("带闭合引号的注入串拼出来还是一个字符串字面量", func(t *testing.T) {
		// 经典的注入手法：闭合引号再拼一段自己的条件
		got, err := Eq("Nickname", "x', RECORD_ID() != '")
		require.NoError(t, err)
		assert.Equal(t, `{Nickname} = 'x\', RECORD_ID() != \''`, got)
	})

	t.Run("EqID", func(t *testing.T) {
		got, err := EqID("recABC123")
		require.NoError(t, err)
		assert.Equal(t, "RECORD_ID() = 'recABC123'", got)
	})

	t.Run("Contains", func(t *testing.T) {
		got, err := Contains("Likes", "recABC123")
		require.NoError(t, err)
		assert.Equal(t, "FIND('recABC123', ARRAYJOIN({Likes})) > 0", got)
	})

	t.Run("EqBool", func(t *testing.T) {
		assert.Equal(t, "{Read} = TRUE()", EqBool("Read", true))
		assert.Equal(t, "{Read} = FALSE()", EqBool("Read", false))
	})

	t.Run("And", func(t *testing.T) {
		assert.Equal(t, "AND(a, b)", And("a", "b"))
	})
}
