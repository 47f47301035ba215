package courier

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{
			name:  "given string, then quoted",
			value: String("jane"),
			want:  `"jane"`,
		},
		{
			name:  "given number, then plain",
			value: Number(34),
			want:  `34`,
		},
		{
			name:  "given fractional number, then plain",
			value: Number(1.5),
			want:  `1.5`,
		},
		{
			name:  "given bool, then literal",
			value: Bool(true),
			want:  `true`,
		},
		{
			name:  "given null, then null",
			value: Null(),
			want:  `null`,
		},
		{
			name:  "given zero value, then null",
			value: Value{},
			want:  `null`,
		},
		{
			name:  "given empty array, then brackets",
			value: Array(),
			want:  `[]`,
		},
		{
			name:  "given array, then encoded items",
			value: Array(String("a"), Number(2), Bool(false)),
			want:  `["a",2,false]`,
		},
		{
			name:  "given nil object, then braces",
			value: Object(nil),
			want:  `{}`,
		},
		{
			name:  "given nested object, then encoded fields",
			value: Object(map[string]Value{"city": String("seoul")}),
			want:  `{"city":"seoul"}`,
		},
		{
			name: "given deep nesting, then encoded recursively",
			value: Object(map[string]Value{
				"items": Array(Object(map[string]Value{"n": Number(1)})),
			}),
			want: `{"items":[{"n":1}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestValue_MarshalJSON_NonFinite(t *testing.T) {
	tests := []struct {
		name  string
		value Value
	}{
		{name: "given NaN, then encoding fails", value: Number(math.NaN())},
		{name: "given +Inf, then encoding fails", value: Number(math.Inf(1))},
		{name: "given -Inf, then encoding fails", value: Number(math.Inf(-1))},
		{
			name:  "given NaN nested in an object, then encoding fails",
			value: Object(map[string]Value{"score": Number(math.NaN())}),
		},
		{
			name:  "given NaN nested in an array, then encoding fails",
			value: Array(Number(math.Inf(1))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := json.Marshal(tt.value)
			assert.Error(t, err)
		})
	}
}
