package requests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleNumber_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    float64
		ok      bool
		present bool
	}{
		{"number", `{"value": 12.5}`, 12.5, true, true},
		{"negative", `{"value": -40}`, -40, true, true},
		{"numeric string", `{"value": " 3.25 "}`, 3.25, true, true},
		{"missing", `{}`, 0, true, false},
		{"null", `{"value": null}`, 0, true, false},
		{"word", `{"value": "abc"}`, 0, false, true},
		{"empty string", `{"value": ""}`, 0, false, true},
		{"bool", `{"value": true}`, 0, false, true},
		{"overflow", `{"value": 1e400}`, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ConvertRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			got, ok := req.Value.Float()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.present, req.Value.Present())
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFlexibleNumber_NonFiniteStrings(t *testing.T) {
	for _, raw := range []string{"NaN", "Infinity", "-Inf", "+inf"} {
		t.Run(raw, func(t *testing.T) {
			var req ConvertRequest
			require.NoError(t, json.Unmarshal([]byte(`{"value":"`+raw+`"}`), &req))
			_, ok := req.Value.Float()
			assert.False(t, ok)
			assert.Equal(t, raw, req.Value.Raw)

			out, err := json.Marshal(req.Value)
			require.NoError(t, err)
			assert.Equal(t, `"`+raw+`"`, string(out))
		})
	}
}

func TestFlexibleNumber_Batch(t *testing.T) {
	var req BatchConvertRequest
	require.NoError(t, json.Unmarshal([]byte(`{"type":"currency","values":[1,"2","x"],"from_unit":"USD","to_unit":"INR"}`), &req))
	require.Len(t, req.Values, 3)

	v, ok := req.Values[1].Float()
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	_, ok = req.Values[2].Float()
	assert.False(t, ok)
	assert.Equal(t, "x", req.Values[2].Raw)
}

func TestFlexibleNumber_Marshal(t *testing.T) {
	out, err := json.Marshal([]FlexibleNumber{NewFlexibleNumber(1.5), {}})
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, null]`, string(out))

	var n FlexibleNumber
	require.NoError(t, json.Unmarshal([]byte(`"abc"`), &n))
	out, err = json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(out))
}
