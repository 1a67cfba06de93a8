package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Amount
		wantErr bool
	}{
		{in: "1500", want: 150000},
		{in: "1500.5", want: 150050},
		{in: "1500.05", want: 150005},
		{in: "0.99", want: 99},
		{in: ".5", want: 50},
		{in: "-3.25", want: -325},
		{in: " 12 ", want: 1200},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1.234", wantErr: true},
		{in: "1.-2", wantErr: true},
		{in: "1.-0", wantErr: true},
		{in: "1.+5", wantErr: true},
		{in: "--5", wantErr: true},
		{in: "+-5", wantErr: true},
		{in: "1-0", wantErr: true},
		{in: "5.", want: 500},
		{in: ".", wantErr: true},
		{in: "-", wantErr: true},
		{in: "1 000", wantErr: true},
		{in: "9999999999.99", want: 999999999999},
		{in: "0009999999999", want: 999999999900},
		{in: "10000000000", wantErr: true},
		{in: "184467440737095517", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmount_StringAndTimes(t *testing.T) {
	fare := MustParse("500")
	total := fare.Times(3)

	assert.Equal(t, "1500.00", total.String())
	assert.Equal(t, "-0.05", FromMinor(-5).String())
	assert.Equal(t, "0.00", Zero.String())
	assert.True(t, MustParse("1000").LessThan(total))
	assert.Equal(t, MustParse("500"), MustParse("2000").Sub(total))
}

func TestAmount_JSON(t *testing.T) {
	type payload struct {
		Amount Amount `json:"amount"`
	}

	data, err := json.Marshal(payload{Amount: MustParse("12.30")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": 12.30}`, string(data))

	var fromNumber payload
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 250.75}`), &fromNumber))
	assert.Equal(t, FromMinor(25075), fromNumber.Amount)

	var fromString payload
	require.NoError(t, json.Unmarshal([]byte(`{"amount": "99.9"}`), &fromString))
	assert.Equal(t, FromMinor(9990), fromString.Amount)

	var bad payload
	assert.Error(t, json.Unmarshal([]byte(`{"amount": "ten"}`), &bad))
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"amount": "--250"}`), &bad), ErrInvalidAmount)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"amount": 184467440737095517}`), &bad), ErrInvalidAmount)
}

func TestAmount_Scan(t *testing.T) {
	var a Amount

	require.NoError(t, a.Scan([]byte("2000.00")))
	assert.Equal(t, FromMajor(2000), a)

	require.NoError(t, a.Scan("0.500000"))
	assert.Equal(t, FromMinor(50), a)

	require.NoError(t, a.Scan(int64(7)))
	assert.Equal(t, FromMajor(7), a)

	require.NoError(t, a.Scan(nil))
	assert.Equal(t, Zero, a)

	assert.Error(t, a.Scan(true))

	v, err := FromMinor(150005).Value()
	require.NoError(t, err)
	assert.Equal(t, "1500.05", v)
}
