package draw

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/taprand/srand"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind("  Float64 ")
	require.NoError(t, err)
	assert.Equal(t, KindFloat64, got)

	_, err = ParseKind("exponential")
	assert.Error(t, err)
}

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{"int64", Spec{Kind: KindInt64}, false},
		{"int32n ok", Spec{Kind: KindInt32n, Bound: 100}, false},
		{"int32n zero", Spec{Kind: KindInt32n}, true},
		{"int32n too large", Spec{Kind: KindInt32n, Bound: 1 << 31}, true},
		{"int64n ok", Spec{Kind: KindInt64n, Bound: 1 << 40}, false},
		{"int64n negative", Spec{Kind: KindInt64n, Bound: -1}, true},
		{"empty kind", Spec{}, true},
		{"unknown kind", Spec{Kind: "gamma"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDrawerMatchesRand(t *testing.T) {
	tests := []struct {
		spec Spec
		want []string
	}{
		{Spec{Kind: KindInt64}, []string{"5577006791947779410", "8674665223082153551"}},
		{Spec{Kind: KindUint64}, []string{"5577006791947779410", "8674665223082153551", "15352856648520921629"}},
		{Spec{Kind: KindInt32}, []string{"1298498081", "2019727887"}},
		{Spec{Kind: KindUint32}, []string{"2596996162", "4039455774"}},
		{Spec{Kind: KindInt32n, Bound: 100}, []string{"81", "87", "47"}},
		{Spec{Kind: KindInt64n, Bound: 100}, []string{"10", "51", "21"}},
		{Spec{Kind: KindFloat64}, []string{"0.6046602879796196", "0.9405090880450124"}},
		{Spec{Kind: KindFloat32}, []string{"0.6046603", "0.9405091"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.spec.Kind), func(t *testing.T) {
			d, err := New(srand.New(srand.NewSource(1)), tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.spec, d.Spec())
			for i, w := range tt.want {
				v := d.Next()
				assert.Equal(t, tt.spec.Kind, v.Kind())
				assert.Equal(t, w, v.String(), "draw %d", i)
			}
		})
	}
}

func TestDrawerDistributions(t *testing.T) {
	d, err := New(srand.New(srand.NewSource(1)), Spec{Kind: KindNormal, Mean: 0, StdDev: 1})
	require.NoError(t, err)
	assert.InDelta(t, -1.233758177597947, d.Next().Float, 1e-12)

	d, err = New(srand.New(srand.NewSource(1)), Spec{Kind: KindZipf, S: 1.5, V: 10})
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		v := d.Next()
		require.True(t, v.Int >= 0 && v.Int < 10)
	}

	_, err = New(srand.New(srand.NewSource(1)), Spec{Kind: KindZipf, S: 1, V: 10})
	assert.True(t, errors.Is(err, srand.ErrInvalidParameter))

	_, err = New(srand.New(srand.NewSource(1)), Spec{Kind: KindNormal, StdDev: 0})
	assert.True(t, errors.Is(err, srand.ErrInvalidParameter))
}

func TestValueJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Value Value `json:"value"`
	}{Value{Uint: 15352856648520921629, kind: KindUint64}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":15352856648520921629}`, string(b))

	b, err = json.Marshal(Value{Float: 0.5, kind: KindFloat64})
	require.NoError(t, err)
	assert.Equal(t, "0.5", string(b))
}

func TestSpecRange(t *testing.T) {
	assert.Equal(t, int64(100), Spec{Kind: KindInt32n, Bound: 100}.Range())
	assert.Equal(t, int64(7), Spec{Kind: KindZipf, V: 7}.Range())
	assert.Equal(t, int64(0), Spec{Kind: KindFloat64}.Range())
	assert.True(t, KindZipf.Bounded())
	assert.False(t, KindInt64.Bounded())
	assert.True(t, KindNormal.IsFloat())
}
