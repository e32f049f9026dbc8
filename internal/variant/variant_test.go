package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
)

func TestCoercionRoundTrips(t *testing.T) {
	assert.Equal(t, 1000.0, variant.Double(1000.0).AsDouble())
	assert.Equal(t, 25, variant.Int(25).AsInt())
	assert.True(t, variant.Bool(true).AsBool())
	assert.Equal(t, "VdwIdxSF", variant.String("VdwIdxSF").AsString())
	assert.Equal(t, []string{"a", "b"}, variant.StringList([]string{"a", "b"}).AsStringList())
}

func TestCrossKindCoercion(t *testing.T) {
	assert.Equal(t, 1.0, variant.Bool(true).AsDouble())
	assert.Equal(t, 0, variant.Bool(false).AsInt())
	assert.Equal(t, 25.0, variant.Int(25).AsDouble())
}

func TestParseAsUsesHintKind(t *testing.T) {
	v, err := variant.ParseAs("0.5", variant.Double(0))
	assert.NoError(t, err)
	assert.Equal(t, 0.5, v.AsDouble())

	v, err = variant.ParseAs("true", variant.Bool(false))
	assert.NoError(t, err)
	assert.True(t, v.AsBool())

	_, err = variant.ParseAs("not-a-number", variant.Double(0))
	assert.Error(t, err)
}
