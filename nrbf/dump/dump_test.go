package dump_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jasperfirecai2/ngu-decoder/nrbf/dump"
)

func TestYAMLRendersMapAndSlice(t *testing.T) {
	v := map[string]any{
		"name":  "Foo",
		"items": []any{int32(1), int32(2), int32(3)},
	}
	doc, err := dump.YAML(v)
	require.NoError(t, err)
	require.Contains(t, string(doc), "name: Foo")
	require.Contains(t, string(doc), "items:")
}

func TestHighlightProducesAnsiEscapes(t *testing.T) {
	doc, err := dump.YAML(map[string]any{"a": int32(1)})
	require.NoError(t, err)
	highlighted, err := dump.Highlight(doc, "")
	require.NoError(t, err)
	require.NotEmpty(t, highlighted)
	require.Contains(t, highlighted, "\x1b[")
}

func TestFormatSizeGroupsDigits(t *testing.T) {
	require.Equal(t, "638,123,456,789,000,000", dump.FormatSize(638123456789000000))
}

func TestDebugShowsConcreteTypes(t *testing.T) {
	out := dump.Debug(int32(42))
	require.Contains(t, out, "int32")
}
