package sources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/relay/pkg/errors"
	"github.com/agentstation/relay/pkg/sources"
)

func TestReaders(t *testing.T) {
	assert.Equal(t, "Дані з TXT файлу", sources.TextFile{}.ReadText())
	assert.Equal(t, `{ "message": "Дані з JSON файлу" }`, sources.JSONFile{}.ReadJSON())
	assert.Equal(t, "<message>Дані з XML файлу</message>", sources.XMLFile{}.ReadXML())
}

func TestKind_IsValid(t *testing.T) {
	for _, k := range sources.Kinds() {
		assert.True(t, k.IsValid(), k.String())
	}
	assert.False(t, sources.Kind("csv").IsValid())
	assert.False(t, sources.Kind("").IsValid())
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  sources.Kind
	}{
		{"txt", sources.KindText},
		{"JSON", sources.KindJSON},
		{"  xml ", sources.KindXML},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			src, err := sources.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, src.Kind())
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		src, err := sources.Parse("csv")
		assert.Nil(t, src)
		assert.True(t, errors.IsUnsupportedFormat(err))
		assert.Contains(t, err.Error(), "csv")
	})
}

func TestAll(t *testing.T) {
	all := sources.All()
	require.Len(t, all, len(sources.Kinds()))
	for i, k := range sources.Kinds() {
		assert.Equal(t, k, all[i].Kind())
	}
}
