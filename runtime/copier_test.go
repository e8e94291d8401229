package runtime

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unison-codegen/smithygen/writer"
)

func TestAllModulesEmbedded(t *testing.T) {
	for _, m := range Modules() {
		content, err := m.Content()
		require.NoError(t, err, m.Filename())
		assert.NotEmpty(t, content, m.Filename())
		assert.NotEmpty(t, m.Description(), m.Filename())
	}
}

func TestCopyWritesThroughSink(t *testing.T) {
	sink := writer.NewMemorySink()
	c := NewCopier(sink, nil)

	require.NoError(t, c.Copy(context.Background(), ModuleSigV4))
	got := sink.Get("aws_sigv4.u")
	require.NotNil(t, got)
	assert.True(t, strings.Contains(string(got), "Aws.signRequest"))
}

func TestCopyIdempotent(t *testing.T) {
	sink := writer.NewMemorySink()
	c := NewCopier(sink, nil)

	require.NoError(t, c.Copy(context.Background(), ModuleXML))
	first := sink.Get("aws_xml.u")

	// Second copy is a no-op, not a rewrite.
	require.NoError(t, c.Copy(context.Background(), ModuleXML))
	assert.Equal(t, first, sink.Get("aws_xml.u"))
	assert.True(t, c.Copied(ModuleXML))
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name             string
		vendor, xml, s3  bool
		want             []Module
	}{
		{"non-vendor service", false, true, true, nil},
		{"vendor baseline", true, false, false,
			[]Module{ModuleSigV4, ModuleHTTP, ModuleConfig, ModuleCredentials}},
		{"vendor with xml body", true, true, false,
			[]Module{ModuleSigV4, ModuleHTTP, ModuleConfig, ModuleCredentials, ModuleXML}},
		{"vendor s3", true, true, true,
			[]Module{ModuleSigV4, ModuleHTTP, ModuleConfig, ModuleCredentials, ModuleXML, ModuleS3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.vendor, tt.xml, tt.s3))
		})
	}
}

func TestCopySelected(t *testing.T) {
	sink := writer.NewMemorySink()
	c := NewCopier(sink, nil)

	copied, err := c.CopySelected(context.Background(), true, true, true)
	require.NoError(t, err)
	assert.Len(t, copied, 6)
	assert.Len(t, sink.Files(), 6)
}
