package writer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePlaceholders(t *testing.T) {
	w := New("out.u")
	w.Write("$N : $T -> $L", "GetObject", "GetObjectInput", "Text")
	assert.Equal(t, "getObject : GetObjectInput -> Text\n", w.String())
}

func TestWriteLiteralDollar(t *testing.T) {
	w := New("out.u")
	w.Write("cost is $$$L", 5)
	assert.Equal(t, "cost is $5\n", w.String())
}

func TestIndentation(t *testing.T) {
	w := New("out.u")
	w.Write("getItem input =")
	w.Indent()
	w.Write("let")
	w.Indent()
	w.Write("path = \"/items\"")
	w.Dedent()
	w.Dedent()

	want := "getItem input =\n" +
		"  let\n" +
		"    path = \"/items\"\n"
	assert.Equal(t, want, w.String())

	_, err := w.Finish()
	assert.NoError(t, err)
}

func TestUnbalancedScopes(t *testing.T) {
	t.Run("left open", func(t *testing.T) {
		w := New("bad.u")
		w.Indent().Write("line")
		_, err := w.Finish()
		var sie *StructuralInvariantError
		require.ErrorAs(t, err, &sie)
		assert.Equal(t, "bad.u", sie.File)
	})
	t.Run("closed too far", func(t *testing.T) {
		w := New("bad.u")
		w.Dedent().Indent().Write("line")
		_, err := w.Finish()
		var sie *StructuralInvariantError
		require.ErrorAs(t, err, &sie)
	})
}

func TestWriteDocComment(t *testing.T) {
	w := New("out.u")
	w.WriteDocComment("Fetch one item.")
	assert.Equal(t, "{{ Fetch one item. }}\n", w.String())

	w2 := New("out.u")
	w2.WriteDocComment("Fetch one item.\nRetries are the caller's concern.")
	want := "{{\nFetch one item.\nRetries are the caller's concern.\n}}\n"
	assert.Equal(t, want, w2.String())
}

func TestWriteRecordType(t *testing.T) {
	w := New("out.u")
	w.WriteRecordType("GetItemOutput", []TypeField{
		{Name: "etag", Type: "Optional Text"},
		{Name: "body", Type: "Bytes"},
	})
	want := "type GetItemOutput = {\n" +
		"  etag : Optional Text,\n" +
		"  body : Bytes\n" +
		"}\n\n"
	assert.Equal(t, want, w.String())
}

func TestWriteUnionType(t *testing.T) {
	w := New("out.u")
	w.WriteUnionType("ItemStatus", "", []Variant{
		{Name: "ItemStatus'Active"},
		{Name: "ItemStatus'Archived"},
	})
	want := "type ItemStatus\n" +
		"  = ItemStatus'Active\n" +
		"  | ItemStatus'Archived\n\n"
	assert.Equal(t, want, w.String())
}

func TestDelegatorReusesWriters(t *testing.T) {
	d := NewDelegator(NewMemorySink())
	a := d.Writer("aws_s3_types.u")
	b := d.Writer("aws_s3_types.u")
	assert.Same(t, a, b)
	d.Writer("aws_s3_client.u")
	assert.Equal(t, []string{"aws_s3_types.u", "aws_s3_client.u"}, d.Filenames())
}

func TestDelegatorFlush(t *testing.T) {
	sink := NewMemorySink()
	d := NewDelegator(sink)
	d.Writer("a.u").Write("type A = A")
	d.Writer("b.u").Write("type B = B")

	require.NoError(t, d.Flush(context.Background()))
	assert.Equal(t, "type A = A\n", string(sink.Get("a.u")))
	assert.Equal(t, "type B = B\n", string(sink.Get("b.u")))
}

func TestDelegatorFlushAbortsOnDefect(t *testing.T) {
	sink := NewMemorySink()
	d := NewDelegator(sink)
	d.Writer("a.u").Indent().Write("dangling")
	d.Writer("b.u").Write("fine")

	err := d.Flush(context.Background())
	var sie *StructuralInvariantError
	require.ErrorAs(t, err, &sie)
	assert.Nil(t, sink.Get("b.u"), "flush must abort before later files")
}

func TestFilesystemSinkAtomicWrite(t *testing.T) {
	root := t.TempDir()
	sink := NewFilesystemSink(root)

	err := sink.WriteFile(context.Background(), "gen/aws_s3_client.u", []byte("namespace Aws.S3\n"))
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(root, "gen", "aws_s3_client.u"))
	require.NoError(t, err)
	assert.Equal(t, "namespace Aws.S3\n", string(got))

	entries, err := os.ReadDir(filepath.Join(root, "gen"))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp", "temp file left behind")
	}
}

func TestFilesystemSinkRejectsEscape(t *testing.T) {
	sink := NewFilesystemSink(t.TempDir())
	err := sink.WriteFile(context.Background(), "../outside.u", []byte("x"))
	assert.Error(t, err)
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path string
		ok   bool
	}{
		{"aws_s3_client.u", true},
		{"nested/dir/file.u", true},
		{"", false},
		{"/abs/file.u", false},
		{"C:\\file.u", false},
		{"../up.u", false},
		{"./dot.u", false},
	}
	for _, tt := range tests {
		err := ValidatePath(tt.path)
		if tt.ok {
			assert.NoError(t, err, tt.path)
		} else {
			assert.Error(t, err, tt.path)
		}
	}
}

func TestSinkHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewMemorySink().WriteFile(ctx, "a.u", []byte("x"))
	assert.True(t, errors.Is(err, context.Canceled))
}
