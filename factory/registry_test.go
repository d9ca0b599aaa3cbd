package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhenriques/codefactory/csharp"
	"github.com/hhenriques/codefactory/factory"
	"github.com/hhenriques/codefactory/java"
)

func newRegistry(t *testing.T) *factory.Registry {
	t.Helper()

	r := factory.NewRegistry()
	require.NoError(t, r.Register(csharp.New, "cs", "c#"))
	require.NoError(t, r.Register(java.New))

	return r
}

func TestRegistry_Lookup(t *testing.T) {
	r := newRegistry(t)

	assert.Equal(t, []string{"csharp", "java"}, r.Names())

	for _, name := range []string{"csharp", "CSharp", " cs ", "C#"} {
		b, err := r.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, "csharp", b.Name())
	}

	b, err := r.Lookup("java")
	require.NoError(t, err)
	assert.Equal(t, ".java", b.FileExtension())
}

func TestRegistry_Unknown(t *testing.T) {
	r := newRegistry(t)

	_, err := r.Lookup("cshrp")
	require.ErrorIs(t, err, factory.ErrUnknownBackend)

	assert.Contains(t, r.Suggest("cshrp"), "csharp")
	assert.Contains(t, r.Suggest("c-sharp"), "csharp")
	assert.Equal(t, []string{"java"}, r.Suggest("jav"))
	assert.Empty(t, r.Suggest("rust"))
}

func TestRegistry_Duplicate(t *testing.T) {
	r := newRegistry(t)

	err := r.Register(java.New)
	require.ErrorIs(t, err, factory.ErrDuplicateBackend)

	err = r.Register(java.New, "cs")
	require.ErrorIs(t, err, factory.ErrDuplicateBackend)
	assert.Equal(t, []string{"csharp", "java"}, r.Names())
}
