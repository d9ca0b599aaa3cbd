package controller_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhenriques/codefactory/controller"
	"github.com/hhenriques/codefactory/pkg"
)

const minimal = `
controller: ItemsController
model:
  name: Item
  key: Id
  fields:
    - {name: Id, type: int}
`

func decode(t *testing.T, doc string) (*controller.Manifest, error) {
	t.Helper()

	return controller.Decode(context.Background(), strings.NewReader(doc))
}

func TestDecode_Sample(t *testing.T) {
	m, err := controller.Decode(context.Background(), bytes.NewReader(controller.Sample))
	require.NoError(t, err)

	assert.Equal(t, "ProductsController", m.Controller)
	assert.Equal(t, "ApiController", m.Base)
	assert.Equal(t, "CodeFactoryDemo.Models", m.Model.Namespace)
	assert.Len(t, m.Model.Fields, 4)
	assert.Len(t, m.Records, 3)
	assert.Equal(t, controller.Field{Name: "Id", Type: controller.FieldInt}, m.KeyField())
	assert.Equal(t, controller.DefaultTypes, m.Types)
}

func TestDecode_Names(t *testing.T) {
	m, err := decode(t, minimal+"namespace: _Shop.V2\nbase: Api.Controller\nimports: [java.util.*, Élan]\n")
	require.NoError(t, err)

	assert.Equal(t, "_Shop.V2", m.Namespace)
	assert.Equal(t, []string{"java.util.*", "Élan"}, m.Imports)
}

func TestDecode_Defaults(t *testing.T) {
	m, err := decode(t, minimal+"namespace: Shop\ntypes: {ok: Found}\n")
	require.NoError(t, err)

	assert.Equal(t, "Shop", m.Model.Namespace)
	assert.Equal(t, "Found", m.Types.OK)
	assert.Equal(t, controller.DefaultTypes.Find, m.Types.Find)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		target *pkg.Error
		reason string
	}{
		{
			name:   "syntax",
			doc:    "controller: [",
			target: controller.ErrDecodeManifest,
		},
		{
			name:   "unknown key",
			doc:    minimal + "colour: red\n",
			target: controller.ErrDecodeManifest,
		},
		{
			name:   "no controller",
			doc:    "model: {name: Item, key: Id, fields: [{name: Id, type: int}]}",
			target: controller.ErrManifest,
			reason: "controller name is empty",
		},
		{
			name:   "no model",
			doc:    "controller: C\n",
			target: controller.ErrManifest,
			reason: "model name is empty",
		},
		{
			name:   "no fields",
			doc:    "controller: C\nmodel: {name: Item, key: Id}\n",
			target: controller.ErrManifest,
			reason: "model has no fields",
		},
		{
			name:   "field type",
			doc:    "controller: C\nmodel: {name: Item, key: Id, fields: [{name: Id, type: uuid}]}\n",
			target: controller.ErrManifest,
			reason: "unknown field type",
		},
		{
			name: "duplicate field",
			doc: "controller: C\nmodel: {name: Item, key: Id, fields: " +
				"[{name: Id, type: int}, {name: Id, type: long}]}\n",
			target: controller.ErrManifest,
			reason: "duplicate field",
		},
		{
			name:   "namespace",
			doc:    minimal + "namespace: \".\"\n",
			target: controller.ErrManifest,
			reason: "not a valid name",
		},
		{
			name:   "model namespace",
			doc:    "controller: C\nmodel: {name: Item, namespace: Shop..Models, key: Id, fields: [{name: Id, type: int}]}\n",
			target: controller.ErrManifest,
			reason: "model.namespace",
		},
		{
			name:   "base",
			doc:    minimal + "base: Api Controller\n",
			target: controller.ErrManifest,
			reason: "not a valid name",
		},
		{
			name:   "import",
			doc:    minimal + "imports: [System.Linq, \"System.\"]\n",
			target: controller.ErrManifest,
			reason: "not a valid import",
		},
		{
			name:   "controller name",
			doc:    "controller: Items.Controller\nmodel: {name: Item, key: Id, fields: [{name: Id, type: int}]}\n",
			target: controller.ErrManifest,
			reason: "not a valid name",
		},
		{
			name:   "field name",
			doc:    "controller: C\nmodel: {name: Item, key: Id, fields: [{name: Id, type: int}, {name: 2nd, type: int}]}\n",
			target: controller.ErrManifest,
			reason: "not a valid name",
		},
		{
			name:   "key",
			doc:    "controller: C\nmodel: {name: Item, key: Code, fields: [{name: Id, type: int}]}\n",
			target: controller.ErrManifest,
			reason: "key is not a field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode(t, tt.doc)
			require.ErrorIs(t, err, tt.target)

			if tt.reason != "" {
				var e *pkg.Error
				require.True(t, errors.As(err, &e))
				assert.Contains(t, e.LogValue().String(), tt.reason)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	m, err := decode(t, `
controller: C
model:
  name: Event
  key: Id
  fields:
    - {name: Id, type: int}
    - {name: Seq, type: long}
    - {name: Cost, type: decimal}
    - {name: Title, type: string}
    - {name: Open, type: bool}
    - {name: At, type: datetime}
records:
  - {Id: 7, Seq: "= Id * 1000", Cost: 2, Title: "==x", Open: "true", At: "2024-05-01T10:30:00Z"}
  - {Id: "= index + 10", Seq: -1, Cost: "= 0.5 * 3", Title: 42, Open: false, At: "2024-05-02"}
`)
	require.NoError(t, err)

	recs, err := m.Resolve(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, controller.Record{
		7, int64(7000), controller.Decimal("2"), "=x", true,
		time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
	}, recs[0])
	assert.Equal(t, controller.Record{
		11, int64(-1), controller.Decimal("1.5"), "42", false,
		time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}, recs[1])
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record string
		target *pkg.Error
	}{
		{"missing", "{}", controller.ErrFieldValue},
		{"null", "{Id: null}", controller.ErrFieldValue},
		{"undeclared", "{Id: 1, Name: x}", controller.ErrManifest},
		{"not an integer", "{Id: 1.5}", controller.ErrFieldValue},
		{"out of range", "{Id: 3000000000}", controller.ErrFieldValue},
		{"bad text", "{Id: one}", controller.ErrFieldValue},
		{"compile", `{Id: "= 1 +"}`, controller.ErrEvaluate},
		{"unknown name", `{Id: "= missing + 1"}`, controller.ErrEvaluate},
		{"wrong result", `{Id: "= 'a'"}`, controller.ErrFieldValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := decode(t, minimal+"records:\n  - "+tt.record+"\n")
			require.NoError(t, err)

			_, err = m.Resolve(context.Background())
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestResolve_Canceled(t *testing.T) {
	m, err := decode(t, minimal+"records:\n  - {Id: 1}\n")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = m.Resolve(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFieldType(t *testing.T) {
	for _, ft := range controller.FieldTypes() {
		assert.True(t, ft.Valid(), ft)
	}

	assert.False(t, controller.FieldType("uuid").Valid())
}
