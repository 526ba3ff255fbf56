package unstable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"exusiai.dev/hystats/internal/pkg/hyerr"
)

func mustSet(t *testing.T, json, path string, value interface{}) string {
	t.Helper()
	out, err := sjson.Set(json, path, value)
	require.NoError(t, err, "expect sjson to build the fixture")
	return out
}

func TestParse(t *testing.T) {
	obj, err := Parse([]byte(`{"displayname":"Technoblade"}`))
	require.NoError(t, err)
	assert.Equal(t, "Technoblade", obj.StringProperty("displayname", ""))

	_, err = Parse([]byte(`{"displayname":`))
	assert.ErrorIs(t, err, hyerr.ErrInvalidPayload)
}

func TestPropertyMatchesKeysLiterally(t *testing.T) {
	obj := New(gjson.Parse(`{"a.b":1,"a":{"b":2},"*":3}`))

	assert.Equal(t, int64(1), obj.IntProperty("a.b", 0))
	assert.Equal(t, int64(3), obj.IntProperty("*", 0))
	assert.False(t, obj.HasProperty("b"))
	assert.True(t, obj.HasProperty("a"))
}

func TestPropertyOnNonObject(t *testing.T) {
	obj := New(gjson.Parse(`["packages"]`))

	assert.False(t, obj.HasProperty("packages"))
	arr, err := obj.ArrayProperty("packages")
	require.NoError(t, err)
	assert.Empty(t, arr)
}

func TestArrayProperty(t *testing.T) {
	json := mustSet(t, `{}`, "packages", []string{"a", "b"})
	json = mustSet(t, json, "empty", []string{})
	json = mustSet(t, json, "nothing", nil)
	json = mustSet(t, json, "name", "Bedwars")

	obj := New(gjson.Parse(json))

	arr, err := obj.ArrayProperty("packages")
	require.NoError(t, err)
	require.Len(t, arr, 2)
	assert.Equal(t, "a", arr[0].Str)
	assert.Equal(t, "b", arr[1].Str)

	for _, name := range []string{"empty", "nothing", "missing"} {
		arr, err = obj.ArrayProperty(name)
		require.NoError(t, err, "expect no error for %q", name)
		assert.NotNil(t, arr, "expect a non-nil slice for %q", name)
		assert.Empty(t, arr, "expect an empty slice for %q", name)
	}

	_, err = obj.ArrayProperty("name")
	assert.ErrorIs(t, err, hyerr.ErrPropertyType)
	assert.Contains(t, err.Error(), `"name": expected array, got string`)
}

func TestObjectProperty(t *testing.T) {
	obj := New(gjson.Parse(`{"stats":{"Bedwars":{"coins":10}},"karma":5}`))

	stats, err := obj.ObjectProperty("stats")
	require.NoError(t, err)
	assert.True(t, stats.HasProperty("Bedwars"))

	missing, err := obj.ObjectProperty("achievements")
	require.NoError(t, err)
	assert.True(t, missing.Raw().IsObject())
	assert.False(t, missing.HasProperty("anything"))

	_, err = obj.ObjectProperty("karma")
	assert.ErrorIs(t, err, hyerr.ErrPropertyType)
}

func TestScalarProperties(t *testing.T) {
	obj := New(gjson.Parse(`{"coins":1500,"ratio":1.25,"online":true,"rank":null,"name":"x"}`))

	assert.Equal(t, int64(1500), obj.IntProperty("coins", -1))
	assert.Equal(t, int64(-1), obj.IntProperty("wins", -1))
	assert.Equal(t, 1.25, obj.FloatProperty("ratio", 0))
	assert.True(t, obj.BoolProperty("online", false))
	assert.True(t, obj.BoolProperty("missing", true))
	assert.Equal(t, "NONE", obj.StringProperty("rank", "NONE"))
	assert.Equal(t, "x", obj.StringProperty("name", ""))
}

func TestKind(t *testing.T) {
	cases := map[string]string{
		`"x"`:   "string",
		`1`:     "number",
		`false`: "boolean",
		`true`:  "boolean",
		`null`:  "null",
		`{}`:    "object",
		`[]`:    "array",
	}
	for raw, want := range cases {
		assert.Equal(t, want, Kind(gjson.Parse(raw)), "kind of %s", raw)
	}
	assert.Equal(t, "missing", Kind(gjson.Result{}))
}
