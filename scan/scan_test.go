package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boncheolgu/annometa"
	"github.com/boncheolgu/annometa/scan"
)

const fixtureUser = `package fixture

// @!format(version = 2)

// User is a demo type.
// @serde(rename = "user", skip)
// @index = 3
type User struct {
	// @serde(rename = "user_id")
	ID int64

	Name string
}

// Fetch loads the user.
// @route(method = "GET", path = "/users")
func (u *User) Fetch() {}

// @deprecated
const MaxUsers = 10
`

const fixtureGroup = `package fixture

// @serde(rename = "group")
type Group struct{}

// @route(method = "POST")
func CreateGroup() {}
`

func writeFixture(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestFile(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "user.go", fixtureUser)

	file, err := scan.File(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"User", "User.ID", "User.Fetch", "MaxUsers"}, file.Names)

	user := file.Decl("User")
	require.Len(t, user, 2)
	assert.True(t, annometa.Contains(user, "serde", "skip"))

	rename, ok := annometa.ValueAs[string](user, "serde", "rename")
	require.True(t, ok)
	assert.Equal(t, "user", rename)

	index, ok := annometa.ValueAs[int64](user, "index")
	require.True(t, ok)
	assert.Equal(t, int64(3), index)

	id := file.Decl("User.ID")
	fieldRename, ok := annometa.ValueAs[string](id, "serde", "rename")
	require.True(t, ok)
	assert.Equal(t, "user_id", fieldRename)

	assert.Empty(t, file.Decl("User.Name"), "unannotated fields carry nothing")

	method, ok := annometa.ValueAs[string](file.Decl("User.Fetch"), "route", "method")
	require.True(t, ok)
	assert.Equal(t, "GET", method)

	assert.True(t, annometa.Contains(file.Decl("MaxUsers"), "deprecated"))
}

func TestFileInnerDirectives(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "user.go", fixtureUser)

	file, err := scan.File(path)
	require.NoError(t, err)

	inner := file.Inner()
	require.Len(t, inner, 1)
	assert.Equal(t, annometa.Inner, inner[0].Style)
	assert.Equal(t, "format", inner[0].Meta.Name())

	// Inner attributes never leak into declaration queries.
	for _, name := range file.Names {
		assert.False(t, annometa.Contains(file.Decl(name), "format"))
	}
}

func TestPackage(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "user.go", fixtureUser)
	writeFixture(t, dir, "group.go", fixtureGroup)
	writeFixture(t, dir, "skip_test.go", `package fixture

// @serde(rename = "ignored")
type FromTest struct{}
`)

	pkg, err := scan.Package(dir)
	require.NoError(t, err)
	require.Len(t, pkg.Files, 2, "_test.go files are skipped")

	rename, ok := annometa.ValueAs[string](pkg.Decl("Group"), "serde", "rename")
	require.True(t, ok)
	assert.Equal(t, "group", rename)

	assert.Empty(t, pkg.Decl("FromTest"))
	assert.True(t, annometa.Contains(pkg.Decl("User"), "serde", "skip"))
}

func TestFileMalformedDirective(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "bad.go", `package fixture

// @serde(
type Broken struct{}
`)

	_, err := scan.File(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.go:3", "errors carry the directive position")
}
