package gitinfo

import (
	"testing"

	ggit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/vyckey/notesite/internal/foundation/errors"
	"github.com/vyckey/notesite/internal/site"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		raw   string
		host  string
		owner string
		name  string
	}{
		{"https://github.com/vyckey/vyckey-computer-notes.git", "github.com", "vyckey", "vyckey-computer-notes"},
		{"https://github.com/vyckey/vyckey-computer-notes", "github.com", "vyckey", "vyckey-computer-notes"},
		{"https://GitHub.com/vyckey/notes/", "github.com", "vyckey", "notes"},
		{"ssh://git@gitlab.example.com/team/docs.git", "gitlab.example.com", "team", "docs"},
		{"git@github.com:vyckey/notes.git", "github.com", "vyckey", "notes"},
		{"git@github.com:vyckey/notes", "github.com", "vyckey", "notes"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			info, err := ParseRemoteURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.host, info.Host)
			assert.Equal(t, tt.owner, info.Owner)
			assert.Equal(t, tt.name, info.Name)
			assert.Equal(t, tt.raw, info.RemoteURL)
		})
	}
}

func TestParseRemoteURL_Invalid(t *testing.T) {
	for _, raw := range []string{"", "github.com", "https://github.com/onlyowner", "git@github.com:a/b/c.git", "https://github.com//x"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseRemoteURL(raw)
			require.Error(t, err)
			assert.Equal(t, ferrors.CategoryGit, ferrors.GetCategory(err))
		})
	}
}

func TestFromRepo(t *testing.T) {
	dir := t.TempDir()
	repo, err := ggit.PlainInit(dir, false)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: RemoteName,
		URLs: []string{"git@github.com:octo/handbook.git"},
	})
	require.NoError(t, err)

	info, err := FromRepo(dir)
	require.NoError(t, err)
	assert.Equal(t, "octo", info.Owner)
	assert.Equal(t, "handbook", info.Name)
	assert.Equal(t, "https://github.com/octo/handbook", info.RepoURL())
}

func TestFromRepo_NoOrigin(t *testing.T) {
	dir := t.TempDir()
	_, err := ggit.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = FromRepo(dir)
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryGit, ferrors.GetCategory(err))
}

func TestFromRepo_NotARepository(t *testing.T) {
	_, err := FromRepo(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryGit, ferrors.GetCategory(err))
}

func TestInfo_Apply(t *testing.T) {
	decl := site.Canonical()
	info := Info{Host: "github.com", Owner: "octo", Name: "handbook"}
	info.Apply(&decl)

	assert.Equal(t, "octo", decl.Identity.OrganizationName)
	assert.Equal(t, "handbook", decl.Identity.ProjectName)

	last := decl.Navbar.Items[len(decl.Navbar.Items)-1]
	assert.Equal(t, "https://github.com/octo/handbook", last.Href)
	more := decl.Footer.Sections[len(decl.Footer.Sections)-1]
	assert.Equal(t, "https://github.com/octo/handbook", more.Items[1].Href)

	_, err := site.Build(decl)
	require.NoError(t, err)
}

func TestInfo_Apply_RewritesLinksAcrossHosts(t *testing.T) {
	decl := site.Canonical()
	decl.Navbar.Items = append(decl.Navbar.Items, site.NavItemDecl{
		Label: "Upstream", Href: "https://github.com/vyckey/other-notes",
	})
	info, err := ParseRemoteURL("git@gitlab.example.com:team/handbook.git")
	require.NoError(t, err)
	info.Apply(&decl)

	github := decl.Navbar.Items[len(decl.Navbar.Items)-2]
	assert.Equal(t, "https://gitlab.example.com/team/handbook", github.Href)
	more := decl.Footer.Sections[len(decl.Footer.Sections)-1]
	assert.Equal(t, "https://gitlab.example.com/team/handbook", more.Items[1].Href)
	assert.Equal(t, "https://github.com/vyckey/other-notes", decl.Navbar.Items[len(decl.Navbar.Items)-1].Href)
}

func TestIsRepoLink(t *testing.T) {
	assert.True(t, isRepoLink("https://github.com/vyckey/vyckey-computer-notes", "vyckey", "vyckey-computer-notes"))
	assert.True(t, isRepoLink("https://GitHub.com/Vyckey/vyckey-computer-notes.git", "vyckey", "vyckey-computer-notes"))
	assert.False(t, isRepoLink("https://github.com/vyckey/vyckey-computer-notes/issues", "vyckey", "vyckey-computer-notes"))
	assert.False(t, isRepoLink("git@github.com:vyckey/vyckey-computer-notes.git", "vyckey", "vyckey-computer-notes"))
	assert.False(t, isRepoLink("", "vyckey", "vyckey-computer-notes"))
}
