// Package gitinfo derives site identifiers from a git repository's origin remote.
package gitinfo

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	ggit "github.com/go-git/go-git/v5"

	ferrors "github.com/vyckey/notesite/internal/foundation/errors"
	"github.com/vyckey/notesite/internal/site"
)

// RemoteName is the remote consulted by FromRepo.
const RemoteName = "origin"

// Info identifies a hosted repository.
type Info struct {
	Host      string
	Owner     string
	Name      string
	RemoteURL string
}

// RepoURL returns the browsable https URL of the repository.
func (i Info) RepoURL() string {
	return fmt.Sprintf("https://%s/%s/%s", i.Host, i.Owner, i.Name)
}

// FromRepo opens the repository containing dir and parses its origin remote.
func FromRepo(dir string) (Info, error) {
	repo, err := ggit.PlainOpenWithOptions(dir, &ggit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Info{}, ferrors.WrapError(err, ferrors.CategoryGit, "failed to open git repository").
			WithContext("path", dir).
			Build()
	}

	remote, err := repo.Remote(RemoteName)
	if err != nil {
		if errors.Is(err, ggit.ErrRemoteNotFound) {
			return Info{}, ferrors.GitError("repository has no origin remote").
				WithContext("path", dir).
				Build()
		}
		return Info{}, ferrors.WrapError(err, ferrors.CategoryGit, "failed to read origin remote").Build()
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return Info{}, ferrors.GitError("origin remote has no URL").WithContext("path", dir).Build()
	}
	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL extracts host, owner and name from a remote URL.
// Supported formats:
// - https://github.com/owner/repo.git
// - ssh://git@github.com/owner/repo.git
// - git@github.com:owner/repo.git
// - git@github.com:owner/repo
func ParseRemoteURL(raw string) (Info, error) {
	raw = strings.TrimSpace(raw)
	info := Info{RemoteURL: raw}

	var host, repoPath string
	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return Info{}, ferrors.WrapError(err, ferrors.CategoryGit, "invalid remote URL").
				WithContext("url", raw).
				Build()
		}
		host, repoPath = u.Hostname(), u.Path
	case strings.Contains(raw, ":"):
		// scp-like: [user@]host:owner/repo.git
		hostPart, rest, _ := strings.Cut(raw, ":")
		if at := strings.LastIndex(hostPart, "@"); at >= 0 {
			hostPart = hostPart[at+1:]
		}
		host, repoPath = hostPart, rest
	}

	repoPath = strings.TrimSuffix(strings.Trim(repoPath, "/"), ".git")
	owner, name, ok := strings.Cut(repoPath, "/")
	if host == "" || !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return Info{}, ferrors.GitError("remote URL does not name an owner/repository").
			WithContext("url", raw).
			Build()
	}

	info.Host = strings.ToLower(host)
	info.Owner = owner
	info.Name = name
	return info, nil
}

// Apply sets the organization and project names of decl from info and points
// links at the declaration's previous repository to the new one. A link
// counts as pointing at the previous repository when its owner and name
// match, whatever host it names.
func (i Info) Apply(decl *site.Declaration) {
	oldOwner, oldName := decl.Identity.OrganizationName, decl.Identity.ProjectName
	decl.Identity.OrganizationName = i.Owner
	decl.Identity.ProjectName = i.Name
	if oldOwner == "" || oldName == "" {
		return
	}

	repoURL := i.RepoURL()
	relink := func(href string) string {
		if isRepoLink(href, oldOwner, oldName) {
			return repoURL
		}
		return href
	}
	var rewrite func(items []site.NavItemDecl)
	rewrite = func(items []site.NavItemDecl) {
		for idx := range items {
			items[idx].Href = relink(items[idx].Href)
			rewrite(items[idx].Items)
		}
	}
	rewrite(decl.Navbar.Items)
	for s := range decl.Footer.Sections {
		for l := range decl.Footer.Sections[s].Items {
			decl.Footer.Sections[s].Items[l].Href = relink(decl.Footer.Sections[s].Items[l].Href)
		}
	}
}

// isRepoLink reports whether href is an http(s) URL naming owner/name.
func isRepoLink(href, owner, name string) bool {
	lower := strings.ToLower(href)
	if !strings.HasPrefix(lower, "https://") && !strings.HasPrefix(lower, "http://") {
		return false
	}
	info, err := ParseRemoteURL(href)
	if err != nil {
		return false
	}
	return strings.EqualFold(info.Owner, owner) && strings.EqualFold(info.Name, name)
}
