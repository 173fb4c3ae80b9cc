package model

// RepoRef identifies a GitHub repository by owner and name.
type RepoRef struct {
	Owner string
	Repo  string
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Repo
}

// URL returns the canonical https://github.com form of the repository.
func (r RepoRef) URL() string {
	return "https://github.com/" + r.String()
}

// Entry types reported by the GitHub contents API.
const (
	EntryFile = "file"
	EntryDir  = "dir"
)

// Entry is one item of a directory listing.
type Entry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
	Size int64  `json:"size,omitempty"`
	SHA  string `json:"sha,omitempty"`
}

type ProfileKind string

const (
	KindFile      ProfileKind = "file"
	KindDirectory ProfileKind = "directory"
)

// ProfileCandidate is a profile discovered by listing a repository.
// Path is where the raw content lives; for directory profiles it already
// includes the rules file name.
type ProfileCandidate struct {
	Name string      `json:"name"`
	Kind ProfileKind `json:"kind"`
	Path string      `json:"path"`
}
