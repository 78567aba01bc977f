package catalog

import "errors"

var (
	ErrNotFound  = errors.New("movie not found")
	ErrMissing   = errors.New("catalog file does not exist")
	ErrCorrupt   = errors.New("catalog file is corrupt")
	ErrNoBackend = errors.New("store is not bound to a catalog file")
)

// Backend persists a whole movie list. Load returns ErrMissing when nothing
// has been saved yet and wraps ErrCorrupt when the data cannot be decoded.
type Backend interface {
	Load() ([]Movie, error)
	Save(movies []Movie) error
	Path() string
}

type LoadResult int

const (
	LoadOK LoadResult = iota
	LoadMissing
	LoadCorrupt
)

func (r LoadResult) String() string {
	switch r {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}
