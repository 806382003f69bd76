package cache

import "time"

// AssetKeyOpts identifies one resampled image.
type AssetKeyOpts struct {
	ModTime time.Time `json:"mod_time"`
	Size    int64     `json:"size"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
}

// ArtifactKeyOpts identifies one rendered output.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Theme     string  `json:"theme"`
	Font      string  `json:"font"`
	AssetDir  string  `json:"asset_dir"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	AssetHash string  `json:"asset_hash"`
}

// Keyer builds cache keys.
type Keyer interface {
	AssetKey(path string, opts AssetKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// AssetKey returns the key for a resampled image. Touching or replacing the
// source file changes its modification time or size, and with it the key.
func (DefaultKeyer) AssetKey(path string, opts AssetKeyOpts) string {
	return hashKey("asset", path, opts)
}

// ArtifactKey returns the key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

var _ Keyer = DefaultKeyer{}
