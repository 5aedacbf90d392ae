package types

// Environment is one registered virtual environment as reported to users.
type Environment struct {
	// Name is the link's base name in workon_home
	Name string `json:"name" yaml:"name"`
	// Link is the symlink inside workon_home
	Link string `json:"link" yaml:"link"`
	// Path is where the link resolves to
	Path string `json:"path" yaml:"path"`
}

// BrokenLink is a registry entry whose target is no longer an environment.
type BrokenLink struct {
	Name string `json:"name" yaml:"name"`
	Link string `json:"link" yaml:"link"`
	// Target is the stored link value, exactly as written
	Target string `json:"target" yaml:"target"`
}

// NamedPath pairs a registry name with an environment path.
type NamedPath struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}
