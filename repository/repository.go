package repository

// Project represents information about a detected project
type Project struct {
	RootPath     string `yaml:"rootPath" json:"rootPath"`
	Type         string `yaml:"type" json:"type"`
	Name         string `yaml:"name" json:"name"`
	Version      string `yaml:"version,omitempty" json:"version,omitempty"`
	RelativePath string `yaml:"relativePath" json:"relativePath"`
}

// Label returns a short project description used in logs
func (p *Project) Label() string {
	if p.Name == "" {
		return p.Type
	}
	return p.Type + ":" + p.Name
}
