package repository

import (
	"bufio"
	"bytes"
	"context"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

const (
	TypeGo         = "go"
	TypeJava       = "java"
	TypeJavaScript = "javascript"
	TypeGit        = "git"
	TypeUnknown    = "unknown"
)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	fs      afs.Service
	markers []string
}

// New creates a project detector
func New(fs afs.Service) *Detector {
	if fs == nil {
		fs = afs.New()
	}
	return &Detector{
		fs:      fs,
		markers: []string{"go.mod", "pom.xml", "build.gradle", "package.json", ".git"},
	}
}

// DetectProject identifies the project root for the given path, falling back to the path itself
func (d *Detector) DetectProject(ctx context.Context, location string) (*Project, error) {
	absPath, startDir, err := resolve(location)
	if err != nil {
		return nil, err
	}
	project := &Project{Type: TypeUnknown, RootPath: absPath}
	rootPath, projectType := d.findProjectRoot(startDir)
	if rootPath != "" {
		project.RootPath = rootPath
		project.Type = projectType
		project.Name, project.Version = d.projectName(ctx, rootPath, projectType)
	}
	relPath, err := filepath.Rel(project.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	project.RelativePath = filepath.ToSlash(relPath)
	return project, nil
}

func resolve(location string) (string, string, error) {
	absPath, err := filepath.Abs(location)
	if err != nil {
		return "", "", err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return "", "", err
	}
	if info.IsDir() {
		return absPath, absPath, nil
	}
	return absPath, filepath.Dir(absPath), nil
}

func (d *Detector) findProjectRoot(dir string) (string, string) {
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, projectType(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ""
		}
		dir = parent
	}
}

func (d *Detector) projectName(ctx context.Context, rootPath string, projectType string) (string, string) {
	var name, version string
	switch projectType {
	case TypeGo:
		name = d.goModuleName(ctx, filepath.Join(rootPath, "go.mod"))
	case TypeJavaScript:
		name, version = d.packageInfo(ctx, filepath.Join(rootPath, "package.json"))
	case TypeJava:
		if pom := d.pomInfo(ctx, filepath.Join(rootPath, "pom.xml")); pom != nil {
			name, version = pom.ArtifactID, pom.Version
		}
	case TypeGit:
		if origin := d.gitOrigin(ctx, rootPath); origin != "" {
			name = originName(origin)
		}
	}
	if name == "" {
		name = filepath.Base(rootPath)
	}
	return name, version
}

func (d *Detector) goModuleName(ctx context.Context, goModPath string) string {
	content, err := d.fs.DownloadWithURL(ctx, goModPath)
	if err != nil {
		return ""
	}
	mod, err := modfile.ParseLax(goModPath, content, nil)
	if err != nil || mod.Module == nil {
		return ""
	}
	return mod.Module.Mod.Path
}

func (d *Detector) packageInfo(ctx context.Context, packagePath string) (string, string) {
	content, err := d.fs.DownloadWithURL(ctx, packagePath)
	if err != nil {
		return "", ""
	}
	pkg := struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}{}
	if err = json.Unmarshal(content, &pkg); err != nil {
		return "", ""
	}
	return pkg.Name, pkg.Version
}

// pomInfo represents the key information from a Maven POM file
type pomInfo struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Name       string `xml:"name"`
}

func (d *Detector) pomInfo(ctx context.Context, pomPath string) *pomInfo {
	content, err := d.fs.DownloadWithURL(ctx, pomPath)
	if err != nil {
		return nil
	}
	ret := &pomInfo{}
	if err = xml.Unmarshal(content, ret); err != nil {
		return nil
	}
	ret.ArtifactID = strings.TrimSpace(ret.ArtifactID)
	ret.Version = strings.TrimSpace(ret.Version)
	return ret
}

func (d *Detector) gitOrigin(ctx context.Context, gitRoot string) string {
	content, err := d.fs.DownloadWithURL(ctx, filepath.Join(gitRoot, ".git", "config"))
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(content))
	inOrigin := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			inOrigin = line == `[remote "origin"]`
			continue
		}
		if inOrigin && strings.HasPrefix(line, "url") {
			if _, value, ok := strings.Cut(line, "="); ok {
				return strings.TrimSpace(value)
			}
		}
	}
	return ""
}

func originName(origin string) string {
	origin = strings.TrimSuffix(strings.TrimSuffix(origin, "/"), ".git")
	if index := strings.LastIndexAny(origin, "/:"); index != -1 {
		return origin[index+1:]
	}
	return origin
}

func projectType(marker string) string {
	switch marker {
	case "go.mod":
		return TypeGo
	case "pom.xml", "build.gradle":
		return TypeJava
	case "package.json":
		return TypeJavaScript
	case ".git":
		return TypeGit
	}
	return TypeUnknown
}
