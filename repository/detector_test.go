package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/solemn/repository"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		location := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755))
		require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	}
}

func TestDetector_DetectProject(t *testing.T) {
	tests := []struct {
		description    string
		files          map[string]string
		target         string
		expectType     string
		expectName     string
		expectVersion  string
		expectRelative string
	}{
		{
			description:    "go module",
			files:          map[string]string{"go.mod": "module github.com/acme/app\n\ngo 1.23\n", "cmd/main.go": "package main\n"},
			target:         "cmd/main.go",
			expectType:     repository.TypeGo,
			expectName:     "github.com/acme/app",
			expectRelative: "cmd/main.go",
		},
		{
			description:    "node package",
			files:          map[string]string{"package.json": `{"name": "acme-web", "version": "1.0.0"}`, "src/index.js": "var a = 1;\n"},
			target:         "src/index.js",
			expectType:     repository.TypeJavaScript,
			expectName:     "acme-web",
			expectVersion:  "1.0.0",
			expectRelative: "src/index.js",
		},
		{
			description:    "maven project",
			files:          map[string]string{
				"pom.xml":                         "<project><groupId>com.acme</groupId><artifactId>acme-core</artifactId><version>2.1.0</version></project>",
				"src/main/java/com/acme/App.java": "class App {}\n",
			},
			target:         "src",
			expectType:     repository.TypeJava,
			expectName:     "acme-core",
			expectVersion:  "2.1.0",
			expectRelative: "src",
		},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			root := t.TempDir()
			writeFiles(t, root, tt.files)
			project, err := repository.New(afs.New()).DetectProject(context.Background(), filepath.Join(root, tt.target))
			require.NoError(t, err)
			assert.Equal(t, tt.expectType, project.Type)
			assert.Equal(t, tt.expectName, project.Name)
			assert.Equal(t, tt.expectVersion, project.Version)
			assert.Equal(t, tt.expectRelative, project.RelativePath)
			assert.Equal(t, tt.expectType+":"+tt.expectName, project.Label())
		})
	}
}

func TestDetector_DetectGitProject(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		".git/config":  "[core]\n\tbare = false\n[remote \"origin\"]\n\turl = git@github.com:acme/widgets.git\n\tfetch = +refs/heads/*:refs/remotes/origin/*\n",
		"lib/index.js": "var a = 1;\n",
	})
	project, err := repository.New(nil).DetectProject(context.Background(), filepath.Join(root, "lib/index.js"))
	require.NoError(t, err)
	assert.Equal(t, repository.TypeGit, project.Type)
	assert.Equal(t, root, project.RootPath)
	assert.Equal(t, "widgets", project.Name)
	assert.Equal(t, "lib/index.js", project.RelativePath)
}

func TestDetector_MissingPath(t *testing.T) {
	_, err := repository.New(nil).DetectProject(context.Background(), filepath.Join(t.TempDir(), "nowhere.js"))
	assert.Error(t, err)
}
