package inspector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/solemn/inspector"
)

func TestFactory_GetParser(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
		language string
	}{
		{name: "Go file", filename: "test.go", language: "go"},
		{name: "Java file", filename: "Test.java", language: "java"},
		{name: "JS file", filename: "test.js", language: "javascript"},
		{name: "JSX file", filename: "Component.jsx", language: "javascript"},
		{name: "Upper case extension", filename: "LEGACY.JS", language: "javascript"},
		{name: "Unsupported file", filename: "test.cpp", wantErr: true},
	}

	factory := inspector.NewFactory()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser, err := factory.GetParser(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, factory.Supports(tt.filename))
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, tt.language, parser.Language())
			assert.True(t, factory.Supports(tt.filename))
		})
	}
}

func TestFactory_Language(t *testing.T) {
	factory := inspector.NewFactory()
	parser, err := factory.Language("javascript")
	assert.NoError(t, err)
	assert.Equal(t, "javascript", parser.Language())

	_, err = factory.Language("cobol")
	assert.Error(t, err)

	assert.Equal(t, []string{".cjs", ".go", ".java", ".js", ".jsx", ".mjs"}, factory.Extensions())
}
