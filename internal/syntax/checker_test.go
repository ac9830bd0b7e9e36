package syntax

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/code-critic/internal/core"
)

func TestPythonChecker_ValidCode(t *testing.T) {
	checker := NewPythonChecker()

	tests := []struct {
		name string
		code string
	}{
		{"simple function", "def f(): return 1"},
		{"indented block", "def f(x):\n    if x > 0:\n        return x\n    return -x\n"},
		{"class with method", "class A:\n    def m(self):\n        pass\n"},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annotation, err := checker.Check(context.Background(), tt.code)
			require.NoError(t, err)
			assert.Empty(t, annotation)
		})
	}
}

func TestPythonChecker_MalformedCode(t *testing.T) {
	checker := NewPythonChecker()

	tests := []struct {
		name string
		code string
	}{
		{"broken parameter list", "def f(: return 1"},
		{"unclosed paren", "print(1"},
		{"stray operator", "x = = 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annotation, err := checker.Check(context.Background(), tt.code)
			require.NoError(t, err)
			require.NotEmpty(t, annotation)
			assert.Contains(t, annotation, "Syntax error in generated code")
			assert.Contains(t, annotation, "line ")
		})
	}
}

func TestPythonChecker_AnnotationMentionsConstruct(t *testing.T) {
	checker := NewPythonChecker()

	annotation, err := checker.Check(context.Background(), "def f(: return 1")
	require.NoError(t, err)
	require.NotEmpty(t, annotation)
	// The snippet should surface part of the malformed definition.
	assert.True(t, strings.Contains(annotation, "def f(") || strings.Contains(annotation, "missing"),
		"annotation should mention the malformed construct, got: %s", annotation)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	t.Run("python is registered", func(t *testing.T) {
		assert.True(t, registry.Supports(core.LangPython))
	})

	t.Run("other languages are a no-op", func(t *testing.T) {
		for _, lang := range []core.Language{core.LangJavaScript, core.LangJava, core.LangCPP, core.LangGo} {
			assert.False(t, registry.Supports(lang), lang)

			annotation, err := registry.Check(context.Background(), lang, "definitely not valid "+lang.String())
			require.NoError(t, err)
			assert.Empty(t, annotation)
		}
	})

	t.Run("dispatches to python checker", func(t *testing.T) {
		annotation, err := registry.Check(context.Background(), core.LangPython, "def f(: return 1")
		require.NoError(t, err)
		assert.NotEmpty(t, annotation)
	})
}
