package generator

import (
	"github.com/forgeui/backend/internal/blueprint"
	"github.com/forgeui/backend/internal/vocab"
)

// Target identifies one generation backend.
type Target string

const (
	TargetReactTailwind    Target = "react-tailwind"
	TargetStyledComponents Target = "styled-components"
	TargetCSSModules       Target = "css-modules"
	TargetVue              Target = "vue"
	TargetSolid            Target = "solid"
	TargetHTML             Target = "html"
)

// Targets returns the six recognized target identifiers in a fixed order.
func Targets() []Target {
	return []Target{
		TargetReactTailwind,
		TargetStyledComponents,
		TargetCSSModules,
		TargetVue,
		TargetSolid,
		TargetHTML,
	}
}

// Options carries the target-agnostic generation toggles. Backends for
// targets without an optional type system ignore WithTypes.
type Options struct {
	WithTypes bool
	WithDocs  bool
}

// DefaultOptions enables typed output and doc headers.
func DefaultOptions() Options {
	return Options{WithTypes: true, WithDocs: true}
}

// Backend emits source text for one target.
type Backend interface {
	Emit(bp *blueprint.Blueprint, opts Options) string
}

// Engine dispatches blueprints to target backends. Stateless across calls;
// safe for concurrent use.
type Engine struct {
	tailwind Backend
	styled   Backend
	modules  Backend
	vue      Backend
	solid    Backend
	html     Backend
}

// New creates an engine sharing one set of vocabulary tables across all
// backends.
func New(tables *vocab.Tables) *Engine {
	return &Engine{
		tailwind: &tailwindBackend{vocab: tables},
		styled:   &styledBackend{vocab: tables},
		modules:  &cssModulesBackend{vocab: tables},
		vue:      &vueBackend{vocab: tables},
		solid:    &solidBackend{vocab: tables},
		html:     &htmlBackend{vocab: tables},
	}
}

// Generate emits source for the blueprint against the given target.
// An unrecognized target falls back to the react-tailwind backend; this is
// the documented permissive default, not an error path.
func (e *Engine) Generate(bp *blueprint.Blueprint, target Target, opts Options) string {
	return e.backendFor(target).Emit(bp, opts)
}

// GenerateJSON deserializes blueprint JSON and generates against it.
// A parse or validation failure is returned as an error with no partial
// source text.
func (e *Engine) GenerateJSON(content []byte, target Target, opts Options) (string, error) {
	bp, err := blueprint.Parse(content)
	if err != nil {
		return "", err
	}
	return e.Generate(bp, target, opts), nil
}

func (e *Engine) backendFor(target Target) Backend {
	switch target {
	case TargetReactTailwind:
		return e.tailwind
	case TargetStyledComponents:
		return e.styled
	case TargetCSSModules:
		return e.modules
	case TargetVue:
		return e.vue
	case TargetSolid:
		return e.solid
	case TargetHTML:
		return e.html
	default:
		return e.tailwind
	}
}
