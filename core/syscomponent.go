package core

import (
	"fmt"

	"github.com/oqtopus-team/qdeck/render"
	"github.com/oqtopus-team/qdeck/slides"
	"github.com/oqtopus-team/qdeck/statevector"
	"go.uber.org/dig"
	"go.uber.org/zap"
)

var systemComponents *SystemComponents

// SystemComponents resolves the pluggable parts of qdeck from a dig container.
// The container must provide statevector.Backend, render.Renderer and slides.Catalog.
type SystemComponents struct {
	*dig.Container
}

func NewSystemComponents(con *dig.Container) *SystemComponents {
	return &SystemComponents{con}
}

func GetSystemComponents() *SystemComponents {
	return systemComponents
}

// Setup makes s the process-wide components. Providers run on first use,
// so a command never fails on a component it does not touch.
func (s *SystemComponents) Setup(conf *Conf) error {
	if s == nil || s.Container == nil {
		return fmt.Errorf("no DI container")
	}
	zap.L().Debug(fmt.Sprintf("Setting up system components/output dir:%s", conf.OutputDir))
	systemComponents = s
	return nil
}

func (s *SystemComponents) Backend() (statevector.Backend, error) {
	var backend statevector.Backend
	err := s.Invoke(func(b statevector.Backend) {
		zap.L().Debug(fmt.Sprintf("statevector backend is %s", b.Name()))
		backend = b
	})
	return backend, err
}

func (s *SystemComponents) Renderer() (render.Renderer, error) {
	var renderer render.Renderer
	err := s.Invoke(func(r render.Renderer) {
		renderer = r
	})
	return renderer, err
}

func (s *SystemComponents) Catalog() (slides.Catalog, error) {
	var catalog slides.Catalog
	err := s.Invoke(func(c slides.Catalog) {
		zap.L().Debug(fmt.Sprintf("decks are %v", c.Names()))
		catalog = c
	})
	return catalog, err
}
