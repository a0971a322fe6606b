// Package element wraps solids with the rendering properties a host needs
// to place them in a document.
package element

import (
	"github.com/alexiusacademia/bridgebeam/internal/config"
	"github.com/alexiusacademia/bridgebeam/internal/kernel"
	"github.com/google/uuid"
)

// CommonProperties are the display attributes shared by all elements.
type CommonProperties struct {
	Pen    int `json:"pen"`
	Color  int `json:"color"`
	Stroke int `json:"stroke"`
}

// NewProperties combines the configured style with an element color.
func NewProperties(style config.Style, color int) CommonProperties {
	return CommonProperties{
		Pen:    style.Pen,
		Color:  color,
		Stroke: style.Stroke,
	}
}

// ModelElement is one renderable solid. Every element gets a fresh ID so
// a host can tell the output of two builds apart.
type ModelElement struct {
	ID         uuid.UUID
	Properties CommonProperties
	Solid      kernel.Solid
}

// New creates a model element.
func New(props CommonProperties, solid kernel.Solid) ModelElement {
	return ModelElement{ID: uuid.New(), Properties: props, Solid: solid}
}
