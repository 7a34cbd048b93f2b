package mapoptions

import (
	"fmt"

	"github.com/woozymasta/maplibre/lnglat"
)

// Element is a handle to a host DOM element that will contain the map.
// The payload carries the handle itself, the builder never inspects it.
type Element interface {
	// ElementID returns the id attribute of the element, empty if it has none.
	ElementID() string
}

// Container references the element hosting the map, either by id or by handle.
// The target should be empty; that is checked by the engine, not here.
type Container struct {
	element Element
	id      string
}

// ContainerID references the container by element id.
func ContainerID(id string) Container {
	return Container{id: id}
}

// ContainerElement references the container by element handle.
func ContainerElement(el Element) Container {
	return Container{element: el}
}

// IsElement reports whether the container is an element handle.
func (c Container) IsElement() bool {
	return c.element != nil
}

// ID returns the identifier, or the element id for element handles.
func (c Container) ID() string {
	if c.element != nil {
		return c.element.ElementID()
	}

	return c.id
}

// Value returns the payload form: the id string or the element handle.
func (c Container) Value() any {
	if c.element != nil {
		return c.element
	}

	return c.id
}

func (c Container) String() string {
	if c.element != nil {
		return fmt.Sprintf("element(%s)", c.element.ElementID())
	}

	return c.id
}

// parseContainer probes the container shapes in order: Container, string, Element.
func parseContainer(v any) (Container, error) {
	switch c := v.(type) {
	case Container:
		return c, nil
	case *Container:
		if c != nil {
			return *c, nil
		}
	case string:
		return ContainerID(c), nil
	case Element:
		if c != nil {
			return ContainerElement(c), nil
		}
	}

	return Container{}, &lnglat.Error{
		Kind:    lnglat.KindShapeMismatch,
		Message: fmt.Sprintf("mapoptions: container must be an element id or an element handle, got %T", v),
	}
}
