package uri

import (
	"github.com/pkg/errors"
)

// IsValid checks the advisory invariants that hand-built values can break.
// Parsed values always satisfy them.
func (u Uri) IsValid() error {
	if !u.Scheme.IsValid() {
		return errors.New("scheme is not valid")
	}
	return hierarchyValid(u.Hierarchy)
}

func (u AbsoluteUri) IsValid() error {
	if !u.Scheme.IsValid() {
		return errors.New("scheme is not valid")
	}
	return hierarchyValid(u.Hierarchy)
}

func (r RelativeReference) IsValid() error {
	switch part := r.Relative.(type) {
	case RelativeAbsolute:
		if !part.Path.IsValid() {
			return errors.New("path is ambiguous with an authority prefix")
		}
	case RelativeNoScheme:
		if len(part.Path) == 0 {
			return errors.New("path-noscheme requires a first segment")
		}
	}
	return nil
}

func hierarchyValid(h HierarchyPart) error {
	switch part := h.(type) {
	case HierarchyAbsolute:
		if !part.Path.IsValid() {
			return errors.New("path is ambiguous with an authority prefix")
		}
	case HierarchyRootless:
		if len(part.Path) == 0 {
			return errors.New("path-rootless requires a first segment")
		}
	}
	return nil
}
