package metrics

import (
	"fmt"
	"strings"

	"github.com/npillmayer/richtext"
	"github.com/npillmayer/uax/uax11"
)

// Names of the pre-manufactured metrics providers.
const (
	IdentityName = "identity"
	CellsName    = "cells"
	FacesName    = "faces"
)

// ByName creates one of the pre-manufactured metrics providers.
// Cells uses a context derived from the user's environment, faces uses a
// resolution of 72 DPI.
func ByName(name string) (richtext.MetricsProvider, error) {
	switch strings.ToLower(name) {
	case IdentityName:
		return richtext.IdentityMetrics{}, nil
	case CellsName:
		return NewCells(uax11.ContextFromEnvironment()), nil
	case FacesName:
		return NewFaces(72)
	}
	return nil, fmt.Errorf("unknown metrics provider %q: %w", name, richtext.ErrIllegalArguments)
}
