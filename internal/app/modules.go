package app

import (
	"github.com/vk/exemplar/internal/catalog/keywords"
	"github.com/vk/exemplar/internal/catalog/patterns"
	"github.com/vk/exemplar/internal/catalog/principles"
	"github.com/vk/exemplar/internal/registry"
)

// coreModules is the definitive list of all catalog modules that are
// compiled into the exemplar binary.
var coreModules = []registry.Module{
	&keywords.Module{},
	&principles.Module{},
	&patterns.Module{},
}
