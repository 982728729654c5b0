package execution

import (
	"ezc/internal/discovery"
	"ezc/internal/registry"
)

func discoveryItem(reg *registry.Registry, ordinal int) discovery.Item {
	item, _ := discovery.NewSelector().Nth(reg, "", ordinal)
	return item
}
