// Package enrich turns raw spawn descriptors into semantic entities and
// items: template selection, role assignment, behavior, loot scaling, and
// relationships, using weighted-table selection over
// YAML-loaded template packs.
package enrich
