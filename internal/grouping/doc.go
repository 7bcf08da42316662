// Package grouping clusters classified photo records into per-item groups.
//
// The grouper is a single online pass over the batch in input order: each
// record joins the first group sharing an exact SKU, otherwise the most
// similar group at or above the configured threshold, otherwise it opens a
// new group. Ties on similarity resolve to the group with the most members,
// then to the earliest-created group, so results never depend on map order.
package grouping
