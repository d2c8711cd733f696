// Package larder holds project-wide metadata.
package larder

// Version is the larder release version, printed by "larder version".
const Version = "v0.1.0"
