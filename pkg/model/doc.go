// Package model defines the persisted entities of the iqmath site.
//
// Every entity carries a uuid identifier assigned in a BeforeCreate hook
// and creation/modification timestamps stamped by GORM. Models normalize
// themselves (trimming, lowercasing, slug derivation, defaults) and
// validate their own fields; stores run both before any write so that a
// validation failure aborts the write entirely.
//
// JSON field names match the public API contract (camelCase, isVisible,
// order). Password hashes never serialize.
package model
