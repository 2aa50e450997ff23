// Package models defines the canonical Airport record and the closed
// enumerations used by the OpenAIP feed.
//
// An Airport carries three classes of fields:
//
//  1. Provider-controlled fields (OpenAIP name, kind, coordinates, elevation,
//     ICAO code, radio and runway descriptors). These are overwritten on every
//     reconciliation and a change in any of them replaces the stored record.
//
//  2. Curator-controlled fields (the WeGlide name). Once set these are never
//     overwritten by automated passes.
//
//  3. Derived fields (WeGlide id, region, continent, timezone, launches,
//     reign). These are computed by the enrichment and reign passes and
//     survive a merge as long as the provider data is unchanged.
//
// Optional fields use pointer types; nil means "unknown", which is distinct
// from a zero value (an airport with zero launches is not an airport whose
// launch count we never fetched).
package models
