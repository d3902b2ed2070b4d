// Package config provides configuration structures and utilities for draftsaver.
// It defines where output files go, which label language is used, and how
// the optional .draftsaver configuration file is found and merged.
package config
