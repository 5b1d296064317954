package model

// Version is overridden at build time: -X search/internal/model.Version=...
var Version = "dev"
