package fotocard

import "embed"

// EmbeddedAssets contains the static assets served under /public/:
// app.css and app.js
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
