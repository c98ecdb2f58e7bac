// Package emit writes a validated site.Config as the configuration file of a
// static-site framework.
//
// Each target builds a plain map document from the site model, deep-merges
// user overrides into it and encodes it: Docusaurus as docusaurus.config.mjs,
// Hugo as hugo.yaml. A notesite-manifest.json next to them records the build
// id, the configuration snapshot and a SHA-256 per emitted file.
package emit
