// Package render writes a composed configuration in one of the formats a
// bundler can load.
//
//   - json: indented JSON, keys in composition order
//   - yaml: block-style YAML, keys in composition order
//   - js:   a CommonJS module (module.exports = {...};) with a header naming
//     the mode and presets it was built from
//
// Plugin and loader references stay declarative ({"plugin": "Name"}); turning
// them into constructor calls is left to the bundler side.
package render
