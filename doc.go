// Package behaviorx builds Havok behavior files for animated static meshes.
//
// A Graph collects named states (each playing a Havok clip or a Gamebryo
// sequence), event-labeled transitions between them, and wildcard
// transitions valid from every state. Export serializes the graph as an
// hkpackfile XML document in the schema Skyrim's animation engine loads.
//
// Graphs can be built in code or loaded from a YAML/JSON Definition.
package behaviorx
