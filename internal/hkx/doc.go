// Package hkx assembles Havok hkpackfile XML documents (hk_2010.2.0-r1,
// classversion 8), the behavior-file format consumed by Skyrim's animation
// engine. A Document owns the object-reference allocator and the shared
// event/variable name table; record constructors append typed hkobject
// elements to the __data__ section in call order.
//
// The engine compares these files against ones written by its own tooling,
// so rendering is byte-exact: tab indentation, SERIALIZE_IGNORED comment
// placeholders, explicit end tags on empty params, and an ascii XML
// declaration.
package hkx
